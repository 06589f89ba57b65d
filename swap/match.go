package swap

import (
	"fmt"

	"github.com/dhamidi/swapcheck/java"
)

// NoMatchFound reports an annotated method whose counterpart is missing
// from its type, or present only with a different signature.
type NoMatchFound struct {
	Type     *java.TypeDeclaration
	Method   *java.MethodDeclaration
	Expected string
}

func (e *NoMatchFound) Error() string {
	return fmt.Sprintf("Method %s not found", e.Expected)
}

// FindCounterpart returns the first sibling of c.Method, in declaration
// order, named c.Expected with the same signature. c.Method itself is never
// a candidate.
func FindCounterpart(c Candidate) (*java.MethodDeclaration, error) {
	for _, m := range c.Type.Methods {
		if m == c.Method {
			continue
		}
		if m.Name == c.Expected && c.Method.SameSignature(m) {
			return m, nil
		}
	}
	return nil, &NoMatchFound{Type: c.Type, Method: c.Method, Expected: c.Expected}
}
