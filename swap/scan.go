package swap

import (
	"iter"

	"github.com/dhamidi/swapcheck/java"
)

// DefaultAnnotation is the simple name of the swap-contract annotation.
const DefaultAnnotation = "BladeSwap"

// Candidate is an annotated method together with the counterpart it names.
type Candidate struct {
	Method   *java.MethodDeclaration
	Type     *java.TypeDeclaration
	Expected string
}

// Candidates yields every method in unit that carries annotation with a
// string-literal argument, in type then method declaration order.
func Candidates(unit *java.CompilationUnit, annotation string) iter.Seq[Candidate] {
	return func(yield func(Candidate) bool) {
		if unit == nil {
			return
		}

		for _, td := range unit.AllTypes() {
			for _, m := range td.Methods {
				a, ok := m.Annotation(annotation)
				if !ok {
					continue
				}

				expected, ok := a.StringValue()
				if !ok {
					continue // not a string literal
				}

				if !yield(Candidate{Method: m, Type: td, Expected: expected}) {
					return
				}
			}
		}
	}
}
