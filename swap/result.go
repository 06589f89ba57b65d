package swap

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

type ViolationKind string

const (
	KindParseError         ViolationKind = "parse-error"
	KindMissingCounterpart ViolationKind = "missing-counterpart"
)

// Violation is one broken contract, or one file that could not be parsed.
// For parse errors only File, Line, Column and Message are set.
type Violation struct {
	Kind      ViolationKind
	File      string
	Line      int
	Column    int
	Type      string
	Method    string
	Signature string
	Expected  string
	Message   string
}

func (v Violation) Error() string {
	loc := v.File
	if v.Line > 0 {
		loc = fmt.Sprintf("%s:%d:%d", v.File, v.Line, v.Column)
	}
	if v.Kind == KindMissingCounterpart {
		return fmt.Sprintf("%s: %s (%s.%s)", loc, v.Message, v.Type, v.Signature)
	}
	return fmt.Sprintf("%s: %s", loc, v.Message)
}

// FileResult is the outcome for a single file. Checked counts the
// annotated methods that were matched against their type.
type FileResult struct {
	File       string
	Checked    int
	Violations []Violation
}

func (f FileResult) OK() bool {
	return len(f.Violations) == 0
}

// Result aggregates a run. Files keeps the order the files were given in.
type Result struct {
	Files []FileResult
}

func (r *Result) OK() bool {
	for _, f := range r.Files {
		if !f.OK() {
			return false
		}
	}
	return true
}

// Violations returns all violations, ordered by file then by declaration.
func (r *Result) Violations() []Violation {
	var out []Violation
	for _, f := range r.Files {
		out = append(out, f.Violations...)
	}
	return out
}

func (r *Result) Checked() int {
	n := 0
	for _, f := range r.Files {
		n += f.Checked
	}
	return n
}

// Err returns nil on success and otherwise a multierror holding every
// violation.
func (r *Result) Err() error {
	var merr *multierror.Error
	for _, v := range r.Violations() {
		merr = multierror.Append(merr, v)
	}
	return merr.ErrorOrNil()
}
