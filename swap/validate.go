package swap

import (
	"context"
	"runtime"
	"strings"

	"github.com/tliron/commonlog"
	"gitlab.com/tozd/go/errors"
	"golang.org/x/sync/errgroup"

	"github.com/dhamidi/swapcheck/java"
	"github.com/dhamidi/swapcheck/java/parser"
)

type Option func(*Validator)

// WithAnnotation sets the swap annotation. Uses are matched by simple name,
// so a qualified name such as "org.x.BladeSwap" is reduced to "BladeSwap".
func WithAnnotation(name string) Option {
	return func(v *Validator) {
		if i := strings.LastIndexByte(name, '.'); i >= 0 {
			name = name[i+1:]
		}
		if name != "" {
			v.annotation = name
		}
	}
}

// WithWorkers bounds the number of files checked concurrently. Values
// below one mean runtime.GOMAXPROCS(0).
func WithWorkers(n int) Option {
	return func(v *Validator) {
		v.workers = n
	}
}

func WithLogger(log commonlog.Logger) Option {
	return func(v *Validator) {
		v.log = log
	}
}

type Validator struct {
	annotation string
	workers    int
	log        commonlog.Logger
}

func New(opts ...Option) *Validator {
	v := &Validator{
		annotation: DefaultAnnotation,
		log:        commonlog.GetLogger("swapcheck.swap"),
	}
	for _, opt := range opts {
		opt(v)
	}
	if v.workers < 1 {
		v.workers = runtime.GOMAXPROCS(0)
	}
	return v
}

func (v *Validator) Annotation() string {
	return v.annotation
}

// Validate checks files with a fresh Validator.
func Validate(ctx context.Context, files []string, opts ...Option) *Result {
	return New(opts...).Validate(ctx, files)
}

// Validate checks every file, in parallel, and never stops early: a file
// that cannot be read or parsed contributes a parse-error violation and the
// remaining files are still checked.
func (v *Validator) Validate(ctx context.Context, files []string) *Result {
	results := make([]FileResult, len(files))

	var g errgroup.Group
	g.SetLimit(v.workers)
	for i, file := range files {
		g.Go(func() error {
			results[i] = v.ValidateFile(ctx, file)
			return nil
		})
	}
	_ = g.Wait()

	r := &Result{Files: results}
	v.log.Infof("checked %d contracts in %d files: %d violations", r.Checked(), len(files), len(r.Violations()))
	return r
}

func (v *Validator) ValidateFile(ctx context.Context, path string) FileResult {
	unit, err := java.CompilationUnitFromFile(ctx, path)
	return v.check(path, unit, err)
}

// ValidateSource checks in-memory source text, e.g. an unsaved editor
// buffer. name identifies the file in violations.
func (v *Validator) ValidateSource(ctx context.Context, name string, src []byte) FileResult {
	unit, err := java.CompilationUnitFromSource(ctx, src, parser.WithFile(name))
	return v.check(name, unit, err)
}

func (v *Validator) check(file string, unit *java.CompilationUnit, err error) FileResult {
	fr := FileResult{File: file}
	if err != nil {
		v.log.Debugf("%s: %v", file, err)
		fr.Violations = append(fr.Violations, parseViolation(file, err))
		return fr
	}

	for c := range Candidates(unit, v.annotation) {
		fr.Checked++
		_, err := FindCounterpart(c)
		if err == nil {
			continue
		}

		var nm *NoMatchFound
		if errors.As(err, &nm) {
			fr.Violations = append(fr.Violations, missingViolation(file, nm))
		}
	}

	v.log.Debugf("%s: %d contracts, %d violations", file, fr.Checked, len(fr.Violations))
	return fr
}

func parseViolation(file string, err error) Violation {
	v := Violation{Kind: KindParseError, File: file, Message: err.Error()}

	var perr *parser.ParseError
	if errors.As(err, &perr) {
		v.Line = perr.Pos.Line
		v.Column = perr.Pos.Column
	}
	return v
}

func missingViolation(file string, nm *NoMatchFound) Violation {
	pos := nm.Method.Span.Start
	return Violation{
		Kind:      KindMissingCounterpart,
		File:      file,
		Line:      pos.Line,
		Column:    pos.Column,
		Type:      nm.Type.QualifiedName(),
		Method:    nm.Method.Name,
		Signature: nm.Method.Signature(),
		Expected:  nm.Expected,
		Message:   nm.Error(),
	}
}
