package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/dhamidi/swapcheck/swap"
)

// TextEncoder writes one line per violation, compiler style, followed by a
// summary line.
type TextEncoder struct {
	w      io.Writer
	result *swap.Result
}

func NewTextEncoder(w io.Writer) *TextEncoder {
	return &TextEncoder{w: w}
}

func (e *TextEncoder) Encode(result *swap.Result) error {
	e.result = result
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *TextEncoder) MarshalText() ([]byte, error) {
	var sb strings.Builder
	r := e.result
	if r == nil {
		r = &swap.Result{}
	}

	violations := r.Violations()
	for _, v := range violations {
		sb.WriteString(v.Error())
		sb.WriteByte('\n')
	}

	if len(violations) == 0 {
		fmt.Fprintf(&sb, "ok: %s checked in %s\n",
			plural(r.Checked(), "contract"), plural(len(r.Files), "file"))
		return []byte(sb.String()), nil
	}

	failed := 0
	for _, f := range r.Files {
		if !f.OK() {
			failed++
		}
	}
	fmt.Fprintf(&sb, "%s in %s (%s checked in %s)\n",
		plural(len(violations), "violation"), plural(failed, "file"),
		plural(r.Checked(), "contract"), plural(len(r.Files), "file"))
	return []byte(sb.String()), nil
}

func plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
