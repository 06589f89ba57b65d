package format

import (
	"encoding/json"
	"io"

	"github.com/dhamidi/swapcheck/swap"
)

type JSONEncoder struct {
	w      io.Writer
	result *swap.Result
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w}
}

func (e *JSONEncoder) Encode(result *swap.Result) error {
	e.result = result
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	if _, err := e.w.Write(text); err != nil {
		return err
	}
	_, err = io.WriteString(e.w, "\n")
	return err
}

func (e *JSONEncoder) MarshalText() ([]byte, error) {
	return json.MarshalIndent(ResultJSON(e.result), "", "  ")
}

type jsonResult struct {
	OK         bool            `json:"ok"`
	Files      int             `json:"files"`
	Checked    int             `json:"checked"`
	Violations []jsonViolation `json:"violations"`
}

type jsonViolation struct {
	Kind      string `json:"kind"`
	File      string `json:"file"`
	Line      int    `json:"line,omitempty"`
	Column    int    `json:"column,omitempty"`
	Type      string `json:"type,omitempty"`
	Method    string `json:"method,omitempty"`
	Signature string `json:"signature,omitempty"`
	Expected  string `json:"expected,omitempty"`
	Message   string `json:"message"`
}

// ResultJSON returns the JSON document shape of a result. The violations
// array is never null.
func ResultJSON(r *swap.Result) any {
	if r == nil {
		r = &swap.Result{}
	}
	data := jsonResult{
		OK:         r.OK(),
		Files:      len(r.Files),
		Checked:    r.Checked(),
		Violations: []jsonViolation{},
	}
	for _, v := range r.Violations() {
		data.Violations = append(data.Violations, jsonViolation{
			Kind:      string(v.Kind),
			File:      v.File,
			Line:      v.Line,
			Column:    v.Column,
			Type:      v.Type,
			Method:    v.Method,
			Signature: v.Signature,
			Expected:  v.Expected,
			Message:   v.Message,
		})
	}
	return data
}
