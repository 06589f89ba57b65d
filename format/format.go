package format

import (
	"encoding"
	"io"

	"gitlab.com/tozd/go/errors"

	"github.com/dhamidi/swapcheck/swap"
)

type Encoder interface {
	encoding.TextMarshaler
	Encode(result *swap.Result) error
}

// Names lists the formats accepted by NewEncoder.
var Names = []string{"text", "json"}

// NewEncoder returns the result encoder registered under name.
func NewEncoder(name string, w io.Writer) (Encoder, error) {
	switch name {
	case "", "text":
		return NewTextEncoder(w), nil
	case "json":
		return NewJSONEncoder(w), nil
	default:
		return nil, errors.Errorf("unknown format %q (want one of %v)", name, Names)
	}
}
