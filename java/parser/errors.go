package parser

import (
	"fmt"
)

// ParseError reports a file that could not be turned into a syntax tree,
// either because it could not be read or because it is not valid Java.
type ParseError struct {
	File   string
	Pos    Position
	Detail string
	Err    error
}

func (e *ParseError) Error() string {
	switch {
	case e.Err != nil:
		return fmt.Sprintf("Unable to parse source %s: %v", e.File, e.Err)
	case e.Pos.Line > 0:
		return fmt.Sprintf("Unable to parse source %s: %d:%d: %s", e.File, e.Pos.Line, e.Pos.Column, e.Detail)
	default:
		return fmt.Sprintf("Unable to parse source %s: %s", e.File, e.Detail)
	}
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
