package parser

import (
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
)

type Position struct {
	File   string
	Offset int
	Line   int
	Column int
}

func (p Position) String() string {
	if p.File == "" {
		return fmt.Sprintf("%d:%d", p.Line, p.Column)
	}
	return fmt.Sprintf("%s:%d:%d", p.File, p.Line, p.Column)
}

type Span struct {
	Start Position
	End   Position
}

func positionOf(file string, offset uint32, pt sitter.Point) Position {
	return Position{
		File:   file,
		Offset: int(offset),
		Line:   int(pt.Row) + 1,
		Column: int(pt.Column) + 1,
	}
}
