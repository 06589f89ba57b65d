package parser

import (
	"context"
	"strconv"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/java"
	"gitlab.com/tozd/go/errors"
)

type Option func(*config)

type config struct {
	file string
}

func WithFile(path string) Option {
	return func(c *config) {
		c.file = path
	}
}

// Tree is a successfully parsed Java source file.
type Tree struct {
	file string
	src  []byte
	tree *sitter.Tree
}

// Parse parses a complete Java compilation unit. Syntax errors anywhere in
// the file are reported as a *ParseError; the partial tree is discarded.
func Parse(ctx context.Context, src []byte, opts ...Option) (*Tree, error) {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	p := sitter.NewParser()
	defer p.Close()
	p.SetLanguage(java.GetLanguage())

	tree, err := p.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, &ParseError{File: cfg.file, Err: errors.Errorf("tree-sitter: %w", err)}
	}
	if tree == nil {
		return nil, &ParseError{File: cfg.file, Detail: "no syntax tree produced"}
	}

	t := &Tree{file: cfg.file, src: src, tree: tree}
	root := tree.RootNode()
	if root.HasError() {
		perr := t.firstError(root)
		tree.Close()
		return nil, perr
	}
	return t, nil
}

func (t *Tree) File() string {
	return t.file
}

func (t *Tree) Root() Node {
	return Node{n: t.tree.RootNode(), t: t}
}

func (t *Tree) Close() {
	t.tree.Close()
}

func (t *Tree) firstError(n *sitter.Node) *ParseError {
	if bad := findError(n); bad != nil {
		pos := positionOf(t.file, bad.StartByte(), bad.StartPoint())
		var detail string
		if bad.IsMissing() {
			detail = "missing " + strconv.Quote(bad.Type())
		} else {
			detail = "syntax error near " + strconv.Quote(excerpt(bad.Content(t.src)))
		}
		return &ParseError{File: t.file, Pos: pos, Detail: detail}
	}
	return &ParseError{File: t.file, Detail: "syntax error"}
}

// findError returns the first ERROR or MISSING node in document order.
func findError(n *sitter.Node) *sitter.Node {
	if n == nil {
		return nil
	}
	if n.Type() == "ERROR" || n.IsMissing() {
		return n
	}
	if !n.HasError() {
		return nil
	}
	for i := 0; i < int(n.ChildCount()); i++ {
		if bad := findError(n.Child(i)); bad != nil {
			return bad
		}
	}
	return nil
}

func excerpt(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	s = strings.TrimSpace(s)
	if len(s) > 32 {
		s = s[:32] + "..."
	}
	return s
}
