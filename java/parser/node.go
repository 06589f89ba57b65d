package parser

import (
	sitter "github.com/smacker/go-tree-sitter"
)

// Node is a node of a parsed Tree. The zero Node is a valid, empty node;
// every accessor on it returns a zero value.
type Node struct {
	n *sitter.Node
	t *Tree
}

func (n Node) IsZero() bool {
	return n.n == nil
}

// Kind returns the grammar symbol of the node, e.g. "class_declaration".
// Anonymous tokens return their literal text, e.g. "extends".
func (n Node) Kind() string {
	if n.n == nil {
		return ""
	}
	return n.n.Type()
}

func (n Node) IsNamed() bool {
	return n.n != nil && n.n.IsNamed()
}

func (n Node) Text() string {
	if n.n == nil {
		return ""
	}
	return n.n.Content(n.t.src)
}

func (n Node) Field(name string) Node {
	if n.n == nil {
		return Node{}
	}
	return n.wrap(n.n.ChildByFieldName(name))
}

// Children returns all children, named and anonymous, in source order.
func (n Node) Children() []Node {
	if n.n == nil {
		return nil
	}
	count := int(n.n.ChildCount())
	out := make([]Node, 0, count)
	for i := 0; i < count; i++ {
		out = append(out, n.wrap(n.n.Child(i)))
	}
	return out
}

// NamedChildren returns the named children in source order, skipping
// punctuation and keywords.
func (n Node) NamedChildren() []Node {
	if n.n == nil {
		return nil
	}
	count := int(n.n.NamedChildCount())
	out := make([]Node, 0, count)
	for i := 0; i < count; i++ {
		out = append(out, n.wrap(n.n.NamedChild(i)))
	}
	return out
}

// ChildOfKind returns the first direct child of the given kind.
func (n Node) ChildOfKind(kind string) Node {
	for _, c := range n.Children() {
		if c.Kind() == kind {
			return c
		}
	}
	return Node{}
}

func (n Node) Span() Span {
	if n.n == nil {
		return Span{}
	}
	return Span{
		Start: positionOf(n.t.file, n.n.StartByte(), n.n.StartPoint()),
		End:   positionOf(n.t.file, n.n.EndByte(), n.n.EndPoint()),
	}
}

func (n Node) wrap(c *sitter.Node) Node {
	if c == nil {
		return Node{}
	}
	return Node{n: c, t: n.t}
}
