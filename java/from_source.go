package java

import (
	"context"
	"os"
	"strings"

	"gitlab.com/tozd/go/errors"

	"github.com/dhamidi/swapcheck/java/parser"
)

var typeDeclarationKinds = map[string]TypeKind{
	"class_declaration":           TypeKindClass,
	"interface_declaration":       TypeKindInterface,
	"enum_declaration":            TypeKindEnum,
	"record_declaration":          TypeKindRecord,
	"annotation_type_declaration": TypeKindAnnotation,
}

// CompilationUnitFromFile reads and parses one Java source file. Both read
// and syntax failures are returned as *parser.ParseError.
func CompilationUnitFromFile(ctx context.Context, path string) (*CompilationUnit, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, &parser.ParseError{File: path, Err: errors.Errorf("read: %w", err)}
	}
	return CompilationUnitFromSource(ctx, src, parser.WithFile(path))
}

func CompilationUnitFromSource(ctx context.Context, src []byte, opts ...parser.Option) (*CompilationUnit, error) {
	tree, err := parser.Parse(ctx, src, opts...)
	if err != nil {
		return nil, err
	}
	defer tree.Close()

	b := &unitBuilder{unit: &CompilationUnit{File: tree.File()}}
	b.visitChildren(tree.Root(), nil)
	return b.unit, nil
}

type unitBuilder struct {
	unit *CompilationUnit
}

func (b *unitBuilder) visitChildren(n parser.Node, owner *TypeDeclaration) {
	for _, c := range n.NamedChildren() {
		b.visit(c, owner)
	}
}

func (b *unitBuilder) visit(n parser.Node, owner *TypeDeclaration) {
	if kind, ok := typeDeclarationKinds[n.Kind()]; ok {
		td := &TypeDeclaration{
			Name: n.Field("name").Text(),
			Kind: kind,
			Span: n.Span(),
		}
		b.attach(owner, td)
		b.visitChildren(n.Field("body"), td)
		return
	}

	switch n.Kind() {
	case "package_declaration":
		for _, c := range n.NamedChildren() {
			if c.Kind() == "identifier" || c.Kind() == "scoped_identifier" {
				b.unit.Package = compact(c.Text())
			}
		}
	case "method_declaration":
		if owner != nil {
			owner.addMethod(methodFromNode(n))
		}
		// Local and anonymous classes in the body belong to nested types.
		b.visitChildren(n, owner)
	case "object_creation_expression":
		body := n.ChildOfKind("class_body")
		if body.IsZero() {
			b.visitChildren(n, owner)
			return
		}
		for _, c := range n.NamedChildren() {
			if c.Kind() != "class_body" {
				b.visit(c, owner)
			}
		}
		td := &TypeDeclaration{
			Name: typeFromNode(n.Field("type")).String(),
			Kind: TypeKindAnonymous,
			Span: body.Span(),
		}
		b.attach(owner, td)
		b.visitChildren(body, td)
	case "enum_constant":
		body := n.Field("body")
		if body.IsZero() {
			b.visitChildren(n, owner)
			return
		}
		b.visitChildren(n.Field("arguments"), owner)
		td := &TypeDeclaration{
			Name: n.Field("name").Text(),
			Kind: TypeKindAnonymous,
			Span: body.Span(),
		}
		b.attach(owner, td)
		b.visitChildren(body, td)
	default:
		b.visitChildren(n, owner)
	}
}

func (b *unitBuilder) attach(owner, td *TypeDeclaration) {
	if owner == nil {
		b.unit.Types = append(b.unit.Types, td)
		return
	}
	owner.addType(td)
}

func methodFromNode(n parser.Node) *MethodDeclaration {
	m := &MethodDeclaration{
		Name:       n.Field("name").Text(),
		ReturnType: typeFromNode(n.Field("type")),
		Span:       n.Span(),
	}
	m.ReturnType.ArrayDepth += dimensions(n.Field("dimensions"))

	// Annotations may sit in the modifiers or, after type parameters,
	// directly on the declaration.
	for _, c := range n.NamedChildren() {
		switch c.Kind() {
		case "modifiers":
			for _, mc := range c.NamedChildren() {
				if isAnnotation(mc) {
					m.Annotations = append(m.Annotations, annotationFromNode(mc))
				}
			}
		case "marker_annotation", "annotation":
			m.Annotations = append(m.Annotations, annotationFromNode(c))
		}
	}

	for _, p := range n.Field("parameters").NamedChildren() {
		switch p.Kind() {
		case "formal_parameter":
			t := typeFromNode(p.Field("type"))
			t.ArrayDepth += dimensions(p.Field("dimensions"))
			m.Parameters = append(m.Parameters, Parameter{Name: p.Field("name").Text(), Type: t})
		case "spread_parameter":
			m.Parameters = append(m.Parameters, spreadParameter(p))
		}
	}
	return m
}

func spreadParameter(n parser.Node) Parameter {
	var param Parameter
	for _, c := range n.NamedChildren() {
		switch {
		case c.Kind() == "variable_declarator":
			param.Name = c.Field("name").Text()
			param.Type.ArrayDepth += dimensions(c.Field("dimensions"))
		case c.Kind() == "modifiers" || isAnnotation(c) || isComment(c):
		case param.Type.Name == "":
			depth := param.Type.ArrayDepth
			param.Type = typeFromNode(c)
			param.Type.ArrayDepth += depth
		}
	}
	param.Type.IsVarargs = true
	return param
}

func annotationFromNode(n parser.Node) AnnotationUse {
	a := AnnotationUse{Name: compact(n.Field("name").Text())}
	if n.Kind() != "annotation" {
		return a
	}

	var values []parser.Node
	for _, c := range n.Field("arguments").NamedChildren() {
		if !isComment(c) {
			values = append(values, c)
		}
	}
	for _, c := range values {
		if c.Kind() == "element_value_pair" {
			a.Pairs = append(a.Pairs, ElementValuePair{
				Name:  c.Field("key").Text(),
				Value: c.Field("value").Text(),
			})
		}
	}
	if len(values) == 1 && values[0].Kind() != "element_value_pair" {
		a.Value = values[0].Text()
		if k := values[0].Kind(); k == "string_literal" || k == "text_block" {
			if s, ok := decodeStringLiteral(a.Value); ok {
				a.Literal = &s
			}
		}
	}
	return a
}

func typeFromNode(n parser.Node) TypeDescriptor {
	switch n.Kind() {
	case "":
		return TypeDescriptor{}
	case "integral_type", "floating_point_type", "boolean_type", "void_type", "type_identifier":
		return TypeDescriptor{Name: n.Text()}
	case "scoped_type_identifier":
		return TypeDescriptor{Name: scopedName(n)}
	case "generic_type":
		var t TypeDescriptor
		for _, c := range n.NamedChildren() {
			switch c.Kind() {
			case "type_arguments":
				t.TypeArguments = typeArguments(c)
			case "type_identifier", "scoped_type_identifier":
				t.Name = typeFromNode(c).Name
			}
		}
		return t
	case "array_type":
		t := typeFromNode(n.Field("element"))
		t.ArrayDepth += dimensions(n.Field("dimensions"))
		return t
	case "annotated_type":
		var inner parser.Node
		for _, c := range n.NamedChildren() {
			if !isAnnotation(c) && !isComment(c) {
				inner = c
			}
		}
		return typeFromNode(inner)
	default:
		return TypeDescriptor{Name: compact(n.Text())}
	}
}

func scopedName(n parser.Node) string {
	var parts []string
	for _, c := range n.NamedChildren() {
		switch c.Kind() {
		case "scoped_type_identifier":
			parts = append(parts, scopedName(c))
		case "type_identifier":
			parts = append(parts, c.Text())
		case "generic_type":
			parts = append(parts, typeFromNode(c).String())
		}
	}
	return strings.Join(parts, ".")
}

func typeArguments(n parser.Node) []TypeArgument {
	var args []TypeArgument
	for _, c := range n.NamedChildren() {
		if isAnnotation(c) || isComment(c) {
			continue
		}
		if c.Kind() != "wildcard" {
			t := typeFromNode(c)
			args = append(args, TypeArgument{Type: &t})
			continue
		}
		arg := TypeArgument{IsWildcard: true}
		for _, wc := range c.Children() {
			switch {
			case wc.Kind() == "extends" || wc.Kind() == "super":
				arg.BoundKind = wc.Kind()
			case wc.IsNamed() && !isAnnotation(wc) && !isComment(wc):
				bound := typeFromNode(wc)
				arg.Bound = &bound
			}
		}
		args = append(args, arg)
	}
	return args
}

// dimensions counts the bracket pairs of a "dimensions" node.
func dimensions(n parser.Node) int {
	if n.IsZero() {
		return 0
	}
	return strings.Count(n.Text(), "[")
}

func isAnnotation(n parser.Node) bool {
	return n.Kind() == "marker_annotation" || n.Kind() == "annotation"
}

func isComment(n parser.Node) bool {
	switch n.Kind() {
	case "line_comment", "block_comment", "comment":
		return true
	}
	return false
}

func compact(s string) string {
	return strings.Join(strings.Fields(s), "")
}
