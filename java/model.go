package java

import (
	"strings"

	"github.com/dhamidi/swapcheck/java/parser"
)

type TypeKind string

const (
	TypeKindClass      TypeKind = "class"
	TypeKindInterface  TypeKind = "interface"
	TypeKindEnum       TypeKind = "enum"
	TypeKindAnnotation TypeKind = "annotation"
	TypeKindRecord     TypeKind = "record"
	TypeKindAnonymous  TypeKind = "anonymous"
)

// CompilationUnit is the declaration-level view of one source file.
type CompilationUnit struct {
	File    string
	Package string
	Types   []*TypeDeclaration
}

// AllTypes returns every type declared in the unit, depth first, each
// enclosing type before the types nested in it.
func (u *CompilationUnit) AllTypes() []*TypeDeclaration {
	var out []*TypeDeclaration
	var visit func(types []*TypeDeclaration)
	visit = func(types []*TypeDeclaration) {
		for _, t := range types {
			out = append(out, t)
			visit(t.Types)
		}
	}
	visit(u.Types)
	return out
}

type TypeDeclaration struct {
	Name      string
	Kind      TypeKind
	Enclosing *TypeDeclaration
	Methods   []*MethodDeclaration
	Types     []*TypeDeclaration
	Span      parser.Span
}

// QualifiedName joins the names of all enclosing types, e.g. "Outer.Inner".
// Anonymous bodies show up as "<anonymous Runnable>".
func (t *TypeDeclaration) QualifiedName() string {
	name := t.Name
	if t.Kind == TypeKindAnonymous {
		name = "<anonymous " + t.Name + ">"
	}
	if t.Enclosing == nil {
		return name
	}
	return t.Enclosing.QualifiedName() + "." + name
}

func (t *TypeDeclaration) addMethod(m *MethodDeclaration) {
	m.Owner = t
	t.Methods = append(t.Methods, m)
}

func (t *TypeDeclaration) addType(nested *TypeDeclaration) {
	nested.Enclosing = t
	t.Types = append(t.Types, nested)
}

type MethodDeclaration struct {
	Name        string
	ReturnType  TypeDescriptor
	Parameters  []Parameter
	Annotations []AnnotationUse
	Owner       *TypeDeclaration
	Span        parser.Span
}

// Annotation returns the first annotation whose simple name is name.
func (m *MethodDeclaration) Annotation(name string) (AnnotationUse, bool) {
	for _, a := range m.Annotations {
		if a.SimpleName() == name {
			return a, true
		}
	}
	return AnnotationUse{}, false
}

// SameSignature reports whether both methods declare the same return type
// and the same parameter types in the same order. Names are ignored.
func (m *MethodDeclaration) SameSignature(other *MethodDeclaration) bool {
	if !m.ReturnType.Equal(other.ReturnType) {
		return false
	}
	if len(m.Parameters) != len(other.Parameters) {
		return false
	}
	for i := range m.Parameters {
		if !m.Parameters[i].Type.Equal(other.Parameters[i].Type) {
			return false
		}
	}
	return true
}

// Signature renders the method as "name(T1, T2): R".
func (m *MethodDeclaration) Signature() string {
	var sb strings.Builder
	sb.WriteString(m.Name)
	sb.WriteByte('(')
	for i, p := range m.Parameters {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(p.Type.String())
	}
	sb.WriteString("): ")
	sb.WriteString(m.ReturnType.String())
	return sb.String()
}

type Parameter struct {
	Name string
	Type TypeDescriptor
}

func (p Parameter) String() string {
	if p.Name != "" {
		return p.Type.String() + " " + p.Name
	}
	return p.Type.String()
}
