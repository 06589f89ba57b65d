package java

import (
	"strings"
)

// TypeDescriptor is a declared type as written in source. Nothing is
// resolved: "List" and "java.util.List" are different descriptors.
type TypeDescriptor struct {
	Name          string
	TypeArguments []TypeArgument
	ArrayDepth    int
	IsVarargs     bool
}

type TypeArgument struct {
	Type       *TypeDescriptor
	IsWildcard bool
	BoundKind  string // "extends", "super", or "" for unbounded
	Bound      *TypeDescriptor
}

func (t TypeDescriptor) Equal(o TypeDescriptor) bool {
	if t.Name != o.Name || t.ArrayDepth != o.ArrayDepth || t.IsVarargs != o.IsVarargs {
		return false
	}
	if len(t.TypeArguments) != len(o.TypeArguments) {
		return false
	}
	for i := range t.TypeArguments {
		if !t.TypeArguments[i].Equal(o.TypeArguments[i]) {
			return false
		}
	}
	return true
}

func (a TypeArgument) Equal(o TypeArgument) bool {
	if a.IsWildcard != o.IsWildcard || a.BoundKind != o.BoundKind {
		return false
	}
	return descriptorPtrEqual(a.Type, o.Type) && descriptorPtrEqual(a.Bound, o.Bound)
}

func descriptorPtrEqual(a, b *TypeDescriptor) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}

func (t TypeDescriptor) String() string {
	var sb strings.Builder
	t.write(&sb)
	return sb.String()
}

func (t TypeDescriptor) write(sb *strings.Builder) {
	sb.WriteString(t.Name)
	if len(t.TypeArguments) > 0 {
		sb.WriteByte('<')
		for i, a := range t.TypeArguments {
			if i > 0 {
				sb.WriteString(", ")
			}
			a.write(sb)
		}
		sb.WriteByte('>')
	}
	for i := 0; i < t.ArrayDepth; i++ {
		sb.WriteString("[]")
	}
	if t.IsVarargs {
		sb.WriteString("...")
	}
}

func (a TypeArgument) String() string {
	var sb strings.Builder
	a.write(&sb)
	return sb.String()
}

func (a TypeArgument) write(sb *strings.Builder) {
	if !a.IsWildcard {
		if a.Type != nil {
			a.Type.write(sb)
		}
		return
	}
	sb.WriteByte('?')
	if a.BoundKind != "" && a.Bound != nil {
		sb.WriteByte(' ')
		sb.WriteString(a.BoundKind)
		sb.WriteByte(' ')
		a.Bound.write(sb)
	}
}

func (t TypeDescriptor) IsPrimitive() bool {
	if t.ArrayDepth > 0 || t.IsVarargs {
		return false
	}
	switch t.Name {
	case "boolean", "byte", "char", "short", "int", "long", "float", "double":
		return true
	}
	return false
}

func (t TypeDescriptor) IsVoid() bool {
	return t.Name == "void" && t.ArrayDepth == 0
}
