package format

import (
	"encoding/json"
	"io"

	"github.com/dhamidi/swapcheck/java"
	"github.com/dhamidi/swapcheck/java/parser"
)

// UnitJSONEncoder dumps the declaration model of a compilation unit.
type UnitJSONEncoder struct {
	w io.Writer
}

func NewUnitJSONEncoder(w io.Writer) *UnitJSONEncoder {
	return &UnitJSONEncoder{w: w}
}

func (e *UnitJSONEncoder) Encode(unit *java.CompilationUnit) error {
	text, err := e.MarshalText(unit)
	if err != nil {
		return err
	}
	if _, err := e.w.Write(text); err != nil {
		return err
	}
	_, err = io.WriteString(e.w, "\n")
	return err
}

func (e *UnitJSONEncoder) MarshalText(unit *java.CompilationUnit) ([]byte, error) {
	return json.MarshalIndent(unitToJSON(unit), "", "  ")
}

type unitJSON struct {
	File    string      `json:"file"`
	Package string      `json:"package,omitempty"`
	Types   []*typeJSON `json:"types,omitempty"`
}

type typeJSON struct {
	Name    string        `json:"name"`
	Kind    string        `json:"kind"`
	Span    spanJSON      `json:"span"`
	Methods []*methodJSON `json:"methods,omitempty"`
	Types   []*typeJSON   `json:"types,omitempty"`
}

type methodJSON struct {
	Name        string           `json:"name"`
	Signature   string           `json:"signature"`
	ReturnType  descriptorJSON   `json:"returnType"`
	Parameters  []parameterJSON  `json:"parameters,omitempty"`
	Annotations []annotationJSON `json:"annotations,omitempty"`
	Span        spanJSON         `json:"span"`
}

type parameterJSON struct {
	Name string         `json:"name"`
	Type descriptorJSON `json:"type"`
}

type descriptorJSON struct {
	Name          string   `json:"name"`
	TypeArguments []string `json:"typeArguments,omitempty"`
	ArrayDepth    int      `json:"arrayDepth,omitempty"`
	Varargs       bool     `json:"varargs,omitempty"`
}

type annotationJSON struct {
	Name    string            `json:"name"`
	Value   string            `json:"value,omitempty"`
	Literal *string           `json:"literal,omitempty"`
	Pairs   map[string]string `json:"pairs,omitempty"`
}

type spanJSON struct {
	Start positionJSON `json:"start"`
	End   positionJSON `json:"end"`
}

type positionJSON struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

func unitToJSON(u *java.CompilationUnit) *unitJSON {
	ju := &unitJSON{File: u.File, Package: u.Package}
	for _, t := range u.Types {
		ju.Types = append(ju.Types, typeToJSON(t))
	}
	return ju
}

func typeToJSON(t *java.TypeDeclaration) *typeJSON {
	jt := &typeJSON{
		Name: t.Name,
		Kind: string(t.Kind),
		Span: spanToJSON(t.Span),
	}
	for _, m := range t.Methods {
		jt.Methods = append(jt.Methods, methodToJSON(m))
	}
	for _, nested := range t.Types {
		jt.Types = append(jt.Types, typeToJSON(nested))
	}
	return jt
}

func methodToJSON(m *java.MethodDeclaration) *methodJSON {
	jm := &methodJSON{
		Name:       m.Name,
		Signature:  m.Signature(),
		ReturnType: descriptorToJSON(m.ReturnType),
		Span:       spanToJSON(m.Span),
	}
	for _, p := range m.Parameters {
		jm.Parameters = append(jm.Parameters, parameterJSON{Name: p.Name, Type: descriptorToJSON(p.Type)})
	}
	for _, a := range m.Annotations {
		ja := annotationJSON{Name: a.Name, Value: a.Value, Literal: a.Literal}
		if len(a.Pairs) > 0 {
			ja.Pairs = make(map[string]string, len(a.Pairs))
			for _, p := range a.Pairs {
				ja.Pairs[p.Name] = p.Value
			}
		}
		jm.Annotations = append(jm.Annotations, ja)
	}
	return jm
}

func descriptorToJSON(t java.TypeDescriptor) descriptorJSON {
	jd := descriptorJSON{
		Name:       t.Name,
		ArrayDepth: t.ArrayDepth,
		Varargs:    t.IsVarargs,
	}
	for _, arg := range t.TypeArguments {
		jd.TypeArguments = append(jd.TypeArguments, arg.String())
	}
	return jd
}

func spanToJSON(s parser.Span) spanJSON {
	return spanJSON{
		Start: positionJSON{Line: s.Start.Line, Column: s.Start.Column},
		End:   positionJSON{Line: s.End.Line, Column: s.End.Column},
	}
}
