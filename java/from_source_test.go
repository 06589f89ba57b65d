package java

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhamidi/swapcheck/java/parser"
)

func parseUnit(t *testing.T, source string) *CompilationUnit {
	t.Helper()
	unit, err := CompilationUnitFromSource(context.Background(), []byte(source), parser.WithFile("Test.java"))
	require.NoError(t, err)
	return unit
}

func findType(unit *CompilationUnit, qualified string) *TypeDeclaration {
	for _, td := range unit.AllTypes() {
		if td.QualifiedName() == qualified {
			return td
		}
	}
	return nil
}

func findMethod(td *TypeDeclaration, name string) *MethodDeclaration {
	for _, m := range td.Methods {
		if m.Name == name {
			return m
		}
	}
	return nil
}

func TestCompilationUnitFromSource(t *testing.T) {
	unit := parseUnit(t, `package com.example.hooks;

import org.bladetools.BladeSwap;

public class Hooks {
    private int count;

    public Hooks() {}

    @BladeSwap("onCreate")
    public void hookCreate(android.os.Bundle state) {}

    public void onCreate(android.os.Bundle state) {}

    static class Inner {
        String name(int index, long offset) { return null; }
    }

    interface Callback {
        void done();
    }
}
`)

	assert.Equal(t, "Test.java", unit.File)
	assert.Equal(t, "com.example.hooks", unit.Package)
	require.Len(t, unit.Types, 1)

	hooks := unit.Types[0]
	t.Run("top level type", func(t *testing.T) {
		assert.Equal(t, "Hooks", hooks.Name)
		assert.Equal(t, TypeKindClass, hooks.Kind)
		assert.Nil(t, hooks.Enclosing)
		assert.Equal(t, 5, hooks.Span.Start.Line)
	})

	t.Run("constructors and fields are not methods", func(t *testing.T) {
		require.Len(t, hooks.Methods, 2)
		assert.Equal(t, "hookCreate", hooks.Methods[0].Name)
		assert.Equal(t, "onCreate", hooks.Methods[1].Name)
	})

	t.Run("methods point back to their type", func(t *testing.T) {
		for _, m := range hooks.Methods {
			assert.Same(t, hooks, m.Owner)
		}
	})

	t.Run("annotation", func(t *testing.T) {
		m := hooks.Methods[0]
		a, ok := m.Annotation("BladeSwap")
		require.True(t, ok)
		v, ok := a.StringValue()
		require.True(t, ok)
		assert.Equal(t, "onCreate", v)
		assert.Equal(t, `"onCreate"`, a.Value)
		assert.Equal(t, 10, m.Span.Start.Line)
	})

	t.Run("signature", func(t *testing.T) {
		assert.Equal(t, "hookCreate(android.os.Bundle): void", hooks.Methods[0].Signature())
		assert.True(t, hooks.Methods[0].SameSignature(hooks.Methods[1]))
	})

	t.Run("nested types", func(t *testing.T) {
		require.Len(t, hooks.Types, 2)

		inner := findType(unit, "Hooks.Inner")
		require.NotNil(t, inner)
		assert.Same(t, hooks, inner.Enclosing)
		require.Len(t, inner.Methods, 1)
		assert.Equal(t, "name(int, long): String", inner.Methods[0].Signature())
		assert.Equal(t, "index", inner.Methods[0].Parameters[0].Name)

		callback := findType(unit, "Hooks.Callback")
		require.NotNil(t, callback)
		assert.Equal(t, TypeKindInterface, callback.Kind)
		require.Len(t, callback.Methods, 1)
		assert.Equal(t, "done", callback.Methods[0].Name)
	})
}

func TestTypeDescriptors(t *testing.T) {
	tests := []struct {
		name   string
		method string
		want   string
	}{
		{"primitive", "void m(int a) {}", "m(int): void"},
		{"array", "void m(int[] a) {}", "m(int[]): void"},
		{"c style array", "void m(int a[]) {}", "m(int[]): void"},
		{"two dimensions", "void m(int[][] a, String b[]) {}", "m(int[][], String[]): void"},
		{"varargs", "void m(String... a) {}", "m(String...): void"},
		{"generic", "void m(List<String> a) {}", "m(List<String>): void"},
		{"nested generic", "void m(Map<String, List<Integer>> a) {}", "m(Map<String, List<Integer>>): void"},
		{"wildcard", "void m(List<?> a) {}", "m(List<?>): void"},
		{"bounded wildcard", "void m(List<? extends Number> a, List<? super Integer> b) {}", "m(List<? extends Number>, List<? super Integer>): void"},
		{"qualified", "void m(java.util.List<String> a) {}", "m(java.util.List<String>): void"},
		{"annotated parameter", "void m(@Deprecated final String a) {}", "m(String): void"},
		{"return array", "String[] m() { return null; }", "m(): String[]"},
		{"c style return array", "int m()[] { return null; }", "m(): int[]"},
		{"generic method", "<T> T m(T a) { return a; }", "m(T): T"},
		{"primitives", "boolean m(byte a, char b, short c, long d, float e, double f) { return true; }", "m(byte, char, short, long, float, double): boolean"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			unit := parseUnit(t, "class T { "+tt.method+" }")
			require.Len(t, unit.Types, 1)
			require.Len(t, unit.Types[0].Methods, 1)
			assert.Equal(t, tt.want, unit.Types[0].Methods[0].Signature())
		})
	}
}

func TestTypeDescriptorEquality(t *testing.T) {
	unit := parseUnit(t, `class T {
    void a(int[] x) {}
    void b(int x[]) {}
    void c(int... x) {}
    void d(List<String> x) {}
    void e(List<Object> x) {}
    void f(java.util.List<String> x) {}
    void g(List x) {}
}`)
	td := unit.Types[0]
	m := func(name string) *MethodDeclaration {
		found := findMethod(td, name)
		require.NotNil(t, found, name)
		return found
	}

	assert.True(t, m("a").SameSignature(m("b")), "bracket placement does not matter")
	assert.False(t, m("a").SameSignature(m("c")), "varargs differ from arrays")
	assert.False(t, m("d").SameSignature(m("e")), "type arguments are compared")
	assert.False(t, m("d").SameSignature(m("f")), "names are not resolved")
	assert.False(t, m("d").SameSignature(m("g")), "raw and parameterized types differ")
}

func TestAnnotationArguments(t *testing.T) {
	tests := []struct {
		name      string
		use       string
		wantName  string
		wantValue string
		literal   bool
	}{
		{"string literal", `@BladeSwap("bar")`, "BladeSwap", "bar", true},
		{"escaped literal", `@BladeSwap("b\"ar")`, "BladeSwap", `b"ar`, true},
		{"qualified name", `@org.bladetools.BladeSwap("bar")`, "BladeSwap", "bar", true},
		{"marker", `@BladeSwap`, "BladeSwap", "", false},
		{"empty arguments", `@BladeSwap()`, "BladeSwap", "", false},
		{"named pair", `@BladeSwap(value = "bar")`, "BladeSwap", "", false},
		{"constant", `@BladeSwap(Names.BAR)`, "BladeSwap", "", false},
		{"concatenation", `@BladeSwap("b" + "ar")`, "BladeSwap", "", false},
		{"array", `@BladeSwap({"bar"})`, "BladeSwap", "", false},
		{"octal escape", `@BladeSwap("x\7")`, "BladeSwap", "x\a", true},
		{"three digit octal escape", `@BladeSwap("\141r")`, "BladeSwap", "ar", true},
		{"space escape", `@BladeSwap("a\sb")`, "BladeSwap", "a b", true},
		{"text block", "@BladeSwap(\"\"\"\n        bar\"\"\")", "BladeSwap", "bar", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			unit := parseUnit(t, "class T { "+tt.use+" void foo() {} }")
			m := unit.Types[0].Methods[0]
			require.Len(t, m.Annotations, 1)

			a := m.Annotations[0]
			assert.Equal(t, tt.wantName, a.SimpleName())
			v, ok := a.StringValue()
			assert.Equal(t, tt.literal, ok)
			assert.Equal(t, tt.wantValue, v)
		})
	}

	t.Run("pairs are retained", func(t *testing.T) {
		unit := parseUnit(t, `class T { @BladeSwap(value = "bar", cold = true) void foo() {} }`)
		a := unit.Types[0].Methods[0].Annotations[0]
		assert.Equal(t, []ElementValuePair{{Name: "value", Value: `"bar"`}, {Name: "cold", Value: "true"}}, a.Pairs)
	})

	t.Run("several annotations", func(t *testing.T) {
		unit := parseUnit(t, `class T {
    @Override
    @SuppressWarnings("unchecked")
    @BladeSwap("bar")
    public void foo() {}
}`)
		m := unit.Types[0].Methods[0]
		require.Len(t, m.Annotations, 3)
		a, ok := m.Annotation("BladeSwap")
		require.True(t, ok)
		v, _ := a.StringValue()
		assert.Equal(t, "bar", v)
	})
}

func TestNestedScopes(t *testing.T) {
	unit := parseUnit(t, `class Outer {
    Runnable task = new Runnable() {
        public void run() {}
    };

    void work() {
        class Local {
            void step() {}
        }
    }

    enum Mode {
        FAST {
            void apply() {}
        },
        SLOW;

        void apply() {}
    }

    record Point(int x, int y) {
        int sum() { return x + y; }
    }
}`)

	outer := findType(unit, "Outer")
	require.NotNil(t, outer)
	require.Len(t, outer.Methods, 1)
	assert.Equal(t, "work", outer.Methods[0].Name)

	anon := findType(unit, "Outer.<anonymous Runnable>")
	require.NotNil(t, anon)
	assert.Equal(t, TypeKindAnonymous, anon.Kind)
	require.Len(t, anon.Methods, 1)
	assert.Equal(t, "run", anon.Methods[0].Name)

	local := findType(unit, "Outer.Local")
	require.NotNil(t, local)
	require.Len(t, local.Methods, 1)
	assert.Equal(t, "step", local.Methods[0].Name)

	mode := findType(unit, "Outer.Mode")
	require.NotNil(t, mode)
	assert.Equal(t, TypeKindEnum, mode.Kind)
	require.Len(t, mode.Methods, 1)

	fast := findType(unit, "Outer.Mode.<anonymous FAST>")
	require.NotNil(t, fast)
	require.Len(t, fast.Methods, 1)
	assert.Same(t, fast, fast.Methods[0].Owner)

	point := findType(unit, "Outer.Point")
	require.NotNil(t, point)
	assert.Equal(t, TypeKindRecord, point.Kind)
	require.Len(t, point.Methods, 1)
}

func TestCompilationUnitParseErrors(t *testing.T) {
	t.Run("syntax error", func(t *testing.T) {
		_, err := CompilationUnitFromSource(context.Background(), []byte("class T {\n  void foo( {}\n}\n"), parser.WithFile("Broken.java"))
		require.Error(t, err)

		var perr *parser.ParseError
		require.True(t, errors.As(err, &perr))
		assert.Equal(t, "Broken.java", perr.File)
		assert.Contains(t, err.Error(), "Unable to parse source Broken.java")
	})

	t.Run("unreadable file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "Missing.java")
		_, err := CompilationUnitFromFile(context.Background(), path)
		require.Error(t, err)

		var perr *parser.ParseError
		require.True(t, errors.As(err, &perr))
		assert.Equal(t, path, perr.File)
		assert.True(t, errors.Is(err, os.ErrNotExist))
	})

	t.Run("empty file", func(t *testing.T) {
		unit := parseUnit(t, "")
		assert.Empty(t, unit.Types)
	})
}
