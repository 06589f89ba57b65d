package java

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeStringLiteral(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
		ok   bool
	}{
		{"plain", `"bar"`, "bar", true},
		{"empty", `""`, "", true},
		{"quote and backslash", `"a\"b\\c"`, `a"b\c`, true},
		{"control escapes", `"\t\n\r\b\f"`, "\t\n\r\b\f", true},
		{"space escape", `"a\sb"`, "a b", true},
		{"single octal digit", `"x\7"`, "x\a", true},
		{"two octal digits", `"\12"`, "\n", true},
		{"three octal digits", `"\141"`, "a", true},
		{"octal stops after two digits above 3", `"\477"`, "'7", true},
		{"unicode escape", `"\u0062ar"`, "bar", true},
		{"repeated u", `"\uu0062ar"`, "bar", true},
		{"unknown escape", `"\q"`, "", false},
		{"truncated unicode", `"\u00"`, "", false},
		{"not a literal", `bar`, "", false},
		{"text block", "\"\"\"\n    bar\"\"\"", "bar", true},
		{"text block closing line", "\"\"\"\n    bar\n    \"\"\"", "bar\n", true},
		{"text block closing line sets indent", "\"\"\"\n    bar\n  \"\"\"", "  bar\n", true},
		{"text block relative indent", "\"\"\"\n    a\n      b\n\n    c\"\"\"", "a\n  b\n\nc", true},
		{"text block trailing spaces", "\"\"\"\n  bar   \"\"\"", "bar", true},
		{"text block escapes", "\"\"\"\n  a\\sb\\\n  c\"\"\"", "a bc", true},
		{"text block on one line", `"""bar"""`, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := decodeStringLiteral(tt.src)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
