package java

import (
	"strconv"
	"strings"
)

// AnnotationUse is an annotation attached to a method.
//
// Value holds the raw source text of a single-member argument, as in
// @BladeSwap("run"). Literal is set only when that argument is a plain
// string literal. Element-value pairs such as @A(value = "x") land in Pairs
// and never populate Value.
type AnnotationUse struct {
	Name    string
	Value   string
	Literal *string
	Pairs   []ElementValuePair
}

type ElementValuePair struct {
	Name  string
	Value string
}

// SimpleName strips any package or enclosing-type qualifier.
func (a AnnotationUse) SimpleName() string {
	if i := strings.LastIndexByte(a.Name, '.'); i >= 0 {
		return a.Name[i+1:]
	}
	return a.Name
}

// StringValue returns the single string-literal argument, if there is one.
func (a AnnotationUse) StringValue() (string, bool) {
	if a.Literal == nil {
		return "", false
	}
	return *a.Literal, true
}

// decodeStringLiteral turns Java string literal source text into its value.
// Text blocks ("""...""") lose their incidental indentation and trailing
// spaces before escapes are translated.
func decodeStringLiteral(src string) (string, bool) {
	if len(src) >= 6 && strings.HasPrefix(src, `"""`) && strings.HasSuffix(src, `"""`) {
		body := src[3 : len(src)-3]
		i := strings.IndexByte(body, '\n')
		if i < 0 {
			return "", false
		}
		return translateEscapes(stripIndent(body[i+1:]))
	}
	if len(src) < 2 || src[0] != '"' || src[len(src)-1] != '"' {
		return "", false
	}
	return translateEscapes(src[1 : len(src)-1])
}

// stripIndent removes the common leading whitespace of the non-blank lines
// and of the last line, and trailing whitespace of every line.
func stripIndent(body string) string {
	lines := strings.Split(strings.ReplaceAll(body, "\r\n", "\n"), "\n")
	last := len(lines) - 1

	indent := -1
	for i, line := range lines {
		trimmed := strings.TrimLeft(line, " \t\f")
		if trimmed == "" && i != last {
			continue
		}
		if n := len(line) - len(trimmed); indent < 0 || n < indent {
			indent = n
		}
	}

	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			lines[i] = ""
			continue
		}
		lines[i] = strings.TrimRight(line[indent:], " \t\f")
	}
	return strings.Join(lines, "\n")
}

// translateEscapes decodes Java escape sequences, including octal escapes,
// \s, unicode escapes and the text block line continuation.
func translateEscapes(s string) (string, bool) {
	if !strings.Contains(s, `\`) {
		return s, true
	}

	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' {
			sb.WriteByte(c)
			continue
		}
		i++
		if i >= len(s) {
			return "", false
		}
		switch c = s[i]; c {
		case 'b':
			sb.WriteByte('\b')
		case 't':
			sb.WriteByte('\t')
		case 'n':
			sb.WriteByte('\n')
		case 'f':
			sb.WriteByte('\f')
		case 'r':
			sb.WriteByte('\r')
		case 's':
			sb.WriteByte(' ')
		case '"', '\'', '\\':
			sb.WriteByte(c)
		case '\n':
			// line continuation
		case 'u':
			for i+1 < len(s) && s[i+1] == 'u' {
				i++
			}
			if i+4 >= len(s) {
				return "", false
			}
			r, err := strconv.ParseUint(s[i+1:i+5], 16, 16)
			if err != nil {
				return "", false
			}
			sb.WriteRune(rune(r))
			i += 4
		default:
			if c < '0' || c > '7' {
				return "", false
			}
			// Up to three digits when the first is 0-3, otherwise two.
			digits := 2
			if c <= '3' {
				digits = 3
			}
			v := int(c - '0')
			for n := 1; n < digits && i+1 < len(s) && s[i+1] >= '0' && s[i+1] <= '7'; n++ {
				i++
				v = v*8 + int(s[i]-'0')
			}
			sb.WriteRune(rune(v))
		}
	}
	return sb.String(), true
}
