package translate

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// goKeywords are reserved words a generated parameter name must not collide
// with. Exported names are capitalized and can never collide.
var goKeywords = map[string]bool{
	"break": true, "case": true, "chan": true, "const": true, "continue": true,
	"default": true, "defer": true, "else": true, "fallthrough": true, "for": true,
	"func": true, "go": true, "goto": true, "if": true, "import": true,
	"interface": true, "map": true, "package": true, "range": true, "return": true,
	"select": true, "struct": true, "switch": true, "type": true, "var": true,
}

// ParamIdent adapts a source field name into a valid unexported Go parameter
// identifier: word fragments (split on dashes, dots and similar separators)
// are joined lowerCamel, and keyword collisions get a trailing underscore.
// The mapping is total and deterministic; the original name is kept on the
// model.Field so no inverse is needed.
func ParamIdent(name string) string {
	words := splitWords(name)
	if len(words) == 0 {
		return "value"
	}

	var sb strings.Builder
	for i, w := range words {
		if i == 0 {
			sb.WriteString(lowerFirst(w))
			continue
		}
		sb.WriteString(upperFirst(w))
	}

	out := sb.String()
	if r, _ := utf8.DecodeRuneInString(out); unicode.IsDigit(r) {
		out = "_" + out
	}
	if goKeywords[out] {
		out += "_"
	}
	return out
}

// MemberIdent adapts a source name into an exported Go identifier, used for
// enum method names and anonymous struct fields.
func MemberIdent(name string) string {
	words := splitWords(name)
	if len(words) == 0 {
		return "X"
	}

	var sb strings.Builder
	for _, w := range words {
		sb.WriteString(upperFirst(w))
	}

	out := sb.String()
	if r, _ := utf8.DecodeRuneInString(out); unicode.IsDigit(r) {
		out = "X" + out
	}
	return out
}

// splitWords breaks a source name on everything that is not a letter or
// digit. Interior casing is preserved, so camelCase input survives intact.
func splitWords(name string) []string {
	return strings.FieldsFunc(name, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

func lowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}

func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
