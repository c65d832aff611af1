// Package parser reads textual structural type signatures, the
// object/array/union/atomic shapes found in scraped documentation, and
// produces type trees consumed by the translator.
package parser

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/cmmoran/overloadgen/pkg/model"
)

// SyntaxError reports a malformed signature together with the byte offset of
// the offending input.
type SyntaxError struct {
	Offset int
	Msg    string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("signature syntax error at offset %d: %s", e.Offset, e.Msg)
}

// keywords maps recognized atomic keywords to their kinds. Keyword
// recognition happens before the generic-identifier fallback; anything not
// listed here parses as an opaque passthrough identifier.
var keywords = map[string]model.AtomicKind{
	"string":      model.KindString,
	"number":      model.KindNumber,
	"bool":        model.KindBool,
	"boolean":     model.KindBool,
	"func":        model.KindFunc,
	"function":    model.KindFunc,
	"Function":    model.KindFunc,
	"object":      model.KindObject,
	"Object":      model.KindObject,
	"any":         model.KindObject,
	"element":     model.KindElement,
	"Element":     model.KindElement,
	"elementType": model.KindElementCtor,
	"ElementType": model.KindElementCtor,
}

// Parse reads one complete signature. The grammar is anchored to the entire
// input: anything but whitespace after a fully parsed type is an error.
func Parse(text string) (model.Type, error) {
	p := &parser{src: text}
	t, err := p.parseType()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if !p.eof() {
		return nil, p.errorf("unexpected %q after complete type", p.remainder())
	}
	return t, nil
}

type parser struct {
	src string
	pos int
}

// parseType parses the union level: NonUnion ('|' NonUnion)*. Structurally
// equal cases are removed and a singleton union collapses to its only case,
// so no union wrapper is ever built for effectively single-case input.
func (p *parser) parseType() (model.Type, error) {
	first, err := p.parseNonUnion()
	if err != nil {
		return nil, err
	}
	cases := []model.Type{first}
	for {
		p.skipSpace()
		if !p.consume('|') {
			break
		}
		next, err := p.parseNonUnion()
		if err != nil {
			return nil, err
		}
		cases = append(cases, next)
	}

	cases = dedupCases(cases)
	if len(cases) == 1 {
		return cases[0], nil
	}
	return &model.Union{Cases: cases}, nil
}

// parseNonUnion dispatches on the lookahead shape: object brace, quoted
// literal, Array generic, or plain identifier.
func (p *parser) parseNonUnion() (model.Type, error) {
	p.skipSpace()
	if p.eof() {
		return nil, p.errorf("expected a type")
	}

	switch c := p.src[p.pos]; {
	case c == '{':
		return p.parseObject()

	case c == '\'' || c == '"':
		return p.parseLiteral()

	case isIdentStart(p.peekRune()):
		ident := p.parseIdent()
		if ident == "Array" {
			p.skipSpace()
			if p.consume('<') {
				return p.parseArrayRest()
			}
		}
		if kind, ok := keywords[ident]; ok {
			return &model.Atomic{Kind: kind}, nil
		}
		return &model.Atomic{Kind: model.KindOther, Text: ident}, nil

	default:
		return nil, p.errorf("expected a type, found %q", c)
	}
}

// parseArrayRest parses the remainder of Array '<' Type '>'; the opening
// angle bracket has already been consumed.
func (p *parser) parseArrayRest() (model.Type, error) {
	elem, err := p.parseType()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if !p.consume('>') {
		return nil, p.errorf("expected '>' to close Array")
	}
	return &model.Array{Elem: elem}, nil
}

// parseObject parses '{' Field (',' Field)* (',')? '}'. At least one field
// is required; a trailing comma is tolerated.
func (p *parser) parseObject() (model.Type, error) {
	p.consume('{')
	var fields []model.Field
	for {
		p.skipSpace()
		if p.eof() {
			return nil, p.errorf("unterminated object")
		}
		if !isIdentStart(p.peekRune()) {
			return nil, p.errorf("expected a field name")
		}
		name := p.parseIdent()
		p.skipSpace()
		optional := p.consume('?')
		p.skipSpace()
		if !p.consume(':') {
			return nil, p.errorf("expected ':' after field %q", name)
		}
		ft, err := p.parseType()
		if err != nil {
			return nil, err
		}
		fields = append(fields, model.Field{Name: name, Type: ft, Optional: optional})

		p.skipSpace()
		if p.consume(',') {
			p.skipSpace()
			if p.consume('}') {
				return &model.Object{Fields: fields}, nil
			}
			continue
		}
		if p.consume('}') {
			return &model.Object{Fields: fields}, nil
		}
		return nil, p.errorf("expected ',' or '}' in object")
	}
}

// parseLiteral parses a single- or double-quoted string literal. A backslash
// escapes the following character.
func (p *parser) parseLiteral() (model.Type, error) {
	start := p.pos
	quote := p.src[p.pos]
	p.pos++
	var out []byte
	for p.pos < len(p.src) {
		c := p.src[p.pos]
		switch c {
		case quote:
			p.pos++
			return &model.Atomic{Kind: model.KindLiteral, Text: string(out)}, nil
		case '\\':
			p.pos++
			if p.pos >= len(p.src) {
				return nil, &SyntaxError{Offset: start, Msg: "unterminated string literal"}
			}
			out = append(out, p.src[p.pos])
			p.pos++
		default:
			out = append(out, c)
			p.pos++
		}
	}
	return nil, &SyntaxError{Offset: start, Msg: "unterminated string literal"}
}

// parseIdent consumes an identifier. The caller has already checked
// isIdentStart on the lookahead rune.
func (p *parser) parseIdent() string {
	start := p.pos
	for p.pos < len(p.src) {
		r, size := utf8.DecodeRuneInString(p.src[p.pos:])
		if p.pos == start {
			if !isIdentStart(r) {
				break
			}
		} else if !isIdentPart(r) {
			break
		}
		p.pos += size
	}
	return p.src[start:p.pos]
}

// isIdentStart matches the first rune of an identifier.
func isIdentStart(r rune) bool {
	return unicode.IsLetter(r) || r == '_' || r == '$'
}

// isIdentPart matches subsequent identifier runes. Dots and dashes appear in
// documentation names (qualified type names, aria-style attributes), so they
// count as identifier characters here.
func isIdentPart(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '$' || r == '.' || r == '-'
}

// dedupCases removes structurally equal union cases, keeping first
// occurrence order.
func dedupCases(cases []model.Type) []model.Type {
	out := make([]model.Type, 0, len(cases))
	for _, c := range cases {
		dup := false
		for _, kept := range out {
			if model.Equal(kept, c) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, c)
		}
	}
	return out
}

// scanning helpers

func (p *parser) skipSpace() {
	for p.pos < len(p.src) {
		r, size := utf8.DecodeRuneInString(p.src[p.pos:])
		if !unicode.IsSpace(r) {
			return
		}
		p.pos += size
	}
}

func (p *parser) eof() bool {
	return p.pos >= len(p.src)
}

func (p *parser) peekRune() rune {
	r, _ := utf8.DecodeRuneInString(p.src[p.pos:])
	return r
}

// consume advances past c when it is the next byte.
func (p *parser) consume(c byte) bool {
	if p.pos < len(p.src) && p.src[p.pos] == c {
		p.pos++
		return true
	}
	return false
}

// remainder returns a short prefix of the unconsumed input for error messages.
func (p *parser) remainder() string {
	rest := p.src[p.pos:]
	if len(rest) > 16 {
		rest = rest[:16] + "…"
	}
	return rest
}

func (p *parser) errorf(format string, args ...any) *SyntaxError {
	return &SyntaxError{Offset: p.pos, Msg: fmt.Sprintf(format, args...)}
}
