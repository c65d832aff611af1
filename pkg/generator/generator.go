// Package generator is the public entry façade combining the signature
// parser and the overload translator. All entry points are pure and safe for
// concurrent use.
package generator

import (
	"github.com/cmmoran/overloadgen/internal/parser"
	"github.com/cmmoran/overloadgen/pkg/model"
	"github.com/cmmoran/overloadgen/pkg/translate"
)

// Customizer replaces any subset of translation rules on a default bundle.
type Customizer func(*translate.Bundle)

// Parse parses signature text into a type tree. Failures are returned as
// *parser.SyntaxError carrying the offending offset.
func Parse(text string) (model.Type, error) {
	return parser.Parse(text)
}

// Translate converts a parsed type tree into overloads using the default
// rule bundle.
func Translate(t model.Type) ([]model.Overload, error) {
	return translate.TopLevel(translate.Default(), t)
}

// TranslateWith converts a parsed type tree into overloads using a
// customized rule bundle.
func TranslateWith(customize Customizer, t model.Type) ([]model.Overload, error) {
	return translate.TopLevel(translate.Customize(customize), t)
}

// ParseAndTranslate parses signature text and translates it with the default
// rule bundle.
func ParseAndTranslate(text string) ([]model.Overload, error) {
	t, err := parser.Parse(text)
	if err != nil {
		return nil, err
	}
	return Translate(t)
}

// ParseAndTranslateWith parses signature text and translates it with a
// customized rule bundle.
func ParseAndTranslateWith(customize Customizer, text string) ([]model.Overload, error) {
	t, err := parser.Parse(text)
	if err != nil {
		return nil, err
	}
	return TranslateWith(customize, t)
}
