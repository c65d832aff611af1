// Package translate turns parsed type trees into method-overload fragments
// for generated Go bindings. Every translation is a pure structural recursion
// over a finite tree; there is no shared state between calls.
package translate

import (
	"fmt"

	"github.com/cmmoran/overloadgen/pkg/model"
)

// DefaultMaxUnionArity mirrors the largest UnionN type in the generated
// support package.
const DefaultMaxUnionArity = 9

// Bundle carries the active translation rules. Default rules resolve every
// sub-translation through the bundle they receive rather than through a
// sibling function directly, so replacing one rule changes what all the
// others produce without touching them.
type Bundle struct {
	// MaxUnionArity caps the distinct case count of a nested union. Zero
	// means DefaultMaxUnionArity.
	MaxUnionArity int

	// ParamIdent and MemberIdent adapt source identifiers into target
	// parameter and member names. Both must be total and deterministic.
	ParamIdent  func(string) string
	MemberIdent func(string) string

	// Nested rules render a type as an inline type expression.
	Atomic       func(b *Bundle, a *model.Atomic) (string, error)
	NestedObject func(b *Bundle, o *model.Object) (string, error)
	NestedArray  func(b *Bundle, a *model.Array) (string, error)
	NestedUnion  func(b *Bundle, u *model.Union) (string, error)

	// Top-level rules render the outermost type of a signature as one or
	// more complete overloads.
	TopAtomic func(b *Bundle, a *model.Atomic) ([]model.Overload, error)
	TopObject func(b *Bundle, o *model.Object) ([]model.Overload, error)
	TopArray  func(b *Bundle, a *model.Array) ([]model.Overload, error)
	TopUnion  func(b *Bundle, u *model.Union) ([]model.Overload, error)
}

// Default returns a bundle populated with the default rules.
func Default() *Bundle {
	return &Bundle{
		MaxUnionArity: DefaultMaxUnionArity,
		ParamIdent:    ParamIdent,
		MemberIdent:   MemberIdent,
		Atomic:        atomicType,
		NestedObject:  nestedObject,
		NestedArray:   nestedArray,
		NestedUnion:   nestedUnion,
		TopAtomic:     topAtomic,
		TopObject:     topObject,
		TopArray:      topArray,
		TopUnion:      topUnion,
	}
}

// Customize applies fn to a fresh default bundle, letting callers replace
// any subset of rules while the rest stay default.
func Customize(fn func(*Bundle)) *Bundle {
	b := Default()
	if fn != nil {
		fn(b)
	}
	return b
}

// Nested renders t as a single composable type expression, for use inside
// another type (object field, array element, union case).
func Nested(b *Bundle, t model.Type) (string, error) {
	switch v := t.(type) {
	case *model.Atomic:
		return b.Atomic(b, v)
	case *model.Object:
		return b.NestedObject(b, v)
	case *model.Array:
		return b.NestedArray(b, v)
	case *model.Union:
		return b.NestedUnion(b, v)
	default:
		return "", fmt.Errorf("nested translation: unsupported type %T", t)
	}
}

// TopLevel renders the outermost type of a signature as one or more complete
// overloads.
func TopLevel(b *Bundle, t model.Type) ([]model.Overload, error) {
	switch v := t.(type) {
	case *model.Atomic:
		return b.TopAtomic(b, v)
	case *model.Object:
		return b.TopObject(b, v)
	case *model.Array:
		return b.TopArray(b, v)
	case *model.Union:
		return b.TopUnion(b, v)
	default:
		return nil, fmt.Errorf("top-level translation: unsupported type %T", t)
	}
}

func (b *Bundle) maxArity() int {
	if b.MaxUnionArity > 0 {
		return b.MaxUnionArity
	}
	return DefaultMaxUnionArity
}
