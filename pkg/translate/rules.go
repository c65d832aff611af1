package translate

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jinzhu/inflection"

	"github.com/cmmoran/overloadgen/pkg/model"
)

// atomicType is the default leaf table. Callback, Element, ElementCtor and
// the UnionN family live in the generated support package; everything else
// maps onto builtins. Opaque passthrough identifiers come through unchanged,
// assuming the name is already valid in generated code.
func atomicType(_ *Bundle, a *model.Atomic) (string, error) {
	switch a.Kind {
	case model.KindString:
		return "string", nil
	case model.KindNumber:
		return "float64", nil
	case model.KindBool:
		return "bool", nil
	case model.KindFunc:
		return "Callback", nil
	case model.KindObject:
		return "any", nil
	case model.KindElement:
		return "Element", nil
	case model.KindElementCtor:
		return "ElementCtor", nil
	case model.KindLiteral:
		// A literal type is only representable as an enum overload at the
		// top level; inline it widens to the plain string type.
		return "string", nil
	case model.KindOther:
		return a.Text, nil
	default:
		return "", fmt.Errorf("atomic translation: unknown kind %d", a.Kind)
	}
}

// nestedArray renders the element inline and wraps it in slice notation.
func nestedArray(b *Bundle, a *model.Array) (string, error) {
	elem, err := Nested(b, a.Elem)
	if err != nil {
		return "", err
	}
	return "[]" + elem, nil
}

// nestedObject renders a structural record as an anonymous struct literal
// type. Field order follows the signature; optional fields wrap their type
// in a pointer.
func nestedObject(b *Bundle, o *model.Object) (string, error) {
	var sb strings.Builder
	sb.WriteString("struct{ ")
	for i, f := range o.Fields {
		if i > 0 {
			sb.WriteString("; ")
		}
		ft, err := Nested(b, f.Type)
		if err != nil {
			return "", err
		}
		if f.Optional {
			ft = "*" + ft
		}
		sb.WriteString(b.MemberIdent(f.Name))
		sb.WriteByte(' ')
		sb.WriteString(ft)
	}
	sb.WriteString(" }")
	return sb.String(), nil
}

// nestedUnion renders each case inline, widening string-literal cases to the
// plain string type, de-duplicates by rendered text, and instantiates the
// UnionN family for 2..MaxUnionArity distinct cases.
func nestedUnion(b *Bundle, u *model.Union) (string, error) {
	rendered := make([]string, 0, len(u.Cases))
	seen := make(map[string]bool, len(u.Cases))
	for _, c := range u.Cases {
		var (
			txt string
			err error
		)
		if a, ok := c.(*model.Atomic); ok && a.Kind == model.KindLiteral {
			txt, err = b.Atomic(b, &model.Atomic{Kind: model.KindString})
		} else {
			txt, err = Nested(b, c)
		}
		if err != nil {
			return "", err
		}
		if seen[txt] {
			continue
		}
		seen[txt] = true
		rendered = append(rendered, txt)
	}

	switch n := len(rendered); {
	case n == 0:
		return "", fmt.Errorf("nested union translation: %w", ErrEmptyUnion)
	case n == 1:
		return rendered[0], nil
	case n > b.maxArity():
		return "", fmt.Errorf("nested union of %d cases exceeds Union%d: %w",
			n, b.maxArity(), ErrUnsupportedArity)
	default:
		return fmt.Sprintf("Union%d[%s]", n, strings.Join(rendered, ", ")), nil
	}
}

// topAtomic produces one overload with a conventionally named parameter whose
// body forwards it unchanged.
func topAtomic(b *Bundle, a *model.Atomic) ([]model.Overload, error) {
	typ, err := b.Atomic(b, a)
	if err != nil {
		return nil, err
	}
	name := b.ParamIdent("value")
	return []model.Overload{&model.Regular{
		Params: name + " " + typ,
		Body:   name,
	}}, nil
}

// topObject produces one overload whose parameter list mirrors the object's
// fields in original order. The body builds a record literal keyed by the
// ORIGINAL field names, round-tripping the identifier adaptation.
func topObject(b *Bundle, o *model.Object) ([]model.Overload, error) {
	var params, body strings.Builder
	body.WriteString("map[string]any{")
	for i, f := range o.Fields {
		typ, err := Nested(b, f.Type)
		if err != nil {
			return nil, err
		}
		if f.Optional {
			typ = "*" + typ
		}
		name := b.ParamIdent(f.Name)
		if i > 0 {
			params.WriteString(", ")
			body.WriteString(", ")
		}
		params.WriteString(name)
		params.WriteByte(' ')
		params.WriteString(typ)
		fmt.Fprintf(&body, "%q: %s", f.Name, name)
	}
	body.WriteString("}")
	return []model.Overload{&model.Regular{
		Params: params.String(),
		Body:   body.String(),
	}}, nil
}

// topArray produces one variadic overload; the body forwards the received
// sequence unchanged.
func topArray(b *Bundle, a *model.Array) ([]model.Overload, error) {
	elem, err := Nested(b, a.Elem)
	if err != nil {
		return nil, err
	}
	name := inflection.Plural(b.ParamIdent("value"))
	return []model.Overload{&model.Regular{
		Params: name + " ..." + elem,
		Body:   name,
	}}, nil
}

// topUnion translates case by case: string-literal cases become zero-argument
// enum overloads named from the literal, every other case is recursively
// top-level translated. The combined list is de-duplicated in
// first-occurrence order so that identically translating cases cannot produce
// colliding method signatures.
func topUnion(b *Bundle, u *model.Union) ([]model.Overload, error) {
	if len(u.Cases) == 0 {
		return nil, fmt.Errorf("top-level union translation: %w", ErrEmptyUnion)
	}

	var out []model.Overload
	for _, c := range u.Cases {
		if a, ok := c.(*model.Atomic); ok && a.Kind == model.KindLiteral {
			out = append(out, &model.Enum{
				Name:   b.MemberIdent(a.Text),
				Params: "",
				Body:   strconv.Quote(a.Text),
			})
			continue
		}
		ovs, err := TopLevel(b, c)
		if err != nil {
			return nil, err
		}
		out = append(out, ovs...)
	}
	return model.DedupOverloads(out), nil
}
