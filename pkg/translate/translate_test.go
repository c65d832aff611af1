package translate

import (
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/cmmoran/overloadgen/internal/parser"
	"github.com/cmmoran/overloadgen/pkg/model"
)

func mustParse(t *testing.T, in string) model.Type {
	t.Helper()
	typ, err := parser.Parse(in)
	require.NoError(t, err)
	return typ
}

func TestNested(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"string", "string", "string"},
		{"number", "number", "float64"},
		{"bool", "bool", "bool"},
		{"func", "func", "Callback"},
		{"object keyword", "object", "any"},
		{"element", "element", "Element"},
		{"elementType", "elementType", "ElementCtor"},
		{"passthrough", "Widget", "Widget"},
		{"literal widens to string", `"red"`, "string"},
		{"array", "Array<string>", "[]string"},
		{"array of array", "Array<Array<number>>", "[][]float64"},
		{"object", "{a: string, b?: number}", "struct{ A string; B *float64 }"},
		{"object with func field", "{handler: func}", "struct{ Handler Callback }"},
		{"dashed field name", "{aria-label: string}", "struct{ AriaLabel string }"},
		{"union of two", "number|string", "Union2[float64, string]"},
		{"union of three", "number|string|bool", "Union3[float64, string, bool]"},
		{"literal union collapses to string", `"red"|"blue"`, "string"},
		{"literal and string dedup", `"auto"|string`, "string"},
		{"literal widens inside union", `"auto"|number`, "Union2[string, float64]"},
		{"union in array", "Array<number|string>", "[]Union2[float64, string]"},
		{"duplicate case texts dedup", "float64|number", "float64"},
		{
			"object nesting everything",
			"{kind: 'big'|'small', items?: Array<element>}",
			"struct{ Kind string; Items *[]Element }",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Nested(Default(), mustParse(t, tt.in))
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestNestedUnionArity(t *testing.T) {
	caseText := func(n int) string {
		cases := make([]string, n)
		for i := range cases {
			cases[i] = fmt.Sprintf("T%d", i)
		}
		return strings.Join(cases, "|")
	}

	t.Run("nine distinct cases render Union9", func(t *testing.T) {
		got, err := Nested(Default(), mustParse(t, caseText(9)))
		require.NoError(t, err)
		require.Equal(t, "Union9[T0, T1, T2, T3, T4, T5, T6, T7, T8]", got)
	})

	t.Run("ten distinct cases exceed the family", func(t *testing.T) {
		_, err := Nested(Default(), mustParse(t, caseText(10)))
		require.ErrorIs(t, err, ErrUnsupportedArity)
	})

	t.Run("ceiling is configurable", func(t *testing.T) {
		b := Customize(func(b *Bundle) { b.MaxUnionArity = 3 })
		_, err := Nested(b, mustParse(t, caseText(4)))
		require.ErrorIs(t, err, ErrUnsupportedArity)

		got, err := Nested(b, mustParse(t, caseText(3)))
		require.NoError(t, err)
		require.Equal(t, "Union3[T0, T1, T2]", got)
	})

	t.Run("empty union", func(t *testing.T) {
		_, err := Nested(Default(), &model.Union{})
		require.ErrorIs(t, err, ErrEmptyUnion)
	})
}

func TestTopLevel(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []model.Overload
	}{
		{
			"atomic",
			"number",
			[]model.Overload{&model.Regular{Params: "value float64", Body: "value"}},
		},
		{
			"passthrough atomic",
			"Widget",
			[]model.Overload{&model.Regular{Params: "value Widget", Body: "value"}},
		},
		{
			"object keyed by original names",
			"{a: string, b?: number}",
			[]model.Overload{&model.Regular{
				Params: "a string, b *float64",
				Body:   `map[string]any{"a": a, "b": b}`,
			}},
		},
		{
			"object adapts parameter names",
			"{aria-label: string, type: number}",
			[]model.Overload{&model.Regular{
				Params: "ariaLabel string, type_ float64",
				Body:   `map[string]any{"aria-label": ariaLabel, "type": type_}`,
			}},
		},
		{
			"array is variadic",
			"Array<number>",
			[]model.Overload{&model.Regular{Params: "values ...float64", Body: "values"}},
		},
		{
			"literal union becomes enum overloads",
			`"red"|"blue"`,
			[]model.Overload{
				&model.Enum{Name: "Red", Params: "", Body: `"red"`},
				&model.Enum{Name: "Blue", Params: "", Body: `"blue"`},
			},
		},
		{
			"mixed union",
			`"auto"|number`,
			[]model.Overload{
				&model.Enum{Name: "Auto", Params: "", Body: `"auto"`},
				&model.Regular{Params: "value float64", Body: "value"},
			},
		},
		{
			"union cases translating identically dedup",
			"float64|number",
			[]model.Overload{&model.Regular{Params: "value float64", Body: "value"}},
		},
		{
			"union of array and object",
			"Array<string>|{a: bool}",
			[]model.Overload{
				&model.Regular{Params: "values ...string", Body: "values"},
				&model.Regular{Params: "a bool", Body: `map[string]any{"a": a}`},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := TopLevel(Default(), mustParse(t, tt.in))
			require.NoError(t, err)
			require.Empty(t, cmp.Diff(tt.want, got))
		})
	}
}

func TestTopLevelEmptyUnion(t *testing.T) {
	_, err := TopLevel(Default(), &model.Union{})
	require.ErrorIs(t, err, ErrEmptyUnion)
}

// Overriding only the atomic rule must reach every atomic leaf through the
// default object/array/union rules without changing their structure.
func TestCustomizeAtomicRule(t *testing.T) {
	custom := func(b *Bundle) {
		def := b.Atomic
		b.Atomic = func(b *Bundle, a *model.Atomic) (string, error) {
			if a.Kind == model.KindNumber {
				return "int64", nil
			}
			return def(b, a)
		}
	}

	typ := mustParse(t, "{a: number, b?: Array<number>, c: number|string}")
	got, err := TopLevel(Customize(custom), typ)
	require.NoError(t, err)

	want := []model.Overload{&model.Regular{
		Params: "a int64, b *[]int64, c Union2[int64, string]",
		Body:   `map[string]any{"a": a, "b": b, "c": c}`,
	}}
	require.Empty(t, cmp.Diff(want, got))

	// Arity rules still apply with the override in place.
	_, err = Nested(Customize(custom), &model.Union{})
	require.ErrorIs(t, err, ErrEmptyUnion)
}

func TestTranslateDeterministic(t *testing.T) {
	typ := mustParse(t, `{kind: "big"|"small", size?: number}`)
	first, err := TopLevel(Default(), typ)
	require.NoError(t, err)
	second, err := TopLevel(Default(), typ)
	require.NoError(t, err)
	require.Empty(t, cmp.Diff(first, second))
}
