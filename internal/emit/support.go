package emit

import (
	"fmt"

	"github.com/dave/jennifer/jen"
)

// SupportFile builds the runtime support source the generated bindings
// reference: the Element value and its Set method, the Callback and
// ElementCtor function types, and the UnionN family up to maxArity.
func SupportFile(pkgName string, maxArity int) *jen.File {
	f := jen.NewFile(pkgName)
	f.HeaderComment("Code generated by overloadgen. DO NOT EDIT.")

	f.Comment("Element is a UI element value; generated overloads hang off it as")
	f.Comment("fluent property setters.")
	f.Type().Id("Element").Struct(
		jen.Id("Tag").String(),
		jen.Id("Props").Map(jen.String()).Any(),
	)

	f.Comment("Set records a property value and returns the element for chaining.")
	f.Func().Params(jen.Id("e").Op("*").Id("Element")).Id("Set").
		Params(jen.Id("name").String(), jen.Id("value").Any()).
		Op("*").Id("Element").
		Block(
			jen.If(jen.Id("e").Dot("Props").Op("==").Nil()).Block(
				jen.Id("e").Dot("Props").Op("=").Make(jen.Map(jen.String()).Any()),
			),
			jen.Id("e").Dot("Props").Index(jen.Id("name")).Op("=").Id("value"),
			jen.Return(jen.Id("e")),
		)

	f.Comment("Callback is the target type of documented function values.")
	f.Type().Id("Callback").Func().Params(jen.Id("args").Op("...").Any())

	f.Comment("ElementCtor is the target type of documented element constructors.")
	f.Type().Id("ElementCtor").Func().
		Params(jen.Id("props").Map(jen.String()).Any()).
		Op("*").Id("Element")

	for n := 2; n <= maxArity; n++ {
		unionType(f, n)
	}

	return f
}

// unionType emits one discriminated-union type plus a constructor per arm.
func unionType(f *jen.File, n int) {
	name := fmt.Sprintf("Union%d", n)

	fields := []jen.Code{jen.Id("Case").Int()}
	for i := 1; i <= n; i++ {
		fields = append(fields, jen.Id(fmt.Sprintf("V%d", i)).Id(fmt.Sprintf("T%d", i)))
	}

	f.Commentf("%s is a discriminated union of %d cases; Case selects the populated arm (1-based).", name, n)
	f.Type().Id(name).Types(typeParams(n)...).Struct(fields...)

	for i := 1; i <= n; i++ {
		f.Func().Id(fmt.Sprintf("%sOf%d", name, i)).Types(typeParams(n)...).
			Params(jen.Id("v").Id(fmt.Sprintf("T%d", i))).
			Id(name).Index(jen.List(typeArgs(n)...)).
			Block(
				jen.Return(jen.Id(name).Index(jen.List(typeArgs(n)...)).Values(jen.Dict{
					jen.Id("Case"):                jen.Lit(i),
					jen.Id(fmt.Sprintf("V%d", i)): jen.Id("v"),
				})),
			)
	}
}

// typeParams and typeArgs build fresh statement lists each call; jen
// statements must not be shared between positions.

func typeParams(n int) []jen.Code {
	out := make([]jen.Code, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, jen.Id(fmt.Sprintf("T%d", i)).Any())
	}
	return out
}

func typeArgs(n int) []jen.Code {
	out := make([]jen.Code, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, jen.Id(fmt.Sprintf("T%d", i)))
	}
	return out
}
