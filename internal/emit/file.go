// Package emit splices translated overloads into complete generated Go
// source files and produces the runtime support package they depend on.
package emit

import (
	"bytes"
	"fmt"
	"strconv"
	"text/template"

	"golang.org/x/tools/imports"

	"github.com/cmmoran/overloadgen/pkg/model"
	"github.com/cmmoran/overloadgen/pkg/translate"
)

// Component is one named signature's worth of overloads, ready to splice.
// Name is the source property name exactly as documented.
type Component struct {
	Name      string
	Overloads []model.Overload
}

type method struct {
	Name   string
	Params string
	Prop   string
	Body   string
}

var fileTemplate = template.Must(template.New("bindings").Parse(`// Code generated by overloadgen. DO NOT EDIT.

package {{.Package}}
{{if .SupportImport}}
import . {{printf "%q" .SupportImport}}
{{end}}{{range .Methods}}
func (e *{{$.Receiver}}) {{.Name}}({{.Params}}) *{{$.Receiver}} {
	return e.Set({{printf "%q" .Prop}}, {{.Body}})
}
{{end}}`))

// File renders a complete generated source file for the given components and
// post-processes it with goimports. supportImport may be empty when the
// generated file lives in the support package itself.
func File(pkgName, receiver, supportImport string, comps []Component) ([]byte, error) {
	data := struct {
		Package       string
		Receiver      string
		SupportImport string
		Methods       []method
	}{
		Package:       pkgName,
		Receiver:      receiver,
		SupportImport: supportImport,
	}
	for _, c := range comps {
		data.Methods = append(data.Methods, flatten(c)...)
	}

	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("render generated source: %w", err)
	}

	out, err := imports.Process(pkgName+".go", buf.Bytes(), nil)
	if err != nil {
		return nil, fmt.Errorf("format generated source: %w", err)
	}
	return out, nil
}

// flatten assigns Go method names. Go has no overloading, so the first
// regular overload takes the component name and later ones get ordinal
// suffixes; enum overloads append their derived name to the component name.
func flatten(c Component) []method {
	base := translate.MemberIdent(c.Name)
	out := make([]method, 0, len(c.Overloads))
	regular := 0
	for _, o := range c.Overloads {
		switch v := o.(type) {
		case *model.Regular:
			regular++
			name := base
			if regular > 1 {
				name += strconv.Itoa(regular)
			}
			out = append(out, method{Name: name, Params: v.Params, Prop: c.Name, Body: v.Body})
		case *model.Enum:
			out = append(out, method{Name: base + v.Name, Params: v.Params, Prop: c.Name, Body: v.Body})
		}
	}
	return out
}
