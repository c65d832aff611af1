package model

// Overload is one generated method variant. The only implementations are
// Regular and Enum.
type Overload interface {
	isOverload()
	// DedupKey identifies an overload for de-duplication: two overloads with
	// the same key would collide as method signatures in generated code.
	DedupKey() string
}

// Regular is a normal overload: a rendered parameter list and a forwarding
// body expression.
type Regular struct {
	Params string
	Body   string
}

// Enum is a zero-argument, specially-named overload standing in for one
// string-literal union case. Name is derived from the literal text; Body
// supplies the literal directly so callers invoke a descriptively named
// method instead of passing a raw string.
type Enum struct {
	Name   string
	Params string
	Body   string
}

func (*Regular) isOverload() {}
func (*Enum) isOverload()    {}

func (o *Regular) DedupKey() string { return "regular\x00" + o.Params + "\x00" + o.Body }
func (o *Enum) DedupKey() string    { return "enum\x00" + o.Name + "\x00" + o.Params }

// DedupOverloads removes duplicate overloads, keeping the first occurrence.
func DedupOverloads(in []Overload) []Overload {
	seen := make(map[string]bool, len(in))
	out := make([]Overload, 0, len(in))
	for _, o := range in {
		if o == nil {
			continue
		}
		key := o.DedupKey()
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, o)
	}
	return out
}
