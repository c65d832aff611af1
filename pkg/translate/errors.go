package translate

import "errors"

var (
	// ErrEmptyUnion reports a union that reduced to zero cases after
	// de-duplication. This is a caller-input-shape problem, not a parse
	// problem.
	ErrEmptyUnion = errors.New("empty union")

	// ErrUnsupportedArity reports a union whose distinct case count exceeds
	// the generated UnionN type family.
	ErrUnsupportedArity = errors.New("unsupported union arity")
)
