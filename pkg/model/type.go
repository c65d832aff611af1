package model

import "reflect"

// AtomicKind identifies a leaf type recognized by the signature grammar.
type AtomicKind int

const (
	KindInvalid     AtomicKind = iota
	KindString                 // string
	KindNumber                 // number
	KindBool                   // bool, boolean
	KindFunc                   // func, function
	KindObject                 // object, any (opaque object value)
	KindElement                // element (a UI element value)
	KindElementCtor            // elementType (a UI element constructor)
	KindLiteral                // 'text' / "text", Text holds the unquoted value
	KindOther                  // unrecognized identifier, Text passes through unchanged
)

// Type is the parsed representation of one signature. The only
// implementations are Atomic, Object, Array and Union; the unexported marker
// keeps the variant closed.
type Type interface {
	isType()
}

// Atomic is a leaf type. Text is only meaningful for KindLiteral and
// KindOther.
type Atomic struct {
	Kind AtomicKind
	Text string
}

// Field is one entry of an Object. Name is the original source identifier,
// exactly as written in the signature.
type Field struct {
	Name     string
	Type     Type
	Optional bool
}

// Object is a structural record type. Field order is insertion order and is
// preserved into generated code. The grammar does not require unique field
// names; downstream generation assumes they are.
type Object struct {
	Fields []Field
}

// Array is a homogeneous sequence type.
type Array struct {
	Elem Type
}

// Union holds at least one case when produced by the parser. A union that
// reduces to zero cases is a translation-time error, not a parse error.
type Union struct {
	Cases []Type
}

func (*Atomic) isType() {}
func (*Object) isType() {}
func (*Array) isType()  {}
func (*Union) isType()  {}

// Equal reports structural equality of two type trees.
func Equal(a, b Type) bool {
	return reflect.DeepEqual(a, b)
}
