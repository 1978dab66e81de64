package types

import "fmt"

// ForwardRefType is an unresolved string reference to a type. The literal is
// an opaque lookup key; this package never parses it. Resolution against a
// caller-supplied namespace happens in the resolve package and may
// permanently fail for cyclic literals.
type ForwardRefType struct {
	Literal string
}

// NewForwardRef wraps a string literal found in a type position. Producers
// must wrap every such string before handing it to this model.
func NewForwardRef(literal string) *ForwardRefType {
	return &ForwardRefType{Literal: literal}
}

func (fr *ForwardRefType) String() string { return fmt.Sprintf("%q", fr.Literal) }
func (fr *ForwardRefType) typeNode()      {}
func (fr *ForwardRefType) Equals(other Type) bool {
	otherFr, ok := Effective(other).(*ForwardRefType)
	if !ok {
		return false // Not a ForwardRefType
	}
	return fr.Literal == otherFr.Literal
}
