package types

import (
	"strings"

	"typal/pkg/errors"
)

// TupleType represents a fixed-length, heterogeneous tuple. Element order is
// significant and an exact-length match is required for compatibility; there
// is no variadic tuple in this model (uniform-type sequences go through the
// List generic instead).
type TupleType struct {
	Elements []Type
}

// NewTupleType creates a tuple type from the given element types. Tuples
// have arity >= 1; an empty element list is an ArityError.
func NewTupleType(elements ...Type) (*TupleType, error) {
	if len(elements) == 0 {
		return nil, &errors.ArityError{Op: "Tuple", Want: 1, Got: 0}
	}
	elems := make([]Type, len(elements))
	copy(elems, elements)
	return &TupleType{Elements: elems}, nil
}

func (tt *TupleType) String() string {
	var b strings.Builder
	b.WriteString("Tuple[")
	for i, elem := range tt.Elements {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(elem.String())
	}
	b.WriteString("]")
	return b.String()
}

func (tt *TupleType) typeNode() {}

func (tt *TupleType) Equals(other Type) bool {
	otherTt, ok := Effective(other).(*TupleType)
	if !ok {
		return false // Not a TupleType
	}
	if tt == nil || otherTt == nil {
		return tt == otherTt // Both must be nil or non-nil
	}
	if len(tt.Elements) != len(otherTt.Elements) {
		return false // Different arity
	}
	for i, elem := range tt.Elements {
		if !Equals(elem, otherTt.Elements[i]) {
			return false // Element types differ
		}
	}
	return true
}
