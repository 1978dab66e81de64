// Package types holds the recursive model of type annotations: a closed set
// of expression variants, the process-wide type-variable and generic
// descriptor registries, and structural operations (equality, substitution)
// over expression trees. The model supplies facts to external checkers; it
// never computes a compatibility verdict itself.
package types

// Type is the interface implemented by all type expression variants.
type Type interface {
	// String returns a string representation of the type, suitable for debugging or printing.
	String() string
	// Equals checks if this type is structurally equivalent to another type.
	Equals(other Type) bool

	// typeNode() is a marker method to ensure only types defined in this package
	// can be assigned to the Type interface. This keeps the set of variants closed:
	// consumers switch over it exhaustively and never extend it.
	typeNode()
}

// Equals reports structural equality of two type expressions. Aliases are
// transparent: an alias compares equal to whatever its target compares equal
// to. Union comparison is set-wise, so member order never matters.
func Equals(a, b Type) bool {
	a = Effective(a)
	b = Effective(b)
	if a == nil || b == nil {
		return a == b
	}
	return a.Equals(b)
}

// --- Singleton variants ---

// NoneType is the type whose only value is none.
type NoneType struct{}

func (n *NoneType) String() string { return "None" }
func (n *NoneType) typeNode()      {}
func (n *NoneType) Equals(other Type) bool {
	o, ok := Effective(other).(*NoneType)
	return ok && n == o
}

// AnyType is compatible with everything; it marks a position as
// unconstrained and unchecked.
type AnyType struct{}

func (a *AnyType) String() string { return "Any" }
func (a *AnyType) typeNode()      {}
func (a *AnyType) Equals(other Type) bool {
	o, ok := Effective(other).(*AnyType)
	return ok && a == o
}

// ObjectType is also compatible with everything, but with the opposite
// intent to AnyType: the value is fully permitted rather than unchecked.
// The two are structurally identical; checkers may special-case ObjectType.
type ObjectType struct{}

func (ot *ObjectType) String() string { return "object" }
func (ot *ObjectType) typeNode()      {}
func (ot *ObjectType) Equals(other Type) bool {
	o, ok := Effective(other).(*ObjectType)
	return ok && ot == o
}

// Singleton instances. Pointer identity is the variant's identity.
var (
	None   = &NoneType{}
	Any    = &AnyType{}
	Object = &ObjectType{}
)
