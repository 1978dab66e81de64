package types

// --- Alias Types ---

// AliasType is a named shorthand for another type expression, typically a
// generic instance. Aliases are transparent: equality and structural
// inspection always see the target.
type AliasType struct {
	Name   string
	Target Type
}

// NewAliasType creates a named alias for target.
func NewAliasType(name string, target Type) *AliasType {
	return &AliasType{Name: name, Target: target}
}

func (at *AliasType) String() string { return at.Name }
func (at *AliasType) typeNode()      {}
func (at *AliasType) Equals(other Type) bool {
	// An alias compares as its resolved target.
	return Equals(at.Target, other)
}

// Effective strips alias chains and returns the underlying type expression.
// Non-alias types are returned unchanged.
func Effective(t Type) Type {
	for {
		at, ok := t.(*AliasType)
		if !ok || at.Target == nil {
			return t
		}
		t = at.Target
	}
}
