package types

import (
	"sync"

	"golang.org/x/text/unicode/norm"
)

// Concrete represents a reference to a nominal type by name. Checkers treat
// it as compatible with itself, its subclasses, and whatever the duck-type
// registry declares for it; this package only carries the name.
type Concrete struct {
	Name string
}

func (c *Concrete) String() string { return c.Name }
func (c *Concrete) typeNode()      {}
func (c *Concrete) Equals(other Type) bool {
	// Concrete types are interned, so pointer equality is sufficient.
	o, ok := Effective(other).(*Concrete)
	return ok && c == o
}

var (
	concreteMu sync.Mutex
	concretes  = make(map[string]*Concrete)
)

// NewConcrete returns the canonical Concrete for name. Names are normalized
// to NFKC the way the host language normalizes identifiers, so two spellings
// of one identifier intern to the same pointer.
func NewConcrete(name string) *Concrete {
	name = norm.NFKC.String(name)

	concreteMu.Lock()
	defer concreteMu.Unlock()
	if c, ok := concretes[name]; ok {
		return c
	}
	c := &Concrete{Name: name}
	concretes[name] = c
	return c
}

// Pre-defined instances for the builtin concrete types.
var (
	Int     = NewConcrete("int")
	Float   = NewConcrete("float")
	Complex = NewConcrete("complex")
	Bool    = NewConcrete("bool")
	Str     = NewConcrete("str")
	Bytes   = NewConcrete("bytes")
)
