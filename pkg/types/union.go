package types

import (
	"sort"
	"strings"

	"typal/pkg/ducktype"
	"typal/pkg/errors"
)

// --- Union Types ---

// UnionType represents a union of multiple types. Member order is
// insignificant; construction through NewUnionType guarantees the invariants
// (no nested unions, no duplicates, no member subsumed by a declared
// lossless widening of another member).
type UnionType struct {
	Members []Type // Canonical member list, sorted by string form
}

func (ut *UnionType) String() string {
	var b strings.Builder
	b.WriteString("Union[")
	for i, m := range ut.Members {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(m.String())
	}
	b.WriteString("]")
	return b.String()
}

func (ut *UnionType) typeNode() {}

func (ut *UnionType) Equals(other Type) bool {
	otherUt, ok := Effective(other).(*UnionType)
	if !ok {
		return false // Not a UnionType
	}
	if ut == nil || otherUt == nil {
		return ut == otherUt // Both must be nil or non-nil
	}

	// Unions are equal if they contain the same set of unique members,
	// regardless of order.
	if len(ut.Members) != len(otherUt.Members) {
		return false
	}

	matched := make([]bool, len(otherUt.Members))
	for _, m1 := range ut.Members {
		foundMatch := false
		for j, m2 := range otherUt.Members {
			if !matched[j] && Equals(m1, m2) {
				matched[j] = true
				foundMatch = true
				break
			}
		}
		if !foundMatch {
			return false // Member from first union not found in second
		}
	}
	// Lengths are equal, so a full one-way matching means equal sets.
	return true
}

// ContainsMember checks if the union has a member equal to the given type.
func (ut *UnionType) ContainsMember(target Type) bool {
	for _, m := range ut.Members {
		if Equals(m, target) {
			return true
		}
	}
	return false
}

// --- Union Type Constructor ---

// NewUnionType creates a union from the given types. It flattens nested
// unions, removes duplicates (structural equality), and removes any concrete
// member reachable from another concrete member through the duck-type
// registry's declared lossless widenings (so int drops out of
// Union[int, float] once int -> float is declared). Any absorbs the whole
// union. A single surviving member is returned unwrapped; zero input members
// is an ArityError.
func NewUnionType(members ...Type) (Type, error) {
	if len(members) == 0 {
		return nil, &errors.ArityError{Op: "Union", Want: 1, Got: 0}
	}
	return newUnion(members), nil
}

// newUnion is the internal constructor for member lists already known to be
// non-empty, used by substitution and resolution when rebuilding trees.
func newUnion(members []Type) Type {
	// Collect members, flattening nested unions. Aliases are resolved
	// transparently before inspection.
	flat := make([]Type, 0, len(members))
	var collect func(t Type)
	collect = func(t Type) {
		if t == nil {
			return
		}
		t = Effective(t)
		if union, ok := t.(*UnionType); ok {
			for _, m := range union.Members {
				collect(m)
			}
			return
		}
		flat = append(flat, t)
	}
	for _, m := range members {
		collect(m)
	}

	// Any absorbs everything.
	for _, m := range flat {
		if _, ok := m.(*AnyType); ok {
			return Any
		}
	}

	// Filter for unique members using structural equality.
	unique := make([]Type, 0, len(flat))
	for _, m := range flat {
		isDuplicate := false
		for _, u := range unique {
			if Equals(m, u) {
				isDuplicate = true
				break
			}
		}
		if !isDuplicate {
			unique = append(unique, m)
		}
	}

	// Redundancy elimination: a concrete member whose name reaches another
	// concrete member in the duck-type closure is subsumed by it. Mutually
	// reachable pairs keep the lexicographically smaller name so the result
	// stays deterministic.
	kept := make([]Type, 0, len(unique))
	for _, m := range unique {
		c, isConcrete := m.(*Concrete)
		if !isConcrete {
			kept = append(kept, m)
			continue
		}
		subsumed := false
		for _, o := range unique {
			oc, ok := o.(*Concrete)
			if !ok || oc == c {
				continue
			}
			if ducktype.Reaches(c.Name, oc.Name) &&
				(!ducktype.Reaches(oc.Name, c.Name) || oc.Name < c.Name) {
				subsumed = true
				break
			}
		}
		if !subsumed {
			kept = append(kept, m)
		}
	}

	if len(kept) == 1 {
		return kept[0]
	}

	// Sort members for a canonical representation.
	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].String() < kept[j].String()
	})

	return &UnionType{Members: kept}
}
