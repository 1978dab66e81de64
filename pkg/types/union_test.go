package types

import (
	"testing"

	"typal/pkg/ducktype"
	"typal/pkg/errors"
)

func TestUnionOrderIndependent(t *testing.T) {
	u1, err := NewUnionType(Str, Bool)
	if err != nil {
		t.Fatalf("NewUnionType failed: %v", err)
	}
	u2, _ := NewUnionType(Bool, Str)
	if !Equals(u1, u2) {
		t.Error("Union construction should be order-independent")
	}
}

func TestUnionIdempotent(t *testing.T) {
	single, _ := NewUnionType(Str)
	doubled, _ := NewUnionType(Str, Str)
	if !Equals(single, doubled) {
		t.Error("Duplicate members should collapse")
	}
	// A single surviving member is returned unwrapped
	if !Equals(doubled, Str) {
		t.Errorf("Expected str, got %s", doubled)
	}
}

func TestUnionFlattens(t *testing.T) {
	inner, _ := NewUnionType(Str, Bool)
	outer, _ := NewUnionType(inner, None)

	union, ok := outer.(*UnionType)
	if !ok {
		t.Fatalf("Expected UnionType, got %T", outer)
	}
	if len(union.Members) != 3 {
		t.Fatalf("Expected 3 members, got %d", len(union.Members))
	}
	for _, m := range union.Members {
		if _, nested := m.(*UnionType); nested {
			t.Error("Union members should never be unions themselves")
		}
	}
}

func TestUnionAnyAbsorbs(t *testing.T) {
	u, _ := NewUnionType(Str, Any, Bool)
	if !Equals(u, Any) {
		t.Errorf("Any should absorb the union, got %s", u)
	}
}

func TestUnionEmpty(t *testing.T) {
	_, err := NewUnionType()
	if _, ok := err.(*errors.ArityError); !ok {
		t.Fatalf("Expected ArityError for empty union, got %v", err)
	}
}

func TestUnionRedundancyElimination(t *testing.T) {
	// int -> float is a pre-declared lossless widening, so int is subsumed.
	u, _ := NewUnionType(Int, Float)
	if !Equals(u, Float) {
		t.Errorf("Expected float, got %s", u)
	}

	onlyFloat, _ := NewUnionType(Float)
	if !Equals(u, onlyFloat) {
		t.Error("Union[int, float] should equal Union[float]")
	}

	// Subsumption follows the closure: int reaches complex through float.
	viaClosure, _ := NewUnionType(Int, Complex)
	if !Equals(viaClosure, Complex) {
		t.Errorf("Expected complex, got %s", viaClosure)
	}

	// Unrelated members survive.
	mixed, _ := NewUnionType(Int, Float, Str)
	union, ok := mixed.(*UnionType)
	if !ok {
		t.Fatalf("Expected UnionType, got %T", mixed)
	}
	if len(union.Members) != 2 {
		t.Errorf("Expected 2 members, got %d", len(union.Members))
	}
	if !union.ContainsMember(Float) || !union.ContainsMember(Str) {
		t.Errorf("Expected float and str to survive, got %s", union)
	}
}

func TestUnionRedundancyFollowsDeclaredEdges(t *testing.T) {
	// Declaring a new edge changes later constructions.
	short := NewConcrete("short")
	long := NewConcrete("long")

	before, _ := NewUnionType(short, long)
	if _, ok := before.(*UnionType); !ok {
		t.Fatalf("Expected both members to survive before declaration, got %s", before)
	}

	ducktype.DeclareCompatible("short", "long")
	after, _ := NewUnionType(short, long)
	if !Equals(after, long) {
		t.Errorf("Expected long after declaring short -> long, got %s", after)
	}
}

func TestUnionSubstitutionRebuild(t *testing.T) {
	vars := NewTypeVarRegistry()
	paramT, _ := vars.Declare("T", "union-rebuild")
	refT := &TypeVarType{Var: paramT}

	u, _ := NewUnionType(refT, Str)
	substituted := Substitute(u, map[*TypeVar]Type{paramT: Str})
	// Both members collapse to str once T binds to str.
	if !Equals(substituted, Str) {
		t.Errorf("Expected str, got %s", substituted)
	}
}
