package types

import (
	"testing"

	"typal/pkg/errors"
)

func TestTypeVarDeclare(t *testing.T) {
	reg := NewTypeVarRegistry()

	paramT, err := reg.Declare("T", "outer")
	if err != nil {
		t.Fatalf("Declare failed: %v", err)
	}
	if paramT.Name != "T" || paramT.Scope != "outer" {
		t.Errorf("Expected T in outer, got %s in %s", paramT.Name, paramT.Scope)
	}
	if paramT.Restricts() != nil {
		t.Errorf("Expected unconstrained variable, got %v", paramT.Restricts())
	}

	// Redeclaring the same (name, scope) fails
	_, err = reg.Declare("T", "outer")
	dup, ok := err.(*errors.DuplicateDeclarationError)
	if !ok {
		t.Fatalf("Expected DuplicateDeclarationError, got %v", err)
	}
	if dup.Name != "T" || dup.Scope != "outer" {
		t.Errorf("Expected error to carry (T, outer), got (%s, %s)", dup.Name, dup.Scope)
	}
}

func TestTypeVarScopesDistinct(t *testing.T) {
	reg := NewTypeVarRegistry()

	outer, _ := reg.Declare("T", "first")
	inner, err := reg.Declare("T", "second")
	if err != nil {
		t.Fatalf("Same name in a different scope should declare, got %v", err)
	}
	if outer == inner {
		t.Error("Same name in different scopes should be distinct entities")
	}

	refOuter := &TypeVarType{Var: outer}
	refInner := &TypeVarType{Var: inner}
	if refOuter.Equals(refInner) {
		t.Error("References to distinct variables should not be equal")
	}
}

func TestTypeVarRestriction(t *testing.T) {
	reg := NewTypeVarRegistry()

	num, _ := reg.Declare("N", "math", Int, Float)
	values := num.Restricts()
	if len(values) != 2 {
		t.Fatalf("Expected 2 permitted values, got %d", len(values))
	}
	if !Equals(values[0], Int) || !Equals(values[1], Float) {
		t.Errorf("Expected (int, float), got %v", values)
	}
}

func TestTypeVarLookup(t *testing.T) {
	reg := NewTypeVarRegistry()
	declared, _ := reg.Declare("T", "lookup")

	found, ok := reg.Lookup("T", "lookup")
	if !ok || found != declared {
		t.Error("Lookup should return the declared variable")
	}
	if _, ok := reg.Lookup("T", "elsewhere"); ok {
		t.Error("Lookup in an undeclared scope should miss")
	}
}

func TestAnyStrPredefined(t *testing.T) {
	if AnyStr == nil {
		t.Fatal("AnyStr should be initialized")
	}
	values := AnyStr.Restricts()
	if len(values) != 2 {
		t.Fatalf("Expected AnyStr to span 2 types, got %d", len(values))
	}
	if !Equals(values[0], Str) || !Equals(values[1], Bytes) {
		t.Errorf("Expected AnyStr to span str and bytes, got %v", values)
	}

	found, ok := LookupTypeVar("AnyStr", BuiltinScope)
	if !ok || found != AnyStr {
		t.Error("AnyStr should be registered in the default registry")
	}
}
