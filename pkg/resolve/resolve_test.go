package resolve

import (
	"testing"

	"typal/pkg/errors"
	"typal/pkg/types"
)

func TestResolveRetryAfterDefine(t *testing.T) {
	r := NewResolver()
	ns := NewNamespace()
	ref := types.NewForwardRef("Foo")

	// Before Foo exists, resolution fails
	_, err := r.Resolve(ref, ns)
	unresolved, ok := err.(*errors.UnresolvedReferenceError)
	if !ok {
		t.Fatalf("Expected UnresolvedReferenceError, got %v", err)
	}
	if unresolved.Literal != "Foo" {
		t.Errorf("Expected error to carry 'Foo', got '%s'", unresolved.Literal)
	}

	// Failures are not cached: a richer namespace succeeds
	ns.Define("Foo", types.Str)
	resolved, err := r.Resolve(ref, ns)
	if err != nil {
		t.Fatalf("Resolve failed after defining Foo: %v", err)
	}
	if !types.Equals(resolved, types.Str) {
		t.Errorf("Expected str, got %s", resolved)
	}
}

func TestResolveCached(t *testing.T) {
	r := NewResolver()
	ns := NewNamespace()
	ns.Define("Foo", types.Str)
	ref := types.NewForwardRef("Foo")

	first, err := r.Resolve(ref, ns)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	// Rebinding the name does not disturb the memoized result
	ns.Define("Foo", types.Int)
	second, err := r.Resolve(ref, ns)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if second != first {
		t.Error("Resolution should return the cached value without re-lookup")
	}
}

func TestResolveCachePerNamespace(t *testing.T) {
	r := NewResolver()
	ns1 := NewNamespace()
	ns2 := NewNamespace()
	ns1.Define("Foo", types.Str)
	ns2.Define("Foo", types.Int)
	ref := types.NewForwardRef("Foo")

	fromNs1, _ := r.Resolve(ref, ns1)
	fromNs2, _ := r.Resolve(ref, ns2)
	if types.Equals(fromNs1, fromNs2) {
		t.Error("Distinct namespaces should cache separately")
	}
}

func TestResolveDirectCycle(t *testing.T) {
	r := NewResolver()
	ns := NewNamespace()
	ns.Define("A", types.NewForwardRef("A"))

	_, err := r.Resolve(types.NewForwardRef("A"), ns)
	cyclic, ok := err.(*errors.CyclicReferenceError)
	if !ok {
		t.Fatalf("Expected CyclicReferenceError, got %v", err)
	}
	if cyclic.Literal != "A" {
		t.Errorf("Expected error to carry 'A', got '%s'", cyclic.Literal)
	}
}

func TestResolveIndirectCycle(t *testing.T) {
	r := NewResolver()
	ns := NewNamespace()
	ns.Define("A", types.NewForwardRef("B"))
	ns.Define("B", types.NewForwardRef("A"))

	_, err := r.Resolve(types.NewForwardRef("A"), ns)
	if _, ok := err.(*errors.CyclicReferenceError); !ok {
		t.Fatalf("Expected CyclicReferenceError, got %v", err)
	}
}

func TestResolveNestedReferences(t *testing.T) {
	r := NewResolver()
	ns := NewNamespace()

	pair, _ := types.NewTupleType(types.NewForwardRef("Elem"), types.Str)
	ns.Define("Pair", pair)
	ns.Define("Elem", types.Int)

	resolved, err := r.Resolve(types.NewForwardRef("Pair"), ns)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	want, _ := types.NewTupleType(types.Int, types.Str)
	if !types.Equals(resolved, want) {
		t.Errorf("Expected Tuple[int, str], got %s", resolved)
	}
}

func TestResolveGenericArguments(t *testing.T) {
	r := NewResolver()
	ns := NewNamespace()

	inst, _ := types.ListGeneric.Instantiate(types.NewForwardRef("Elem"))
	ns.Define("IntList", inst)
	ns.Define("Elem", types.Int)

	resolved, err := r.Resolve(types.NewForwardRef("IntList"), ns)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	want, _ := types.ListGeneric.Instantiate(types.Int)
	if !types.Equals(resolved, want) {
		t.Errorf("Expected List[int], got %s", resolved)
	}
}

func TestResolveMalformedLiteral(t *testing.T) {
	r := NewResolver()
	ns := NewNamespace()
	ns.Define("ok", types.Str)

	for _, literal := range []string{"", "3Foo", "not a name", "a..b", "List[int]"} {
		_, err := r.Resolve(types.NewForwardRef(literal), ns)
		if _, ok := err.(*errors.UnresolvedReferenceError); !ok {
			t.Errorf("Expected UnresolvedReferenceError for %q, got %v", literal, err)
		}
	}

	// Dotted paths are valid literals
	ns.Define("pkg.Type", types.Bool)
	resolved, err := r.Resolve(types.NewForwardRef("pkg.Type"), ns)
	if err != nil {
		t.Fatalf("Resolve failed for dotted literal: %v", err)
	}
	if !types.Equals(resolved, types.Bool) {
		t.Errorf("Expected bool, got %s", resolved)
	}
}

func TestDefaultResolver(t *testing.T) {
	ns := NewNamespace()
	ns.Define("Shared", types.Bytes)

	resolved, err := Resolve(types.NewForwardRef("Shared"), ns)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if !types.Equals(resolved, types.Bytes) {
		t.Errorf("Expected bytes, got %s", resolved)
	}
}
