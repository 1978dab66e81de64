package types

import (
	"sync"

	"golang.org/x/text/unicode/norm"

	"typal/pkg/errors"
)

// BuiltinScope is the declaring scope of predefined type variables.
const BuiltinScope = "builtins"

// TypeVar is a declared type variable: a name, the function or class scope
// that declared it, and an optional set of permitted concrete types. Two
// variables with the same name in different scopes are distinct entities.
// A TypeVar is created once at declaration time and immutable afterwards;
// entries live for the lifetime of the process.
type TypeVar struct {
	Name   string
	Scope  string
	Values []Type // Optional value restriction; nil when unconstrained
}

// Restricts returns the permitted value set, or nil when the variable is
// unconstrained.
func (tv *TypeVar) Restricts() []Type { return tv.Values }

func (tv *TypeVar) String() string { return tv.Name }

// TypeVarType is a reference to a type variable inside a type expression.
// It is meaningless outside the lexical scope that declared the variable.
type TypeVarType struct {
	Var *TypeVar
}

func (t *TypeVarType) String() string { return t.Var.Name }
func (t *TypeVarType) typeNode()      {}
func (t *TypeVarType) Equals(other Type) bool {
	o, ok := Effective(other).(*TypeVarType)
	// Two references are equal if they reference the same variable.
	return ok && t.Var == o.Var
}

// --- TypeVar registry ---

type typeVarKey struct {
	name  string
	scope string
}

// TypeVarRegistry is the table of declared type variables, keyed by
// (name, scope). Append-only: declarations are never retracted, so a
// reader that has seen a variable keeps seeing it.
type TypeVarRegistry struct {
	mu   sync.RWMutex
	vars map[typeVarKey]*TypeVar
}

// NewTypeVarRegistry creates an empty type variable registry.
func NewTypeVarRegistry() *TypeVarRegistry {
	return &TypeVarRegistry{vars: make(map[typeVarKey]*TypeVar)}
}

// Declare registers a new type variable for (name, scope), with an optional
// value restriction. Names and scopes are NFKC-normalized like all host
// identifiers. Redeclaring an existing (name, scope) is a
// DuplicateDeclarationError; the registry never merges.
func (r *TypeVarRegistry) Declare(name, scope string, values ...Type) (*TypeVar, error) {
	name = norm.NFKC.String(name)
	scope = norm.NFKC.String(scope)
	key := typeVarKey{name: name, scope: scope}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.vars[key]; exists {
		return nil, &errors.DuplicateDeclarationError{Entity: "TypeVar", Name: name, Scope: scope}
	}

	var restriction []Type
	if len(values) > 0 {
		restriction = make([]Type, len(values))
		copy(restriction, values)
	}
	tv := &TypeVar{Name: name, Scope: scope, Values: restriction}
	r.vars[key] = tv
	return tv, nil
}

// Lookup returns the variable declared for (name, scope), if any.
func (r *TypeVarRegistry) Lookup(name, scope string) (*TypeVar, bool) {
	key := typeVarKey{name: norm.NFKC.String(name), scope: norm.NFKC.String(scope)}

	r.mu.RLock()
	defer r.mu.RUnlock()
	tv, ok := r.vars[key]
	return tv, ok
}

// defaultTypeVars is the process-wide registry used by the package-level
// functions and the predefined variables.
var defaultTypeVars = NewTypeVarRegistry()

// DeclareTypeVar declares a type variable in the process-wide registry.
func DeclareTypeVar(name, scope string, values ...Type) (*TypeVar, error) {
	return defaultTypeVars.Declare(name, scope, values...)
}

// LookupTypeVar looks a type variable up in the process-wide registry.
func LookupTypeVar(name, scope string) (*TypeVar, bool) {
	return defaultTypeVars.Lookup(name, scope)
}

func mustDeclareTypeVar(name, scope string, values ...Type) *TypeVar {
	tv, err := defaultTypeVars.Declare(name, scope, values...)
	if err != nil {
		panic(err)
	}
	return tv
}

// AnyStr is the predefined type variable spanning the two builtin
// string-like types.
var AnyStr = mustDeclareTypeVar("AnyStr", BuiltinScope, Str, Bytes)
