package types

import (
	"strings"
	"sync"

	"golang.org/x/text/unicode/norm"

	"typal/pkg/errors"
)

// GenericDescriptor describes a generic entity: its owner identity and the
// ordered type variables it declares. Created once when the generic is
// declared, immutable afterwards. Instances are ephemeral and leave no
// runtime footprint on values (erasure): two values produced from different
// instantiations of one descriptor are indistinguishable at runtime.
type GenericDescriptor struct {
	Owner    string
	TypeVars []*TypeVar
}

// Arity returns the number of type parameters.
func (d *GenericDescriptor) Arity() int { return len(d.TypeVars) }

func (d *GenericDescriptor) String() string {
	names := make([]string, len(d.TypeVars))
	for i, tv := range d.TypeVars {
		names[i] = tv.Name
	}
	return d.Owner + "[" + strings.Join(names, ", ") + "]"
}

// Instantiate parameterizes the generic with concrete type arguments. The
// argument count must match the descriptor's arity exactly; anything else is
// an ArityError.
func (d *GenericDescriptor) Instantiate(args ...Type) (*GenericInstance, error) {
	if len(args) != d.Arity() {
		return nil, &errors.ArityError{Op: d.Owner, Want: d.Arity(), Got: len(args)}
	}
	as := make([]Type, len(args))
	copy(as, args)
	return &GenericInstance{Desc: d, Args: as}, nil
}

// InstantiateImplicit parameterizes the generic with Any for every
// parameter, the meaning of the bare generic name used as an annotation.
func (d *GenericDescriptor) InstantiateImplicit() *GenericInstance {
	args := make([]Type, d.Arity())
	for i := range args {
		args[i] = Any
	}
	return &GenericInstance{Desc: d, Args: args}
}

// GenericInstance is a generic parameterized with type arguments, e.g.
// List[int]. Argument count always equals the descriptor's arity; instances
// are built through Instantiate, never directly.
type GenericInstance struct {
	Desc *GenericDescriptor
	Args []Type
}

func (g *GenericInstance) String() string {
	var b strings.Builder
	b.WriteString(g.Desc.Owner)
	b.WriteString("[")
	for i, arg := range g.Args {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(arg.String())
	}
	b.WriteString("]")
	return b.String()
}

func (g *GenericInstance) typeNode() {}

func (g *GenericInstance) Equals(other Type) bool {
	o, ok := Effective(other).(*GenericInstance)
	if !ok {
		return false // Not a GenericInstance
	}
	if g.Desc != o.Desc || len(g.Args) != len(o.Args) {
		return false
	}
	for i, arg := range g.Args {
		if !Equals(arg, o.Args[i]) {
			return false // Type arguments differ
		}
	}
	return true
}

// Erase projects the instance down to its runtime-visible shape: the owner
// identity alone. The projection is pure and never reconstructable back to
// the original arguments.
func (g *GenericInstance) Erase() string { return g.Desc.Owner }

// Bindings returns the substitution map pairing the descriptor's type
// variables with the instance's arguments, for use with Substitute.
func (g *GenericInstance) Bindings() map[*TypeVar]Type {
	bindings := make(map[*TypeVar]Type, len(g.Args))
	for i, tv := range g.Desc.TypeVars {
		bindings[tv] = g.Args[i]
	}
	return bindings
}

// --- Descriptor registry ---

// DescriptorRegistry is the table of declared generic descriptors, keyed by
// owner identity. Append-only for the process lifetime.
type DescriptorRegistry struct {
	mu      sync.RWMutex
	byOwner map[string]*GenericDescriptor
}

// NewDescriptorRegistry creates an empty descriptor registry.
func NewDescriptorRegistry() *DescriptorRegistry {
	return &DescriptorRegistry{byOwner: make(map[string]*GenericDescriptor)}
}

// Declare registers a generic descriptor for owner with its ordered type
// variables. An owner that already has a descriptor is a
// DuplicateDeclarationError.
func (r *DescriptorRegistry) Declare(owner string, typevars ...*TypeVar) (*GenericDescriptor, error) {
	owner = norm.NFKC.String(owner)

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byOwner[owner]; exists {
		return nil, &errors.DuplicateDeclarationError{Entity: "Generic", Name: owner}
	}

	tvs := make([]*TypeVar, len(typevars))
	copy(tvs, typevars)
	d := &GenericDescriptor{Owner: owner, TypeVars: tvs}
	r.byOwner[owner] = d
	return d, nil
}

// Lookup returns the descriptor declared for owner, if any.
func (r *DescriptorRegistry) Lookup(owner string) (*GenericDescriptor, bool) {
	owner = norm.NFKC.String(owner)

	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.byOwner[owner]
	return d, ok
}

// defaultDescriptors is the process-wide descriptor registry.
var defaultDescriptors = NewDescriptorRegistry()

// DeclareGeneric declares a descriptor in the process-wide registry.
func DeclareGeneric(owner string, typevars ...*TypeVar) (*GenericDescriptor, error) {
	return defaultDescriptors.Declare(owner, typevars...)
}

// LookupGeneric looks a descriptor up in the process-wide registry.
func LookupGeneric(owner string) (*GenericDescriptor, bool) {
	return defaultDescriptors.Lookup(owner)
}

func mustDeclareGeneric(owner string, typevars ...*TypeVar) *GenericDescriptor {
	d, err := defaultDescriptors.Declare(owner, typevars...)
	if err != nil {
		panic(err)
	}
	return d
}

// Pre-registered builtin generics. These are ordinary table entries with no
// special code paths: an ordered-sequence, set, mapping, and the two regular
// expression concepts. Pattern and Match share the predefined AnyStr
// variable, mirroring the builtin declarations of the host library.
var (
	ListGeneric    = mustDeclareGeneric("List", mustDeclareTypeVar("T", "List"))
	SetGeneric     = mustDeclareGeneric("Set", mustDeclareTypeVar("T", "Set"))
	DictGeneric    = mustDeclareGeneric("Dict", mustDeclareTypeVar("KT", "Dict"), mustDeclareTypeVar("VT", "Dict"))
	PatternGeneric = mustDeclareGeneric("Pattern", AnyStr)
	MatchGeneric   = mustDeclareGeneric("Match", AnyStr)
)
