// Package resolve turns forward references into type expressions by looking
// their literals up in a caller-supplied namespace. Successful resolutions
// are memoized per (literal, namespace); failed lookups are not cached, so a
// later call against a richer namespace can still succeed. Cyclic literals
// fail permanently with a CyclicReferenceError.
package resolve

import (
	"sync"

	"github.com/dlclark/regexp2"
	"golang.org/x/text/unicode/norm"

	"typal/pkg/errors"
	"typal/pkg/types"
)

// Namespace is an identity-bearing name table mapping type names to type
// expressions. The resolver caches per namespace identity (the pointer), so
// two namespaces with identical contents still cache separately.
type Namespace struct {
	mu    sync.RWMutex
	names map[string]types.Type
}

// NewNamespace creates an empty namespace.
func NewNamespace() *Namespace {
	return &Namespace{names: make(map[string]types.Type)}
}

// Define binds a name to a type expression. Later definitions overwrite
// earlier ones; the resolver's cache keeps whatever a literal resolved to
// first.
func (ns *Namespace) Define(name string, t types.Type) {
	name = norm.NFKC.String(name)
	ns.mu.Lock()
	defer ns.mu.Unlock()
	ns.names[name] = t
}

// Lookup returns the type bound to name, if any.
func (ns *Namespace) Lookup(name string) (types.Type, bool) {
	name = norm.NFKC.String(name)
	ns.mu.RLock()
	defer ns.mu.RUnlock()
	t, ok := ns.names[name]
	return t, ok
}

// literalPattern accepts dotted identifier literals, the only shape a
// forward reference can take in the host language. Anything else fails
// resolution immediately, the way the host fails to compile a malformed
// annotation string.
var literalPattern = regexp2.MustCompile(
	`^[\p{L}_][\p{L}\p{Nd}_]*(\.[\p{L}_][\p{L}\p{Nd}_]*)*$`, regexp2.None)

type cacheKey struct {
	literal string
	ns      *Namespace
}

// Resolver resolves forward references and memoizes the results. Reads of
// the cache dominate, so lookups take the read lock only.
type Resolver struct {
	mu    sync.RWMutex
	cache map[cacheKey]types.Type
}

// NewResolver creates a resolver with an empty cache.
func NewResolver() *Resolver {
	return &Resolver{cache: make(map[cacheKey]types.Type)}
}

// Resolve looks ref's literal up in ns and returns the fully resolved type
// expression. The resolved expression may itself contain forward references
// anywhere in its tree; those are resolved recursively. A literal that
// reaches itself, directly or transitively, is a CyclicReferenceError. A
// literal not found in ns is an UnresolvedReferenceError and is not cached.
// Resolution is idempotent: a cached literal is returned without re-running
// the lookup.
func (r *Resolver) Resolve(ref *types.ForwardRefType, ns *Namespace) (types.Type, error) {
	return r.resolveLiteral(ref.Literal, ns, nil)
}

// resolveLiteral resolves one literal; chain carries the literals currently
// being resolved on this call path, in order, for cycle detection.
func (r *Resolver) resolveLiteral(literal string, ns *Namespace, chain []string) (types.Type, error) {
	// Literals are identifiers and normalize like all host identifiers.
	literal = norm.NFKC.String(literal)
	key := cacheKey{literal: literal, ns: ns}

	r.mu.RLock()
	cached, ok := r.cache[key]
	r.mu.RUnlock()
	if ok {
		return cached, nil
	}

	for _, active := range chain {
		if active == literal {
			return nil, &errors.CyclicReferenceError{
				Literal: literal,
				Chain:   append(append([]string{}, chain...), literal),
			}
		}
	}

	if ok, _ := literalPattern.MatchString(literal); !ok {
		return nil, &errors.UnresolvedReferenceError{Literal: literal}
	}

	target, found := ns.Lookup(literal)
	if !found {
		return nil, &errors.UnresolvedReferenceError{Literal: literal}
	}

	resolved, err := r.resolveType(target, ns, append(chain, literal))
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	r.cache[key] = resolved
	r.mu.Unlock()
	return resolved, nil
}

// resolveType rewrites t with every embedded forward reference resolved.
func (r *Resolver) resolveType(t types.Type, ns *Namespace, chain []string) (types.Type, error) {
	if t == nil {
		return nil, nil
	}

	switch t := t.(type) {
	case *types.ForwardRefType:
		return r.resolveLiteral(t.Literal, ns, chain)

	case *types.TupleType:
		elems := make([]types.Type, len(t.Elements))
		for i, elem := range t.Elements {
			resolved, err := r.resolveType(elem, ns, chain)
			if err != nil {
				return nil, err
			}
			elems[i] = resolved
		}
		return &types.TupleType{Elements: elems}, nil

	case *types.FunctionType:
		params := make([]types.Type, len(t.Params))
		for i, p := range t.Params {
			resolved, err := r.resolveType(p, ns, chain)
			if err != nil {
				return nil, err
			}
			params[i] = resolved
		}
		result, err := r.resolveType(t.Result, ns, chain)
		if err != nil {
			return nil, err
		}
		return &types.FunctionType{Params: params, Result: result}, nil

	case *types.UnionType:
		members := make([]types.Type, len(t.Members))
		for i, m := range t.Members {
			resolved, err := r.resolveType(m, ns, chain)
			if err != nil {
				return nil, err
			}
			members[i] = resolved
		}
		// Rebuild so the union invariants hold for the resolved members.
		union, err := types.NewUnionType(members...)
		if err != nil {
			return nil, err
		}
		return union, nil

	case *types.GenericInstance:
		args := make([]types.Type, len(t.Args))
		for i, arg := range t.Args {
			resolved, err := r.resolveType(arg, ns, chain)
			if err != nil {
				return nil, err
			}
			args[i] = resolved
		}
		return t.Desc.Instantiate(args...)

	case *types.AliasType:
		target, err := r.resolveType(t.Target, ns, chain)
		if err != nil {
			return nil, err
		}
		return &types.AliasType{Name: t.Name, Target: target}, nil

	// Singletons, concrete types, and type variable references resolve to
	// themselves.
	default:
		return t, nil
	}
}

// defaultResolver is the process-wide resolver.
var defaultResolver = NewResolver()

// Resolve resolves ref against ns using the process-wide resolver.
func Resolve(ref *types.ForwardRefType, ns *Namespace) (types.Type, error) {
	return defaultResolver.Resolve(ref, ns)
}
