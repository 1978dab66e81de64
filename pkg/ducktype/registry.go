// Package ducktype records declared duck-type compatibility facts between
// concrete types. Compatibility is declared, never inferred structurally:
// an edge (source, target) means a value of source is usable wherever target
// is expected. The registry stores concrete-type names only and never
// inspects type expressions; external checkers query it for verdict-building
// facts, and union construction consults it for redundancy elimination.
package ducktype

import (
	"sort"
	"sync"

	"golang.org/x/text/unicode/norm"
)

// Registry is a directed, append-only graph over concrete-type names.
// Reads dominate writes, so lookups take the read lock only.
type Registry struct {
	mu    sync.RWMutex
	edges map[string]map[string]struct{}
}

// NewRegistry creates an empty compatibility registry.
func NewRegistry() *Registry {
	return &Registry{edges: make(map[string]map[string]struct{})}
}

// DeclareCompatible records that source is usable wherever target is
// expected. Idempotent: redeclaring an edge is a no-op, not an overwrite.
// Self-edges are dropped since every type is trivially compatible with
// itself. There is no removal API; once visible, an edge stays visible for
// the registry's lifetime.
func (r *Registry) DeclareCompatible(source, target string) {
	source = norm.NFKC.String(source)
	target = norm.NFKC.String(target)
	if source == target {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	targets, ok := r.edges[source]
	if !ok {
		targets = make(map[string]struct{})
		r.edges[source] = targets
	}
	targets[target] = struct{}{}
}

// IsDeclaredCompatible reports whether a direct edge source -> target was
// declared. It does not follow edges transitively; use Reachable for the
// closure.
func (r *Registry) IsDeclaredCompatible(source, target string) bool {
	source = norm.NFKC.String(source)
	target = norm.NFKC.String(target)

	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.edges[source][target]
	return ok
}

// Reachable returns every name reachable from source via zero or more
// declared edges (the reflexive-transitive closure), sorted for stable
// output. The closure is computed on demand; the graph is small and
// append-only, so no incremental maintenance is done.
func (r *Registry) Reachable(source string) []string {
	source = norm.NFKC.String(source)

	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := map[string]struct{}{source: {}}
	queue := []string{source}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for target := range r.edges[cur] {
			if _, ok := seen[target]; !ok {
				seen[target] = struct{}{}
				queue = append(queue, target)
			}
		}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Reaches reports whether target is in the reflexive-transitive closure of
// source.
func (r *Registry) Reaches(source, target string) bool {
	source = norm.NFKC.String(source)
	target = norm.NFKC.String(target)
	if source == target {
		return true
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := map[string]struct{}{source: {}}
	queue := []string{source}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for next := range r.edges[cur] {
			if next == target {
				return true
			}
			if _, ok := seen[next]; !ok {
				seen[next] = struct{}{}
				queue = append(queue, next)
			}
		}
	}
	return false
}

// defaultRegistry is the process-wide registry used by the package-level
// functions and by union redundancy elimination.
var defaultRegistry = NewRegistry()

func init() {
	// The numeric tower of the host language: these widenings are lossless
	// and pre-declared, matching the builtin compatibility facts producers
	// would otherwise have to declare themselves.
	defaultRegistry.DeclareCompatible("int", "float")
	defaultRegistry.DeclareCompatible("float", "complex")
}

// Default returns the process-wide registry.
func Default() *Registry { return defaultRegistry }

// DeclareCompatible records an edge in the process-wide registry.
func DeclareCompatible(source, target string) {
	defaultRegistry.DeclareCompatible(source, target)
}

// IsDeclaredCompatible queries a direct edge in the process-wide registry.
func IsDeclaredCompatible(source, target string) bool {
	return defaultRegistry.IsDeclaredCompatible(source, target)
}

// Reachable computes the closure of source in the process-wide registry.
func Reachable(source string) []string {
	return defaultRegistry.Reachable(source)
}

// Reaches queries the closure of source in the process-wide registry.
func Reaches(source, target string) bool {
	return defaultRegistry.Reaches(source, target)
}
