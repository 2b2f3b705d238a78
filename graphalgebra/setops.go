package graphalgebra

import "github.com/arborist-labs/subiso/isoset"

// SetOps is the abstract graph-set algebra the core index builds on.
//
// All operations are pure: they must not mutate their arguments, and
// equal inputs must produce equal (or at least set-equivalent) outputs.
// Implementations may return shared views rather than fresh copies —
// [ApplyIso] in particular is explicitly permitted to return a view —
// provided callers never observe a mutation through one graph value
// leaking into another.
//
// G is the graph type; V is the vertex type. V must be comparable so it
// can key the maps an [isoset.Iso] is built from.
type SetOps[G any, V comparable] interface {
	// New returns a fresh, empty graph.
	New() G

	// Union returns the set-union of a and b. Union is idempotent:
	// Union(a, a) is equivalent to a.
	Union(a, b G) G

	// Difference returns the items of a that are not in b (set-theoretic
	// difference over items, not a structural diff).
	Difference(a, b G) G

	// Intersect returns the items present in both a and b.
	Intersect(a, b G) G

	// Size reports the number of items in g. Implementations must make
	// this O(1) or amortised O(1); callers use it on hot paths.
	Size(g G) int

	// IsEmpty reports whether g has no items. Implementations must make
	// this O(1).
	IsEmpty(g G) bool

	// ApplyIso renames the vertices of g according to mu: a vertex not
	// in mu's domain is left unchanged. ApplyIso must preserve item
	// multiplicity and structure.
	ApplyIso(g G, mu isoset.Iso[V]) G

	// TransformItems is the general form of ApplyIso: it rebuilds g by
	// passing every item through fn and collecting the results. fn may
	// return false to drop an item. This is the escape hatch for
	// transformations ApplyIso's pure-renaming contract cannot express.
	TransformItems(g G, fn func(item any) (any, bool)) G
}
