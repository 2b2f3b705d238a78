// Package flatindex provides the flat, linear-scan reference index
// (spec component C8): every Put is an independent entry with no
// subsumption structure, and Lookup tries the matcher against each one
// in turn. It exists to cross-check
// [github.com/arborist-labs/subiso/subsumption.Index] against a
// trivially-correct-by-construction implementation, not for production
// use on large stores.
package flatindex

import (
	"github.com/arborist-labs/subiso/graphalgebra"
	"github.com/arborist-labs/subiso/isomatch"
	"github.com/arborist-labs/subiso/isoset"
)

// Flat is the linear-scan reference index.
type Flat[K comparable, G any, V comparable] struct {
	ops     graphalgebra.SetOps[G, V]
	matcher isomatch.Matcher[G, V]
	entries map[K]G
}

// New returns an empty Flat index.
func New[K comparable, G any, V comparable](ops graphalgebra.SetOps[G, V], matcher isomatch.Matcher[G, V]) *Flat[K, G, V] {
	return &Flat[K, G, V]{
		ops:     ops,
		matcher: matcher,
		entries: make(map[K]G),
	}
}

// Put stores g under key, overwriting any prior graph (Flat has no
// conflict detection — it exists to check subsumption.Index's results,
// not to replicate its upsert semantics).
func (f *Flat[K, G, V]) Put(key K, g G) {
	f.entries[key] = g
}

// Get returns the graph bound to key.
func (f *Flat[K, G, V]) Get(key K) (G, bool) {
	g, ok := f.entries[key]
	return g, ok
}

// Remove deletes key.
func (f *Flat[K, G, V]) Remove(key K) {
	delete(f.entries, key)
}

// Lookup scans every entry and returns a witnessing delta mapping
// (stored-graph vertex names to query vertex names) for each one the
// query subsumes. When exact is true, only entries isomorphic to the
// full query (zero leftover query content) are returned.
func (f *Flat[K, G, V]) Lookup(query G, exact bool, baseIso isoset.Iso[V]) map[K][]isoset.Iso[V] {
	start := isoset.New[V]()
	if baseIso != nil {
		start = baseIso.Clone()
	}

	out := make(map[K][]isoset.Iso[V])
	for key, g := range f.entries {
		for mu := range f.matcher.Match(start, g, query) {
			if exact {
				mapped := f.ops.ApplyIso(g, mu)
				if !f.ops.IsEmpty(f.ops.Difference(query, mapped)) {
					continue
				}
			}
			out[key] = append(out[key], mu.Delta())
		}
	}
	return out
}
