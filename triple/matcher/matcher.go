// Package matcher provides the default [github.com/arborist-labs/subiso/isomatch.Matcher]
// implementation for [github.com/arborist-labs/subiso/triple.Graph].
package matcher

import (
	"iter"

	"github.com/arborist-labs/subiso/isoset"
	"github.com/arborist-labs/subiso/triple"
)

// Matcher is a backtracking subgraph-isomorphism matcher in the style of
// VF2: it walks a's triples one at a time, trying every triple of b as a
// candidate image, and prunes as soon as a vertex binding conflicts with
// the accumulated mapping or with injectivity. It carries no state and is
// safe for concurrent use by independent callers (each Match call owns
// its own working copy of the mapping).
type Matcher struct{}

// New returns the default matcher.
func New() Matcher { return Matcher{} }

// Match implements isomatch.Matcher. The returned sequence yields every
// mapping extending base under which applying the mapping to a's triples
// produces a subset of b's triples. Enumeration stops early if the
// consumer's yield returns false; no goroutine or background state
// survives an abandoned range.
func (Matcher) Match(base isoset.Iso[triple.Vertex], a, b triple.Graph) iter.Seq[isoset.Iso[triple.Vertex]] {
	return func(yield func(isoset.Iso[triple.Vertex]) bool) {
		if a.Size() > b.Size() {
			return
		}
		edges := a.SortedItems()
		targets := b.SortedItems()
		mu := base.Clone()
		used := make(map[triple.Vertex]bool, len(mu))
		for k, v := range mu {
			if !k.Renameable() && k != v {
				// A concrete vertex may only map to itself.
				return
			}
			if k.Renameable() {
				used[v] = true
			}
		}

		var walk func(i int) bool
		walk = func(i int) bool {
			if i == len(edges) {
				return yield(mu.Clone())
			}
			e := edges[i]
			for _, cand := range targets {
				undo, ok := bindTriple(mu, used, e, cand)
				if !ok {
					continue
				}
				cont := walk(i + 1)
				undo()
				if !cont {
					return false
				}
			}
			return true
		}
		walk(0)
	}
}

// bindTriple attempts to unify e's three vertices against cand's in
// order, mutating mu and used as it goes. On success it returns an undo
// func that restores both to their pre-call state; on failure it has
// already rolled back any partial binding and returns a no-op undo.
func bindTriple(mu isoset.Iso[triple.Vertex], used map[triple.Vertex]bool, e, cand triple.Triple) (undo func(), ok bool) {
	var applied []func()
	rollback := func() {
		for i := len(applied) - 1; i >= 0; i-- {
			applied[i]()
		}
	}
	bind := func(src, dst triple.Vertex) bool {
		if src.Kind() == triple.Concrete {
			return src == dst
		}
		if existing, has := mu[src]; has {
			return existing == dst
		}
		if used[dst] {
			return false
		}
		mu[src] = dst
		used[dst] = true
		applied = append(applied, func() {
			delete(mu, src)
			delete(used, dst)
		})
		return true
	}

	if !bind(e.Subject, cand.Subject) || !bind(e.Predicate, cand.Predicate) || !bind(e.Object, cand.Object) {
		rollback()
		return func() {}, false
	}
	return rollback, true
}
