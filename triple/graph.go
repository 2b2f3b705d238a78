package triple

import (
	"maps"
	"sort"
	"strings"

	"github.com/arborist-labs/subiso/isoset"
)

// Triple is the single item shape of a [Graph]: a labelled edge from
// Subject to Object by way of Predicate, following RDF's convention.
type Triple struct {
	Subject   Vertex
	Predicate Vertex
	Object    Vertex
}

// String renders t as "(subject predicate object)".
func (t Triple) String() string {
	var b strings.Builder
	b.WriteByte('(')
	b.WriteString(t.Subject.String())
	b.WriteByte(' ')
	b.WriteString(t.Predicate.String())
	b.WriteByte(' ')
	b.WriteString(t.Object.String())
	b.WriteByte(')')
	return b.String()
}

// applyIso renames every vertex of t found in mu, leaving the rest
// unchanged.
func (t Triple) applyIso(mu isoset.Iso[Vertex]) Triple {
	rename := func(v Vertex) Vertex {
		if r, ok := mu[v]; ok {
			return r
		}
		return v
	}
	return Triple{Subject: rename(t.Subject), Predicate: rename(t.Predicate), Object: rename(t.Object)}
}

// Graph is an immutable set of [Triple] items.
//
// The zero Graph is a valid empty graph. Graph values should be treated
// as immutable: every operation below returns a new Graph rather than
// mutating the receiver, so a Graph is safe to share across index nodes.
type Graph struct {
	items map[Triple]struct{}
}

// Of builds a Graph from the given triples, deduplicating as it goes.
func Of(triples ...Triple) Graph {
	items := make(map[Triple]struct{}, len(triples))
	for _, t := range triples {
		items[t] = struct{}{}
	}
	return Graph{items: items}
}

// New returns a fresh, empty Graph. [Ops.New], part of the
// [github.com/arborist-labs/subiso/graphalgebra.SetOps] implementation,
// delegates to it.
func New() Graph {
	return Graph{}
}

// Items returns the triples of g as a slice in no particular order.
func (g Graph) Items() []Triple {
	out := make([]Triple, 0, len(g.items))
	for t := range g.items {
		out = append(out, t)
	}
	return out
}

// SortedItems returns the triples of g sorted by their String form (used
// by the triple/matcher package for a deterministic enumeration order).
func (g Graph) SortedItems() []Triple {
	out := g.Items()
	sort.Slice(out, func(i, j int) bool {
		return out[i].String() < out[j].String()
	})
	return out
}

// Size implements SetOps.
func (g Graph) Size() int { return len(g.items) }

// IsEmpty implements SetOps.
func (g Graph) IsEmpty() bool { return len(g.items) == 0 }

// Has reports whether t is an item of g.
func (g Graph) Has(t Triple) bool {
	_, ok := g.items[t]
	return ok
}

// Union implements SetOps.
func Union(a, b Graph) Graph {
	items := make(map[Triple]struct{}, len(a.items)+len(b.items))
	maps.Copy(items, a.items)
	maps.Copy(items, b.items)
	return Graph{items: items}
}

// Difference implements SetOps: the items of a not present in b.
func Difference(a, b Graph) Graph {
	items := make(map[Triple]struct{})
	for t := range a.items {
		if _, ok := b.items[t]; !ok {
			items[t] = struct{}{}
		}
	}
	return Graph{items: items}
}

// Intersect implements SetOps: items present in both a and b.
func Intersect(a, b Graph) Graph {
	small, large := a, b
	if len(large.items) < len(small.items) {
		small, large = large, small
	}
	items := make(map[Triple]struct{})
	for t := range small.items {
		if _, ok := large.items[t]; ok {
			items[t] = struct{}{}
		}
	}
	return Graph{items: items}
}

// ApplyIso implements SetOps: renames every vertex found in mu.
func ApplyIso(g Graph, mu isoset.Iso[Vertex]) Graph {
	if len(mu) == 0 {
		return g
	}
	items := make(map[Triple]struct{}, len(g.items))
	for t := range g.items {
		items[t.applyIso(mu)] = struct{}{}
	}
	return Graph{items: items}
}

// TransformItems implements the general form of ApplyIso: fn is applied
// to every item (boxed as any, holding a Triple); a false second return
// drops the item.
func TransformItems(g Graph, fn func(item any) (any, bool)) Graph {
	items := make(map[Triple]struct{}, len(g.items))
	for t := range g.items {
		out, ok := fn(t)
		if !ok {
			continue
		}
		items[out.(Triple)] = struct{}{}
	}
	return Graph{items: items}
}

// ExtractTags returns the distinct Concrete-vertex labels appearing in g,
// the tags spec.md's data model calls "typically a concrete vertex or
// edge label". Order is unspecified; callers needing a stable order
// should sort the result themselves or rely on
// [github.com/arborist-labs/subiso/tagset.SetTrie], which sorts
// internally.
func ExtractTags(g Graph) []string {
	seen := make(map[string]struct{})
	add := func(v Vertex) {
		if v.Kind() == Concrete {
			seen[v.Label()] = struct{}{}
		}
	}
	for t := range g.items {
		add(t.Subject)
		add(t.Predicate)
		add(t.Object)
	}
	out := make([]string, 0, len(seen))
	for label := range seen {
		out = append(out, label)
	}
	return out
}
