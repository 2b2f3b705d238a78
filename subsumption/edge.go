package subsumption

import (
	"fmt"
	"sort"
	"strings"

	"github.com/arborist-labs/subiso/isoset"
)

// edgeID canonicalizes a (child key, transIso) pair into a comparable
// value so it can key both a node's outEdges map and its per-edge
// [github.com/arborist-labs/subiso/tagset.TagMap]. isoset.Iso is itself
// a map and so is neither comparable nor hashable; isoKey gives it a
// deterministic string form instead.
type edgeID[K comparable, V comparable] struct {
	to  K
	iso string
}

func newEdgeID[K comparable, V comparable](to K, transIso isoset.Iso[V]) edgeID[K, V] {
	return edgeID[K, V]{to: to, iso: isoKey(transIso)}
}

// isoKey renders mu as a sorted, delimited string unique to its pair
// set. Two Isos with the same pairs in different map-iteration order
// produce the same key.
func isoKey[V comparable](mu isoset.Iso[V]) string {
	if len(mu) == 0 {
		return ""
	}
	parts := make([]string, 0, len(mu))
	for k, v := range mu {
		parts = append(parts, fmt.Sprintf("%v\x00%v", k, v))
	}
	sort.Strings(parts)
	return strings.Join(parts, "\x1f")
}

// Edge is the immutable description of a parent-to-child relation in the
// subsumption DAG.
//
//   - from: the parent's preferred key, nil when the parent is the root
//   - to: the child's preferred key
//   - transIso: the delta mapping from the parent's own vertex names to
//     the child's own vertex names
//   - residualGraph: the content of the child not already covered by
//     the parent under transIso
//   - residualTags: the tags of residualGraph, precomputed at edge
//     creation time for the tag-subset prefilter
//   - baseIso: the full mapping accumulated from the root down to (and
//     including) this edge, expressed in the child's own vertex names
type Edge[K comparable, G any, V comparable, T comparable] struct {
	from          *K
	to            K
	transIso      isoset.Iso[V]
	residualGraph G
	residualTags  []T
	baseIso       isoset.Iso[V]
}

// To returns the child key this edge points to.
func (e Edge[K, G, V, T]) To() K { return e.to }

// From returns the parent key this edge originates from, and false if
// the parent is the root.
func (e Edge[K, G, V, T]) From() (K, bool) {
	if e.from == nil {
		var zero K
		return zero, false
	}
	return *e.from, true
}

// TransIso returns a copy of the edge's delta mapping.
func (e Edge[K, G, V, T]) TransIso() isoset.Iso[V] { return e.transIso.Clone() }

// ResidualGraph returns the content of the child not covered by the
// parent.
func (e Edge[K, G, V, T]) ResidualGraph() G { return e.residualGraph }

// ResidualTags returns a copy of the residual graph's tags.
func (e Edge[K, G, V, T]) ResidualTags() []T {
	out := make([]T, len(e.residualTags))
	copy(out, e.residualTags)
	return out
}
