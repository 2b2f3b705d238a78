package subsumption

import (
	"fmt"
	"log/slog"

	"github.com/arborist-labs/subiso/graphalgebra"
	"github.com/arborist-labs/subiso/internal/trace"
	"github.com/arborist-labs/subiso/isomatch"
	"github.com/arborist-labs/subiso/isoset"
	"github.com/arborist-labs/subiso/tagset"
)

// posState tracks, during an insertion-mode traversal, whether the node
// currently being visited has been subsumed by at least one outgoing
// edge.
type posState int

const (
	undecided posState = iota
	subsumed
	unsubsumed
)

// position is a node findInsertPositions stopped at or passed through,
// along with the residual graph/tags and the full accumulated mapping
// as seen from that node.
type position[K comparable, G any, V comparable, T comparable] struct {
	n            *node[K, G, V, T]
	residual     G
	residualTags []T
	baseIso      isoset.Iso[V]
}

// Index is the hierarchical subsumption index (spec component C6): a DAG
// of stored graphs, rooted at an implicit empty graph, where an edge
// from A to B witnesses that G(A) embeds into G(B).
//
// K is the caller's key type, G the graph type, V the graph's vertex
// type, T the tag type extracted from a graph for the tag-subset
// prefilter. An Index is not safe for concurrent use.
type Index[K comparable, G any, V comparable, T comparable] struct {
	ops         graphalgebra.SetOps[G, V]
	matcher     isomatch.Matcher[G, V]
	extractTags func(G) []T
	cmp         tagset.Comparator[T]
	logger      *slog.Logger

	root           *node[K, G, V, T]
	nodes          map[K]*node[K, G, V, T] // preferred key -> its node
	orphans        map[K]*node[K, G, V, T] // former preferred key, still structural
	keyToGraph     map[K]G                 // every live key (preferred or alt) -> its graph
	altOwner       map[K]K                 // alt key -> owning preferred key
	altIsos        map[K]map[K][]isoset.Iso[V]
	globalTagIndex *tagset.SetTrie[K, T]
}

// New returns an empty Index. extractTags derives a graph's tag set
// (used for the tag-subset prefilter); cmp totally orders T for the
// underlying set-tries.
func New[K comparable, G any, V comparable, T comparable](
	ops graphalgebra.SetOps[G, V],
	matcher isomatch.Matcher[G, V],
	extractTags func(G) []T,
	cmp tagset.Comparator[T],
	opts ...Option[K, G, V, T],
) *Index[K, G, V, T] {
	cfg := &config[K, G, V, T]{}
	for _, opt := range opts {
		opt(cfg)
	}
	idx := &Index[K, G, V, T]{
		ops:            ops,
		matcher:        matcher,
		extractTags:    extractTags,
		cmp:            cmp,
		logger:         cfg.logger,
		nodes:          make(map[K]*node[K, G, V, T]),
		orphans:        make(map[K]*node[K, G, V, T]),
		keyToGraph:     make(map[K]G),
		altOwner:       make(map[K]K),
		altIsos:        make(map[K]map[K][]isoset.Iso[V]),
		globalTagIndex: tagset.NewSetTrie[K, T](cmp),
	}
	idx.root = newNode[K, G, V, T](nil, ops.New(), nil, cmp)
	return idx
}

// lookupNode returns the node currently addressed by k, whether it is a
// live preferred key or a de-keyed structural orphan.
func (idx *Index[K, G, V, T]) lookupNode(k K) (*node[K, G, V, T], bool) {
	if n, ok := idx.nodes[k]; ok {
		return n, true
	}
	n, ok := idx.orphans[k]
	return n, ok
}

// Put inserts graph g under key. If key is already bound to an
// isomorphic graph, Put is a no-op. If key is already bound to a
// different graph, Put returns ErrKeyConflict.
func (idx *Index[K, G, V, T]) Put(key K, g G) error {
	if existing, ok := idx.keyToGraph[key]; ok {
		if idx.graphsEqual(existing, g) {
			return nil
		}
		return fmt.Errorf("%w: %v", ErrKeyConflict, key)
	}

	op := trace.Begin(idx.logger, "subiso.subsumption.put")
	tags := idx.extractTags(g)

	var positions []position[K, G, V, T]
	idx.traverse(idx.root, g, tags, isoset.New[V](), false, &positions)
	assertInvariant(len(positions) > 0, "findInsertPositions returned no position for a non-conflicting key")

	var child *node[K, G, V, T]
	for _, p := range positions {
		if idx.ops.IsEmpty(p.residual) && len(p.residualTags) == 0 && idx.graphsEqual(p.n.graph, g) {
			idx.addAlt(p.n, key, p.baseIso.Delta())
			continue
		}
		if child == nil {
			child = newNode[K, G, V, T](&key, g, tags, idx.cmp)
		}
		idx.attach(p.n, key, child, p.residual, p.residualTags, p.baseIso)
	}

	if child != nil {
		idx.nodes[key] = child
		idx.globalTagIndex.Put(key, tags)
		idx.rewireGlobal(key, child)
	}
	idx.keyToGraph[key] = g
	op.End(nil)
	return nil
}

// graphsEqual reports whether a and b hold the same items, ignoring
// vertex identity (i.e. whether they are isomorphic with zero residual
// in both directions).
func (idx *Index[K, G, V, T]) graphsEqual(a, b G) bool {
	if idx.ops.Size(a) != idx.ops.Size(b) {
		return false
	}
	covers := func(x, y G) bool {
		for mu := range idx.matcher.Match(isoset.New[V](), x, y) {
			if idx.ops.IsEmpty(idx.ops.Difference(y, idx.ops.ApplyIso(x, mu))) {
				return true
			}
		}
		return false
	}
	return covers(a, b) && covers(b, a)
}

// Get returns the graph bound to key, whether key is a preferred or an
// alt key.
func (idx *Index[K, G, V, T]) Get(key K) (G, bool) {
	g, ok := idx.keyToGraph[key]
	return g, ok
}

// Remove deletes key from the index. If key was a preferred key whose
// node has no remaining outgoing edges or alt keys, the node is
// extinguished and the cascade is applied up through its (former)
// parents; if it still has children or alt keys, the node is retained as
// a structural orphan.
func (idx *Index[K, G, V, T]) Remove(key K) {
	op := trace.Begin(idx.logger, "subiso.subsumption.remove")
	defer op.End(nil)

	if prefKey, ok := idx.altOwner[key]; ok {
		delete(idx.altOwner, key)
		delete(idx.altIsos[prefKey], key)
		if len(idx.altIsos[prefKey]) == 0 {
			delete(idx.altIsos, prefKey)
		}
		delete(idx.keyToGraph, key)
		return
	}

	n, ok := idx.lookupNode(key)
	if !ok {
		delete(idx.keyToGraph, key)
		return
	}
	delete(idx.nodes, key)
	delete(idx.keyToGraph, key)
	idx.globalTagIndex.Remove(key)
	idx.tryExtinguish(key, n)
}

// tryExtinguish removes n from the DAG if nothing still needs it: no
// live preferred key, no alt keys, and no outgoing edges. If n still
// has alt keys or outgoing edges it is kept alive as an orphan.
// Otherwise it is fully removed and the same check is applied to its
// former parents.
func (idx *Index[K, G, V, T]) tryExtinguish(key K, n *node[K, G, V, T]) {
	if n == idx.root {
		return
	}
	if _, isPref := idx.nodes[key]; isPref {
		return
	}
	if len(idx.altIsos[key]) > 0 || len(n.outEdges) > 0 {
		idx.orphans[key] = n
		return
	}
	delete(idx.orphans, key)

	parents := make([]K, 0, len(n.parents))
	for pk := range n.parents {
		parents = append(parents, pk)
	}
	idx.detachChild(idx.root, key)
	for _, pk := range parents {
		parent, ok := idx.lookupNode(pk)
		if !ok {
			continue
		}
		idx.detachChild(parent, key)
		idx.tryExtinguish(pk, parent)
	}
}

func (idx *Index[K, G, V, T]) detachChild(parent *node[K, G, V, T], childKey K) {
	for eid := range parent.outEdges {
		if eid.to == childKey {
			delete(parent.outEdges, eid)
			parent.tagIndex.Remove(eid)
		}
	}
}

// Lookup returns, for every stored key the query graph is subsumed by,
// every witnessing delta mapping (stored-graph vertex names to query
// vertex names). When exact is true, only keys isomorphic to the full
// query (zero residual) are returned. baseIso extends the search with a
// caller-supplied starting mapping; pass nil (or an empty Iso) for an
// unconstrained lookup.
func (idx *Index[K, G, V, T]) Lookup(query G, exact bool, baseIso isoset.Iso[V]) map[K][]isoset.Iso[V] {
	op := trace.Begin(idx.logger, "subiso.subsumption.lookup")
	defer op.End(nil)

	start := isoset.New[V]()
	if baseIso != nil {
		start = baseIso.Clone()
	}
	tags := idx.extractTags(query)

	var positions []position[K, G, V, T]
	idx.traverse(idx.root, query, tags, start, true, &positions)

	raw := make(map[K][]isoset.Iso[V])
	for _, p := range positions {
		if p.n.key == nil {
			continue
		}
		if exact && !idx.ops.IsEmpty(p.residual) {
			continue
		}
		raw[*p.n.key] = append(raw[*p.n.key], p.baseIso)
	}

	out := make(map[K][]isoset.Iso[V])
	for prefKey, isos := range raw {
		_, live := idx.nodes[prefKey]
		for _, fullIso := range isos {
			if live {
				out[prefKey] = append(out[prefKey], fullIso.Delta())
			}
			for altKey, deltas := range idx.altIsos[prefKey] {
				for _, delta := range deltas {
					mapped, ok := isoset.MapDomainVia(fullIso, delta)
					if !ok {
						trace.Debug(idx.logger, "map-domain-via collision expanding alt key; skipping", slog.Any("alt_key", altKey))
						continue
					}
					out[altKey] = append(out[altKey], mapped.Delta())
				}
			}
		}
	}
	return out
}

// traverse implements findInsertPositions (spec.md §4.4.2/§4.4.4) for
// both Put (retrieval=false) and Lookup (retrieval=true). It descends n
// via every outgoing edge whose stored residual tags are a subset of
// residualTags, extending baseIso with each match and recursing; it
// records a position at n itself either when retrieval is true
// (positions are recorded at every node visited) or when n was not
// subsumed by any edge (an insertion point).
func (idx *Index[K, G, V, T]) traverse(n *node[K, G, V, T], residual G, residualTags []T, baseIso isoset.Iso[V], retrieval bool, out *[]position[K, G, V, T]) posState {
	state := undecided

	for _, eid := range n.tagIndex.AllSubsetsOf(residualTags, false) {
		e, ok := n.outEdges[eid]
		if !ok {
			continue
		}
		mappedBase, ok := isoset.MapDomainVia(baseIso, e.transIso)
		if !ok {
			trace.Debug(idx.logger, "map-domain-via collision; skipping candidate edge", slog.Any("to", e.to))
			continue
		}
		child, ok := idx.lookupNode(e.to)
		if !ok {
			continue
		}
		for mu := range idx.matcher.Match(mappedBase, e.residualGraph, residual) {
			if !isoset.Compatible(mappedBase, mu) {
				continue
			}
			state = subsumed
			newResidual := idx.ops.Difference(residual, idx.ops.ApplyIso(e.residualGraph, mu))
			newResidualTags := idx.extractTags(newResidual)
			idx.traverse(child, newResidual, newResidualTags, mu, retrieval, out)
		}
	}

	if retrieval {
		*out = append(*out, position[K, G, V, T]{n: n, residual: residual, residualTags: residualTags, baseIso: baseIso})
	} else if state != subsumed {
		*out = append(*out, position[K, G, V, T]{n: n, residual: residual, residualTags: residualTags, baseIso: baseIso})
	}
	return state
}

// addAlt records altKey as isomorphic to the key currently preferred at
// node n, with delta as the witnessing mapping from the preferred key's
// own vertex names to altKey's own vertex names.
func (idx *Index[K, G, V, T]) addAlt(n *node[K, G, V, T], altKey K, delta isoset.Iso[V]) {
	assertInvariant(n.key != nil, "addAlt called against a keyless node")
	prefKey := *n.key
	if idx.altIsos[prefKey] == nil {
		idx.altIsos[prefKey] = make(map[K][]isoset.Iso[V])
	}
	idx.altIsos[prefKey][altKey] = append(idx.altIsos[prefKey][altKey], delta)
	idx.altOwner[altKey] = prefKey
}

// attach creates the parent->childKey edge and performs the first
// rewiring pass over parent's other direct children (spec.md §4.4.3,
// pass 1) before registering it. The second pass is rewireGlobal, which
// Put runs once the child is registered.
func (idx *Index[K, G, V, T]) attach(parent *node[K, G, V, T], childKey K, child *node[K, G, V, T], residual G, residualTags []T, baseIso isoset.Iso[V]) {
	if parent.key != nil && *parent.key == childKey {
		panic(fmt.Errorf("%w: %v", ErrSelfEdge, childKey))
	}
	transIso := baseIso.Delta()
	edgeAB := Edge[K, G, V, T]{
		from:          parent.key,
		to:            childKey,
		transIso:      transIso,
		residualGraph: residual,
		residualTags:  append([]T(nil), residualTags...),
		baseIso:       baseIso.Clone(),
	}

	idx.rewireDirectChildren(parent, childKey, child, edgeAB)

	eid := newEdgeID[K, V](childKey, transIso)
	parent.outEdges[eid] = edgeAB
	parent.tagIndex.Put(eid, residualTags)
	if parent.key != nil {
		child.parents[*parent.key] = struct{}{}
	}
}

// rewireDirectChildren implements §4.4.3 pass 1: for every other direct
// child C of parent whose residual tags are a superset of B's, check
// whether G(B) also embeds into G(C); if so, C is re-parented under B
// instead of parent.
func (idx *Index[K, G, V, T]) rewireDirectChildren(parent *node[K, G, V, T], bKey K, bNode *node[K, G, V, T], edgeAB Edge[K, G, V, T]) {
	bInv := edgeAB.baseIso.Invert()

	type rewired struct {
		eid edgeID[K, V]
		c   K
	}
	var done []rewired

	for eid, edgeAC := range parent.outEdges {
		if eid.to == bKey {
			continue
		}
		if !isSuperset(edgeAC.residualTags, edgeAB.residualTags) {
			continue
		}
		baseBtoC, ok := isoset.MapRangeVia(bInv, edgeAC.transIso)
		if !ok {
			trace.Debug(idx.logger, "map-range-via collision during rewiring; leaving edge in place", slog.Any("child", eid.to))
			continue
		}
		cNode, ok := idx.lookupNode(eid.to)
		if !ok {
			continue
		}

		for mu := range idx.matcher.Match(baseBtoC, edgeAB.residualGraph, edgeAC.residualGraph) {
			if !isoset.Compatible(baseBtoC, mu) {
				continue
			}
			newResidual := idx.ops.Difference(edgeAC.residualGraph, idx.ops.ApplyIso(edgeAB.residualGraph, mu))
			newTags := idx.extractTags(newResidual)
			bc := Edge[K, G, V, T]{
				from:          &bKey,
				to:            eid.to,
				transIso:      mu.Delta(),
				residualGraph: newResidual,
				residualTags:  newTags,
				baseIso:       mu.Clone(),
			}
			bcID := newEdgeID[K, V](eid.to, bc.transIso)
			bNode.outEdges[bcID] = bc
			bNode.tagIndex.Put(bcID, newTags)
			cNode.parents[bKey] = struct{}{}
			done = append(done, rewired{eid: eid, c: eid.to})
			break
		}
	}

	for _, r := range done {
		delete(parent.outEdges, r.eid)
		parent.tagIndex.Remove(r.eid)
		if cNode, ok := idx.lookupNode(r.c); ok && parent.key != nil {
			delete(cNode.parents, *parent.key)
		}
	}
}

// rewireGlobal implements §4.4.3 pass 2: after bKey's node is fully
// registered, scan the global tag index for any other preferred key
// whose full tag set is a strict superset of bKey's (a key whose tag set
// equals bKey's is not considered) and, if G(bKey) embeds
// into it, add a direct edge so future traversals can reach it without
// detouring through wherever it happened to be attached originally.
func (idx *Index[K, G, V, T]) rewireGlobal(bKey K, bNode *node[K, G, V, T]) {
	for _, ck := range idx.globalTagIndex.AllSupersetsOf(bNode.graphTags, true) {
		cNode, ok := idx.lookupNode(ck)
		if !ok {
			continue
		}
		if _, already := cNode.parents[bKey]; already {
			continue
		}
		linked := false
		for eid := range bNode.outEdges {
			if eid.to == ck {
				linked = true
				break
			}
		}
		if linked {
			continue
		}

		for mu := range idx.matcher.Match(isoset.New[V](), bNode.graph, cNode.graph) {
			newResidual := idx.ops.Difference(cNode.graph, idx.ops.ApplyIso(bNode.graph, mu))
			newTags := idx.extractTags(newResidual)
			edge := Edge[K, G, V, T]{
				from:          &bKey,
				to:            ck,
				transIso:      mu.Delta(),
				residualGraph: newResidual,
				residualTags:  newTags,
				baseIso:       mu.Clone(),
			}
			eid := newEdgeID[K, V](ck, edge.transIso)
			if _, exists := bNode.outEdges[eid]; exists {
				continue
			}
			bNode.outEdges[eid] = edge
			bNode.tagIndex.Put(eid, newTags)
			cNode.parents[bKey] = struct{}{}
			break
		}
	}
}

// isSuperset reports whether a contains every tag in b.
func isSuperset[T comparable](a, b []T) bool {
	set := make(map[T]struct{}, len(a))
	for _, t := range a {
		set[t] = struct{}{}
	}
	for _, t := range b {
		if _, ok := set[t]; !ok {
			return false
		}
	}
	return true
}
