package subsumption

import "github.com/arborist-labs/subiso/tagset"

// node is an IndexNode (spec component C5): a stored graph plus its
// outgoing subsumption edges and the set of keys that point to it.
//
// key is nil for the root (the DAG's single always-present empty-graph
// node). A node whose preferred key has been removed while it still has
// outgoing edges or alt keys keeps that former key in key and is moved
// from Index.nodes to Index.orphans under it, as structural scaffolding
// for its descendants and alt keys; Lookup does not report the removed
// key itself.
type node[K comparable, G any, V comparable, T comparable] struct {
	key       *K
	graph     G
	graphTags []T
	outEdges  map[edgeID[K, V]]Edge[K, G, V, T]
	tagIndex  *tagset.SetTrie[edgeID[K, V], T]
	parents   map[K]struct{}
}

func newNode[K comparable, G any, V comparable, T comparable](key *K, graph G, tags []T, cmp tagset.Comparator[T]) *node[K, G, V, T] {
	return &node[K, G, V, T]{
		key:       key,
		graph:     graph,
		graphTags: tags,
		outEdges:  make(map[edgeID[K, V]]Edge[K, G, V, T]),
		tagIndex:  tagset.NewSetTrie[edgeID[K, V], T](cmp),
		parents:   make(map[K]struct{}),
	}
}
