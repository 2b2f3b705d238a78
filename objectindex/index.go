package objectindex

import (
	"github.com/arborist-labs/subiso/graphalgebra"
	"github.com/arborist-labs/subiso/isomatch"
	"github.com/arborist-labs/subiso/isoset"
	"github.com/arborist-labs/subiso/subsumption"
	"github.com/arborist-labs/subiso/tagset"
)

// Index wraps a subsumption.Index so callers deal in objects O instead of
// graphs G. objectToGraph computes the graph side once, at Put time;
// Remove and Lookup (with its delta-mapping semantics) delegate straight
// through, while Get reads the wrapper's own key-to-object map.
type Index[K comparable, O any, G any, V comparable, T comparable] struct {
	inner         *subsumption.Index[K, G, V, T]
	objectToGraph func(O) G
	objects       map[K]O
}

// New returns an empty Index. objectToGraph is called once per Put to
// derive the graph an object is indexed under.
func New[K comparable, O any, G any, V comparable, T comparable](
	objectToGraph func(O) G,
	ops graphalgebra.SetOps[G, V],
	matcher isomatch.Matcher[G, V],
	extractTags func(G) []T,
	cmp tagset.Comparator[T],
	opts ...subsumption.Option[K, G, V, T],
) *Index[K, O, G, V, T] {
	return &Index[K, O, G, V, T]{
		inner:         subsumption.New[K, G, V, T](ops, matcher, extractTags, cmp, opts...),
		objectToGraph: objectToGraph,
		objects:       make(map[K]O),
	}
}

// Put binds key to obj, deriving its graph via objectToGraph.
func (idx *Index[K, O, G, V, T]) Put(key K, obj O) error {
	g := idx.objectToGraph(obj)
	if err := idx.inner.Put(key, g); err != nil {
		return err
	}
	idx.objects[key] = obj
	return nil
}

// Get returns the object bound to key. It is served from a map the
// wrapper keeps itself, since a G cannot in general be turned back into
// an O; the wrapped index is not consulted.
func (idx *Index[K, O, G, V, T]) Get(key K) (O, bool) {
	obj, ok := idx.objects[key]
	return obj, ok
}

// Remove unbinds key, cascading into the underlying index exactly as
// subsumption.Index.Remove does.
func (idx *Index[K, O, G, V, T]) Remove(key K) {
	idx.inner.Remove(key)
	delete(idx.objects, key)
}

// Lookup computes the query graph from queryObj and delegates to the
// wrapped index; the returned map and isomorphisms are keyed and shaped
// exactly as subsumption.Index.Lookup's.
func (idx *Index[K, O, G, V, T]) Lookup(queryObj O, exact bool, baseIso isoset.Iso[V]) map[K][]isoset.Iso[V] {
	return idx.inner.Lookup(idx.objectToGraph(queryObj), exact, baseIso)
}

// Inner returns the wrapped graph-level index, for callers that need
// graph-level access (e.g. PrintTree) alongside the object-level API.
func (idx *Index[K, O, G, V, T]) Inner() *subsumption.Index[K, G, V, T] {
	return idx.inner
}
