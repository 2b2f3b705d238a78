package objectindex_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arborist-labs/subiso/objectindex"
	"github.com/arborist-labs/subiso/tagset"
	"github.com/arborist-labs/subiso/triple"
	"github.com/arborist-labs/subiso/triple/matcher"
)

// person is a toy domain object; personToGraph is the objectToGraph hook
// under test.
type person struct {
	varName string
	typed   bool
	name    string
}

func personToGraph(p person) triple.Graph {
	s := triple.NewAbstract(p.varName)
	triples := []triple.Triple{}
	if p.typed {
		triples = append(triples, triple.Triple{Subject: s, Predicate: triple.NewConcrete("type"), Object: triple.NewConcrete("Person")})
	}
	if p.name != "" {
		triples = append(triples, triple.Triple{Subject: s, Predicate: triple.NewConcrete("name"), Object: triple.NewConcrete(p.name)})
	}
	return triple.Of(triples...)
}

func newTestIndex() *objectindex.Index[string, person, triple.Graph, triple.Vertex, string] {
	return objectindex.New[string, person, triple.Graph, triple.Vertex, string](
		personToGraph, triple.Ops{}, matcher.New(), triple.ExtractTags, tagset.StringComparator(),
	)
}

func TestPutGetRoundTrip(t *testing.T) {
	idx := newTestIndex()
	p := person{varName: "x", typed: true}
	require.NoError(t, idx.Put("alice", p))

	got, ok := idx.Get("alice")
	require.True(t, ok)
	assert.Equal(t, p, got)

	_, ok = idx.Get("nobody")
	assert.False(t, ok)
}

func TestLookupDelegatesToInner(t *testing.T) {
	idx := newTestIndex()
	require.NoError(t, idx.Put("alice", person{varName: "x", typed: true}))
	require.NoError(t, idx.Put("bob", person{varName: "y", typed: true, name: "Bob"}))

	results := idx.Lookup(person{varName: "q", typed: true, name: "Bob"}, false, nil)
	assert.Contains(t, results, "alice")
	assert.Contains(t, results, "bob")
}

func TestRemoveDropsObjectAndGraph(t *testing.T) {
	idx := newTestIndex()
	require.NoError(t, idx.Put("alice", person{varName: "x", typed: true}))

	idx.Remove("alice")
	_, ok := idx.Get("alice")
	assert.False(t, ok)

	_, ok = idx.Inner().Get("alice")
	assert.False(t, ok)
}

func TestPutKeyConflictPropagates(t *testing.T) {
	idx := newTestIndex()
	require.NoError(t, idx.Put("alice", person{varName: "x", typed: true}))

	err := idx.Put("alice", person{varName: "z", typed: true, name: "different"})
	assert.Error(t, err)
}
