package triple_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arborist-labs/subiso/isoset"
	"github.com/arborist-labs/subiso/triple"
)

func person(label string) triple.Vertex { return triple.NewConcrete(label) }

func TestGraph_SizeAndEmpty(t *testing.T) {
	g := triple.New()
	assert.True(t, g.IsEmpty())
	assert.Equal(t, 0, g.Size())

	g = triple.Of(triple.Triple{Subject: triple.NewAbstract("w"), Predicate: person("type"), Object: person("Person")})
	assert.False(t, g.IsEmpty())
	assert.Equal(t, 1, g.Size())
}

func TestGraph_Of_Deduplicates(t *testing.T) {
	tr := triple.Triple{Subject: triple.NewAbstract("w"), Predicate: person("type"), Object: person("Person")}
	g := triple.Of(tr, tr)
	assert.Equal(t, 1, g.Size())
}

func TestUnionDifferenceIntersect(t *testing.T) {
	w := triple.NewAbstract("w")
	x := triple.NewAbstract("x")
	t1 := triple.Triple{Subject: w, Predicate: person("type"), Object: person("Person")}
	t2 := triple.Triple{Subject: x, Predicate: person("type"), Object: person("Person")}
	t3 := triple.Triple{Subject: x, Predicate: person("name"), Object: person("Ada")}

	a := triple.Of(t1, t2)
	b := triple.Of(t2, t3)

	assert.Equal(t, 3, triple.Union(a, b).Size())
	assert.Equal(t, triple.Of(t1), triple.Difference(a, b))
	assert.Equal(t, triple.Of(t2), triple.Intersect(a, b))
}

func TestApplyIso(t *testing.T) {
	w := triple.NewAbstract("w")
	foo := triple.NewAbstract("foo")
	g := triple.Of(triple.Triple{Subject: w, Predicate: person("type"), Object: person("Person")})

	renamed := triple.ApplyIso(g, isoset.Iso[triple.Vertex]{w: foo})
	want := triple.Of(triple.Triple{Subject: foo, Predicate: person("type"), Object: person("Person")})
	assert.Equal(t, want, renamed)
}

func TestApplyIso_LeavesConcreteUnlessMapped(t *testing.T) {
	g := triple.Of(triple.Triple{Subject: triple.NewAbstract("w"), Predicate: person("type"), Object: person("Person")})
	renamed := triple.ApplyIso(g, isoset.Iso[triple.Vertex]{})
	assert.Equal(t, g, renamed)
}

func TestExtractTags(t *testing.T) {
	g := triple.Of(
		triple.Triple{Subject: triple.NewAbstract("x"), Predicate: person("type"), Object: person("Person")},
		triple.Triple{Subject: triple.NewAbstract("x"), Predicate: person("name"), Object: triple.NewAbstract("l")},
	)
	tags := triple.ExtractTags(g)
	sort.Strings(tags)
	assert.Equal(t, []string{"Person", "name", "type"}, tags)
}

func TestOps_SatisfiesSetOps(t *testing.T) {
	ops := triple.Ops{}
	g := ops.New()
	assert.True(t, ops.IsEmpty(g))
}
