package triple_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arborist-labs/subiso/triple"
)

func TestCompare(t *testing.T) {
	abstract1 := triple.NewAbstract("x")
	abstract2 := triple.NewAbstract("y")
	blank := triple.NewBlank()
	concreteA := triple.NewConcrete("Ada")
	concreteB := triple.NewConcrete("Bob")

	assert.Equal(t, 0, triple.Compare(abstract1, abstract2))
	assert.Equal(t, 0, triple.Compare(abstract1, blank))
	assert.Negative(t, triple.Compare(abstract1, concreteA))
	assert.Positive(t, triple.Compare(concreteA, abstract1))
	assert.Negative(t, triple.Compare(concreteA, concreteB))
	assert.Equal(t, 0, triple.Compare(concreteA, concreteA))
}

func TestVertex_Renameable(t *testing.T) {
	assert.True(t, triple.NewAbstract("x").Renameable())
	assert.True(t, triple.NewBlank().Renameable())
	assert.False(t, triple.NewConcrete("x").Renameable())
}

func TestNewBlank_Unique(t *testing.T) {
	a := triple.NewBlank()
	b := triple.NewBlank()
	assert.NotEqual(t, a, b)
	assert.Equal(t, triple.Blank, a.Kind())
}

func TestVertex_String(t *testing.T) {
	assert.Equal(t, "?x", triple.NewAbstract("x").String())
	assert.Equal(t, "?x", triple.NewAbstract("?x").String())
	assert.Equal(t, "Person", triple.NewConcrete("Person").String())
}
