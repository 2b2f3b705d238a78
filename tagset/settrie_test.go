package tagset_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arborist-labs/subiso/tagset"
)

func newTrie() *tagset.SetTrie[string, string] {
	return tagset.NewSetTrie[string, string](tagset.OrderedComparator[string]())
}

func TestSetTrie_PutAndLen(t *testing.T) {
	trie := newTrie()
	trie.Put("a", []string{"x", "y"})
	trie.Put("b", []string{"y", "x"}) // same set, different insertion order
	assert.Equal(t, 2, trie.Len())
}

func TestSetTrie_AllSubsetsOf(t *testing.T) {
	trie := newTrie()
	trie.Put("empty", nil)
	trie.Put("a", []string{"type"})
	trie.Put("b", []string{"type", "name"})
	trie.Put("c", []string{"type", "age"})
	trie.Put("d", []string{"type", "age", "name"})

	got := trie.AllSubsetsOf([]string{"type", "name"}, false)
	assertKeys(t, []string{"empty", "a", "b"}, got)
}

func TestSetTrie_AllSubsetsOf_Strict(t *testing.T) {
	trie := newTrie()
	trie.Put("a", []string{"type"})
	trie.Put("b", []string{"type", "name"})

	got := trie.AllSubsetsOf([]string{"type", "name"}, true)
	assertKeys(t, []string{"a"}, got)
}

func TestSetTrie_AllSupersetsOf(t *testing.T) {
	trie := newTrie()
	trie.Put("a", []string{"type"})
	trie.Put("b", []string{"type", "name"})
	trie.Put("c", []string{"type", "age", "name"})
	trie.Put("d", []string{"other"})

	got := trie.AllSupersetsOf([]string{"type", "name"}, false)
	assertKeys(t, []string{"b", "c"}, got)
}

func TestSetTrie_AllSupersetsOf_Strict(t *testing.T) {
	trie := newTrie()
	trie.Put("b", []string{"type", "name"})
	trie.Put("c", []string{"type", "age", "name"})

	got := trie.AllSupersetsOf([]string{"type", "name"}, true)
	assertKeys(t, []string{"c"}, got)
}

func TestSetTrie_AllSupersetsOf_EmptyQueryMatchesEverything(t *testing.T) {
	trie := newTrie()
	trie.Put("a", []string{"type"})
	trie.Put("b", nil)

	got := trie.AllSupersetsOf(nil, false)
	assertKeys(t, []string{"a", "b"}, got)
}

func TestSetTrie_Remove(t *testing.T) {
	trie := newTrie()
	trie.Put("a", []string{"type", "name"})
	trie.Put("b", []string{"type"})
	trie.Remove("a")

	assert.Equal(t, 1, trie.Len())
	got := trie.AllSubsetsOf([]string{"type", "name"}, false)
	assertKeys(t, []string{"b"}, got)
}

func TestSetTrie_Put_ReplacesExisting(t *testing.T) {
	trie := newTrie()
	trie.Put("a", []string{"type"})
	trie.Put("a", []string{"name"})

	assert.Equal(t, 1, trie.Len())
	assert.Empty(t, trie.AllSupersetsOf([]string{"type"}, false))
	got := trie.AllSupersetsOf([]string{"name"}, false)
	assertKeys(t, []string{"a"}, got)
}

func assertKeys(t *testing.T, want, got []string) {
	t.Helper()
	sort.Strings(want)
	sort.Strings(got)
	assert.Equal(t, want, got)
}
