package tagset

import (
	"cmp"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Comparator totally orders values of T. It must return a negative
// number if a < b, zero if a == b, and a positive number if a > b, and
// must be consistent (antisymmetric and transitive) for [SetTrie] to
// behave correctly.
type Comparator[T any] func(a, b T) int

// OrderedComparator returns a [Comparator] for any type satisfying the
// standard library's [cmp.Ordered] constraint.
func OrderedComparator[T cmp.Ordered]() Comparator[T] {
	return cmp.Compare[T]
}

// StringComparator returns a [Comparator] for string tags backed by
// [golang.org/x/text/collate], giving a deterministic, locale-stable
// total order instead of raw byte comparison. This is the default
// comparator the triple-graph binding uses for its concrete-label tags.
func StringComparator() Comparator[string] {
	c := collate.New(language.Und)
	return func(a, b string) int {
		return c.CompareString(a, b)
	}
}

// sortTags returns a sorted, duplicate-free copy of tags using cmp.
func sortTags[T any](tags []T, cmp Comparator[T]) []T {
	out := make([]T, len(tags))
	copy(out, tags)
	insertionSort(out, cmp)
	return dedupeSorted(out, cmp)
}

func insertionSort[T any](s []T, cmp Comparator[T]) {
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && cmp(s[j-1], s[j]) > 0; j-- {
			s[j-1], s[j] = s[j], s[j-1]
		}
	}
}

func dedupeSorted[T any](s []T, cmp Comparator[T]) []T {
	if len(s) == 0 {
		return s
	}
	out := s[:1]
	for i := 1; i < len(s); i++ {
		if cmp(out[len(out)-1], s[i]) != 0 {
			out = append(out, s[i])
		}
	}
	return out
}
