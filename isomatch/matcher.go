package isomatch

import (
	"iter"

	"github.com/arborist-labs/subiso/isoset"
)

// Kind tags the strategy a [Matcher] implements. It carries no behavior;
// it exists so an index can report, log, or select among matcher
// implementations without a type switch on the concrete type.
type Kind int

const (
	// UserProvided is the zero value: a caller-supplied matcher of
	// unspecified strategy.
	UserProvided Kind = iota
	// VF2Like denotes a backtracking matcher in the style of the VF2
	// subgraph-isomorphism algorithm.
	VF2Like
	// Flat denotes a matcher that enumerates candidates by brute-force
	// scan, suitable only for small residual graphs.
	Flat
)

// String returns a human-readable name for k.
func (k Kind) String() string {
	switch k {
	case VF2Like:
		return "VF2Like"
	case Flat:
		return "Flat"
	default:
		return "UserProvided"
	}
}

// Matcher enumerates mappings extending base such that applying the
// mapping to every item of a yields a subset of the items of b.
//
// Concrete vertices must map to themselves; abstract and blank vertices
// may map to any vertex consistent with label agreement on adjacent
// items. Enumeration may be lazy: callers are permitted to stop ranging
// over the returned sequence at any point ("abandon mid-stream") without
// any side effect on the matcher or on a.
//
// An empty sequence is the matcher's sole failure signal — no error
// return exists at this layer. A matcher that detects a genuine
// programming fault (malformed graph, broken invariant in its own data)
// panics rather than returning an empty sequence; the core index
// deliberately does not recover from matcher panics (spec.md §7, kind 5).
type Matcher[G any, V comparable] interface {
	Match(base isoset.Iso[V], a, b G) iter.Seq[isoset.Iso[V]]
}

// Func adapts a plain function to [Matcher], mirroring the
// http.HandlerFunc idiom.
type Func[G any, V comparable] func(base isoset.Iso[V], a, b G) iter.Seq[isoset.Iso[V]]

// Match implements [Matcher].
func (f Func[G, V]) Match(base isoset.Iso[V], a, b G) iter.Seq[isoset.Iso[V]] {
	return f(base, a, b)
}

// None returns a [Matcher] whose Match always yields an empty sequence.
// It is useful as a test double and as the matcher for an index that
// intentionally never subsumes (e.g. exercising the flat reference path
// exclusively).
func None[G any, V comparable]() Matcher[G, V] {
	return Func[G, V](func(isoset.Iso[V], G, G) iter.Seq[isoset.Iso[V]] {
		return func(func(isoset.Iso[V]) bool) {}
	})
}
