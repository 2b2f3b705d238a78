package isoset

import "maps"

// Iso is a partial injective mapping from vertex names to vertex names.
//
// Identity pairs (k == v) are conventionally removed by [Iso.Delta]; a
// raw Iso as threaded through the traversal may still contain them.
type Iso[V comparable] map[V]V

// New returns an empty Iso.
func New[V comparable]() Iso[V] {
	return make(Iso[V])
}

// Clone returns a shallow copy of m. A nil receiver clones to an empty,
// non-nil Iso.
func (m Iso[V]) Clone() Iso[V] {
	out := make(Iso[V], len(m))
	maps.Copy(out, m)
	return out
}

// Delta returns a copy of m with identity pairs (k == v) removed.
func (m Iso[V]) Delta() Iso[V] {
	out := make(Iso[V], len(m))
	for k, v := range m {
		if k != v {
			out[k] = v
		}
	}
	return out
}

// Extend mutates m in place, adding every pair of delta. It returns an
// undo function that restores m to its pre-call state when invoked.
//
// Extend is a LIFO push/pop primitive (spec.md §5): callers must call
// the returned undo before the enclosing recursive call returns, and
// must not interleave two live Extend calls on the same map out of order.
//
// Extend panics if delta conflicts with an existing pair in m (same key,
// different value); callers are expected to have checked [Compatible]
// first, so a conflict here indicates a programmer error, not a
// recoverable condition.
func (m Iso[V]) Extend(delta Iso[V]) (undo func()) {
	type priorPair struct {
		val     V
		existed bool
	}
	prior := make(map[V]priorPair, len(delta))
	for k, v := range delta {
		if existing, ok := m[k]; ok {
			if existing != v {
				panic("isoset: Extend called with a conflicting pair; caller must check Compatible first")
			}
			prior[k] = priorPair{val: existing, existed: true}
			continue
		}
		prior[k] = priorPair{existed: false}
		m[k] = v
	}
	return func() {
		for k, p := range prior {
			if p.existed {
				m[k] = p.val
			} else {
				delete(m, k)
			}
		}
	}
}

// Compatible reports whether a and b agree on every key present in both.
func Compatible[V comparable](a, b Iso[V]) bool {
	small, large := a, b
	if len(large) < len(small) {
		small, large = large, small
	}
	for k, v := range small {
		if lv, ok := large[k]; ok && lv != v {
			return false
		}
	}
	return true
}

// MapDomainVia computes { via(x)⊍x → y | (x,y) ∈ src }, where via(x)⊍x
// means via(x) when defined, else x.
//
// MapDomainVia returns (nil, false) if two distinct keys of src map
// to the same via-translated key (a domain collision). This is a
// legitimate, recoverable outcome per spec.md §4.4.5 and §7: callers
// must skip the candidate edge rather than treat it as an error.
func MapDomainVia[V comparable](src, via Iso[V]) (Iso[V], bool) {
	out := make(Iso[V], len(src))
	for x, y := range src {
		key := x
		if translated, ok := via[x]; ok {
			key = translated
		}
		if existing, ok := out[key]; ok && existing != y {
			return nil, false
		}
		out[key] = y
	}
	return out, true
}

// MapRangeVia computes { x → via(y)⊍y | (x,y) ∈ src }, the symmetric
// counterpart of [MapDomainVia] applied to the range of src.
func MapRangeVia[V comparable](src, via Iso[V]) (Iso[V], bool) {
	out := make(Iso[V], len(src))
	seen := make(map[V]V, len(src))
	for x, y := range src {
		val := y
		if translated, ok := via[y]; ok {
			val = translated
		}
		if existingX, ok := seen[val]; ok && existingX != x {
			return nil, false
		}
		seen[val] = x
		out[x] = val
	}
	return out, true
}

// Invert returns the inverse mapping of m. Invert panics if m is not
// injective (two keys sharing a value); a well-formed Iso is always
// injective by construction, so this indicates an invariant breach.
func (m Iso[V]) Invert() Iso[V] {
	out := make(Iso[V], len(m))
	for k, v := range m {
		if _, ok := out[v]; ok {
			panic("isoset: Invert called on a non-injective mapping")
		}
		out[v] = k
	}
	return out
}
