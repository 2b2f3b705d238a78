// Package isoset provides the isomorphism-mapping primitives shared by the
// subsumption index, the flat reference index, and the graph-isomorphism
// matcher interface.
//
// An [Iso] is a partial injective mapping from vertex names to vertex
// names. The core index threads an Iso through a recursive traversal,
// passing each level a freshly computed mapping rather than mutating a
// shared one; this package supplies the composition helpers
// ([MapDomainVia], [MapRangeVia]) and the compatibility check
// ([Compatible]) used there and while rewiring edges, plus an in-place
// push/pop primitive ([Iso.Extend]) that the core index does not use.
package isoset
