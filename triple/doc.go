// Package triple provides a concrete (G, V, T) binding for the
// subsumption index: a small RDF-triple-shaped graph, playing the same
// "jena-like domain binding" role spec.md §6 describes.
//
// A [Graph] is an immutable set of [Triple] items over [Vertex]
// vertices. [Vertex] carries the abstract/blank/concrete [Kind]
// distinction spec.md's data model requires, and [Compare] follows §6's
// comparator contract: two abstract vertices compare equal, two concrete
// vertices compare by their label, and abstract/concrete never compare
// equal. Go equality (==) on Vertex values still distinguishes abstract
// vertices by label.
package triple
