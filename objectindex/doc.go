// Package objectindex adapts subsumption.Index to store and retrieve
// arbitrary objects instead of raw graphs: construction takes an
// objectToGraph function, and every operation delegates to a wrapped
// subsumption.Index after computing (or, for Lookup, accepting) the
// graph side. It is a thin wrapper whose only state beyond delegation is
// a key-to-object map, kept so Get can return the original object.
package objectindex
