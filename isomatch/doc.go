// Package isomatch declares the graph-isomorphism matcher contract
// ([Matcher]) the subsumption index treats as a pluggable oracle, plus
// small adapters for building one from a plain function.
//
// The index never assumes a particular matching algorithm; spec.md §9
// calls for "a tagged variant... not an inheritance hierarchy", captured
// here as [Kind] alongside the single-method [Matcher] interface.
package isomatch
