// Package graphalgebra declares the set-algebra contract ([SetOps]) the
// subsumption index, the flat reference index, and the object wrapper
// require of any concrete graph type.
//
// No implementation lives in this package: the concrete graph
// representation is a domain binding's responsibility. See the sibling
// [github.com/arborist-labs/subiso/triple] package for one such binding.
package graphalgebra
