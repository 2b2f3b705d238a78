// Package subsumption implements the hierarchical subsumption index: a
// DAG of stored graphs rooted at an empty graph, where an edge from A to
// B records that G(A) embeds into G(B) together with the delta mapping
// and the content of B left over once that embedding is subtracted out.
//
// Put and Lookup share one traversal (traverse in index.go):
// Put walks down looking for the deepest node(s) the new graph is not
// yet subsumed by and attaches there; Lookup walks the same tree
// collecting every node the query is subsumed by, then expands each hit
// across its alt-key table. See the project's SPEC_FULL.md for the
// invariants (I1-I6), properties (P1-P8), and worked scenarios (S1-S6)
// this package is built against.
package subsumption
