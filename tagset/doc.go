// Package tagset provides the tag-subset/superset index ([TagMap]) used
// both externally (callers filtering stored graphs by feature) and
// internally (every [github.com/arborist-labs/subiso/subsumption.Index]
// node indexes its outgoing edges by residual tags).
//
// Tags must be totally ordered; [Comparator] supplies that order. A tag
// set is represented as a sorted, duplicate-free slice rather than a Go
// map so it can be walked in comparator order while building or
// querying a [SetTrie].
package tagset
