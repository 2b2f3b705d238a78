// Package subiso provides a hierarchical subsumption index over
// (key → graph) entries: an in-memory structure that stores graphs as
// a DAG rooted at an empty graph, where an edge from A to B records
// that A's graph embeds into B's, and answers lookups by walking that
// DAG instead of scanning every stored entry.
//
// # Architecture Overview
//
// The module is organized into tiers with strict dependency ordering:
//
//	Foundation tier (no internal dependencies):
//	  - graphalgebra: the SetOps[G, V] contract a graph type must satisfy
//	  - isoset: isomorphism-mapping utilities (Iso[V], Compatible, Delta)
//	  - isomatch: the Matcher[G, V] contract a subgraph matcher satisfies
//	  - tagset: the tag trie used for subset/superset prefiltering
//
//	Core tier:
//	  - subsumption: the hierarchical index itself
//	  - flatindex: a linear-scan reference index used to cross-check subsumption
//	  - objectindex: a thin object-to-graph wrapper over subsumption.Index
//
//	Domain binding tier (a concrete G/V/T so the core runs end to end):
//	  - triple: an RDF-like Vertex/Triple/Graph binding
//	  - triple/matcher: a backtracking subgraph matcher for triple.Graph
//
//	Adapter tier:
//	  - adapter/fixture: loads example/test graphs from commented-JSON files
//
// # Entry Points
//
// Building an index over the triple binding:
//
//	import (
//	    "github.com/arborist-labs/subiso/subsumption"
//	    "github.com/arborist-labs/subiso/tagset"
//	    "github.com/arborist-labs/subiso/triple"
//	    "github.com/arborist-labs/subiso/triple/matcher"
//	)
//
//	idx := subsumption.New[string, triple.Graph, triple.Vertex, string](
//	    triple.Ops{}, matcher.New(), triple.ExtractTags, tagset.StringComparator(),
//	)
//	if err := idx.Put("g1", g1); err != nil {
//	    // key already bound to a structurally different graph
//	}
//	results := idx.Lookup(query, false, nil)
//	// results maps every stored key the query subsumes to its witnessing
//	// isomorphisms (stored-graph vertex names -> query vertex names)
//
// # Subpackages
//
// See the individual package documentation for detailed usage:
//
//   - [github.com/arborist-labs/subiso/graphalgebra]: the graph-type contract
//   - [github.com/arborist-labs/subiso/isoset]: isomorphism-mapping utilities
//   - [github.com/arborist-labs/subiso/isomatch]: the matcher contract
//   - [github.com/arborist-labs/subiso/tagset]: tag-set trie
//   - [github.com/arborist-labs/subiso/subsumption]: the hierarchical index
//   - [github.com/arborist-labs/subiso/flatindex]: linear-scan reference index
//   - [github.com/arborist-labs/subiso/objectindex]: object-to-graph wrapper
//   - [github.com/arborist-labs/subiso/triple]: RDF-like domain binding
//   - [github.com/arborist-labs/subiso/triple/matcher]: backtracking matcher
//   - [github.com/arborist-labs/subiso/adapter/fixture]: fixture file loader
package subiso
