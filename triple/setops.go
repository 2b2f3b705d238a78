package triple

import "github.com/arborist-labs/subiso/isoset"

// Ops is the stateless [github.com/arborist-labs/subiso/graphalgebra.SetOps]
// implementation for [Graph]/[Vertex]. Its methods delegate to the
// package-level functions of the same name.
type Ops struct{}

// New implements graphalgebra.SetOps.
func (Ops) New() Graph { return New() }

// Union implements graphalgebra.SetOps.
func (Ops) Union(a, b Graph) Graph { return Union(a, b) }

// Difference implements graphalgebra.SetOps.
func (Ops) Difference(a, b Graph) Graph { return Difference(a, b) }

// Intersect implements graphalgebra.SetOps.
func (Ops) Intersect(a, b Graph) Graph { return Intersect(a, b) }

// Size implements graphalgebra.SetOps.
func (Ops) Size(g Graph) int { return g.Size() }

// IsEmpty implements graphalgebra.SetOps.
func (Ops) IsEmpty(g Graph) bool { return g.IsEmpty() }

// ApplyIso implements graphalgebra.SetOps.
func (Ops) ApplyIso(g Graph, mu isoset.Iso[Vertex]) Graph { return ApplyIso(g, mu) }

// TransformItems implements graphalgebra.SetOps.
func (Ops) TransformItems(g Graph, fn func(item any) (any, bool)) Graph {
	return TransformItems(g, fn)
}
