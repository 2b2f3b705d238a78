package triple

import (
	"strings"

	"github.com/google/uuid"
)

// Kind distinguishes the three vertex roles spec.md's data model defines.
type Kind int

const (
	// Abstract vertices are renameable placeholders (e.g. query variables).
	Abstract Kind = iota
	// Blank vertices are locally fresh and renameable, like Abstract, but
	// are never written out by a caller — only minted via [NewBlank].
	Blank
	// Concrete vertices carry a fixed label and are never renamed.
	Concrete
)

// String returns a human-readable tag for k.
func (k Kind) String() string {
	switch k {
	case Abstract:
		return "abstract"
	case Blank:
		return "blank"
	case Concrete:
		return "concrete"
	default:
		return "unknown"
	}
}

// Vertex is the vertex type of the [Graph] binding.
//
// Vertex is comparable and is used directly as a map key throughout the
// index (as isoset.Iso[Vertex]'s domain/range). Two Abstract or Blank
// vertices with different labels are distinct vertices even though a
// [Compare] call treats all non-Concrete vertices as equivalent for
// ordering purposes — label identity still matters for map lookups and
// for the matcher's own bookkeeping.
type Vertex struct {
	kind  Kind
	label string
}

// NewAbstract returns an Abstract vertex named by label (e.g. "?x").
func NewAbstract(label string) Vertex {
	return Vertex{kind: Abstract, label: label}
}

// NewConcrete returns a Concrete vertex with the given fixed label.
func NewConcrete(label string) Vertex {
	return Vertex{kind: Concrete, label: label}
}

// NewBlank mints a fresh Blank vertex with a collision-free label.
func NewBlank() Vertex {
	return Vertex{kind: Blank, label: "_:" + uuid.NewString()}
}

// Kind reports the vertex's role.
func (v Vertex) Kind() Kind { return v.kind }

// Label returns the vertex's display label.
func (v Vertex) Label() string { return v.label }

// Renameable reports whether v may participate in an isomorphism mapping
// (Abstract or Blank, per spec.md §3).
func (v Vertex) Renameable() bool {
	return v.kind != Concrete
}

// String implements fmt.Stringer for diagnostic output.
func (v Vertex) String() string {
	switch v.kind {
	case Concrete:
		return v.label
	case Blank:
		return v.label
	default:
		var b strings.Builder
		if !strings.HasPrefix(v.label, "?") {
			b.WriteByte('?')
		}
		b.WriteString(v.label)
		return b.String()
	}
}

// Compare implements the vertex comparator contract spec.md §6 requires
// of a domain binding: two non-Concrete vertices (Abstract or Blank)
// always compare equal; two Concrete vertices compare by their label's
// natural order; a Concrete vertex always sorts after a non-Concrete one.
//
// This is a static total order for canonicalization; the default tag
// comparator ([github.com/arborist-labs/subiso/tagset.StringComparator])
// does not use it, ordering tag labels by collation instead. It does not
// decide whether a
// specific pair is a *valid* isomorphism binding — that is the
// [github.com/arborist-labs/subiso/isomatch.Matcher]'s job, which also
// consults the accumulated base iso.
func Compare(a, b Vertex) int {
	aConcrete := a.kind == Concrete
	bConcrete := b.kind == Concrete
	switch {
	case !aConcrete && !bConcrete:
		return 0
	case aConcrete && bConcrete:
		return strings.Compare(a.label, b.label)
	case aConcrete:
		return 1
	default:
		return -1
	}
}
