package subsumption

import (
	"errors"
	"fmt"
)

// Error sentinels for subsumption failures, all wrapping ErrInternal.
// ErrSelfEdge and ErrInvariantBreach indicate programmer error or
// invariant breach; ErrKeyConflict is the one sentinel returned to
// callers, by Put. Other data conditions (a failed match, a missing key,
// a tag-set mismatch) are reported through ordinary return values, not
// errors.
var (
	// ErrInternal is the base error for internal subsumption failures.
	ErrInternal = errors.New("internal subsumption failure")

	// ErrKeyConflict indicates Put was called with a key already bound
	// to a different graph.
	ErrKeyConflict = fmt.Errorf("%w: key already bound to a different graph", ErrInternal)

	// ErrSelfEdge indicates an attempted edge from a node to itself,
	// which would violate the DAG's acyclicity invariant.
	ErrSelfEdge = fmt.Errorf("%w: self-edge construction", ErrInternal)

	// ErrInvariantBreach indicates an internal consistency check failed.
	ErrInvariantBreach = fmt.Errorf("%w: invariant breach", ErrInternal)
)

// assertInvariant panics with msg wrapped around ErrInvariantBreach when
// cond is false. It guards conditions that indicate a bug in this
// package rather than a caller mistake or ordinary data condition.
func assertInvariant(cond bool, msg string) {
	if !cond {
		panic(fmt.Errorf("%w: %s", ErrInvariantBreach, msg))
	}
}
