package fixture

import "errors"

// ErrMalformedTriple describes a triple entry that is not a 3-element
// array of vertex tokens. Load and LoadSet do not return it: they decode
// each entry into a fixed 3-element array, so a shorter entry leaves its
// missing tokens empty and fails with ErrEmptyToken, and tokens past the
// third are dropped.
var ErrMalformedTriple = errors.New("fixture: triple must have exactly 3 tokens")

// ErrEmptyToken is returned when a vertex token is the empty string.
var ErrEmptyToken = errors.New("fixture: vertex token must not be empty")
