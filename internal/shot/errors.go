package shot

import "errors"

// ErrInvalidDescriptor covers malformed shot input: non-positive calc step,
// non-positive muzzle velocity, or any field spec 3 declares invariant.
var ErrInvalidDescriptor = errors.New("invalid shot descriptor")

// ErrComputationError is the taxonomy entry for a degenerate numeric
// condition while computing the Miller stability coefficient (spec 4.4):
// it fires only when a division by zero would otherwise arise.
var ErrComputationError = errors.New("computation error")
