package trajectory

import "errors"

// ErrDuplicateKey fires when the PCHIP triple's key values coincide, making
// the Hermite construction singular.
var ErrDuplicateKey = errors.New("duplicate interpolation key")

// ErrUnreachable fires when the trajectory never attains the target key
// value, so no bracketing triple exists.
var ErrUnreachable = errors.New("interpolation target unreachable")
