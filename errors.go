package ballistics

import "errors"

// ErrInvalidInput is spec 7's InputError: a malformed shot descriptor or
// config (drag table too short, non-positive step, and similar).
var ErrInvalidInput = errors.New("ballistics: invalid input")
