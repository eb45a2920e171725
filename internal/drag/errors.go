package drag

import "errors"

// ErrTableTooShort is returned when a drag table has fewer than two entries.
var ErrTableTooShort = errors.New("drag table must have at least two entries")

// ErrNonMonotoneMach is returned when the Mach column is not strictly increasing.
var ErrNonMonotoneMach = errors.New("drag table mach column must be strictly increasing")
