// Package solve implements the outer solver layer: damped Newton zeroing,
// Ridder's method, golden-section maximum-range search, and direct apex
// resolution (spec 4.9). Every solver repeatedly mutates a cloned
// shot.Props's BarrelElevationRad and re-integrates; none rebuild the drag
// curve or Mach table between iterations (spec 4.10).
package solve

import (
	"errors"
	"fmt"
)

// ErrBadDenominator is spec 7's BadDenominator: the Newton sensitivity
// denominator collapsed to (near) zero.
var ErrBadDenominator = errors.New("solve: singular sensitivity denominator")

// ErrNoZeroBracket is spec 7's bracket-failure mode for find_zero_angle:
// the two bracket endpoints do not straddle a root.
var ErrNoZeroBracket = errors.New("solve: no sign change across zero-finding bracket")

// ZeroFindingError is satisfied by every non-convergent zero-finding
// failure, so a caller can errors.As into the interface instead of a
// concrete type and still reach the retry context.
type ZeroFindingError interface {
	error
	LastElevationRad() float64
	Iterations() int
	LastError() float64
}

// NonConvergentError is spec 7's ZeroFindingError: zero-finding diverged,
// carrying the context needed to retry (last error magnitude, iteration
// count, last barrel elevation).
type NonConvergentError struct {
	Reason       string
	LastErrorFt  float64
	IterCount    int
	LastAngleRad float64
}

func (e *NonConvergentError) Error() string {
	return fmt.Sprintf("solve: zero finding did not converge (%s) after %d iterations: last error %.6g ft at elevation %.6g rad",
		e.Reason, e.IterCount, e.LastErrorFt, e.LastAngleRad)
}

// LastElevationRad returns the last barrel elevation the solver tried.
func (e *NonConvergentError) LastElevationRad() float64 { return e.LastAngleRad }

// Iterations returns the iteration count at the point of failure.
func (e *NonConvergentError) Iterations() int { return e.IterCount }

// LastError returns the last error magnitude the solver measured.
func (e *NonConvergentError) LastError() float64 { return e.LastErrorFt }

var _ ZeroFindingError = (*NonConvergentError)(nil)

// OutOfRangeError is spec 7's OutOfRange: the requested slant distance
// exceeds the shot's maximum range at its look angle.
type OutOfRangeError struct {
	RequestedFt float64
	MaxFt       float64
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("solve: requested slant range %.3g ft exceeds maximum range %.3g ft", e.RequestedFt, e.MaxFt)
}
