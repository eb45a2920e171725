package shot

import "math"

// SpinDriftFt implements the Litz spin-drift approximation (spec 4.5),
// applied as a windage correction rather than as a force. Identically zero
// whenever twist is zero, by the invariant in spec 3.
func (p *Props) SpinDriftFt(timeS float64) float64 {
	if p.TwistIn == 0 || p.StabilityCoef == 0 {
		return 0
	}
	sign := 1.0
	if p.TwistIn < 0 {
		sign = -1.0
	}
	return sign * 1.25 * (p.StabilityCoef + 1.2) * math.Pow(timeS, 1.83) / 12
}
