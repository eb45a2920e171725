package solve

import "math"

// unboundedRangeFt stands in for "no range limit" when a solver needs the
// integrator to run until a physical termination condition fires rather
// than a caller-specified distance (find_max_range, find_apex).
const unboundedRangeFt = 1e7

// slantPlaneHeight is spec 4.9.1 step 2's h: the signed height of (x, y)
// above the slant line through the origin at look angle alpha.
func slantPlaneHeight(x, y, lookAngleRad float64) float64 {
	return y*math.Cos(lookAngleRad) - x*math.Sin(lookAngleRad)
}

// slantPlaneDistance projects (x, y) onto the slant line itself.
func slantPlaneDistance(x, y, lookAngleRad float64) float64 {
	return x*math.Cos(lookAngleRad) + y*math.Sin(lookAngleRad)
}
