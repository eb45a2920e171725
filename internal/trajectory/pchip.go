package trajectory

import "math"

// pchipSlopes computes the three monotone-cubic-Hermite slopes for the
// three points (x0,y0), (x1,y1), (x2,y2) per spec 4.7: the middle slope is
// a harmonic-weighted combination of the adjacent secants when their signs
// agree (else zero); the endpoint slopes use the non-centered three-point
// formula, clamped to 3x the adjacent secant and zeroed when its sign
// disagrees with the adjacent secant.
func pchipSlopes(x0, y0, x1, y1, x2, y2 float64) (m0, m1, m2 float64) {
	h0 := x1 - x0
	h1 := x2 - x1
	d0 := (y1 - y0) / h0
	d1 := (y2 - y1) / h1

	//1.- Middle slope: weighted harmonic mean of the two secants, or zero
	// when they disagree in sign (a local extremum).
	if d0*d1 > 0 {
		w1 := 2*h1 + h0
		w2 := h1 + 2*h0
		m1 = (w1 + w2) / (w1/d0 + w2/d1)
	} else {
		m1 = 0
	}

	//2.- Endpoint slopes via the non-centered three-point formula, clamped.
	m0 = nonCenteredEndpointSlope(h0, h1, d0, d1)
	m2 = nonCenteredEndpointSlope(h1, h0, d1, d0)
	return m0, m1, m2
}

// nonCenteredEndpointSlope evaluates the three-point endpoint formula for
// the slope at the near end of a (h0,h1) span with secants (dNear,dFar),
// then clamps per spec 4.7.
func nonCenteredEndpointSlope(h0, h1, dNear, dFar float64) float64 {
	m := ((2*h0+h1)*dNear - h0*dFar) / (h0 + h1)
	if sign(m) != sign(dNear) {
		return 0
	}
	if math.Abs(m) > 3*math.Abs(dNear) {
		return 3 * dNear
	}
	return m
}

func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// hermiteEval evaluates the cubic Hermite segment between (xa,ya,ma) and
// (xb,yb,mb) at x.
func hermiteEval(xa, ya, ma, xb, yb, mb, x float64) float64 {
	h := xb - xa
	t := (x - xa) / h
	t2 := t * t
	t3 := t2 * t
	h00 := 2*t3 - 3*t2 + 1
	h10 := t3 - 2*t2 + t
	h01 := -2*t3 + 3*t2
	h11 := t3 - t2
	return h00*ya + h10*h*ma + h01*yb + h11*h*mb
}
