package drag

import "fmt"

// K is the composite drag constant (standard air density, cross-section
// constant, pounds-to-feet unit conversion) used by the integrators to turn
// a drag coefficient into an acceleration. Bit-exact, part of the contract.
const K = 2.08551e-04

// Point is one (Mach, Cd) entry of an in-memory drag table. Not a wire
// format — drag tables are built once per shot and consumed in memory.
type Point struct {
	Mach float64
	CD   float64
}

// segment holds the quadratic (or, at the ends, linear with A=0)
// coefficients for evaluating Cd(m) = C + m*(B + A*m) on its span.
type segment struct {
	A, B, C float64
}

// Curve is a piecewise-quadratic spline over Mach -> Cd with binary-search
// lookup. Built once per shot; immutable thereafter.
type Curve struct {
	mach     []float64
	segments []segment
}

// New builds a Curve from a drag table. The table must have at least two
// points and strictly increasing Mach values.
func New(table []Point) (*Curve, error) {
	if len(table) < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrTableTooShort, len(table))
	}
	mach := make([]float64, len(table))
	for i, p := range table {
		mach[i] = p.Mach
		if i > 0 && mach[i] <= mach[i-1] {
			return nil, fmt.Errorf("%w: mach[%d]=%v <= mach[%d]=%v", ErrNonMonotoneMach, i, mach[i], i-1, mach[i-1])
		}
	}

	segments := make([]segment, len(table))

	//1.- Interior points fit a quadratic through the three adjacent samples.
	for i := 1; i < len(table)-1; i++ {
		x1, x2, x3 := table[i-1].Mach, table[i].Mach, table[i+1].Mach
		y1, y2, y3 := table[i-1].CD, table[i].CD, table[i+1].CD
		a := ((y3-y1)*(x2-x1) - (y2-y1)*(x3-x1)) / ((x3*x3-x1*x1)*(x2-x1) - (x2*x2-x1*x1)*(x3-x1))
		b := (y2 - y1 - a*(x2*x2-x1*x1)) / (x2 - x1)
		c := y1 - a*x1*x1 - b*x1
		segments[i] = segment{A: a, B: b, C: c}
	}

	//2.- The first and last segments degrade to a linear fit (A=0).
	first := len(table) - 1
	b0 := (table[1].CD - table[0].CD) / (table[1].Mach - table[0].Mach)
	segments[0] = segment{A: 0, B: b0, C: table[0].CD - b0*table[0].Mach}
	bLast := (table[first].CD - table[first-1].CD) / (table[first].Mach - table[first-1].Mach)
	segments[first] = segment{A: 0, B: bLast, C: table[first].CD - bLast*table[first].Mach}

	return &Curve{mach: mach, segments: segments}, nil
}

// CD evaluates the drag coefficient at the given Mach number via binary
// search on the knot array followed by a segment evaluation. Mach values
// outside the table range are clamped to the nearest endpoint segment.
func (c *Curve) CD(mach float64) float64 {
	seg := c.segments[c.nearestIndex(mach)]
	return seg.C + mach*(seg.B+seg.A*mach)
}

// nearestIndex performs the binary search described in spec 4.1: bisect on
// the Mach knot array, then choose whichever of the two bracketing knots is
// closer to the query value.
func (c *Curve) nearestIndex(mach float64) int {
	lo, hi := 0, len(c.segments)-1
	for hi-lo > 1 {
		mid := (lo + hi) / 2
		if c.mach[mid] < mach {
			lo = mid
		} else {
			hi = mid
		}
	}
	if c.mach[hi]-mach > mach-c.mach[lo] {
		return lo
	}
	return hi
}

// Knots returns the Mach knot array backing this curve. Callers must not
// mutate the returned slice.
func (c *Curve) Knots() []float64 {
	return c.mach
}

// AccelCoefficient combines an atmospheric density ratio, an evaluated drag
// coefficient, and a ballistic coefficient into the scalar multiplier that
// the integrators scale by relative velocity (Euler) or the relative
// velocity vector (RK4) to obtain a drag acceleration. See spec 4.1.
func AccelCoefficient(densityRatio, cd, bc float64) float64 {
	return densityRatio * cd * K / bc
}
