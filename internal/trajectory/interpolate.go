package trajectory

import (
	"fmt"

	"github.com/ballistics-core/engine/internal/vecmath"
)

// Interpolate resolves the sample whose Key attains target, via PCHIP
// (monotone cubic Hermite) over the bracketing triple (spec 4.7).
// lookAngleRad is only consulted when key is KeySlantHeight.
func (s *Seq) Interpolate(key Key, target, lookAngleRad float64) (BaseTrajSample, error) {
	n := s.Len()
	center, err := s.resolveCenter(key, target, lookAngleRad)
	if err != nil {
		return BaseTrajSample{}, err
	}
	//1.- Clamp so center-1 and center+1 are both valid indices.
	if center < 1 {
		center = 1
	}
	if center > n-2 {
		center = n - 2
	}

	keyAt := func(i int) float64 { return value(s.At(i), key, lookAngleRad) }
	x0, x1, x2 := keyAt(center-1), keyAt(center), keyAt(center+1)
	if x0 == x1 || x1 == x2 || x0 == x2 {
		return BaseTrajSample{}, ErrDuplicateKey
	}

	field := func(get func(BaseTrajSample) float64) float64 {
		y0, y1, y2 := get(s.At(center-1)), get(s.At(center)), get(s.At(center+1))
		m0, m1, m2 := pchipSlopes(x0, y0, x1, y1, x2, y2)
		return evalBracket(x0, y0, m0, x1, y1, m1, x2, y2, m2, target)
	}

	return BaseTrajSample{
		TimeS: field(func(b BaseTrajSample) float64 { return b.TimeS }),
		Position: vecmath.Vec3{
			X: field(func(b BaseTrajSample) float64 { return b.Position.X }),
			Y: field(func(b BaseTrajSample) float64 { return b.Position.Y }),
			Z: field(func(b BaseTrajSample) float64 { return b.Position.Z }),
		},
		Velocity: vecmath.Vec3{
			X: field(func(b BaseTrajSample) float64 { return b.Velocity.X }),
			Y: field(func(b BaseTrajSample) float64 { return b.Velocity.Y }),
			Z: field(func(b BaseTrajSample) float64 { return b.Velocity.Z }),
		},
		Mach: field(func(b BaseTrajSample) float64 { return b.Mach }),
	}, nil
}

// evalBracket picks whichever of [x0,x1] or [x1,x2] straddles target and
// evaluates the Hermite cubic there.
func evalBracket(x0, y0, m0, x1, y1, m1, x2, y2, m2, target float64) float64 {
	if between(target, x0, x1) {
		return hermiteEval(x0, y0, m0, x1, y1, m1, target)
	}
	return hermiteEval(x1, y1, m1, x2, y2, m2, target)
}

func between(v, a, b float64) bool {
	if a <= b {
		return v >= a && v <= b
	}
	return v <= a && v >= b
}

// resolveCenter finds the index bracketing target in the given key's
// series. Slant-height is handled with a backward linear scan because the
// trajectory may be non-monotone in that key (spec 4.7); every other key is
// resolved with bisection assuming the series is monotone (time and
// downrange position are monotone by construction; Mach and vertical
// velocity change sign at most once over a ballistic arc).
func (s *Seq) resolveCenter(key Key, target, lookAngleRad float64) (int, error) {
	n := s.Len()
	if n < 3 {
		return 0, fmt.Errorf("%w: fewer than 3 samples", ErrUnreachable)
	}

	if key == KeySlantHeight {
		for i := n - 1; i > 0; i-- {
			a := value(s.At(i-1), key, lookAngleRad)
			b := value(s.At(i), key, lookAngleRad)
			if between(target, a, b) {
				return i, nil
			}
		}
		return 0, ErrUnreachable
	}

	first := value(s.At(0), key, lookAngleRad)
	last := value(s.At(n-1), key, lookAngleRad)
	increasing := last >= first
	if increasing {
		if target < first || target > last {
			return 0, ErrUnreachable
		}
	} else {
		if target > first || target < last {
			return 0, ErrUnreachable
		}
	}

	lo, hi := 0, n-1
	for hi-lo > 1 {
		mid := (lo + hi) / 2
		v := value(s.At(mid), key, lookAngleRad)
		if (increasing && v < target) || (!increasing && v > target) {
			lo = mid
		} else {
			hi = mid
		}
	}
	return hi, nil
}
