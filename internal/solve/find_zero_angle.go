package solve

import (
	"math"

	"github.com/ballistics-core/engine/internal/config"
	"github.com/ballistics-core/engine/internal/integrate"
	"github.com/ballistics-core/engine/internal/shot"
	"github.com/ballistics-core/engine/internal/trajectory"
)

// FindZeroAngle finds a zeroing elevation via Ridder's method (spec 4.9.2),
// used when Newton fails or when a lofted (high) solution is requested.
func FindZeroAngle(props *shot.Props, cfg config.Config, slantRangeFt float64, lofted bool) (float64, error) {
	lookAngle := props.LookAngleRad
	tx := slantRangeFt * math.Cos(lookAngle)
	ty := slantRangeFt * math.Sin(lookAngle)

	maxRangeFt, angleAtMax, err := FindMaxRange(props, cfg, 0, 89.9*math.Pi/180)
	if err != nil {
		return 0, err
	}
	if slantRangeFt > maxRangeFt {
		return 0, &OutOfRangeError{RequestedFt: slantRangeFt, MaxFt: maxRangeFt}
	}
	if math.Abs(slantRangeFt-maxRangeFt) <= cfg.ZeroFindingAccuracyFt {
		return angleAtMax, nil
	}

	var loRad, hiRad float64
	if lofted {
		loRad, hiRad = angleAtMax, 89.9*math.Pi/180
	} else {
		sightAdjust := math.Atan2(props.SightHeightFt, slantRangeFt)
		loRad, hiRad = lookAngle-sightAdjust, angleAtMax
	}

	iterCfg := cfg
	iterCfg.MinimumVelocityFps = 0
	rangeLimit := math.Max(math.Abs(tx)*1.5, math.Abs(tx)+1000)

	f := func(angleRad float64) float64 {
		working := props.Clone()
		working.BarrelElevationRad = angleRad
		seq, _ := integrate.Run(working, iterCfg, integrate.MethodEuler, rangeLimit, 0, nil)

		sample, err := seq.Interpolate(trajectory.KeyPosX, tx, lookAngle)
		if err != nil {
			last := seq.Last()
			return (last.Position.Y - ty) - math.Abs(last.Position.X-tx)
		}
		return (sample.Position.Y - ty) - math.Abs(sample.Position.X-tx)
	}

	a, b := loRad, hiRad
	fa, fb := f(a), f(b)
	if fa == 0 {
		return a, nil
	}
	if fb == 0 {
		return b, nil
	}
	if (fa > 0) == (fb > 0) {
		return 0, ErrNoZeroBracket
	}

	var lastN float64
	for iter := 0; iter < cfg.MaxIterations; iter++ {
		m := (a + b) / 2
		fm := f(m)
		s := math.Sqrt(fm*fm - fa*fb)
		if s == 0 {
			return 0, &NonConvergentError{Reason: "ridder_singular", IterCount: iter, LastAngleRad: m}
		}
		sign := 1.0
		if fa-fb < 0 {
			sign = -1.0
		}
		n := m + (m-a)*sign*fm/s
		fn := f(n)
		lastN = n

		switch {
		case fm*fn < 0:
			a, fa = m, fm
			b, fb = n, fn
		case fa*fn < 0:
			b, fb = n, fn
		case fb*fn < 0:
			a, fa = n, fn
		default:
			return 0, &NonConvergentError{Reason: "ridder_bracket_collapsed", IterCount: iter, LastAngleRad: n}
		}

		if math.Abs(n-m) < cfg.ZeroFindingAccuracyFt || math.Abs(b-a) < cfg.ZeroFindingAccuracyFt {
			return n, nil
		}
	}

	return 0, &NonConvergentError{Reason: "max_iterations", IterCount: cfg.MaxIterations, LastAngleRad: lastN}
}
