package solve

import (
	"math"

	"github.com/ballistics-core/engine/internal/config"
	"github.com/ballistics-core/engine/internal/integrate"
	"github.com/ballistics-core/engine/internal/shot"
)

// goldenRatio is the golden-section search's contraction factor.
const goldenRatio = 0.6180339887498949

// FindMaxRange finds the elevation within [lowRad, highRad] that maximizes
// slant range, by golden-section search (spec 4.9.3). Returns the maximum
// slant range (ft) and the elevation (rad) that attains it.
func FindMaxRange(props *shot.Props, cfg config.Config, lowRad, highRad float64) (float64, float64, error) {
	iterCfg := cfg
	iterCfg.MaximumDropFt = 0
	iterCfg.MinimumVelocityFps = 0

	evalRange := func(angleRad float64) float64 {
		return rangeAtElevation(props, iterCfg, angleRad)
	}

	a, b := lowRad, highRad
	c := b - goldenRatio*(b-a)
	d := a + goldenRatio*(b-a)
	fc := evalRange(c)
	fd := evalRange(d)

	const angleTolRad = 1e-7
	for iter := 0; iter < cfg.MaxIterations && math.Abs(b-a) > angleTolRad; iter++ {
		if fc > fd {
			b, d, fd = d, c, fc
			c = b - goldenRatio*(b-a)
			fc = evalRange(c)
		} else {
			a, c, fc = c, d, fd
			d = a + goldenRatio*(b-a)
			fd = evalRange(d)
		}
	}

	bestAngle := (a + b) / 2
	bestRange := evalRange(bestAngle)
	return bestRange, bestAngle, nil
}

// rangeAtElevation integrates at the given elevation with the range limit
// removed, then scans the trajectory backwards for the first crossing of
// the look line (spec 4.9.3), returning its slant distance.
func rangeAtElevation(props *shot.Props, iterCfg config.Config, angleRad float64) float64 {
	working := props.Clone()
	working.BarrelElevationRad = angleRad

	seq, _ := integrate.Run(working, iterCfg, integrate.MethodEuler, unboundedRangeFt, 0, nil)
	lookAngle := props.LookAngleRad

	for i := seq.Len() - 1; i > 0; i-- {
		cur := seq.At(i)
		prev := seq.At(i - 1)
		hPrev := slantPlaneHeight(prev.Position.X, prev.Position.Y, lookAngle)
		hCur := slantPlaneHeight(cur.Position.X, cur.Position.Y, lookAngle)
		if hPrev > 0 && hCur <= 0 {
			frac := hPrev / (hPrev - hCur)
			x := prev.Position.X + frac*(cur.Position.X-prev.Position.X)
			y := prev.Position.Y + frac*(cur.Position.Y-prev.Position.Y)
			return slantPlaneDistance(x, y, lookAngle)
		}
	}

	last := seq.Last()
	return slantPlaneDistance(last.Position.X, last.Position.Y, lookAngle)
}
