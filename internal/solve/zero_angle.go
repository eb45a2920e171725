package solve

import (
	"math"

	"github.com/ballistics-core/engine/internal/config"
	"github.com/ballistics-core/engine/internal/integrate"
	"github.com/ballistics-core/engine/internal/shot"
	"github.com/ballistics-core/engine/internal/trajectory"
)

// ZeroAngle finds the barrel elevation that puts the trajectory on the
// slant line at slantRangeFt, by damped Newton iteration (spec 4.9.1).
func ZeroAngle(props *shot.Props, cfg config.Config, slantRangeFt float64) (float64, error) {
	lookAngle := props.LookAngleRad

	//1.- Degenerate short-circuits: a target too close to matter is zeroed
	// at the geometric (line-of-sight) angle without iterating at all.
	if math.Abs(slantRangeFt) < 1e-6 {
		return lookAngle, nil
	}
	nearThreshold := 2 * math.Max(math.Abs(props.SightHeightFt), cfg.StepMultiplier)
	if math.Abs(slantRangeFt) < nearThreshold {
		return lookAngle, nil
	}

	tx := slantRangeFt * math.Cos(lookAngle)

	working := props.Clone()
	working.BarrelElevationRad = lookAngle

	//2.- Carried verbatim per the source's unexplained nudge (spec 9, Open
	// Questions): a tiny first distance at zero elevation and a look angle
	// below the near-vertical threshold gets a small kick before iterating,
	// rather than iterating from exactly zero.
	if working.BarrelElevationRad == 0 && math.Abs(slantRangeFt) < 1.0 && math.Abs(lookAngle) < config.ApexIsMaxRangeRadians {
		working.BarrelElevationRad = 0.01
	}

	//3.- Widen the drop/altitude bounds for the duration of this solve so a
	// first guess that undershoots can still be seen reaching tx; this is
	// local to the cloned working config and never touches the caller's.
	iterCfg := cfg
	iterCfg.MaximumDropFt = -math.MaxFloat64 / 4
	iterCfg.MinimumAltitudeFt = -math.MaxFloat64 / 4

	rangeLimit := math.Max(math.Abs(tx)*1.5, math.Abs(tx)+1000)

	dampingFactor := 1.0
	lastAbsH := math.Inf(1)
	lastAbsRho := math.Inf(1)
	prevElevation := working.BarrelElevationRad

	for iter := 0; iter < cfg.MaxIterations; iter++ {
		seq, _ := integrate.Run(working, iterCfg, integrate.MethodEuler, rangeLimit, 0, nil)

		sample, err := seq.Interpolate(trajectory.KeyPosX, tx, lookAngle)
		if err != nil {
			return 0, &NonConvergentError{
				Reason:           "trajectory_did_not_reach_target",
				LastErrorFt:      lastAbsH,
				IterCount:    iter,
				LastAngleRad: working.BarrelElevationRad,
			}
		}

		h := slantPlaneHeight(sample.Position.X, sample.Position.Y, lookAngle)
		rho := slantPlaneDistance(sample.Position.X, sample.Position.Y, lookAngle) - slantRangeFt
		absH, absRho := math.Abs(h), math.Abs(rho)

		if absH <= cfg.ZeroFindingAccuracyFt && absRho <= config.AllowedZeroErrorFeet {
			return working.BarrelElevationRad, nil
		}

		if iter > 0 {
			if absRho > config.AllowedZeroErrorFeet && absRho >= lastAbsRho {
				return 0, &NonConvergentError{
					Reason:           "range_non_convergent",
					LastErrorFt:      absRho,
					IterCount:    iter,
					LastAngleRad: working.BarrelElevationRad,
				}
			}
			if absH >= lastAbsH {
				dampingFactor *= 0.7
				if dampingFactor < 0.3 {
					return 0, &NonConvergentError{
						Reason:           "error_non_convergent",
						LastErrorFt:      absH,
						IterCount:    iter,
						LastAngleRad: working.BarrelElevationRad,
					}
				}
				working.BarrelElevationRad = prevElevation
			}
		}

		trajAngle := math.Atan2(sample.Velocity.Y, sample.Velocity.X)
		s := math.Tan(working.BarrelElevationRad-lookAngle) * math.Tan(trajAngle-lookAngle)
		slantDistance := slantPlaneDistance(sample.Position.X, sample.Position.Y, lookAngle)
		d := slantDistance * (1 + s)
		if s < -0.5 {
			d = slantDistance
		}
		if math.Abs(d) < 1e-9 {
			return 0, ErrBadDenominator
		}

		delta := -h / d * dampingFactor
		prevElevation = working.BarrelElevationRad
		working.BarrelElevationRad += delta
		lastAbsH, lastAbsRho = absH, absRho
	}

	return 0, &NonConvergentError{
		Reason:           "max_iterations",
		LastErrorFt:      lastAbsH,
		IterCount:    cfg.MaxIterations,
		LastAngleRad: working.BarrelElevationRad,
	}
}
