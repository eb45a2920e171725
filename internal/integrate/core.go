// Package integrate provides the Euler and RK4 fixed-step integrators over
// the exterior-ballistics point-mass ODE (spec 4.6). Both are single
// threaded, synchronous, and perform no I/O; neither ever suspends mid-step.
package integrate

import (
	"math"

	"github.com/ballistics-core/engine/internal/config"
	"github.com/ballistics-core/engine/internal/shot"
	"github.com/ballistics-core/engine/internal/trajectory"
	"github.com/ballistics-core/engine/internal/vecmath"
)

// minSamplesForPCHIP is spec 4.6's "always emit at least three samples so
// downstream PCHIP interpolation is well-defined". Early-termination
// conditions are not allowed to cut a trajectory shorter than this.
const minSamplesForPCHIP = 3

// Run integrates props forward from the muzzle until one of the
// termination conditions of spec 4.6 fires, or the trajectory passes
// rangeLimitFt with at least three samples recorded. rk4TimeStepS is only
// consulted by MethodRK4 and defaults to DEFAULT_TIME_STEP when <= 0.
// onSample, if non-nil, is invoked with every raw sample as it is produced
// — this is how the caller feeds a streaming filter (internal/filter)
// without waiting for the full sequence.
//
// Run never errors: a premature Reason is not a failure at this layer (spec
// 4.6's contract); the caller decides whether to surface it.
func Run(props *shot.Props, cfg config.Config, method Method, rangeLimitFt, rk4TimeStepS float64, onSample func(trajectory.BaseTrajSample)) (*trajectory.Seq, Reason) {
	seq := trajectory.NewSeq(int(rangeLimitFt/math.Max(props.CalcStepFt, 1)) + 8)

	if rk4TimeStepS <= 0 {
		rk4TimeStepS = config.DefaultRK4TimeStep
	}

	gravity := vecmath.Gravity(cfg.GravityFpsSq)
	calcStep := props.CalcStepFt * cfg.StepMultiplier

	pos := vecmath.Vec3{
		Y: -props.SightHeightFt * props.CantCos,
		Z: -props.SightHeightFt * props.CantSin,
	}
	vel := vecmath.Vec3{
		X: props.MuzzleVelocityFps * math.Cos(props.BarrelElevationRad) * math.Cos(props.BarrelAzimuthRad),
		Y: props.MuzzleVelocityFps * math.Sin(props.BarrelElevationRad),
		Z: props.MuzzleVelocityFps * math.Cos(props.BarrelElevationRad) * math.Sin(props.BarrelAzimuthRad),
	}
	t := 0.0

	emit := func(p, v vecmath.Vec3, time float64, mach float64) {
		sample := trajectory.BaseTrajSample{TimeS: time, Position: p, Velocity: v, Mach: mach}
		seq.Append(sample)
		if onSample != nil {
			onSample(sample)
		}
	}

	reason := ReasonNone
	stepCount := 0
	for {
		wind := props.Wind.VectorFor(pos.X)
		atmo := props.Atmo.At(props.Alt0Ft + pos.Y)
		emit(pos, vel, t, atmo.MachSpeedFps)
		stepCount++

		var newPos, newVel vecmath.Vec3
		var newT float64
		switch method {
		case MethodRK4:
			newPos, newVel, newT = rk4Step(pos, vel, t, rk4TimeStepS, props, wind, atmo, gravity)
		default:
			newPos, newVel, newT = eulerStep(pos, vel, t, calcStep, props, wind, atmo, gravity)
		}
		pos, vel, t = newPos, newVel, newT

		if stepCount >= minSamplesForPCHIP {
			if r := checkTermination(pos, vel, props, cfg, rangeLimitFt); r != ReasonNone {
				reason = r
				break
			}
		}
	}

	finalAtmo := props.Atmo.At(props.Alt0Ft + pos.Y)
	emit(pos, vel, t, finalAtmo.MachSpeedFps)

	return seq, reason
}

func checkTermination(pos, vel vecmath.Vec3, props *shot.Props, cfg config.Config, rangeLimitFt float64) Reason {
	switch {
	case vel.Magnitude() < cfg.MinimumVelocityFps:
		return ReasonMinVelocity
	case vel.Y <= 0 && pos.Y < cfg.MaximumDropFt:
		return ReasonMaxDrop
	case vel.Y <= 0 && props.Alt0Ft+pos.Y < cfg.MinimumAltitudeFt:
		return ReasonMinAltitude
	case pos.X > rangeLimitFt:
		return ReasonTargetRangeReached
	default:
		return ReasonNone
	}
}
