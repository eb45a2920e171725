package integrate

import (
	"math"

	"github.com/ballistics-core/engine/internal/atmosphere"
	"github.com/ballistics-core/engine/internal/drag"
	"github.com/ballistics-core/engine/internal/shot"
	"github.com/ballistics-core/engine/internal/vecmath"
)

// eulerStep advances one Euler step (spec 4.6). dt is derived from calcStep
// and the current ground speed, not fixed.
func eulerStep(pos, vel vecmath.Vec3, t, calcStep float64, props *shot.Props, wind vecmath.Vec3, atmo atmosphere.Reading, gravity vecmath.Vec3) (newPos, newVel vecmath.Vec3, newT float64) {
	vRel := vel.Sub(wind)
	sRel := vRel.Magnitude()
	dt := calcStep / math.Max(1, vel.Magnitude())

	km := drag.AccelCoefficient(atmo.DensityRatio, props.Curve.CD(sRel/atmo.MachSpeedFps), props.BC)
	accel := vRel.Scale(-km * sRel).Add(gravity)

	newVel = vel.Add(accel.Scale(dt))
	newPos = pos.Add(newVel.Scale(dt))
	newT = t + dt
	return
}
