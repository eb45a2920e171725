package integrate

import (
	"github.com/ballistics-core/engine/internal/atmosphere"
	"github.com/ballistics-core/engine/internal/drag"
	"github.com/ballistics-core/engine/internal/shot"
	"github.com/ballistics-core/engine/internal/vecmath"
)

// rk4Step advances one fixed-step RK4 step (spec 4.6). km is evaluated once
// per step from the current state, not recomputed per stage.
func rk4Step(pos, vel vecmath.Vec3, t, dt float64, props *shot.Props, wind vecmath.Vec3, atmo atmosphere.Reading, gravity vecmath.Vec3) (newPos, newVel vecmath.Vec3, newT float64) {
	vRel := vel.Sub(wind)
	sRel := vRel.Magnitude()
	km := drag.AccelCoefficient(atmo.DensityRatio, props.Curve.CD(sRel/atmo.MachSpeedFps), props.BC)

	derivative := func(u vecmath.Vec3) vecmath.Vec3 {
		return gravity.Sub(u.Scale(km * u.Magnitude()))
	}

	k1 := derivative(vRel)
	u2 := vRel.Add(k1.Scale(0.5 * dt))
	k2 := derivative(u2)
	u3 := vRel.Add(k2.Scale(0.5 * dt))
	k3 := derivative(u3)
	u4 := vRel.Add(k3.Scale(dt))
	k4 := derivative(u4)

	p1 := vel
	p2 := vel.Add(k1.Scale(0.5 * dt))
	p3 := vel.Add(k2.Scale(0.5 * dt))
	p4 := vel.Add(k3.Scale(dt))

	velSum := k1.Add(k2.Scale(2)).Add(k3.Scale(2)).Add(k4)
	posSum := p1.Add(p2.Scale(2)).Add(p3.Scale(2)).Add(p4)

	newVel = vel.Add(velSum.Scale(dt / 6))
	newPos = pos.Add(posSum.Scale(dt / 6))
	newT = t + dt
	return
}
