package trajectory

import "github.com/ballistics-core/engine/internal/vecmath"

// LinearInterpolate performs plain linear interpolation of every field
// between a and b, parameterized by key attaining target. Used by the
// streaming DataFilter (spec 4.8), which only ever sees two raw samples at
// a time and so cannot afford the three-point PCHIP fit Seq.Interpolate
// uses once the full dense trajectory is available.
func LinearInterpolate(a, b BaseTrajSample, key Key, target, lookAngleRad float64) BaseTrajSample {
	ka := value(a, key, lookAngleRad)
	kb := value(b, key, lookAngleRad)
	frac := 0.0
	if kb != ka {
		frac = (target - ka) / (kb - ka)
	}
	lerp := func(x, y float64) float64 { return x + frac*(y-x) }
	return BaseTrajSample{
		TimeS: lerp(a.TimeS, b.TimeS),
		Position: vecmath.Vec3{
			X: lerp(a.Position.X, b.Position.X),
			Y: lerp(a.Position.Y, b.Position.Y),
			Z: lerp(a.Position.Z, b.Position.Z),
		},
		Velocity: vecmath.Vec3{
			X: lerp(a.Velocity.X, b.Velocity.X),
			Y: lerp(a.Velocity.Y, b.Velocity.Y),
			Z: lerp(a.Velocity.Z, b.Velocity.Z),
		},
		Mach: lerp(a.Mach, b.Mach),
	}
}
