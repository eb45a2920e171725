// Package trajectory holds the dense ODE output buffer (spec 3's
// TrajectorySeq), its PCHIP interpolation-by-key, and the enriched,
// flagged TrajectoryRow the filter emits.
package trajectory

import (
	"math"

	"github.com/ballistics-core/engine/internal/vecmath"
)

// BaseTrajSample is one dense ODE output point: no derived quantities.
type BaseTrajSample struct {
	TimeS    float64
	Position vecmath.Vec3
	Velocity vecmath.Vec3
	Mach     float64
}

// Key enumerates the fields interpolation may be targeted at. This
// replaces the source's dynamic ("velocity.y"-style) attribute access with
// an explicit enumerated selector — a pure function, not name reflection
// (see spec 9, Design Notes).
type Key int

const (
	KeyTime Key = iota
	KeyMach
	KeyPosX
	KeyPosY
	KeyPosZ
	KeyVelX
	KeyVelY
	KeyVelZ
	KeySlantHeight
)

// value extracts the Key's scalar from a sample. SlantHeight needs the
// look angle, which every other key ignores.
func value(s BaseTrajSample, key Key, lookAngleRad float64) float64 {
	switch key {
	case KeyTime:
		return s.TimeS
	case KeyMach:
		return s.Mach
	case KeyPosX:
		return s.Position.X
	case KeyPosY:
		return s.Position.Y
	case KeyPosZ:
		return s.Position.Z
	case KeyVelX:
		return s.Velocity.X
	case KeyVelY:
		return s.Velocity.Y
	case KeyVelZ:
		return s.Velocity.Z
	case KeySlantHeight:
		return slantHeight(s.Position, lookAngleRad)
	default:
		return 0
	}
}

func slantHeight(pos vecmath.Vec3, lookAngleRad float64) float64 {
	return pos.Y*math.Cos(lookAngleRad) - pos.X*math.Sin(lookAngleRad)
}
