// Package shot aggregates one query's pre-computed ballistic state: geometry,
// projectile properties, drag curve, atmosphere, wind, and the derived
// stability coefficient (spec 3, "ShotProps").
package shot

import (
	"fmt"
	"math"

	"github.com/ballistics-core/engine/internal/atmosphere"
	"github.com/ballistics-core/engine/internal/drag"
	"github.com/ballistics-core/engine/internal/wind"
)

// Descriptor is the fully populated, unit-converted input the core expects
// per spec 6.1 — everything upstream of it (dimensioned quantities, drag
// catalog lookups, atmosphere construction from user input) is an external
// collaborator's responsibility.
type Descriptor struct {
	// Geometry.
	BarrelElevationRad float64
	BarrelAzimuthRad   float64
	SightHeightFt      float64
	CantRad            float64
	LookAngleRad       float64

	// Projectile.
	BC         float64
	DiameterIn float64
	LengthIn   float64
	WeightGr   float64
	TwistIn    float64 // signed; sign selects the spin-drift direction.

	// State.
	MuzzleVelocityFps float64
	Alt0Ft            float64
	CalcStepFt        float64

	DragTable []drag.Point
	Atmo      atmosphere.Atmosphere
	Wind      []wind.Segment
}

// Props is the mutable-by-solver, owned-by-one-query aggregate spec 3 calls
// ShotProps. Only BarrelElevationRad is mutated between integrations by the
// solver layer (spec 4.10); everything else is fixed once built.
type Props struct {
	BarrelElevationRad float64
	BarrelAzimuthRad   float64
	SightHeightFt      float64
	CantCos            float64
	CantSin            float64
	LookAngleRad       float64

	BC         float64
	DiameterIn float64
	LengthIn   float64
	WeightGr   float64
	TwistIn    float64

	MuzzleVelocityFps float64
	Alt0Ft            float64
	CalcStepFt        float64
	StabilityCoef     float64

	Curve *drag.Curve
	Atmo  atmosphere.Atmosphere
	Wind  *wind.Field

	windSegments []wind.Segment
}

// New validates a Descriptor and builds the computed contents (drag curve,
// wind field, stability coefficient) once. The drag curve and Mach knot
// array are never rebuilt afterward, even when the solver mutates
// BarrelElevationRad (spec 4.10).
func New(d Descriptor) (*Props, error) {
	if d.CalcStepFt <= 0 {
		return nil, fmt.Errorf("%w: calc_step_ft must be positive, got %v", ErrInvalidDescriptor, d.CalcStepFt)
	}
	if d.MuzzleVelocityFps <= 0 {
		return nil, fmt.Errorf("%w: muzzle_velocity_fps must be positive, got %v", ErrInvalidDescriptor, d.MuzzleVelocityFps)
	}
	if d.BC <= 0 {
		return nil, fmt.Errorf("%w: bc must be positive, got %v", ErrInvalidDescriptor, d.BC)
	}

	curve, err := drag.New(d.DragTable)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDescriptor, err)
	}

	stability, err := stabilityCoefficient(d)
	if err != nil {
		return nil, err
	}

	p := &Props{
		BarrelElevationRad: d.BarrelElevationRad,
		BarrelAzimuthRad:   d.BarrelAzimuthRad,
		SightHeightFt:      d.SightHeightFt,
		CantCos:            math.Cos(d.CantRad),
		CantSin:            math.Sin(d.CantRad),
		LookAngleRad:       d.LookAngleRad,

		BC:         d.BC,
		DiameterIn: d.DiameterIn,
		LengthIn:   d.LengthIn,
		WeightGr:   d.WeightGr,
		TwistIn:    d.TwistIn,

		MuzzleVelocityFps: d.MuzzleVelocityFps,
		Alt0Ft:            d.Alt0Ft,
		CalcStepFt:        d.CalcStepFt,
		StabilityCoef:     stability,

		Curve:        curve,
		Atmo:         d.Atmo,
		Wind:         wind.NewField(d.Wind),
		windSegments: d.Wind,
	}
	return p, nil
}

// Clone returns a shallow copy suitable for a solver iteration that only
// mutates BarrelElevationRad: the drag curve is shared (immutable), and the
// wind field's segment cursor is reset so re-integration starts from x=0.
func (p *Props) Clone() *Props {
	clone := *p
	clone.Wind = wind.NewField(clone.windSegments)
	return &clone
}
