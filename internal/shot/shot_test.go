package shot

import (
	"errors"
	"testing"

	"github.com/ballistics-core/engine/internal/atmosphere"
	"github.com/ballistics-core/engine/internal/drag"
	"github.com/ballistics-core/engine/internal/wind"
	"gonum.org/v1/gonum/floats"
)

func g7Table() []drag.Point {
	return []drag.Point{
		{Mach: 0.0, CD: 0.1198},
		{Mach: 0.5, CD: 0.1197},
		{Mach: 0.8, CD: 0.1237},
		{Mach: 1.0, CD: 0.2105},
		{Mach: 1.2, CD: 0.2571},
		{Mach: 2.0, CD: 0.1950},
		{Mach: 3.0, CD: 0.1560},
		{Mach: 5.0, CD: 0.1170},
	}
}

func icao() atmosphere.Atmosphere {
	return atmosphere.Atmosphere{
		RefAltitudeFt:    0,
		RefTemperatureC:  15,
		RefPressureHPa:   1013.25,
		RefMachSpeedFps:  1116.45,
		RefDensityRatio:  1.0,
		LowestTempClampC: -130,
	}
}

func baseDescriptor() Descriptor {
	return Descriptor{
		BarrelElevationRad: 0.01,
		SightHeightFt:      2.0 / 12.0,
		LookAngleRad:       0,
		BC:                 0.305,
		DiameterIn:         0.308,
		LengthIn:           1.2,
		WeightGr:           175,
		TwistIn:            10,
		MuzzleVelocityFps:  2700,
		CalcStepFt:         5,
		DragTable:          g7Table(),
		Atmo:               icao(),
	}
}

func TestNewRejectsNonPositiveCalcStep(t *testing.T) {
	d := baseDescriptor()
	d.CalcStepFt = 0
	if _, err := New(d); !errors.Is(err, ErrInvalidDescriptor) {
		t.Fatalf("expected ErrInvalidDescriptor, got %v", err)
	}
}

func TestNewRejectsShortDragTable(t *testing.T) {
	d := baseDescriptor()
	d.DragTable = []drag.Point{{Mach: 1, CD: 0.2}}
	if _, err := New(d); !errors.Is(err, ErrInvalidDescriptor) {
		t.Fatalf("expected ErrInvalidDescriptor, got %v", err)
	}
}

func TestStabilityCoefficientNonNegativeWhenTwistSet(t *testing.T) {
	d := baseDescriptor()
	p, err := New(d)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.StabilityCoef < 0 {
		t.Fatalf("stability coefficient must be non-negative, got %v", p.StabilityCoef)
	}
	if p.StabilityCoef == 0 {
		t.Fatalf("expected a nonzero stability coefficient for a twisted barrel")
	}
}

func TestZeroTwistMeansZeroStabilityAndZeroSpinDrift(t *testing.T) {
	d := baseDescriptor()
	d.TwistIn = 0
	p, err := New(d)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.StabilityCoef != 0 {
		t.Fatalf("expected zero stability coefficient with zero twist, got %v", p.StabilityCoef)
	}
	//1.- Spin drift must be identically zero at every time, not just t=0.
	for _, tt := range []float64{0, 0.1, 1, 5} {
		if p.SpinDriftFt(tt) != 0 {
			t.Fatalf("expected zero spin drift at t=%v, got %v", tt, p.SpinDriftFt(tt))
		}
	}
}

func TestSpinDriftSignFollowsTwistSign(t *testing.T) {
	right := baseDescriptor()
	right.TwistIn = 10
	left := baseDescriptor()
	left.TwistIn = -10

	pr, err := New(right)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	pl, err := New(left)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	dr := pr.SpinDriftFt(1.0)
	dl := pl.SpinDriftFt(1.0)
	if dr <= 0 || dl >= 0 {
		t.Fatalf("expected opposite-signed spin drift, got right=%v left=%v", dr, dl)
	}
	if !floats.EqualWithinAbs(dr, -dl, 1e-9) {
		t.Fatalf("expected symmetric magnitude, got right=%v left=%v", dr, dl)
	}
}

func TestCloneResetsWindCursorWithoutAliasingOriginal(t *testing.T) {
	d := baseDescriptor()
	d.Wind = []wind.Segment{{VelocityFps: 10, DirectionFromRad: 0, UntilDistanceFt: 100}}
	p, err := New(d)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	//1.- Advance the original's wind cursor past its only segment.
	p.Wind.VectorFor(500)
	clone := p.Clone()
	if clone.Wind.Current().X != 10 {
		t.Fatalf("expected the clone's wind cursor back on the first segment, got %#v", clone.Wind.Current())
	}
	if p.Wind.Current().X != 0 {
		t.Fatalf("cloning must not reset the original's wind cursor, got %#v", p.Wind.Current())
	}
	clone.BarrelElevationRad = 0.5
	if p.BarrelElevationRad == 0.5 {
		t.Fatalf("mutating the clone's elevation leaked into the original")
	}
}
