package ballistics

import (
	"errors"
	"math"
	"testing"

	"github.com/ballistics-core/engine/internal/atmosphere"
	"github.com/ballistics-core/engine/internal/config"
	"github.com/ballistics-core/engine/internal/drag"
	"github.com/ballistics-core/engine/internal/shot"
	"github.com/ballistics-core/engine/internal/trajectory"
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

func baseDescriptor() shot.Descriptor {
	return shot.Descriptor{
		SightHeightFt:     2.0 / 12.0,
		BC:                0.305,
		MuzzleVelocityFps: 2700,
		CalcStepFt:        5,
		DragTable:         g7Table(),
		Atmo:              icao(),
	}
}

// Scenario 1: flat zero.
func TestFlatZero(t *testing.T) {
	e := NewEngine(config.Default())
	d := baseDescriptor()

	angle, err := e.ZeroAngle(d, 300) // 100 yd
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if angle <= 0 {
		t.Fatalf("expected a positive elevation, got %v", angle)
	}

	d.BarrelElevationRad = angle
	result, err := e.Integrate(d, 400, IntegrateOptions{FilterFlags: trajectory.FlagRange, RangeStepFt: 300, Dense: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	sample, err := result.Dense.Interpolate(trajectory.KeyPosX, 300, 0)
	if err != nil {
		t.Fatalf("unexpected interpolation error: %v", err)
	}
	if math.Abs(sample.Position.Y) > 0.5 {
		t.Fatalf("expected height near zero at x=300ft, got %v", sample.Position.Y)
	}
}

// Scenario 3: apex sanity.
func TestApexSanity(t *testing.T) {
	e := NewEngine(config.Default())
	d := baseDescriptor()
	d.BarrelElevationRad = 45 * math.Pi / 180
	d.MuzzleVelocityFps = 3000

	row, err := e.FindApex(d)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !floats.EqualWithinAbs(row.Velocity.Y, 0, 1e-3) {
		t.Fatalf("expected vertical velocity within 1e-3 of zero, got %v", row.Velocity.Y)
	}
	if row.Position.X <= 0 {
		t.Fatalf("expected positive downrange position, got %v", row.Position.X)
	}
}

// Scenario 4: Mach crossing — exactly one row carries the MACH flag.
func TestMachCrossingFlagsExactlyOneRow(t *testing.T) {
	e := NewEngine(config.Default())
	d := baseDescriptor()
	d.MuzzleVelocityFps = 2700 // well above Mach 1 (~1116 fps at icao sea level)

	result, err := e.Integrate(d, 8000, IntegrateOptions{FilterFlags: trajectory.FlagMach})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	count := 0
	for _, r := range result.Rows {
		if r.Flags.Has(trajectory.FlagMach) {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("expected exactly one MACH-flagged row, got %d", count)
	}
}

// Scenario 5: wind segmentation — windage growth stops past the last
// segment's until_distance.
func TestWindSegmentationStopsGrowingPastLastSegment(t *testing.T) {
	e := NewEngine(config.Default())
	d := baseDescriptor()
	d.Wind = []wind.Segment{
		{VelocityFps: 10, DirectionFromRad: math.Pi / 2, UntilDistanceFt: 500},
		{VelocityFps: 0, DirectionFromRad: 0, UntilDistanceFt: math.Inf(1)},
	}

	result, err := e.Integrate(d, 1200, IntegrateOptions{FilterFlags: trajectory.FlagRange, RangeStepFt: 100, Dense: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	at500, err := result.Dense.Interpolate(trajectory.KeyPosX, 500, 0)
	if err != nil {
		t.Fatalf("unexpected interpolation error at x=500: %v", err)
	}
	at1000, err := result.Dense.Interpolate(trajectory.KeyPosX, 1000, 0)
	if err != nil {
		t.Fatalf("unexpected interpolation error at x=1000: %v", err)
	}
	if math.Abs(at1000.Position.Z-at500.Position.Z) > 1e-6 {
		t.Fatalf("expected no further windage growth past the last wind segment, got z(500)=%v z(1000)=%v", at500.Position.Z, at1000.Position.Z)
	}
}

// Scenario 6: range error — integration stops early with a RangeError
// carrying the partial trajectory, and the last sample's speed is at or
// below the minimum velocity floor.
func TestRangeErrorOnMinimumVelocity(t *testing.T) {
	cfg := config.Default()
	cfg.MinimumVelocityFps = 400
	e := NewEngine(cfg)
	d := baseDescriptor()
	d.BarrelElevationRad = 5 * math.Pi / 180
	d.MuzzleVelocityFps = 800

	result, err := e.Integrate(d, 1e6, IntegrateOptions{FilterFlags: trajectory.FlagRange, Dense: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.RangeErr == nil {
		t.Fatalf("expected a RangeError for a shot that decelerates below the minimum velocity")
	}
	var asError error = result.RangeErr
	if asError.Error() == "" {
		t.Fatalf("expected RangeError.Error() to produce a description")
	}
	if result.Dense.Last().Velocity.Magnitude() > 400+1e-6 {
		t.Fatalf("expected final sample speed <= 400 fps, got %v", result.Dense.Last().Velocity.Magnitude())
	}
}

func TestInvalidDescriptorWrapsErrInvalidInput(t *testing.T) {
	e := NewEngine(config.Default())
	d := baseDescriptor()
	d.CalcStepFt = 0
	if _, err := e.Integrate(d, 100, IntegrateOptions{}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestSetConfigDoesNotAliasCaller(t *testing.T) {
	cfg := config.Default()
	e := NewEngine(cfg)
	cfg.MaxIterations = 1
	if e.Config().MaxIterations == 1 {
		t.Fatalf("mutating the caller's config leaked into the engine")
	}

	rebound := config.Default()
	e.SetConfig(rebound)
	rebound.MaxIterations = 2
	if e.Config().MaxIterations == 2 {
		t.Fatalf("mutating a config after SetConfig leaked into the engine")
	}
}
