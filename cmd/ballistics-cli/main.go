// Command ballistics-cli is a thin operator front end over the ballistics
// engine: parse flags into a shot descriptor, run one query, print the
// resulting rows as structured log lines. It owns no state across
// invocations — building descriptors from persistent profiles or unit
// catalogs is a collaborator's job, not this binary's.
package main

import (
	"flag"
	"fmt"
	"math"
	"os"

	ballistics "github.com/ballistics-core/engine"
	"github.com/ballistics-core/engine/internal/atmosphere"
	"github.com/ballistics-core/engine/internal/config"
	"github.com/ballistics-core/engine/internal/diag"
	"github.com/ballistics-core/engine/internal/drag"
	"github.com/ballistics-core/engine/internal/shot"
	"github.com/ballistics-core/engine/internal/trajectory"
)

const degToRad = math.Pi / 180

// g7Reference is the G7 standard drag table, used as the default projectile
// shape when the caller supplies none.
func g7Reference() []drag.Point {
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

func icaoSeaLevel() atmosphere.Atmosphere {
	return atmosphere.Atmosphere{
		RefAltitudeFt:    0,
		RefTemperatureC:  15,
		RefPressureHPa:   1013.25,
		RefMachSpeedFps:  1116.45,
		RefDensityRatio:  1.0,
		LowestTempClampC: config.DefaultLowestTempClampC,
	}
}

func main() {
	logger := diag.New(os.Stderr, diag.InfoLevel)

	bc := flag.Float64("bc", 0.305, "ballistic coefficient")
	muzzleVelocity := flag.Float64("muzzle-velocity-fps", 2700, "muzzle velocity, feet per second")
	sightHeight := flag.Float64("sight-height-in", 2.0, "sight height above bore, inches")
	zeroDistance := flag.Float64("zero-distance-ft", 300, "slant range to solve a zero angle for, feet")
	maxRange := flag.Float64("max-range-ft", 1000, "range to integrate out to, feet")
	rangeStep := flag.Float64("range-step-ft", 100, "spacing between reported rows, feet")
	weightGr := flag.Float64("weight-gr", 175, "projectile weight, grains")
	elevationDeg := flag.Float64("elevation-deg", 0, "fixed barrel elevation in degrees; overrides -zero-distance-ft when nonzero")
	flag.Parse()

	d := shot.Descriptor{
		SightHeightFt:     *sightHeight / 12.0,
		BC:                *bc,
		WeightGr:          *weightGr,
		MuzzleVelocityFps: *muzzleVelocity,
		CalcStepFt:        5,
		DragTable:         g7Reference(),
		Atmo:              icaoSeaLevel(),
	}

	e := ballistics.NewEngine(config.Default())

	if *elevationDeg != 0 {
		d.BarrelElevationRad = *elevationDeg * degToRad
	} else {
		angle, err := e.ZeroAngle(d, *zeroDistance)
		if err != nil {
			logger.Error("failed to solve zero angle", diag.Err(err), diag.Float64("zero_distance_ft", *zeroDistance))
			os.Exit(1)
		}
		d.BarrelElevationRad = angle
		logger.Info("solved zero angle", diag.Float64("elevation_rad", angle), diag.Float64("zero_distance_ft", *zeroDistance))
	}

	result, err := e.Integrate(d, *maxRange, ballistics.IntegrateOptions{
		FilterFlags: trajectory.FlagRange | trajectory.FlagMach,
		RangeStepFt: *rangeStep,
	})
	if err != nil {
		logger.Error("integration failed", diag.Err(err))
		os.Exit(1)
	}

	for _, row := range result.Rows {
		logger.Info("trajectory row",
			diag.Float64("range_ft", row.Position.X),
			diag.Float64("drop_ft", row.Position.Y),
			diag.Float64("windage_ft", row.Position.Z),
			diag.Float64("velocity_fps", row.Velocity.Magnitude()),
			diag.Float64("time_s", row.TimeS),
			diag.Float64("energy_ft_lb", row.EnergyFtLb),
			diag.Float64("spin_drift_ft", row.SpinDriftFt),
		)
	}

	if result.RangeErr != nil {
		logger.Warn("integration terminated before reaching max range", diag.String("reason", result.RangeErr.Reason.String()))
	}
	for _, w := range result.Warnings() {
		logger.Warn("atmosphere diagnostic", diag.String("warning", w))
	}

	fmt.Fprintf(os.Stdout, "%d rows reported\n", len(result.Rows))
}
