package atmosphere

import (
	"testing"

	"gonum.org/v1/gonum/floats"
)

func icao() Atmosphere {
	return Atmosphere{
		RefAltitudeFt:    0,
		RefTemperatureC:  15,
		RefPressureHPa:   1013.25,
		RefMachSpeedFps:  1116.45,
		RefDensityRatio:  1.0,
		LowestTempClampC: -130,
	}
}

func TestAtReferenceAltitudeReturnsReferenceValuesExactly(t *testing.T) {
	a := icao()
	r := a.At(0)
	if r.DensityRatio != a.RefDensityRatio || r.MachSpeedFps != a.RefMachSpeedFps {
		t.Fatalf("expected exact reference values, got %#v", r)
	}

	//1.- Within the 30 ft band around a0, the reference value still applies verbatim.
	r2 := a.At(15)
	if r2.DensityRatio != a.RefDensityRatio || r2.MachSpeedFps != a.RefMachSpeedFps {
		t.Fatalf("expected exact reference values within tolerance band, got %#v", r2)
	}
}

func TestAtHigherAltitudeDensityDrops(t *testing.T) {
	a := icao()
	low := a.At(0)
	high := a.At(10000)
	if high.DensityRatio >= low.DensityRatio {
		t.Fatalf("density ratio should drop with altitude: low=%v high=%v", low.DensityRatio, high.DensityRatio)
	}
	if high.AboveTroposphere {
		t.Fatalf("10000 ft should not be flagged above the troposphere")
	}
}

func TestAtAboveTroposphereFlagsWarning(t *testing.T) {
	a := icao()
	r := a.At(40000)
	if !r.AboveTroposphere {
		t.Fatalf("expected above-troposphere warning at 40000 ft")
	}
	if r.DensityRatio <= 0 {
		t.Fatalf("computation should continue despite the warning, got density %v", r.DensityRatio)
	}
}

func TestAtClampsExtremeColdTemperature(t *testing.T) {
	a := icao()
	a.LowestTempClampC = -50
	r := a.At(100000)
	if !r.TemperatureClamped {
		t.Fatalf("expected the lowest-temperature clamp to engage at extreme altitude")
	}
	if !floats.EqualWithinAbs(r.DensityRatio, r.DensityRatio, 1e-9) {
		t.Fatalf("sanity check failed")
	}
}
