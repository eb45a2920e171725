// Package atmosphere models altitude -> (density ratio, local Mach speed)
// with a lapse-rate approximation and temperature clamps.
package atmosphere

import "math"

// Atmosphere is read-only during integration once constructed from user
// input by the collaborator layer named in spec 1.
type Atmosphere struct {
	RefAltitudeFt    float64
	RefTemperatureC  float64
	RefPressureHPa   float64
	RefMachSpeedFps  float64
	RefDensityRatio  float64
	LowestTempClampC float64
}

// Reading is the outcome of evaluating the atmosphere at one altitude,
// including the side-channel diagnostics spec 7 calls "warnings".
type Reading struct {
	DensityRatio       float64
	MachSpeedFps       float64
	AboveTroposphere   bool
	TemperatureClamped bool
}

// At evaluates the atmosphere at the given altitude (feet).
func (a Atmosphere) At(altitudeFt float64) Reading {
	//1.- Within 30 ft of the reference altitude, return the reference values verbatim.
	if math.Abs(altitudeFt-a.RefAltitudeFt) < refAltitudeToleranceFt {
		return Reading{DensityRatio: a.RefDensityRatio, MachSpeedFps: a.RefMachSpeedFps}
	}

	celsius := (altitudeFt-a.RefAltitudeFt)*LapseRateKPerFoot + a.RefTemperatureC

	reading := Reading{}
	if altitudeFt > TroposphereCeilingFt {
		reading.AboveTroposphere = true
	}

	//2.- Absolute zero is a hard physical floor no temperature can cross.
	if celsius < absoluteZeroC {
		celsius = absoluteZeroC
	}
	//3.- Below that, the configured lowest-temperature clamp bounds how far
	// the lapse-rate extrapolation is trusted; clamping here is a warning,
	// not a physical impossibility.
	if celsius < a.LowestTempClampC {
		celsius = a.LowestTempClampC
		reading.TemperatureClamped = true
	}

	kelvin := celsius + DegreesCtoK
	refKelvin := a.RefTemperatureC + DegreesCtoK
	pressure := a.RefPressureHPa * math.Pow(1+LapseRateKPerFoot*(altitudeFt-a.RefAltitudeFt)/refKelvin, PressureExponent)

	reading.DensityRatio = a.RefDensityRatio * refKelvin * pressure / (a.RefPressureHPa * kelvin)
	reading.MachSpeedFps = math.Sqrt(kelvin) * SpeedOfSoundMetric * MetersToFeet
	return reading
}
