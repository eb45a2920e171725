package atmosphere

// Physical constants, bit-exact per spec 6.4 — test vectors depend on them.
const (
	SpeedOfSoundMetric = 20.0467
	MetersToFeet       = 3.28084
	DegreesCtoK        = 273.15
	LapseRateKPerFoot  = -0.0019812
	PressureExponent   = 5.2559

	// TroposphereCeilingFt is the altitude above which the model is
	// extrapolated beyond its validated range; callers are warned.
	TroposphereCeilingFt = 36089.0

	// refAltitudeToleranceFt is how close an altitude must be to the
	// reference altitude before the reference values are returned verbatim.
	refAltitudeToleranceFt = 30.0

	// absoluteZeroC is the lower clamp bound for the derived Celsius
	// temperature, independent of the caller-supplied lowest-temperature
	// clamp.
	absoluteZeroC = -273.15
)
