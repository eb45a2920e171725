// Package config holds the process-wide solver defaults (spec 3's Config
// record). Unlike the teacher's broker config, this is not loaded from the
// environment: building a Config from user/unit input is the job of the
// collaborator layer named in spec 1, so this package exposes only the
// in-memory value type and its documented defaults.
package config

const (
	// DefaultMaxIterations bounds every iterative solver (Newton, Ridder,
	// golden section) before it is declared non-convergent.
	DefaultMaxIterations = 100

	// DefaultZeroFindingAccuracyFt is cZeroFindingAccuracy: the slant-plane
	// height error below which zero_angle and find_zero_angle accept.
	DefaultZeroFindingAccuracyFt = 0.0005

	// DefaultMinimumVelocityFps is cMinimumVelocity: integration stops once
	// speed falls below this.
	DefaultMinimumVelocityFps = 50.0

	// DefaultMaximumDropFt is cMaximumDrop: a negative bound on vertical
	// drop (relative to the muzzle) past which integration stops.
	DefaultMaximumDropFt = -15000.0

	// DefaultMinimumAltitudeFt is cMinimumAltitude: integration stops if the
	// absolute altitude falls below this while descending.
	DefaultMinimumAltitudeFt = -1500.0

	// DefaultGravityFpsSq is the gravity magnitude (negative, acts downward).
	DefaultGravityFpsSq = -32.17405

	// DefaultStepMultiplier scales calc_step_ft for each integration run.
	DefaultStepMultiplier = 1.0

	// DefaultLowestTempClampC is the atmosphere's lowest-temperature clamp.
	DefaultLowestTempClampC = -130.0

	// DefaultRK4TimeStep is RK4's DEFAULT_TIME_STEP, bit-exact per spec 6.4.
	DefaultRK4TimeStep = 0.0025

	// AllowedZeroErrorFeet is ALLOWED_ZERO_ERROR_FEET from spec 4.9.1: the
	// slant-plane range error zero_angle tolerates on acceptance.
	AllowedZeroErrorFeet = 1.0

	// ApexIsMaxRangeRadians is a look-angle bound (spec 6.4). Only ZeroAngle
	// consults it, as the upper bound on |look angle| for its small-elevation
	// nudge; neither ZeroAngle nor FindZeroAngle short-circuits near-vertical
	// shots. Carried verbatim: it is unclear whether the source's threshold
	// is physically motivated or empirical.
	ApexIsMaxRangeRadians = 1.5
)

// Config captures the process-wide defaults held by one engine instance and
// re-read at the start of every query (spec 4.10, 5). It is a plain value,
// cloned on engine construction — mutating a config already bound to a
// running engine is observed only on the next query.
type Config struct {
	MaxIterations         int
	ZeroFindingAccuracyFt float64
	MinimumVelocityFps    float64
	MaximumDropFt         float64
	MinimumAltitudeFt     float64
	GravityFpsSq          float64
	StepMultiplier        float64
	LowestTempClampC      float64
}

// Default returns the documented default Config.
func Default() Config {
	return Config{
		MaxIterations:         DefaultMaxIterations,
		ZeroFindingAccuracyFt: DefaultZeroFindingAccuracyFt,
		MinimumVelocityFps:    DefaultMinimumVelocityFps,
		MaximumDropFt:         DefaultMaximumDropFt,
		MinimumAltitudeFt:     DefaultMinimumAltitudeFt,
		GravityFpsSq:          DefaultGravityFpsSq,
		StepMultiplier:        DefaultStepMultiplier,
		LowestTempClampC:      DefaultLowestTempClampC,
	}
}

// Clone returns a value copy. Config has no reference fields, so this is a
// plain struct copy, kept as a named method so call sites read the same way
// the teacher's config cloning does at engine construction.
func (c Config) Clone() Config {
	return c
}
