// Package ballistics is the engine façade (spec 4.10, 6.1): lifecycle,
// configuration re-binding, and error mapping over the solver core.
package ballistics

import (
	"fmt"

	"github.com/ballistics-core/engine/internal/config"
	"github.com/ballistics-core/engine/internal/filter"
	"github.com/ballistics-core/engine/internal/integrate"
	"github.com/ballistics-core/engine/internal/shot"
	"github.com/ballistics-core/engine/internal/solve"
	"github.com/ballistics-core/engine/internal/trajectory"
)

// Engine owns one Config, cloned at construction (spec 5). Every query
// re-reads the held Config at its start; mutating it with SetConfig is only
// observed starting with the next query issued against a running engine.
type Engine struct {
	cfg config.Config
}

// NewEngine constructs an Engine over a Config value, cloned so the caller's
// copy and the engine's are never aliased.
func NewEngine(cfg config.Config) *Engine {
	return &Engine{cfg: cfg.Clone()}
}

// Config returns the engine's currently bound Config.
func (e *Engine) Config() config.Config {
	return e.cfg
}

// SetConfig rebinds the engine's Config. Per spec 5, a query already in
// flight is unaffected; the façade re-reads the held Config only at the
// start of each query.
func (e *Engine) SetConfig(cfg config.Config) {
	e.cfg = cfg.Clone()
}

// IntegrateOptions parameterizes Integrate (spec 6.1).
type IntegrateOptions struct {
	// RangeStepFt is the filter RANGE emission spacing. Zero means "emit
	// only the first and last sample" (spec 8 boundary behavior), not "use
	// the shot's calc_step_ft" — the two step sizes are independent: one
	// paces the ODE, the other paces the reported table.
	RangeStepFt float64
	// TimeStepS, when positive, also emits a row whenever more than this
	// many seconds have elapsed since the last TIME record. Zero disables
	// TIME emission entirely (spec 8).
	TimeStepS float64
	// FilterFlags selects which transitions the filter reports. The zero
	// value is not "no flags" here — Integrate defaults it to
	// trajectory.FlagRange per spec 6.1's literal signature
	// (filter_flags=RANGE). Passing trajectory.FlagNone explicitly does not
	// turn filtering off: it is the zero value and is replaced by FlagRange.
	FilterFlags trajectory.Flag
	// Dense, if true, attaches the full raw TrajectorySeq to the result.
	Dense bool
	// Method selects Euler or RK4. Zero value is MethodEuler.
	Method integrate.Method
	// RK4TimeStepS is only consulted when Method is MethodRK4; zero means
	// the default RK4 step (spec 6.4).
	RK4TimeStepS float64
}

// Integrate builds ShotProps from d, runs the integrator to maxRangeFt, and
// returns the resulting HitResult (spec 6.1). shot.New(d) errors are wrapped as
// ErrInvalidInput; a premature integrator termination is not an error here
// — it rides inside the result as HitResult.RangeErr (spec 7).
func (e *Engine) Integrate(d shot.Descriptor, maxRangeFt float64, opts IntegrateOptions) (*HitResult, error) {
	props, err := shot.New(d)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return e.integrateProps(props, maxRangeFt, opts)
}

func (e *Engine) integrateProps(props *shot.Props, maxRangeFt float64, opts IntegrateOptions) (*HitResult, error) {
	cfg := e.cfg

	filterFlags := opts.FilterFlags
	if filterFlags == trajectory.FlagNone {
		filterFlags = trajectory.FlagRange
	}

	f := filter.New(filterFlags, opts.RangeStepFt, opts.TimeStepS, props.LookAngleRad, props.WeightGr, props.SpinDriftFt)

	var rows []trajectory.Row
	onSample := func(sample trajectory.BaseTrajSample) {
		rows = append(rows, f.Process(sample)...)
	}

	seq, reason := integrate.Run(props, cfg, opts.Method, maxRangeFt, opts.RK4TimeStepS, onSample)
	rows = append(rows, f.Finish()...)

	result := &HitResult{Shot: props, Rows: rows, Flags: filterFlags}
	if opts.Dense {
		result.Dense = seq
	}
	if reason.Premature() {
		result.RangeErr = &RangeError{Reason: reason, Partial: seq}
	}
	return result, nil
}

// ZeroAngle finds the barrel elevation that zeroes at distance (spec 4.9.1,
// 6.1).
func (e *Engine) ZeroAngle(d shot.Descriptor, slantRangeFt float64) (float64, error) {
	props, err := shot.New(d)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return solve.ZeroAngle(props, e.cfg, slantRangeFt)
}

// FindZeroAngle finds a zeroing elevation via Ridder's method, optionally
// the lofted (high) solution (spec 4.9.2, 6.1).
func (e *Engine) FindZeroAngle(d shot.Descriptor, slantRangeFt float64, lofted bool) (float64, error) {
	props, err := shot.New(d)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return solve.FindZeroAngle(props, e.cfg, slantRangeFt, lofted)
}

// FindMaxRange finds the maximum slant range and the elevation that attains
// it, searching within the given bracket in degrees (spec 4.9.3, 6.1).
func (e *Engine) FindMaxRange(d shot.Descriptor, lowDeg, highDeg float64) (float64, float64, error) {
	props, err := shot.New(d)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	const degToRad = 3.141592653589793 / 180
	return solve.FindMaxRange(props, e.cfg, lowDeg*degToRad, highDeg*degToRad)
}

// FindApex integrates and resolves the trajectory's apex row (spec 4.9.4,
// 6.1).
func (e *Engine) FindApex(d shot.Descriptor) (trajectory.Row, error) {
	props, err := shot.New(d)
	if err != nil {
		return trajectory.Row{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return solve.FindApex(props, e.cfg)
}
