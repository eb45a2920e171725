// Package filter converts a dense integration step stream into flagged
// TrajectoryRows (spec 4.8). It is a stateful observer, restartable only by
// reconstruction.
package filter

import (
	"math"

	"github.com/ballistics-core/engine/internal/trajectory"
)

// SpinDriftFunc evaluates the Litz spin-drift windage correction at a given
// time. Kept as a closure rather than a *shot.Props dependency so this
// package has no import-cycle risk with the shot package.
type SpinDriftFunc func(timeS float64) float64

// Filter is the stateful observer described in spec 4.8.
type Filter struct {
	selected     trajectory.Flag
	rangeStepFt  float64
	timeStepS    float64
	lookAngleRad float64
	lookTan      float64
	weightGr     float64
	spinDrift    SpinDriftFunc

	havePrev          bool
	prev              trajectory.BaseTrajSample
	prevMachRatio     float64
	lastTimeRecordS   float64
	nextRecordDistFt  float64
	seenZero          trajectory.Flag
	emittedRangeStart bool
	last              trajectory.BaseTrajSample
	haveLast          bool
}

// New constructs a Filter selecting the given flags. A timeStepS of 0
// disables TIME emission; a rangeStepFt of 0 with RANGE selected emits only
// the first and the last sample (the last one from Finish).
func New(selected trajectory.Flag, rangeStepFt, timeStepS, lookAngleRad, weightGr float64, spinDrift SpinDriftFunc) *Filter {
	if spinDrift == nil {
		spinDrift = func(float64) float64 { return 0 }
	}
	return &Filter{
		selected:     selected,
		rangeStepFt:  rangeStepFt,
		timeStepS:    timeStepS,
		lookAngleRad: lookAngleRad,
		lookTan:      math.Tan(lookAngleRad),
		weightGr:     weightGr,
		spinDrift:    spinDrift,
	}
}

// Process ingests one dense raw sample and returns zero or more emitted
// rows. Emission is additive: a single row may carry several flags.
func (f *Filter) Process(sample trajectory.BaseTrajSample) []trajectory.Row {
	var rows []trajectory.Row

	rows = append(rows, f.processRange(sample)...)

	instantFlags := trajectory.FlagNone
	if f.selected.Has(trajectory.FlagMach) && f.havePrev {
		if f.machCrossed(sample) {
			instantFlags |= trajectory.FlagMach
		}
	}
	if f.selected.Has(trajectory.FlagZeroUp) && !f.seenZero.Has(trajectory.FlagZeroUp) {
		if sample.Position.Y >= sample.Position.X*f.lookTan {
			instantFlags |= trajectory.FlagZeroUp
			f.seenZero |= trajectory.FlagZeroUp
		}
	}
	if f.selected.Has(trajectory.FlagZeroDn) && f.seenZero.Has(trajectory.FlagZeroUp) && !f.seenZero.Has(trajectory.FlagZeroDn) {
		if sample.Position.Y < sample.Position.X*f.lookTan {
			instantFlags |= trajectory.FlagZeroDn
			f.seenZero |= trajectory.FlagZeroDn
		}
	}
	emitTime := f.timeStepS > 0 && f.havePrev && sample.TimeS-f.lastTimeRecordS > f.timeStepS
	if emitTime {
		f.lastTimeRecordS = sample.TimeS
	}

	if instantFlags != trajectory.FlagNone || emitTime {
		rows = append(rows, f.row(sample, instantFlags))
	}

	if f.selected.Has(trajectory.FlagApex) && f.havePrev && f.prev.Velocity.Y > 0 && sample.Velocity.Y <= 0 {
		apexSample := trajectory.LinearInterpolate(f.prev, sample, trajectory.KeyVelY, 0, f.lookAngleRad)
		rows = append(rows, f.row(apexSample, trajectory.FlagApex))
	}

	f.prev = sample
	f.havePrev = true
	f.prevMachRatio = machRatio(sample)
	f.last = sample
	f.haveLast = true
	return rows
}

// Finish is called once after the last raw sample has been processed. Its
// only job is the range_step=0 boundary: "emits only start and end".
func (f *Filter) Finish() []trajectory.Row {
	if !f.selected.Has(trajectory.FlagRange) || f.rangeStepFt > 0 || !f.haveLast {
		return nil
	}
	return []trajectory.Row{f.row(f.last, trajectory.FlagRange)}
}

func (f *Filter) processRange(sample trajectory.BaseTrajSample) []trajectory.Row {
	if !f.selected.Has(trajectory.FlagRange) {
		return nil
	}
	if f.rangeStepFt <= 0 {
		if !f.emittedRangeStart {
			f.emittedRangeStart = true
			return []trajectory.Row{f.row(sample, trajectory.FlagRange)}
		}
		return nil
	}

	var rows []trajectory.Row
	for f.nextRecordDistFt <= sample.Position.X {
		var point trajectory.BaseTrajSample
		if f.havePrev {
			point = trajectory.LinearInterpolate(f.prev, sample, trajectory.KeyPosX, f.nextRecordDistFt, f.lookAngleRad)
		} else {
			point = sample
		}
		rows = append(rows, f.row(point, trajectory.FlagRange))
		f.nextRecordDistFt += f.rangeStepFt
	}
	return rows
}

func (f *Filter) row(sample trajectory.BaseTrajSample, flags trajectory.Flag) trajectory.Row {
	return trajectory.NewRow(sample, f.weightGr, f.spinDrift(sample.TimeS), f.lookAngleRad, flags)
}

func machRatio(sample trajectory.BaseTrajSample) float64 {
	if sample.Mach == 0 {
		return 0
	}
	return sample.Velocity.Magnitude() / sample.Mach
}

func (f *Filter) machCrossed(sample trajectory.BaseTrajSample) bool {
	cur := machRatio(sample)
	return f.prevMachRatio > 1 && cur <= 1
}
