// Package wind models piecewise-constant wind vs. downrange distance.
package wind

import (
	"math"

	"github.com/ballistics-core/engine/internal/vecmath"
)

// Segment is one leg of a wind profile: velocity_fps applies for downrange
// x in [previous until_distance, until_distance).
type Segment struct {
	VelocityFps      float64
	DirectionFromRad float64
	UntilDistanceFt  float64
}

// Field caches the currently active segment and its resolved vector so
// repeated lookups at monotonically increasing downrange distance are O(1)
// amortized instead of a fresh scan per sample.
type Field struct {
	segments []Segment
	index    int
	current  vecmath.Vec3
}

// NewField builds a Field over segments already sorted by UntilDistanceFt.
// An empty segment list means zero wind everywhere.
func NewField(segments []Segment) *Field {
	f := &Field{segments: segments}
	f.recompute()
	return f
}

func (f *Field) recompute() {
	if f.index >= len(f.segments) {
		f.current = vecmath.Zero
		return
	}
	seg := f.segments[f.index]
	f.current = vecmath.Vec3{
		X: seg.VelocityFps * math.Cos(seg.DirectionFromRad),
		Y: 0,
		Z: seg.VelocityFps * math.Sin(seg.DirectionFromRad),
	}
}

// Current returns the cached wind vector for the active segment.
func (f *Field) Current() vecmath.Vec3 {
	return f.current
}

// VectorFor advances the segment pointer while x is past the end of the
// current segment, then returns the cached wind vector. Beyond the last
// segment, wind is zero.
func (f *Field) VectorFor(x float64) vecmath.Vec3 {
	for f.index < len(f.segments) && x >= f.segments[f.index].UntilDistanceFt {
		f.index++
		f.recompute()
	}
	return f.current
}
