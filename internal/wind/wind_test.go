package wind

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats"
)

func TestNoSegmentsIsZeroEverywhere(t *testing.T) {
	f := NewField(nil)
	if v := f.VectorFor(10000); v.X != 0 || v.Z != 0 {
		t.Fatalf("expected zero wind with no segments, got %#v", v)
	}
}

func TestSingleSegmentWithInfiniteUntilActsConstant(t *testing.T) {
	//1.- A single segment whose boundary is +Inf never advances.
	f := NewField([]Segment{{VelocityFps: 10, DirectionFromRad: math.Pi / 2, UntilDistanceFt: math.Inf(1)}})
	near := f.VectorFor(100)
	far := f.VectorFor(1_000_000)
	if !floats.EqualWithinAbs(near.Z, far.Z, 1e-12) || !floats.EqualWithinAbs(near.X, far.X, 1e-12) {
		t.Fatalf("constant wind drifted: near=%#v far=%#v", near, far)
	}
}

func TestTwoSegmentsAdvanceAndZeroOut(t *testing.T) {
	f := NewField([]Segment{
		{VelocityFps: 10, DirectionFromRad: math.Pi / 2, UntilDistanceFt: 500},
		{VelocityFps: 0, DirectionFromRad: 0, UntilDistanceFt: math.Inf(1)},
	})
	before := f.VectorFor(499)
	if before.Z <= 0 {
		t.Fatalf("expected nonzero crosswind before 500 ft, got %#v", before)
	}
	after := f.VectorFor(500)
	if after.Z != 0 {
		t.Fatalf("expected zero wind at/after 500 ft, got %#v", after)
	}
	farther := f.VectorFor(10000)
	if farther.Z != 0 {
		t.Fatalf("expected wind to remain zero beyond the last segment, got %#v", farther)
	}
}

func TestCurrentReflectsLastVectorFor(t *testing.T) {
	f := NewField([]Segment{{VelocityFps: 5, DirectionFromRad: 0, UntilDistanceFt: 100}})
	f.VectorFor(50)
	if f.Current().X != 5 {
		t.Fatalf("Current should mirror the cached segment vector, got %#v", f.Current())
	}
}
