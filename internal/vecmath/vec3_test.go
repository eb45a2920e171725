package vecmath

import (
	"testing"

	"gonum.org/v1/gonum/floats"
)

func TestVec3Arithmetic(t *testing.T) {
	//1.- Build two vectors and exercise every operator in one pass.
	a := Vec3{X: 1, Y: 2, Z: 3}
	b := Vec3{X: -1, Y: 0.5, Z: 2}

	sum := a.Add(b)
	if !floats.EqualWithinAbs(sum.X, 0, 1e-12) || !floats.EqualWithinAbs(sum.Y, 2.5, 1e-12) || !floats.EqualWithinAbs(sum.Z, 5, 1e-12) {
		t.Fatalf("unexpected sum %#v", sum)
	}

	diff := a.Sub(b)
	if !floats.EqualWithinAbs(diff.X, 2, 1e-12) {
		t.Fatalf("unexpected diff %#v", diff)
	}

	scaled := a.Scale(2)
	if !floats.EqualWithinAbs(scaled.Z, 6, 1e-12) {
		t.Fatalf("unexpected scale %#v", scaled)
	}

	if !floats.EqualWithinAbs(a.Dot(b), 6, 1e-12) {
		t.Fatalf("unexpected dot %v", a.Dot(b))
	}

	//2.- Magnitude of (3, 4, 0) is the classic 3-4-5 triangle.
	v := Vec3{X: 3, Y: 4, Z: 0}
	if !floats.EqualWithinAbs(v.Magnitude(), 5, 1e-12) {
		t.Fatalf("unexpected magnitude %v", v.Magnitude())
	}
}

func TestGravity(t *testing.T) {
	g := Gravity(-32.17405)
	if g.X != 0 || g.Z != 0 {
		t.Fatalf("gravity must act only on Y: %#v", g)
	}
	if g.Y != -32.17405 {
		t.Fatalf("unexpected gravity magnitude %v", g.Y)
	}
}
