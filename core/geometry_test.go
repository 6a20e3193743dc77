package core

import (
	"math"
	"testing"
)

func TestVec3Arithmetic(t *testing.T) {
	a := Vec3{X: 1, Y: -2, Z: 3}
	b := Vec3{X: 4, Y: 5, Z: -6}

	if got := a.Add(b); got != (Vec3{X: 5, Y: 3, Z: -3}) {
		t.Fatalf("Add = %v", got)
	}
	if got := a.Sub(b); got != (Vec3{X: -3, Y: -7, Z: 9}) {
		t.Fatalf("Sub = %v", got)
	}
	if got := a.Scale(2); got != (Vec3{X: 2, Y: -4, Z: 6}) {
		t.Fatalf("Scale = %v", got)
	}
	if got := a.Neg(); got != (Vec3{X: -1, Y: 2, Z: -3}) {
		t.Fatalf("Neg = %v", got)
	}
	if got := a.Dot(b); got != 4-10-18 {
		t.Fatalf("Dot = %v", got)
	}
}

func TestVec3Norm(t *testing.T) {
	v := Vec3{X: 3, Y: 4, Z: 12}
	if got := v.Norm(); math.Abs(got-13) > 1e-12 {
		t.Fatalf("Norm = %v", got)
	}
	if got := Zero.Norm(); got != 0 {
		t.Fatalf("Norm of zero = %v", got)
	}
}

func TestVec3DistanceTo(t *testing.T) {
	a := Vec3{X: 1, Y: 1, Z: 1}
	b := Vec3{X: 1, Y: 1, Z: 5}
	if got := a.DistanceTo(b); math.Abs(got-4) > 1e-12 {
		t.Fatalf("DistanceTo = %v", got)
	}
	if got := a.DistanceTo(a); got != 0 {
		t.Fatalf("self distance = %v", got)
	}
}
