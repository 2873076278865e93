package gamemath

import (
	"math"
	"testing"

	math2 "github.com/yohamta/donburi/features/math"
)

const eps = 1e-9

func approx(a, b float64) bool {
	return math.Abs(a-b) < eps
}

func TestNormalizeOrZero(t *testing.T) {
	if got := NormalizeOrZero(math2.Vec2{}); got != (math2.Vec2{}) {
		t.Fatalf("NormalizeOrZero(0) = %v, want zero vector", got)
	}
	got := NormalizeOrZero(Vec(3, 4))
	if !approx(got.X, 0.6) || !approx(got.Y, 0.8) {
		t.Fatalf("NormalizeOrZero(3,4) = %v, want (0.6,0.8)", got)
	}
}

func TestClampLength(t *testing.T) {
	short := Vec(0.3, 0.4)
	if got := ClampLength(short, 1); got != short {
		t.Fatalf("ClampLength kept %v as %v", short, got)
	}
	got := ClampLength(Vec(-1, 1), 1)
	if !approx(Length(got), 1) {
		t.Fatalf("ClampLength length = %f, want 1", Length(got))
	}
}

func TestDragOpposesVelocity(t *testing.T) {
	velocities := []math2.Vec2{
		Vec(3, 4),
		Vec(-10, 0),
		Vec(0, -11.6),
		Vec(0.001, -0.002),
		Vec(250, 90),
	}
	for _, v := range velocities {
		d := Drag(v, 0.005, 0.05)
		if !IsFinite(d) {
			t.Fatalf("Drag(%v) = %v, not finite", v, d)
		}
		if dot := d.X*v.X + d.Y*v.Y; dot >= 0 {
			t.Fatalf("Drag(%v) = %v does not oppose velocity (dot %f)", v, d, dot)
		}
		// parallel: cross product is zero
		if cross := d.X*v.Y - d.Y*v.X; math.Abs(cross) > 1e-6 {
			t.Fatalf("Drag(%v) = %v not parallel to velocity", v, d)
		}
	}
}

func TestDragMagnitude(t *testing.T) {
	d := Drag(Vec(3, 4), 0.005, 0.05)
	// 0.005*25 + 0.05*5 = 0.375 along -(0.6, 0.8)
	if !approx(d.X, -0.225) || !approx(d.Y, -0.3) {
		t.Fatalf("Drag(3,4) = %v, want (-0.225,-0.3)", d)
	}
}

func TestDragZeroVelocity(t *testing.T) {
	d := Drag(math2.Vec2{}, 0.005, 0.05)
	if d != (math2.Vec2{}) {
		t.Fatalf("Drag(0) = %v, want zero", d)
	}
}

func TestElasticResponseEqualMassesExchange(t *testing.T) {
	v1, v2 := Vec(5, 0), Vec(-5, 0)
	before := Momentum(1, v1, 1, v2)

	n1, n2 := ElasticResponse(1, v1, 1, v2)
	if n1 != Vec(-5, 0) || n2 != Vec(5, 0) {
		t.Fatalf("ElasticResponse = %v, %v, want (-5,0), (5,0)", n1, n2)
	}
	after := Momentum(1, n1, 1, n2)
	if !approx(before.X, after.X) || !approx(before.Y, after.Y) {
		t.Fatalf("momentum %v -> %v, want conserved", before, after)
	}
}

func TestElasticResponseConservesMomentum(t *testing.T) {
	tests := []struct {
		m1, m2 float64
		v1, v2 math2.Vec2
	}{
		{4, 1, Vec(10, 0), Vec(0, 0)},
		{1, 4, Vec(-3, 7), Vec(2, -1)},
		{2.5, 0.5, Vec(0.1, 40), Vec(-50, 3)},
	}
	for _, tt := range tests {
		before := Momentum(tt.m1, tt.v1, tt.m2, tt.v2)
		n1, n2 := ElasticResponse(tt.m1, tt.v1, tt.m2, tt.v2)
		after := Momentum(tt.m1, n1, tt.m2, n2)
		if math.Abs(before.X-after.X) > 1e-9 || math.Abs(before.Y-after.Y) > 1e-9 {
			t.Fatalf("masses %v/%v: momentum %v -> %v", tt.m1, tt.m2, before, after)
		}
	}

	n1, n2 := ElasticResponse(4, Vec(10, 0), 1, Vec(0, 0))
	if !approx(n1.X, 6) || !approx(n2.X, 16) {
		t.Fatalf("heavy hit = %v, %v, want (6,0), (16,0)", n1, n2)
	}
}
