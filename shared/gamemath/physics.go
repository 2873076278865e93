// Package gamemath holds the pure vector and force math used by the
// simulation. It has no dependencies on ebiten, resolv or any ECS world.
package gamemath

import (
	"math"

	math2 "github.com/yohamta/donburi/features/math"
)

// Vec builds a vector from its components.
func Vec(x, y float64) math2.Vec2 {
	return math2.Vec2{X: x, Y: y}
}

// Add returns a + b.
func Add(a, b math2.Vec2) math2.Vec2 {
	return math2.Vec2{X: a.X + b.X, Y: a.Y + b.Y}
}

// Sub returns a - b.
func Sub(a, b math2.Vec2) math2.Vec2 {
	return math2.Vec2{X: a.X - b.X, Y: a.Y - b.Y}
}

// Scale returns v * s.
func Scale(v math2.Vec2, s float64) math2.Vec2 {
	return math2.Vec2{X: v.X * s, Y: v.Y * s}
}

// MulComponents multiplies two vectors component-wise.
func MulComponents(a, b math2.Vec2) math2.Vec2 {
	return math2.Vec2{X: a.X * b.X, Y: a.Y * b.Y}
}

// Length returns |v|.
func Length(v math2.Vec2) float64 {
	return math.Hypot(v.X, v.Y)
}

// LengthSquared returns |v|^2.
func LengthSquared(v math2.Vec2) float64 {
	return v.X*v.X + v.Y*v.Y
}

// IsZero reports whether both components are exactly zero.
func IsZero(v math2.Vec2) bool {
	return v.X == 0 && v.Y == 0
}

// IsFinite reports whether neither component is NaN or infinite.
func IsFinite(v math2.Vec2) bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) &&
		!math.IsNaN(v.Y) && !math.IsInf(v.Y, 0)
}

// NormalizeOrZero returns v scaled to unit length, or the zero vector when
// v has no length (never NaN).
func NormalizeOrZero(v math2.Vec2) math2.Vec2 {
	l := Length(v)
	if l == 0 || math.IsNaN(l) || math.IsInf(l, 0) {
		return math2.Vec2{}
	}
	return math2.Vec2{X: v.X / l, Y: v.Y / l}
}

// ClampLength shortens v to maxLen when it is longer, keeping its direction.
func ClampLength(v math2.Vec2, maxLen float64) math2.Vec2 {
	l := Length(v)
	if l <= maxLen {
		return v
	}
	return Scale(NormalizeOrZero(v), maxLen)
}

// Drag returns the quadratic-plus-linear drag force opposing v:
// -(quadratic*|v|^2 + linear*|v|) * normalize(v). Zero for a zero velocity.
func Drag(v math2.Vec2, quadratic, linear float64) math2.Vec2 {
	l := Length(v)
	if l == 0 {
		return math2.Vec2{}
	}
	magnitude := quadratic*l*l + linear*l
	return Scale(NormalizeOrZero(v), -magnitude)
}

// ElasticResponse returns the post-collision velocities of two bodies using
// the two-body elastic formula v' = 2*(m1*v1 + m2*v2)/(m1+m2) - v, applied to
// both components. Masses must be positive.
func ElasticResponse(m1 float64, v1 math2.Vec2, m2 float64, v2 math2.Vec2) (math2.Vec2, math2.Vec2) {
	centre := Scale(Add(Scale(v1, m1), Scale(v2, m2)), 2/(m1+m2))
	return Sub(centre, v1), Sub(centre, v2)
}

// Momentum returns m1*v1 + m2*v2.
func Momentum(m1 float64, v1 math2.Vec2, m2 float64, v2 math2.Vec2) math2.Vec2 {
	return Add(Scale(v1, m1), Scale(v2, m2))
}
