package gamemath

import (
	"math"

	math2 "github.com/yohamta/donburi/features/math"
)

// AABB is an axis-aligned box given by its min and max corners.
type AABB struct {
	Min, Max math2.Vec2
}

// NewAABB builds a box from its centre and half extents.
func NewAABB(center, half math2.Vec2) AABB {
	return AABB{Min: Sub(center, half), Max: Add(center, half)}
}

// Center returns the midpoint of the box.
func (a AABB) Center() math2.Vec2 {
	return Vec((a.Min.X+a.Max.X)/2, (a.Min.Y+a.Max.Y)/2)
}

// Intersects reports whether two boxes overlap. Edges are closed, so boxes
// that only touch still intersect.
func (a AABB) Intersects(b AABB) bool {
	xOverlap := a.Min.X <= b.Max.X && a.Max.X >= b.Min.X
	yOverlap := a.Min.Y <= b.Max.Y && a.Max.Y >= b.Min.Y
	return xOverlap && yOverlap
}

// ClosestPoint returns the point inside the box nearest to p.
func (a AABB) ClosestPoint(p math2.Vec2) math2.Vec2 {
	return Vec(
		math.Min(math.Max(p.X, a.Min.X), a.Max.X),
		math.Min(math.Max(p.Y, a.Min.Y), a.Max.Y),
	)
}

// Quadrant is the side of the other body a moving body approached from.
type Quadrant int

const (
	LowerRight Quadrant = iota
	LowerLeft
	UpperRight
	UpperLeft
)

var quadrantNames = [...]string{"lower-right", "lower-left", "upper-right", "upper-left"}

func (q Quadrant) String() string {
	if q < LowerRight || q > UpperLeft {
		return "unknown"
	}
	return quadrantNames[q]
}

// ClassifyQuadrant picks the contact quadrant from an offset measured from
// the other body towards the moving one. Both boundaries are inclusive:
// x <= 0 is left and y >= 0 is upper.
func ClassifyQuadrant(offset math2.Vec2) Quadrant {
	left := offset.X <= 0
	upper := offset.Y >= 0
	switch {
	case !left && !upper:
		return LowerRight
	case left && !upper:
		return LowerLeft
	case !left && upper:
		return UpperRight
	default:
		return UpperLeft
	}
}

// Upper reports whether the moving body was above the other body.
func (q Quadrant) Upper() bool {
	return q == UpperRight || q == UpperLeft
}

// Corners returns the pair of facing corners for the quadrant: the corner of
// the moving box and the corner of the other box it is pushed back to.
func (q Quadrant) Corners(moving, other AABB) (movingCorner, otherCorner math2.Vec2) {
	switch q {
	case LowerRight:
		return Vec(moving.Min.X, moving.Max.Y), Vec(other.Max.X, other.Min.Y)
	case LowerLeft:
		return moving.Max, other.Min
	case UpperRight:
		return moving.Min, other.Max
	default: // UpperLeft
		return Vec(moving.Max.X, moving.Min.Y), Vec(other.Min.X, other.Max.Y)
	}
}

// Axis is the axis along which a contact is resolved.
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

func (a Axis) String() string {
	if a == AxisX {
		return "x"
	}
	return "y"
}

// ImpactTime estimates how long ago, in ticks, the corners met along one
// axis: -distance / velocity. A zero velocity returns +Inf, which is never
// picked as the earliest axis.
func ImpactTime(distance, velocity float64) float64 {
	if velocity == 0 {
		return math.Inf(1)
	}
	return -distance / velocity
}

// ResolutionAxis resolves along X when tx > 0 and tx < |ty|, otherwise Y.
func ResolutionAxis(distance, velocity math2.Vec2) Axis {
	tx := ImpactTime(distance.X, velocity.X)
	ty := ImpactTime(distance.Y, velocity.Y)
	if tx > 0 && tx < math.Abs(ty) {
		return AxisX
	}
	return AxisY
}

// Contact describes how to separate a moving box from another box.
type Contact struct {
	Quadrant Quadrant
	Distance math2.Vec2 // other corner minus moving corner
	Axis     Axis
}

// Classify builds the contact for two overlapping boxes given the offset used
// for quadrant selection and the velocity the moving box approached with.
func Classify(moving, other AABB, offset, velocity math2.Vec2) Contact {
	q := ClassifyQuadrant(offset)
	mc, oc := q.Corners(moving, other)
	dist := Sub(oc, mc)
	return Contact{
		Quadrant: q,
		Distance: dist,
		Axis:     ResolutionAxis(dist, velocity),
	}
}

// StaticContact tests a moving box against an immovable box. prev is the
// moving box before this tick's motion and curr is where it is now. The
// quadrant comes from the point of prev closest to the static centre.
func StaticContact(prev, curr, static AABB, velocity math2.Vec2) (Contact, bool) {
	if !curr.Intersects(static) {
		return Contact{}, false
	}
	center := static.Center()
	offset := Sub(prev.ClosestPoint(center), center)
	return Classify(curr, static, offset, velocity), true
}

// DynamicContact tests two moving boxes. prevOffset is the difference of the
// two centres before this tick's motion (a - b) and relVelocity is va - vb.
func DynamicContact(a, b AABB, prevOffset, relVelocity math2.Vec2) (Contact, bool) {
	if !a.Intersects(b) {
		return Contact{}, false
	}
	return Classify(a, b, prevOffset, relVelocity), true
}
