package components

import (
	"github.com/automoto/floebrawl/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// BodyData is the axis-aligned rectangle of a player or platform in world
// space (y up). Position is the centre of the rectangle.
type BodyData struct {
	Position    math.Vec2
	HalfExtents math.Vec2
}

var Body = donburi.NewComponentType[BodyData]()

// Bounds returns the box at the current position.
func (b *BodyData) Bounds() gamemath.AABB {
	return gamemath.NewAABB(b.Position, b.HalfExtents)
}

// BoundsAt returns the box as if centred on p.
func (b *BodyData) BoundsAt(p math.Vec2) gamemath.AABB {
	return gamemath.NewAABB(p, b.HalfExtents)
}
