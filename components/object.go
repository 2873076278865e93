package components

import (
	"github.com/automoto/floebrawl/shared/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// ObjectData mirrors a body into the broad-phase space. The object is padded
// by Skin on every side so bodies that only touch still land in a shared cell.
type ObjectData struct {
	*resolv.Object
	Skin float64
}

var Object = donburi.NewComponentType[ObjectData]()

// Cover moves the object over box, shifted into space coordinates by origin.
func (o *ObjectData) Cover(box gamemath.AABB, origin math.Vec2) {
	o.X = box.Min.X - o.Skin - origin.X
	o.Y = box.Min.Y - o.Skin - origin.Y
	o.W = box.Max.X - box.Min.X + 2*o.Skin
	o.H = box.Max.Y - box.Min.Y + 2*o.Skin
	o.Update()
}
