package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// SpaceData is the broad-phase collision space. resolv cells start at zero,
// so world coordinates are shifted by Origin before they reach the space.
type SpaceData struct {
	Space  *resolv.Space
	Origin math.Vec2
}

var Space = donburi.NewComponentType[SpaceData]()
