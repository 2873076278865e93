package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// IntentData is the per-tick input of one player, written by the input layer
// before the tick runs. Jump and Special are set only on the tick the
// trigger goes down; JumpHeld and SpecialHeld remember the raw trigger from
// the previous tick.
type IntentData struct {
	Move    math.Vec2
	Jump    bool
	Special bool

	JumpHeld    bool
	SpecialHeld bool
}

var Intent = donburi.NewComponentType[IntentData]()
