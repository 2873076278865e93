package systems

import (
	"math"

	"github.com/automoto/floebrawl/components"
	cfg "github.com/automoto/floebrawl/config"
	"github.com/yohamta/donburi"
)

// UpdateFacing turns players towards their horizontal motion once they move
// fast enough. Slower bodies keep their previous facing.
func UpdateFacing(w donburi.World) {
	for _, e := range playersByIndex(w) {
		player := components.Player.Get(e)
		vx := components.Physics.Get(e).Velocity.X
		if math.Abs(vx) < cfg.Player.FacingSpeedThreshold {
			continue
		}
		if vx > 0 {
			player.Facing = cfg.DirectionRight
		} else {
			player.Facing = cfg.DirectionLeft
		}
	}
}
