package components

import (
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Index  int     // 1-based player slot
	Facing float64 // cfg.DirectionLeft or cfg.DirectionRight
	Score  int     // falls through the death plane this round
}

var Player = donburi.NewComponentType[PlayerData]()
