package components

import (
	"github.com/automoto/floebrawl/shared/leveldata"
	"github.com/yohamta/donburi"
)

// LevelData is the arena layout and the roster of player slots that get a
// body each round. It outlives rounds.
type LevelData struct {
	Arena  *leveldata.Arena
	Roster []int
}

var Level = donburi.NewComponentType[LevelData]()
