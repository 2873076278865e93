package components

import "github.com/yohamta/donburi"

// ScoreboardData holds the score text shown per player index.
// This is a singleton component that outlives rounds.
type ScoreboardData struct {
	Text map[int]string
}

var Scoreboard = donburi.NewComponentType[ScoreboardData]()
