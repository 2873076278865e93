package factory

import (
	"github.com/automoto/floebrawl/archetypes"
	"github.com/automoto/floebrawl/components"
	cfg "github.com/automoto/floebrawl/config"
	"github.com/yohamta/donburi"
)

// CreateMatch creates the match singleton in the menu state with a zeroed
// scoreboard for every roster slot.
func CreateMatch(w donburi.World, roster []int) *donburi.Entry {
	match := archetypes.Match.Spawn(w)
	components.Match.SetValue(match, components.MatchData{
		State: cfg.MatchStateMenu,
	})
	text := make(map[int]string, len(roster))
	for _, idx := range roster {
		text[idx] = "0"
	}
	components.Scoreboard.SetValue(match, components.ScoreboardData{Text: text})
	return match
}
