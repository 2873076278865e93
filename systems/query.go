package systems

import (
	"sort"

	"github.com/automoto/floebrawl/components"
	"github.com/automoto/floebrawl/tags"
	"github.com/yohamta/donburi"
)

// playersByIndex returns every player body ordered by player index, so
// systems that touch several bodies run in a fixed order.
func playersByIndex(w donburi.World) []*donburi.Entry {
	var players []*donburi.Entry
	tags.Player.Each(w, func(e *donburi.Entry) {
		players = append(players, e)
	})
	sort.Slice(players, func(i, j int) bool {
		return components.Player.Get(players[i]).Index < components.Player.Get(players[j]).Index
	})
	return players
}

// FindPlayer returns the body of a player index.
func FindPlayer(w donburi.World, index int) (*donburi.Entry, bool) {
	var found *donburi.Entry
	tags.Player.Each(w, func(e *donburi.Entry) {
		if components.Player.Get(e).Index == index {
			found = e
		}
	})
	return found, found != nil
}

func getSpace(w donburi.World) (*components.SpaceData, bool) {
	e, ok := components.Space.First(w)
	if !ok {
		return nil, false
	}
	return components.Space.Get(e), true
}

func getMatch(w donburi.World) (*components.MatchData, bool) {
	e, ok := components.Match.First(w)
	if !ok {
		return nil, false
	}
	return components.Match.Get(e), true
}
