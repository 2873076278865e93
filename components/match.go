package components

import (
	cfg "github.com/automoto/floebrawl/config"
	"github.com/yohamta/donburi"
)

// PlayerScore is a player's final score in a finished round
type PlayerScore struct {
	PlayerIndex int
	Score       int
}

// MatchData stores the current match state and the last round's results.
// This is a singleton component - only one match exists at a time.
type MatchData struct {
	State     cfg.MatchStateID
	NextState cfg.MatchStateID
	HasNext   bool // a transition is queued for the end of the tick

	Round       int
	Results     []PlayerScore // snapshot taken when the round ended
	WinnerIndex int           // 0 when no player is below the losing score
	WinnerName  string
}

var Match = donburi.NewComponentType[MatchData]()

// RequestState queues a transition. The first request in a tick wins.
func (m *MatchData) RequestState(next cfg.MatchStateID) bool {
	if m.HasNext || next == m.State {
		return false
	}
	m.NextState = next
	m.HasNext = true
	return true
}

// GetPlayerScore returns the result entry for a player, or nil
func (m *MatchData) GetPlayerScore(playerIndex int) *PlayerScore {
	for i := range m.Results {
		if m.Results[i].PlayerIndex == playerIndex {
			return &m.Results[i]
		}
	}
	return nil
}

// GetLeader returns the player with the lowest score strictly below
// limit. Ties go to the earliest result. Returns 0 if nobody qualifies.
func (m *MatchData) GetLeader(limit int) int {
	best := limit
	leader := 0
	for _, s := range m.Results {
		if s.Score < best {
			best = s.Score
			leader = s.PlayerIndex
		}
	}
	return leader
}
