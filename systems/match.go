package systems

import (
	"fmt"
	"log"
	"strconv"

	"github.com/automoto/floebrawl/components"
	cfg "github.com/automoto/floebrawl/config"
	"github.com/automoto/floebrawl/shared/messages"
	"github.com/automoto/floebrawl/systems/factory"
	"github.com/yohamta/donburi"
)

// StartMatch queues the move from the menu into the first round.
func StartMatch(w donburi.World) bool {
	match, ok := getMatch(w)
	if !ok || match.State != cfg.MatchStateMenu {
		return false
	}
	return match.RequestState(cfg.MatchStatePlaying)
}

// Rematch queues a fresh round after the results screen.
func Rematch(w donburi.World) bool {
	match, ok := getMatch(w)
	if !ok || match.State != cfg.MatchStateRoundOver {
		return false
	}
	return match.RequestState(cfg.MatchStatePlaying)
}

// IsMatchPlaying returns true if the match is in the playing state
func IsMatchPlaying(w donburi.World) bool {
	match, ok := getMatch(w)
	return ok && match.State == cfg.MatchStatePlaying
}

// WhilePlaying wraps a system so it only runs during a round.
func WhilePlaying(system func(donburi.World)) func(donburi.World) {
	return func(w donburi.World) {
		if IsMatchPlaying(w) {
			system(w)
		}
	}
}

// UpdateMatch applies the transition queued this tick, if any. It runs last
// so every system in the tick saw the same state.
func UpdateMatch(w donburi.World) error {
	match, ok := getMatch(w)
	if !ok || !match.HasNext {
		return nil
	}
	prev, next := match.State, match.NextState
	match.HasNext = false

	exitState(w, match, prev)
	match.State = next
	if err := enterState(w, match, next); err != nil {
		return fmt.Errorf("enter %s: %w", next, err)
	}

	log.Printf("match: %s -> %s (round %d)", prev, next, match.Round)
	MatchStateChanged.Publish(w, messages.MatchStateChangeEvent{
		PreviousState: int(prev),
		NewState:      int(next),
		Round:         match.Round,
	})
	MatchStateChanged.ProcessEvents(w)
	return nil
}

func exitState(w donburi.World, match *components.MatchData, state cfg.MatchStateID) {
	switch state {
	case cfg.MatchStatePlaying:
		factory.DestroyRound(w)
	case cfg.MatchStateRoundOver:
		match.Results = nil
		match.WinnerIndex = 0
		match.WinnerName = ""
	}
}

func enterState(w donburi.World, match *components.MatchData, state cfg.MatchStateID) error {
	switch state {
	case cfg.MatchStatePlaying:
		match.Round++
		resetScoreboard(w)
		return factory.CreateRound(w)
	case cfg.MatchStateRoundOver:
		determineWinner(match)
	}
	return nil
}

// determineWinner picks the lowest score among the round results. Nobody
// wins if every score passed the losing score.
func determineWinner(match *components.MatchData) {
	match.WinnerIndex = match.GetLeader(cfg.Match.LoseScore + 1)
	match.WinnerName = PlayerName(match.WinnerIndex)
}

// PlayerName returns the display name of a player index.
func PlayerName(index int) string {
	if name, ok := cfg.Match.PlayerNames[index]; ok {
		return name
	}
	return cfg.Match.UnknownName
}

func resetScoreboard(w donburi.World) {
	e, ok := components.Scoreboard.First(w)
	if !ok {
		return
	}
	board := components.Scoreboard.Get(e)
	for idx := range board.Text {
		board.Text[idx] = "0"
	}
}

func onRespawnUpdateScoreboard(w donburi.World, ev messages.RespawnEvent) {
	e, ok := components.Scoreboard.First(w)
	if !ok {
		return
	}
	board := components.Scoreboard.Get(e)
	if board.Text == nil {
		board.Text = make(map[int]string)
	}
	board.Text[ev.PlayerIndex] = strconv.Itoa(ev.Score)
}

// onRespawnCheckRoundOver ends the round once a score passes the losing
// score, snapshotting every player's score before the bodies go away.
func onRespawnCheckRoundOver(w donburi.World, ev messages.RespawnEvent) {
	if ev.Score <= cfg.Match.LoseScore {
		return
	}
	match, ok := getMatch(w)
	if !ok || match.State != cfg.MatchStatePlaying {
		return
	}
	if !match.RequestState(cfg.MatchStateRoundOver) {
		return
	}

	players := playersByIndex(w)
	match.Results = make([]components.PlayerScore, 0, len(players))
	for _, e := range players {
		p := components.Player.Get(e)
		match.Results = append(match.Results, components.PlayerScore{
			PlayerIndex: p.Index,
			Score:       p.Score,
		})
	}
	log.Printf("player %d passed %d falls, round over", ev.PlayerIndex, cfg.Match.LoseScore)
}
