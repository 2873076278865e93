// Package game runs the arena simulation without a window. A host feeds one
// Input per tick and reads the views back for presentation.
package game

import (
	"fmt"
	"image/color"
	"log"

	"github.com/automoto/floebrawl/components"
	cfg "github.com/automoto/floebrawl/config"
	"github.com/automoto/floebrawl/shared/gamemath"
	"github.com/automoto/floebrawl/shared/leveldata"
	"github.com/automoto/floebrawl/systems"
	"github.com/automoto/floebrawl/systems/factory"
	"github.com/automoto/floebrawl/tags"
	"github.com/yohamta/donburi"
)

// PlayerInput is one player's intent for a tick. Move is clamped to unit
// length. Jump and Special are the raw trigger state; holding one acts only
// on the tick it goes down.
type PlayerInput struct {
	MoveX, MoveY float64
	Jump         bool
	Special      bool
}

// Input is everything the host feeds into one tick.
type Input struct {
	Players map[int]PlayerInput // keyed by player index
	Start   bool                // leave the menu
	Rematch bool                // leave the results screen
}

// BodyView is the read-only state of a player body.
type BodyView struct {
	PlayerIndex    int
	X, Y           float64 // centre, world space with y up
	HalfWidth      float64
	HalfHeight     float64
	VelocityX      float64
	VelocityY      float64
	Mass           float64
	Grounded       bool
	Facing         float64
	Score          int
	SpecialCharged bool
	Tint           color.RGBA
}

// PlatformView is the read-only state of a platform.
type PlatformView struct {
	X, Y       float64
	HalfWidth  float64
	HalfHeight float64
}

// RoundResult is the snapshot taken when a round ended.
type RoundResult struct {
	Round       int
	Scores      []components.PlayerScore
	WinnerIndex int // 0 when nobody stayed at or below the losing score
	WinnerName  string
}

type Game struct {
	world   donburi.World
	systems []func(donburi.World)
	ticks   uint64
}

// New builds a game in the menu state for the given arena and player
// indexes. With cfg.Debug.SkipMenu the first round starts immediately.
func New(arena *leveldata.Arena, roster []int) (*Game, error) {
	if arena == nil {
		return nil, fmt.Errorf("new game: nil arena")
	}
	w := donburi.NewWorld()
	if _, err := factory.CreateLevel(w, arena, roster); err != nil {
		return nil, fmt.Errorf("new game: %w", err)
	}
	factory.CreateMatch(w, roster)
	systems.RegisterHandlers(w)

	g := &Game{
		world: w,
		systems: []func(donburi.World){
			systems.WhilePlaying(systems.UpdateForces),
			systems.WhilePlaying(systems.UpdateIntegration),
			systems.WhilePlaying(systems.UpdateFacing),
			systems.WhilePlaying(systems.UpdatePlatformCollisions),
			systems.WhilePlaying(systems.UpdatePlayerCollisions),
			systems.WhilePlaying(systems.UpdateRespawns),
			systems.UpdateEvents,
		},
	}

	if cfg.Debug.SkipMenu {
		systems.StartMatch(w)
		if err := systems.UpdateMatch(w); err != nil {
			return nil, fmt.Errorf("new game: %w", err)
		}
	}
	log.Printf("game ready: %d platforms, players %v", len(arena.Platforms), roster)
	return g, nil
}

// Tick advances the simulation by one fixed step. Input that does not
// apply to the current state is ignored. A state change requested during
// the tick takes effect at its end.
func (g *Game) Tick(in Input) {
	switch g.State() {
	case cfg.MatchStateMenu:
		if in.Start {
			systems.StartMatch(g.world)
		}
	case cfg.MatchStatePlaying:
		g.applyInput(in)
	case cfg.MatchStateRoundOver:
		if in.Rematch {
			systems.Rematch(g.world)
		}
	}

	for _, system := range g.systems {
		system(g.world)
	}
	if err := systems.UpdateMatch(g.world); err != nil {
		// rosters are checked against the arena in New
		log.Panicf("match transition: %v", err)
	}
	g.ticks++
}

func (g *Game) applyInput(in Input) {
	tags.Player.Each(g.world, func(e *donburi.Entry) {
		idx := components.Player.Get(e).Index
		pi := in.Players[idx]
		intent := components.Intent.Get(e)
		intent.Move = gamemath.Vec(pi.MoveX, pi.MoveY)
		// triggers fire on the rising edge only
		intent.Jump = pi.Jump && !intent.JumpHeld
		intent.Special = pi.Special && !intent.SpecialHeld
		intent.JumpHeld = pi.Jump
		intent.SpecialHeld = pi.Special
	})
}

func (g *Game) match() *components.MatchData {
	e, ok := components.Match.First(g.world)
	if !ok {
		panic("game: match entity missing")
	}
	return components.Match.Get(e)
}

// State returns the current match state.
func (g *Game) State() cfg.MatchStateID {
	return g.match().State
}

// Round returns the number of rounds started so far.
func (g *Game) Round() int {
	return g.match().Round
}

// Ticks returns how many ticks have run.
func (g *Game) Ticks() uint64 {
	return g.ticks
}

// Bodies returns every player body ordered by player index. Empty outside
// of a round.
func (g *Game) Bodies() []BodyView {
	var views []BodyView
	for _, idx := range g.roster() {
		e, ok := systems.FindPlayer(g.world, idx)
		if !ok {
			continue
		}
		body := components.Body.Get(e)
		physics := components.Physics.Get(e)
		player := components.Player.Get(e)
		special := components.SpecialMove.Get(e)
		views = append(views, BodyView{
			PlayerIndex:    player.Index,
			X:              body.Position.X,
			Y:              body.Position.Y,
			HalfWidth:      body.HalfExtents.X,
			HalfHeight:     body.HalfExtents.Y,
			VelocityX:      physics.Velocity.X,
			VelocityY:      physics.Velocity.Y,
			Mass:           physics.Mass,
			Grounded:       physics.Grounded,
			Facing:         player.Facing,
			Score:          player.Score,
			SpecialCharged: special.Charged,
			Tint:           special.Tint,
		})
	}
	return views
}

// Body returns the view of one player body.
func (g *Game) Body(playerIndex int) (BodyView, bool) {
	for _, b := range g.Bodies() {
		if b.PlayerIndex == playerIndex {
			return b, true
		}
	}
	return BodyView{}, false
}

// Platforms returns every platform in the current round.
func (g *Game) Platforms() []PlatformView {
	var views []PlatformView
	tags.Platform.Each(g.world, func(e *donburi.Entry) {
		body := components.Body.Get(e)
		views = append(views, PlatformView{
			X:          body.Position.X,
			Y:          body.Position.Y,
			HalfWidth:  body.HalfExtents.X,
			HalfHeight: body.HalfExtents.Y,
		})
	})
	return views
}

// Result returns the last round's results while the match shows them.
func (g *Game) Result() (RoundResult, bool) {
	m := g.match()
	if m.State != cfg.MatchStateRoundOver {
		return RoundResult{}, false
	}
	return RoundResult{
		Round:       m.Round,
		Scores:      append([]components.PlayerScore(nil), m.Results...),
		WinnerIndex: m.WinnerIndex,
		WinnerName:  m.WinnerName,
	}, true
}

// ScoreText returns the scoreboard text of a player index.
func (g *Game) ScoreText(playerIndex int) string {
	e, ok := components.Scoreboard.First(g.world)
	if !ok {
		return ""
	}
	return components.Scoreboard.Get(e).Text[playerIndex]
}

func (g *Game) roster() []int {
	e, ok := components.Level.First(g.world)
	if !ok {
		return nil
	}
	return components.Level.Get(e).Roster
}
