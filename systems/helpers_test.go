package systems

import (
	"testing"

	"github.com/automoto/floebrawl/components"
	"github.com/automoto/floebrawl/shared/leveldata"
	"github.com/automoto/floebrawl/systems/factory"
	"github.com/yohamta/donburi"
)

func testArena() *leveldata.Arena {
	return &leveldata.Arena{
		Platforms: []leveldata.Rect{
			{Name: "floor", X: 0, Y: 0, W: 600, H: 50},
		},
		SpawnPoints: []leveldata.SpawnPoint{
			{X: -100, Y: 50, PlayerIndex: 1},
			{X: 100, Y: 50, PlayerIndex: 2},
		},
		Respawn:   leveldata.Point{X: 0, Y: 200},
		MapWidth:  2000,
		MapHeight: 2000,
	}
}

// newPlayingWorld returns a world with the test arena and a round in progress.
func newPlayingWorld(t *testing.T) donburi.World {
	t.Helper()
	w := donburi.NewWorld()
	roster := []int{1, 2}
	if _, err := factory.CreateLevel(w, testArena(), roster); err != nil {
		t.Fatalf("CreateLevel: %v", err)
	}
	factory.CreateMatch(w, roster)
	RegisterHandlers(w)

	if !StartMatch(w) {
		t.Fatalf("StartMatch refused")
	}
	if err := UpdateMatch(w); err != nil {
		t.Fatalf("UpdateMatch: %v", err)
	}
	if !IsMatchPlaying(w) {
		t.Fatalf("match not playing after start")
	}
	return w
}

func mustPlayer(t *testing.T, w donburi.World, index int) *donburi.Entry {
	t.Helper()
	e, ok := FindPlayer(w, index)
	if !ok {
		t.Fatalf("player %d not found", index)
	}
	return e
}

// place moves a body and sets its velocity, keeping the broad phase in sync.
func place(w donburi.World, e *donburi.Entry, x, y, vx, vy float64) {
	body := components.Body.Get(e)
	body.Position.X, body.Position.Y = x, y
	physics := components.Physics.Get(e)
	physics.Velocity.X, physics.Velocity.Y = vx, vy
	if space, ok := getSpace(w); ok {
		components.Object.Get(e).Cover(body.Bounds(), space.Origin)
	}
}

// step runs the physics part of a tick.
func step(w donburi.World) {
	UpdateForces(w)
	UpdateIntegration(w)
	UpdateFacing(w)
	UpdatePlatformCollisions(w)
	UpdatePlayerCollisions(w)
	UpdateRespawns(w)
	UpdateEvents(w)
}

func matchOf(t *testing.T, w donburi.World) *components.MatchData {
	t.Helper()
	m, ok := getMatch(w)
	if !ok {
		t.Fatalf("no match")
	}
	return m
}
