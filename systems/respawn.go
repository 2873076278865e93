package systems

import (
	"log"

	"github.com/automoto/floebrawl/components"
	cfg "github.com/automoto/floebrawl/config"
	"github.com/automoto/floebrawl/shared/gamemath"
	"github.com/automoto/floebrawl/shared/messages"
	"github.com/yohamta/donburi"
)

// UpdateRespawns counts a fall for every body below the death plane and
// moves it back to the respawn point. Velocity is kept. One event is queued
// per fall, in player index order.
func UpdateRespawns(w donburi.World) {
	levelEntry, ok := components.Level.First(w)
	if !ok {
		return
	}
	respawn := components.Level.Get(levelEntry).Arena.Respawn
	space, hasSpace := getSpace(w)

	for _, e := range playersByIndex(w) {
		body := components.Body.Get(e)
		if body.Position.Y >= cfg.Physics.DeathPlaneY {
			continue
		}
		player := components.Player.Get(e)
		player.Score++
		body.Position = gamemath.Vec(respawn.X, respawn.Y)
		if hasSpace {
			components.Object.Get(e).Cover(body.Bounds(), space.Origin)
		}

		log.Printf("player %d respawn, new score: %d", player.Index, player.Score)
		Respawned.Publish(w, messages.RespawnEvent{
			PlayerIndex: player.Index,
			Score:       player.Score,
		})
	}
}
