package systems

import (
	"github.com/automoto/floebrawl/shared/messages"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

var (
	Respawned         = events.NewEventType[messages.RespawnEvent]()
	SpecialMoveUsed   = events.NewEventType[messages.SpecialMoveEvent]()
	MatchStateChanged = events.NewEventType[messages.MatchStateChangeEvent]()
)

// RegisterHandlers subscribes the match bookkeeping to a world. Call once
// per world.
func RegisterHandlers(w donburi.World) {
	Respawned.Subscribe(w, onRespawnUpdateScoreboard)
	Respawned.Subscribe(w, onRespawnCheckRoundOver)
}

// UpdateEvents dispatches events queued during the tick.
func UpdateEvents(w donburi.World) {
	SpecialMoveUsed.ProcessEvents(w)
	Respawned.ProcessEvents(w)
}
