package systems

import (
	"log"

	"github.com/automoto/floebrawl/components"
	cfg "github.com/automoto/floebrawl/config"
	"github.com/automoto/floebrawl/shared/gamemath"
	"github.com/automoto/floebrawl/shared/messages"
	"github.com/yohamta/donburi"
)

// UpdateForces accumulates this tick's forces into every player body:
// movement, drag, gravity, then the jump and special move velocity changes.
// Jump and Special intents are consumed.
func UpdateForces(w donburi.World) {
	dt := cfg.TickDelta()
	for _, e := range playersByIndex(w) {
		player := components.Player.Get(e)
		physics := components.Physics.Get(e)
		intent := components.Intent.Get(e)
		special := components.SpecialMove.Get(e)

		applyMovementForce(physics, intent)
		applyDrag(physics)
		applyGravity(physics)
		applyJump(physics, intent)
		updateSpecialMove(w, player, physics, intent, special, dt)

		intent.Jump = false
		intent.Special = false
	}
}

func applyMovementForce(physics *components.PhysicsData, intent *components.IntentData) {
	dir := gamemath.ClampLength(intent.Move, 1)
	force := physics.AirForce
	if physics.Grounded {
		force = physics.GroundForce
	}
	physics.Acceleration = gamemath.Add(physics.Acceleration, gamemath.MulComponents(dir, force))
}

func applyDrag(physics *components.PhysicsData) {
	drag := gamemath.Drag(physics.Velocity, cfg.Physics.DragQuadratic, cfg.Physics.DragLinear)
	physics.Acceleration = gamemath.Add(physics.Acceleration, drag)
}

func applyGravity(physics *components.PhysicsData) {
	physics.Acceleration = gamemath.Add(physics.Acceleration, physics.Gravity)
}

// applyJump uses the grounded flag from the previous tick's collisions.
func applyJump(physics *components.PhysicsData, intent *components.IntentData) {
	if intent.Jump && physics.Grounded {
		physics.Velocity.Y += cfg.Player.JumpSpeed
	}
}

func updateSpecialMove(
	w donburi.World,
	player *components.PlayerData,
	physics *components.PhysicsData,
	intent *components.IntentData,
	special *components.SpecialMoveData,
	dt float64,
) {
	if !special.Charged {
		before := special.Elapsed
		current, finished := special.Timer.Update(float32(dt))
		special.Elapsed = float64(current)

		if before < cfg.SpecialMove.MassRevertAt && special.Elapsed >= cfg.SpecialMove.MassRevertAt {
			physics.Mass = physics.BaseMass
		}
		if finished {
			special.Charged = true
			special.Active = false
			physics.Mass = physics.BaseMass
			special.Elapsed = 0
			special.Tint = cfg.SpecialMove.IdleTint
			special.Timer.Reset()
			log.Printf("player %d special move charged", player.Index)
		}
	}

	if !intent.Special || !special.Charged {
		return
	}

	dir := gamemath.NormalizeOrZero(intent.Move)
	if gamemath.IsZero(dir) {
		dir = gamemath.NormalizeOrZero(physics.Velocity)
	}
	physics.Velocity = gamemath.Add(physics.Velocity, gamemath.Scale(dir, cfg.SpecialMove.Impulse))
	physics.Mass = cfg.SpecialMove.Mass

	special.Charged = false
	special.Active = true
	special.Elapsed = 0
	special.Tint = cfg.SpecialMove.ActiveTint
	special.Timer.Reset()

	log.Printf("player %d special move", player.Index)
	SpecialMoveUsed.Publish(w, messages.SpecialMoveEvent{
		PlayerIndex: player.Index,
		DirectionX:  dir.X,
		DirectionY:  dir.Y,
	})
}
