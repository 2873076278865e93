package systems

import (
	"math"
	"testing"

	"github.com/automoto/floebrawl/components"
	cfg "github.com/automoto/floebrawl/config"
	"github.com/automoto/floebrawl/shared/gamemath"
	"github.com/automoto/floebrawl/shared/messages"
	"github.com/yohamta/donburi"
)

func TestMovementForceDependsOnGround(t *testing.T) {
	w := newPlayingWorld(t)
	p1 := mustPlayer(t, w, 1)
	physics := components.Physics.Get(p1)

	physics.Grounded = true
	components.Intent.Get(p1).Move = gamemath.Vec(1, 0)
	UpdateForces(w)
	// gravity is the only other force at rest
	if physics.Acceleration != gamemath.Vec(2, -1) {
		t.Fatalf("grounded acceleration = %v, want (2,-1)", physics.Acceleration)
	}

	physics.Acceleration = gamemath.Vec(0, 0)
	physics.Grounded = false
	UpdateForces(w)
	if physics.Acceleration != gamemath.Vec(1.5, -1) {
		t.Fatalf("airborne acceleration = %v, want (1.5,-1)", physics.Acceleration)
	}
}

func TestMovementIntentIsClamped(t *testing.T) {
	w := newPlayingWorld(t)
	p1 := mustPlayer(t, w, 1)
	physics := components.Physics.Get(p1)
	physics.Grounded = true
	components.Intent.Get(p1).Move = gamemath.Vec(1, 1)

	UpdateForces(w)

	if want := 2 / math.Sqrt2; math.Abs(physics.Acceleration.X-want) > 1e-9 {
		t.Fatalf("ax = %v, want %v", physics.Acceleration.X, want)
	}
	// ground force has no vertical component
	if physics.Acceleration.Y != -1 {
		t.Fatalf("ay = %v, want -1", physics.Acceleration.Y)
	}
}

func TestIntegrationOrder(t *testing.T) {
	w := newPlayingWorld(t)
	p1 := mustPlayer(t, w, 1)
	place(w, p1, 0, 500, 3, 0)
	physics := components.Physics.Get(p1)
	physics.Acceleration = gamemath.Vec(1, -2)

	UpdateIntegration(w)

	if physics.Velocity != gamemath.Vec(4, -2) {
		t.Fatalf("velocity = %v, want (4,-2)", physics.Velocity)
	}
	if p := components.Body.Get(p1).Position; p != gamemath.Vec(4, 498) {
		t.Fatalf("position = %v, want (4,498)", p)
	}
	if physics.Acceleration != gamemath.Vec(0, 0) {
		t.Fatalf("acceleration not cleared: %v", physics.Acceleration)
	}
}

func TestJumpRequiresGround(t *testing.T) {
	w := newPlayingWorld(t)
	p1 := mustPlayer(t, w, 1)
	physics := components.Physics.Get(p1)
	intent := components.Intent.Get(p1)

	physics.Grounded = false
	intent.Jump = true
	UpdateForces(w)
	if physics.Velocity.Y != 0 {
		t.Fatalf("airborne jump changed vy to %v", physics.Velocity.Y)
	}
	if intent.Jump {
		t.Fatalf("jump intent not consumed")
	}

	physics.Grounded = true
	intent.Jump = true
	UpdateForces(w)
	if physics.Velocity.Y != cfg.Player.JumpSpeed {
		t.Fatalf("grounded jump vy = %v, want %v", physics.Velocity.Y, cfg.Player.JumpSpeed)
	}
}

func TestJumpLeavesTheFloor(t *testing.T) {
	w := newPlayingWorld(t)
	p1 := mustPlayer(t, w, 1)
	step(w) // settle and ground

	components.Intent.Get(p1).Jump = true
	step(w)

	if y := components.Body.Get(p1).Position.Y; y <= 50 {
		t.Fatalf("y after jump = %v, want above the floor", y)
	}
	if components.Physics.Get(p1).Grounded {
		t.Fatalf("body still grounded after jumping")
	}
}

func TestFacingThreshold(t *testing.T) {
	w := newPlayingWorld(t)
	p1 := mustPlayer(t, w, 1)
	player := components.Player.Get(p1)
	physics := components.Physics.Get(p1)

	tests := []struct {
		vx   float64
		want float64
	}{
		{-5, cfg.DirectionLeft},
		{4.9, cfg.DirectionLeft},
		{0, cfg.DirectionLeft},
		{5, cfg.DirectionRight},
		{-4, cfg.DirectionRight},
		{-12, cfg.DirectionLeft},
	}
	for _, tt := range tests {
		physics.Velocity.X = tt.vx
		UpdateFacing(w)
		if player.Facing != tt.want {
			t.Fatalf("vx %v: facing = %v, want %v", tt.vx, player.Facing, tt.want)
		}
	}
}

func TestSpecialMoveImpulseAndCooldown(t *testing.T) {
	w := newPlayingWorld(t)
	p1 := mustPlayer(t, w, 1)
	physics := components.Physics.Get(p1)
	special := components.SpecialMove.Get(p1)
	intent := components.Intent.Get(p1)

	var used []messages.SpecialMoveEvent
	SpecialMoveUsed.Subscribe(w, func(w donburi.World, ev messages.SpecialMoveEvent) {
		used = append(used, ev)
	})

	intent.Move = gamemath.Vec(1, 0)
	intent.Special = true
	UpdateForces(w)
	UpdateEvents(w)

	if physics.Velocity != gamemath.Vec(cfg.SpecialMove.Impulse, 0) {
		t.Fatalf("velocity = %v, want impulse along +x", physics.Velocity)
	}
	if physics.Mass != cfg.SpecialMove.Mass {
		t.Fatalf("mass = %v, want %v", physics.Mass, cfg.SpecialMove.Mass)
	}
	if special.Charged || !special.Active || special.Tint != cfg.SpecialMove.ActiveTint {
		t.Fatalf("special state after use = %+v", special)
	}
	if len(used) != 1 || used[0].PlayerIndex != 1 || used[0].DirectionX != 1 {
		t.Fatalf("events = %+v, want one for player 1 along +x", used)
	}

	// held button does nothing while recovering
	for i := 1; i < 10; i++ {
		intent.Move = gamemath.Vec(1, 0)
		intent.Special = true
		UpdateForces(w)
	}
	if physics.Velocity.X != cfg.SpecialMove.Impulse {
		t.Fatalf("second impulse applied during cooldown: vx = %v", physics.Velocity.X)
	}
	if physics.Mass != cfg.SpecialMove.Mass {
		t.Fatalf("mass reverted too early: %v", physics.Mass)
	}

	// the trigger tick does not advance the timer, so 31 more ticks is 31/64 s
	for i := 10; i < 32; i++ {
		UpdateForces(w)
	}
	if special.Elapsed != 31.0/64 || physics.Mass != cfg.SpecialMove.Mass {
		t.Fatalf("elapsed %v: mass = %v, want %v", special.Elapsed, physics.Mass, cfg.SpecialMove.Mass)
	}

	UpdateForces(w)
	if special.Elapsed != cfg.SpecialMove.MassRevertAt || physics.Mass != physics.BaseMass {
		t.Fatalf("elapsed %v: mass = %v, want %v", special.Elapsed, physics.Mass, physics.BaseMass)
	}
	if special.Charged {
		t.Fatalf("charged too early")
	}

	for i := 33; i < 100; i++ {
		UpdateForces(w)
	}
	if special.Charged {
		t.Fatalf("charged before the cooldown finished")
	}

	for i := 100; i < 140; i++ {
		UpdateForces(w)
	}
	if !special.Charged || special.Active || special.Tint != cfg.SpecialMove.IdleTint {
		t.Fatalf("special state after cooldown = %+v", special)
	}

	physics.Velocity = gamemath.Vec(0, 0)
	intent.Move = gamemath.Vec(0, 1)
	intent.Special = true
	UpdateForces(w)
	if physics.Velocity != gamemath.Vec(0, cfg.SpecialMove.Impulse) {
		t.Fatalf("recharged move velocity = %v", physics.Velocity)
	}
}

func TestSpecialMoveFallsBackToVelocity(t *testing.T) {
	w := newPlayingWorld(t)
	p1 := mustPlayer(t, w, 1)
	physics := components.Physics.Get(p1)

	physics.Velocity = gamemath.Vec(0, -3)
	components.Intent.Get(p1).Special = true
	UpdateForces(w)

	if physics.Velocity != gamemath.Vec(0, -3-cfg.SpecialMove.Impulse) {
		t.Fatalf("velocity = %v, want impulse along the current motion", physics.Velocity)
	}
}

func TestSpecialMoveAtRestIsSpent(t *testing.T) {
	w := newPlayingWorld(t)
	p1 := mustPlayer(t, w, 1)
	physics := components.Physics.Get(p1)

	components.Intent.Get(p1).Special = true
	UpdateForces(w)

	if physics.Velocity != gamemath.Vec(0, 0) || !gamemath.IsFinite(physics.Velocity) {
		t.Fatalf("velocity = %v, want zero", physics.Velocity)
	}
	if components.SpecialMove.Get(p1).Charged {
		t.Fatalf("charge should be spent even without a direction")
	}
}
