package systems

import (
	"github.com/automoto/floebrawl/components"
	"github.com/automoto/floebrawl/shared/gamemath"
	"github.com/yohamta/donburi"
)

// UpdateIntegration advances every player body by one tick with unit
// timestep Euler integration: v += a, p += v, then clears a.
func UpdateIntegration(w donburi.World) {
	space, hasSpace := getSpace(w)
	for _, e := range playersByIndex(w) {
		body := components.Body.Get(e)
		physics := components.Physics.Get(e)

		physics.Velocity = gamemath.Add(physics.Velocity, physics.Acceleration)
		body.Position = gamemath.Add(body.Position, physics.Velocity)
		physics.Acceleration = gamemath.Vec(0, 0)

		if hasSpace {
			// cover the whole step so platforms passed this tick are candidates
			swept := sweptBounds(body, physics)
			components.Object.Get(e).Cover(swept, space.Origin)
		}
	}
}

// sweptBounds is the box around the body before and after this tick's motion.
func sweptBounds(body *components.BodyData, physics *components.PhysicsData) gamemath.AABB {
	prev := body.BoundsAt(gamemath.Sub(body.Position, physics.Velocity))
	curr := body.Bounds()
	return gamemath.AABB{
		Min: gamemath.Vec(min(prev.Min.X, curr.Min.X), min(prev.Min.Y, curr.Min.Y)),
		Max: gamemath.Vec(max(prev.Max.X, curr.Max.X), max(prev.Max.Y, curr.Max.Y)),
	}
}
