package systems

import (
	"github.com/automoto/floebrawl/components"
	"github.com/automoto/floebrawl/shared/gamemath"
	"github.com/automoto/floebrawl/tags"
	"github.com/yohamta/donburi"
)

// UpdatePlatformCollisions pushes every player body out of the platforms it
// overlaps and recomputes the grounded flag from scratch. Candidates come
// from the broad-phase space; the exact test is a closed AABB overlap.
func UpdatePlatformCollisions(w donburi.World) {
	space, ok := getSpace(w)
	if !ok {
		return
	}
	for _, e := range playersByIndex(w) {
		body := components.Body.Get(e)
		physics := components.Physics.Get(e)
		obj := components.Object.Get(e)

		physics.Grounded = false
		for _, platform := range platformCandidates(obj) {
			resolvePlatformContact(body, physics, components.Body.Get(platform))
		}
		obj.Cover(body.Bounds(), space.Origin)
	}
}

func platformCandidates(obj *components.ObjectData) []*donburi.Entry {
	check := obj.Check(0, 0, tags.ResolvPlatform)
	if check == nil {
		return nil
	}
	var platforms []*donburi.Entry
	for _, o := range check.ObjectsByTags(tags.ResolvPlatform) {
		if entry, ok := o.Data.(*donburi.Entry); ok && entry.Valid() {
			platforms = append(platforms, entry)
		}
	}
	return platforms
}

// resolvePlatformContact separates a body from one platform along the axis
// it most likely crossed first and zeroes that velocity component. Landing
// on top grounds the body.
func resolvePlatformContact(body *components.BodyData, physics *components.PhysicsData, platform *components.BodyData) {
	// recomputed per platform, earlier contacts may have moved the body
	prev := body.BoundsAt(gamemath.Sub(body.Position, physics.Velocity))
	contact, ok := gamemath.StaticContact(prev, body.Bounds(), platform.Bounds(), physics.Velocity)
	if !ok {
		return
	}

	switch contact.Axis {
	case gamemath.AxisX:
		body.Position.X += contact.Distance.X
		physics.Velocity.X = 0
	case gamemath.AxisY:
		body.Position.Y += contact.Distance.Y
		physics.Velocity.Y = 0
		if contact.Quadrant.Upper() {
			physics.Grounded = true
		}
	}
}

// UpdatePlayerCollisions resolves every overlapping pair of player bodies.
// Pairs are visited in player index order. Each body moves half of the
// overlap and both get the elastic response.
func UpdatePlayerCollisions(w donburi.World) {
	players := playersByIndex(w)
	for i := 0; i < len(players); i++ {
		for j := i + 1; j < len(players); j++ {
			resolvePlayerContact(players[i], players[j])
		}
	}

	space, ok := getSpace(w)
	if !ok {
		return
	}
	for _, e := range players {
		components.Object.Get(e).Cover(components.Body.Get(e).Bounds(), space.Origin)
	}
}

func resolvePlayerContact(a, b *donburi.Entry) {
	bodyA, bodyB := components.Body.Get(a), components.Body.Get(b)
	physA, physB := components.Physics.Get(a), components.Physics.Get(b)

	prevOffset := gamemath.Sub(
		gamemath.Sub(bodyA.Position, physA.Velocity),
		gamemath.Sub(bodyB.Position, physB.Velocity),
	)
	relVelocity := gamemath.Sub(physA.Velocity, physB.Velocity)
	contact, ok := gamemath.DynamicContact(bodyA.Bounds(), bodyB.Bounds(), prevOffset, relVelocity)
	if !ok {
		return
	}

	half := gamemath.Scale(contact.Distance, 0.5)
	switch contact.Axis {
	case gamemath.AxisX:
		bodyA.Position.X += half.X
		bodyB.Position.X -= half.X
	case gamemath.AxisY:
		bodyA.Position.Y += half.Y
		bodyB.Position.Y -= half.Y
		// the upper body stands on the other
		if contact.Quadrant.Upper() {
			physA.Grounded = true
		} else {
			physB.Grounded = true
		}
	}

	physA.Velocity, physB.Velocity = gamemath.ElasticResponse(physA.Mass, physA.Velocity, physB.Mass, physB.Velocity)
}
