package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type PhysicsData struct {
	Velocity     math.Vec2
	Acceleration math.Vec2 // accumulated this tick, cleared by integration
	Mass         float64
	BaseMass     float64

	// Movement force per axis, multiplied component-wise with the intent
	GroundForce math.Vec2
	AirForce    math.Vec2
	Gravity     math.Vec2

	Grounded bool
}

var Physics = donburi.NewComponentType[PhysicsData]()
