package factory

import (
	"fmt"
	"math"

	"github.com/automoto/floebrawl/archetypes"
	"github.com/automoto/floebrawl/components"
	cfg "github.com/automoto/floebrawl/config"
	"github.com/automoto/floebrawl/shared/gamemath"
	"github.com/automoto/floebrawl/tags"
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

// PlayerSpec describes a player body to add to the world.
type PlayerSpec struct {
	Index  int
	X, Y   float64 // centre
	Width  float64
	Height float64
	Mass   float64
}

// DefaultPlayerSpec returns a spec using the configured player size and mass.
func DefaultPlayerSpec(index int, x, y float64) PlayerSpec {
	return PlayerSpec{
		Index:  index,
		X:      x,
		Y:      y,
		Width:  cfg.Player.CollisionWidth,
		Height: cfg.Player.CollisionHeight,
		Mass:   cfg.Player.Mass,
	}
}

func CreatePlayer(w donburi.World, spec PlayerSpec) (*donburi.Entry, error) {
	if spec.Index < 1 {
		return nil, fmt.Errorf("player %d: %w", spec.Index, ErrInvalidIndex)
	}
	if !(spec.Mass > 0) || math.IsInf(spec.Mass, 0) {
		return nil, fmt.Errorf("player %d: %w", spec.Index, ErrInvalidMass)
	}
	if !(spec.Width > 0) || !(spec.Height > 0) {
		return nil, fmt.Errorf("player %d: %w", spec.Index, ErrInvalidExtents)
	}
	if playerExists(w, spec.Index) {
		return nil, fmt.Errorf("player %d: %w", spec.Index, ErrDuplicatePlayer)
	}
	space, err := getSpace(w)
	if err != nil {
		return nil, err
	}

	player := archetypes.Player.Spawn(w)

	body := components.BodyData{
		Position:    gamemath.Vec(spec.X, spec.Y),
		HalfExtents: gamemath.Vec(spec.Width/2, spec.Height/2),
	}
	components.Body.SetValue(player, body)

	obj := resolv.NewObject(0, 0, spec.Width, spec.Height, tags.ResolvPlayer)
	obj.Data = player
	space.Space.Add(obj)
	components.Object.SetValue(player, components.ObjectData{Object: obj, Skin: objectSkin})
	components.Object.Get(player).Cover(body.Bounds(), space.Origin)

	components.Player.SetValue(player, components.PlayerData{
		Index:  spec.Index,
		Facing: cfg.DirectionRight,
	})
	components.Physics.SetValue(player, components.PhysicsData{
		Mass:        spec.Mass,
		BaseMass:    spec.Mass,
		GroundForce: gamemath.Vec(cfg.Player.GroundForceX, cfg.Player.GroundForceY),
		AirForce:    gamemath.Vec(cfg.Player.AirForceX, cfg.Player.AirForceY),
		Gravity:     gamemath.Vec(cfg.Physics.GravityX, cfg.Physics.GravityY),
	})

	cooldown := float32(cfg.SpecialMove.Cooldown)
	components.SpecialMove.SetValue(player, components.SpecialMoveData{
		Charged: true,
		Timer:   gween.New(0, cooldown, cooldown, ease.Linear),
		Tint:    cfg.SpecialMove.IdleTint,
	})

	return player, nil
}

func playerExists(w donburi.World, index int) bool {
	found := false
	tags.Player.Each(w, func(e *donburi.Entry) {
		if components.Player.Get(e).Index == index {
			found = true
		}
	})
	return found
}
