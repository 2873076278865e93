package factory

import (
	"math"

	"github.com/automoto/floebrawl/archetypes"
	"github.com/automoto/floebrawl/components"
	"github.com/automoto/floebrawl/shared/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// spaceMargin extends the space past the arena edges so bodies falling
// towards the death plane still land in valid cells.
const spaceMargin = 1000

// CreateSpace creates the broad-phase space for an arena of the given size,
// centred on the world origin.
func CreateSpace(w donburi.World, width, height float64, cellSize int) *donburi.Entry {
	space := archetypes.Space.Spawn(w)

	fullW := width + 2*spaceMargin
	fullH := height + 2*spaceMargin
	spaceData := resolv.NewSpace(int(math.Ceil(fullW)), int(math.Ceil(fullH)), cellSize, cellSize)
	components.Space.SetValue(space, components.SpaceData{
		Space:  spaceData,
		Origin: gamemath.Vec(-fullW/2, -fullH/2),
	})
	return space
}

func getSpace(w donburi.World) (*components.SpaceData, error) {
	e, ok := components.Space.First(w)
	if !ok {
		return nil, ErrNoSpace
	}
	return components.Space.Get(e), nil
}
