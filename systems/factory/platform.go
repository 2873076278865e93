package factory

import (
	"fmt"

	"github.com/automoto/floebrawl/archetypes"
	"github.com/automoto/floebrawl/components"
	"github.com/automoto/floebrawl/shared/gamemath"
	"github.com/automoto/floebrawl/shared/leveldata"
	"github.com/automoto/floebrawl/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// objectSkin pads every broad-phase object so touching bodies share a cell.
const objectSkin = 2

func CreatePlatform(w donburi.World, rect leveldata.Rect) (*donburi.Entry, error) {
	if rect.W <= 0 || rect.H <= 0 {
		return nil, fmt.Errorf("platform %q: %w", rect.Name, ErrInvalidExtents)
	}
	space, err := getSpace(w)
	if err != nil {
		return nil, err
	}

	platform := archetypes.Platform.Spawn(w)
	body := components.BodyData{
		Position:    gamemath.Vec(rect.X, rect.Y),
		HalfExtents: gamemath.Vec(rect.W/2, rect.H/2),
	}
	components.Body.SetValue(platform, body)

	obj := resolv.NewObject(0, 0, rect.W, rect.H, tags.ResolvPlatform)
	obj.Data = platform
	space.Space.Add(obj)
	components.Object.SetValue(platform, components.ObjectData{Object: obj, Skin: objectSkin})
	components.Object.Get(platform).Cover(body.Bounds(), space.Origin)

	return platform, nil
}
