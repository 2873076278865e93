package leveldata

import (
	"fmt"
	"io/fs"
	"sort"

	"github.com/lafriks/go-tiled"
)

// LoadArena parses a TMX file and returns the arena layout in world space.
// It takes an fs.FS so callers can pass embed.FS or os.DirFS.
func LoadArena(fsys fs.FS, tmxPath string, layers Layers) (*Arena, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	arena := &Arena{
		MapWidth:  float64(levelMap.Width * levelMap.TileWidth),
		MapHeight: float64(levelMap.Height * levelMap.TileHeight),
	}

	// TMX is y-down from the top-left corner of the map
	toWorld := func(x, y float64) (float64, float64) {
		return x - arena.MapWidth/2, arena.MapHeight/2 - y
	}

	respawnFound := false
	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case layers.Platforms:
			for _, o := range og.Objects {
				if o.Width <= 0 || o.Height <= 0 {
					return nil, fmt.Errorf("platform %q (id %d): %w", o.Name, o.ID, ErrBadPlatform)
				}
				cx, cy := toWorld(o.X+o.Width/2, o.Y+o.Height/2)
				arena.Platforms = append(arena.Platforms, Rect{
					Name: o.Name,
					X:    cx,
					Y:    cy,
					W:    o.Width,
					H:    o.Height,
				})
			}
		case layers.Spawns:
			for _, o := range og.Objects {
				x, y := toWorld(o.X, o.Y)
				arena.SpawnPoints = append(arena.SpawnPoints, SpawnPoint{
					X:           x,
					Y:           y,
					PlayerIndex: o.Properties.GetInt("player"),
				})
			}
		case layers.Respawn:
			if len(og.Objects) == 0 {
				continue
			}
			o := og.Objects[0]
			x, y := toWorld(o.X, o.Y)
			arena.Respawn = Point{X: x, Y: y}
			respawnFound = true
		}
	}

	if len(arena.Platforms) == 0 {
		return nil, fmt.Errorf("%s: %w", tmxPath, ErrNoPlatforms)
	}
	if len(arena.SpawnPoints) == 0 {
		return nil, fmt.Errorf("%s: %w", tmxPath, ErrNoSpawns)
	}
	if !respawnFound {
		return nil, fmt.Errorf("%s: %w", tmxPath, ErrNoRespawn)
	}

	// Sort spawns by player slot for consistent assignment
	sort.Slice(arena.SpawnPoints, func(i, j int) bool {
		return arena.SpawnPoints[i].PlayerIndex < arena.SpawnPoints[j].PlayerIndex
	})

	return arena, nil
}
