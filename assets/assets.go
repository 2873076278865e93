package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"path"

	cfg "github.com/automoto/floebrawl/config"
	"github.com/automoto/floebrawl/shared/leveldata"
)

var (
	//go:embed all:levels
	assetFS embed.FS
)

const levelsDir = "levels"

// ArenaLayers returns the TMX object group names from the arena config.
func ArenaLayers() leveldata.Layers {
	return leveldata.Layers{
		Platforms: cfg.Arena.PlatformLayer,
		Spawns:    cfg.Arena.SpawnLayer,
		Respawn:   cfg.Arena.RespawnLayer,
	}
}

// LoadArena loads an arena bundled with the binary by file name.
func LoadArena(name string) (*leveldata.Arena, error) {
	return LoadArenaFS(assetFS, path.Join(levelsDir, name))
}

// LoadArenaFS loads an arena from any file system, e.g. os.DirFS for
// arenas edited outside the binary.
func LoadArenaFS(fsys fs.FS, tmxPath string) (*leveldata.Arena, error) {
	arena, err := leveldata.LoadArena(fsys, tmxPath, ArenaLayers())
	if err != nil {
		return nil, fmt.Errorf("load arena: %w", err)
	}
	return arena, nil
}

// MustLoadDefaultArena loads the configured default arena and panics on failure.
func MustLoadDefaultArena() *leveldata.Arena {
	arena, err := LoadArena(cfg.Arena.File)
	if err != nil {
		panic(err)
	}
	return arena
}
