package factory

import (
	"fmt"

	"github.com/automoto/floebrawl/archetypes"
	"github.com/automoto/floebrawl/components"
	cfg "github.com/automoto/floebrawl/config"
	"github.com/automoto/floebrawl/shared/leveldata"
	"github.com/automoto/floebrawl/tags"
	"github.com/yohamta/donburi"
)

// CreateLevel stores the arena and the player roster. Every roster index
// must have a spawn point so later rounds cannot fail to start.
func CreateLevel(w donburi.World, arena *leveldata.Arena, roster []int) (*donburi.Entry, error) {
	seen := make(map[int]bool, len(roster))
	for _, idx := range roster {
		if idx < 1 {
			return nil, fmt.Errorf("player %d: %w", idx, ErrInvalidIndex)
		}
		if seen[idx] {
			return nil, fmt.Errorf("player %d: %w", idx, ErrDuplicatePlayer)
		}
		seen[idx] = true
		if _, ok := arena.Spawn(idx); !ok {
			return nil, fmt.Errorf("player %d: %w", idx, ErrNoSpawn)
		}
	}

	level := archetypes.Level.Spawn(w)
	components.Level.SetValue(level, components.LevelData{
		Arena:  arena,
		Roster: append([]int(nil), roster...),
	})
	return level, nil
}

// CreateRound builds the collision space, the platforms and one player body
// per roster entry at its spawn point.
func CreateRound(w donburi.World) error {
	levelEntry, ok := components.Level.First(w)
	if !ok {
		return ErrNoLevel
	}
	level := components.Level.Get(levelEntry)
	arena := level.Arena

	CreateSpace(w, arena.MapWidth, arena.MapHeight, cfg.Arena.CellSize)

	for _, rect := range arena.Platforms {
		if _, err := CreatePlatform(w, rect); err != nil {
			return fmt.Errorf("create round: %w", err)
		}
	}
	for _, idx := range level.Roster {
		sp, ok := arena.Spawn(idx)
		if !ok {
			return fmt.Errorf("create round: player %d: %w", idx, ErrNoSpawn)
		}
		if _, err := CreatePlayer(w, DefaultPlayerSpec(idx, sp.X, sp.Y)); err != nil {
			return fmt.Errorf("create round: %w", err)
		}
	}
	return nil
}

// DestroyRound removes every entity tagged for the round, along with its
// broad-phase object.
func DestroyRound(w donburi.World) {
	var doomed []donburi.Entity
	tags.Round.Each(w, func(e *donburi.Entry) {
		if e.HasComponent(components.Object) {
			obj := components.Object.Get(e)
			if obj.Object != nil && obj.Space != nil {
				obj.Space.Remove(obj.Object)
			}
		}
		doomed = append(doomed, e.Entity())
	})
	for _, e := range doomed {
		w.Remove(e)
	}
}
