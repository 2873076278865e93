// Package leveldata provides TMX arena parsing for the simulation.
// It has no dependencies on ebitengine, donburi, or resolv. Pure data only.
package leveldata

import "errors"

var (
	ErrNoPlatforms = errors.New("arena has no platforms")
	ErrNoSpawns    = errors.New("arena has no player spawn points")
	ErrNoRespawn   = errors.New("arena has no respawn point")
	ErrBadPlatform = errors.New("platform must have positive width and height")
)

// Arena holds the world-space layout of an arena. World space has y pointing
// up and its origin at the centre of the map.
type Arena struct {
	Platforms   []Rect
	SpawnPoints []SpawnPoint
	Respawn     Point
	MapWidth    float64
	MapHeight   float64
}

// Point is a world-space position.
type Point struct {
	X, Y float64
}

// Rect is a platform, given by its centre and full size.
type Rect struct {
	Name       string
	X, Y, W, H float64
}

// SpawnPoint is where a player starts a round.
type SpawnPoint struct {
	X, Y        float64
	PlayerIndex int
}

// Layers names the TMX object groups the loader reads.
type Layers struct {
	Platforms string
	Spawns    string
	Respawn   string
}

// Spawn returns the spawn point for a player index.
func (a *Arena) Spawn(playerIndex int) (SpawnPoint, bool) {
	for _, sp := range a.SpawnPoints {
		if sp.PlayerIndex == playerIndex {
			return sp, true
		}
	}
	return SpawnPoint{}, false
}
