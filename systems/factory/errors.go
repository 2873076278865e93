package factory

import "errors"

var (
	ErrInvalidMass     = errors.New("mass must be positive and finite")
	ErrInvalidExtents  = errors.New("half extents must be positive")
	ErrInvalidIndex    = errors.New("player index must be at least 1")
	ErrDuplicatePlayer = errors.New("player index already in use")
	ErrNoSpawn         = errors.New("arena has no spawn point for player")
	ErrNoSpace         = errors.New("no collision space in world")
	ErrNoLevel         = errors.New("no level loaded")
)
