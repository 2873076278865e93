package config

import (
	"errors"
	"image/color"
)

var ErrInvalidTickRate = errors.New("tick rate must be positive")

// PhysicsConfig contains the global force model shared by every player body
type PhysicsConfig struct {
	// Constant downward force applied every tick
	GravityX float64
	GravityY float64

	// Drag: -(DragQuadratic*|v|^2 + DragLinear*|v|) * normalize(v)
	DragQuadratic float64
	DragLinear    float64

	// Bodies whose centre drops below this Y are respawned
	DeathPlaneY float64
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement force per axis, multiplied component-wise with the intent
	GroundForceX float64
	GroundForceY float64
	AirForceX    float64
	AirForceY    float64

	// Upward velocity added on jump
	JumpSpeed float64

	// Default mass outside of a special move
	Mass float64

	// Dimensions
	CollisionWidth  float64
	CollisionHeight float64

	// Minimum |v.x| before the facing direction flips
	FacingSpeedThreshold float64
}

// SpecialMoveConfig contains the special move impulse and its cooldown
type SpecialMoveConfig struct {
	Impulse      float64 // velocity added along the move direction
	Mass         float64 // mass while the move is recovering
	Cooldown     float64 // seconds until the move is charged again
	MassRevertAt float64 // seconds into the cooldown when mass returns to normal

	ActiveTint color.RGBA
	IdleTint   color.RGBA
}

// MatchConfig contains round rules
type MatchConfig struct {
	// A round ends once any score exceeds this value
	LoseScore int

	// Display names by player index, used in round results
	PlayerNames map[int]string
	UnknownName string
}

// ArenaConfig contains the default arena file and the TMX coordinate mapping
type ArenaConfig struct {
	File string

	// Object group names in the TMX file
	PlatformLayer string
	SpawnLayer    string
	RespawnLayer  string

	// Broad-phase cell size for the collision space
	CellSize int
}

// Config holds general game configuration
type Config struct {
	Width    int
	Height   int
	TickRate int
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu bool // Skip menu and go directly to game
}

// Global configuration instances
var C *Config
var Physics PhysicsConfig
var Player PlayerConfig
var SpecialMove SpecialMoveConfig
var Match MatchConfig
var Arena ArenaConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White      = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Pink       = color.RGBA{R: 255, G: 178, B: 178, A: 255}
	Ice        = color.RGBA{R: 178, G: 178, B: 255, A: 255}
	Background = color.RGBA{R: 230, G: 230, B: 230, A: 255}
	Black      = color.RGBA{R: 0, G: 0, B: 0, A: 255}
)

// Direction constants for player facing
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

// SetTickRate changes the fixed tick rate. Non-positive rates are rejected.
func SetTickRate(rate int) error {
	if rate <= 0 {
		return ErrInvalidTickRate
	}
	C.TickRate = rate
	return nil
}

// TickDelta returns the fixed timestep in seconds.
func TickDelta() float64 {
	return 1.0 / float64(C.TickRate)
}

func init() {
	C = &Config{
		Width:    1280,
		Height:   720,
		TickRate: 64,
	}

	Physics = PhysicsConfig{
		GravityX: 0,
		GravityY: -1,

		DragQuadratic: 0.005,
		DragLinear:    0.05,

		DeathPlaneY: -800,
	}

	Player = PlayerConfig{
		GroundForceX: 2.0,
		GroundForceY: 0,
		AirForceX:    1.5,
		AirForceY:    0,

		JumpSpeed: 40,
		Mass:      1.0,

		CollisionWidth:  50,
		CollisionHeight: 50,

		FacingSpeedThreshold: 5,
	}

	SpecialMove = SpecialMoveConfig{
		Impulse:      50,
		Mass:         4.0,
		Cooldown:     2.0,
		MassRevertAt: 0.5,

		ActiveTint: Pink,
		IdleTint:   White,
	}

	Match = MatchConfig{
		LoseScore: 5,
		PlayerNames: map[int]string{
			1: "Penguin",
			2: "Seal",
		},
		UnknownName: "???",
	}

	Arena = ArenaConfig{
		File:          "arena.tmx",
		PlatformLayer: "Platforms",
		SpawnLayer:    "PlayerSpawn",
		RespawnLayer:  "Respawn",
		CellSize:      50,
	}
}
