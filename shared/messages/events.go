package messages

// RespawnEvent is raised when a player falls through the death plane and is
// moved back to the respawn point
type RespawnEvent struct {
	PlayerIndex int
	Score       int // score after the fall was counted
}

// SpecialMoveEvent is raised when a player uses the special move
type SpecialMoveEvent struct {
	PlayerIndex int
	DirectionX  float64 // Normalized direction
	DirectionY  float64
}

// MatchStateChangeEvent is raised after the match state changes
type MatchStateChangeEvent struct {
	PreviousState int // MatchState enum value
	NewState      int
	Round         int
}
