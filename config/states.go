package config

// MatchStateID represents the current state of a match.
type MatchStateID int

const (
	MatchStateMenu      MatchStateID = iota // Waiting for the start trigger
	MatchStatePlaying                       // Active round
	MatchStateRoundOver                     // Round finished, showing results
)

var matchStateNames = map[MatchStateID]string{
	MatchStateMenu:      "menu",
	MatchStatePlaying:   "playing",
	MatchStateRoundOver: "round-over",
}

func (s MatchStateID) String() string {
	if name, ok := matchStateNames[s]; ok {
		return name
	}
	return "unknown"
}
