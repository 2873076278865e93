package tags

import "github.com/yohamta/donburi"

var (
	Player   = donburi.NewTag().SetName("Player")
	Platform = donburi.NewTag().SetName("Platform")
	// Round marks every entity that is destroyed when a round ends
	Round = donburi.NewTag().SetName("Round")
)

// Resolv tags for physics collision
const (
	ResolvPlayer   = "player"
	ResolvPlatform = "platform"
)
