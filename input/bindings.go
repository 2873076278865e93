package input

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionMoveUp
	ActionMoveDown
	ActionJump
	ActionSpecial
	ActionCount // Must be last - used for array sizing
)

// ControlScheme binds every player action to keyboard keys
type ControlScheme struct {
	PlayerIndex int
	Keys        [ActionCount][]ebiten.Key
}

// Config holds all input mappings
type Config struct {
	Schemes []ControlScheme
	Start   []ebiten.Key
	Rematch []ebiten.Key
}

// Bindings is the global input configuration
var Bindings Config

func init() {
	Bindings = Config{
		Schemes: []ControlScheme{
			{
				PlayerIndex: 1,
				Keys: [ActionCount][]ebiten.Key{
					ActionMoveLeft:  {ebiten.KeyArrowLeft},
					ActionMoveRight: {ebiten.KeyArrowRight},
					ActionMoveUp:    {ebiten.KeyArrowUp},
					ActionMoveDown:  {ebiten.KeyArrowDown},
					ActionJump:      {ebiten.KeyArrowUp},
					ActionSpecial:   {ebiten.KeyShiftRight},
				},
			},
			{
				PlayerIndex: 2,
				Keys: [ActionCount][]ebiten.Key{
					ActionMoveLeft:  {ebiten.KeyA},
					ActionMoveRight: {ebiten.KeyD},
					ActionMoveUp:    {ebiten.KeyW},
					ActionMoveDown:  {ebiten.KeyS},
					ActionJump:      {ebiten.KeyW},
					ActionSpecial:   {ebiten.KeyShiftLeft},
				},
			},
		},
		Start:   []ebiten.Key{ebiten.KeyEnter},
		Rematch: []ebiten.Key{ebiten.KeyR},
	}
}
