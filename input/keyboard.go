package input

import (
	"github.com/automoto/floebrawl/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Read samples the keyboard into one tick of game input. Movement follows
// held keys; jump, special, start and rematch fire on the press.
func Read(c Config) game.Input {
	in := game.Input{
		Players: make(map[int]game.PlayerInput, len(c.Schemes)),
		Start:   anyJustPressed(c.Start),
		Rematch: anyJustPressed(c.Rematch),
	}
	for _, scheme := range c.Schemes {
		in.Players[scheme.PlayerIndex] = readScheme(scheme)
	}
	return in
}

func readScheme(s ControlScheme) game.PlayerInput {
	var pi game.PlayerInput
	if anyPressed(s.Keys[ActionMoveLeft]) {
		pi.MoveX -= 1
	}
	if anyPressed(s.Keys[ActionMoveRight]) {
		pi.MoveX += 1
	}
	if anyPressed(s.Keys[ActionMoveUp]) {
		pi.MoveY += 1
	}
	if anyPressed(s.Keys[ActionMoveDown]) {
		pi.MoveY -= 1
	}
	pi.Jump = anyJustPressed(s.Keys[ActionJump])
	pi.Special = anyJustPressed(s.Keys[ActionSpecial])
	return pi
}

func anyPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

func anyJustPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}
