package components

import (
	"image/color"

	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// SpecialMoveData tracks the special move charge and its recovery timer.
// Timer runs linearly from 0 to the cooldown length while uncharged.
type SpecialMoveData struct {
	Charged bool
	Timer   *gween.Tween
	Elapsed float64 // seconds since the move was used
	Active  bool    // true from use until the charge is restored
	Tint    color.RGBA
}

var SpecialMove = donburi.NewComponentType[SpecialMoveData]()
