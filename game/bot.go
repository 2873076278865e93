package game

import (
	"math"
	"math/rand"
)

const (
	botSpecialRange = 120.0 // horizontal distance to try a special move
	botJumpChance   = 0.01
	botEdgeMargin   = 30.0 // keep this far from a platform edge when idle
)

// Bot drives one player from the game's views. It chases the nearest other
// player while standing over a platform and heads back to the nearest
// platform when it is not.
type Bot struct {
	PlayerIndex int
	rng         *rand.Rand
}

// NewBot returns a bot for a player index. A fixed seed gives a replayable
// run.
func NewBot(playerIndex int, seed int64) *Bot {
	return &Bot{
		PlayerIndex: playerIndex,
		rng:         rand.New(rand.NewSource(seed)),
	}
}

// Input decides the bot's intent for the next tick.
func (b *Bot) Input(g *Game) PlayerInput {
	self, ok := g.Body(b.PlayerIndex)
	if !ok {
		return PlayerInput{}
	}
	platforms := g.Platforms()

	support, overPlatform := platformBelow(self, platforms)
	if !overPlatform {
		return PlayerInput{MoveX: steer(self.X, nearestPlatformX(self, platforms), 0)}
	}

	target, hasTarget := nearestOpponent(self, g.Bodies())
	if !hasTarget {
		return PlayerInput{MoveX: steer(self.X, support.X, botEdgeMargin)}
	}

	// stay on the supporting platform while chasing
	left := support.X - support.HalfWidth + botEdgeMargin
	right := support.X + support.HalfWidth - botEdgeMargin
	goal := math.Max(left, math.Min(right, target.X))

	in := PlayerInput{MoveX: steer(self.X, goal, 0)}
	dx := target.X - self.X
	dy := target.Y - self.Y
	if self.Grounded && (dy > self.HalfHeight || b.rng.Float64() < botJumpChance) {
		in.Jump = true
	}
	if self.SpecialCharged && math.Abs(dx) < botSpecialRange && math.Abs(dy) < 2*self.HalfHeight {
		in.MoveX = math.Copysign(1, dx)
		in.Special = true
	}
	return in
}

func steer(from, to, deadZone float64) float64 {
	switch {
	case to-from > deadZone:
		return 1
	case from-to > deadZone:
		return -1
	}
	return 0
}

// platformBelow returns the highest platform whose top is under the body
// and whose span covers its centre.
func platformBelow(self BodyView, platforms []PlatformView) (PlatformView, bool) {
	var best PlatformView
	found := false
	for _, p := range platforms {
		if math.Abs(self.X-p.X) > p.HalfWidth {
			continue
		}
		if p.Y+p.HalfHeight > self.Y {
			continue
		}
		if !found || p.Y > best.Y {
			best = p
			found = true
		}
	}
	return best, found
}

func nearestPlatformX(self BodyView, platforms []PlatformView) float64 {
	best := self.X
	bestDist := math.Inf(1)
	for _, p := range platforms {
		// closest point on the platform's span
		x := math.Max(p.X-p.HalfWidth+botEdgeMargin, math.Min(p.X+p.HalfWidth-botEdgeMargin, self.X))
		if d := math.Hypot(x-self.X, p.Y-self.Y); d < bestDist {
			best, bestDist = x, d
		}
	}
	return best
}

func nearestOpponent(self BodyView, bodies []BodyView) (BodyView, bool) {
	var best BodyView
	bestDist := math.Inf(1)
	for _, b := range bodies {
		if b.PlayerIndex == self.PlayerIndex {
			continue
		}
		if d := math.Hypot(b.X-self.X, b.Y-self.Y); d < bestDist {
			best, bestDist = b, d
		}
	}
	return best, !math.IsInf(bestDist, 1)
}
