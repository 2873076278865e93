package game

import "testing"

func TestBotChasesOpponent(t *testing.T) {
	g := newStartedGame(t)
	bot := NewBot(1, 42)

	in := bot.Input(g)
	if in.MoveX != 1 {
		t.Fatalf("MoveX = %v, want 1 towards player 2", in.MoveX)
	}
}

func TestBotUsesSpecialInRange(t *testing.T) {
	g := newStartedGame(t)
	bot := NewBot(2, 42)
	// bring player 1 next to player 2
	for i := 0; i < 200; i++ {
		if b, _ := g.Body(1); b.X > 0 {
			break
		}
		g.Tick(Input{Players: map[int]PlayerInput{1: {MoveX: 1}}})
	}

	in := bot.Input(g)
	if !in.Special || in.MoveX != -1 {
		t.Fatalf("input = %+v, want a special move towards player 1", in)
	}
}

func TestBotReturnsToPlatform(t *testing.T) {
	self := BodyView{PlayerIndex: 1, X: 500, Y: 100, HalfWidth: 25, HalfHeight: 25}
	platforms := []PlatformView{{X: 0, Y: 0, HalfWidth: 300, HalfHeight: 25}}

	if _, ok := platformBelow(self, platforms); ok {
		t.Fatalf("platform found under a body past its edge")
	}
	if x := nearestPlatformX(self, platforms); x != 270 {
		t.Fatalf("nearest platform x = %v, want 270", x)
	}
	if steer(self.X, 270, 0) != -1 {
		t.Fatalf("steer should head left")
	}
}
