package game

import (
	"log"
	"sync"
	"time"
)

// InputSource produces the input for the next tick.
type InputSource func(g *Game) Input

// Loop ticks a game on a wall-clock ticker, for hosts without their own
// fixed-rate update such as headless runs.
type Loop struct {
	game     *Game
	source   InputSource
	tickRate int
	stopChan chan struct{}
	stopOnce sync.Once

	// OnTick runs after every tick. It may call Stop.
	OnTick func(g *Game)
}

func NewLoop(game *Game, tickRate int, source InputSource) *Loop {
	return &Loop{
		game:     game,
		source:   source,
		tickRate: tickRate,
		stopChan: make(chan struct{}),
	}
}

// Run blocks until Stop is called.
func (l *Loop) Run() {
	ticker := time.NewTicker(time.Second / time.Duration(l.tickRate))
	defer ticker.Stop()

	log.Printf("Game loop started at %d ticks/second", l.tickRate)

	for {
		select {
		case <-l.stopChan:
			log.Println("Game loop stopped")
			return
		case <-ticker.C:
			l.tick()
		}
	}
}

// RunTicks runs n ticks back to back without waiting on the clock, stopping
// early if Stop is called.
func (l *Loop) RunTicks(n int) {
	for i := 0; i < n; i++ {
		select {
		case <-l.stopChan:
			return
		default:
		}
		l.tick()
	}
}

func (l *Loop) Stop() {
	l.stopOnce.Do(func() { close(l.stopChan) })
}

func (l *Loop) tick() {
	var in Input
	if l.source != nil {
		in = l.source(l.game)
	}
	l.game.Tick(in)
	if l.OnTick != nil {
		l.OnTick(l.game)
	}
}
