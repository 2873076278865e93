package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/automoto/floebrawl/assets"
	"github.com/automoto/floebrawl/config"
	"github.com/automoto/floebrawl/game"
	"github.com/automoto/floebrawl/shared/leveldata"
	"github.com/hajimehoshi/ebiten/v2"
)

var roster = []int{1, 2}

func main() {
	tickRate := flag.Int("tickrate", config.C.TickRate, "Simulation ticks per second")
	arenaPath := flag.String("arena", "", "TMX arena file on disk (empty = built-in arena)")
	skipMenu := flag.Bool("skipmenu", false, "Start the first round immediately")
	botIndex := flag.Int("bot", 0, "Player index driven by a bot (0 = none)")
	headless := flag.Bool("headless", false, "Run bots against each other without a window")
	realtime := flag.Bool("realtime", false, "Headless: tick at the tick rate instead of as fast as possible")
	maxTicks := flag.Int("ticks", 64*60*10, "Headless: stop after this many ticks")
	flag.Parse()

	if err := config.SetTickRate(*tickRate); err != nil {
		log.Fatalf("Invalid tick rate %d: %v", *tickRate, err)
	}

	config.Debug.SkipMenu = *skipMenu || *headless

	arena, err := loadArena(*arenaPath)
	if err != nil {
		log.Fatalf("Failed to load arena: %v", err)
	}

	g, err := game.New(arena, roster)
	if err != nil {
		log.Fatalf("Failed to create game: %v", err)
	}

	if *headless {
		runHeadless(g, *realtime, *maxTicks)
		return
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("floebrawl")
	ebiten.SetTPS(config.C.TickRate)

	host := newHost(g)
	if *botIndex != 0 {
		host.bot = game.NewBot(*botIndex, 42)
	}
	if err := ebiten.RunGame(host); err != nil {
		log.Fatal(err)
	}
}

func loadArena(path string) (*leveldata.Arena, error) {
	if path == "" {
		return assets.LoadArena(config.Arena.File)
	}
	return assets.LoadArenaFS(os.DirFS(filepath.Dir(path)), filepath.Base(path))
}

func runHeadless(g *game.Game, realtime bool, maxTicks int) {
	bots := make([]*game.Bot, 0, len(roster))
	for _, idx := range roster {
		bots = append(bots, game.NewBot(idx, int64(idx)))
	}
	loop := game.NewLoop(g, config.C.TickRate, func(g *game.Game) game.Input {
		in := game.Input{Players: make(map[int]game.PlayerInput, len(bots))}
		for _, b := range bots {
			in.Players[b.PlayerIndex] = b.Input(g)
		}
		return in
	})
	loop.OnTick = func(g *game.Game) {
		if g.State() == config.MatchStateRoundOver || g.Ticks() >= uint64(maxTicks) {
			loop.Stop()
		}
	}

	if realtime {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigChan
			log.Println("Shutting down...")
			loop.Stop()
		}()
		loop.Run()
	} else {
		loop.RunTicks(maxTicks)
	}

	res, ok := g.Result()
	if !ok {
		for _, b := range g.Bodies() {
			log.Printf("player %d: %d falls after %d ticks", b.PlayerIndex, b.Score, g.Ticks())
		}
		return
	}
	for _, s := range res.Scores {
		log.Printf("player %d: %d falls", s.PlayerIndex, s.Score)
	}
	log.Printf("round %d winner: %s after %d ticks", res.Round, res.WinnerName, g.Ticks())
}
