package main

import (
	"fmt"
	"image/color"

	"github.com/automoto/floebrawl/config"
	"github.com/automoto/floebrawl/game"
	"github.com/automoto/floebrawl/input"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// cameraY is the world height drawn at the centre of the screen.
const cameraY = -100.0

var playerColors = map[int]color.RGBA{
	1: {R: 30, G: 30, B: 40, A: 255},
	2: {R: 120, G: 120, B: 130, A: 255},
}

// host adapts the headless game to ebiten's update/draw loop. ebiten calls
// Update at the configured TPS, one simulation tick per call.
type host struct {
	game *game.Game
	bot  *game.Bot
}

func newHost(g *game.Game) *host {
	return &host{game: g}
}

func (h *host) Update() error {
	in := input.Read(input.Bindings)
	if h.bot != nil {
		in.Players[h.bot.PlayerIndex] = h.bot.Input(h.game)
	}
	h.game.Tick(in)
	return nil
}

func (h *host) Draw(screen *ebiten.Image) {
	screen.Fill(config.Background)

	for _, p := range h.game.Platforms() {
		drawRect(screen, p.X, p.Y, p.HalfWidth, p.HalfHeight, config.Ice)
	}
	for _, b := range h.game.Bodies() {
		drawRect(screen, b.X, b.Y, b.HalfWidth, b.HalfHeight, tinted(playerColors[b.PlayerIndex], b.Tint))
		// facing marker on the front edge
		eyeX := b.X + b.Facing*b.HalfWidth*0.6
		drawRect(screen, eyeX, b.Y+b.HalfHeight*0.4, 4, 4, config.White)
	}

	h.drawScores(screen)

	switch h.game.State() {
	case config.MatchStateMenu:
		ebitenutil.DebugPrintAt(screen, "FLOEBRAWL - press Enter to start", config.C.Width/2-100, config.C.Height/2)
	case config.MatchStateRoundOver:
		if res, ok := h.game.Result(); ok {
			msg := fmt.Sprintf("Round %d over - winner: %s - press R for a rematch", res.Round, res.WinnerName)
			ebitenutil.DebugPrintAt(screen, msg, config.C.Width/2-160, config.C.Height/2)
		}
	}
}

func (h *host) drawScores(screen *ebiten.Image) {
	y := 10
	for _, idx := range roster {
		name := config.Match.PlayerNames[idx]
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s: %s", name, h.game.ScoreText(idx)), 10, y)
		y += 16
	}
}

func (h *host) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

// drawRect draws a world-space box given by its centre and half extents.
func drawRect(screen *ebiten.Image, x, y, hw, hh float64, clr color.Color) {
	sx := x - hw + float64(config.C.Width)/2
	sy := float64(config.C.Height)/2 - (y + hh - cameraY)
	vector.DrawFilledRect(screen, float32(sx), float32(sy), float32(2*hw), float32(2*hh), clr, false)
}

// tinted multiplies a base colour by a tint, as a sprite colour would be.
func tinted(base, tint color.RGBA) color.RGBA {
	mul := func(a, b uint8) uint8 { return uint8(uint16(a) * uint16(b) / 255) }
	return color.RGBA{R: mul(base.R, tint.R), G: mul(base.G, tint.G), B: mul(base.B, tint.B), A: base.A}
}
