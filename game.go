package main

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/olivierh59500/bouncing-balls-go/internal/balls"
)

// Game drives the simulation from the Ebitengine loop
type Game struct {
	sim       *balls.Simulation
	canvas    *canvas
	width     int
	height    int
	showStats bool
	wander    float64 // Strength applied when W switches the drift on
}

// NewGame wraps a simulation with a canvas of the same size.
func NewGame(sim *balls.Simulation, showStats bool, wander float64) *Game {
	w, h := sim.Size()
	return &Game{
		sim:       sim,
		canvas:    newCanvas(int(w), int(h)),
		width:     int(w),
		height:    int(h),
		showStats: showStats,
		wander:    wander,
	}
}

// Update is called each tick by Ebitengine
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.showStats = !g.showStats
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyW) {
		g.sim.ToggleWander(g.wander)
	}

	g.sim.Tick(g.canvas)
	return nil
}

// Draw is called each frame by Ebitengine
func (g *Game) Draw(screen *ebiten.Image) {
	screen.DrawImage(g.canvas.img, nil)

	if g.showStats {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS: %0.1f  FPS: %0.1f  balls: %d",
			ebiten.ActualTPS(), ebiten.ActualFPS(), g.sim.Len()), 8, 8)
	}
}

// Layout returns the fixed viewport size
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}
