package main

import (
	"errors"
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/olivierh59500/bouncing-balls-go/internal/balls"
	"github.com/olivierh59500/bouncing-balls-go/internal/config"
)

func main() {
	cfg := config.Default()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	sim, err := balls.NewSimulation(cfg.BallCount, float64(cfg.Width), float64(cfg.Height), rng)
	if err != nil {
		log.Fatalf("init simulation: %v", err)
	}
	sim.EnableWander(cfg.Wander)
	log.Printf("spawned %d balls in %dx%d viewport", sim.Len(), cfg.Width, cfg.Height)

	// Set up Ebitengine game
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	ebiten.SetTPS(cfg.TPS)

	// Run the game loop
	if err := ebiten.RunGame(NewGame(sim, cfg.ShowStats, cfg.WanderToggle)); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
