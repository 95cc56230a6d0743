package config

import (
	"errors"
	"fmt"
)

const (
	WindowWidth  = 1024
	WindowHeight = 768
	WindowTitle  = "Bouncing Balls"

	BallCount = 50
	TPS       = 60 // Ticks per second, one simulation tick each

	// Perlin drift strength at startup, 0 starts with it off
	Wander = 0.0
	// Strength used when the drift is switched on with the W key
	WanderToggle = 2.0
)

// Config holds the settings of a run. The viewport is fixed for its lifetime.
type Config struct {
	Width, Height int
	Title         string
	BallCount     int
	TPS           int
	Wander        float64
	WanderToggle  float64
	ShowStats     bool
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Width:        WindowWidth,
		Height:       WindowHeight,
		Title:        WindowTitle,
		BallCount:    BallCount,
		TPS:          TPS,
		Wander:       Wander,
		WanderToggle: WanderToggle,
	}
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("invalid window size %dx%d", c.Width, c.Height)
	case c.BallCount < 0:
		return fmt.Errorf("invalid ball count %d", c.BallCount)
	case c.TPS <= 0:
		return fmt.Errorf("invalid tps %d", c.TPS)
	case c.Wander < 0:
		return errors.New("wander must not be negative")
	case c.WanderToggle <= 0:
		return errors.New("wander toggle strength must be positive")
	}
	return nil
}
