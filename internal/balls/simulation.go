package balls

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"github.com/aquilax/go-perlin"
)

// Simulation constants
const (
	DefaultCount = 50
	MinRadius    = 10
	MaxRadius    = 40
	MaxSpeed     = 10
	FadeAlpha    = 0.1   // Opacity of the trail overlay painted each tick
	WanderScale  = 0.005 // Perlin noise sampling scale
)

// FadeColor is painted over the whole viewport before each tick's balls.
var FadeColor = color.NRGBA{A: uint8(math.Round(FadeAlpha * 255))}

var (
	// ErrInvalidCount is returned for a negative ball count.
	ErrInvalidCount = errors.New("ball count must not be negative")
	// ErrViewportTooSmall is returned when a viewport side is not a finite
	// number at least twice MaxRadius.
	ErrViewportTooSmall = errors.New("viewport too small for largest ball")
)

// Simulation owns a fixed set of balls and advances them one tick at a time.
type Simulation struct {
	width, height float64
	particles     []*Particle
	rng           Source

	noise  *perlin.Perlin
	wander float64
}

// NewSimulation spawns count balls fully inside a width x height viewport.
func NewSimulation(count int, width, height float64, src Source) (*Simulation, error) {
	if count < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCount, count)
	}
	if !validSide(width) || !validSide(height) {
		return nil, fmt.Errorf("%w: %gx%g, need at least %dx%d",
			ErrViewportTooSmall, width, height, 2*MaxRadius, 2*MaxRadius)
	}

	s := &Simulation{
		width:     width,
		height:    height,
		particles: make([]*Particle, 0, count),
		rng:       src,
	}
	for len(s.particles) < count {
		s.particles = append(s.particles, s.spawn())
	}
	return s, nil
}

// validSide also rejects NaN and infinite sides.
func validSide(v float64) bool {
	return v >= 2*MaxRadius && !math.IsInf(v, 0)
}

// spawn places a ball at least one radius away from every edge.
func (s *Simulation) spawn() *Particle {
	size := RandInt(s.rng, MinRadius, MaxRadius)
	return &Particle{
		X:      float64(RandInt(s.rng, size, int(s.width)-size)),
		Y:      float64(RandInt(s.rng, size, int(s.height)-size)),
		VX:     float64(RandInt(s.rng, -MaxSpeed, MaxSpeed)),
		VY:     float64(RandInt(s.rng, -MaxSpeed, MaxSpeed)),
		Color:  RandomRGB(s.rng),
		Radius: float64(size),
	}
}

// EnableWander turns on a Perlin-noise drift of the given strength.
// A strength of zero turns it off.
func (s *Simulation) EnableWander(strength float64) {
	if strength <= 0 {
		s.noise = nil
		s.wander = 0
		return
	}
	s.noise = perlin.NewPerlin(2, 2, 3, int64(s.rng.Float64()*math.MaxInt32))
	s.wander = strength
}

// ToggleWander switches the drift off when it is on, or on at strength when
// it is off. It reports whether the drift is now on.
func (s *Simulation) ToggleWander(strength float64) bool {
	if s.noise != nil {
		s.EnableWander(0)
	} else {
		s.EnableWander(strength)
	}
	return s.noise != nil
}

// Tick fades the previous frame, then renders, moves and collides every ball in turn.
// Balls later in the order are tested at their old position, earlier ones at their new one.
func (s *Simulation) Tick(surface Surface) {
	surface.FillRect(0, 0, s.width, s.height, FadeColor)

	for i, p := range s.particles {
		p.Render(surface)
		if s.noise != nil {
			s.drift(p)
		}
		p.Advance(s.width, s.height)
		for j, other := range s.particles {
			if i == j {
				continue
			}
			p.CollideWith(other, s.rng)
		}
	}
}

// drift nudges the velocity along the noise field and keeps it within MaxSpeed.
func (s *Simulation) drift(p *Particle) {
	angle := (s.noise.Noise2D(p.X*WanderScale, p.Y*WanderScale) + 1) / 2 * 2 * math.Pi
	p.VX = clamp(p.VX+math.Cos(angle)*s.wander, -MaxSpeed, MaxSpeed)
	p.VY = clamp(p.VY+math.Sin(angle)*s.wander, -MaxSpeed, MaxSpeed)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Len returns the number of balls.
func (s *Simulation) Len() int {
	return len(s.particles)
}

// Size returns the viewport dimensions.
func (s *Simulation) Size() (float64, float64) {
	return s.width, s.height
}

// Each calls fn with a copy of every ball, in order.
func (s *Simulation) Each(fn func(i int, p Particle)) {
	for i, p := range s.particles {
		fn(i, *p)
	}
}
