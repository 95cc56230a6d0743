package balls

import (
	"image/color"
	"math"
)

// Surface is the drawing target a simulation paints onto.
type Surface interface {
	FillRect(x, y, w, h float64, c color.Color)
	FillCircle(cx, cy, r float64, c color.Color)
}

// Particle is a single ball bouncing around the viewport
type Particle struct {
	X, Y   float64 // Center
	VX, VY float64 // Velocity per tick
	Radius float64
	Color  color.RGBA
}

// Render paints the ball as a filled circle.
func (p *Particle) Render(s Surface) {
	s.FillCircle(p.X, p.Y, p.Radius, p.Color)
}

// Advance reflects the ball off the viewport edges and then moves it by one step.
// Every edge is checked against the position before reflection, so a ball
// touching both edges of an axis has its velocity negated twice.
func (p *Particle) Advance(width, height float64) {
	if p.X+p.Radius >= width {
		p.VX = -p.VX
	}
	if p.X-p.Radius <= 0 {
		p.VX = -p.VX
	}
	if p.Y+p.Radius >= height {
		p.VY = -p.VY
	}
	if p.Y-p.Radius <= 0 {
		p.VY = -p.VY
	}

	p.X += p.VX
	p.Y += p.VY
}

// CollideWith gives both balls the same fresh random color when they overlap.
// Balls that exactly touch do not collide.
func (p *Particle) CollideWith(other *Particle, src Source) {
	if p == other {
		return
	}
	dx := p.X - other.X
	dy := p.Y - other.Y
	if math.Sqrt(dx*dx+dy*dy) < p.Radius+other.Radius {
		c := RandomRGB(src)
		p.Color = c
		other.Color = c
	}
}
