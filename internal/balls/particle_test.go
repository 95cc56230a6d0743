package balls

import (
	"image/color"
	"testing"
)

func TestAdvance(t *testing.T) {
	tests := []struct {
		name string
		w, h float64
		in   Particle
		want Particle
	}{
		{
			name: "right edge reflects before moving",
			w:    200,
			h:    200,
			in:   Particle{X: 190, Y: 100, VX: 3, Radius: 10},
			want: Particle{X: 187, Y: 100, VX: -3, Radius: 10},
		},
		{
			name: "left edge",
			w:    200,
			h:    200,
			in:   Particle{X: 10, Y: 100, VX: -4, Radius: 10},
			want: Particle{X: 14, Y: 100, VX: 4, Radius: 10},
		},
		{
			name: "bottom edge",
			w:    200,
			h:    200,
			in:   Particle{X: 100, Y: 195, VY: 5, Radius: 10},
			want: Particle{X: 100, Y: 190, VY: -5, Radius: 10},
		},
		{
			name: "top edge",
			w:    200,
			h:    200,
			in:   Particle{X: 100, Y: 8, VX: 1, VY: -2, Radius: 10},
			want: Particle{X: 101, Y: 10, VX: 1, VY: 2, Radius: 10},
		},
		{
			name: "interior moves without reflection",
			w:    100,
			h:    100,
			in:   Particle{X: 50, Y: 50, VX: 12, Radius: 10},
			want: Particle{X: 62, Y: 50, VX: 12, Radius: 10},
		},
		{
			name: "fast ball at right edge",
			w:    100,
			h:    100,
			in:   Particle{X: 90, Y: 50, VX: 12, Radius: 10},
			want: Particle{X: 78, Y: 50, VX: -12, Radius: 10},
		},
		{
			name: "touching both edges negates twice",
			w:    20,
			h:    200,
			in:   Particle{X: 10, Y: 100, VX: 2, Radius: 10},
			want: Particle{X: 12, Y: 100, VX: 2, Radius: 10},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := tt.in
			p.Advance(tt.w, tt.h)
			if p != tt.want {
				t.Errorf("after Advance got %+v, want %+v", p, tt.want)
			}
		})
	}
}

var (
	red  = color.RGBA{R: 200, A: 255}
	blue = color.RGBA{B: 200, A: 255}
	gray = color.RGBA{R: 128, G: 128, B: 128, A: 255}
)

func TestCollideWithOverlap(t *testing.T) {
	a := &Particle{X: 0, Y: 0, Radius: 10, Color: red}
	b := &Particle{X: 19, Y: 0, Radius: 10, Color: blue}
	src := &seqSource{vals: []float64{0.5}}

	a.CollideWith(b, src)

	if a.Color != gray || b.Color != gray {
		t.Errorf("colors = %v, %v, want both %v", a.Color, b.Color, gray)
	}
	if src.calls != 3 {
		t.Errorf("drew %d values, want one color (3 draws)", src.calls)
	}
}

func TestCollideWithRepeatsWhileOverlapping(t *testing.T) {
	a := &Particle{X: 0, Y: 0, Radius: 10, Color: red}
	b := &Particle{X: 0, Y: 5, Radius: 10, Color: blue}
	src := &seqSource{vals: []float64{0.5, 0.5, 0.5, 0, 0, 0}}

	a.CollideWith(b, src)
	a.CollideWith(b, src)

	black := color.RGBA{A: 255}
	if a.Color != black || b.Color != black {
		t.Errorf("second collision colors = %v, %v, want %v", a.Color, b.Color, black)
	}
}

func TestCollideWithTouchingIsNoCollision(t *testing.T) {
	a := &Particle{X: 0, Y: 0, Radius: 10, Color: red}
	b := &Particle{X: 12, Y: 16, Radius: 10, Color: blue} // distance 20
	src := &seqSource{vals: []float64{0.5}}

	a.CollideWith(b, src)

	if a.Color != red || b.Color != blue {
		t.Errorf("touching balls recolored: %v, %v", a.Color, b.Color)
	}
	if src.calls != 0 {
		t.Errorf("drew %d values for touching balls", src.calls)
	}
}

func TestCollideWithSelf(t *testing.T) {
	a := &Particle{X: 50, Y: 50, Radius: 10, Color: red}
	a.CollideWith(a, &seqSource{vals: []float64{0.5}})
	if a.Color != red {
		t.Errorf("self collision recolored ball to %v", a.Color)
	}
}

func TestCollideWithIdenticalDistinctBalls(t *testing.T) {
	a := &Particle{X: 50, Y: 50, VX: 1, Radius: 10, Color: red}
	b := &Particle{X: 50, Y: 50, VX: 1, Radius: 10, Color: red}
	a.CollideWith(b, &seqSource{vals: []float64{0.5}})
	if a.Color != gray || b.Color != gray {
		t.Errorf("coincident balls not recolored: %v, %v", a.Color, b.Color)
	}
}

func TestRender(t *testing.T) {
	var rec recorder
	p := Particle{X: 3, Y: 4, Radius: 15, Color: red}
	p.Render(&rec)
	if len(rec.circles) != 1 {
		t.Fatalf("got %d circles, want 1", len(rec.circles))
	}
	if c := rec.circles[0]; c.x != 3 || c.y != 4 || c.r != 15 || c.c != red {
		t.Errorf("circle = %+v", c)
	}
}
