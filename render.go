package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// canvas is a persistent offscreen image the simulation paints into.
// It is never cleared, so the translucent fade leaves trails behind the balls.
type canvas struct {
	img *ebiten.Image
}

func newCanvas(w, h int) *canvas {
	img := ebiten.NewImage(w, h)
	img.Fill(color.Black)
	return &canvas{img: img}
}

func (c *canvas) FillRect(x, y, w, h float64, clr color.Color) {
	vector.DrawFilledRect(c.img, float32(x), float32(y), float32(w), float32(h), clr, false)
}

func (c *canvas) FillCircle(cx, cy, r float64, clr color.Color) {
	vector.DrawFilledCircle(c.img, float32(cx), float32(cy), float32(r), clr, true)
}
