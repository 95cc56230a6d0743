package balls

import (
	"image/color"
	"math"
)

// Source yields uniform floats in [0, 1). *rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

// RandInt returns an integer drawn uniformly from the closed range [min, max].
func RandInt(src Source, min, max int) int {
	return int(math.Floor(src.Float64()*float64(max-min+1))) + min
}

// RandomRGB returns an opaque color with each channel drawn from [0, 255].
func RandomRGB(src Source) color.RGBA {
	return color.RGBA{
		R: uint8(RandInt(src, 0, 255)),
		G: uint8(RandInt(src, 0, 255)),
		B: uint8(RandInt(src, 0, 255)),
		A: 255,
	}
}
