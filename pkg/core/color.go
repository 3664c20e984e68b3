package core

import (
	"image/color"
	"math"
)

// Color is an RGB intensity in 0..255 units. Components may exceed 255 while
// light is being accumulated; RGBA clamps them.
type Color struct {
	R, G, B float64
}

// Black is the zero color
var Black = Color{}

// NewColor creates a new color
func NewColor(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

// Add returns the sum of the color and all others
func (c Color) Add(others ...Color) Color {
	for _, o := range others {
		c.R += o.R
		c.G += o.G
		c.B += o.B
	}
	return c
}

// Scale returns the color multiplied by k
func (c Color) Scale(k float64) Color {
	return Color{c.R * k, c.G * k, c.B * k}
}

// Reduce returns the color divided by k, used for averaging samples
func (c Color) Reduce(k float64) Color {
	return Color{c.R / k, c.G / k, c.B / k}
}

// Equal reports whether two colors match within Epsilon per component
func (c Color) Equal(other Color) bool {
	return IsZero(c.R-other.R) && IsZero(c.G-other.G) && IsZero(c.B-other.B)
}

// RGBA converts the color to 8-bit channels, clamping to [0, 255]
func (c Color) RGBA() color.RGBA {
	return color.RGBA{
		R: toByte(c.R),
		G: toByte(c.G),
		B: toByte(c.B),
		A: 255,
	}
}

func toByte(v float64) uint8 {
	return uint8(math.Round(max(0, min(255, v))))
}
