package core

import (
	"image/color"

	"github.com/chewxy/math32"
)

// Color is radiance in linear space, one component per channel
type Color = Vec3

// NewColor creates a new Color
func NewColor(r, g, b float32) Color {
	return Color{X: r, Y: g, Z: b}
}

// Black returns the zero color
func Black() Color {
	return Color{}
}

// White returns unit radiance on every channel
func White() Color {
	return Color{X: 1, Y: 1, Z: 1}
}

// displayIntensity is the range quantized channels are clamped into before scaling to 256
var displayIntensity = NewInterval(0.000, 0.999)

// LinearToGamma converts a linear component to gamma 2 space
func LinearToGamma(component float32) float32 {
	if component > 0 {
		return math32.Sqrt(component)
	}
	return 0
}

// QuantizeChannel maps a linear component to an 8-bit channel value
func QuantizeChannel(component float32) uint8 {
	return uint8(256 * displayIntensity.Clamp(LinearToGamma(component)))
}

// ToRGBA converts a linear color to an opaque 8-bit RGBA value with gamma correction and clamping
func ToRGBA(c Color) color.RGBA {
	return color.RGBA{
		R: QuantizeChannel(c.X),
		G: QuantizeChannel(c.Y),
		B: QuantizeChannel(c.Z),
		A: 255,
	}
}
