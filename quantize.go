package mandel

import "math"

// DefaultGamma is the display gamma applied before 8-bit quantization.
const DefaultGamma = 2.2

// Quantize gamma-corrects a linear channel value and truncates it to 8 bits.
// Inputs outside [0,1] are clamped first so the power never sees a negative
// base.
func Quantize(v, gamma float64) uint8 {
	switch {
	case !(v > 0): // also catches NaN
		return 0
	case v >= 1:
		return 255
	}
	return uint8(math.Pow(v, 1/gamma) * 255)
}

// QuantizeColor applies Quantize to every channel of c.
func QuantizeColor(c Color, gamma float64) (r, g, b uint8) {
	return Quantize(c.R, gamma), Quantize(c.G, gamma), Quantize(c.B, gamma)
}
