package render

import "math"

// Parameters of the Mitchell-Netravali filter recommended by its authors.
const (
	MitchellB = 1.0 / 3.0
	MitchellC = 1.0 / 3.0
)

// Mitchell evaluates the Mitchell-Netravali cubic at x, where x is the
// distance from the filter centre normalised so that the support is [-1,1].
func Mitchell(x, b, c float64) float64 {
	x = math.Abs(2 * x)

	switch {
	case x < 1:
		return (1.0 / 6.0) * ((12-9*b-6*c)*x*x*x +
			(-18+12*b+6*c)*x*x +
			(6 - 2*b))
	case x < 2:
		return (1.0 / 6.0) * ((-b-6*c)*x*x*x +
			(6*b+30*c)*x*x +
			(-12*b-48*c)*x +
			(8*b + 24*c))
	default:
		return 0
	}
}

// FilterWeight is the separable 2D Mitchell weight of the offset (dx, dy)
// for a filter whose half-width is size.
func FilterWeight(dx, dy, size float64) float64 {
	inv := 1 / size
	return Mitchell(dx*inv, MitchellB, MitchellC) * Mitchell(dy*inv, MitchellB, MitchellC)
}
