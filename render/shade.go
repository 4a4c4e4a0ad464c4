package render

import (
	"fmt"
	"sort"

	"github.com/lucasb-eyer/go-colorful"

	mandel "github.com/marben/aa_mandel"
)

// Point is a sample position in the complex plane together with the window
// it was taken from.
type Point struct {
	X, Y   float64
	Window mandel.Window
}

// Shader turns an escape-time result into a linear color.
type Shader interface {
	Shade(p Point, it, budget int) mandel.Color
}

// Grayscale maps it/budget to a gray level. Points that reach the end of the
// budget are black so the set's interior does not show up as a bright plate.
type Grayscale struct{}

func (Grayscale) Shade(_ Point, it, budget int) mandel.Color {
	if it >= budget-1 {
		return mandel.Color{}
	}
	return mandel.Gray(float64(it) / float64(budget))
}

var white = colorful.Color{R: 1, G: 1, B: 1}

// Gradient tints each sample by its position in the window, hue along the
// real axis and saturation along the imaginary axis, and fades the tint to
// white as the escape time approaches the budget. A result that quantizes
// to pure white is taken to be inside the set and painted black.
//
// With DetectInterior set, samples that exhaust the budget are painted black
// directly instead. This is exact for small budgets where the white test
// misses, at the cost of a slightly different boundary.
type Gradient struct {
	DetectInterior bool
}

func (g Gradient) Shade(p Point, it, budget int) mandel.Color {
	if g.DetectInterior && it >= budget-1 {
		return mandel.Color{}
	}

	u := clamp01((p.X - p.Window.X0) / p.Window.Width())
	v := clamp01((p.Y - p.Window.Y0) / p.Window.Height())
	base := colorful.Hsv(360*u, 0.2+0.25*v, 1)

	t := float64(it) / float64(budget)
	c := base.BlendRgb(white, t)
	if r, gr, b := c.RGB255(); r == 255 && gr == 255 && b == 255 {
		return mandel.Color{}
	}
	return mandel.Color{R: c.R, G: c.G, B: c.B}
}

// Ramp blends linearly from a deep blue to a pale gray. Escape times up to
// rampCutoff stay at the start color so the fast-escaping halo stays flat.
type Ramp struct{}

const rampCutoff = 20

var (
	rampFrom = colorful.Color{R: 0.039947171001526, G: 0.098689197541096, B: 0.320381548791812}
	rampTo   = colorful.Color{R: 0.819963705323531, G: 0.827725794455035, B: 0.851251645184511}
)

func (Ramp) Shade(_ Point, it, budget int) mandel.Color {
	v := 0.0
	if it > rampCutoff {
		v = float64(it-rampCutoff-1) / float64(budget-rampCutoff-1)
	}
	c := rampFrom.BlendRgb(rampTo, v)
	return mandel.Color{R: c.R, G: c.G, B: c.B}
}

var shaders = map[string]Shader{
	"gray":              Grayscale{},
	"gradient":          Gradient{},
	"gradient-interior": Gradient{DetectInterior: true},
	"ramp":              Ramp{},
}

// LookupShader returns the shader registered under name.
func LookupShader(name string) (Shader, error) {
	s, ok := shaders[name]
	if !ok {
		return nil, fmt.Errorf("unknown shader %q (want one of %v)", name, ShaderNames())
	}
	return s, nil
}

// ShaderNames lists the registered shader names in sorted order.
func ShaderNames() []string {
	names := make([]string, 0, len(shaders))
	for n := range shaders {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
