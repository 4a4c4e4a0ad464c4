package mandel

import (
	"fmt"
	"image"
	"sort"
)

// Window is the rectangle of the complex plane mapped onto the image.
// X runs along the real axis, Y along the imaginary axis.
type Window struct {
	X0 float64 `json:"x0"`
	X1 float64 `json:"x1"`
	Y0 float64 `json:"y0"`
	Y1 float64 `json:"y1"`
}

func (w Window) Width() float64  { return w.X1 - w.X0 }
func (w Window) Height() float64 { return w.Y1 - w.Y0 }

func (w Window) String() string {
	return fmt.Sprintf("[%g,%g]x[%g,%g]", w.X0, w.X1, w.Y0, w.Y1)
}

// Classic regions / landmarks in the Mandelbrot set
var (
	// Full view of the set
	FullSet = Window{X0: -2.0, X1: 1.0, Y0: -1.0, Y1: 1.0}

	// Seahorse Valley – dense filaments and repeating “seahorse” curls
	SeahorseValley = Window{X0: -0.8, X1: -0.7, Y0: 0.05, Y1: 0.15}

	// Elephant Valley – large bulb with trunk-like tendrils
	ElephantValley = Window{X0: -1.85, X1: -1.75, Y0: -0.10, Y1: -0.02}

	// Spiral Minibrot – small Mandelbrot copy with tight spiral arms
	SpiralMinibrot = Window{X0: -0.7435, X1: -0.7420, Y0: 0.1310, Y1: 0.1325}

	// Triple Spiral – threefold symmetric spiral structure
	TripleSpiral = Window{X0: -0.7480, X1: -0.7450, Y0: 0.0950, Y1: 0.0980}

	// Valley of the Dragon – deep, highly detailed spiral filaments
	ValleyOfTheDragon = Window{X0: -0.7400, X1: -0.7350, Y0: 0.1800, Y1: 0.1850}

	// Minibrot in a Mini-Spiral – self-similar Mandelbrot copy inside a spiral arm
	MinibrotInMiniSpiral = Window{X0: -1.7390, X1: -1.7375, Y0: -0.0235, Y1: -0.0220}
)

var landmarks = map[string]Window{
	"full":          FullSet,
	"seahorse":      SeahorseValley,
	"elephant":      ElephantValley,
	"spiral":        SpiralMinibrot,
	"triple-spiral": TripleSpiral,
	"dragon":        ValleyOfTheDragon,
	"minibrot":      MinibrotInMiniSpiral,
}

// LookupWindow returns the landmark window registered under name.
func LookupWindow(name string) (Window, bool) {
	w, ok := landmarks[name]
	return w, ok
}

// WindowNames lists the landmark names in sorted order.
func WindowNames() []string {
	names := make([]string, 0, len(landmarks))
	for n := range landmarks {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Tile addresses a cell of the tile grid. It owns no pixels.
type Tile struct {
	I, J int
}

// Bounds returns the pixel rectangle covered by the tile. The rectangle is
// not clipped to the image, tiles on the right and bottom edges may overhang.
func (t Tile) Bounds(tileW, tileH int) image.Rectangle {
	x0 := t.I * tileW
	y0 := t.J * tileH
	return image.Rect(x0, y0, x0+tileW, y0+tileH)
}

// Color holds linear channel intensities. Values may leave [0,1] slightly
// because of the filter's negative lobes.
type Color struct {
	R, G, B float64
}

// Gray returns a color with all three channels set to v.
func Gray(v float64) Color { return Color{v, v, v} }

func (c Color) Add(o Color) Color { return Color{c.R + o.R, c.G + o.G, c.B + o.B} }

func (c Color) Scale(s float64) Color { return Color{c.R * s, c.G * s, c.B * s} }

// Buffer is a dense row-major image of linear colors.
type Buffer struct {
	Width, Height int
	Pix           []Color
}

// NewBuffer allocates a zeroed w×h buffer.
func NewBuffer(w, h int) *Buffer {
	return &Buffer{Width: w, Height: h, Pix: make([]Color, w*h)}
}

func (b *Buffer) Index(x, y int) int { return y*b.Width + x }

func (b *Buffer) At(x, y int) Color { return b.Pix[b.Index(x, y)] }

func (b *Buffer) Set(x, y int, c Color) { b.Pix[b.Index(x, y)] = c }

func (b *Buffer) Bounds() image.Rectangle { return image.Rect(0, 0, b.Width, b.Height) }

// RGBA quantizes the buffer into an 8-bit image using the given gamma.
func (b *Buffer) RGBA(gamma float64) *image.RGBA {
	img := image.NewRGBA(b.Bounds())
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			r, g, bl := QuantizeColor(b.At(x, y), gamma)
			i := img.PixOffset(x, y)
			img.Pix[i+0] = r
			img.Pix[i+1] = g
			img.Pix[i+2] = bl
			img.Pix[i+3] = 0xff
		}
	}
	return img
}
