package encode

import (
	"fmt"
	"image"
	"image/png"
	"io"

	"golang.org/x/image/draw"

	mandel "github.com/marben/aa_mandel"
)

// PNG encodes the buffer as an 8-bit PNG. When Width is positive and smaller
// than the buffer, the image is first scaled down to that width, keeping the
// aspect ratio.
type PNG struct {
	Width int
	// Gamma defaults to mandel.DefaultGamma when zero.
	Gamma float64
}

var _ mandel.Encoder = PNG{}

func (PNG) ContentType() string { return "image/png" }

func (p PNG) Encode(w io.Writer, buf *mandel.Buffer) error {
	gamma := p.Gamma
	if gamma == 0 {
		gamma = mandel.DefaultGamma
	}

	var img image.Image = buf.RGBA(gamma)
	if p.Width > 0 && p.Width < buf.Width {
		img = scale(img, p.Width)
	}

	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("png.Encode: %w", err)
	}
	return nil
}

func scale(src image.Image, width int) *image.RGBA {
	b := src.Bounds()
	height := max(1, b.Dy()*width/b.Dx())
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	return dst
}
