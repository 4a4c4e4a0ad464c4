// Package encode serializes rendered buffers: the plain-text PPM (P3)
// format, PNG, and a zstd wrapper around either.
package encode

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	mandel "github.com/marben/aa_mandel"
)

// MaxVal is the maximum channel value written in PPM headers.
const MaxVal = 255

// PPM writes the ASCII "P3" pixel map: a header line "P3 <w> <h> 255"
// followed by one line per image row, top to bottom, holding
// space-separated R G B triples. Rows carry no trailing space after the
// last triple; netpbm readers treat any whitespace run as a separator.
// Channels are gamma corrected and truncated to 8 bits.
type PPM struct {
	// Gamma defaults to mandel.DefaultGamma when zero.
	Gamma float64
}

var _ mandel.Encoder = PPM{}

func (PPM) ContentType() string { return "image/x-portable-pixmap" }

func (p PPM) Encode(w io.Writer, buf *mandel.Buffer) error {
	gamma := p.Gamma
	if gamma == 0 {
		gamma = mandel.DefaultGamma
	}

	bw := bufio.NewWriterSize(w, 64<<10)
	fmt.Fprintf(bw, "P3 %d %d %d\n", buf.Width, buf.Height, MaxVal)

	// up to "255 255 255 " per pixel
	line := make([]byte, 0, buf.Width*12)
	for y := 0; y < buf.Height; y++ {
		line = line[:0]
		for x := 0; x < buf.Width; x++ {
			if x > 0 {
				line = append(line, ' ')
			}
			r, g, b := mandel.QuantizeColor(buf.At(x, y), gamma)
			line = strconv.AppendUint(line, uint64(r), 10)
			line = append(line, ' ')
			line = strconv.AppendUint(line, uint64(g), 10)
			line = append(line, ' ')
			line = strconv.AppendUint(line, uint64(b), 10)
		}
		line = append(line, '\n')
		if _, err := bw.Write(line); err != nil {
			return fmt.Errorf("write ppm row %d: %w", y, err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write ppm: %w", err)
	}
	return nil
}
