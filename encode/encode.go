package encode

import (
	"fmt"

	mandel "github.com/marben/aa_mandel"
)

// Formats lists the names accepted by ByName.
var Formats = []string{"ppm", "png"}

// ByName returns the encoder for format. pngWidth is only used by "png".
func ByName(format string, pngWidth int) (mandel.Encoder, error) {
	switch format {
	case "", "ppm":
		return PPM{}, nil
	case "png":
		return PNG{Width: pngWidth}, nil
	}
	return nil, fmt.Errorf("unknown format %q (want one of %v)", format, Formats)
}
