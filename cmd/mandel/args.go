package main

import (
	"fmt"
	"os"

	mandel "github.com/marben/aa_mandel"
	"github.com/marben/aa_mandel/render"
)

// args are the command line options. Numeric render options are pointers so
// that only the flags actually given override the config file and region.
type args struct {
	Config string `arg:"-c,--config" help:"JSON render config; flags override its values"`
	Region string `arg:"-r,--region" help:"named window: full, seahorse, elephant, spiral, triple-spiral, dragon, minibrot"`

	Width      *int     `arg:"--width" help:"image width in pixels [default: 640]"`
	Height     *int     `arg:"--height" help:"image height in pixels [default: 480]"`
	Iterations *int     `arg:"-i,--iter" help:"iteration budget per sample [default: 256]"`
	X0         *float64 `arg:"--x0" help:"left edge of the window on the real axis [default: -2]"`
	X1         *float64 `arg:"--x1" help:"right edge of the window on the real axis [default: 1]"`
	Y0         *float64 `arg:"--y0" help:"first row of the window on the imaginary axis [default: -1]"`
	Y1         *float64 `arg:"--y1" help:"last row of the window on the imaginary axis [default: 1]"`
	Samples    *int     `arg:"-s,--samples" help:"subpixel samples per pixel [default: 64]"`
	Filter     *float64 `arg:"-f,--filter" help:"width of the reconstruction filter in pixels [default: 2]"`
	TileWidth  *int     `arg:"--tile-width" help:"tile width in pixels [default: 8]"`
	TileHeight *int     `arg:"--tile-height" help:"tile height in pixels [default: 8]"`

	Shader   string `arg:"--shader" default:"gray" help:"gray, gradient, gradient-interior or ramp"`
	Format   string `arg:"--format" default:"ppm" help:"ppm or png"`
	PNGWidth int    `arg:"--png-width" help:"scale png output down to this width"`
	Zstd     bool   `arg:"--zstd" help:"compress the output with zstd"`
	Out      string `arg:"-o,--out" help:"output file (default stdout)"`

	DumpSamples bool   `arg:"--dump-samples" help:"print the subpixel sample offsets and weights instead of rendering"`
	Profile     string `arg:"--profile" help:"write a cpu, mem or trace profile to the current directory"`
	Verbose     bool   `arg:"-v,--verbose" help:"log progress"`
}

func (args) Description() string {
	return "Renders an anti-aliased Mandelbrot set as a plain-text PPM image."
}

// config merges defaults, the config file, the named region and the
// individual flags, in that order, and validates the result.
func (a args) config() (mandel.Config, error) {
	cfg := mandel.DefaultConfig()
	if a.Config != "" {
		f, err := os.Open(a.Config)
		if err != nil {
			return mandel.Config{}, fmt.Errorf("open config: %w", err)
		}
		defer f.Close()
		if cfg, err = mandel.LoadConfig(f); err != nil {
			return mandel.Config{}, fmt.Errorf("config %q: %w", a.Config, err)
		}
	}

	if a.Region != "" {
		w, ok := mandel.LookupWindow(a.Region)
		if !ok {
			return mandel.Config{}, fmt.Errorf("unknown region %q (want one of %v)", a.Region, mandel.WindowNames())
		}
		cfg.Window = w
	}

	setInt(&cfg.Width, a.Width)
	setInt(&cfg.Height, a.Height)
	setInt(&cfg.Iterations, a.Iterations)
	setFloat(&cfg.Window.X0, a.X0)
	setFloat(&cfg.Window.X1, a.X1)
	setFloat(&cfg.Window.Y0, a.Y0)
	setFloat(&cfg.Window.Y1, a.Y1)
	setInt(&cfg.Samples, a.Samples)
	setFloat(&cfg.FilterRadius, a.Filter)
	setInt(&cfg.TileWidth, a.TileWidth)
	setInt(&cfg.TileHeight, a.TileHeight)

	if err := cfg.Validate(); err != nil {
		return mandel.Config{}, err
	}
	return cfg, nil
}

func (a args) shader() (render.Shader, error) {
	return render.LookupShader(a.Shader)
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}

func setFloat(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}
