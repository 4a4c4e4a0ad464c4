package mandel

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
)

var (
	ErrInvalidSize    = errors.New("image dimensions must be positive")
	ErrInvalidBudget  = errors.New("iteration budget must be positive")
	ErrInvalidWindow  = errors.New("window bounds must satisfy x1 > x0 and y1 > y0")
	ErrInvalidSamples = errors.New("sample count must be positive")
	ErrInvalidFilter  = errors.New("filter radius must be positive")
	ErrInvalidTile    = errors.New("tile dimensions must be positive")
)

// Config describes one render. It is treated as immutable once a render
// session has been created from it.
type Config struct {
	Width        int     `json:"width"`
	Height       int     `json:"height"`
	Iterations   int     `json:"iterations"`
	Window       Window  `json:"window"`
	Samples      int     `json:"samples"`
	FilterRadius float64 `json:"filter_radius"`
	TileWidth    int     `json:"tile_width"`
	TileHeight   int     `json:"tile_height"`
}

// DefaultConfig returns the reference configuration: 640×480, 256
// iterations, the full set, 64 samples per pixel with a 2 pixel wide filter
// and 8×8 tiles.
func DefaultConfig() Config {
	return Config{
		Width:        640,
		Height:       480,
		Iterations:   256,
		Window:       FullSet,
		Samples:      64,
		FilterRadius: 2.0,
		TileWidth:    8,
		TileHeight:   8,
	}
}

// Validate reports the first constraint c violates. The returned error wraps
// one of the ErrInvalid* sentinels.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: width=%d height=%d", ErrInvalidSize, c.Width, c.Height)
	}
	if c.Width > math.MaxInt/c.Height {
		return fmt.Errorf("%w: %dx%d pixels overflow int", ErrInvalidSize, c.Width, c.Height)
	}
	if c.Iterations <= 0 {
		return fmt.Errorf("%w: iterations=%d", ErrInvalidBudget, c.Iterations)
	}
	w := c.Window
	if !finite(w.X0, w.X1, w.Y0, w.Y1) || !(w.X1 > w.X0) || !(w.Y1 > w.Y0) {
		return fmt.Errorf("%w: %s", ErrInvalidWindow, w)
	}
	if c.Samples <= 0 {
		return fmt.Errorf("%w: samples=%d", ErrInvalidSamples, c.Samples)
	}
	if !(c.FilterRadius > 0) || math.IsInf(c.FilterRadius, 0) {
		return fmt.Errorf("%w: filter_radius=%g", ErrInvalidFilter, c.FilterRadius)
	}
	if c.TileWidth <= 0 || c.TileHeight <= 0 {
		return fmt.Errorf("%w: tile=%dx%d", ErrInvalidTile, c.TileWidth, c.TileHeight)
	}
	return nil
}

// Pixels returns the number of pixels in the image. It does not overflow
// for a config that passes Validate.
func (c Config) Pixels() int { return c.Width * c.Height }

// LoadConfig decodes a JSON config on top of DefaultConfig, so fields absent
// from the document keep their default values. The result is validated.
func LoadConfig(r io.Reader) (Config, error) {
	c := DefaultConfig()
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&c); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
