package mandel

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func TestDefaultConfigValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() = %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		want   error
	}{
		{"zero width", func(c *Config) { c.Width = 0 }, ErrInvalidSize},
		{"negative height", func(c *Config) { c.Height = -4 }, ErrInvalidSize},
		{"pixel count overflows", func(c *Config) { c.Width, c.Height = math.MaxInt/2, 3 }, ErrInvalidSize},
		{"zero budget", func(c *Config) { c.Iterations = 0 }, ErrInvalidBudget},
		{"inverted x", func(c *Config) { c.Window.X0, c.Window.X1 = 1, -2 }, ErrInvalidWindow},
		{"empty y", func(c *Config) { c.Window.Y1 = c.Window.Y0 }, ErrInvalidWindow},
		{"nan bound", func(c *Config) { c.Window.X0 = math.NaN() }, ErrInvalidWindow},
		{"no samples", func(c *Config) { c.Samples = 0 }, ErrInvalidSamples},
		{"zero filter", func(c *Config) { c.FilterRadius = 0 }, ErrInvalidFilter},
		{"infinite filter", func(c *Config) { c.FilterRadius = math.Inf(1) }, ErrInvalidFilter},
		{"zero tile", func(c *Config) { c.TileHeight = 0 }, ErrInvalidTile},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := DefaultConfig()
			tt.modify(&c)
			if err := c.Validate(); !errors.Is(err, tt.want) {
				t.Errorf("Validate() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	c, err := LoadConfig(strings.NewReader(`{
		"width": 320,
		"samples": 16,
		"window": {"x0": -0.8, "x1": -0.7}
	}`))
	if err != nil {
		t.Fatal(err)
	}
	want := DefaultConfig()
	want.Width = 320
	want.Samples = 16
	want.Window.X0, want.Window.X1 = -0.8, -0.7
	if c != want {
		t.Errorf("LoadConfig = %+v\nwant %+v", c, want)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	for _, doc := range []string{
		`{"width": "wide"}`,
		`{"colour": "red"}`,
		`{"iterations": -1}`,
		`not json`,
	} {
		if _, err := LoadConfig(strings.NewReader(doc)); err == nil {
			t.Errorf("LoadConfig(%s) succeeded, want error", doc)
		}
	}
}
