package render

import (
	"fmt"
	"log/slog"
	"time"

	mandel "github.com/marben/aa_mandel"
)

// Session renders one validated Config. The sample set and the window
// extents are computed once when the session is created and shared,
// read-only, by every pixel.
type Session struct {
	cfg     mandel.Config
	samples SampleSet
	shader  Shader

	winW, winH float64

	// OnTile, when set, is called after each tile has been rendered with the
	// number of tiles finished so far and the total.
	OnTile func(t mandel.Tile, done, total int)
}

// NewSession validates cfg and precomputes its sample set. A nil shader
// selects Grayscale.
func NewSession(cfg mandel.Config, shader Shader) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if shader == nil {
		shader = Grayscale{}
	}
	return &Session{
		cfg:     cfg,
		samples: NewSampleSet(cfg.Samples, cfg.FilterRadius),
		shader:  shader,
		winW:    cfg.Window.Width(),
		winH:    cfg.Window.Height(),
	}, nil
}

func (s *Session) Config() mandel.Config { return s.cfg }

func (s *Session) Samples() SampleSet { return s.samples }

// Pixel computes the filtered color of pixel (px, py): every sample offset
// around the pixel centre is mapped into the window, evaluated, shaded, and
// the weighted sum is normalised by the total sample weight.
func (s *Session) Pixel(px, py int) mandel.Color {
	centerX := float64(px) + 0.5
	centerY := float64(py) + 0.5
	w := float64(s.cfg.Width)
	h := float64(s.cfg.Height)
	win := s.cfg.Window

	var accum mandel.Color
	for _, smp := range s.samples.Samples {
		x := (centerX+smp.X)/w*s.winW + win.X0
		y := (centerY+smp.Y)/h*s.winH + win.Y0

		it := Escape(x, y, s.cfg.Iterations)
		c := s.shader.Shade(Point{X: x, Y: y, Window: win}, it, s.cfg.Iterations)

		accum = accum.Add(c.Scale(smp.Weight))
	}

	return accum.Scale(1 / s.samples.WeightSum)
}

// ResolvePixel writes the color of pixel (px, py) into buf. Coordinates
// outside the image are ignored, which lets edge tiles overhang.
func (s *Session) ResolvePixel(px, py int, buf *mandel.Buffer) {
	if px < 0 || py < 0 || px >= s.cfg.Width || py >= s.cfg.Height {
		return
	}
	buf.Set(px, py, s.Pixel(px, py))
}

// RenderTile resolves every pixel of tile t into buf. The parts of an edge
// tile that overhang the image are skipped.
func (s *Session) RenderTile(t mandel.Tile, buf *mandel.Buffer) {
	r := t.Bounds(s.cfg.TileWidth, s.cfg.TileHeight)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			s.ResolvePixel(x, y, buf)
		}
	}
}

// Grid returns the tile grid dimensions of the session's image.
func (s *Session) Grid() (cols, rows int) {
	return TileGrid(s.cfg.Width, s.cfg.Height, s.cfg.TileWidth, s.cfg.TileHeight)
}

// Render fills buf, tile by tile. buf must match the configured dimensions.
func (s *Session) Render(buf *mandel.Buffer) {
	if buf.Width != s.cfg.Width || buf.Height != s.cfg.Height {
		panic(fmt.Sprintf("render: buffer is %dx%d, config wants %dx%d",
			buf.Width, buf.Height, s.cfg.Width, s.cfg.Height))
	}

	log := Logger()
	cols, rows := s.Grid()
	total := cols * rows
	log.Info("render started",
		slog.Int("width", s.cfg.Width),
		slog.Int("height", s.cfg.Height),
		slog.Int("iterations", s.cfg.Iterations),
		slog.Int("samples", s.samples.Len()),
		slog.String("window", s.cfg.Window.String()),
		slog.Int("tiles", total))
	start := time.Now()

	done := 0
	for t := range Tiles(cols, rows) {
		s.RenderTile(t, buf)
		done++
		log.Debug("tile rendered", slog.Int("i", t.I), slog.Int("j", t.J), slog.Int("done", done))
		if s.OnTile != nil {
			s.OnTile(t, done, total)
		}
	}

	log.Info("render finished", slog.Duration("took", time.Since(start)))
}

// Image renders cfg into a freshly allocated buffer.
func Image(cfg mandel.Config, shader Shader) (*mandel.Buffer, error) {
	s, err := NewSession(cfg, shader)
	if err != nil {
		return nil, err
	}
	buf := mandel.NewBuffer(cfg.Width, cfg.Height)
	s.Render(buf)
	return buf, nil
}
