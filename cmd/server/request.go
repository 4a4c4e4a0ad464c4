package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"net/url"
	"strconv"
	"time"

	mandel "github.com/marben/aa_mandel"
	"github.com/marben/aa_mandel/encode"
	"github.com/marben/aa_mandel/render"
)

var errTooLarge = errors.New("render request too large")

// job is a resolved, validated render request.
type job struct {
	cfg    mandel.Config
	shader render.Shader
	enc    mandel.Encoder
}

func resolve(r mandel.RenderRequest) (job, error) {
	cfg := r.Config
	if r.Region != "" {
		w, ok := mandel.LookupWindow(r.Region)
		if !ok {
			return job{}, fmt.Errorf("unknown region %q (want one of %v)", r.Region, mandel.WindowNames())
		}
		cfg.Window = w
	}
	if err := cfg.Validate(); err != nil {
		return job{}, err
	}

	name := r.Shader
	if name == "" {
		name = "gray"
	}
	shader, err := render.LookupShader(name)
	if err != nil {
		return job{}, err
	}
	enc, err := encode.ByName(r.Format, r.PNGWidth)
	if err != nil {
		return job{}, err
	}
	if r.Zstd {
		enc = encode.Zstd{Inner: enc}
	}
	return job{cfg: cfg, shader: shader, enc: enc}, nil
}

// requestFromQuery reads a render request from url query parameters.
// Parameters are checked in a fixed order, so the first malformed one is
// the one reported.
func requestFromQuery(q url.Values) (mandel.RenderRequest, error) {
	req := mandel.NewRenderRequest()
	cfg := &req.Config

	ints := []struct {
		key string
		dst *int
	}{
		{"width", &cfg.Width},
		{"height", &cfg.Height},
		{"iter", &cfg.Iterations},
		{"samples", &cfg.Samples},
		{"tile_width", &cfg.TileWidth},
		{"tile_height", &cfg.TileHeight},
		{"png_width", &req.PNGWidth},
	}
	for _, p := range ints {
		if v := q.Get(p.key); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				return mandel.RenderRequest{}, fmt.Errorf("parameter %s: %w", p.key, err)
			}
			*p.dst = n
		}
	}

	floats := []struct {
		key string
		dst *float64
	}{
		{"x0", &cfg.Window.X0},
		{"x1", &cfg.Window.X1},
		{"y0", &cfg.Window.Y0},
		{"y1", &cfg.Window.Y1},
		{"filter", &cfg.FilterRadius},
	}
	for _, p := range floats {
		if v := q.Get(p.key); v != "" {
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return mandel.RenderRequest{}, fmt.Errorf("parameter %s: %w", p.key, err)
			}
			*p.dst = f
		}
	}

	if v := q.Get("region"); v != "" {
		req.Region = v
	}
	if v := q.Get("shader"); v != "" {
		req.Shader = v
	}
	if v := q.Get("format"); v != "" {
		req.Format = v
	}
	if v := q.Get("zstd"); v != "" {
		z, err := strconv.ParseBool(v)
		if err != nil {
			return mandel.RenderRequest{}, fmt.Errorf("parameter zstd: %w", err)
		}
		req.Zstd = z
	}
	return req, nil
}

var _ mandel.Renderer = (*renderService)(nil)

// renderService renders one job at a time. It backs both the http handler
// and the irpc service.
type renderService struct {
	sem chan struct{}
	// maxWork caps pixels × samples of a single request.
	maxWork int
}

func newRenderService(maxWork int) *renderService {
	return &renderService{sem: make(chan struct{}, 1), maxWork: maxWork}
}

// Render resolves req, waits for any render in progress to finish, then
// renders and encodes the image.
func (s *renderService) Render(ctx context.Context, req mandel.RenderRequest) (string, []byte, error) {
	j, err := resolve(req)
	if err != nil {
		return "", nil, err
	}
	cfg := j.cfg
	// compared by division, the product can overflow
	if s.maxWork > 0 && cfg.Pixels() > s.maxWork/cfg.Samples {
		return "", nil, fmt.Errorf("%w: %dx%d pixels at %d samples, limit is %d pixel samples",
			errTooLarge, cfg.Width, cfg.Height, cfg.Samples, s.maxWork)
	}

	select {
	case s.sem <- struct{}{}:
	case <-ctx.Done():
		return "", nil, context.Cause(ctx)
	}
	defer func() { <-s.sem }()

	start := time.Now()
	buf, err := render.Image(cfg, j.shader)
	if err != nil {
		return "", nil, err
	}
	var out bytes.Buffer
	if err := j.enc.Encode(&out, buf); err != nil {
		return "", nil, fmt.Errorf("encode: %w", err)
	}
	log.Printf("rendered %dx%d (%d bytes) in %s", cfg.Width, cfg.Height, out.Len(), time.Since(start))
	return j.enc.ContentType(), out.Bytes(), nil
}
