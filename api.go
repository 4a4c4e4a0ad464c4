package mandel

import (
	"context"
)

//go:generate go run github.com/marben/irpc/cmd/irpc@v0.0.0-20260109104542-2d3fde99869b api.go

// RenderRequest describes an image a client wants rendered. A non-empty
// Region replaces Config.Window with the named landmark. Empty Shader and
// Format select grayscale and ppm.
type RenderRequest struct {
	Config   Config
	Region   string
	Shader   string
	Format   string
	PNGWidth int
	Zstd     bool
}

// NewRenderRequest returns a request for the default config.
func NewRenderRequest() RenderRequest {
	return RenderRequest{
		Config: DefaultConfig(),
		Shader: "gray",
		Format: "ppm",
	}
}

// Renderer renders whole images and returns them encoded.
type Renderer interface {
	Render(ctx context.Context, req RenderRequest) (contentType string, data []byte, err error)
}
