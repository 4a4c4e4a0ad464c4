package encode

import (
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"

	mandel "github.com/marben/aa_mandel"
)

// Zstd compresses the output of Inner with zstd.
type Zstd struct {
	Inner mandel.Encoder
	// Level defaults to zstd.SpeedDefault when zero.
	Level zstd.EncoderLevel
}

var _ mandel.Encoder = Zstd{}

func (Zstd) ContentType() string { return "application/zstd" }

func (z Zstd) Encode(w io.Writer, buf *mandel.Buffer) error {
	level := z.Level
	if level == 0 {
		level = zstd.SpeedDefault
	}

	enc, err := zstd.NewWriter(w, zstd.WithEncoderLevel(level))
	if err != nil {
		return fmt.Errorf("zstd.NewWriter: %w", err)
	}
	if err := z.Inner.Encode(enc, buf); err != nil {
		enc.Close()
		return err
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("zstd encode: %w", err)
	}
	return nil
}
