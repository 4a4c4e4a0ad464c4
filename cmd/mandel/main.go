// mandel renders an anti-aliased image of the Mandelbrot set and writes it
// as a plain-text PPM (or PNG) to stdout or a file.
package main

import (
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/alexflint/go-arg"
	"github.com/pkg/profile"

	mandel "github.com/marben/aa_mandel"
	"github.com/marben/aa_mandel/encode"
	"github.com/marben/aa_mandel/render"
)

func main() {
	var a args
	arg.MustParse(&a)

	if err := run(a, os.Stdout); err != nil {
		log.Fatalf("FATAL: %v", err)
	}
}

// run renders the image described by a and writes it to --out, or to stdout
// when no output file was given.
func run(a args, stdout io.Writer) error {
	level := slog.LevelInfo
	if a.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	render.SetLogger(logger)

	if a.Profile != "" {
		mode, err := profileMode(a.Profile)
		if err != nil {
			return err
		}
		defer profile.Start(mode, profile.ProfilePath("."), profile.Quiet).Stop()
	}

	cfg, err := a.config()
	if err != nil {
		return err
	}

	out := stdout
	if a.Out != "" {
		f, err := os.Create(a.Out)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	if a.DumpSamples {
		return dumpSamples(out, cfg)
	}

	shader, err := a.shader()
	if err != nil {
		return err
	}
	enc, err := encode.ByName(a.Format, a.PNGWidth)
	if err != nil {
		return err
	}
	if a.Zstd {
		enc = encode.Zstd{Inner: enc}
	}

	session, err := render.NewSession(cfg, shader)
	if err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	cols, rows := session.Grid()
	lastPct := -10
	session.OnTile = func(_ mandel.Tile, done, total int) {
		if pct := done * 100 / total; pct/10 != lastPct/10 {
			lastPct = pct
			logger.Debug("progress", slog.Int("percent", pct))
		}
	}

	start := time.Now()
	buf := mandel.NewBuffer(cfg.Width, cfg.Height)
	session.Render(buf)
	logger.Info("rendered",
		slog.String("size", fmt.Sprintf("%dx%d", cfg.Width, cfg.Height)),
		slog.Int("tiles", cols*rows),
		slog.Duration("took", time.Since(start)))

	if err := enc.Encode(out, buf); err != nil {
		return fmt.Errorf("encode %s: %w", a.Format, err)
	}
	if f, ok := out.(*os.File); ok && f != os.Stdout {
		if err := f.Close(); err != nil {
			return fmt.Errorf("close %q: %w", a.Out, err)
		}
		logger.Info("image saved", slog.String("file", a.Out))
	}
	return nil
}

func profileMode(name string) (func(*profile.Profile), error) {
	switch name {
	case "cpu":
		return profile.CPUProfile, nil
	case "mem":
		return profile.MemProfile, nil
	case "trace":
		return profile.TraceProfile, nil
	}
	return nil, fmt.Errorf("unknown profile %q (want cpu, mem or trace)", name)
}

// dumpSamples writes the sample table and the 1D filter curve as two data
// blocks separated by a double blank line, the way gnuplot indexes them.
func dumpSamples(w io.Writer, cfg mandel.Config) error {
	if err := render.WriteSamplingData(w, cfg.Samples, cfg.FilterRadius); err != nil {
		return err
	}
	if _, err := io.WriteString(w, "\n\n"); err != nil {
		return fmt.Errorf("write sampling data: %w", err)
	}
	return render.WriteFilterCurve(w, cfg.FilterRadius)
}
