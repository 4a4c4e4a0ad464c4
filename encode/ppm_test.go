package encode

import (
	"bytes"
	"errors"
	"strconv"
	"strings"
	"testing"

	mandel "github.com/marben/aa_mandel"
	"github.com/marben/aa_mandel/render"
)

func TestPPMLayout(t *testing.T) {
	cfg := mandel.DefaultConfig()
	cfg.Width, cfg.Height = 4, 4
	cfg.Iterations = 10
	cfg.Samples = 1

	buf, err := render.Image(cfg, nil)
	if err != nil {
		t.Fatal(err)
	}
	var out bytes.Buffer
	if err := (PPM{}).Encode(&out, buf); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(out.String(), "\n")
	// trailing newline leaves an empty last element
	if len(lines) != 6 || lines[5] != "" {
		t.Fatalf("got %d lines, want header + 4 rows:\n%s", len(lines), out.String())
	}
	if lines[0] != "P3 4 4 255" {
		t.Errorf("header = %q, want %q", lines[0], "P3 4 4 255")
	}
	for i, row := range lines[1:5] {
		fields := strings.Fields(row)
		if len(fields) != 4*3 {
			t.Errorf("row %d has %d values, want 12: %q", i, len(fields), row)
		}
		for _, f := range fields {
			v, err := strconv.Atoi(f)
			if err != nil || v < 0 || v > 255 {
				t.Errorf("row %d: bad channel value %q", i, f)
			}
		}
		if strings.HasSuffix(row, " ") {
			t.Errorf("row %d has a trailing space", i)
		}
	}
}

func TestPPMQuantization(t *testing.T) {
	buf := mandel.NewBuffer(3, 1)
	buf.Set(0, 0, mandel.Color{R: 0, G: 1, B: 0.5})
	// filter ringing can push channels outside [0,1]
	buf.Set(1, 0, mandel.Color{R: -0.01, G: 1.02, B: 0.25})
	buf.Set(2, 0, mandel.Color{R: 0.001, G: 0.999, B: 0.9})

	var out bytes.Buffer
	if err := (PPM{}).Encode(&out, buf); err != nil {
		t.Fatal(err)
	}
	want := "P3 3 1 255\n" +
		"0 255 186 0 255 135 11 254 243\n"
	if out.String() != want {
		t.Errorf("Encode =\n%q\nwant\n%q", out.String(), want)
	}
}

func TestPPMIdempotent(t *testing.T) {
	cfg := mandel.DefaultConfig()
	cfg.Width, cfg.Height = 10, 7
	cfg.Samples = 8
	cfg.Iterations = 40

	encode := func() []byte {
		buf, err := render.Image(cfg, render.Gradient{})
		if err != nil {
			t.Fatal(err)
		}
		var out bytes.Buffer
		if err := (PPM{}).Encode(&out, buf); err != nil {
			t.Fatal(err)
		}
		return out.Bytes()
	}
	if a, b := encode(), encode(); !bytes.Equal(a, b) {
		t.Error("two renders of the same config encode differently")
	}
}

type failWriter struct{}

var errFail = errors.New("disk full")

func (failWriter) Write([]byte) (int, error) { return 0, errFail }

func TestPPMWriteError(t *testing.T) {
	buf := mandel.NewBuffer(2, 2)
	if err := (PPM{}).Encode(failWriter{}, buf); !errors.Is(err, errFail) {
		t.Errorf("Encode err = %v, want wrapped %v", err, errFail)
	}
}
