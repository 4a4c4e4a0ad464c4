package mandel

import (
	"image"
	"math"
	"testing"
)

func TestTileBounds(t *testing.T) {
	tests := []struct {
		tile   Tile
		tw, th int
		want   image.Rectangle
	}{
		{Tile{I: 0, J: 0}, 8, 8, image.Rect(0, 0, 8, 8)},
		{Tile{I: 2, J: 1}, 8, 8, image.Rect(16, 8, 24, 16)},
		{Tile{I: 1, J: 3}, 16, 4, image.Rect(16, 12, 32, 16)},
	}
	for _, tt := range tests {
		if got := tt.tile.Bounds(tt.tw, tt.th); got != tt.want {
			t.Errorf("%v.Bounds(%d, %d) = %v, want %v", tt.tile, tt.tw, tt.th, got, tt.want)
		}
	}
}

func TestLookupWindow(t *testing.T) {
	for _, name := range WindowNames() {
		w, ok := LookupWindow(name)
		if !ok {
			t.Fatalf("LookupWindow(%q) not found", name)
		}
		if !(w.Width() > 0 && w.Height() > 0) {
			t.Errorf("window %q = %v is empty", name, w)
		}
	}
	if w, _ := LookupWindow("full"); w != FullSet {
		t.Errorf("full = %v, want %v", w, FullSet)
	}
	if _, ok := LookupWindow("nowhere"); ok {
		t.Error("LookupWindow(nowhere) found a window")
	}
}

func TestBufferIndex(t *testing.T) {
	b := NewBuffer(5, 3)
	if len(b.Pix) != 15 {
		t.Fatalf("len(Pix) = %d, want 15", len(b.Pix))
	}
	b.Set(4, 2, Gray(0.5))
	if b.Pix[14] != Gray(0.5) || b.At(4, 2) != Gray(0.5) {
		t.Error("Set(4, 2) did not land on the last pixel")
	}
}

func TestQuantize(t *testing.T) {
	tests := []struct {
		v    float64
		want uint8
	}{
		{0, 0},
		{-0.3, 0},
		{math.NaN(), 0},
		{1, 255},
		{1.7, 255},
		{math.Inf(1), 255},
		{0.5, 186},
		{0.25, 135},
	}
	for _, tt := range tests {
		if got := Quantize(tt.v, DefaultGamma); got != tt.want {
			t.Errorf("Quantize(%v) = %d, want %d", tt.v, got, tt.want)
		}
	}
}

func TestBufferRGBA(t *testing.T) {
	b := NewBuffer(2, 1)
	b.Set(1, 0, Color{R: 1, G: 0.5, B: -1})
	img := b.RGBA(DefaultGamma)
	got := img.RGBAAt(1, 0)
	if got.R != 255 || got.G != 186 || got.B != 0 || got.A != 255 {
		t.Errorf("RGBAAt(1, 0) = %v", got)
	}
	if got := img.RGBAAt(0, 0); got.R != 0 || got.A != 255 {
		t.Errorf("RGBAAt(0, 0) = %v", got)
	}
}
