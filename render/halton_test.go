package render

import (
	"math"
	"testing"
)

func TestHalton(t *testing.T) {
	tests := []struct {
		index, base int
		want        float64
	}{
		{0, 2, 0},
		{0, 3, 0},
		{0, 7, 0},
		{1, 2, 0.5},
		{2, 2, 0.25},
		{3, 2, 0.75},
		{4, 2, 0.125},
		{1, 3, 1.0 / 3},
		{2, 3, 2.0 / 3},
		{3, 3, 1.0 / 9},
	}
	for _, tt := range tests {
		if got := Halton(tt.index, tt.base); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("Halton(%d, %d) = %v, want %v", tt.index, tt.base, got, tt.want)
		}
	}
}

func TestHaltonRange(t *testing.T) {
	for i := range 4096 {
		x, y := Halton23(i)
		if x < 0 || x >= 1 || y < 0 || y >= 1 {
			t.Fatalf("Halton23(%d) = (%v, %v), want values in [0,1)", i, x, y)
		}
	}
}

func TestHalton23Pairs(t *testing.T) {
	x, y := Halton23(5)
	if x != Halton(5, 2) || y != Halton(5, 3) {
		t.Errorf("Halton23(5) = (%v, %v), want (%v, %v)", x, y, Halton(5, 2), Halton(5, 3))
	}
}
