package render

import "testing"

func TestEscape(t *testing.T) {
	tests := []struct {
		name         string
		cReal, cImag float64
		budget       int
		want         int
	}{
		{"far outside", 3, 0, 50, 0},
		{"origin exhausts budget", 0, 0, 100, 99},
		{"origin small budget", 0, 0, 1, 0},
		{"minus one is periodic", -1, 0, 64, 63},
		{"minus two stays on the boundary", -2, 0, 32, 31},
		// z: 1, 2, 5 -> |5|² > 4 at index 2
		{"one escapes", 1, 0, 50, 2},
		{"i is periodic", 0, 1, 40, 39},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Escape(tt.cReal, tt.cImag, tt.budget); got != tt.want {
				t.Errorf("Escape(%v, %v, %d) = %d, want %d", tt.cReal, tt.cImag, tt.budget, got, tt.want)
			}
		})
	}
}

func TestEscapeWithinBudget(t *testing.T) {
	for _, budget := range []int{1, 2, 10, 256} {
		for _, c := range [][2]float64{{0.3, 0.5}, {-0.75, 0.1}, {0.25, 0}, {-1.5, 0.01}} {
			got := Escape(c[0], c[1], budget)
			if got < 0 || got > budget-1 {
				t.Errorf("Escape(%v, %v, %d) = %d, outside [0,%d]", c[0], c[1], budget, got, budget-1)
			}
		}
	}
}

func BenchmarkEscape(b *testing.B) {
	for b.Loop() {
		Escape(-0.75, 0.1, 256)
	}
}
