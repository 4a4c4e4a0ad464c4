package render

import (
	"math"
	"testing"
)

func TestMitchell(t *testing.T) {
	tests := []struct {
		x    float64
		want float64
	}{
		{0, 16.0 / 18.0},
		// s = 1, both branches meet at (6 - 2B - ... ) / 6 = 1/18
		{0.5, 1.0 / 18.0},
		{-0.5, 1.0 / 18.0},
		{1, 0},
		{1.5, 0},
	}
	for _, tt := range tests {
		if got := Mitchell(tt.x, MitchellB, MitchellC); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("Mitchell(%v) = %v, want %v", tt.x, got, tt.want)
		}
	}
}

func TestMitchellNegativeLobe(t *testing.T) {
	if got := Mitchell(0.75, MitchellB, MitchellC); got >= 0 {
		t.Errorf("Mitchell(0.75) = %v, want a negative value", got)
	}
}

func TestFilterWeightSymmetric(t *testing.T) {
	for _, r := range []float64{0.5, 1, 2, 3.3} {
		for dx := -1.5; dx <= 1.5; dx += 0.125 {
			for dy := -1.5; dy <= 1.5; dy += 0.375 {
				a := FilterWeight(dx, dy, r)
				b := FilterWeight(-dx, -dy, r)
				if a != b {
					t.Fatalf("FilterWeight(%v, %v, %v) = %v, mirrored = %v", dx, dy, r, a, b)
				}
			}
		}
	}
}

func TestFilterWeightSeparable(t *testing.T) {
	got := FilterWeight(0.3, -0.2, 1)
	want := Mitchell(0.3, MitchellB, MitchellC) * Mitchell(-0.2, MitchellB, MitchellC)
	if got != want {
		t.Errorf("FilterWeight(0.3, -0.2, 1) = %v, want %v", got, want)
	}
}
