package render

import (
	"bufio"
	"fmt"
	"io"
)

// Sample is a subpixel offset from the pixel centre and its filter weight.
type Sample struct {
	X, Y   float64
	Weight float64
}

// SampleSet holds the offsets shared by every pixel of a render. The filter
// is space-invariant, so weights are computed once here and never per pixel.
type SampleSet struct {
	Samples   []Sample
	WeightSum float64
}

// NewSampleSet places count samples on the base 2/3 Halton sequence,
// spread over a square of side radius centred on the pixel, and weights them
// with a Mitchell filter covering that square.
//
// A single sample degenerates to a point sample at the pixel centre with
// weight 1: the first Halton point sits on the filter's zero crossing and
// would leave nothing to normalise by.
func NewSampleSet(count int, radius float64) SampleSet {
	if count == 1 {
		return SampleSet{Samples: []Sample{{Weight: 1}}, WeightSum: 1}
	}

	set := SampleSet{Samples: make([]Sample, count)}
	support := radius / 2
	for i := range count {
		hx, hy := Halton23(i)
		x := (hx - 0.5) * radius
		y := (hy - 0.5) * radius
		w := FilterWeight(x, y, support)

		set.Samples[i] = Sample{X: x, Y: y, Weight: w}
		set.WeightSum += w
	}
	return set
}

// Len returns the number of samples.
func (s SampleSet) Len() int { return len(s.Samples) }

// WriteSamplingData writes the sample offsets and weights of
// NewSampleSet(count, radius) as a whitespace separated table, one sample
// per line, suitable for plotting.
func WriteSamplingData(w io.Writer, count int, radius float64) error {
	set := NewSampleSet(count, radius)

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# X Y W (sum=%g)\n", set.WeightSum)
	for _, s := range set.Samples {
		fmt.Fprintf(bw, "%g %g %g\n", s.X, s.Y, s.Weight)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write sampling data: %w", err)
	}
	return nil
}

// filterCurveSteps is the number of intervals WriteFilterCurve divides the
// filter's support into.
const filterCurveSteps = 400

// WriteFilterCurve writes the 1D Mitchell curve of a filter with the given
// radius, sampled across [-radius, radius], one "x weight" pair per line.
func WriteFilterCurve(w io.Writer, radius float64) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "# X W")
	for i := 0; i <= filterCurveSteps; i++ {
		x := radius * (2*float64(i)/filterCurveSteps - 1)
		fmt.Fprintf(bw, "%g %g\n", x, Mitchell(x/radius, MitchellB, MitchellC))
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write filter curve: %w", err)
	}
	return nil
}
