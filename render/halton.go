package render

// Halton returns the radical inverse of index in the given base, a value in
// [0,1). base must be at least 2.
func Halton(index, base int) float64 {
	result := 0.0
	inv := 1 / float64(base)
	f := inv
	for i := index; i > 0; i /= base {
		result += f * float64(i%base)
		f *= inv
	}
	return result
}

// Halton23 pairs the base 2 and base 3 radical inverses of index.
func Halton23(index int) (x, y float64) {
	return Halton(index, 2), Halton(index, 3)
}
