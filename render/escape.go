package render

// Escape iterates z ← z² + c starting from z = c and returns the loop index
// at which |z| first exceeds 2. When the orbit stays bounded for the whole
// budget the last loop index, budget-1, is returned; shaders rely on that
// value to recognise points inside the set.
func Escape(cReal, cImag float64, budget int) int {
	zReal, zImag := cReal, cImag

	it := 0
	for i := 0; i < budget; i++ {
		it = i

		zRealSq := zReal * zReal
		zImagSq := zImag * zImag
		if zRealSq+zImagSq > 4 {
			break
		}

		zImag = cImag + 2*zReal*zImag
		zReal = cReal + zRealSq - zImagSq
	}

	return it
}
