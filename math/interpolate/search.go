package interpolate

// validateAxis checks that axis is non-empty and strictly increasing.
func validateAxis(axis []float64, name AxisName) error {
	if len(axis) == 0 {
		return &EmptyAxisError{Axis: name}
	}
	for i := 1; i < len(axis); i++ {
		if axis[i] <= axis[i-1] {
			return &UnsortedAxisError{Axis: name, Index: i}
		}
	}
	return nil
}

// locate returns the index of the lower breakpoint of the interval
// containing x and the fraction of the way x lies through that interval.
//
// Values below the first breakpoint return (0, 0) and values above the last
// return (n-2, 1), so lookups clamp instead of extrapolating. A single-point
// axis returns index 0 with a fraction of 0 or 1; callers give such axes a
// zero stride so the fraction has nothing to act on.
func locate(axis []float64, x float64) (int, float64) {
	n := len(axis)
	if x <= axis[0] {
		return 0, 0
	}
	if x >= axis[n-1] {
		if n < 2 {
			return 0, 1
		}
		return n - 2, 1
	}

	// Invariant: axis[lo] <= x < axis[hi].
	lo, hi := 0, n-1
	for hi-lo > 1 {
		mid := lo + (hi-lo)/2
		if axis[mid] <= x {
			lo = mid
		} else {
			hi = mid
		}
	}

	x0, x1 := axis[lo], axis[hi]
	return lo, (x - x0) / (x1 - x0)
}

// lerp linearly interpolates between a and b. t is not restricted to [0, 1].
func lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// stride returns the index offset between neighbouring breakpoints along an
// axis whose elements are step apart in the value slice. Single-point axes
// get a stride of zero.
func stride(n, step int) int {
	if n < 2 {
		return 0
	}
	return step
}

// uniformAxis returns n breakpoints starting at x0 and separated by dx.
func uniformAxis(x0, dx float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = x0 + float64(i)*dx
	}
	return xs
}

func clone(xs []float64) []float64 {
	out := make([]float64, len(xs))
	copy(out, xs)
	return out
}
