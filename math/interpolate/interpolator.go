/*package interpolate implements immutable lookup tables in one, two and
three dimensions. Tables are built once from strictly ascending axes and a
flat value slice and are then queried with multi-linear interpolation. Spline
offers a smoother alternative for 1D tables.
Queries outside of an axis are clamped to its boundary breakpoints.

Lookups are O(log n) in each axis length and do not allocate. Because tables
are never modified after construction, a single table can be shared between
any number of goroutines.
*/
package interpolate

// Interpolator is a 1D lookup table.
type Interpolator interface {
	// Lookup evaluates the table at x.
	Lookup(x float64) float64
	// LookupAll evaluates a sequence of values and returns the result. An
	// optional output array can be supplied to prevent unneeded heap
	// allocations.
	LookupAll(xs []float64, out ...[]float64) []float64
}

var (
	_ Interpolator = &Lut1D{}
	_ Interpolator = &Spline{}
)

// BiInterpolator is a 2D lookup table.
type BiInterpolator interface {
	// Lookup evaluates the table at a point.
	Lookup(x, y float64) float64
	// LookupAll evaluates a sequence of points and returns the result. An
	// optional output array can be supplied to prevent unneeded heap
	// allocations.
	LookupAll(xs, ys []float64, out ...[]float64) []float64
}

var (
	_ BiInterpolator = &Lut2D{}
)

// TriInterpolator is a 3D lookup table.
type TriInterpolator interface {
	// Lookup evaluates the table at a point.
	Lookup(x, y, z float64) float64
	// LookupAll evaluates a sequence of points and returns the result. An
	// optional output array can be supplied to prevent unneeded heap
	// allocations.
	LookupAll(xs, ys, zs []float64, out ...[]float64) []float64
}

var (
	_ TriInterpolator = &Lut3D{}
)

// outputArray returns the first of out if given, and a freshly allocated
// array of length n otherwise.
func outputArray(n int, out [][]float64) []float64 {
	if len(out) == 0 {
		return make([]float64, n)
	}
	if len(out[0]) < n {
		panic("Output array is shorter than the input arrays.")
	}
	return out[0][:n]
}
