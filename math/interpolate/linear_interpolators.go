package interpolate

import (
	"fmt"
)

//////////////////////////
// Lut1D Implementation //
//////////////////////////

// Lut1D is a 1D lookup table for v = f(x).
type Lut1D struct {
	xs   []float64
	vals []float64
	dx   int
}

// NewLut1D creates a lookup table for a strictly increasing sequence of
// points, xs, which take on the values given by vals. Both slices are copied.
//
// An error is returned if xs is empty or not strictly increasing, or if
// len(vals) != len(xs).
func NewLut1D(xs, vals []float64) (*Lut1D, error) {
	if err := validateAxis(xs, AxisX); err != nil {
		return nil, err
	}
	if len(vals) != len(xs) {
		return nil, &DimensionMismatchError{
			Expected: len(xs), Actual: len(vals),
		}
	}

	return &Lut1D{
		xs:   clone(xs),
		vals: clone(vals),
		dx:   stride(len(xs), 1),
	}, nil
}

// NewUniformLut1D creates a lookup table whose breakpoints start at x0 and
// are separated by dx. There is one breakpoint for every element of vals.
func NewUniformLut1D(x0, dx float64, vals []float64) (*Lut1D, error) {
	return NewLut1D(uniformAxis(x0, dx, len(vals)), vals)
}

// Lookup returns the interpolated value at x. Values of x outside the axis
// are clamped to the nearest breakpoint.
func (lut *Lut1D) Lookup(x float64) float64 {
	i, t := locate(lut.xs, x)
	return lerp(lut.vals[i], lut.vals[i+lut.dx], t)
}

// LookupAll evaluates the table at all the given x values. If an output
// array is given, the output is written to that array (the array is still
// returned as a convenience).
//
// If more than one output array is provided, only the first is used.
func (lut *Lut1D) LookupAll(xs []float64, out ...[]float64) []float64 {
	res := outputArray(len(xs), out)
	for i, x := range xs {
		res[i] = lut.Lookup(x)
	}
	return res
}

// XAxis returns a copy of the breakpoints.
func (lut *Lut1D) XAxis() []float64 { return clone(lut.xs) }

// Values returns a copy of the tabulated values.
func (lut *Lut1D) Values() []float64 { return clone(lut.vals) }

// Len returns the number of tabulated values.
func (lut *Lut1D) Len() int { return len(lut.vals) }

// Clone returns a deep copy of the table.
func (lut *Lut1D) Clone() *Lut1D {
	return &Lut1D{xs: clone(lut.xs), vals: clone(lut.vals), dx: lut.dx}
}

//////////////////////////
// Lut2D Implementation //
//////////////////////////

// Lut2D is a 2D lookup table for v = f(x, y).
type Lut2D struct {
	xs, ys []float64
	vals   []float64
	nx     int
	dx, dy int
}

// NewLut2D creates a bi-linear lookup table on top of a grid with the values
// given by vals. The values of the x and y grid lines are given by xs and
// ys. The vals grid is indexed in the usual way:
// vals(ix, iy) -> vals[ix + iy*nx].
//
// Axes are checked in the order X, Y and the first failure is returned.
func NewLut2D(xs, ys, vals []float64) (*Lut2D, error) {
	if err := validateAxis(xs, AxisX); err != nil {
		return nil, err
	}
	if err := validateAxis(ys, AxisY); err != nil {
		return nil, err
	}

	nx, ny := len(xs), len(ys)
	if expected := nx * ny; len(vals) != expected {
		return nil, &DimensionMismatchError{
			Expected: expected, Actual: len(vals),
		}
	}

	return &Lut2D{
		xs:   clone(xs),
		ys:   clone(ys),
		vals: clone(vals),
		nx:   nx,
		dx:   stride(nx, 1),
		dy:   stride(ny, nx),
	}, nil
}

// NewUniformLut2D creates a bi-linear lookup table on top of a uniform grid
// with the values given by vals. The x and y grid lines start at x0 and y0
// and increase with steps of dx and dy, respectively.
func NewUniformLut2D(
	x0, dx float64, nx int,
	y0, dy float64, ny int,
	vals []float64,
) (*Lut2D, error) {
	return NewLut2D(uniformAxis(x0, dx, nx), uniformAxis(y0, dy, ny), vals)
}

// Lookup evaluates the table at the coordinate (x, y). Each coordinate is
// clamped to its own axis.
func (lut *Lut2D) Lookup(x, y float64) float64 {
	ix, tx := locate(lut.xs, x)
	iy, ty := locate(lut.ys, y)

	i := ix + iy*lut.nx
	v00 := lut.vals[i]
	v10 := lut.vals[i+lut.dx]
	v01 := lut.vals[i+lut.dy]
	v11 := lut.vals[i+lut.dx+lut.dy]

	v0 := lerp(v00, v10, tx)
	v1 := lerp(v01, v11, tx)
	return lerp(v0, v1, ty)
}

// LookupAll evaluates the table at all the given (x, y) values. If an output
// array is given, the output is written to that array (the array is still
// returned as a convenience).
//
// Panics if len(xs) != len(ys).
func (lut *Lut2D) LookupAll(xs, ys []float64, out ...[]float64) []float64 {
	if len(xs) != len(ys) {
		panic(fmt.Sprintf(
			"len(xs) = %d, but len(ys) = %d", len(xs), len(ys),
		))
	}
	res := outputArray(len(xs), out)
	for i := range xs {
		res[i] = lut.Lookup(xs[i], ys[i])
	}
	return res
}

// XAxis returns a copy of the x breakpoints.
func (lut *Lut2D) XAxis() []float64 { return clone(lut.xs) }

// YAxis returns a copy of the y breakpoints.
func (lut *Lut2D) YAxis() []float64 { return clone(lut.ys) }

// Values returns a copy of the tabulated values in x-fastest order.
func (lut *Lut2D) Values() []float64 { return clone(lut.vals) }

// Len returns the number of tabulated values.
func (lut *Lut2D) Len() int { return len(lut.vals) }

// Shape returns the lengths of the x and y axes.
func (lut *Lut2D) Shape() (nx, ny int) { return len(lut.xs), len(lut.ys) }

// Clone returns a deep copy of the table.
func (lut *Lut2D) Clone() *Lut2D {
	c := *lut
	c.xs, c.ys, c.vals = clone(lut.xs), clone(lut.ys), clone(lut.vals)
	return &c
}

//////////////////////////
// Lut3D Implementation //
//////////////////////////

// Lut3D is a 3D lookup table for v = f(x, y, z).
type Lut3D struct {
	xs, ys, zs []float64
	vals       []float64
	nx, ny     int
	dx, dy, dz int
}

// NewLut3D creates a tri-linear lookup table on top of a grid with the
// values given by vals. The values of the x, y, and z grid lines are given by
// xs, ys, and zs respectively. The vals grid is indexed in the usual way:
// vals(ix, iy, iz) -> vals[ix + iy*nx + iz*nx*ny].
//
// Axes are checked in the order X, Y, Z and the first failure is returned.
func NewLut3D(xs, ys, zs, vals []float64) (*Lut3D, error) {
	if err := validateAxis(xs, AxisX); err != nil {
		return nil, err
	}
	if err := validateAxis(ys, AxisY); err != nil {
		return nil, err
	}
	if err := validateAxis(zs, AxisZ); err != nil {
		return nil, err
	}

	nx, ny, nz := len(xs), len(ys), len(zs)
	if expected := nx * ny * nz; len(vals) != expected {
		return nil, &DimensionMismatchError{
			Expected: expected, Actual: len(vals),
		}
	}

	return &Lut3D{
		xs:   clone(xs),
		ys:   clone(ys),
		zs:   clone(zs),
		vals: clone(vals),
		nx:   nx,
		ny:   ny,
		dx:   stride(nx, 1),
		dy:   stride(ny, nx),
		dz:   stride(nz, nx*ny),
	}, nil
}

// NewUniformLut3D creates a tri-linear lookup table on top of a uniform
// grid with the values given by vals. The x, y, and z grid lines start at
// x0, y0, and z0 and increase with steps of dx, dy, and dz, respectively.
func NewUniformLut3D(
	x0, dx float64, nx int,
	y0, dy float64, ny int,
	z0, dz float64, nz int,
	vals []float64,
) (*Lut3D, error) {
	return NewLut3D(
		uniformAxis(x0, dx, nx),
		uniformAxis(y0, dy, ny),
		uniformAxis(z0, dz, nz),
		vals,
	)
}

// Lookup evaluates the table at the coordinate (x, y, z). The eight corners
// of the enclosing cell are combined along x first, then y, then z; the order
// is fixed so results are reproducible to the last bit.
func (lut *Lut3D) Lookup(x, y, z float64) float64 {
	ix, tx := locate(lut.xs, x)
	iy, ty := locate(lut.ys, y)
	iz, tz := locate(lut.zs, z)

	dx, dy, dz := lut.dx, lut.dy, lut.dz
	i := ix + iy*lut.nx + iz*lut.nx*lut.ny

	c000 := lut.vals[i]
	c100 := lut.vals[i+dx]
	c010 := lut.vals[i+dy]
	c110 := lut.vals[i+dx+dy]
	c001 := lut.vals[i+dz]
	c101 := lut.vals[i+dx+dz]
	c011 := lut.vals[i+dy+dz]
	c111 := lut.vals[i+dx+dy+dz]

	c00 := lerp(c000, c100, tx)
	c10 := lerp(c010, c110, tx)
	c01 := lerp(c001, c101, tx)
	c11 := lerp(c011, c111, tx)

	c0 := lerp(c00, c10, ty)
	c1 := lerp(c01, c11, ty)

	return lerp(c0, c1, tz)
}

// LookupAll evaluates the table at all the given (x, y, z) values. If an
// output array is given, the output is written to that array (the array is
// still returned as a convenience).
//
// Panics if the input arrays have different lengths.
func (lut *Lut3D) LookupAll(xs, ys, zs []float64, out ...[]float64) []float64 {
	if len(xs) != len(ys) || len(xs) != len(zs) {
		panic(fmt.Sprintf(
			"len(xs) = %d, len(ys) = %d, and len(zs) = %d",
			len(xs), len(ys), len(zs),
		))
	}
	res := outputArray(len(xs), out)
	for i := range xs {
		res[i] = lut.Lookup(xs[i], ys[i], zs[i])
	}
	return res
}

// XAxis returns a copy of the x breakpoints.
func (lut *Lut3D) XAxis() []float64 { return clone(lut.xs) }

// YAxis returns a copy of the y breakpoints.
func (lut *Lut3D) YAxis() []float64 { return clone(lut.ys) }

// ZAxis returns a copy of the z breakpoints.
func (lut *Lut3D) ZAxis() []float64 { return clone(lut.zs) }

// Values returns a copy of the tabulated values in x-fastest order.
func (lut *Lut3D) Values() []float64 { return clone(lut.vals) }

// Len returns the number of tabulated values.
func (lut *Lut3D) Len() int { return len(lut.vals) }

// Shape returns the lengths of the x, y and z axes.
func (lut *Lut3D) Shape() (nx, ny, nz int) {
	return len(lut.xs), len(lut.ys), len(lut.zs)
}

// Clone returns a deep copy of the table.
func (lut *Lut3D) Clone() *Lut3D {
	c := *lut
	c.xs, c.ys, c.zs = clone(lut.xs), clone(lut.ys), clone(lut.zs)
	c.vals = clone(lut.vals)
	return &c
}
