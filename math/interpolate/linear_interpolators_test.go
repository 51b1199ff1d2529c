package interpolate

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

var sink float64

func torqueCurve(t *testing.T) *Lut1D {
	rpm := []float64{0, 1000, 2000, 3000, 4000}
	torque := []float64{0, 100, 200, 180, 150}
	lut, err := NewLut1D(rpm, torque)
	require.NoError(t, err)
	return lut
}

//  3x2 grid:
//          x=0  x=1  x=2
//  y=0  [   0,  10,  20 ]
//  y=1  [ 100, 110, 120 ]
func grid2D(t *testing.T) *Lut2D {
	lut, err := NewLut2D(
		[]float64{0, 1, 2},
		[]float64{0, 1},
		[]float64{0, 10, 20, 100, 110, 120},
	)
	require.NoError(t, err)
	return lut
}

func cube3D(t *testing.T) *Lut3D {
	lut, err := NewLut3D(
		[]float64{0, 1},
		[]float64{0, 1},
		[]float64{0, 1},
		[]float64{
			0, 1, 10, 11, // z = 0
			100, 101, 110, 111, // z = 1
		},
	)
	require.NoError(t, err)
	return lut
}

func TestLut1DTorqueCurve(t *testing.T) {
	lut := torqueCurve(t)

	assert.Equal(t, 150.0, lut.Lookup(1500))
	assert.Equal(t, 0.0, lut.Lookup(-50))
	assert.Equal(t, 150.0, lut.Lookup(4500))
	assert.Equal(t, 190.0, lut.Lookup(2500))
	assert.Equal(t, 5, lut.Len())
}

func TestLut1DExactAtBreakpoints(t *testing.T) {
	xs := []float64{-3, -1, 0, 2, 7, 11}
	vals := []float64{4, -8, 15, 16, 23, 42}
	lut, err := NewLut1D(xs, vals)
	require.NoError(t, err)

	for i, x := range xs {
		assert.Equal(t, vals[i], lut.Lookup(x), "x = %g", x)
	}
}

func TestLut1DLinearity(t *testing.T) {
	x0, x1 := 2.0, 6.0
	v0, v1 := -10.0, 30.0
	lut, err := NewLut1D([]float64{x0, x1}, []float64{v0, v1})
	require.NoError(t, err)

	for f := 0.0; f <= 1.0; f += 1.0 / 64 {
		assert.InDelta(t, v0+f*(v1-v0), lut.Lookup(x0+f*(x1-x0)), 1e-10, "f = %g", f)
	}
}

func TestLut1DClamping(t *testing.T) {
	lut, err := NewLut1D([]float64{10, 20, 30}, []float64{100, 200, 300})
	require.NoError(t, err)

	for _, x := range []float64{0, -100, 9.999} {
		assert.Equal(t, lut.Lookup(10), lut.Lookup(x), "x = %g", x)
	}
	for _, x := range []float64{30.001, 40, 1000} {
		assert.Equal(t, lut.Lookup(30), lut.Lookup(x), "x = %g", x)
	}
}

func TestLut1DSinglePoint(t *testing.T) {
	lut, err := NewLut1D([]float64{5}, []float64{42})
	require.NoError(t, err)

	for _, x := range []float64{-1e6, 4.9, 5, 5.1, 1e6} {
		assert.Equal(t, 42.0, lut.Lookup(x), "x = %g", x)
	}
}

func TestLut1DErrors(t *testing.T) {
	_, err := NewLut1D(nil, nil)
	assert.Equal(t, &EmptyAxisError{Axis: AxisX}, err)
	assert.EqualError(t, err, "X axis cannot be empty")

	_, err = NewLut1D([]float64{0, 2, 1}, []float64{0, 1, 2})
	assert.Equal(t, &UnsortedAxisError{Axis: AxisX, Index: 2}, err)
	assert.EqualError(t, err, "X axis is not strictly ascending at index 2")

	_, err = NewLut1D([]float64{0, 1, 1, 2}, []float64{0, 1, 2, 3})
	assert.Equal(t, &UnsortedAxisError{Axis: AxisX, Index: 2}, err)

	_, err = NewLut1D([]float64{0, 1, 2}, []float64{0, 1})
	assert.Equal(t, &DimensionMismatchError{Expected: 3, Actual: 2}, err)
	assert.ErrorIs(t, err, ErrDimensionMismatch)
	assert.EqualError(t, err, "data length mismatch: expected 3, got 2")
}

func TestLut1DOwnsData(t *testing.T) {
	xs := []float64{1, 2, 3}
	vals := []float64{10, 20, 30}
	lut, err := NewLut1D(xs, vals)
	require.NoError(t, err)

	xs[0], vals[0] = -100, -100
	assert.Equal(t, 10.0, lut.Lookup(1))

	got := lut.Values()
	got[1] = 0
	assert.Equal(t, 20.0, lut.Lookup(2))

	if diff := cmp.Diff([]float64{1, 2, 3}, lut.XAxis()); diff != "" {
		t.Errorf("XAxis() mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]float64{10, 20, 30}, lut.Values()); diff != "" {
		t.Errorf("Values() mismatch (-want +got):\n%s", diff)
	}
}

func TestLut1DClone(t *testing.T) {
	lut := torqueCurve(t)
	c := lut.Clone()

	assert.NotSame(t, lut, c)
	assert.Equal(t, lut.XAxis(), c.XAxis())
	assert.Equal(t, lut.Values(), c.Values())
	assert.Equal(t, lut.Lookup(2750), c.Lookup(2750))
}

func TestUniformLut1D(t *testing.T) {
	lut, err := NewUniformLut1D(0, 0.5, []float64{0, 1, 2})
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0.5, 1}, lut.XAxis())
	assert.Equal(t, 0.5, lut.Lookup(0.25))

	_, err = NewUniformLut1D(0, 0, []float64{1, 2})
	assert.Equal(t, &UnsortedAxisError{Axis: AxisX, Index: 1}, err)

	_, err = NewUniformLut1D(1, -1, []float64{1, 2})
	assert.ErrorIs(t, err, ErrUnsortedAxis)

	_, err = NewUniformLut1D(1, 1, nil)
	assert.ErrorIs(t, err, ErrEmptyAxis)
}

func TestLut1DLookupAll(t *testing.T) {
	lut := torqueCurve(t)
	xs := []float64{-50, 500, 1500, 3500, 9000}
	want := []float64{0, 50, 150, 165, 150}

	assert.Equal(t, want, lut.LookupAll(xs))

	out := make([]float64, len(xs))
	res := lut.LookupAll(xs, out)
	assert.Equal(t, want, out)
	assert.Same(t, &out[0], &res[0])

	assert.Panics(t, func() { lut.LookupAll(xs, make([]float64, 2)) })
}

func TestLut2DExactAtBreakpoints(t *testing.T) {
	lut := grid2D(t)
	xs, ys, vals := lut.XAxis(), lut.YAxis(), lut.Values()

	for iy, y := range ys {
		for ix, x := range xs {
			assert.Equal(t, vals[iy*len(xs)+ix], lut.Lookup(x, y),
				"(x, y) = (%g, %g)", x, y)
		}
	}
}

func TestLut2DInterpolation(t *testing.T) {
	lut := grid2D(t)

	assert.Equal(t, 5.0, lut.Lookup(0.5, 0))
	assert.Equal(t, 15.0, lut.Lookup(1.5, 0))
	assert.Equal(t, 50.0, lut.Lookup(0, 0.5))
	assert.Equal(t, 55.0, lut.Lookup(0.5, 0.5))
}

func TestLut2DBilinearMidpoint(t *testing.T) {
	lut, err := NewLut2D(
		[]float64{0, 1}, []float64{0, 1}, []float64{0, 10, 100, 110},
	)
	require.NoError(t, err)
	assert.Equal(t, 55.0, lut.Lookup(0.5, 0.5))
}

func TestLut2DClamping(t *testing.T) {
	lut := grid2D(t)

	assert.Equal(t, 50.0, lut.Lookup(-1, 0.5))
	assert.Equal(t, 70.0, lut.Lookup(10, 0.5))
	assert.Equal(t, 5.0, lut.Lookup(0.5, -1))
	assert.Equal(t, 105.0, lut.Lookup(0.5, 10))

	for _, y := range []float64{0, 0.3, 0.9} {
		assert.Equal(t, lut.Lookup(0, y), lut.Lookup(-7, y))
		assert.Equal(t, lut.Lookup(2, y), lut.Lookup(7, y))
	}
	for _, x := range []float64{0, 0.7, 1.9} {
		assert.Equal(t, lut.Lookup(x, 0), lut.Lookup(x, -7))
		assert.Equal(t, lut.Lookup(x, 1), lut.Lookup(x, 7))
	}
}

func TestLut2DSinglePointAxis(t *testing.T) {
	// A single y breakpoint turns the table into a 1D curve in x.
	lut, err := NewLut2D([]float64{0, 10}, []float64{3}, []float64{1, 2})
	require.NoError(t, err)
	for _, y := range []float64{-5, 3, 8} {
		assert.Equal(t, 1.5, lut.Lookup(5, y), "y = %g", y)
	}

	lut, err = NewLut2D([]float64{4}, []float64{0, 1}, []float64{10, 20})
	require.NoError(t, err)
	for _, x := range []float64{-5, 4, 8} {
		assert.Equal(t, 15.0, lut.Lookup(x, 0.5), "x = %g", x)
	}
}

func TestLut2DErrors(t *testing.T) {
	_, err := NewLut2D(nil, []float64{0}, nil)
	assert.Equal(t, &EmptyAxisError{Axis: AxisX}, err)

	_, err = NewLut2D([]float64{0}, nil, nil)
	assert.Equal(t, &EmptyAxisError{Axis: AxisY}, err)
	assert.EqualError(t, err, "Y axis cannot be empty")

	// X errors shadow Y errors.
	_, err = NewLut2D([]float64{1, 0}, nil, nil)
	assert.Equal(t, &UnsortedAxisError{Axis: AxisX, Index: 1}, err)

	_, err = NewLut2D([]float64{0, 1}, []float64{0, 1, 1}, make([]float64, 6))
	assert.Equal(t, &UnsortedAxisError{Axis: AxisY, Index: 2}, err)

	_, err = NewLut2D([]float64{0, 1}, []float64{0, 1}, []float64{0, 1, 2})
	assert.Equal(t, &DimensionMismatchError{Expected: 4, Actual: 3}, err)
}

func TestLut2DAccessors(t *testing.T) {
	lut := grid2D(t)
	nx, ny := lut.Shape()
	assert.Equal(t, 3, nx)
	assert.Equal(t, 2, ny)
	assert.Equal(t, 6, lut.Len())

	c := lut.Clone()
	assert.Equal(t, lut.Values(), c.Values())
	assert.Equal(t, lut.Lookup(1.25, 0.75), c.Lookup(1.25, 0.75))

	res := lut.LookupAll([]float64{0.5, 1.5}, []float64{0.5, 0})
	assert.Equal(t, []float64{55, 15}, res)
	assert.Panics(t, func() { lut.LookupAll([]float64{0}, nil) })
}

func TestUniformLut2D(t *testing.T) {
	vals := []float64{0, 10, 20, 100, 110, 120}
	lut, err := NewUniformLut2D(0, 1, 3, 0, 1, 2, vals)
	require.NoError(t, err)
	assert.Equal(t, grid2D(t).Values(), lut.Values())
	assert.Equal(t, 55.0, lut.Lookup(0.5, 0.5))

	_, err = NewUniformLut2D(0, 1, 3, 0, 1, 3, vals)
	assert.Equal(t, &DimensionMismatchError{Expected: 9, Actual: 6}, err)
}

func TestLut3DExactAtCorners(t *testing.T) {
	lut := cube3D(t)

	assert.Equal(t, 0.0, lut.Lookup(0, 0, 0))
	assert.Equal(t, 1.0, lut.Lookup(1, 0, 0))
	assert.Equal(t, 10.0, lut.Lookup(0, 1, 0))
	assert.Equal(t, 11.0, lut.Lookup(1, 1, 0))
	assert.Equal(t, 100.0, lut.Lookup(0, 0, 1))
	assert.Equal(t, 101.0, lut.Lookup(1, 0, 1))
	assert.Equal(t, 110.0, lut.Lookup(0, 1, 1))
	assert.Equal(t, 111.0, lut.Lookup(1, 1, 1))
}

func TestLut3DTrilinear(t *testing.T) {
	lut := cube3D(t)

	assert.Equal(t, 55.5, lut.Lookup(0.5, 0.5, 0.5))
	assert.Equal(t, 50.0, lut.Lookup(0, 0, 0.5))
	assert.Equal(t, 0.5, lut.Lookup(0.5, 0, 0))
	assert.Equal(t, 5.0, lut.Lookup(0, 0.5, 0))
}

func TestLut3DClamping(t *testing.T) {
	lut := cube3D(t)

	assert.Equal(t, 0.0, lut.Lookup(-1, -1, -1))
	assert.Equal(t, 111.0, lut.Lookup(10, 10, 10))
	assert.Equal(t, lut.Lookup(0, 0.25, 0.75), lut.Lookup(-3, 0.25, 0.75))
	assert.Equal(t, lut.Lookup(0.25, 1, 0.75), lut.Lookup(0.25, 3, 0.75))
	assert.Equal(t, lut.Lookup(0.25, 0.75, 0), lut.Lookup(0.25, 0.75, -3))
}

// linear is reproduced exactly by tri-linear interpolation.
func linear(x, y, z float64) float64 {
	return 2*x + 3*y + 5*z
}

func TestLut3DGrid(t *testing.T) {
	xs := []float64{0, 1, 2, 4}
	ys := []float64{-2, 0, 2}
	zs := []float64{0, 10, 20, 30, 40}

	vals := make([]float64, 0, len(xs)*len(ys)*len(zs))
	for _, z := range zs {
		for _, y := range ys {
			for _, x := range xs {
				vals = append(vals, linear(x, y, z))
			}
		}
	}
	lut, err := NewLut3D(xs, ys, zs, vals)
	require.NoError(t, err)

	for _, z := range zs {
		for _, y := range ys {
			for _, x := range xs {
				assert.Equal(t, linear(x, y, z), lut.Lookup(x, y, z))
			}
		}
	}

	assert.InDelta(t, linear(1.5, 0.5, 12), lut.Lookup(1.5, 0.5, 12), 1e-9)
	assert.InDelta(t, linear(3, -1, 35), lut.Lookup(3, -1, 35), 1e-9)

	nx, ny, nz := lut.Shape()
	assert.Equal(t, []int{4, 3, 5}, []int{nx, ny, nz})
	assert.Equal(t, 60, lut.Len())
	assert.Equal(t, zs, lut.ZAxis())
}

func TestLut3DSinglePointAxes(t *testing.T) {
	lut, err := NewLut3D(
		[]float64{0, 1}, []float64{7}, []float64{9}, []float64{2, 4},
	)
	require.NoError(t, err)
	assert.Equal(t, 3.0, lut.Lookup(0.5, 0, 100))
	assert.Equal(t, 4.0, lut.Lookup(5, -3, -100))
}

func TestLut3DErrors(t *testing.T) {
	_, err := NewLut3D(nil, []float64{0}, []float64{0}, nil)
	assert.Equal(t, &EmptyAxisError{Axis: AxisX}, err)

	_, err = NewLut3D([]float64{0}, nil, []float64{0}, nil)
	assert.Equal(t, &EmptyAxisError{Axis: AxisY}, err)

	_, err = NewLut3D([]float64{0}, []float64{0}, nil, nil)
	assert.Equal(t, &EmptyAxisError{Axis: AxisZ}, err)
	assert.EqualError(t, err, "Z axis cannot be empty")

	_, err = NewLut3D([]float64{0}, []float64{0}, []float64{1, 1}, nil)
	assert.Equal(t, &UnsortedAxisError{Axis: AxisZ, Index: 1}, err)

	_, err = NewLut3D(
		[]float64{0, 1}, []float64{0, 1}, []float64{0, 1}, make([]float64, 4),
	)
	var dm *DimensionMismatchError
	require.True(t, errors.As(err, &dm))
	assert.Equal(t, 8, dm.Expected)
	assert.Equal(t, 4, dm.Actual)
}

func TestUniformLut3D(t *testing.T) {
	n, step := 11, 0.1
	vals := make([]float64, n*n*n)
	idx := 0
	for k := 0; k < n; k++ {
		for j := 0; j < n; j++ {
			for i := 0; i < n; i++ {
				vals[idx] = linear(float64(i)*step, float64(j)*step, float64(k)*step)
				idx++
			}
		}
	}
	lut, err := NewUniformLut3D(0, step, n, 0, step, n, 0, step, n, vals)
	require.NoError(t, err)

	assert.InDelta(t, linear(0.5, 0.5, 0.5), lut.Lookup(0.5, 0.5, 0.5), 1e-9, "on grid")
	assert.InDelta(t, linear(0.51, 0.50, 0.50), lut.Lookup(0.51, 0.50, 0.50), 1e-9, "nearby x")
	assert.InDelta(t, linear(0.50, 0.51, 0.50), lut.Lookup(0.50, 0.51, 0.50), 1e-9, "nearby y")
	assert.InDelta(t, linear(0.50, 0.50, 0.51), lut.Lookup(0.50, 0.50, 0.51), 1e-9, "nearby z")
	assert.Equal(t, linear(0, 0, 0), lut.Lookup(0, 0, 0), "grid edge")

	res := lut.LookupAll(
		[]float64{0.05, 2}, []float64{0.05, -1}, []float64{0.05, 0.5},
	)
	assert.InDelta(t, linear(0.05, 0.05, 0.05), res[0], 1e-9)
	assert.InDelta(t, linear(1, 0, 0.5), res[1], 1e-9)
	assert.Panics(t, func() { lut.LookupAll([]float64{0}, []float64{0}, nil) })
}

func TestLookupIsPure(t *testing.T) {
	lut1 := torqueCurve(t)
	lut2 := grid2D(t)
	lut3 := cube3D(t)

	v1, v2, v3 := lut1.Values(), lut2.Values(), lut3.Values()
	r1, r2, r3 := lut1.Lookup(1234.5), lut2.Lookup(0.3, 0.7), lut3.Lookup(0.1, 0.2, 0.3)

	for i := 0; i < 1000; i++ {
		x := float64(i) * 0.37
		sink = lut1.Lookup(x*10) + lut2.Lookup(x, x) + lut3.Lookup(x, x/2, x/3)

		require.Equal(t, r1, lut1.Lookup(1234.5))
		require.Equal(t, r2, lut2.Lookup(0.3, 0.7))
		require.Equal(t, r3, lut3.Lookup(0.1, 0.2, 0.3))
	}

	assert.Equal(t, v1, lut1.Values())
	assert.Equal(t, v2, lut2.Values())
	assert.Equal(t, v3, lut3.Values())
}

func TestLookupDoesNotAllocate(t *testing.T) {
	lut1 := torqueCurve(t)
	lut2 := grid2D(t)
	lut3 := cube3D(t)
	xs := []float64{-1, 500, 2500, 9000}
	out := make([]float64, len(xs))

	assert.Zero(t, testing.AllocsPerRun(100, func() { sink = lut1.Lookup(1750) }))
	assert.Zero(t, testing.AllocsPerRun(100, func() { sink = lut2.Lookup(1.2, 0.4) }))
	assert.Zero(t, testing.AllocsPerRun(100, func() { sink = lut3.Lookup(0.2, 0.4, 0.6) }))
	assert.Zero(t, testing.AllocsPerRun(100, func() { lut1.LookupAll(xs, out) }))
}

func TestConcurrentLookups(t *testing.T) {
	n := 64
	axis := uniformAxis(0, 1, n)
	vals := make([]float64, n*n)
	for i := range vals {
		vals[i] = float64(i)
	}
	lut, err := NewLut2D(axis, axis, vals)
	require.NoError(t, err)

	xs := make([]float64, 1000)
	ys := make([]float64, 1000)
	for i := range xs {
		xs[i] = float64(i%(n-1)) + 0.25
		ys[i] = float64((i/(n-1))%(n-1)) + 0.75
	}
	want := lut.LookupAll(xs, ys)

	var g errgroup.Group
	for w := 0; w < 8; w++ {
		w := w
		g.Go(func() error {
			got := lut.LookupAll(xs, ys)
			for i := range got {
				if got[i] != want[i] {
					return fmt.Errorf(
						"worker %d: point %d = %g, expected %g", w, i, got[i], want[i],
					)
				}
			}
			return nil
		})
	}
	assert.NoError(t, g.Wait())
}

func BenchmarkLut1DLookup100(b *testing.B) {
	n := 100
	xs := uniformAxis(0, 1, n)
	vals := make([]float64, n)
	for i := range vals {
		vals[i] = float64(i * i)
	}
	lut, _ := NewLut1D(xs, vals)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sink = lut.Lookup(float64(i%99) + 0.5)
	}
}

func BenchmarkLut2DLookup50x50(b *testing.B) {
	n := 50
	axis := uniformAxis(0, 1, n)
	vals := make([]float64, n*n)
	for i := range vals {
		vals[i] = float64(i)
	}
	lut, _ := NewLut2D(axis, axis, vals)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sink = lut.Lookup(float64(i%49)+0.5, float64((i/49)%49)+0.5)
	}
}

func BenchmarkLut3DLookup10x10x10(b *testing.B) {
	n := 10
	axis := uniformAxis(0, 1, n)
	vals := make([]float64, n*n*n)
	for i := range vals {
		vals[i] = float64(i)
	}
	lut, _ := NewLut3D(axis, axis, axis, vals)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sink = lut.Lookup(
			float64(i%9)+0.5, float64((i/9)%9)+0.5, float64((i/81)%9)+0.5,
		)
	}
}
