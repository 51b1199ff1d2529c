package interpolate

import (
	"gonum.org/v1/gonum/mat"
)

type splineCoeff struct {
	a, b, c, d float64
}

// Spline is a 1D lookup table which interpolates with a natural cubic spline
// instead of straight lines. Like Lut1D, it passes through every breakpoint
// exactly and clamps queries outside of its axis.
type Spline struct {
	xs, ys []float64
	coeffs []splineCoeff
}

// NewSpline creates a spline through the points (xs[i], ys[i]). Both slices
// are copied. Tables with one or two points are constant or linear,
// respectively.
//
// An error is returned if xs is empty or not strictly increasing, or if
// len(ys) != len(xs).
func NewSpline(xs, ys []float64) (*Spline, error) {
	if err := validateAxis(xs, AxisX); err != nil {
		return nil, err
	}
	if len(ys) != len(xs) {
		return nil, &DimensionMismatchError{
			Expected: len(xs), Actual: len(ys),
		}
	}

	sp := &Spline{xs: clone(xs), ys: clone(ys)}
	if len(xs) > 1 {
		y2s, err := sp.calcY2s()
		if err != nil {
			return nil, err
		}
		sp.calcCoeffs(y2s)
	}
	return sp, nil
}

// NewUniformSpline creates a spline whose breakpoints start at x0 and are
// separated by dx.
func NewUniformSpline(x0, dx float64, ys []float64) (*Spline, error) {
	return NewSpline(uniformAxis(x0, dx, len(ys)), ys)
}

// Lookup returns the value of the spline at x, clamped to the values at the
// ends of the axis.
func (sp *Spline) Lookup(x float64) float64 {
	n := len(sp.xs)
	if x <= sp.xs[0] {
		return sp.ys[0]
	} else if x >= sp.xs[n-1] {
		return sp.ys[n-1]
	}

	i, _ := locate(sp.xs, x)
	dx := x - sp.xs[i]
	c := &sp.coeffs[i]
	return ((c.a*dx+c.b)*dx+c.c)*dx + c.d
}

// LookupAll evaluates the spline at all the given x values. If an output
// array is given, the output is written to that array.
func (sp *Spline) LookupAll(xs []float64, out ...[]float64) []float64 {
	res := outputArray(len(xs), out)
	for i, x := range xs {
		res[i] = sp.Lookup(x)
	}
	return res
}

// XAxis returns a copy of the breakpoints.
func (sp *Spline) XAxis() []float64 { return clone(sp.xs) }

// Values returns a copy of the values at the breakpoints.
func (sp *Spline) Values() []float64 { return clone(sp.ys) }

// Clone returns a deep copy of the spline.
func (sp *Spline) Clone() *Spline {
	coeffs := make([]splineCoeff, len(sp.coeffs))
	copy(coeffs, sp.coeffs)
	return &Spline{xs: clone(sp.xs), ys: clone(sp.ys), coeffs: coeffs}
}

// calcY2s computes the second derivative of the spline at every breakpoint.
// The second derivative at both ends is zero.
func (sp *Spline) calcY2s() ([]float64, error) {
	n := len(sp.xs)
	y2s := make([]float64, n)
	m := n - 2
	if m < 1 {
		return y2s, nil
	}

	xs, ys := sp.xs, sp.ys
	dl, d, du := make([]float64, m-1), make([]float64, m), make([]float64, m-1)
	rs := make([]float64, m)
	for i := range rs {
		// j indexes into xs and ys.
		j := i + 1

		if i > 0 {
			dl[i-1] = (xs[j] - xs[j-1]) / 6
		}
		d[i] = (xs[j+1] - xs[j-1]) / 3
		if i < m-1 {
			du[i] = (xs[j+1] - xs[j]) / 6
		}
		rs[i] = (ys[j+1]-ys[j])/(xs[j+1]-xs[j]) -
			(ys[j]-ys[j-1])/(xs[j]-xs[j-1])
	}

	tri := mat.NewTridiag(m, dl, d, du)
	var sol mat.VecDense
	if err := tri.SolveVecTo(&sol, false, mat.NewVecDense(m, rs)); err != nil {
		return nil, err
	}
	for i := 0; i < m; i++ {
		y2s[i+1] = sol.AtVec(i)
	}
	return y2s, nil
}

func (sp *Spline) calcCoeffs(y2s []float64) {
	xs, ys := sp.xs, sp.ys
	sp.coeffs = make([]splineCoeff, len(xs)-1)
	for i := range sp.coeffs {
		h := xs[i+1] - xs[i]
		sp.coeffs[i] = splineCoeff{
			a: (y2s[i+1] - y2s[i]) / (6 * h),
			b: y2s[i] / 2,
			c: (ys[i+1]-ys[i])/h - h*(2*y2s[i]+y2s[i+1])/6,
			d: ys[i],
		}
	}
}
