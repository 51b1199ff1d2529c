package linear

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Mat3 is a 3x3 matrix stored in row-major order.
type Mat3 [9]float64

// Identity returns the 3x3 identity matrix.
func Identity() Mat3 {
	return Mat3{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// Mat3FromEuler returns the rotation matrix for roll, pitch and yaw in
// radians using the ZYX convention: R = Rz(yaw) * Ry(pitch) * Rx(roll).
func Mat3FromEuler(roll, pitch, yaw float64) Mat3 {
	sr, cr := math.Sincos(roll)
	sp, cp := math.Sincos(pitch)
	sy, cy := math.Sincos(yaw)

	rx := Mat3{
		1, 0, 0,
		0, cr, -sr,
		0, sr, cr,
	}
	ry := Mat3{
		cp, 0, sp,
		0, 1, 0,
		-sp, 0, cp,
	}
	rz := Mat3{
		cy, -sy, 0,
		sy, cy, 0,
		0, 0, 1,
	}
	return rz.Mul(ry.Mul(rx))
}

func (m Mat3) dense() *mat.Dense {
	vals := m
	return mat.NewDense(3, 3, vals[:])
}

func fromDense(d mat.Matrix) Mat3 {
	out := Mat3{}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[i*3+j] = d.At(i, j)
		}
	}
	return out
}

// At returns the element in row i and column j.
func (m Mat3) At(i, j int) float64 { return m[i*3+j] }

// Mul returns the matrix product m * n.
func (m Mat3) Mul(n Mat3) Mat3 {
	out := &mat.Dense{}
	out.Mul(m.dense(), n.dense())
	return fromDense(out)
}

// MulVec returns the matrix-vector product m * v.
func (m Mat3) MulVec(v Vec3) Vec3 {
	return Vec3{
		X: m[0]*v.X + m[1]*v.Y + m[2]*v.Z,
		Y: m[3]*v.X + m[4]*v.Y + m[5]*v.Z,
		Z: m[6]*v.X + m[7]*v.Y + m[8]*v.Z,
	}
}

// Transpose returns the transpose of m. For rotation matrices this is also
// the inverse.
func (m Mat3) Transpose() Mat3 {
	return Mat3{
		m[0], m[3], m[6],
		m[1], m[4], m[7],
		m[2], m[5], m[8],
	}
}

// Det returns the determinant of m.
func (m Mat3) Det() float64 { return mat.Det(m.dense()) }

// Inverse returns the inverse of m. An error is returned if m is singular
// or too poorly conditioned to invert.
func (m Mat3) Inverse() (Mat3, error) {
	inv := &mat.Dense{}
	if err := inv.Inverse(m.dense()); err != nil {
		return Mat3{}, err
	}
	return fromDense(inv), nil
}
