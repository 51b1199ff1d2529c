/*package linear contains the small fixed-size vector, matrix and quaternion
types used by the simulation: three-vectors, 3x3 rotation matrices and unit
quaternions. Storage and the heavier numerics are delegated to gonum.
*/
package linear

import (
	"math"

	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

// Vec3 is a three-vector.
type Vec3 = r3.Vec

// Quat is a quaternion. Rotations are represented by unit quaternions.
type Quat = quat.Number

func NewVec3(x, y, z float64) Vec3 { return Vec3{X: x, Y: y, Z: z} }

func Zero() Vec3  { return Vec3{} }
func UnitX() Vec3 { return Vec3{X: 1} }
func UnitY() Vec3 { return Vec3{Y: 1} }
func UnitZ() Vec3 { return Vec3{Z: 1} }

// QuatIdentity returns the quaternion representing no rotation.
func QuatIdentity() Quat { return Quat{Real: 1} }

// QuatFromAxisAngle returns the rotation by angle radians about axis. The
// axis is normalized first.
func QuatFromAxisAngle(axis Vec3, angle float64) Quat {
	u := r3.Unit(axis)
	s, c := math.Sincos(angle / 2)
	return Quat{Real: c, Imag: s * u.X, Jmag: s * u.Y, Kmag: s * u.Z}
}

// QuatFromEuler returns the rotation given by roll, pitch and yaw in radians
// applied about the fixed X, Y and Z axes in that order (the ZYX convention).
func QuatFromEuler(roll, pitch, yaw float64) Quat {
	qx := QuatFromAxisAngle(UnitX(), roll)
	qy := QuatFromAxisAngle(UnitY(), pitch)
	qz := QuatFromAxisAngle(UnitZ(), yaw)
	return quat.Mul(qz, quat.Mul(qy, qx))
}

// Rotate applies the rotation q to v. q must be a unit quaternion.
func Rotate(q Quat, v Vec3) Vec3 {
	p := Quat{Imag: v.X, Jmag: v.Y, Kmag: v.Z}
	r := quat.Mul(quat.Mul(q, p), quat.Conj(q))
	return Vec3{X: r.Imag, Y: r.Jmag, Z: r.Kmag}
}
