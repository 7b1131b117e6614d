package spatialmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"gonum.org/v1/gonum/num/quat"

	"github.com/AnsunWu/geometry2/utils"
)

// Quaternion is an orientation in quaternion representation.
type Quaternion quat.Number

// Quaternion returns orientation in quaternion representation.
func (q *Quaternion) Quaternion() quat.Number {
	return quat.Number(*q)
}

// AxisAngles returns the orientation in axis angle representation.
func (q *Quaternion) AxisAngles() *R4AA {
	return QuatToR4AA(q.Quaternion())
}

// EulerAngles returns orientation in Euler angle representation.
func (q *Quaternion) EulerAngles() *EulerAngles {
	return QuatToEulerAngles(q.Quaternion())
}

// RotationMatrix returns the orientation in rotation matrix representation.
func (q *Quaternion) RotationMatrix() *RotationMatrix {
	return QuatToRotationMatrix(q.Quaternion())
}

// QuatToEulerAngles converts a quaternion to the euler angle representation. The angles
// are extracted by way of the rotation matrix so that behavior stays well defined as
// pitch approaches the poles.
func QuatToEulerAngles(q quat.Number) *EulerAngles {
	return QuatToRotationMatrix(q).EulerAngles()
}

// Norm returns the norm of the imaginary part of the quaternion, i.e. the sqrt of the sum
// of the squares of the imaginary parts.
func Norm(q quat.Number) float64 {
	return math.Sqrt(q.Imag*q.Imag + q.Jmag*q.Jmag + q.Kmag*q.Kmag)
}

// Norm2 returns the squared norm of the quaternion, i.e. the sum of the squares of all
// four components.
func Norm2(q quat.Number) float64 {
	return q.Real*q.Real + q.Imag*q.Imag + q.Jmag*q.Jmag + q.Kmag*q.Kmag
}

// Normalize returns the versor (unit quaternion) of a quaternion.
func Normalize(q quat.Number) quat.Number {
	length := math.Sqrt(Norm2(q))
	if math.Abs(length-1.0) < 1e-10 {
		return q
	}
	if length == 0 {
		return quat.Number{Real: 1}
	}
	if length == math.Inf(1) {
		length = float64(math.MaxFloat64)
	}
	return quat.Number{
		Real: q.Real / length,
		Imag: q.Imag / length,
		Jmag: q.Jmag / length,
		Kmag: q.Kmag / length,
	}
}

// Flip will multiply a quaternion by -1, returning a quaternion representing the same
// orientation but in the opposing octant.
func Flip(q quat.Number) quat.Number {
	return quat.Number{Real: -q.Real, Imag: -q.Imag, Jmag: -q.Jmag, Kmag: -q.Kmag}
}

// QuaternionAlmostEqual checks if two quaternions are almost equal within the given
// tolerance. A quaternion and its flipped counterpart represent the same orientation,
// so either sign counts.
func QuaternionAlmostEqual(a, b quat.Number, tol float64) bool {
	return quatAlmostEqual(a, b, tol) || quatAlmostEqual(a, Flip(b), tol)
}

func quatAlmostEqual(a, b quat.Number, tol float64) bool {
	return utils.Float64AlmostEqual(a.Real, b.Real, tol) &&
		utils.Float64AlmostEqual(a.Imag, b.Imag, tol) &&
		utils.Float64AlmostEqual(a.Jmag, b.Jmag, tol) &&
		utils.Float64AlmostEqual(a.Kmag, b.Kmag, tol)
}

// Used for interpolating orientations.
// Intro to lerp vs slerp: https://threadreaderapp.com/thread/1176137498323501058.html
func slerp(qN1, qN2 quat.Number, by float64) quat.Number {
	q1 := mgl64.Quat{W: qN1.Real, V: mgl64.Vec3{qN1.Imag, qN1.Jmag, qN1.Kmag}}
	q2 := mgl64.Quat{W: qN2.Real, V: mgl64.Vec3{qN2.Imag, qN2.Jmag, qN2.Kmag}}

	q3 := mgl64.QuatSlerp(q1, q2, by)
	return quat.Number{Real: q3.W, Imag: q3.X(), Jmag: q3.Y(), Kmag: q3.Z()}
}
