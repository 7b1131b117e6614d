package spatialmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/num/quat"
)

// RotationMatrix is a 3x3 rotation matrix backed by an mgl64.Mat3.
type RotationMatrix struct {
	mat mgl64.Mat3
}

// NewRotationMatrix creates the rotation matrix from a slice of floats given in row major order.
func NewRotationMatrix(m []float64) (*RotationMatrix, error) {
	if len(m) != 9 {
		return nil, errors.Errorf("need exactly 9 numbers to make a rotation matrix, got %d", len(m))
	}
	mat := mgl64.Mat3FromRows(
		mgl64.Vec3{m[0], m[1], m[2]},
		mgl64.Vec3{m[3], m[4], m[5]},
		mgl64.Vec3{m[6], m[7], m[8]},
	)
	return &RotationMatrix{mat}, nil
}

// RotationMatrix returns the orientation in rotation matrix representation.
func (rm *RotationMatrix) RotationMatrix() *RotationMatrix {
	return rm
}

// AxisAngles returns the orientation in axis angle representation.
func (rm *RotationMatrix) AxisAngles() *R4AA {
	return QuatToR4AA(rm.Quaternion())
}

// Quaternion returns orientation in quaternion representation. The conversion takes the
// branch best conditioned for the matrix trace.
func (rm *RotationMatrix) Quaternion() quat.Number {
	var q quat.Number

	m00 := rm.At(0, 0)
	m01 := rm.At(0, 1)
	m02 := rm.At(0, 2)
	m10 := rm.At(1, 0)
	m11 := rm.At(1, 1)
	m12 := rm.At(1, 2)
	m20 := rm.At(2, 0)
	m21 := rm.At(2, 1)
	m22 := rm.At(2, 2)

	tr := m00 + m11 + m22
	switch {
	case tr > 0:
		s := 2 * math.Sqrt(tr+1.0)
		q = quat.Number{
			Real: 0.25 * s,
			Imag: (m21 - m12) / s,
			Jmag: (m02 - m20) / s,
			Kmag: (m10 - m01) / s,
		}
	case m00 > m11 && m00 > m22:
		s := 2 * math.Sqrt(1.0+m00-m11-m22)
		q = quat.Number{
			Real: (m21 - m12) / s,
			Imag: 0.25 * s,
			Jmag: (m01 + m10) / s,
			Kmag: (m02 + m20) / s,
		}
	case m11 > m22:
		s := 2 * math.Sqrt(1.0+m11-m00-m22)
		q = quat.Number{
			Real: (m02 - m20) / s,
			Imag: (m01 + m10) / s,
			Jmag: 0.25 * s,
			Kmag: (m12 + m21) / s,
		}
	default:
		s := 2 * math.Sqrt(1.0+m22-m00-m11)
		q = quat.Number{
			Real: (m10 - m01) / s,
			Imag: (m02 + m20) / s,
			Jmag: (m12 + m21) / s,
			Kmag: 0.25 * s,
		}
	}

	return Normalize(q)
}

// EulerAngles returns orientation in Euler angle representation. The angles are read off
// the matrix elements directly, with a dedicated branch when pitch lies at a pole.
func (rm *RotationMatrix) EulerAngles() *EulerAngles {
	sy := math.Sqrt(rm.At(0, 0)*rm.At(0, 0) + rm.At(1, 0)*rm.At(1, 0))
	if sy < 1e-6 { // gimbal lock
		return &EulerAngles{
			Roll:  math.Atan2(-rm.At(1, 2), rm.At(1, 1)),
			Pitch: math.Atan2(-rm.At(2, 0), sy),
			Yaw:   0,
		}
	}
	return &EulerAngles{
		Roll:  math.Atan2(rm.At(2, 1), rm.At(2, 2)),
		Pitch: math.Atan2(-rm.At(2, 0), sy),
		Yaw:   math.Atan2(rm.At(1, 0), rm.At(0, 0)),
	}
}

// At returns the float corresponding to the given row and column of the matrix.
func (rm *RotationMatrix) At(row, col int) float64 {
	return rm.mat.At(row, col)
}

// Row returns the a row of the matrix as an r3.Vector.
func (rm *RotationMatrix) Row(row int) r3.Vector {
	return r3.Vector{X: rm.At(row, 0), Y: rm.At(row, 1), Z: rm.At(row, 2)}
}

// Col returns the a column of the matrix as an r3.Vector.
func (rm *RotationMatrix) Col(col int) r3.Vector {
	return r3.Vector{X: rm.At(0, col), Y: rm.At(1, col), Z: rm.At(2, col)}
}

// Mul returns the product of the rotation matrix with an r3.Vector.
func (rm *RotationMatrix) Mul(v r3.Vector) r3.Vector {
	return r3.Vector{
		X: rm.At(0, 0)*v.X + rm.At(0, 1)*v.Y + rm.At(0, 2)*v.Z,
		Y: rm.At(1, 0)*v.X + rm.At(1, 1)*v.Y + rm.At(1, 2)*v.Z,
		Z: rm.At(2, 0)*v.X + rm.At(2, 1)*v.Y + rm.At(2, 2)*v.Z,
	}
}

// QuatToRotationMatrix converts a quat to a rotation matrix.
func QuatToRotationMatrix(q quat.Number) *RotationMatrix {
	w, x, y, z := q.Real, q.Imag, q.Jmag, q.Kmag
	mat := mgl64.Mat3FromRows(
		mgl64.Vec3{1 - 2*y*y - 2*z*z, 2*x*y - 2*z*w, 2*x*z + 2*y*w},
		mgl64.Vec3{2*x*y + 2*z*w, 1 - 2*x*x - 2*z*z, 2*y*z - 2*x*w},
		mgl64.Vec3{2*x*z - 2*y*w, 2*y*z + 2*x*w, 1 - 2*x*x - 2*y*y},
	)
	return &RotationMatrix{mat}
}
