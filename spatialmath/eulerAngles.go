package spatialmath

import (
	"math"

	"gonum.org/v1/gonum/num/quat"
)

// EulerAngles are three angles used to represent the rotation of an object in 3D Euclidean
// space. The Tait-Bryan angles are applied in the intrinsic ZYX order, which composes the same
// rotation as rolling about the fixed X axis, then pitching about the fixed Y axis, then
// yawing about the fixed Z axis.
type EulerAngles struct {
	Roll  float64 `json:"roll"`  // rotation about the x axis, radians
	Pitch float64 `json:"pitch"` // rotation about the y axis, radians
	Yaw   float64 `json:"yaw"`   // rotation about the z axis, radians
}

// NewEulerAngles creates an empty EulerAngles struct.
func NewEulerAngles() *EulerAngles {
	return &EulerAngles{Roll: 0, Pitch: 0, Yaw: 0}
}

// EulerAngles returns orientation in Euler angle representation.
func (ea *EulerAngles) EulerAngles() *EulerAngles {
	return ea
}

// Quaternion returns orientation in quaternion representation.
func (ea *EulerAngles) Quaternion() quat.Number {
	cy := math.Cos(ea.Yaw * 0.5)
	sy := math.Sin(ea.Yaw * 0.5)
	cp := math.Cos(ea.Pitch * 0.5)
	sp := math.Sin(ea.Pitch * 0.5)
	cr := math.Cos(ea.Roll * 0.5)
	sr := math.Sin(ea.Roll * 0.5)

	q := quat.Number{}
	q.Real = cy*cp*cr + sy*sp*sr
	q.Imag = cy*cp*sr - sy*sp*cr
	q.Jmag = sy*cp*sr + cy*sp*cr
	q.Kmag = sy*cp*cr - cy*sp*sr

	return q
}

// AxisAngles returns the orientation in axis angle representation.
func (ea *EulerAngles) AxisAngles() *R4AA {
	return QuatToR4AA(ea.Quaternion())
}

// RotationMatrix returns the orientation in rotation matrix representation.
func (ea *EulerAngles) RotationMatrix() *RotationMatrix {
	return QuatToRotationMatrix(ea.Quaternion())
}
