package spatialmath

import (
	"math"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/num/quat"
)

// AngularVelocity contains angular velocity in rad/s across x/y/z axes.
type AngularVelocity r3.Vector

// R3 returns the angular velocity as an r3.Vector.
func (av *AngularVelocity) R3() r3.Vector {
	return r3.Vector{X: av.X, Y: av.Y, Z: av.Z}
}

// R3ToAngVel converts an r3.Vector to an angular velocity.
func R3ToAngVel(vec r3.Vector) *AngularVelocity {
	return &AngularVelocity{X: vec.X, Y: vec.Y, Z: vec.Z}
}

// OrientationToAngularVel calculates an angular velocity based on an orientation change over a time difference.
func OrientationToAngularVel(diff Orientation, dt float64) *AngularVelocity {
	return R3ToAngVel(QuatToR3AA(diff.Quaternion()).Mul(1. / dt))
}

// QuatToAngVel calculates an angular velocity based on an orientation change expressed in quaternions
// over a time difference. The quaternion logarithm gives half the rotation vector of the change.
func QuatToAngVel(diffQ quat.Number, dt float64) *AngularVelocity {
	w := quat.Scale(2./dt, quat.Log(diffQ))
	return &AngularVelocity{X: w.Imag, Y: w.Jmag, Z: w.Kmag}
}

// EulerToAngVel calculates an angular velocity based on an orientation change expressed in euler angles
// over a time difference.
func EulerToAngVel(diffEu EulerAngles, dt float64) *AngularVelocity {
	return &AngularVelocity{
		X: diffEu.Roll/dt - math.Sin(diffEu.Pitch)*diffEu.Yaw/dt,
		Y: math.Cos(diffEu.Roll)*diffEu.Pitch/dt + math.Cos(diffEu.Pitch)*math.Sin(diffEu.Roll)*diffEu.Yaw/dt,
		Z: -math.Sin(diffEu.Roll)*diffEu.Pitch/dt + math.Cos(diffEu.Pitch)*math.Cos(diffEu.Roll)*diffEu.Yaw/dt,
	}
}

// RotMatToAngVel calculates an angular velocity based on an orientation change expressed in rotation
// matrices over a time difference.
func RotMatToAngVel(diffRm RotationMatrix, dt float64) *AngularVelocity {
	return OrientationToAngularVel(&diffRm, dt)
}
