package spatialmath

import (
	"github.com/golang/geo/r3"

	"github.com/AnsunWu/geometry2/utils"
)

const defaultDistanceEpsilon = 1e-8

// Pose represents a 6dof pose, position and orientation, of an object or a frame of
// reference. For efficiency, an underlying dual quaternion is used, and transformations
// are applied through dual quaternion multiplication.
type Pose interface {
	Point() r3.Vector
	Orientation() Orientation
}

// NewZeroPose returns a pose at (0,0,0) with the same orientation as whatever frame it is placed in.
func NewZeroPose() Pose {
	return newDualQuaternion()
}

// NewPose takes in a position and orientation and returns a Pose.
func NewPose(p r3.Vector, o Orientation) Pose {
	if o == nil {
		return NewPoseFromPoint(p)
	}
	q := newDualQuaternionFromRotation(o)
	q.SetTranslation(p)
	return q
}

// NewPoseFromPoint takes in a cartesian (x,y,z) and stores it as a vector.
// It will have the same orientation as the frame it is in reference to.
func NewPoseFromPoint(point r3.Vector) Pose {
	q := newDualQuaternion()
	q.SetTranslation(point)
	return q
}

// NewPoseFromOrientation takes in an orientation and returns a Pose at the origin.
func NewPoseFromOrientation(o Orientation) Pose {
	if o == nil {
		return NewZeroPose()
	}
	return newDualQuaternionFromRotation(o)
}

// Compose treats Poses as functions A(x) and B(x), and produces a new function C(x) = A(B(x)).
// It converts the poses to dual quaternions and multiplies them together, normalizing the
// rotation, and returns a new Pose.
func Compose(a, b Pose) Pose {
	return &dualQuaternion{newDualQuaternionFromPose(a).Transformation(newDualQuaternionFromPose(b).Number)}
}

// PoseInverse returns the inverse of the given pose, such that composing a pose with its
// inverse yields the zero pose.
func PoseInverse(p Pose) Pose {
	return newDualQuaternionFromPose(p).Invert()
}

// PoseBetween returns the difference between two poses, that is, the pose which when
// composed onto a yields b.
func PoseBetween(a, b Pose) Pose {
	return Compose(PoseInverse(a), b)
}

// Interpolate will return a new Pose that is the interpolated pose between p1 and p2, on
// a scale of 0-1, where 0 is the first pose and 1 is the second. The orientation is
// spherically interpolated and the point is linearly interpolated.
func Interpolate(p1, p2 Pose, by float64) Pose {
	intQ := newDualQuaternion()
	intQ.Real = slerp(p1.Orientation().Quaternion(), p2.Orientation().Quaternion(), by)

	intQ.SetTranslation(r3.Vector{
		X: p1.Point().X + (p2.Point().X-p1.Point().X)*by,
		Y: p1.Point().Y + (p2.Point().Y-p1.Point().Y)*by,
		Z: p1.Point().Z + (p2.Point().Z-p1.Point().Z)*by,
	})
	return intQ
}

// PoseAlmostCoincident checks if two poses approximately coincide in translation, using
// the default epsilon.
func PoseAlmostCoincident(a, b Pose) bool {
	return PoseAlmostCoincidentEps(a, b, defaultDistanceEpsilon)
}

// PoseAlmostCoincidentEps checks if two poses approximately coincide in translation,
// within the given epsilon.
func PoseAlmostCoincidentEps(a, b Pose, epsilon float64) bool {
	return utils.R3VectorAlmostEqual(a.Point(), b.Point(), epsilon)
}

// PoseAlmostEqual checks if both the position and orientation of two poses are close.
func PoseAlmostEqual(a, b Pose) bool {
	return PoseAlmostCoincident(a, b) && OrientationAlmostEqual(a.Orientation(), b.Orientation())
}
