// Package tf2 converts geometric values between their wire-message shapes and the
// in-memory math types used for computation. Conversions are pure field copies aside
// from one repair: a rotation quaternion that has drifted off unit norm is renormalized
// with a warning to the supplied logger.
package tf2

import (
	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/num/quat"

	"github.com/AnsunWu/geometry2/spatialmath"
)

// Aliases for the math types this package converts to and from, so callers need not
// import the math libraries under their own names.
type (
	// Quaternion is a rotation in quaternion representation.
	Quaternion = quat.Number
	// Vector3 is a free vector in 3D space.
	Vector3 = r3.Vector
	// Point is a position in 3D space.
	Point = r3.Vector
	// Transform is a rigid transformation mapping one coordinate frame into another.
	Transform = spatialmath.Pose
	// Pose is a position and orientation within a frame. It shares its representation
	// with Transform.
	Pose = spatialmath.Pose
)

// Twist is an instantaneous velocity, split into its linear and angular parts.
type Twist struct {
	Linear  r3.Vector
	Angular spatialmath.AngularVelocity
}
