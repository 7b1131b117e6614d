package tf2

import (
	"math"

	"gonum.org/v1/gonum/num/quat"

	"github.com/AnsunWu/geometry2/geometrymsgs"
	"github.com/AnsunWu/geometry2/logging"
	"github.com/AnsunWu/geometry2/spatialmath"
)

// QuaternionTolerance is the maximum deviation of a rotation quaternion's squared
// length from 1 before conversions renormalize it.
const QuaternionTolerance = 0.1

// checkQuaternion returns the input quaternion, renormalized if its squared length has
// drifted beyond QuaternionTolerance. The repair is logged as a warning; it is the only
// condition any conversion in this package reacts to.
func checkQuaternion(q Quaternion, logger logging.Logger) Quaternion {
	if math.Abs(spatialmath.Norm2(q)-1.0) > QuaternionTolerance {
		logger.Warnf(
			"quaternion (w: %v, x: %v, y: %v, z: %v) is not normalized, normalizing a copy",
			q.Real, q.Imag, q.Jmag, q.Kmag,
		)
		q = spatialmath.Normalize(q)
	}
	return q
}

// QuaternionFromMsg converts a quaternion message to the math type.
func QuaternionFromMsg(msg *geometrymsgs.Quaternion, logger logging.Logger) Quaternion {
	return checkQuaternion(quat.Number{Real: msg.W, Imag: msg.X, Jmag: msg.Y, Kmag: msg.Z}, logger)
}

// QuaternionToMsg converts a quaternion to its message shape.
func QuaternionToMsg(q Quaternion, logger logging.Logger) *geometrymsgs.Quaternion {
	q = checkQuaternion(q, logger)
	return &geometrymsgs.Quaternion{X: q.Imag, Y: q.Jmag, Z: q.Kmag, W: q.Real}
}

// Vector3FromMsg converts a vector message to the math type.
func Vector3FromMsg(msg *geometrymsgs.Vector3) Vector3 {
	return Vector3{X: msg.X, Y: msg.Y, Z: msg.Z}
}

// Vector3ToMsg converts a vector to its message shape.
func Vector3ToMsg(v Vector3) *geometrymsgs.Vector3 {
	return &geometrymsgs.Vector3{X: v.X, Y: v.Y, Z: v.Z}
}

// PointFromMsg converts a point message to the math type.
func PointFromMsg(msg *geometrymsgs.Point) Point {
	return Point{X: msg.X, Y: msg.Y, Z: msg.Z}
}

// PointToMsg converts a point to its message shape.
func PointToMsg(p Point) *geometrymsgs.Point {
	return &geometrymsgs.Point{X: p.X, Y: p.Y, Z: p.Z}
}

// TransformFromMsg composes a transform message's rotation and translation into a
// Transform.
func TransformFromMsg(msg *geometrymsgs.Transform, logger logging.Logger) Transform {
	o := spatialmath.Quaternion(QuaternionFromMsg(&msg.Rotation, logger))
	return spatialmath.NewPose(Vector3FromMsg(&msg.Translation), &o)
}

// TransformToMsg decomposes a Transform into its message shape.
func TransformToMsg(t Transform, logger logging.Logger) *geometrymsgs.Transform {
	return &geometrymsgs.Transform{
		Translation: *Vector3ToMsg(t.Point()),
		Rotation:    *QuaternionToMsg(t.Orientation().Quaternion(), logger),
	}
}

// PoseFromMsg composes a pose message's orientation and position into a Pose, by the
// same rule as TransformFromMsg.
func PoseFromMsg(msg *geometrymsgs.Pose, logger logging.Logger) Pose {
	o := spatialmath.Quaternion(QuaternionFromMsg(&msg.Orientation, logger))
	return spatialmath.NewPose(PointFromMsg(&msg.Position), &o)
}

// PoseToMsg decomposes a Pose into its message shape.
func PoseToMsg(p Pose, logger logging.Logger) *geometrymsgs.Pose {
	return &geometrymsgs.Pose{
		Position:    *PointToMsg(p.Point()),
		Orientation: *QuaternionToMsg(p.Orientation().Quaternion(), logger),
	}
}

// TwistFromMsg converts a twist message to the math type.
func TwistFromMsg(msg *geometrymsgs.Twist) Twist {
	return Twist{
		Linear:  Vector3FromMsg(&msg.Linear),
		Angular: *spatialmath.R3ToAngVel(Vector3FromMsg(&msg.Angular)),
	}
}

// TwistToMsg converts a twist to its message shape.
func TwistToMsg(t Twist) *geometrymsgs.Twist {
	return &geometrymsgs.Twist{
		Linear:  *Vector3ToMsg(t.Linear),
		Angular: *Vector3ToMsg(t.Angular.R3()),
	}
}

// QuaternionStampedFromMsg converts a stamped quaternion message, copying over the
// timestamp and frame name from its header.
func QuaternionStampedFromMsg(msg *geometrymsgs.QuaternionStamped, logger logging.Logger) Stamped[Quaternion] {
	return NewStamped(QuaternionFromMsg(&msg.Quaternion, logger), msg.Header.Stamp, msg.Header.FrameID)
}

// QuaternionStampedToMsg converts a stamped quaternion to its message shape.
func QuaternionStampedToMsg(s Stamped[Quaternion], logger logging.Logger) *geometrymsgs.QuaternionStamped {
	return &geometrymsgs.QuaternionStamped{
		Header:     geometrymsgs.Header{Stamp: s.Stamp, FrameID: s.FrameID},
		Quaternion: *QuaternionToMsg(s.Value, logger),
	}
}

// Vector3StampedFromMsg converts a stamped vector message.
func Vector3StampedFromMsg(msg *geometrymsgs.Vector3Stamped) Stamped[Vector3] {
	return NewStamped(Vector3FromMsg(&msg.Vector), msg.Header.Stamp, msg.Header.FrameID)
}

// Vector3StampedToMsg converts a stamped vector to its message shape.
func Vector3StampedToMsg(s Stamped[Vector3]) *geometrymsgs.Vector3Stamped {
	return &geometrymsgs.Vector3Stamped{
		Header: geometrymsgs.Header{Stamp: s.Stamp, FrameID: s.FrameID},
		Vector: *Vector3ToMsg(s.Value),
	}
}

// PointStampedFromMsg converts a stamped point message.
func PointStampedFromMsg(msg *geometrymsgs.PointStamped) Stamped[Point] {
	return NewStamped(PointFromMsg(&msg.Point), msg.Header.Stamp, msg.Header.FrameID)
}

// PointStampedToMsg converts a stamped point to its message shape.
func PointStampedToMsg(s Stamped[Point]) *geometrymsgs.PointStamped {
	return &geometrymsgs.PointStamped{
		Header: geometrymsgs.Header{Stamp: s.Stamp, FrameID: s.FrameID},
		Point:  *PointToMsg(s.Value),
	}
}

// PoseStampedFromMsg converts a stamped pose message.
func PoseStampedFromMsg(msg *geometrymsgs.PoseStamped, logger logging.Logger) Stamped[Pose] {
	return NewStamped[Pose](PoseFromMsg(&msg.Pose, logger), msg.Header.Stamp, msg.Header.FrameID)
}

// PoseStampedToMsg converts a stamped pose to its message shape.
func PoseStampedToMsg(s Stamped[Pose], logger logging.Logger) *geometrymsgs.PoseStamped {
	return &geometrymsgs.PoseStamped{
		Header: geometrymsgs.Header{Stamp: s.Stamp, FrameID: s.FrameID},
		Pose:   *PoseToMsg(s.Value, logger),
	}
}

// TwistStampedFromMsg converts a stamped twist message.
func TwistStampedFromMsg(msg *geometrymsgs.TwistStamped) Stamped[Twist] {
	return NewStamped(TwistFromMsg(&msg.Twist), msg.Header.Stamp, msg.Header.FrameID)
}

// TwistStampedToMsg converts a stamped twist to its message shape.
func TwistStampedToMsg(s Stamped[Twist]) *geometrymsgs.TwistStamped {
	return &geometrymsgs.TwistStamped{
		Header: geometrymsgs.Header{Stamp: s.Stamp, FrameID: s.FrameID},
		Twist:  *TwistToMsg(s.Value),
	}
}

// TransformStampedFromMsg converts a stamped transform message, copying the timestamp
// and both frame names.
func TransformStampedFromMsg(msg *geometrymsgs.TransformStamped, logger logging.Logger) StampedTransform {
	return NewStampedTransform(
		TransformFromMsg(&msg.Transform, logger),
		msg.Header.Stamp,
		msg.Header.FrameID,
		msg.ChildFrameID,
	)
}

// TransformStampedToMsg converts a stamped transform to its message shape.
func TransformStampedToMsg(st StampedTransform, logger logging.Logger) *geometrymsgs.TransformStamped {
	return &geometrymsgs.TransformStamped{
		Header:       geometrymsgs.Header{Stamp: st.Stamp, FrameID: st.FrameID},
		ChildFrameID: st.ChildFrameID,
		Transform:    *TransformToMsg(st.Transform, logger),
	}
}
