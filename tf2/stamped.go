package tf2

import (
	"time"

	"github.com/AnsunWu/geometry2/spatialmath"
)

// Stamped pairs a value with the time it was captured and the name of the coordinate
// frame it is expressed in. The wrapper does not interpret the value.
type Stamped[T any] struct {
	Value   T
	Stamp   time.Time
	FrameID string
}

// NewStamped wraps a value with a capture time and frame name.
func NewStamped[T any](value T, stamp time.Time, frameID string) Stamped[T] {
	return Stamped[T]{Value: value, Stamp: stamp, FrameID: frameID}
}

// StampedEqual reports whether two stamped values agree on frame, timestamp and value.
// Timestamps are compared with time.Time.Equal so the monotonic clock reading does not
// affect the result.
func StampedEqual[T comparable](a, b Stamped[T]) bool {
	return a.FrameID == b.FrameID && a.Stamp.Equal(b.Stamp) && a.Value == b.Value
}

// StampedPoseAlmostEqual is StampedEqual for stamped poses, whose values are interface
// values compared geometrically rather than structurally.
func StampedPoseAlmostEqual(a, b Stamped[Pose]) bool {
	return a.FrameID == b.FrameID && a.Stamp.Equal(b.Stamp) && spatialmath.PoseAlmostEqual(a.Value, b.Value)
}

// StampedTransform is a rigid transform with a timestamp and the names of both frames
// it relates. The transform maps FrameID into ChildFrameID, so unlike the other stamped
// values it names two frames.
type StampedTransform struct {
	Transform    Transform
	Stamp        time.Time
	FrameID      string
	ChildFrameID string
}

// NewStampedTransform wraps a transform with a capture time and the two frame names it
// relates.
func NewStampedTransform(transform Transform, stamp time.Time, frameID, childFrameID string) StampedTransform {
	return StampedTransform{Transform: transform, Stamp: stamp, FrameID: frameID, ChildFrameID: childFrameID}
}

// AlmostEqual reports whether two stamped transforms agree on both frames, the
// timestamp, and the transform itself within the geometric tolerance.
func (st StampedTransform) AlmostEqual(other StampedTransform) bool {
	return st.FrameID == other.FrameID &&
		st.ChildFrameID == other.ChildFrameID &&
		st.Stamp.Equal(other.Stamp) &&
		spatialmath.PoseAlmostEqual(st.Transform, other.Transform)
}
