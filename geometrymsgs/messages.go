// Package geometrymsgs defines the wire shapes for geometric values exchanged with
// other processes. Only the field layout lives here; encoding and transport are owned
// by the messaging layer.
package geometrymsgs

import "time"

// Header carries the capture time of a value and the name of the coordinate frame
// the value is expressed in.
type Header struct {
	Stamp   time.Time `json:"stamp"`
	FrameID string    `json:"frame_id"`
}

// Quaternion is a rotation in quaternion representation. Unit norm by convention.
type Quaternion struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
	W float64 `json:"w"`
}

// Vector3 is a free vector in 3D space.
type Vector3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Point is a position in 3D space.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Transform is a rigid transformation between two coordinate frames.
type Transform struct {
	Translation Vector3    `json:"translation"`
	Rotation    Quaternion `json:"rotation"`
}

// Pose is a position and orientation within a coordinate frame. It shares its
// representation with Transform.
type Pose struct {
	Position    Point      `json:"position"`
	Orientation Quaternion `json:"orientation"`
}

// Twist is an instantaneous velocity, split into its linear and angular parts.
type Twist struct {
	Linear  Vector3 `json:"linear"`
	Angular Vector3 `json:"angular"`
}

// QuaternionStamped is a Quaternion with a reference frame and timestamp.
type QuaternionStamped struct {
	Header     Header     `json:"header"`
	Quaternion Quaternion `json:"quaternion"`
}

// Vector3Stamped is a Vector3 with a reference frame and timestamp.
type Vector3Stamped struct {
	Header Header  `json:"header"`
	Vector Vector3 `json:"vector"`
}

// PointStamped is a Point with a reference frame and timestamp.
type PointStamped struct {
	Header Header `json:"header"`
	Point  Point  `json:"point"`
}

// PoseStamped is a Pose with a reference frame and timestamp.
type PoseStamped struct {
	Header Header `json:"header"`
	Pose   Pose   `json:"pose"`
}

// TransformStamped is a Transform with a timestamp and the names of both frames the
// transform relates. The transform maps the frame named by the header into the child
// frame.
type TransformStamped struct {
	Header       Header    `json:"header"`
	ChildFrameID string    `json:"child_frame_id"`
	Transform    Transform `json:"transform"`
}

// TwistStamped is a Twist with a reference frame and timestamp.
type TwistStamped struct {
	Header Header `json:"header"`
	Twist  Twist  `json:"twist"`
}
