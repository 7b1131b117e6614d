package tf2

import (
	"gonum.org/v1/gonum/num/quat"

	"github.com/AnsunWu/geometry2/geometrymsgs"
	"github.com/AnsunWu/geometry2/logging"
	"github.com/AnsunWu/geometry2/spatialmath"
)

// NewQuaternionFromRPY builds a quaternion from roll, pitch and yaw in radians,
// composed as a roll about X, then a pitch about Y, then a yaw about Z of the fixed
// frame.
func NewQuaternionFromRPY(roll, pitch, yaw float64) Quaternion {
	return (&spatialmath.EulerAngles{Roll: roll, Pitch: pitch, Yaw: yaw}).Quaternion()
}

// NewQuaternionFromYaw builds a quaternion from a yaw in radians, with zero roll and
// pitch.
func NewQuaternionFromYaw(yaw float64) Quaternion {
	return NewQuaternionFromRPY(0, 0, yaw)
}

// NewIdentityQuaternion returns the quaternion representing zero rotation.
func NewIdentityQuaternion() Quaternion {
	return quat.Number{Real: 1}
}

// NewQuaternionMsgFromRPY builds a quaternion message directly from roll, pitch and
// yaw in radians.
func NewQuaternionMsgFromRPY(roll, pitch, yaw float64, logger logging.Logger) *geometrymsgs.Quaternion {
	return QuaternionToMsg(NewQuaternionFromRPY(roll, pitch, yaw), logger)
}

// NewQuaternionMsgFromYaw builds a quaternion message directly from a yaw in radians.
func NewQuaternionMsgFromYaw(yaw float64, logger logging.Logger) *geometrymsgs.Quaternion {
	return QuaternionToMsg(NewQuaternionFromYaw(yaw), logger)
}

// Yaw extracts the yaw of a quaternion via its Euler angle decomposition, discarding
// roll and pitch.
func Yaw(q Quaternion) float64 {
	return spatialmath.QuatToEulerAngles(q).Yaw
}

// YawFromMsg extracts the yaw of a quaternion message.
func YawFromMsg(msg *geometrymsgs.Quaternion, logger logging.Logger) float64 {
	return Yaw(QuaternionFromMsg(msg, logger))
}
