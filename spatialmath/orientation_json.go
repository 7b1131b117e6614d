package spatialmath

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// OrientationType defines what orientation representations are known.
type OrientationType string

// The set of allowed representations for orientation.
const (
	QuaternionType  = OrientationType("quaternion")
	EulerAnglesType = OrientationType("euler_angles")
	AxisAnglesType  = OrientationType("axis_angles")
)

// RawOrientation holds the underlying type of orientation and its value.
type RawOrientation struct {
	Type  string          `json:"type"`
	Value json.RawMessage `json:"value"`
}

// quaternionJSON is a utility struct for reading and writing quaternion values, whose
// gonum-backed fields do not carry json tags of their own.
type quaternionJSON struct {
	W float64 `json:"w"`
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// ParseOrientation will use the Type in RawOrientation to unmarshal the Value into the
// correct struct that implements Orientation.
func ParseOrientation(ro RawOrientation) (Orientation, error) {
	// use the type to unmarshal the value
	switch OrientationType(ro.Type) {
	case "":
		return NewZeroOrientation(), nil
	case QuaternionType:
		var q quaternionJSON
		if err := json.Unmarshal(ro.Value, &q); err != nil {
			return nil, err
		}
		return &Quaternion{Real: q.W, Imag: q.X, Jmag: q.Y, Kmag: q.Z}, nil
	case EulerAnglesType:
		var o EulerAngles
		if err := json.Unmarshal(ro.Value, &o); err != nil {
			return nil, err
		}
		return &o, nil
	case AxisAnglesType:
		var o R4AA
		if err := json.Unmarshal(ro.Value, &o); err != nil {
			return nil, err
		}
		// A zero axis cannot be scaled onto the unit sphere.
		if o.RX == 0 && o.RY == 0 && o.RZ == 0 {
			return nil, errors.New("axis_angles orientation requires a non-zero axis")
		}
		return &o, nil
	default:
		return nil, errors.Errorf("orientation type %s not recognized", ro.Type)
	}
}

// OrientationMap encodes the orientation interface to something serializable and human readable.
func OrientationMap(o Orientation) (map[string]interface{}, error) {
	switch v := o.(type) {
	case *Quaternion:
		q := v.Quaternion()
		return map[string]interface{}{
			"type":  string(QuaternionType),
			"value": quaternionJSON{W: q.Real, X: q.Imag, Y: q.Jmag, Z: q.Kmag},
		}, nil
	case *EulerAngles:
		return map[string]interface{}{"type": string(EulerAnglesType), "value": v}, nil
	case *R4AA:
		return map[string]interface{}{"type": string(AxisAnglesType), "value": v}, nil
	default:
		return nil, errors.Errorf("do not know how to map Orientation type %T to json fields", o)
	}
}
