package spatialmath

import (
	"encoding/json"
	"math"
	"os"
	"testing"

	"github.com/pkg/errors"
	"go.viam.com/test"
	"gonum.org/v1/gonum/num/quat"
)

func TestOrientationJSON(t *testing.T) {
	data, err := os.ReadFile("data/orientations.json")
	test.That(t, err, test.ShouldBeNil)
	// Parse into map of tests
	var testMap map[string]json.RawMessage
	err = json.Unmarshal(data, &testMap)
	test.That(t, err, test.ShouldBeNil)

	// Config with unknown orientation
	ro := RawOrientation{}
	err = json.Unmarshal(testMap["wrong"], &ro)
	test.That(t, err, test.ShouldBeNil)
	_, err = ParseOrientation(ro)
	test.That(t, err, test.ShouldBeError, errors.New("orientation type oiler_angles not recognized"))

	// Config with good type, but bad value
	ro = RawOrientation{}
	err = json.Unmarshal(testMap["wrongvalue"], &ro)
	test.That(t, err, test.ShouldBeNil)
	_, err = ParseOrientation(ro)
	test.That(t, err, test.ShouldNotBeNil)

	// Empty Config
	ro = RawOrientation{}
	err = json.Unmarshal(testMap["empty"], &ro)
	test.That(t, err, test.ShouldBeNil)
	o, err := ParseOrientation(ro)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, o.Quaternion(), test.ShouldResemble, quat.Number{Real: 1})

	// Quaternion Config
	ro = RawOrientation{}
	err = json.Unmarshal(testMap["quaternion"], &ro)
	test.That(t, err, test.ShouldBeNil)
	o, err = ParseOrientation(ro)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, o.Quaternion().Real, test.ShouldAlmostEqual, math.Sqrt2/2, 1e-6)
	test.That(t, o.Quaternion().Imag, test.ShouldAlmostEqual, math.Sqrt2/2, 1e-6)
	om, err := OrientationMap(o)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, om["type"], test.ShouldEqual, string(QuaternionType))

	// EulerAngles Config
	ro = RawOrientation{}
	err = json.Unmarshal(testMap["euler"], &ro)
	test.That(t, err, test.ShouldBeNil)
	o, err = ParseOrientation(ro)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, o.EulerAngles(), test.ShouldResemble, &EulerAngles{Roll: 0, Pitch: 0, Yaw: 0.78539816})
	om, err = OrientationMap(o)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, om["type"], test.ShouldEqual, string(EulerAnglesType))
	test.That(t, om["value"], test.ShouldResemble, &EulerAngles{Roll: 0, Pitch: 0, Yaw: 0.78539816})

	// AxisAngles Config
	ro = RawOrientation{}
	err = json.Unmarshal(testMap["axisangle"], &ro)
	test.That(t, err, test.ShouldBeNil)
	o, err = ParseOrientation(ro)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, o.AxisAngles(), test.ShouldResemble, &R4AA{Theta: 0.78539816, RX: 1, RY: 0, RZ: 0})
	om, err = OrientationMap(o)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, om["type"], test.ShouldEqual, string(AxisAnglesType))

	// AxisAngles Config with a zero axis, which has no unit-axis form
	ro = RawOrientation{}
	err = json.Unmarshal(testMap["zeroaxis"], &ro)
	test.That(t, err, test.ShouldBeNil)
	_, err = ParseOrientation(ro)
	test.That(t, err, test.ShouldBeError, errors.New("axis_angles orientation requires a non-zero axis"))
}

func TestOrientationJSONRoundTrip(t *testing.T) {
	for name, o := range map[string]Orientation{
		"quaternion":   &Quaternion{Real: 0.8775826, Imag: 0.4794255, Jmag: 0, Kmag: 0},
		"euler_angles": &EulerAngles{Roll: 0.5, Pitch: -0.25, Yaw: 1},
		"axis_angles":  &R4AA{Theta: 0.5, RX: 0, RY: 0, RZ: 1},
	} {
		t.Run(name, func(t *testing.T) {
			om, err := OrientationMap(o)
			test.That(t, err, test.ShouldBeNil)
			test.That(t, om["type"], test.ShouldEqual, name)

			serialized, err := json.Marshal(om)
			test.That(t, err, test.ShouldBeNil)

			var ro RawOrientation
			err = json.Unmarshal(serialized, &ro)
			test.That(t, err, test.ShouldBeNil)

			parsed, err := ParseOrientation(ro)
			test.That(t, err, test.ShouldBeNil)
			test.That(t, OrientationAlmostEqual(parsed, o), test.ShouldBeTrue)
		})
	}
}
