package tf2

import (
	"math"
	"testing"

	"github.com/golang/geo/r3"
	"go.viam.com/test"

	"github.com/AnsunWu/geometry2/logging"
	"github.com/AnsunWu/geometry2/spatialmath"
	"github.com/AnsunWu/geometry2/utils"
)

func TestYawRoundTrip(t *testing.T) {
	q := NewQuaternionFromYaw(math.Pi / 2)
	test.That(t, Yaw(q), test.ShouldAlmostEqual, math.Pi/2, 1e-6)

	// Yaws outside (-pi, pi] come back folded into that range.
	q = NewQuaternionFromYaw(3 * math.Pi / 2)
	test.That(t, Yaw(q), test.ShouldAlmostEqual, utils.CycleIntoRange(3*math.Pi/2), 1e-6)
	test.That(t, Yaw(q), test.ShouldAlmostEqual, -math.Pi/2, 1e-6)
}

func TestRPYRoundTrip(t *testing.T) {
	for _, tc := range []struct {
		name             string
		roll, pitch, yaw float64
	}{
		{"roll only", 0.5, 0, 0},
		{"pitch only", 0, -0.25, 0},
		{"yaw only", 0, 0, 2.5},
		{"combined", 0.5, -0.25, 1.0},
	} {
		t.Run(tc.name, func(t *testing.T) {
			q := NewQuaternionFromRPY(tc.roll, tc.pitch, tc.yaw)
			test.That(t, spatialmath.Norm2(q), test.ShouldAlmostEqual, 1.0)

			ea := spatialmath.QuatToEulerAngles(q)
			test.That(t, ea.Roll, test.ShouldAlmostEqual, tc.roll, 1e-6)
			test.That(t, ea.Pitch, test.ShouldAlmostEqual, tc.pitch, 1e-6)
			test.That(t, ea.Yaw, test.ShouldAlmostEqual, tc.yaw, 1e-6)
		})
	}
}

func TestIdentityQuaternion(t *testing.T) {
	identity := NewIdentityQuaternion()
	test.That(t, spatialmath.Norm2(identity), test.ShouldEqual, 1.0)

	// Zero rotation leaves any vector untouched.
	rm := spatialmath.QuatToRotationMatrix(identity)
	for _, v := range []r3.Vector{
		{X: 1, Y: 0, Z: 0},
		{X: 0, Y: -2.5, Z: 0},
		{X: 3, Y: 4, Z: 5},
	} {
		test.That(t, rm.Mul(v), test.ShouldResemble, v)
	}

	test.That(t, Yaw(identity), test.ShouldEqual, 0.0)
}

func TestQuaternionMsgHelpers(t *testing.T) {
	logger, observed := logging.NewObservedTestLogger(t)

	msg := NewQuaternionMsgFromYaw(math.Pi/2, logger)
	test.That(t, msg.X, test.ShouldAlmostEqual, 0)
	test.That(t, msg.Y, test.ShouldAlmostEqual, 0)
	test.That(t, msg.Z, test.ShouldAlmostEqual, math.Sqrt2/2)
	test.That(t, msg.W, test.ShouldAlmostEqual, math.Sqrt2/2)

	test.That(t, YawFromMsg(msg, logger), test.ShouldAlmostEqual, math.Pi/2, 1e-6)

	msg = NewQuaternionMsgFromRPY(0.5, -0.25, 1.0, logger)
	q := QuaternionFromMsg(msg, logger)
	ea := spatialmath.QuatToEulerAngles(q)
	test.That(t, ea.Roll, test.ShouldAlmostEqual, 0.5, 1e-6)
	test.That(t, ea.Pitch, test.ShouldAlmostEqual, -0.25, 1e-6)
	test.That(t, ea.Yaw, test.ShouldAlmostEqual, 1.0, 1e-6)

	// Helper-built quaternions are unit norm; nothing to repair.
	test.That(t, observed.FilterMessageSnippet("not normalized").Len(), test.ShouldEqual, 0)
}
