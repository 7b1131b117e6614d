package spatialmath

import (
	"testing"

	"github.com/golang/geo/r3"
	"go.viam.com/test"
)

func TestAngVelConversions(t *testing.T) {
	// Orientation deltas only determine a rate up to a full turn, so keep each delta
	// well under pi.
	const dt = 0.1

	for _, rate := range []struct {
		TestName    string
		AngularRate r3.Vector
	}{
		{"unitary roll", r3.Vector{X: 1, Y: 0, Z: 0}},
		{"unitary pitch", r3.Vector{X: 0, Y: 1, Z: 0}},
		{"unitary yaw", r3.Vector{X: 0, Y: 0, Z: 1}},
		{"roll", r3.Vector{X: 2, Y: 0, Z: 0}},
		{"pitch", r3.Vector{X: 0, Y: 4, Z: 0}},
		{"yaw", r3.Vector{X: 0, Y: 0, Z: 5}},
	} {
		t.Run(rate.TestName, func(t *testing.T) {
			// set up single axis frame speeds
			diff := rate.AngularRate.Mul(dt)
			diffEu := &EulerAngles{Roll: diff.X, Pitch: diff.Y, Yaw: diff.Z}

			expected := R3ToAngVel(rate.AngularRate)
			assertAngVelAlmostEqual := func(t *testing.T, av *AngularVelocity) {
				t.Helper()
				test.That(t, av.X, test.ShouldAlmostEqual, expected.X, 1e-8)
				test.That(t, av.Y, test.ShouldAlmostEqual, expected.Y, 1e-8)
				test.That(t, av.Z, test.ShouldAlmostEqual, expected.Z, 1e-8)
			}

			t.Run("quaternion", func(t *testing.T) {
				assertAngVelAlmostEqual(t, QuatToAngVel(diffEu.Quaternion(), dt))
			})
			t.Run("orientation", func(t *testing.T) {
				assertAngVelAlmostEqual(t, OrientationToAngularVel(diffEu, dt))
			})
			t.Run("euler", func(t *testing.T) {
				assertAngVelAlmostEqual(t, EulerToAngVel(*diffEu, dt))
			})
			t.Run("rotation matrix", func(t *testing.T) {
				assertAngVelAlmostEqual(t, RotMatToAngVel(*diffEu.RotationMatrix(), dt))
			})
		})
	}
}

func TestAngVelR3RoundTrip(t *testing.T) {
	vec := r3.Vector{X: 1.5, Y: -2, Z: 0.25}
	av := R3ToAngVel(vec)
	test.That(t, av.R3(), test.ShouldResemble, vec)
}
