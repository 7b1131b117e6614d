// Package utils contains shared math helpers used across the geometry packages.
package utils

import (
	"math"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/floats/scalar"
)

func DegToRad(degrees float64) float64 {
	return degrees * math.Pi / 180
}

func RadToDeg(radians float64) float64 {
	return radians * 180 / math.Pi
}

// Float64AlmostEqual compares two float64s and returns if their difference is less than epsilon.
func Float64AlmostEqual(a, b, epsilon float64) bool {
	return scalar.EqualWithinAbs(a, b, epsilon)
}

// R3VectorAlmostEqual compares two r3.Vector objects and returns if all elementwise differences
// are less than epsilon.
func R3VectorAlmostEqual(a, b r3.Vector, epsilon float64) bool {
	return Float64AlmostEqual(a.X, b.X, epsilon) &&
		Float64AlmostEqual(a.Y, b.Y, epsilon) &&
		Float64AlmostEqual(a.Z, b.Z, epsilon)
}

// CycleIntoRange folds an angle in radians into the interval (-pi, pi].
func CycleIntoRange(radians float64) float64 {
	for radians <= -math.Pi {
		radians += 2 * math.Pi
	}
	for radians > math.Pi {
		radians -= 2 * math.Pi
	}
	return radians
}
