package spatialmath

import (
	"math"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/floats/scalar"
)

// Vector3 is a point or free vector in Cartesian space. The pack's r3.Vector
// is used directly rather than a hand-rolled triple, matching how every
// frame/pose type downstream already takes r3.Vector for points and
// translations.
type Vector3 = r3.Vector

// NewVector3 builds a Vector3 from its components. Returns InvalidInputError
// if any component is not finite.
func NewVector3(x, y, z float64) (Vector3, error) {
	if !isFinite(x) {
		return Vector3{}, newInvalidInputError("x", x)
	}
	if !isFinite(y) {
		return Vector3{}, newInvalidInputError("y", y)
	}
	if !isFinite(z) {
		return Vector3{}, newInvalidInputError("z", z)
	}
	return Vector3{X: x, Y: y, Z: z}, nil
}

// R3VectorAlmostEqual reports whether two vectors are equal within epsilon on
// each component.
func R3VectorAlmostEqual(a, b Vector3, epsilon float64) bool {
	return floatAlmostEqual(a.X, b.X, epsilon) &&
		floatAlmostEqual(a.Y, b.Y, epsilon) &&
		floatAlmostEqual(a.Z, b.Z, epsilon)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func floatAlmostEqual(a, b, epsilon float64) bool {
	return scalar.EqualWithinAbs(a, b, epsilon)
}
