package spatialmath

import "gonum.org/v1/gonum/num/quat"

// Quaternion is the (x, y, z, w) storage representation of a rotation.
// Identity is (0, 0, 0, 1). Arithmetic treats it as a unit quaternion:
// results produced by composition are renormalized when drift could
// accumulate, see Rotation.
type Quaternion struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
	W float64 `json:"w"`
}

// NewQuaternion builds a Quaternion from its components. Returns
// InvalidInputError if any component is not finite or the resulting
// quaternion has zero norm.
func NewQuaternion(x, y, z, w float64) (Quaternion, error) {
	for field, v := range map[string]float64{"x": x, "y": y, "z": z, "w": w} {
		if !isFinite(v) {
			return Quaternion{}, newInvalidInputError(field, v)
		}
	}
	q := Quaternion{X: x, Y: y, Z: z, W: w}
	if quat.Abs(q.toQuat()) == 0 {
		return Quaternion{}, errZeroNormQuaternion
	}
	return q, nil
}

// IdentityQuaternion returns the multiplicative identity quaternion.
func IdentityQuaternion() Quaternion {
	return Quaternion{W: 1}
}

// ToList returns the quaternion as a slice in x, y, z, w order.
func (q Quaternion) ToList() []float64 {
	return []float64{q.X, q.Y, q.Z, q.W}
}

// ToTuple returns the quaternion components in x, y, z, w order.
func (q Quaternion) ToTuple() (x, y, z, w float64) {
	return q.X, q.Y, q.Z, q.W
}

// ToRotation converts the quaternion to the canonical Rotation
// representation, normalizing it in the process.
func (q Quaternion) ToRotation() (Rotation, error) {
	return NewRotationFromQuaternion(q)
}

func (q Quaternion) toQuat() quat.Number {
	return quat.Number{Real: q.W, Imag: q.X, Jmag: q.Y, Kmag: q.Z}
}

func quaternionFromQuat(q quat.Number) Quaternion {
	return Quaternion{X: q.Imag, Y: q.Jmag, Z: q.Kmag, W: q.Real}
}

// QuaternionAlmostEqual reports whether two quaternions represent the same
// rotation within epsilon, accepting either sign (q and -q are the same
// rotation).
func QuaternionAlmostEqual(a, b Quaternion, epsilon float64) bool {
	same := floatAlmostEqual(a.X, b.X, epsilon) &&
		floatAlmostEqual(a.Y, b.Y, epsilon) &&
		floatAlmostEqual(a.Z, b.Z, epsilon) &&
		floatAlmostEqual(a.W, b.W, epsilon)
	if same {
		return true
	}
	return floatAlmostEqual(a.X, -b.X, epsilon) &&
		floatAlmostEqual(a.Y, -b.Y, epsilon) &&
		floatAlmostEqual(a.Z, -b.Z, epsilon) &&
		floatAlmostEqual(a.W, -b.W, epsilon)
}
