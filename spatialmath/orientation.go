package spatialmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// defaultAngleEpsilon is how close |sin(pitch)| needs to be to 1 before the
// standard quaternion->RPY formula is considered gimbal-locked.
const defaultAngleEpsilon = 1e-8

// Orientation is a rotation with multiple equivalent views. Rotation is the
// sole implementer; the interface exists so that other parts of the module
// (and, someday, additional parameterizations) can consume an orientation
// without depending on its concrete representation.
type Orientation interface {
	Quaternion() Quaternion
	RPY() RPY
}

// Rotation is an orientation, canonically stored as a unit quaternion.
// Construction from RPY or quaternion components is supported; the matrix
// form is never exposed as public state.
type Rotation struct {
	q mgl64.Quat
}

// IdentityRotation returns the no-op rotation.
func IdentityRotation() Rotation {
	return Rotation{q: mgl64.QuatIdent()}
}

// NewRotationFromQuaternion builds a Rotation from quaternion components,
// normalizing internally. Returns InvalidInputError for non-finite
// components or a zero-norm quaternion.
func NewRotationFromQuaternion(q Quaternion) (Rotation, error) {
	for field, v := range map[string]float64{"x": q.X, "y": q.Y, "z": q.Z, "w": q.W} {
		if !isFinite(v) {
			return Rotation{}, newInvalidInputError(field, v)
		}
	}
	raw := mgl64.Quat{W: q.W, V: mgl64.Vec3{q.X, q.Y, q.Z}}
	if raw.Len() == 0 {
		return Rotation{}, errZeroNormQuaternion
	}
	return Rotation{q: raw.Normalize()}, nil
}

// NewRotationFromRPY builds a Rotation from an RPY triple. This constructor
// is total: any finite RPY triple produces a valid unit rotation.
func NewRotationFromRPY(rpy RPY) Rotation {
	// R = Rz(yaw) * Ry(pitch) * Rx(roll), i.e. ZYX-intrinsic.
	return Rotation{q: mgl64.AnglesToQuat(rpy.Yaw, rpy.Pitch, rpy.Roll, mgl64.ZYX).Normalize()}
}

// Quaternion returns the unit-quaternion representation, canonicalized to
// have a non-negative w component.
func (r Rotation) Quaternion() Quaternion {
	q := r.q
	if q.W < 0 {
		q = mgl64.Quat{W: -q.W, V: q.V.Mul(-1)}
	}
	return quaternionFromMgl(q)
}

// RPY returns the canonical roll-pitch-yaw representation, with pitch in
// [-pi/2, pi/2] and yaw, roll in (-pi, pi].
func (r Rotation) RPY() RPY {
	x, y, z, w := r.q.V.X(), r.q.V.Y(), r.q.V.Z(), r.q.W

	sinrCosp := 2 * (w*x + y*z)
	cosrCosp := 1 - 2*(x*x+y*y)
	roll := math.Atan2(sinrCosp, cosrCosp)

	var pitch float64
	sinp := 2 * (w*y - z*x)
	if math.Abs(sinp) >= 1-defaultAngleEpsilon {
		pitch = math.Copysign(math.Pi/2, sinp)
	} else {
		pitch = math.Asin(sinp)
	}

	sinyCosp := 2 * (w*z + x*y)
	cosyCosp := 1 - 2*(y*y+z*z)
	yaw := math.Atan2(sinyCosp, cosyCosp)

	return RPY{Roll: roll, Pitch: pitch, Yaw: yaw}
}

// ToRPY is an alias for RPY, matching the spec's to_*/as_* naming.
func (r Rotation) ToRPY() RPY { return r.RPY() }

// ToQuaternion is an alias for Quaternion, matching the spec's to_*/as_*
// naming.
func (r Rotation) ToQuaternion() Quaternion { return r.Quaternion() }

// compose returns r∘other: the rotation that applies other first, then r,
// matching (t1,R1)∘(t2,R2) = (..., R1∘R2) from the isometry algebra.
func (r Rotation) compose(other Rotation) Rotation {
	return Rotation{q: r.q.Mul(other.q).Normalize()}
}

// inverse returns the conjugate rotation.
func (r Rotation) inverse() Rotation {
	return Rotation{q: r.q.Inverse().Normalize()}
}

// rotate applies the rotation to a point.
func (r Rotation) rotate(v Vector3) Vector3 {
	rotated := r.q.Rotate(mgl64.Vec3{v.X, v.Y, v.Z})
	return Vector3{X: rotated.X(), Y: rotated.Y(), Z: rotated.Z()}
}

// OrientationAlmostEqual reports whether two orientations represent the same
// rotation within epsilon (on the quaternion form, accepting either sign).
func OrientationAlmostEqual(a, b Orientation, epsilon float64) bool {
	return QuaternionAlmostEqual(a.Quaternion(), b.Quaternion(), epsilon)
}

func quaternionFromMgl(q mgl64.Quat) Quaternion {
	return Quaternion{X: q.V.X(), Y: q.V.Y(), Z: q.V.Z(), W: q.W}
}
