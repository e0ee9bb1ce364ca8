package spatialmath

// Pose is a rigid transformation T = (t, R) with t a Vector3 and R a
// Rotation, acting on a point p as T*p = R*p + t. This is the isometry type
// of the spec's math kernel; frametree.Pose (a rigid transformation anchored
// in a specific frame) is built on top of it, the same way
// referenceframe.PoseInFrame pairs a spatialmath.Pose with a frame name in
// the teacher.
type Pose struct {
	point       Vector3
	orientation Rotation
}

// NewZeroPose returns the identity transformation.
func NewZeroPose() Pose {
	return Pose{point: Vector3{}, orientation: IdentityRotation()}
}

// Identity is an alias for NewZeroPose, matching the spec's naming.
func Identity() Pose { return NewZeroPose() }

// NewPoseFromPoint builds a pose with the given translation and no
// rotation.
func NewPoseFromPoint(p Vector3) Pose {
	return Pose{point: p, orientation: IdentityRotation()}
}

// FromTranslation is an alias for NewPoseFromPoint, matching the spec's
// naming.
func FromTranslation(p Vector3) Pose { return NewPoseFromPoint(p) }

// NewPoseFromRotation builds a pose with the given rotation and no
// translation.
func NewPoseFromRotation(r Rotation) Pose {
	return Pose{orientation: r}
}

// FromRotation is an alias for NewPoseFromRotation, matching the spec's
// naming.
func FromRotation(r Rotation) Pose { return NewPoseFromRotation(r) }

// NewPoseFromOrientation builds a pose from a point and an arbitrary
// Orientation implementation, matching the teacher's
// spatialmath.NewPoseFromOrientation(point, orientation) signature.
func NewPoseFromOrientation(p Vector3, o Orientation) Pose {
	r, _ := NewRotationFromQuaternion(o.Quaternion())
	return Pose{point: p, orientation: r}
}

// NewPoseFromParts builds a pose from a translation and a rotation.
func NewPoseFromParts(p Vector3, r Rotation) Pose {
	return Pose{point: p, orientation: r}
}

// FromParts is an alias for NewPoseFromParts, matching the spec's naming.
func FromParts(p Vector3, r Rotation) Pose { return NewPoseFromParts(p, r) }

// Point returns the pose's translation component.
func (p Pose) Point() Vector3 { return p.point }

// Orientation returns the pose's rotation component.
func (p Pose) Orientation() Orientation { return p.orientation }

// Decompose returns the translation and rotation components.
func (p Pose) Decompose() (Vector3, Rotation) {
	return p.point, p.orientation
}

// Compose returns a∘b: the isometry (t1 + R1*t2, R1*R2) that applies b
// first, then a.
func Compose(a, b Pose) Pose {
	return Pose{
		point:       a.point.Add(a.orientation.rotate(b.point)),
		orientation: a.orientation.compose(b.orientation),
	}
}

// PoseInverse returns the inverse isometry: (-R^-1*t, R^-1).
func PoseInverse(p Pose) Pose {
	invR := p.orientation.inverse()
	return Pose{
		point:       invR.rotate(p.point).Mul(-1),
		orientation: invR,
	}
}

// Transform applies the pose to a point: T*p = R*p + t.
func (p Pose) Transform(v Vector3) Vector3 {
	return p.orientation.rotate(v).Add(p.point)
}

// PoseAlmostEqual reports whether two poses are equal within epsilon on
// translation and (quaternion-form, either-sign) rotation.
func PoseAlmostEqual(a, b Pose, epsilon float64) bool {
	return R3VectorAlmostEqual(a.point, b.point, epsilon) &&
		OrientationAlmostEqual(a.orientation, b.orientation, epsilon)
}
