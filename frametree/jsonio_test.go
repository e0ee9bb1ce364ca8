package frametree

import (
	"math"
	"testing"

	"go.viam.com/test"

	"github.com/kn0g/frametree/spatialmath"
)

func buildSampleTree() *Frame {
	world := NewFrame("world")
	robot := world.AddChild("robot", spatialmath.Vector3{X: 1, Y: 2, Z: 0}, spatialmath.NewRotationFromRPY(spatialmath.RPY{Yaw: math.Pi / 4}))
	robot.AddChild("arm", spatialmath.Vector3{Z: 1.5}, spatialmath.IdentityRotation())
	robot.AddChild("sensor", spatialmath.Vector3{X: 0.2, Y: 0, Z: 0.3}, spatialmath.NewRotationFromRPY(spatialmath.RPY{Pitch: 0.1}))
	return world
}

func TestToJSONApplyConfigRoundTripsTransformations(t *testing.T) {
	original := buildSampleTree()
	data, err := original.ToJSON()
	test.That(t, err, test.ShouldBeNil)

	// Build a topologically identical tree with different transformations,
	// then apply the original's document: the calibrated transformations
	// should come back out matching the original.
	rebuilt := NewFrame("world")
	robot := rebuilt.AddChild("robot", spatialmath.Vector3{}, spatialmath.IdentityRotation())
	robot.AddChild("arm", spatialmath.Vector3{}, spatialmath.IdentityRotation())
	robot.AddChild("sensor", spatialmath.Vector3{}, spatialmath.IdentityRotation())

	test.That(t, rebuilt.ApplyConfig(data), test.ShouldBeNil)

	origChildren := original.Children()
	newChildren := rebuilt.Children()
	test.That(t, len(newChildren), test.ShouldEqual, len(origChildren))

	for i, origChild := range origChildren {
		wantT, wantR := origChild.TransformationToParent()
		gotT, gotR := newChildren[i].TransformationToParent()
		test.That(t, spatialmath.R3VectorAlmostEqual(gotT, wantT, 1e-9), test.ShouldBeTrue)
		test.That(t, spatialmath.OrientationAlmostEqual(gotR, wantR, 1e-9), test.ShouldBeTrue)
	}
}

func TestApplyConfigRejectsRootNameMismatch(t *testing.T) {
	tree := buildSampleTree()
	data, err := tree.ToJSON()
	test.That(t, err, test.ShouldBeNil)

	other := NewFrame("not-world")
	err = other.ApplyConfig(data)
	test.That(t, err, test.ShouldNotBeNil)
}

func TestApplyConfigSilentlySkipsUnknownChildren(t *testing.T) {
	tree := buildSampleTree()
	data, err := tree.ToJSON()
	test.That(t, err, test.ShouldBeNil)

	sparse := NewFrame("world")
	sparse.AddChild("robot", spatialmath.Vector3{X: 9, Y: 9, Z: 9}, spatialmath.IdentityRotation())
	// no arm/sensor children on this tree's robot - their document entries
	// should be skipped, not error, and robot's own transform still updates.

	test.That(t, sparse.ApplyConfig(data), test.ShouldBeNil)

	robot := sparse.Children()[0]
	gotT, _ := robot.TransformationToParent()
	test.That(t, spatialmath.R3VectorAlmostEqual(gotT, spatialmath.Vector3{X: 1, Y: 2, Z: 0}, 1e-9), test.ShouldBeTrue)
	test.That(t, len(robot.Children()), test.ShouldEqual, 0)
}

func TestApplyConfigMalformedJSONLeavesTreeUntouchedAndErrors(t *testing.T) {
	tree := buildSampleTree()
	err := tree.ApplyConfig([]byte(`{not json`))
	test.That(t, err, test.ShouldNotBeNil)

	gotT, _ := tree.Children()[0].TransformationToParent()
	test.That(t, spatialmath.R3VectorAlmostEqual(gotT, spatialmath.Vector3{X: 1, Y: 2, Z: 0}, 1e-9), test.ShouldBeTrue)
}
