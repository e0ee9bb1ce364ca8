package frametree

import "github.com/kn0g/frametree/spatialmath"

// poseNode is the arena-owned storage for a pose attached to a frame. A
// pose keeps its frame alive through the arena the same way a frame keeps
// its ancestors alive: the node holds a plain (non-owning, but reachable
// through the arena) pointer to the frameNode it is anchored in.
type poseNode struct {
	frame     *frameNode
	transform spatialmath.Pose
}

// Pose is a shared handle onto a pose anchored in a specific frame,
// grounded in the teacher's referenceframe.PoseInFrame pairing of a
// spatialmath.Pose with a named frame.
type Pose struct {
	t    *tree
	node *poseNode
}

func newPoseHandle(t *tree, n *poseNode) *Pose {
	return &Pose{t: t, node: n}
}

// Transformation returns the pose's isometry, decomposed into translation
// and rotation.
func (p *Pose) Transformation() (spatialmath.Vector3, spatialmath.Rotation) {
	p.t.mu.RLock()
	defer p.t.mu.RUnlock()
	return p.node.transform.Decompose()
}

// Set replaces the pose's transformation.
func (p *Pose) Set(translation spatialmath.Vector3, rotation spatialmath.Rotation) {
	p.t.mu.Lock()
	defer p.t.mu.Unlock()
	p.node.transform = spatialmath.NewPoseFromParts(translation, rotation)
}

// Frame returns the frame the pose is anchored in.
func (p *Pose) Frame() *Frame {
	p.t.mu.RLock()
	defer p.t.mu.RUnlock()
	return newFrameHandle(p.t, p.node.frame)
}

// ApplyInParentFrame replaces transformation with iso∘transformation.
// "Parent frame" here means the frame the pose is in (the anchoring
// frame), matching Frame's naming.
func (p *Pose) ApplyInParentFrame(iso spatialmath.Pose) {
	p.t.mu.Lock()
	defer p.t.mu.Unlock()
	p.node.transform = spatialmath.Compose(iso, p.node.transform)
}

// ApplyInLocalFrame replaces transformation with transformation∘iso.
func (p *Pose) ApplyInLocalFrame(iso spatialmath.Pose) {
	p.t.mu.Lock()
	defer p.t.mu.Unlock()
	p.node.transform = spatialmath.Compose(p.node.transform, iso)
}

// InFrame returns a new Pose anchored in target, whose transformation
// equals this pose's transformation re-expressed in target's coordinates:
// letting C be the change-of-basis isometry from p.Frame() to target, the
// returned pose has transformation = C∘p.transformation and frame =
// target.
func (p *Pose) InFrame(target *Frame) (*Pose, error) {
	p.t.mu.RLock()
	defer p.t.mu.RUnlock()

	if rootOf(p.node.frame) != rootOf(target.node) {
		return nil, ErrDifferentTrees
	}

	c := changeOfBasis(p.node.frame, target.node)
	return &Pose{
		t: p.t,
		node: &poseNode{
			frame:     target.node,
			transform: spatialmath.Compose(c, p.node.transform),
		},
	}, nil
}
