package frametree

import (
	"github.com/kn0g/frametree/frametree/frameconfig"
	"github.com/kn0g/frametree/spatialmath"
)

// ToJSON performs a pre-order traversal and emits a JSON document rooted at
// f, mirroring the tree by name and carrying each frame's
// transformation_to_parent.
func (f *Frame) ToJSON() ([]byte, error) {
	f.t.mu.RLock()
	defer f.t.mu.RUnlock()
	return encodeNode(f.node).Marshal()
}

func encodeNode(n *frameNode) *frameconfig.FrameConfig {
	translation, rotation := n.transform.Decompose()
	q := rotation.ToQuaternion()

	cfg := &frameconfig.FrameConfig{
		Name:        n.name,
		Translation: frameconfig.Translation{X: translation.X, Y: translation.Y, Z: translation.Z},
		Rotation:    frameconfig.Rotation{X: q.X, Y: q.Y, Z: q.Z, W: q.W},
	}
	for _, child := range n.children {
		cfg.Children = append(cfg.Children, encodeNode(child))
	}
	for _, p := range n.poses {
		pt, pr := p.transform.Decompose()
		pq := pr.ToQuaternion()
		cfg.Poses = append(cfg.Poses, frameconfig.PoseConfig{
			Translation: frameconfig.Translation{X: pt.X, Y: pt.Y, Z: pt.Z},
			Rotation:    frameconfig.Rotation{X: pq.X, Y: pq.Y, Z: pq.Z, W: pq.W},
		})
	}
	return cfg
}

// ApplyConfig parses a JSON document and updates transformations in place
// by name matching. The document root must match f by name (otherwise
// ConfigMismatchError). For every node in the document, the corresponding
// tree node is found by following child names from f; a document subtree
// naming a child that does not exist in the tree is silently ignored - no
// topology is created. Extra tree children not mentioned in the document
// are left unchanged. The root's own transformation_to_parent is never
// touched: this is a calibration update, not a tree builder.
func (f *Frame) ApplyConfig(data []byte) error {
	cfg, err := frameconfig.Unmarshal(data)
	if err != nil {
		return err
	}
	if err := frameconfig.Validate(cfg); err != nil {
		return err
	}

	f.t.mu.Lock()
	defer f.t.mu.Unlock()

	if cfg.Name != f.node.name {
		return frameconfig.NewRootNameMismatchError(f.node.name, cfg.Name)
	}
	for _, childCfg := range cfg.Children {
		applyChildConfig(f.node, childCfg)
	}
	return nil
}

func applyChildConfig(parent *frameNode, cfg *frameconfig.FrameConfig) {
	child, ok := parent.childByName[cfg.Name]
	if !ok {
		return
	}

	translation := spatialmath.Vector3{X: cfg.Translation.X, Y: cfg.Translation.Y, Z: cfg.Translation.Z}
	q := spatialmath.Quaternion{X: cfg.Rotation.X, Y: cfg.Rotation.Y, Z: cfg.Rotation.Z, W: cfg.Rotation.W}
	if rotation, err := spatialmath.NewRotationFromQuaternion(q); err == nil {
		child.transform = spatialmath.NewPoseFromParts(translation, rotation)
	}

	for _, grandchildCfg := range cfg.Children {
		applyChildConfig(child, grandchildCfg)
	}
}
