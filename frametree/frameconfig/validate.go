package frameconfig

import (
	"fmt"
	"math"

	"go.uber.org/multierr"
)

// Validate checks that a parsed document satisfies the serializer's
// required-fields contract (every node is named, every numeric component is
// finite). All violations across the whole document are collected via
// multierr, matching the aggregation style of referenceframe's
// baseFrame.validInputs, and returned together as a single
// ConfigMismatchError: a required-fields failure aborts the whole apply, it
// is not a per-node skip.
func Validate(cfg *FrameConfig) error {
	var errAll error
	validateNode(cfg, "root", &errAll)
	if errAll != nil {
		return &ConfigMismatchError{reason: "missing or invalid required fields", cause: errAll}
	}
	return nil
}

func validateNode(cfg *FrameConfig, path string, errAll *error) {
	if cfg == nil {
		multierr.AppendInto(errAll, fmt.Errorf("%s: node is nil", path))
		return
	}
	if cfg.Name == "" {
		multierr.AppendInto(errAll, fmt.Errorf("%s: missing required field name", path))
	}
	for field, v := range map[string]float64{
		"translation.x": cfg.Translation.X, "translation.y": cfg.Translation.Y, "translation.z": cfg.Translation.Z,
		"rotation.x": cfg.Rotation.X, "rotation.y": cfg.Rotation.Y, "rotation.z": cfg.Rotation.Z, "rotation.w": cfg.Rotation.W,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			multierr.AppendInto(errAll, fmt.Errorf("%s.%s: %s is not finite", path, cfg.Name, field))
		}
	}
	for i, child := range cfg.Children {
		validateNode(child, fmt.Sprintf("%s.children[%d]", path, i), errAll)
	}
}
