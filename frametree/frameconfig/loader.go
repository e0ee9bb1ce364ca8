package frameconfig

import (
	"os"

	"github.com/edaniels/golog"
)

// LoadFile reads and parses a frame-tree configuration document from disk,
// logging the attempt the way the teacher's loaders take a golog.Logger for
// I/O-adjacent work while the pure value/tree types stay logger-free.
func LoadFile(path string, logger golog.Logger) (*FrameConfig, error) {
	logger.Debugw("loading frame tree config", "path", path)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg, err := Unmarshal(data)
	if err != nil {
		logger.Errorw("failed to parse frame tree config", "path", path, "error", err)
		return nil, err
	}
	if err := Validate(cfg); err != nil {
		logger.Errorw("frame tree config failed validation", "path", path, "error", err)
		return nil, err
	}
	return cfg, nil
}
