package frametree

import "github.com/pkg/errors"

// ErrDifferentTrees is the LogicError raised when a change-of-basis is
// requested between two frames that do not share a root. The public API
// never triggers this on its own (every Frame/Pose method derives both
// sides of a change-of-basis from handles obtained from the same tree), but
// it guards against misuse such as mixing handles across two independently
// constructed root frames.
var ErrDifferentTrees = errors.New("frames do not share a root: change of basis is undefined across trees")
