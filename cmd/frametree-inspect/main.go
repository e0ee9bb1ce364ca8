// Command frametree-inspect loads a frame-tree JSON config and prints it as
// a table, grounded on referenceframe.WorldState.String()'s use of
// go-pretty/v6/table for human-readable inspection output.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/edaniels/golog"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/kn0g/frametree/frametree"
	"github.com/kn0g/frametree/frametree/frameconfig"
	"github.com/kn0g/frametree/spatialmath"
)

func main() {
	path := flag.String("config", "", "path to a frame tree JSON config")
	flag.Parse()

	if *path == "" {
		fmt.Fprintln(os.Stderr, "usage: frametree-inspect -config path/to/tree.json")
		os.Exit(1)
	}

	logger := golog.NewLogger("frametree-inspect")

	cfg, err := frameconfig.LoadFile(*path, logger)
	if err != nil {
		logger.Errorw("failed to load config", "error", err)
		os.Exit(1)
	}

	root := buildTree(cfg)
	fmt.Println(render(root))
}

func buildTree(cfg *frameconfig.FrameConfig) *frametree.Frame {
	root := frametree.NewFrame(cfg.Name)
	for _, child := range cfg.Children {
		addChild(root, child)
	}
	return root
}

func addChild(parent *frametree.Frame, cfg *frameconfig.FrameConfig) {
	translation := spatialmath.Vector3{X: cfg.Translation.X, Y: cfg.Translation.Y, Z: cfg.Translation.Z}
	q := spatialmath.Quaternion{X: cfg.Rotation.X, Y: cfg.Rotation.Y, Z: cfg.Rotation.Z, W: cfg.Rotation.W}
	rotation, err := spatialmath.NewRotationFromQuaternion(q)
	if err != nil {
		rotation = spatialmath.IdentityRotation()
	}

	child := parent.AddChild(cfg.Name, translation, rotation)
	for _, grandchild := range cfg.Children {
		addChild(child, grandchild)
	}
}

func render(root *frametree.Frame) string {
	t := table.NewWriter()
	t.AppendHeader(table.Row{"Name", "Depth", "Parent", "Translation", "RPY"})
	appendRows(t, root)
	return t.Render()
}

func appendRows(t table.Writer, f *frametree.Frame) {
	parentName := ""
	if parent, ok := f.Parent(); ok {
		parentName = parent.Name()
	}

	translation, rotation := f.TransformationToParent()
	rpy := rotation.RPY()
	t.AppendRow([]interface{}{
		f.Name(),
		f.Depth(),
		parentName,
		fmt.Sprintf("(%.3f, %.3f, %.3f)", translation.X, translation.Y, translation.Z),
		fmt.Sprintf("(%.3f, %.3f, %.3f)", rpy.Roll, rpy.Pitch, rpy.Yaw),
	})

	for _, child := range f.Children() {
		appendRows(t, child)
	}
}
