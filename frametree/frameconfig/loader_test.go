package frameconfig

import (
	"testing"

	"github.com/edaniels/golog"
	"go.viam.com/test"
)

func TestLoadFileParsesAndValidatesFixture(t *testing.T) {
	logger := golog.NewTestLogger(t)

	cfg, err := LoadFile("testdata/world.json", logger)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, cfg.Name, test.ShouldEqual, "world")
	test.That(t, len(cfg.Children), test.ShouldEqual, 1)
	test.That(t, cfg.Children[0].Name, test.ShouldEqual, "robot")
	test.That(t, cfg.Children[0].Children[0].Name, test.ShouldEqual, "arm")
}

func TestLoadFileMissingFileReturnsError(t *testing.T) {
	logger := golog.NewTestLogger(t)

	_, err := LoadFile("testdata/does-not-exist.json", logger)
	test.That(t, err, test.ShouldNotBeNil)
}
