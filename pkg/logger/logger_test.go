package logger

import (
	"os"
	"testing"

	"truth_buddy_backend/internal/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// InitLogger is also the config-watcher reload hook, so re-running it must
// pick up a changed server.mode.
func TestInitLoggerFollowsServerMode(t *testing.T) {
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(wd) })
	t.Cleanup(func() { Log = zap.NewNop() })

	InitLogger(&config.Config{Server: config.ServerConfig{Mode: "debug"}})
	if !Log.Core().Enabled(zapcore.DebugLevel) {
		t.Fatal("debug mode did not enable debug-level logging")
	}

	InitLogger(&config.Config{Server: config.ServerConfig{Mode: "release"}})
	if Log.Core().Enabled(zapcore.DebugLevel) {
		t.Fatal("release mode still logs at debug level")
	}
	if !Log.Core().Enabled(zapcore.InfoLevel) {
		t.Fatal("release mode must keep info-level logging")
	}
}
