package main

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// newLogger builds a JSON file logger. The terminal belongs to the TUI, so
// nothing is written to stdout or stderr.
func newLogger(cfg cliConfig) (*zap.Logger, error) {
	level, err := zap.ParseAtomicLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log-level %q: %w", cfg.LogLevel, err)
	}

	if err := os.MkdirAll(filepath.Dir(cfg.LogPath), 0755); err != nil {
		return nil, fmt.Errorf("creating log directory: %w", err)
	}

	zc := zap.NewProductionConfig()
	zc.Level = level
	zc.OutputPaths = []string{cfg.LogPath}
	zc.ErrorOutputPaths = []string{cfg.LogPath}

	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}
