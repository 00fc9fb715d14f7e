package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// OpenLogger builds the application logger. The terminal belongs to the TUI,
// so records always go to a file.
func (c Config) OpenLogger(debug bool) (*slog.Logger, io.Closer, error) {
	path := c.Log.File
	if path == "" {
		var err error
		if path, err = DefaultLogFile(); err != nil {
			return nil, nil, err
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY|os.O_CREATE, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	level, err := ParseLevel(c.Log.Level)
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	if debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level}))
	return logger, f, nil
}
