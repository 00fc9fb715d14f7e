package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/altinukshini/rgview/internal/editor"
	"github.com/altinukshini/rgview/internal/search"
)

const AppName = "rgview"

type Search struct {
	Command   string   `yaml:"command"`
	Globs     []string `yaml:"globs"`
	ExtraArgs []string `yaml:"extra_args"`
}

type Log struct {
	File  string `yaml:"file"`
	Level string `yaml:"level"`
}

type Config struct {
	Search Search        `yaml:"search"`
	Editor editor.Config `yaml:"editor"`
	Log    Log           `yaml:"log"`
}

func Default() Config {
	return Config{
		Search: Search{
			Command: "rg",
			Globs:   append([]string(nil), search.DefaultGlobs...),
		},
		Editor: editor.DefaultConfig(),
		Log:    Log{Level: "info"},
	}
}

// Dir is the per-user configuration directory for rgview.
func Dir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate config dir: %w", err)
	}
	return filepath.Join(base, AppName), nil
}

func DefaultPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// DefaultLogFile is used when log.file is unset.
func DefaultLogFile() (string, error) {
	base, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("locate cache dir: %w", err)
	}
	return filepath.Join(base, AppName, AppName+".log"), nil
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("unable to open config file: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("unable to parse config file %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if c.Search.Command == "" {
		return fmt.Errorf("search.command is required")
	}
	if len(c.Search.Globs) == 0 {
		return fmt.Errorf("search.globs must list at least one glob")
	}
	if err := c.Editor.Validate(); err != nil {
		return err
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		return err
	}
	return nil
}

func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
}
