package settings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Settings is the state remembered between runs.
type Settings struct {
	LastRootPath string `yaml:"last_root_path"`
}

// Store persists Settings as a YAML file.
type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// DefaultPath places the settings file next to the config file.
func DefaultPath(configDir string) string {
	return filepath.Join(configDir, "settings.yaml")
}

func (s *Store) Path() string {
	return s.path
}

// Load returns zero Settings when the file does not exist yet.
func (s *Store) Load() (Settings, error) {
	var st Settings
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return st, nil
	}
	if err != nil {
		return st, fmt.Errorf("read settings: %w", err)
	}
	if err := yaml.Unmarshal(data, &st); err != nil {
		return st, fmt.Errorf("parse settings %s: %w", s.path, err)
	}
	return st, nil
}

// Save writes st through a temp file so a crash never leaves a partial file.
func (s *Store) Save(st Settings) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create settings dir: %w", err)
	}
	data, err := yaml.Marshal(st)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".settings-*.yaml")
	if err != nil {
		return fmt.Errorf("create temp settings: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write settings: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("write settings: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace settings: %w", err)
	}
	return nil
}

func (s *Store) LastRoot() (string, error) {
	st, err := s.Load()
	return st.LastRootPath, err
}

// SetLastRoot updates only the remembered root path.
func (s *Store) SetLastRoot(path string) error {
	st, err := s.Load()
	if err != nil {
		return err
	}
	st.LastRootPath = path
	return s.Save(st)
}
