package editor

import (
	"errors"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigArgv(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, []string{"code", "/src/a b.c"}, cfg.Argv("/src/a b.c", 0))
	assert.Equal(t, []string{"code", "-g", "/src/a.c:42"}, cfg.Argv("/src/a.c", 42))

	vim := Config{File: []string{"vim", "{file}"}, FileLine: []string{"vim", "+{line}", "{file}"}}
	assert.Equal(t, []string{"vim", "+7", "x.h"}, vim.Argv("x.h", 7))
}

func TestConfigValidate(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())
	assert.Error(t, Config{FileLine: []string{"code"}}.Validate())
	assert.Error(t, Config{File: []string{"code"}, FileLine: []string{""}}.Validate())
}

func TestCommandOpenerStartsEditor(t *testing.T) {
	o := NewCommandOpener(DefaultConfig(), nil)
	o.lookPath = func(name string) (string, error) { return "/usr/bin/" + name, nil }
	var started *exec.Cmd
	o.start = func(cmd *exec.Cmd) error {
		started = cmd
		return nil
	}

	require.NoError(t, o.Open(`/src/"quoted".c`, 12))
	require.NotNil(t, started)
	assert.Equal(t, "/usr/bin/code", started.Path)
	assert.Equal(t, []string{"/usr/bin/code", "-g", `/src/"quoted".c:12`}, started.Args)
}

func TestCommandOpenerErrors(t *testing.T) {
	o := NewCommandOpener(DefaultConfig(), nil)
	o.lookPath = func(string) (string, error) { return "", errors.New("not found") }
	assert.Error(t, o.Open("/a.c", 0))

	o.lookPath = func(name string) (string, error) { return name, nil }
	o.start = func(*exec.Cmd) error { return errors.New("boom") }
	assert.ErrorContains(t, o.Open("/a.c", 0), "boom")
}

func TestParseTarget(t *testing.T) {
	tests := []struct {
		in   string
		path string
		line int
	}{
		{in: "/src/a.c:42", path: "/src/a.c", line: 42},
		{in: "/src/a.c", path: "/src/a.c", line: 0},
		{in: "/src/a.c:x", path: "/src/a.c:x", line: 0},
		{in: "/src/a.c:0", path: "/src/a.c:0", line: 0},
		{in: ":5", path: ":5", line: 0},
	}
	for _, tt := range tests {
		path, line := ParseTarget(tt.in)
		assert.Equal(t, tt.path, path, tt.in)
		assert.Equal(t, tt.line, line, tt.in)
	}
}
