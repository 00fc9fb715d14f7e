package search

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/altinukshini/rgview/internal/model"
)

// fakeTool writes a shell script standing in for ripgrep and returns a
// searcher that resolves to it.
func fakeTool(t *testing.T, script string) *RipgrepSearcher {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell scripts are not executable on windows")
	}
	path := filepath.Join(t.TempDir(), "rg")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+script), 0o755))

	s := NewRipgrepSearcher("rg", nil)
	s.lookPath = func(string) (string, error) { return path, nil }
	return s
}

func TestRipgrepArgs(t *testing.T) {
	s := NewRipgrepSearcher("", []string{"--max-columns=300"})

	got := s.Args(model.SearchQuery{Keyword: "-foo", Globs: DefaultGlobs})

	assert.Equal(t, "rg", s.Command)
	assert.Equal(t, []string{
		"--no-ignore", "--color=never", "--with-filename", "--line-number",
		"--no-heading", "--case-sensitive", "--fixed-strings",
		"--glob", "**/*.c", "--glob", "**/*.h",
		"--max-columns=300",
		"-e", "-foo",
	}, got)
}

func TestRipgrepSearchRunsInRoot(t *testing.T) {
	s := fakeTool(t, `echo "$(basename "$PWD"):1:$*"`)
	root := t.TempDir()

	out, err := s.Search(context.Background(), model.SearchQuery{Root: root, Keyword: "kw"})
	require.NoError(t, err)
	assert.Contains(t, out, filepath.Base(root)+":1:")
	assert.Contains(t, out, "-e kw")
}

func TestRipgrepSearchExitOneIsFailure(t *testing.T) {
	s := fakeTool(t, "exit 1\n")

	out, err := s.Search(context.Background(), model.SearchQuery{Root: t.TempDir(), Keyword: "kw"})
	assert.Empty(t, out)

	var toolErr *ToolError
	require.True(t, errors.As(err, &toolErr))
	assert.Equal(t, 1, toolErr.ExitCode)
	assert.Empty(t, toolErr.Output)
}

func TestEngineRunExitOneProducesNoResult(t *testing.T) {
	s := fakeTool(t, "exit 1\n")

	res, err := New(s, nil, nil).Run(context.Background(), model.SearchQuery{Root: t.TempDir(), Keyword: "kw"})
	assert.Nil(t, res)
	var toolErr *ToolError
	assert.True(t, errors.As(err, &toolErr))
}

func TestRipgrepSearchFailure(t *testing.T) {
	s := fakeTool(t, "echo partial\necho 'rg: regex parse error' >&2\nexit 2\n")

	_, err := s.Search(context.Background(), model.SearchQuery{Root: t.TempDir(), Keyword: "kw"})

	var toolErr *ToolError
	require.True(t, errors.As(err, &toolErr))
	assert.Equal(t, 2, toolErr.ExitCode)
	assert.Contains(t, toolErr.Output, "partial")
	assert.Contains(t, toolErr.Output, "regex parse error")
}

func TestRipgrepSearchToolNotFound(t *testing.T) {
	s := NewRipgrepSearcher("rg", nil)
	s.lookPath = func(string) (string, error) { return "", errors.New("not found") }

	_, err := s.Search(context.Background(), model.SearchQuery{Root: t.TempDir(), Keyword: "kw"})
	assert.ErrorIs(t, err, ErrToolNotFound)
}
