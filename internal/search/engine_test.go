package search

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/altinukshini/rgview/internal/model"
)

type fakeSearcher struct {
	output string
	err    error
	calls  []model.SearchQuery
}

func (f *fakeSearcher) Search(ctx context.Context, query model.SearchQuery) (string, error) {
	f.calls = append(f.calls, query)
	return f.output, f.err
}

func TestEngineRun(t *testing.T) {
	root := t.TempDir()
	fake := &fakeSearcher{output: "a.c:3:foo\nb.h:5:bar\n"}
	engine := New(fake, nil, nil)

	result, err := engine.Run(context.Background(), engine.Query("  "+root+"  ", " foo "))
	require.NoError(t, err)

	require.Len(t, fake.calls, 1)
	assert.Equal(t, root, fake.calls[0].Root)
	assert.Equal(t, "foo", fake.calls[0].Keyword)
	assert.Equal(t, DefaultGlobs, fake.calls[0].Globs)

	assert.Equal(t, "foo", result.Keyword)
	assert.Equal(t, root, result.Root)
	assert.Equal(t, 2, result.Len())
	_, ok := result.Lookup(filepath.Join(root, "b.h"))
	assert.True(t, ok)
}

func TestEngineRunMissingInput(t *testing.T) {
	tests := []struct {
		name    string
		root    string
		keyword string
	}{
		{name: "empty keyword", root: "/tmp", keyword: ""},
		{name: "blank keyword", root: "/tmp", keyword: "   "},
		{name: "empty root", root: "", keyword: "foo"},
		{name: "both empty", root: "", keyword: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeSearcher{}
			engine := New(fake, nil, nil)

			result, err := engine.Run(context.Background(), engine.Query(tt.root, tt.keyword))
			assert.Nil(t, result)
			assert.ErrorIs(t, err, ErrMissingInput)
			assert.Empty(t, fake.calls, "searcher must not run without input")
		})
	}
}

func TestEngineRunRootNotDir(t *testing.T) {
	fake := &fakeSearcher{}
	engine := New(fake, nil, nil)

	_, err := engine.Run(context.Background(), engine.Query(filepath.Join(t.TempDir(), "missing"), "foo"))
	assert.ErrorIs(t, err, ErrRootNotDir)
	assert.Empty(t, fake.calls)
}

func TestEngineRunPropagatesSearcherErrors(t *testing.T) {
	toolErr := &ToolError{Command: "rg", ExitCode: 2, Output: "rg: bad glob"}
	tests := []struct {
		name string
		err  error
	}{
		{name: "tool failure", err: toolErr},
		{name: "tool missing", err: ErrToolNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := New(&fakeSearcher{err: tt.err}, nil, nil)

			result, err := engine.Run(context.Background(), engine.Query(t.TempDir(), "foo"))
			assert.Nil(t, result)
			assert.True(t, errors.Is(err, tt.err))
		})
	}
}

func TestEngineRunCustomGlobs(t *testing.T) {
	fake := &fakeSearcher{}
	engine := New(fake, []string{"*.go"}, nil)

	result, err := engine.Run(context.Background(), engine.Query(t.TempDir(), "func"))
	require.NoError(t, err)
	assert.Zero(t, result.Len())
	assert.Equal(t, []string{"*.go"}, fake.calls[0].Globs)
}

func TestEngineRelativeRootBecomesAbsolute(t *testing.T) {
	t.Chdir(t.TempDir())
	require.NoError(t, os.Mkdir("src", 0o755))
	wd, err := os.Getwd()
	require.NoError(t, err)
	want := filepath.Join(wd, "src")

	fake := &fakeSearcher{output: "a.c:1:x\n"}
	engine := New(fake, nil, nil)

	query := engine.Query(" src ", "x")
	assert.Equal(t, want, query.Root)

	for _, q := range []model.SearchQuery{query, {Root: "src", Keyword: "x"}} {
		result, err := engine.Run(context.Background(), q)
		require.NoError(t, err)
		assert.Equal(t, want, result.Root)
		_, ok := result.Lookup(filepath.Join(want, "a.c"))
		assert.True(t, ok, "match paths are joined under the absolute root")
	}
	assert.Equal(t, want, fake.calls[1].Root)
}
