package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchResultKeepsFirstSeenOrder(t *testing.T) {
	r := NewSearchResult("/src", "foo")
	r.Add("/src/b.c", MatchLine{LineNumber: 3, Text: "foo()"})
	r.Add("/src/a.c", MatchLine{LineNumber: 1, Text: "foo"})
	r.Add("/src/b.c", MatchLine{LineNumber: 9, Text: "return foo;"})

	files := r.Files()
	require.Len(t, files, 2)
	assert.Equal(t, "/src/b.c", files[0].Path)
	assert.Equal(t, "/src/a.c", files[1].Path)
	assert.Equal(t, []MatchLine{{3, "foo()"}, {9, "return foo;"}}, files[0].Lines)
	assert.Equal(t, 2, r.Len())
	assert.Equal(t, 3, r.TotalMatches())

	fm, ok := r.Lookup("/src/a.c")
	require.True(t, ok)
	assert.Len(t, fm.Lines, 1)

	_, ok = r.Lookup("/src/c.c")
	assert.False(t, ok)
}

func TestNilSearchResult(t *testing.T) {
	var r *SearchResult
	assert.Zero(t, r.Len())
	assert.Zero(t, r.TotalMatches())
	assert.Nil(t, r.Files())
	_, ok := r.Lookup("x")
	assert.False(t, ok)
}

func TestZeroValueAdd(t *testing.T) {
	var r SearchResult
	r.Add("/x.c", MatchLine{LineNumber: 1, Text: "x"})
	assert.Equal(t, 1, r.Len())
}
