package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitHighlight(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		keyword string
		want    []Segment
	}{
		{
			name:    "two occurrences",
			text:    "the cat sat",
			keyword: "at",
			want: []Segment{
				{Text: "the c"},
				{Text: "at", Keyword: true},
				{Text: " s"},
				{Text: "at", Keyword: true},
			},
		},
		{
			name:    "absent keyword",
			text:    "hello world",
			keyword: "xyz",
			want:    []Segment{{Text: "hello world"}},
		},
		{
			name:    "empty keyword",
			text:    "hello",
			keyword: "",
			want:    []Segment{{Text: "hello"}},
		},
		{
			name:    "whole text",
			text:    "init",
			keyword: "init",
			want:    []Segment{{Text: "init", Keyword: true}},
		},
		{
			name:    "adjacent occurrences",
			text:    "abab!",
			keyword: "ab",
			want: []Segment{
				{Text: "ab", Keyword: true},
				{Text: "ab", Keyword: true},
				{Text: "!"},
			},
		},
		{
			name:    "overlap is not matched twice",
			text:    "aaa",
			keyword: "aa",
			want: []Segment{
				{Text: "aa", Keyword: true},
				{Text: "a"},
			},
		},
		{
			name:    "regex metacharacters are literal",
			text:    "x.*y and x.*y",
			keyword: ".*",
			want: []Segment{
				{Text: "x"},
				{Text: ".*", Keyword: true},
				{Text: "y and x"},
				{Text: ".*", Keyword: true},
				{Text: "y"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitHighlight(tt.text, tt.keyword)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.text, Join(got))
		})
	}
}
