package model

// MatchLine is a single matching line reported by the search tool.
type MatchLine struct {
	LineNumber int
	Text       string
}

// FileMatches holds the matches of one file in the order they were reported.
type FileMatches struct {
	Path  string
	Lines []MatchLine
}

type SearchQuery struct {
	Root    string
	Keyword string
	Globs   []string
}

// SearchResult maps file paths to their matches, iterating in the order each
// path was first seen in the search output.
type SearchResult struct {
	Root    string
	Keyword string
	Skipped int // malformed output lines that were dropped

	files []*FileMatches
	index map[string]int
}

func NewSearchResult(root, keyword string) *SearchResult {
	return &SearchResult{
		Root:    root,
		Keyword: keyword,
		index:   make(map[string]int),
	}
}

// Add appends line to the entry for path, creating the entry on first use.
func (r *SearchResult) Add(path string, line MatchLine) {
	if r.index == nil {
		r.index = make(map[string]int)
	}
	i, ok := r.index[path]
	if !ok {
		i = len(r.files)
		r.index[path] = i
		r.files = append(r.files, &FileMatches{Path: path})
	}
	r.files[i].Lines = append(r.files[i].Lines, line)
}

func (r *SearchResult) Lookup(path string) (*FileMatches, bool) {
	if r == nil {
		return nil, false
	}
	i, ok := r.index[path]
	if !ok {
		return nil, false
	}
	return r.files[i], true
}

// Files returns the entries in first-seen order.
func (r *SearchResult) Files() []*FileMatches {
	if r == nil {
		return nil
	}
	return r.files
}

func (r *SearchResult) Len() int {
	if r == nil {
		return 0
	}
	return len(r.files)
}

func (r *SearchResult) TotalMatches() int {
	if r == nil {
		return 0
	}
	n := 0
	for _, f := range r.files {
		n += len(f.Lines)
	}
	return n
}
