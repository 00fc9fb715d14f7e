package ui

import (
	"github.com/altinukshini/rgview/internal/model"
)

// SearchDoneMsg carries the outcome of one search run.
type SearchDoneMsg struct {
	Query  model.SearchQuery
	Result *model.SearchResult
	Err    error
}

// OpenFileMsg asks the app to hand a file to the editor. Line 0 opens the
// file without positioning.
type OpenFileMsg struct {
	Path string
	Line int
}

type EditorStartedMsg struct {
	Path string
	Line int
	Err  error
}

type PreviewLoadedMsg struct {
	Path    string
	Line    int
	Content string
	Err     error
}

type RootChosenMsg struct {
	Path string
}

type StatusMsg struct {
	Text string
}

// PreviewFileMsg asks the app to show a file in the preview pane.
type PreviewFileMsg struct {
	Path string
	Line int
}
