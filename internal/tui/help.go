package tui

import (
	"github.com/charmbracelet/glamour"
)

const helpMarkdown = `# rgview

## Search form

| Key | Action |
|-----|--------|
| tab / shift+tab | Move between root, keyword and results |
| enter | Run the search |
| ctrl+o | Browse for a source root (. picks the shown directory) |
| esc | Back to results |

## Results

| Key | Action |
|-----|--------|
| j / k | Move down / up |
| g / G | First / last row |
| space | Fold or unfold a file |
| l / h | Unfold / fold a file |
| enter | Open in editor (at the line for a match) |
| p | Preview the file |
| / | New search |
| q | Quit |

## Preview

| Key | Action |
|-----|--------|
| / | Search in file |
| n / N | Next / previous match |
| g / G | Top / bottom |
| enter | Open in editor at the previewed line |
| esc | Back to results |

Press any key to close.
`

func renderHelp(width int) string {
	if width < 20 {
		width = 20
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width-2),
	)
	if err != nil {
		return helpMarkdown
	}
	out, err := r.Render(helpMarkdown)
	if err != nil {
		return helpMarkdown
	}
	return out
}
