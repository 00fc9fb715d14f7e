package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/altinukshini/rgview/internal/model"
	"github.com/altinukshini/rgview/internal/ui"
)

func RenderHeader(root string, result *model.SearchResult, searching bool, width int) string {
	title := " rgview"
	if root != "" {
		title += " | " + root
	}
	left := lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.Color("#F9FAFB")).
		Render(title)

	right := ""
	switch {
	case searching:
		right = lipgloss.NewStyle().Foreground(ui.ColorWarning).Render("searching... ")
	case result != nil:
		color := ui.ColorSuccess
		if result.TotalMatches() == 0 {
			color = ui.ColorMuted
		}
		right = lipgloss.NewStyle().Foreground(color).
			Render(fmt.Sprintf("%d matches / %d files ", result.TotalMatches(), result.Len()))
	}

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}
	padding := lipgloss.NewStyle().Width(gap).Render("")

	return lipgloss.NewStyle().
		Background(lipgloss.Color("#1F2937")).
		Width(width).
		Render(left + padding + right)
}
