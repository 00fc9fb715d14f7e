package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/altinukshini/rgview/internal/ui"
)

func RenderStatusBar(status string, severity ui.Severity, hints string, width int) string {
	left := ui.SeverityStyle(severity).Render("  " + status)

	help := lipgloss.NewStyle().Foreground(ui.ColorMuted).
		Render(hints + " ")

	gap := width - lipgloss.Width(left) - lipgloss.Width(help)
	if gap < 0 {
		gap = 0
	}
	padding := lipgloss.NewStyle().Width(gap).Render("")

	return lipgloss.NewStyle().
		Background(lipgloss.Color("#111827")).
		Width(width).
		Render(left + padding + help)
}
