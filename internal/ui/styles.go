package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/altinukshini/rgview/internal/search"
)

var (
	ColorPrimary   = lipgloss.Color("#7C3AED")
	ColorSuccess   = lipgloss.Color("#10B981")
	ColorFailure   = lipgloss.Color("#EF4444")
	ColorWarning   = lipgloss.Color("#F59E0B")
	ColorInfo      = lipgloss.Color("#3B82F6")
	ColorMuted     = lipgloss.Color("#6B7280")
	ColorBorder    = lipgloss.Color("#374151")
	ColorHighlight = lipgloss.Color("#1F2937")

	StylePane = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder)

	StylePaneFocused = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorPrimary)

	StyleHeader = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#F9FAFB")).
			Background(ColorPrimary).
			Padding(0, 1)

	StyleSuccess = lipgloss.NewStyle().Foreground(ColorSuccess)
	StyleFailure = lipgloss.NewStyle().Foreground(ColorFailure)
	StyleWarning = lipgloss.NewStyle().Foreground(ColorWarning)
	StyleInfo    = lipgloss.NewStyle().Foreground(ColorInfo)
	StyleMuted   = lipgloss.NewStyle().Foreground(ColorMuted)
	StyleFile    = lipgloss.NewStyle().Bold(true).Foreground(ColorInfo)

	StyleSelected = lipgloss.NewStyle().Background(ColorHighlight)

	// StyleMatch paints keyword occurrences inside result lines.
	StyleMatch = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorFailure)
)

// Highlight renders text with every keyword occurrence painted in StyleMatch.
func Highlight(text, keyword string) string {
	var b strings.Builder
	for _, seg := range search.SplitHighlight(text, keyword) {
		if seg.Keyword {
			b.WriteString(StyleMatch.Render(seg.Text))
		} else {
			b.WriteString(seg.Text)
		}
	}
	return b.String()
}

// HighlightOn is Highlight over a base style, for lines that are already
// styled as a whole. Keyword segments keep the base background.
func HighlightOn(text, keyword string, base lipgloss.Style) string {
	match := StyleMatch.Inherit(base)
	var b strings.Builder
	for _, seg := range search.SplitHighlight(text, keyword) {
		if seg.Keyword {
			b.WriteString(match.Render(seg.Text))
		} else {
			b.WriteString(base.Render(seg.Text))
		}
	}
	return b.String()
}

// Severity styles for status messages.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarn
	SeverityError
)

func SeverityStyle(s Severity) lipgloss.Style {
	switch s {
	case SeverityWarn:
		return StyleWarning
	case SeverityError:
		return StyleFailure
	default:
		return StyleMuted
	}
}
