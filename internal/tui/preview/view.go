package preview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/altinukshini/rgview/internal/ui"
)

// Model shows a source file with the jump line and keyword occurrences
// highlighted, plus a simple in-file search.
type Model struct {
	viewport viewport.Model
	content  string
	path     string
	keyword  string
	width    int
	height   int
	ready    bool

	searchInput textinput.Model
	searching   bool
	searchQuery string
	matchLines  []int // 0-based
	matchIndex  int

	jumpLine int // 0-based, -1 = none
}

func New() Model {
	ti := textinput.New()
	ti.Placeholder = "Search in file..."
	ti.CharLimit = 256
	return Model{searchInput: ti, jumpLine: -1}
}

// SetContent replaces the file shown. keyword is highlighted on every line.
func (m *Model) SetContent(path, content, keyword string) {
	m.path = path
	m.content = strings.ReplaceAll(content, "\t", "    ")
	m.keyword = keyword
	m.searchQuery = ""
	m.matchLines = nil
	m.matchIndex = 0
	m.jumpLine = -1
	if m.ready {
		m.viewport.SetContent(m.render())
		m.viewport.GotoTop()
	}
}

func (m Model) Path() string { return m.path }

// GotoLine scrolls to the 1-based line and marks it.
func (m *Model) GotoLine(line int) {
	if line < 1 {
		return
	}
	m.jumpLine = line - 1
	if !m.ready {
		return
	}
	m.viewport.SetContent(m.render())
	// Leave a few lines of context above the target.
	offset := m.jumpLine - m.viewport.Height/3
	if offset < 0 {
		offset = 0
	}
	m.viewport.SetYOffset(offset)
}

func (m Model) IsSearching() bool {
	return m.searching
}

func (m Model) MatchCount() int {
	return len(m.matchLines)
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.searching {
			switch msg.String() {
			case "enter":
				if q := m.searchInput.Value(); q != "" {
					m.searchQuery = q
					m.findMatches()
					m.viewport.SetContent(m.render())
					if len(m.matchLines) > 0 {
						m.matchIndex = 0
						m.viewport.SetYOffset(m.matchLines[0])
					}
				}
				m.searching = false
				m.searchInput.Blur()
				return m, nil
			case "esc":
				m.searching = false
				m.searchInput.Blur()
				return m, nil
			}
			var cmd tea.Cmd
			m.searchInput, cmd = m.searchInput.Update(msg)
			return m, cmd
		}

		switch msg.String() {
		case "/":
			m.searching = true
			m.searchInput.SetValue("")
			m.searchInput.Focus()
			return m, textinput.Blink
		case "n":
			if len(m.matchLines) > 0 {
				m.matchIndex = (m.matchIndex + 1) % len(m.matchLines)
				m.viewport.SetContent(m.render())
				m.viewport.SetYOffset(m.matchLines[m.matchIndex])
			}
			return m, nil
		case "N":
			if len(m.matchLines) > 0 {
				m.matchIndex = (m.matchIndex - 1 + len(m.matchLines)) % len(m.matchLines)
				m.viewport.SetContent(m.render())
				m.viewport.SetYOffset(m.matchLines[m.matchIndex])
			}
			return m, nil
		case "g":
			m.viewport.GotoTop()
			return m, nil
		case "G":
			m.viewport.GotoBottom()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		h := msg.Height - 2
		if h < 1 {
			h = 1
		}
		if !m.ready {
			m.viewport = viewport.New(msg.Width, h)
			m.ready = true
			if m.content != "" {
				m.viewport.SetContent(m.render())
			}
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = h
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *Model) findMatches() {
	m.matchLines = nil
	if m.searchQuery == "" || m.content == "" {
		return
	}
	query := strings.ToLower(m.searchQuery)
	for i, line := range strings.Split(m.content, "\n") {
		if strings.Contains(strings.ToLower(line), query) {
			m.matchLines = append(m.matchLines, i)
		}
	}
}

var currentLineStyle = lipgloss.NewStyle().Background(lipgloss.Color("#92400E")).Bold(true)

// render numbers every line and applies the highlights.
func (m Model) render() string {
	matchSet := make(map[int]bool, len(m.matchLines))
	for _, idx := range m.matchLines {
		matchSet[idx] = true
	}
	currentMatch := -1
	if m.matchIndex < len(m.matchLines) {
		currentMatch = m.matchLines[m.matchIndex]
	}

	highlight := lipgloss.NewStyle().Background(ui.ColorBorder)

	lines := strings.Split(m.content, "\n")
	width := len(fmt.Sprint(len(lines)))
	for i, line := range lines {
		gutter := ui.StyleMuted.Render(fmt.Sprintf("%*d ", width, i+1))
		switch {
		case i == currentMatch || i == m.jumpLine:
			lines[i] = gutter + ui.HighlightOn(line, m.keyword, currentLineStyle)
		case matchSet[i]:
			lines[i] = gutter + highlight.Render(line)
		default:
			lines[i] = gutter + ui.Highlight(line, m.keyword)
		}
	}
	return strings.Join(lines, "\n")
}

func (m Model) View() string {
	if m.content == "" && m.path == "" {
		return "\n  Select a match to preview"
	}

	header := fmt.Sprintf(" %s  %3.f%%", m.path, m.viewport.ScrollPercent()*100)
	if m.searchQuery != "" && len(m.matchLines) > 0 {
		header += fmt.Sprintf("  [%d/%d matches]", m.matchIndex+1, len(m.matchLines))
	} else if m.searchQuery != "" {
		header += "  [no matches]"
	}
	top := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F9FAFB")).Render(header)

	if m.searching {
		return top + "\n  /" + m.searchInput.View() + "\n" + m.viewport.View()
	}
	return top + "\n" + m.viewport.View()
}
