package resultstree

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/cli/go-gh/v2/pkg/text"

	"github.com/altinukshini/rgview/internal/model"
	"github.com/altinukshini/rgview/internal/ui"
)

// row is one visible line of the tree: a file node or one of its matches.
type row struct {
	file  *model.FileMatches
	match int // index into file.Lines, -1 for the file node itself
}

func (r row) isFile() bool { return r.match < 0 }

// Model renders a SearchResult as files with their matching lines beneath.
type Model struct {
	viewport  viewport.Model
	result    *model.SearchResult
	collapsed map[string]bool
	rows      []row
	cursor    int
	width     int
	height    int
	ready     bool
	focused   bool
}

func New() Model {
	return Model{collapsed: make(map[string]bool)}
}

func (m *Model) SetResult(result *model.SearchResult) {
	m.result = result
	m.collapsed = make(map[string]bool)
	m.cursor = 0
	m.rebuild()
	if m.ready {
		m.viewport.GotoTop()
	}
}

// Clear drops the current result.
func (m *Model) Clear() {
	m.SetResult(nil)
}

func (m Model) Result() *model.SearchResult { return m.result }

func (m *Model) Focus()         { m.focused = true; m.refresh() }
func (m *Model) Blur()          { m.focused = false; m.refresh() }
func (m Model) IsFocused() bool { return m.focused }

// Selected returns the file under the cursor and, for a match row, its line
// number. ok is false when the tree is empty.
func (m Model) Selected() (path string, line int, ok bool) {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return "", 0, false
	}
	r := m.rows[m.cursor]
	if r.isFile() {
		return r.file.Path, 0, true
	}
	return r.file.Path, r.file.Lines[r.match].LineNumber, true
}

func (m *Model) rebuild() {
	m.rows = m.rows[:0]
	for _, f := range m.result.Files() {
		m.rows = append(m.rows, row{file: f, match: -1})
		if m.collapsed[f.Path] {
			continue
		}
		for i := range f.Lines {
			m.rows = append(m.rows, row{file: f, match: i})
		}
	}
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.refresh()
}

func (m *Model) refresh() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(m.renderRows())
	switch {
	case m.cursor < m.viewport.YOffset:
		m.viewport.SetYOffset(m.cursor)
	case m.cursor >= m.viewport.YOffset+m.viewport.Height:
		m.viewport.SetYOffset(m.cursor - m.viewport.Height + 1)
	}
}

func (m *Model) setCollapsed(collapsed bool) {
	if len(m.rows) == 0 {
		return
	}
	f := m.rows[m.cursor].file
	if m.collapsed[f.Path] == collapsed {
		return
	}
	m.collapsed[f.Path] = collapsed
	// Keep the cursor on the file node so it doesn't jump into another file.
	for i := range m.rows {
		if m.rows[i].file == f && m.rows[i].isFile() {
			m.cursor = i
			break
		}
	}
	m.rebuild()
}

func (m *Model) move(delta int) {
	m.cursor += delta
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.refresh()
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if !m.focused {
			return m, nil
		}
		switch {
		case key.Matches(msg, ui.Keys.Down):
			m.move(1)
		case key.Matches(msg, ui.Keys.Up):
			m.move(-1)
		case key.Matches(msg, ui.Keys.PageDown):
			m.move(m.viewport.Height)
		case key.Matches(msg, ui.Keys.PageUp):
			m.move(-m.viewport.Height)
		case key.Matches(msg, ui.Keys.Top):
			m.move(-len(m.rows))
		case key.Matches(msg, ui.Keys.Bottom):
			m.move(len(m.rows))
		case key.Matches(msg, ui.Keys.Toggle):
			if len(m.rows) > 0 {
				m.setCollapsed(!m.collapsed[m.rows[m.cursor].file.Path])
			}
		case key.Matches(msg, ui.Keys.Expand):
			m.setCollapsed(false)
		case key.Matches(msg, ui.Keys.Collapse):
			m.setCollapsed(true)
		case key.Matches(msg, ui.Keys.Enter):
			if path, line, ok := m.Selected(); ok {
				return m, func() tea.Msg { return ui.OpenFileMsg{Path: path, Line: line} }
			}
		case key.Matches(msg, ui.Keys.Preview):
			if path, line, ok := m.Selected(); ok {
				return m, func() tea.Msg { return ui.PreviewFileMsg{Path: path, Line: line} }
			}
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		h := msg.Height - 1 // summary line
		if h < 1 {
			h = 1
		}
		if !m.ready {
			m.viewport = viewport.New(msg.Width, h)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = h
		}
		m.refresh()
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) renderRows() string {
	if len(m.rows) == 0 {
		return ""
	}
	keyword := m.result.Keyword

	var b strings.Builder
	for i, r := range m.rows {
		marker := "  "
		if i == m.cursor {
			marker = "> "
			if m.focused {
				marker = ui.StyleSelected.Render(">") + " "
			}
		}

		if r.isFile() {
			fold := "▾"
			if m.collapsed[r.file.Path] {
				fold = "▸"
			}
			name := r.file.Path
			if i == m.cursor {
				name = ui.StyleSelected.Inherit(ui.StyleFile).Render(name)
			} else {
				name = ui.StyleFile.Render(name)
			}
			b.WriteString(fmt.Sprintf("%s%s %s %s\n", marker, fold, name,
				ui.StyleMuted.Render(fmt.Sprintf("(%d)", len(r.file.Lines)))))
			continue
		}

		ml := r.file.Lines[r.match]
		loc := fmt.Sprintf("%s:%d", filepath.Base(r.file.Path), ml.LineNumber)
		if i == m.cursor {
			loc = ui.StyleSelected.Render(loc)
		} else {
			loc = ui.StyleMuted.Render(loc)
		}
		b.WriteString(fmt.Sprintf("%s    %s  %s\n", marker, loc, ui.Highlight(ml.Text, keyword)))
	}
	return strings.TrimSuffix(b.String(), "\n")
}

// Summary describes the result in one line.
func (m Model) Summary() string {
	if m.result == nil {
		return "No search yet"
	}
	if m.result.TotalMatches() == 0 {
		return fmt.Sprintf("No matches for %q", m.result.Keyword)
	}
	return fmt.Sprintf("%s in %s for %q",
		text.Pluralize(m.result.TotalMatches(), "result"),
		text.Pluralize(m.result.Len(), "file"),
		m.result.Keyword)
}

func (m Model) View() string {
	summary := lipgloss.NewStyle().Bold(true).Render(" " + m.Summary())
	if !m.ready || len(m.rows) == 0 {
		return summary
	}
	return summary + "\n" + m.viewport.View()
}
