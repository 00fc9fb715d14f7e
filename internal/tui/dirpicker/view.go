package dirpicker

import (
	"os"

	"github.com/charmbracelet/bubbles/filepicker"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/altinukshini/rgview/internal/ui"
)

// Model lets the user walk the filesystem and pick a source root directory.
type Model struct {
	picker filepicker.Model
	active bool
	width  int
	height int
}

func New() Model {
	return Model{}
}

// Open starts browsing at dir, falling back to the home directory.
func (m *Model) Open(dir string) tea.Cmd {
	if info, err := os.Stat(dir); dir == "" || err != nil || !info.IsDir() {
		if home, err := os.UserHomeDir(); err == nil {
			dir = home
		} else {
			dir = "."
		}
	}

	fp := filepicker.New()
	fp.CurrentDirectory = dir
	fp.DirAllowed = true
	fp.FileAllowed = false
	fp.ShowPermissions = false
	fp.ShowSize = false

	m.picker = fp
	// AutoHeight sizes the list from the window; feed it the current size.
	m.picker, _ = m.picker.Update(tea.WindowSizeMsg{Width: m.width, Height: m.pickerHeight()})
	m.active = true
	return m.picker.Init()
}

func (m *Model) Close() {
	m.active = false
}

func (m Model) IsActive() bool { return m.active }

func (m Model) Dir() string { return m.picker.CurrentDirectory }

func (m Model) pickerHeight() int {
	h := m.height - 4
	if h < 3 {
		h = 3
	}
	return h
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = size.Width
		m.height = size.Height
		if m.active {
			m.picker, _ = m.picker.Update(tea.WindowSizeMsg{Width: m.width, Height: m.pickerHeight()})
		}
		return m, nil
	}
	if !m.active {
		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			m.active = false
			return m, nil
		case ".":
			// filepicker only selects entries, never the directory it shows.
			m.active = false
			dir := m.picker.CurrentDirectory
			return m, func() tea.Msg { return ui.RootChosenMsg{Path: dir} }
		}
	}

	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)
	if ok, path := m.picker.DidSelectFile(msg); ok {
		m.active = false
		return m, func() tea.Msg { return ui.RootChosenMsg{Path: path} }
	}
	return m, cmd
}

func (m Model) View() string {
	if !m.active {
		return ""
	}
	title := lipgloss.NewStyle().Bold(true).Foreground(ui.ColorPrimary).
		Render(" Select source root")
	dir := ui.StyleMuted.Render(" " + m.picker.CurrentDirectory)
	return title + "\n" + dir + "\n\n" + m.picker.View()
}
