package searchform

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/altinukshini/rgview/internal/ui"
)

type Field int

const (
	FieldRoot Field = iota
	FieldKeyword
)

// Model is the two-line form holding the root path and the keyword.
type Model struct {
	root    textinput.Model
	keyword textinput.Model
	field   Field
	focused bool
	width   int
}

func New() Model {
	root := textinput.New()
	root.Placeholder = "Set source root (e.g. /home/user/sdk)"
	root.CharLimit = 4096
	root.Prompt = ""

	kw := textinput.New()
	kw.Placeholder = "Function or variable name (e.g. ath9k_hw_eeprom_init)"
	kw.CharLimit = 256
	kw.Prompt = ""

	return Model{root: root, keyword: kw, field: FieldKeyword}
}

func (m Model) Root() string    { return m.root.Value() }
func (m Model) Keyword() string { return m.keyword.Value() }
func (m Model) Field() Field    { return m.field }
func (m Model) IsFocused() bool { return m.focused }

func (m *Model) SetRoot(path string) {
	m.root.SetValue(path)
	m.root.CursorEnd()
}

func (m *Model) SetKeyword(kw string) {
	m.keyword.SetValue(kw)
	m.keyword.CursorEnd()
}

// Focus puts the cursor in field.
func (m *Model) Focus(field Field) tea.Cmd {
	m.focused = true
	m.field = field
	if field == FieldRoot {
		m.keyword.Blur()
		return m.root.Focus()
	}
	m.root.Blur()
	return m.keyword.Focus()
}

func (m *Model) Blur() {
	m.focused = false
	m.root.Blur()
	m.keyword.Blur()
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		w := msg.Width - 16
		if w < 10 {
			w = 10
		}
		m.root.Width = w
		m.keyword.Width = w
		return m, nil
	}

	if !m.focused {
		return m, nil
	}
	var cmd tea.Cmd
	if m.field == FieldRoot {
		m.root, cmd = m.root.Update(msg)
	} else {
		m.keyword, cmd = m.keyword.Update(msg)
	}
	return m, cmd
}

func (m Model) View() string {
	label := lipgloss.NewStyle().Width(11).Foreground(ui.ColorMuted)
	active := label.Foreground(ui.ColorPrimary).Bold(true)

	rootLabel, kwLabel := label, label
	if m.focused {
		if m.field == FieldRoot {
			rootLabel = active
		} else {
			kwLabel = active
		}
	}

	var b strings.Builder
	b.WriteString(" " + rootLabel.Render("Root:") + m.root.View() + "\n")
	b.WriteString(" " + kwLabel.Render("Keyword:") + m.keyword.View())
	return b.String()
}
