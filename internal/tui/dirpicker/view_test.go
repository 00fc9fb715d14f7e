package dirpicker

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/altinukshini/rgview/internal/ui"
)

func TestOpenAndCancel(t *testing.T) {
	dir := t.TempDir()
	m := New()
	m, _ = m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	assert.False(t, m.IsActive())
	assert.Empty(t, m.View())

	cmd := m.Open(dir)
	assert.NotNil(t, cmd)
	assert.True(t, m.IsActive())
	assert.Equal(t, dir, m.Dir())
	assert.Contains(t, m.View(), "Select source root")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.IsActive())
}

func TestOpenFallsBackForMissingDir(t *testing.T) {
	m := New()
	m.Open("/definitely/not/here")
	assert.NotEqual(t, "/definitely/not/here", m.Dir())
}

func TestIgnoresKeysWhenClosed(t *testing.T) {
	m := New()
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.False(t, m.IsActive())
}

func TestDotChoosesCurrentDirectory(t *testing.T) {
	dir := t.TempDir()
	m := New()
	m.Open(dir)

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'.'}})
	require.NotNil(t, cmd)
	assert.False(t, m.IsActive())
	assert.Equal(t, ui.RootChosenMsg{Path: dir}, cmd())
}
