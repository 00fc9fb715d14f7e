package tui

import (
	"strings"

	"github.com/altinukshini/rgview/internal/ui"
)

func (a App) View() string {
	header := RenderHeader(a.root, a.result, a.searching, a.width)
	form := a.form.View()

	paneW := a.width - 2
	if paneW < 1 {
		paneW = 1
	}
	style := ui.StylePane.Width(paneW).Height(a.contentHeight())
	if a.focus == FocusResults || a.showPreview || a.picker.IsActive() || a.showHelp {
		style = ui.StylePaneFocused.Width(paneW).Height(a.contentHeight())
	}

	var content string
	switch {
	case a.showHelp:
		content = style.Render(a.helpText)
	case a.picker.IsActive():
		content = style.Render(a.picker.View())
	case a.showPreview:
		content = style.Render(a.previewView.View())
	default:
		content = style.Render(a.tree.View())
	}

	statusBar := RenderStatusBar(a.status, a.severity, a.contextHints(), a.width)

	// Hard clamp: header(1) + form(2) + statusbar(1) = 4 lines of chrome.
	maxContentLines := a.height - 4
	if maxContentLines > 0 {
		lines := strings.Split(content, "\n")
		if len(lines) > maxContentLines {
			content = strings.Join(lines[:maxContentLines], "\n")
		}
	}

	return header + "\n" + form + "\n" + content + "\n" + statusBar
}

func (a App) contextHints() string {
	switch {
	case a.showHelp:
		return "any key:close"
	case a.picker.IsActive():
		return "enter:select dir  .:use this dir  l/h:in/out  esc:cancel"
	case a.showPreview:
		if a.previewView.IsSearching() {
			return "enter:confirm  esc:cancel"
		}
		return "/:search  n/N:match  g/G:top/bot  enter:edit  esc:back"
	case a.focus == FocusResults:
		return "enter:edit  p:preview  space:fold  /:search  ctrl+o:browse  ?:help  q:quit"
	}
	return "enter:search  tab:next field  ctrl+o:browse  ctrl+c:quit"
}
