package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/altinukshini/rgview/internal/editor"
	"github.com/altinukshini/rgview/internal/model"
	"github.com/altinukshini/rgview/internal/search"
	"github.com/altinukshini/rgview/internal/tui/dirpicker"
	"github.com/altinukshini/rgview/internal/tui/preview"
	"github.com/altinukshini/rgview/internal/tui/resultstree"
	"github.com/altinukshini/rgview/internal/tui/searchform"
	"github.com/altinukshini/rgview/internal/ui"
)

type Focus int

const (
	FocusRoot Focus = iota
	FocusKeyword
	FocusResults
)

// RootStore remembers the source root between runs.
type RootStore interface {
	LastRoot() (string, error)
	SetLastRoot(path string) error
}

type Options struct {
	Engine *search.Engine
	Opener editor.FileOpener
	Store  RootStore
	Log    *slog.Logger

	// Root overrides the remembered root when set.
	Root string
	// Keyword prefills the keyword field; with a root, the search runs on start.
	Keyword string
}

// previews larger than this are refused rather than loaded into the viewport.
const maxPreviewBytes = 8 << 20

type startSearchMsg struct{}

type App struct {
	engine *search.Engine
	opener editor.FileOpener
	store  RootStore
	log    *slog.Logger

	// Views
	form        searchform.Model
	tree        resultstree.Model
	previewView preview.Model
	picker      dirpicker.Model

	// Session state: the current result and the remembered root.
	result *model.SearchResult
	root   string

	// UI state
	focus       Focus
	width       int
	height      int
	status      string
	severity    ui.Severity
	searching   bool
	showPreview bool
	previewLine int
	showHelp    bool
	helpText    string
	autoSearch  bool
}

func NewApp(opts Options) App {
	log := opts.Log
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	a := App{
		engine:      opts.Engine,
		opener:      opts.Opener,
		store:       opts.Store,
		log:         log,
		form:        searchform.New(),
		tree:        resultstree.New(),
		previewView: preview.New(),
		picker:      dirpicker.New(),
		status:      "Enter a keyword and press enter",
	}

	root := opts.Root
	if root == "" && a.store != nil {
		last, err := a.store.LastRoot()
		if err != nil {
			log.Warn("could not read remembered root", "err", err)
		}
		root = last
	}
	a.root = root
	a.form.SetRoot(root)
	a.form.SetKeyword(opts.Keyword)
	a.autoSearch = root != "" && strings.TrimSpace(opts.Keyword) != ""

	if root == "" {
		a.focus = FocusRoot
		a.form.Focus(searchform.FieldRoot)
	} else {
		a.focus = FocusKeyword
		a.form.Focus(searchform.FieldKeyword)
	}
	return a
}

func (a App) Init() tea.Cmd {
	cmds := []tea.Cmd{a.form.Init()}
	if a.autoSearch {
		cmds = append(cmds, func() tea.Msg { return startSearchMsg{} })
	}
	return tea.Batch(cmds...)
}

// Result is the result of the last successful search, nil before the first
// one or after a failed attempt.
func (a App) Result() *model.SearchResult { return a.result }

func (a App) Root() string { return a.root }

// --- Commands ---

func (a App) runSearch(query model.SearchQuery) tea.Cmd {
	engine := a.engine
	return func() tea.Msg {
		result, err := engine.Run(context.Background(), query)
		return ui.SearchDoneMsg{Query: query, Result: result, Err: err}
	}
}

func (a App) openFile(path string, line int) tea.Cmd {
	opener := a.opener
	return func() tea.Msg {
		if opener == nil {
			return ui.EditorStartedMsg{Path: path, Line: line, Err: errors.New("no editor configured")}
		}
		err := opener.Open(path, line)
		return ui.EditorStartedMsg{Path: path, Line: line, Err: err}
	}
}

func loadPreview(path string, line int) tea.Cmd {
	return func() tea.Msg {
		info, err := os.Stat(path)
		if err != nil {
			return ui.PreviewLoadedMsg{Path: path, Line: line, Err: err}
		}
		if info.Size() > maxPreviewBytes {
			return ui.PreviewLoadedMsg{Path: path, Line: line,
				Err: fmt.Errorf("file is too large to preview (%d bytes)", info.Size())}
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return ui.PreviewLoadedMsg{Path: path, Line: line, Err: err}
		}
		return ui.PreviewLoadedMsg{Path: path, Line: line, Content: string(data)}
	}
}

// --- State changes ---

func (a *App) setStatus(sev ui.Severity, format string, args ...any) {
	a.severity = sev
	a.status = fmt.Sprintf(format, args...)
}

func (a *App) rememberRoot(path string) {
	a.root = path
	if a.store == nil {
		return
	}
	if err := a.store.SetLastRoot(path); err != nil {
		a.log.Error("could not save root path", "root", path, "err", err)
	}
}

// startSearch clears the previous result, validates the form and dispatches
// the search. Only one search runs at a time.
func (a *App) startSearch() tea.Cmd {
	if a.searching {
		a.setStatus(ui.SeverityWarn, "A search is already running")
		return nil
	}

	a.result = nil
	a.tree.Clear()
	a.showPreview = false

	query := a.engine.Query(a.form.Root(), a.form.Keyword())
	if err := search.Validate(query); err != nil {
		a.log.Warn("missing keyword or root path", "err", err)
		a.setStatus(ui.SeverityWarn, "Missing keyword or source root")
		return nil
	}

	a.rememberRoot(query.Root)
	a.searching = true
	a.setStatus(ui.SeverityInfo, "Searching for %q in %s...", query.Keyword, query.Root)
	return a.runSearch(query)
}

func (a *App) finishSearch(msg ui.SearchDoneMsg) tea.Cmd {
	a.searching = false
	if msg.Err != nil {
		a.setStatus(ui.SeverityError, "%s", describeSearchError(msg.Err))
		return nil
	}

	a.result = msg.Result
	a.tree.SetResult(msg.Result)
	a.setStatus(ui.SeverityInfo, "%s", a.tree.Summary())
	if msg.Result.TotalMatches() > 0 {
		return a.setFocus(FocusResults)
	}
	return nil
}

func describeSearchError(err error) string {
	var toolErr *search.ToolError
	switch {
	case errors.Is(err, search.ErrToolNotFound):
		return "ripgrep (rg) is not installed or not in PATH"
	case errors.Is(err, search.ErrMissingInput):
		return "Missing keyword or source root"
	case errors.Is(err, search.ErrRootNotDir):
		return err.Error()
	case errors.As(err, &toolErr):
		first, _, _ := strings.Cut(strings.TrimSpace(toolErr.Output), "\n")
		if first == "" && toolErr.ExitCode == 1 {
			return "ripgrep exited with status 1: no matches found"
		}
		if first == "" {
			return fmt.Sprintf("ripgrep exited with status %d", toolErr.ExitCode)
		}
		return fmt.Sprintf("ripgrep exited with status %d: %s", toolErr.ExitCode, first)
	}
	return fmt.Sprintf("Search failed: %v", err)
}

func (a *App) setFocus(f Focus) tea.Cmd {
	if f == FocusResults && a.tree.Result() == nil {
		f = FocusRoot
	}
	a.focus = f
	switch f {
	case FocusRoot:
		a.tree.Blur()
		return a.form.Focus(searchform.FieldRoot)
	case FocusKeyword:
		a.tree.Blur()
		return a.form.Focus(searchform.FieldKeyword)
	default:
		a.form.Blur()
		a.tree.Focus()
		return nil
	}
}

func (a *App) cycleFocus(delta int) tea.Cmd {
	f := (int(a.focus) + delta + 3) % 3
	if Focus(f) == FocusResults && a.tree.Result() == nil {
		f = (f + delta + 3) % 3
	}
	return a.setFocus(Focus(f))
}

// --- Update ---

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	// Results of background work are applied whatever view is on top.
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.propagateSize()
		if a.showHelp {
			a.helpText = renderHelp(a.width)
		}
		return &a, nil

	case startSearchMsg:
		return &a, a.startSearch()

	case ui.SearchDoneMsg:
		return &a, a.finishSearch(msg)

	case ui.OpenFileMsg:
		return &a, a.openFile(msg.Path, msg.Line)

	case ui.EditorStartedMsg:
		if msg.Err != nil {
			a.setStatus(ui.SeverityError, "Could not open %s: %v", msg.Path, msg.Err)
		} else if msg.Line > 0 {
			a.setStatus(ui.SeverityInfo, "Opened %s at line %d", msg.Path, msg.Line)
		} else {
			a.setStatus(ui.SeverityInfo, "Opened %s", msg.Path)
		}
		return &a, nil

	case ui.PreviewFileMsg:
		a.setStatus(ui.SeverityInfo, "Loading %s...", msg.Path)
		return &a, loadPreview(msg.Path, msg.Line)

	case ui.PreviewLoadedMsg:
		if msg.Err != nil {
			a.log.Error("preview failed", "file", msg.Path, "err", msg.Err)
			a.setStatus(ui.SeverityError, "Could not preview %s: %v", msg.Path, msg.Err)
			return &a, nil
		}
		keyword := ""
		if a.result != nil {
			keyword = a.result.Keyword
		}
		a.previewView.SetContent(msg.Path, msg.Content, keyword)
		a.previewView.GotoLine(msg.Line)
		a.previewLine = msg.Line
		a.showPreview = true
		a.setStatus(ui.SeverityInfo, "%s", msg.Path)
		return &a, nil

	case ui.RootChosenMsg:
		a.form.SetRoot(msg.Path)
		a.rememberRoot(msg.Path)
		a.setStatus(ui.SeverityInfo, "Source root set to %s", msg.Path)
		return &a, a.setFocus(FocusKeyword)

	case ui.StatusMsg:
		a.setStatus(ui.SeverityInfo, "%s", msg.Text)
		return &a, nil
	}

	// Directory picker takes every remaining message while open.
	if a.picker.IsActive() {
		var cmd tea.Cmd
		a.picker, cmd = a.picker.Update(msg)
		if !a.picker.IsActive() {
			cmds = append(cmds, a.setFocus(FocusRoot))
		}
		cmds = append(cmds, cmd)
		return &a, tea.Batch(cmds...)
	}

	keyMsg, isKey := msg.(tea.KeyMsg)
	if !isKey {
		var cmd tea.Cmd
		if a.showPreview {
			a.previewView, cmd = a.previewView.Update(msg)
		} else if a.focus == FocusResults {
			a.tree, cmd = a.tree.Update(msg)
		} else {
			a.form, cmd = a.form.Update(msg)
		}
		return &a, cmd
	}

	if keyMsg.String() == "ctrl+c" {
		return &a, tea.Quit
	}

	// Help overlay dismisses on any key
	if a.showHelp {
		a.showHelp = false
		return &a, nil
	}

	if a.showPreview {
		return a.updatePreview(keyMsg)
	}

	if a.focus != FocusResults {
		return a.updateForm(keyMsg)
	}
	return a.updateResults(keyMsg)
}

func (a App) updatePreview(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if !a.previewView.IsSearching() {
		switch msg.String() {
		case "esc", "backspace", "q":
			a.showPreview = false
			return &a, nil
		case "enter":
			return &a, a.openFile(a.previewView.Path(), a.previewLine)
		}
	}
	var cmd tea.Cmd
	a.previewView, cmd = a.previewView.Update(msg)
	return &a, cmd
}

func (a App) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		return &a, a.startSearch()
	case "tab":
		return &a, a.cycleFocus(1)
	case "shift+tab":
		return &a, a.cycleFocus(-1)
	case "ctrl+o":
		a.form.Blur()
		return &a, a.picker.Open(a.form.Root())
	case "esc":
		if a.tree.Result() != nil {
			return &a, a.setFocus(FocusResults)
		}
		return &a, nil
	}
	var cmd tea.Cmd
	a.form, cmd = a.form.Update(msg)
	return &a, cmd
}

func (a App) updateResults(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return &a, tea.Quit
	case "?":
		a.showHelp = true
		a.helpText = renderHelp(a.width)
		return &a, nil
	case "/":
		return &a, a.setFocus(FocusKeyword)
	case "tab":
		return &a, a.cycleFocus(1)
	case "shift+tab":
		return &a, a.cycleFocus(-1)
	case "ctrl+o":
		a.tree.Blur()
		return &a, a.picker.Open(a.form.Root())
	}
	var cmd tea.Cmd
	a.tree, cmd = a.tree.Update(msg)
	return &a, cmd
}

// contentHeight is the height inside the pane border, below the header,
// the form and the status bar.
func (a App) contentHeight() int {
	//   header(1) + form(2) + status(1) = 4 lines of chrome
	//   pane border top(1) + bottom(1) = 2 lines
	h := a.height - 6
	if h < 1 {
		h = 1
	}
	return h
}

func (a *App) propagateSize() {
	innerW := a.width - 4
	if innerW < 1 {
		innerW = 1
	}
	a.form, _ = a.form.Update(tea.WindowSizeMsg{Width: a.width, Height: 2})
	a.tree, _ = a.tree.Update(tea.WindowSizeMsg{Width: innerW, Height: a.contentHeight()})
	a.previewView, _ = a.previewView.Update(tea.WindowSizeMsg{Width: innerW, Height: a.contentHeight()})
	a.picker, _ = a.picker.Update(tea.WindowSizeMsg{Width: innerW, Height: a.contentHeight()})
}
