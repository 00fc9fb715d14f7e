package search

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/altinukshini/rgview/internal/model"
)

var (
	ErrMissingInput = errors.New("missing keyword or root path")
	ErrRootNotDir   = errors.New("root path is not a directory")
)

// DefaultGlobs restricts searches to C sources and headers.
var DefaultGlobs = []string{"**/*.c", "**/*.h"}

// Engine validates a query, runs it through a TextSearcher and groups the
// output.
type Engine struct {
	searcher TextSearcher
	globs    []string
	log      *slog.Logger
}

func New(searcher TextSearcher, globs []string, log *slog.Logger) *Engine {
	if len(globs) == 0 {
		globs = DefaultGlobs
	}
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Engine{searcher: searcher, globs: globs, log: log}
}

// Query builds a query from user input, trimming surrounding whitespace and
// making the root absolute.
func (e *Engine) Query(root, keyword string) model.SearchQuery {
	return model.SearchQuery{
		Root:    absRoot(strings.TrimSpace(root)),
		Keyword: strings.TrimSpace(keyword),
		Globs:   e.globs,
	}
}

func absRoot(root string) string {
	if root == "" {
		return ""
	}
	if abs, err := filepath.Abs(root); err == nil {
		return abs
	}
	return root
}

// Validate reports ErrMissingInput for an empty keyword or root.
func Validate(query model.SearchQuery) error {
	switch {
	case query.Keyword == "" && query.Root == "":
		return fmt.Errorf("%w: keyword and root are empty", ErrMissingInput)
	case query.Keyword == "":
		return fmt.Errorf("%w: keyword is empty", ErrMissingInput)
	case query.Root == "":
		return fmt.Errorf("%w: root is empty", ErrMissingInput)
	}
	return nil
}

func (e *Engine) Run(ctx context.Context, query model.SearchQuery) (*model.SearchResult, error) {
	if len(query.Globs) == 0 {
		query.Globs = e.globs
	}
	query.Root = absRoot(query.Root)
	if err := Validate(query); err != nil {
		e.log.Warn("search skipped", "err", err)
		return nil, err
	}
	info, err := os.Stat(query.Root)
	if err != nil || !info.IsDir() {
		e.log.Warn("search skipped", "root", query.Root, "err", ErrRootNotDir)
		return nil, fmt.Errorf("%w: %s", ErrRootNotDir, query.Root)
	}

	e.log.Info("running search", "keyword", query.Keyword, "dir", query.Root, "globs", query.Globs)

	raw, err := e.searcher.Search(ctx, query)
	if err != nil {
		var toolErr *ToolError
		if errors.As(err, &toolErr) {
			e.log.Error("search tool failed", "command", toolErr.Command,
				"status", toolErr.ExitCode, "output", toolErr.Output)
		} else {
			e.log.Error("search failed", "err", err)
		}
		return nil, err
	}

	result := parseOutput(raw, query)
	for _, f := range result.Files() {
		for _, l := range f.Lines {
			e.log.Debug("match", "file", f.Path, "line", l.LineNumber, "text", l.Text)
		}
	}
	if result.Skipped > 0 {
		e.log.Warn("dropped malformed output lines", "count", result.Skipped)
	}
	e.log.Info("search done", "files", result.Len(), "matches", result.TotalMatches())
	return result, nil
}
