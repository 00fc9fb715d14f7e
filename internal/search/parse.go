package search

import (
	"path/filepath"
	"strconv"
	"strings"

	"github.com/altinukshini/rgview/internal/model"
)

// ParseOutput groups raw "path:line:text" output by file. Paths are joined
// onto root, and lines that don't fit the format are counted in Skipped and
// otherwise ignored.
func ParseOutput(raw, root string) *model.SearchResult {
	return parseOutput(raw, model.SearchQuery{Root: root})
}

func parseOutput(raw string, query model.SearchQuery) *model.SearchResult {
	result := model.NewSearchResult(query.Root, query.Keyword)

	raw = strings.TrimSuffix(raw, "\n")
	if raw == "" {
		return result
	}

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if !strings.Contains(line, ":") {
			result.Skipped++
			continue
		}

		// The text itself may contain colons (C++ scopes, labels), so only
		// the first two separate fields.
		parts := strings.SplitN(line, ":", 3)
		if len(parts) < 3 {
			result.Skipped++
			continue
		}

		lineNo, err := strconv.Atoi(parts[1])
		if err != nil || lineNo < 1 {
			result.Skipped++
			continue
		}

		result.Add(filepath.Join(query.Root, parts[0]), model.MatchLine{
			LineNumber: lineNo,
			Text:       strings.TrimSpace(parts[2]),
		})
	}

	return result
}
