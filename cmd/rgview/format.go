package main

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/cli/go-gh/v2/pkg/tableprinter"
	"github.com/cli/go-gh/v2/pkg/text"

	"github.com/altinukshini/rgview/internal/model"
	"github.com/altinukshini/rgview/internal/ui"
)

type jsonMatch struct {
	Line int    `json:"line"`
	Text string `json:"text"`
}

type jsonFile struct {
	Path    string      `json:"path"`
	Matches []jsonMatch `json:"matches"`
}

type jsonResult struct {
	Root    string     `json:"root"`
	Keyword string     `json:"keyword"`
	Files   []jsonFile `json:"files"`
	Skipped int        `json:"skipped,omitempty"`
}

func writeJSON(w io.Writer, res *model.SearchResult) error {
	out := jsonResult{Root: res.Root, Keyword: res.Keyword, Files: []jsonFile{}, Skipped: res.Skipped}
	for _, f := range res.Files() {
		jf := jsonFile{Path: f.Path, Matches: make([]jsonMatch, 0, len(f.Lines))}
		for _, l := range f.Lines {
			jf.Matches = append(jf.Matches, jsonMatch{Line: l.LineNumber, Text: l.Text})
		}
		out.Files = append(out.Files, jf)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// writeTable prints one row per match, grouped by file. On a terminal the
// file is only shown on its first row and the keyword is painted.
func writeTable(w io.Writer, res *model.SearchResult, isTTY bool, width int) error {
	if res.Len() == 0 {
		_, err := fmt.Fprintf(w, "No matches for %q\n", res.Keyword)
		return err
	}
	tp := tableprinter.New(w, isTTY, width)
	if isTTY {
		tp.AddHeader([]string{"FILE", "LINE", "TEXT"})
	}
	for _, f := range res.Files() {
		name := relPath(res.Root, f.Path)
		for i, l := range f.Lines {
			switch {
			case !isTTY:
				tp.AddField(f.Path)
			case i == 0:
				tp.AddField(name, tableprinter.WithColor(paintFile))
			default:
				tp.AddField("")
			}
			tp.AddField(strconv.Itoa(l.LineNumber))
			if isTTY {
				tp.AddField(ui.Highlight(l.Text, res.Keyword))
			} else {
				tp.AddField(l.Text)
			}
			tp.EndRow()
		}
	}
	if err := tp.Render(); err != nil {
		return err
	}
	if isTTY {
		_, err := fmt.Fprintln(w, summary(res))
		return err
	}
	return nil
}

func paintFile(s string) string { return ui.StyleFile.Render(s) }

// renderMarkdown is the MCP tool payload.
func renderMarkdown(res *model.SearchResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Matches for `%s`\n\n", res.Keyword)
	if res.Len() == 0 {
		b.WriteString("No matches.\n")
		return b.String()
	}
	fmt.Fprintf(&b, "%s under `%s`.\n", summary(res), res.Root)
	for _, f := range res.Files() {
		fmt.Fprintf(&b, "\n## %s\n\n", relPath(res.Root, f.Path))
		for _, l := range f.Lines {
			fmt.Fprintf(&b, "- L%d: `%s`\n", l.LineNumber, strings.ReplaceAll(l.Text, "`", "'"))
		}
	}
	return b.String()
}

func summary(res *model.SearchResult) string {
	return fmt.Sprintf("%s in %s",
		text.Pluralize(res.TotalMatches(), "result"),
		text.Pluralize(res.Len(), "file"))
}

func relPath(root, path string) string {
	if rel, err := filepath.Rel(root, path); err == nil && !strings.HasPrefix(rel, "..") {
		return rel
	}
	return path
}
