package search

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/cli/safeexec"

	"github.com/altinukshini/rgview/internal/model"
)

var ErrToolNotFound = errors.New("search tool not found in PATH")

// TextSearcher runs a recursive literal search and returns the raw
// "path:line:text" output.
type TextSearcher interface {
	Search(ctx context.Context, query model.SearchQuery) (string, error)
}

// ToolError reports a search tool that ran but exited unsuccessfully.
type ToolError struct {
	Command  string
	ExitCode int
	Output   string // stdout followed by stderr
}

func (e *ToolError) Error() string {
	return fmt.Sprintf("%s exited with status %d", e.Command, e.ExitCode)
}

// RipgrepSearcher shells out to ripgrep.
type RipgrepSearcher struct {
	Command   string
	ExtraArgs []string

	lookPath func(string) (string, error)
}

func NewRipgrepSearcher(command string, extraArgs []string) *RipgrepSearcher {
	if command == "" {
		command = "rg"
	}
	return &RipgrepSearcher{
		Command:   command,
		ExtraArgs: extraArgs,
		lookPath:  safeexec.LookPath,
	}
}

// Args returns the ripgrep arguments for query, without the executable.
func (s *RipgrepSearcher) Args(query model.SearchQuery) []string {
	args := []string{
		"--no-ignore", "--color=never", "--with-filename", "--line-number",
		"--no-heading", "--case-sensitive", "--fixed-strings",
	}
	for _, g := range query.Globs {
		args = append(args, "--glob", g)
	}
	args = append(args, s.ExtraArgs...)
	return append(args, "-e", query.Keyword)
}

func (s *RipgrepSearcher) Search(ctx context.Context, query model.SearchQuery) (string, error) {
	lookPath := s.lookPath
	if lookPath == nil {
		lookPath = safeexec.LookPath
	}
	bin, err := lookPath(s.Command)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrToolNotFound, s.Command)
	}

	cmd := exec.CommandContext(ctx, bin, s.Args(query)...)
	cmd.Dir = query.Root
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err = cmd.Run()
	if err == nil {
		return stdout.String(), nil
	}

	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		return "", fmt.Errorf("run %s: %w", s.Command, err)
	}
	return "", &ToolError{
		Command:  s.Command + " " + strings.Join(s.Args(query), " "),
		ExitCode: exitErr.ExitCode(),
		Output:   stdout.String() + stderr.String(),
	}
}
