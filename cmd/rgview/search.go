package main

import (
	"errors"
	"fmt"

	"github.com/cli/go-gh/v2/pkg/term"
	"github.com/spf13/cobra"

	"github.com/altinukshini/rgview/internal/search"
)

var flagJSON bool

var searchCmd = &cobra.Command{
	Use:   "search <keyword>",
	Short: "Run one search and print the matches",
	Args:  cobra.ExactArgs(1),
	RunE:  runSearch,
}

func init() {
	searchCmd.Flags().BoolVar(&flagJSON, "json", false, "print matches as JSON")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	e, err := setup()
	if err != nil {
		return err
	}
	defer e.Close()

	root, err := e.resolveRoot()
	if err != nil {
		return err
	}
	query := e.engine.Query(root, args[0])
	if err := search.Validate(query); err != nil {
		return fmt.Errorf("%w (pass --root or run a search from the TUI first)", err)
	}
	if err := e.store.SetLastRoot(query.Root); err != nil {
		e.log.Warn("could not remember root", "err", err)
	}

	res, err := e.engine.Run(cmd.Context(), query)
	if err != nil {
		var toolErr *search.ToolError
		switch {
		case errors.Is(err, search.ErrToolNotFound):
			return fmt.Errorf("ripgrep (rg) is not installed or not in PATH")
		case errors.As(err, &toolErr):
			fmt.Fprint(cmd.ErrOrStderr(), toolErr.Output)
		}
		return err
	}

	if flagJSON {
		return writeJSON(cmd.OutOrStdout(), res)
	}
	t := term.FromEnv()
	width, _, _ := t.Size()
	return writeTable(cmd.OutOrStdout(), res, t.IsTerminalOutput(), width)
}
