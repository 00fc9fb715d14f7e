package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/altinukshini/rgview/internal/editor"
)

var openCmd = &cobra.Command{
	Use:   "open <path[:line]>",
	Short: "Open a file in the configured editor",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup()
		if err != nil {
			return err
		}
		defer e.Close()

		path, line := editor.ParseTarget(args[0])
		if abs, err := filepath.Abs(path); err == nil {
			path = abs
		}
		if err := e.opener.Open(path, line); err != nil {
			return fmt.Errorf("open %s: %w", path, err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(openCmd)
}
