package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	"github.com/altinukshini/rgview/internal/search"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start an MCP server exposing the code search tool over stdio",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup()
		if err != nil {
			return err
		}
		defer e.Close()

		s := mcpserver.NewMCPServer("rgview", version, mcpserver.WithToolCapabilities(false))
		s.AddTool(searchCodeTool(), makeSearchCodeHandler(e))
		e.log.Info("mcp server starting")
		return mcpserver.ServeStdio(s)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

func searchCodeTool() mcp.Tool {
	return mcp.NewTool("search_code",
		mcp.WithDescription("Literal, case-sensitive ripgrep search over the C sources (*.c, *.h) of a directory. Returns matches grouped by file with line numbers."),
		mcp.WithToolAnnotation(mcp.ToolAnnotation{
			ReadOnlyHint:    mcp.ToBoolPtr(false),
			DestructiveHint: mcp.ToBoolPtr(false),
			IdempotentHint:  mcp.ToBoolPtr(true),
			OpenWorldHint:   mcp.ToBoolPtr(false),
		}),
		mcp.WithString("keyword",
			mcp.Required(),
			mcp.Description("Exact text to search for"),
		),
		mcp.WithString("root",
			mcp.Description("Directory to search (default: the last root used)"),
		),
	)
}

func makeSearchCodeHandler(e *env) mcpserver.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		root := req.GetString("root", "")
		if root == "" {
			last, err := e.store.LastRoot()
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("read settings: %v", err)), nil
			}
			root = last
		}
		query := e.engine.Query(root, req.GetString("keyword", ""))
		if err := search.Validate(query); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		if err := e.store.SetLastRoot(query.Root); err != nil {
			e.log.Warn("could not remember root", "err", err)
		}

		res, err := e.engine.Run(ctx, query)
		if err != nil {
			var toolErr *search.ToolError
			if errors.As(err, &toolErr) {
				return mcp.NewToolResultError(fmt.Sprintf("%v\n%s", err, toolErr.Output)), nil
			}
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText(renderMarkdown(res)), nil
	}
}
