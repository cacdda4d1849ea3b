package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/ohler55/ojg/oj"
	"github.com/spf13/cobra"

	"github.com/rxhost/catalogctl/internal/catalog"
	"github.com/rxhost/catalogctl/internal/lint"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve the catalog read-only over MCP stdio",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		loader, err := newLoader(cfg)
		if err != nil {
			return err
		}

		s := server.NewMCPServer("catalogctl", version,
			server.WithToolCapabilities(false),
		)

		validateTool := mcp.NewTool("validate_catalog",
			mcp.WithDescription("Validate the component catalog and return all findings"),
		)
		s.AddTool(validateTool, func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			report, err := lint.New(loader, lintOptions(cfg)).Run()
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			var b strings.Builder
			for _, f := range report.Findings {
				fmt.Fprintln(&b, f)
			}
			fmt.Fprintf(&b, "validated=%d topics=%d ok=%v\n",
				report.Validated, report.Topics, report.OK())
			return mcp.NewToolResultText(b.String()), nil
		})

		getTool := mcp.NewTool("get_component",
			mcp.WithDescription("Fetch one catalog document by catalog-relative path"),
			mcp.WithString("path",
				mcp.Required(),
				mcp.Description("Catalog-relative path, e.g. components/react/rx-react.json"),
			),
		)
		s.AddTool(getTool, func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			path, err := req.RequireString("path")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			doc, err := loadCatalogDoc(loader, path)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			return mcp.NewToolResultText(oj.JSON(doc.Root, 2)), nil
		})

		return server.ServeStdio(s)
	},
}

// loadCatalogDoc rejects paths escaping the catalog root before reading.
func loadCatalogDoc(loader *catalog.Loader, path string) (*catalog.Document, error) {
	if strings.HasPrefix(path, "/") || strings.Contains(path, "..") {
		return nil, fmt.Errorf("path %q must be catalog-relative", path)
	}
	return loader.LoadDocument(path)
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
