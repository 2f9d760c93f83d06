// Package main provides the entry point for the harvest-mcp CLI.
package main

import (
	"github.com/spf13/cobra"

	harvestmcp "github.com/ianaleck/harvest-mcp-server/internal/mcp"
	"github.com/ianaleck/harvest-mcp-server/internal/output"
)

// newToolsCmd creates the tools command listing the MCP tool catalog.
func newToolsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tools",
		Short: "List the MCP tools this server exposes",
		Long: `List every MCP tool the server registers, with its access mode.

Read-only tools never modify Harvest data; write tools create, update,
or delete resources in the configured account.

Examples:
  harvest-mcp tools         # Human-readable table
  harvest-mcp tools --json  # JSON for scripting`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTools(cmd)
		},
	}
}

// runTools executes the tools command.
func runTools(cmd *cobra.Command) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), useColor(cmd))
	tools := harvestmcp.Catalog()

	if printer.IsJSON() {
		items := make([]map[string]any, 0, len(tools))
		for _, tool := range tools {
			items = append(items, map[string]any{
				"name":        tool.Name,
				"read_only":   tool.ReadOnly,
				"description": tool.Description,
			})
		}
		return printer.WriteJSON(map[string]any{
			"count": len(items),
			"tools": items,
		})
	}

	rows := make([][]string, 0, len(tools))
	for _, tool := range tools {
		rows = append(rows, []string{tool.Name, accessLabel(tool.ReadOnly), tool.Description})
	}
	printer.Table([]string{"NAME", "ACCESS", "DESCRIPTION"}, rows)
	printer.Println()
	printer.Print("%d tools\n", len(tools))
	return nil
}

// accessLabel renders a tool's access mode for the table.
func accessLabel(readOnly bool) string {
	if readOnly {
		return "read"
	}
	return "write"
}
