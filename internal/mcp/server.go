// Package mcp provides a Model Context Protocol server for Harvest.
// It exposes Harvest v2 time tracking, invoicing, and reporting
// operations as MCP tools that any MCP-capable agent can use.
package mcp

import (
	"log/slog"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/ianaleck/harvest-mcp-server/internal/harvest"
)

const serverName = "harvest-mcp-server"

// ToolInfo describes a registered tool for catalog listings.
type ToolInfo struct {
	Name        string
	Description string
	ReadOnly    bool
}

// NewServer creates an MCP server with the full Harvest tool set bound
// to the given API client.
func NewServer(version string, api *harvest.API, logger *slog.Logger) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    serverName,
		Version: version,
	}, nil)
	tools := registerTools(server, api)
	server.AddReceivingMiddleware(trafficLogging(logger))
	server.AddReceivingMiddleware(rejectUnknownTools(toolNameSet(tools)))
	return server
}

// Catalog returns the tool listing without connecting to Harvest.
// Entries are in registration order.
func Catalog() []ToolInfo {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    serverName,
		Version: "catalog",
	}, nil)
	return registerTools(server, &harvest.API{})
}

// boolPtr returns a pointer to a bool value.
func boolPtr(b bool) *bool {
	return &b
}

// readOnlyAnnotations returns annotations for tools that only fetch
// Harvest data. OpenWorldHint is true because every tool talks to the
// remote Harvest API.
func readOnlyAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		ReadOnlyHint:   true,
		IdempotentHint: true,
		OpenWorldHint:  boolPtr(true),
	}
}

// writeAnnotations returns annotations for tools that create or modify
// Harvest records.
func writeAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		DestructiveHint: boolPtr(false),
		OpenWorldHint:   boolPtr(true),
	}
}

// destructiveAnnotations returns annotations for tools that permanently
// delete Harvest records.
func destructiveAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		DestructiveHint: boolPtr(true),
		OpenWorldHint:   boolPtr(true),
	}
}

// registry collects catalog entries as tools are bound to a server.
type registry struct {
	server *mcp.Server
	tools  []ToolInfo
}

// addTool registers a tool with the server and records it in the
// catalog.
func addTool[In any](r *registry, tool *mcp.Tool, handler mcp.ToolHandlerFor[In, any]) {
	mcp.AddTool(r.server, tool, handler)
	r.tools = append(r.tools, ToolInfo{
		Name:        tool.Name,
		Description: tool.Description,
		ReadOnly:    tool.Annotations != nil && tool.Annotations.ReadOnlyHint,
	})
}

// registerTools adds the full Harvest tool set to the server and
// returns the catalog of what was registered.
func registerTools(server *mcp.Server, api *harvest.API) []ToolInfo {
	r := &registry{server: server}
	registerCompanyTools(r, api)
	registerClientTools(r, api)
	registerProjectTools(r, api)
	registerTaskTools(r, api)
	registerUserTools(r, api)
	registerTimeEntryTools(r, api)
	registerInvoiceTools(r, api)
	registerExpenseTools(r, api)
	registerEstimateTools(r, api)
	registerReportTools(r, api)
	return r.tools
}

func toolNameSet(tools []ToolInfo) map[string]bool {
	names := make(map[string]bool, len(tools))
	for _, tool := range tools {
		names[tool.Name] = true
	}
	return names
}
