package mcp

import (
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// jsonResult wraps a value as an indented JSON text block. Agents read
// tool output as text, so payloads are pretty-printed rather than
// returned as structured content.
func jsonResult(v any) *mcp.CallToolResult {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errorEnvelope("encoding response: " + err.Error())
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(data)}},
	}
}

// errorEnvelope wraps a message in the tool error shape. Failures are
// reported as tool results, never as protocol errors, so the calling
// agent can read them and adjust.
func errorEnvelope(message string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: "Error: " + message}},
	}
}

// errorResult translates an operation error into the tool error shape.
func errorResult(err error) *mcp.CallToolResult {
	return errorEnvelope(err.Error())
}

// deletedResult is the confirmation payload of a delete tool.
func deletedResult(resource string, id int64) *mcp.CallToolResult {
	return jsonResult(map[string]string{
		"message": fmt.Sprintf("%s %d deleted successfully", resource, id),
	})
}
