//go:build integration

// Package integration provides end-to-end tests for the harvest-mcp server.
// These tests connect a real MCP client over in-memory transports and run
// full tool round trips against a scripted Harvest backend.
//
// Run with: go test -tags=integration ./internal/integration/...
package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"testing"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/ianaleck/harvest-mcp-server/internal/harvest"
	harvestmcp "github.com/ianaleck/harvest-mcp-server/internal/mcp"
)

// scriptedResponse is a canned Harvest API response for one route.
type scriptedResponse struct {
	status int
	body   string
}

// scriptedDoer serves canned responses keyed by "METHOD /path" and records
// every request it sees.
type scriptedDoer struct {
	routes map[string]scriptedResponse
	calls  []string
}

func (d *scriptedDoer) Do(req *http.Request) (*http.Response, error) {
	key := req.Method + " " + req.URL.Path
	d.calls = append(d.calls, key)

	route, ok := d.routes[key]
	if !ok {
		return nil, fmt.Errorf("unscripted request: %s", key)
	}
	return &http.Response{
		StatusCode: route.status,
		Body:       io.NopCloser(bytes.NewBufferString(route.body)),
		Header:     make(http.Header),
	}, nil
}

// newSession builds the full server against the scripted backend and
// connects an MCP client to it over in-memory transports.
func newSession(t *testing.T, doer *scriptedDoer) *sdkmcp.ClientSession {
	t.Helper()

	api, err := harvest.NewAPI(harvest.Options{
		AccessToken: "test-token",
		AccountID:   "12345",
		HTTPClient:  doer,
	})
	if err != nil {
		t.Fatalf("NewAPI() error = %v", err)
	}

	server := harvestmcp.NewServer("integration-test", api, nil)

	serverTransport, clientTransport := sdkmcp.NewInMemoryTransports()

	ctx := context.Background()
	if _, err := server.Connect(ctx, serverTransport, nil); err != nil {
		t.Fatalf("server connect error = %v", err)
	}

	client := sdkmcp.NewClient(&sdkmcp.Implementation{
		Name:    "integration-client",
		Version: "1.0.0",
	}, nil)

	session, err := client.Connect(ctx, clientTransport, nil)
	if err != nil {
		t.Fatalf("client connect error = %v", err)
	}
	t.Cleanup(func() {
		_ = session.Close()
	})

	return session
}

// callTool invokes a tool through the session and fails the test on
// protocol-level errors. Tool-level failures come back in the result.
func callTool(t *testing.T, session *sdkmcp.ClientSession, name string, args map[string]any) *sdkmcp.CallToolResult {
	t.Helper()

	result, err := session.CallTool(context.Background(), &sdkmcp.CallToolParams{
		Name:      name,
		Arguments: args,
	})
	if err != nil {
		t.Fatalf("CallTool(%s) error = %v", name, err)
	}
	return result
}

// resultText extracts the single text payload of a tool result.
func resultText(t *testing.T, result *sdkmcp.CallToolResult) string {
	t.Helper()

	if len(result.Content) != 1 {
		t.Fatalf("len(Content) = %d, want 1", len(result.Content))
	}
	text, ok := result.Content[0].(*sdkmcp.TextContent)
	if !ok {
		t.Fatalf("Content[0] is %T, want *TextContent", result.Content[0])
	}
	return text.Text
}

func TestServerInfo(t *testing.T) {
	session := newSession(t, &scriptedDoer{})

	initResult := session.InitializeResult()
	if initResult == nil || initResult.ServerInfo == nil {
		t.Fatal("InitializeResult or ServerInfo is nil")
	}
	if initResult.ServerInfo.Name != "harvest-mcp-server" {
		t.Errorf("ServerInfo.Name = %q, want %q", initResult.ServerInfo.Name, "harvest-mcp-server")
	}
	if initResult.ServerInfo.Version != "integration-test" {
		t.Errorf("ServerInfo.Version = %q, want %q", initResult.ServerInfo.Version, "integration-test")
	}
}

func TestToolCatalogOverWire(t *testing.T) {
	session := newSession(t, &scriptedDoer{})

	tools, err := session.ListTools(context.Background(), nil)
	if err != nil {
		t.Fatalf("ListTools() error = %v", err)
	}
	if len(tools.Tools) < 40 {
		t.Fatalf("len(Tools) = %d, want the full catalog", len(tools.Tools))
	}

	byName := make(map[string]*sdkmcp.Tool, len(tools.Tools))
	for _, tool := range tools.Tools {
		byName[tool.Name] = tool
	}
	for _, name := range []string{"get_company", "list_clients", "create_time_entry", "start_timer"} {
		tool, ok := byName[name]
		if !ok {
			t.Errorf("tool %q not listed", name)
			continue
		}
		if tool.Description == "" {
			t.Errorf("tool %q has no description", name)
		}
	}
}

// TestClientLifecycle runs create -> get -> delete for a client through
// the protocol and checks both the result payloads and the Harvest
// requests they produced.
func TestClientLifecycle(t *testing.T) {
	doer := &scriptedDoer{routes: map[string]scriptedResponse{
		"POST /v2/clients":     {201, `{"id": 7, "name": "Acme Corp", "is_active": true}`},
		"GET /v2/clients/7":    {200, `{"id": 7, "name": "Acme Corp", "is_active": true}`},
		"DELETE /v2/clients/7": {200, ""},
	}}
	session := newSession(t, doer)

	created := callTool(t, session, "create_client", map[string]any{"name": "Acme Corp"})
	if created.IsError {
		t.Fatalf("create_client failed: %s", resultText(t, created))
	}
	var client struct {
		ID int64 `json:"id"`
	}
	if err := json.Unmarshal([]byte(resultText(t, created)), &client); err != nil {
		t.Fatalf("failed to parse create result: %v", err)
	}
	if client.ID != 7 {
		t.Fatalf("created ID = %d, want 7", client.ID)
	}

	got := callTool(t, session, "get_client", map[string]any{"client_id": client.ID})
	if !strings.Contains(resultText(t, got), `"name": "Acme Corp"`) {
		t.Errorf("get_client text = %q, want name field", resultText(t, got))
	}

	deleted := callTool(t, session, "delete_client", map[string]any{"client_id": client.ID})
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal([]byte(resultText(t, deleted)), &payload); err != nil {
		t.Fatalf("failed to parse delete result: %v", err)
	}
	if payload.Message != "Client 7 deleted successfully" {
		t.Errorf("message = %q, want deletion confirmation", payload.Message)
	}

	want := []string{"POST /v2/clients", "GET /v2/clients/7", "DELETE /v2/clients/7"}
	if len(doer.calls) != len(want) {
		t.Fatalf("calls = %v, want %v", doer.calls, want)
	}
	for i := range want {
		if doer.calls[i] != want[i] {
			t.Errorf("calls[%d] = %q, want %q", i, doer.calls[i], want[i])
		}
	}
}

func TestAPIErrorSurfacesAsToolError(t *testing.T) {
	doer := &scriptedDoer{routes: map[string]scriptedResponse{
		"GET /v2/clients/99": {404, `{"error": "not found"}`},
	}}
	session := newSession(t, doer)

	result := callTool(t, session, "get_client", map[string]any{"client_id": 99})
	if !result.IsError {
		t.Fatal("IsError = false, want true for 404")
	}
	if got := resultText(t, result); got != "Error: Resource not found" {
		t.Errorf("text = %q, want %q", got, "Error: Resource not found")
	}
}

// TestTimeEntryValidationShortCircuits checks that input validation
// rejects a bad call before any request reaches Harvest.
func TestTimeEntryValidationShortCircuits(t *testing.T) {
	doer := &scriptedDoer{}
	session := newSession(t, doer)

	result := callTool(t, session, "create_time_entry", map[string]any{
		"project_id": 1,
		"task_id":    2,
		"spent_date": "2026-08-24",
	})
	if !result.IsError {
		t.Fatal("IsError = false, want true for missing hours mode")
	}
	want := "Error: Must provide either 'hours' or both 'started_time' and 'ended_time'"
	if got := resultText(t, result); got != want {
		t.Errorf("text = %q, want %q", got, want)
	}
	if len(doer.calls) != 0 {
		t.Errorf("calls = %v, want none before validation passes", doer.calls)
	}
}

func TestUnknownToolRejected(t *testing.T) {
	session := newSession(t, &scriptedDoer{})

	result, err := session.CallTool(context.Background(), &sdkmcp.CallToolParams{
		Name: "bogus_tool",
	})
	if err != nil {
		t.Fatalf("CallTool(bogus_tool) error = %v, want in-band rejection", err)
	}
	if !result.IsError {
		t.Fatal("IsError = false, want true for unknown tool")
	}
	if got := resultText(t, result); got != "Error: Unknown tool: bogus_tool" {
		t.Errorf("text = %q, want %q", got, "Error: Unknown tool: bogus_tool")
	}
}

// TestReportRoundTrip drives a report tool end to end, including the
// date-window defaulting that happens when no range is given.
func TestReportRoundTrip(t *testing.T) {
	doer := &scriptedDoer{routes: map[string]scriptedResponse{
		"GET /v2/reports/time/projects": {200, `{
			"results": [{"project_id": 1, "project_name": "Website", "total_hours": 12.5}],
			"total_pages": 1, "page": 1, "next_page": null
		}`},
	}}
	session := newSession(t, doer)

	result := callTool(t, session, "get_time_report", map[string]any{"group_by": "projects"})
	if result.IsError {
		t.Fatalf("get_time_report failed: %s", resultText(t, result))
	}

	var report struct {
		Results      []map[string]any `json:"results"`
		TotalEntries int              `json:"total_entries"`
	}
	if err := json.Unmarshal([]byte(resultText(t, result)), &report); err != nil {
		t.Fatalf("failed to parse report: %v", err)
	}
	if report.TotalEntries != 1 {
		t.Errorf("total_entries = %d, want 1", report.TotalEntries)
	}
	if len(report.Results) != 1 || report.Results[0]["project_name"] != "Website" {
		t.Errorf("results = %v, want the Website row", report.Results)
	}
}
