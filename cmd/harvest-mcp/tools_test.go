package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestToolsCommand_Human(t *testing.T) {
	clearHarvestEnv(t)

	cmd := newRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"tools"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	output := buf.String()
	for _, expected := range []string{"NAME", "ACCESS", "list_clients", "create_time_entry", "get_time_report"} {
		if !strings.Contains(output, expected) {
			t.Errorf("tools output should contain %q:\n%s", expected, output)
		}
	}
}

func TestToolsCommand_JSON(t *testing.T) {
	clearHarvestEnv(t)

	cmd := newRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"tools", "--json"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	var result struct {
		Count int `json:"count"`
		Tools []struct {
			Name        string `json:"name"`
			ReadOnly    bool   `json:"read_only"`
			Description string `json:"description"`
		} `json:"tools"`
	}
	if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("Output should be valid JSON: %v\nOutput: %s", err, buf.String())
	}

	if result.Count == 0 || len(result.Tools) != result.Count {
		t.Fatalf("count = %d, tools = %d, want matching non-zero counts", result.Count, len(result.Tools))
	}

	byName := make(map[string]bool, len(result.Tools))
	for _, tool := range result.Tools {
		if tool.Description == "" {
			t.Errorf("tool %q has empty description", tool.Name)
		}
		byName[tool.Name] = tool.ReadOnly
	}
	if readOnly, ok := byName["list_clients"]; !ok || !readOnly {
		t.Error("list_clients should be present and read-only")
	}
	if readOnly, ok := byName["delete_client"]; !ok || readOnly {
		t.Error("delete_client should be present and not read-only")
	}
}

func TestAccessLabel(t *testing.T) {
	if got := accessLabel(true); got != "read" {
		t.Errorf("accessLabel(true) = %q, want %q", got, "read")
	}
	if got := accessLabel(false); got != "write" {
		t.Errorf("accessLabel(false) = %q, want %q", got, "write")
	}
}
