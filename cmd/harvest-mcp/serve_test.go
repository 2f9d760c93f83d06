package main

import (
	"bytes"
	"strings"
	"testing"
)

// TestNewServeCmd verifies the serve command wires up correctly.
func TestNewServeCmd(t *testing.T) {
	cmd := newServeCmd()

	if cmd.Use != "serve" {
		t.Errorf("Use = %q, want %q", cmd.Use, "serve")
	}
	if cmd.RunE == nil {
		t.Error("RunE is nil")
	}
	if cmd.Flags().Lookup("http") == nil {
		t.Error("serve should have an --http flag")
	}
}

func TestServeCommand_MissingCredentials(t *testing.T) {
	clearHarvestEnv(t)

	cmd := newServeCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{})

	err := cmd.Execute()
	if err == nil {
		t.Fatal("Execute() error = nil, want missing credentials error")
	}
	if !strings.Contains(err.Error(), "HARVEST_ACCESS_TOKEN") {
		t.Errorf("error = %q, want mention of HARVEST_ACCESS_TOKEN", err.Error())
	}
}
