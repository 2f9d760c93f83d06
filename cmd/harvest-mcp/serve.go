// Package main provides the entry point for the harvest-mcp CLI.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/ianaleck/harvest-mcp-server/internal/config"
	"github.com/ianaleck/harvest-mcp-server/internal/harvest"
	harvestmcp "github.com/ianaleck/harvest-mcp-server/internal/mcp"
)

// newServeCmd creates the serve command for running as an MCP server.
func newServeCmd() *cobra.Command {
	var httpAddr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run as MCP server (stdio transport)",
		Long: `Run harvest-mcp as a Model Context Protocol (MCP) server.

By default the server speaks stdio, which is what agent environments
(Claude Code, Cursor, Windsurf, Gemini CLI, etc) expect.

Configure in your agent's MCP settings:
  {
    "mcpServers": {
      "harvest": {
        "command": "harvest-mcp",
        "args": ["serve"],
        "env": {
          "HARVEST_ACCESS_TOKEN": "...",
          "HARVEST_ACCOUNT_ID": "..."
        }
      }
    }
  }

With --http the server listens on the given address instead, serving the
streamable HTTP transport at /mcp plus a /health endpoint.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd, httpAddr)
		},
	}

	cmd.Flags().StringVar(&httpAddr, "http", "", "Listen address for HTTP transport (e.g. :8080); default is stdio")

	return cmd
}

// runServe builds the Harvest client and MCP server from configuration and
// runs the chosen transport until the context is canceled.
func runServe(cmd *cobra.Command, httpAddr string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// Logs go to stderr: in stdio mode stdout carries JSON-RPC frames.
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}))

	api, err := harvest.NewAPI(harvest.Options{
		AccessToken:      cfg.AccessToken,
		AccountID:        cfg.AccountID,
		BaseURL:          cfg.BaseURL,
		Timeout:          cfg.Timeout(),
		Logger:           logger,
		ReportWindowDays: cfg.ReportWindowDays,
	})
	if err != nil {
		return err
	}

	server := harvestmcp.NewServer(buildVersion(), api, logger)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if httpAddr != "" {
		return runHTTP(ctx, logger, server, httpAddr)
	}

	logger.Info("starting stdio transport", "account", cfg.AccountID)
	if err := server.Run(ctx, &sdkmcp.StdioTransport{}); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// runHTTP serves the MCP streamable HTTP transport until ctx is canceled.
func runHTTP(ctx context.Context, logger *slog.Logger, server *sdkmcp.Server, addr string) error {
	handler := sdkmcp.NewStreamableHTTPHandler(
		func(*http.Request) *sdkmcp.Server { return server },
		&sdkmcp.StreamableHTTPOptions{SessionTimeout: 30 * time.Minute},
	)

	mux := http.NewServeMux()
	mux.Handle("/mcp", handler)
	mux.Handle("/mcp/", handler)
	mux.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	httpServer := &http.Server{Addr: addr, Handler: mux}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	logger.Info("shutting down")
	return httpServer.Shutdown(shutdownCtx)
}
