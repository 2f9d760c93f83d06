// Package main provides the entry point for the harvest-mcp CLI.
package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/ianaleck/harvest-mcp-server/internal/config"
	"github.com/ianaleck/harvest-mcp-server/internal/envfile"
	"github.com/ianaleck/harvest-mcp-server/internal/harvest"
)

// runConfigChecks validates the merged configuration without touching the
// Harvest API.
func runConfigChecks() []checkResult {
	cfg, err := config.Load()
	if err != nil {
		return []checkResult{
			{
				Name:    "credentials",
				Status:  checkFail,
				Message: err.Error(),
				Hint:    "create a personal access token at https://id.getharvest.com/developers",
			},
			checkEnvFiles(),
		}
	}

	return []checkResult{
		{
			Name:    "credentials",
			Status:  checkPass,
			Message: "access token and account ID configured",
		},
		{
			Name:    "base URL",
			Status:  checkPass,
			Message: cfg.BaseURL,
		},
		{
			Name:    "report window",
			Status:  checkPass,
			Message: fmt.Sprintf("%d days", cfg.ReportWindowDays),
		},
		checkEnvFiles(),
	}
}

// checkEnvFiles reports which env files the CLI will read at startup.
// Missing files are normal when credentials come from the environment.
func checkEnvFiles() checkResult {
	found := envfile.Present(envFilePaths()...)
	if len(found) == 0 {
		return checkResult{
			Name:    "env files",
			Status:  checkPass,
			Message: "none found (using process environment)",
		}
	}
	return checkResult{
		Name:    "env files",
		Status:  checkPass,
		Message: strings.Join(found, ", "),
	}
}

// runConnectivityChecks performs a live Harvest API call to verify the
// configured credentials actually work.
func runConnectivityChecks(ctx context.Context) []checkResult {
	cfg, err := config.Load()
	if err != nil {
		return []checkResult{{
			Name:    "Harvest API",
			Status:  checkFail,
			Message: "skipped: " + err.Error(),
		}}
	}

	api, err := harvest.NewAPI(harvest.Options{
		AccessToken: cfg.AccessToken,
		AccountID:   cfg.AccountID,
		BaseURL:     cfg.BaseURL,
		Timeout:     cfg.Timeout(),
	})
	if err != nil {
		return []checkResult{{
			Name:    "Harvest API",
			Status:  checkFail,
			Message: err.Error(),
		}}
	}

	company, err := api.GetCompany(ctx)
	if err != nil {
		return []checkResult{{
			Name:    "Harvest API",
			Status:  checkFail,
			Message: err.Error(),
			Hint:    "verify the token and account ID at https://id.getharvest.com/developers",
		}}
	}

	return []checkResult{{
		Name:    "Harvest API",
		Status:  checkPass,
		Message: "connected to " + company.Name,
	}}
}
