package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ianaleck/harvest-mcp-server/internal/output"
)

// clearHarvestEnv blanks every recognized variable so tests are isolated
// from the developer's real environment.
func clearHarvestEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		EnvConfigFile,
		EnvAccessToken,
		EnvAccountID,
		EnvBaseURL,
		EnvRequestTimeout,
		EnvRetryCount,
		EnvLogLevel,
		EnvReportWindowDays,
	} {
		t.Setenv(key, "")
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.BaseURL != "https://api.harvestapp.com/v2" {
		t.Errorf("BaseURL = %q, want Harvest v2 URL", cfg.BaseURL)
	}
	if cfg.TimeoutSeconds != 30 {
		t.Errorf("TimeoutSeconds = %d, want 30", cfg.TimeoutSeconds)
	}
	if cfg.RetryCount != 3 {
		t.Errorf("RetryCount = %d, want 3", cfg.RetryCount)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "info")
	}
	if cfg.ReportWindowDays != 30 {
		t.Errorf("ReportWindowDays = %d, want 30", cfg.ReportWindowDays)
	}
}

func TestLoad_MissingToken(t *testing.T) {
	clearHarvestEnv(t)
	t.Setenv(EnvAccountID, "12345")

	_, err := Load()
	if err == nil {
		t.Fatal("Load() error = nil, want missing token error")
	}
	want := "HARVEST_ACCESS_TOKEN environment variable not set"
	if err.Error() != want {
		t.Errorf("error = %q, want %q", err.Error(), want)
	}
	if output.GetExitCode(err) != output.ExitUserError {
		t.Errorf("exit code = %d, want %d", output.GetExitCode(err), output.ExitUserError)
	}
}

func TestLoad_MissingAccountID(t *testing.T) {
	clearHarvestEnv(t)
	t.Setenv(EnvAccessToken, "test-token")

	_, err := Load()
	if err == nil {
		t.Fatal("Load() error = nil, want missing account ID error")
	}
	want := "HARVEST_ACCOUNT_ID environment variable not set"
	if err.Error() != want {
		t.Errorf("error = %q, want %q", err.Error(), want)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearHarvestEnv(t)
	t.Setenv(EnvAccessToken, "test-token")
	t.Setenv(EnvAccountID, "12345")
	t.Setenv(EnvBaseURL, "https://harvest.example.com/v2")
	t.Setenv(EnvRequestTimeout, "45")
	t.Setenv(EnvRetryCount, "5")
	t.Setenv(EnvLogLevel, "debug")
	t.Setenv(EnvReportWindowDays, "7")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.AccessToken != "test-token" {
		t.Errorf("AccessToken = %q, want %q", cfg.AccessToken, "test-token")
	}
	if cfg.AccountID != "12345" {
		t.Errorf("AccountID = %q, want %q", cfg.AccountID, "12345")
	}
	if cfg.BaseURL != "https://harvest.example.com/v2" {
		t.Errorf("BaseURL = %q, want override", cfg.BaseURL)
	}
	if cfg.TimeoutSeconds != 45 {
		t.Errorf("TimeoutSeconds = %d, want 45", cfg.TimeoutSeconds)
	}
	if cfg.RetryCount != 5 {
		t.Errorf("RetryCount = %d, want 5", cfg.RetryCount)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "debug")
	}
	if cfg.ReportWindowDays != 7 {
		t.Errorf("ReportWindowDays = %d, want 7", cfg.ReportWindowDays)
	}
}

func TestLoad_FileThenEnv(t *testing.T) {
	clearHarvestEnv(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	file := "access_token: file-token\naccount_id: \"99999\"\nlog_level: warn\n"
	if err := os.WriteFile(path, []byte(file), 0o600); err != nil {
		t.Fatal(err)
	}

	t.Setenv(EnvConfigFile, path)
	t.Setenv(EnvAccountID, "12345") // env wins over file

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.AccessToken != "file-token" {
		t.Errorf("AccessToken = %q, want %q", cfg.AccessToken, "file-token")
	}
	if cfg.AccountID != "12345" {
		t.Errorf("AccountID = %q, want env override %q", cfg.AccountID, "12345")
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "warn")
	}
	// Untouched fields keep defaults
	if cfg.TimeoutSeconds != 30 {
		t.Errorf("TimeoutSeconds = %d, want default 30", cfg.TimeoutSeconds)
	}
}

func TestLoad_FileMissing(t *testing.T) {
	clearHarvestEnv(t)
	t.Setenv(EnvConfigFile, filepath.Join(t.TempDir(), "absent.yaml"))
	t.Setenv(EnvAccessToken, "test-token")
	t.Setenv(EnvAccountID, "12345")

	if _, err := Load(); err == nil {
		t.Fatal("Load() error = nil, want read error for explicit config path")
	}
}

func TestLoad_InvalidNumbers(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"timeout not a number", EnvRequestTimeout, "abc"},
		{"timeout zero", EnvRequestTimeout, "0"},
		{"timeout negative", EnvRequestTimeout, "-5"},
		{"retry not a number", EnvRetryCount, "lots"},
		{"retry negative", EnvRetryCount, "-1"},
		{"window not a number", EnvReportWindowDays, "month"},
		{"window zero", EnvReportWindowDays, "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearHarvestEnv(t)
			t.Setenv(EnvAccessToken, "test-token")
			t.Setenv(EnvAccountID, "12345")
			t.Setenv(tt.key, tt.value)

			if _, err := Load(); err == nil {
				t.Errorf("Load() error = nil, want invalid %s error", tt.key)
			}
		})
	}
}

func TestTimeout(t *testing.T) {
	cfg := Config{TimeoutSeconds: 45}
	if got := cfg.Timeout(); got != 45*time.Second {
		t.Errorf("Timeout() = %v, want 45s", got)
	}
}

func TestSlogLevel(t *testing.T) {
	tests := []struct {
		level string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"ERROR", slog.LevelError},
		{"", slog.LevelInfo},
		{"bogus", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run("level "+tt.level, func(t *testing.T) {
			cfg := Config{LogLevel: tt.level}
			if got := cfg.SlogLevel(); got != tt.want {
				t.Errorf("SlogLevel() = %v, want %v", got, tt.want)
			}
		})
	}
}
