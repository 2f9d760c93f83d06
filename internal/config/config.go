// Package config loads harvest-mcp configuration from the environment and
// an optional YAML file.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/ianaleck/harvest-mcp-server/internal/harvest"
	"github.com/ianaleck/harvest-mcp-server/internal/output"
)

// Environment variables recognized by Load.
const (
	EnvAccessToken      = "HARVEST_ACCESS_TOKEN"
	EnvAccountID        = "HARVEST_ACCOUNT_ID"
	EnvBaseURL          = "HARVEST_BASE_URL"
	EnvRequestTimeout   = "HARVEST_REQUEST_TIMEOUT"
	EnvRetryCount       = "HARVEST_RETRY_COUNT"
	EnvLogLevel         = "HARVEST_LOG_LEVEL"
	EnvReportWindowDays = "HARVEST_REPORT_WINDOW_DAYS"

	// EnvConfigFile names an optional YAML config file read before
	// environment overrides.
	EnvConfigFile = "HARVEST_MCP_CONFIG"
)

// Config holds the harvest-mcp server configuration.
type Config struct {
	AccessToken string `yaml:"access_token"`
	AccountID   string `yaml:"account_id"`
	BaseURL     string `yaml:"base_url"`

	// TimeoutSeconds bounds each Harvest API request.
	TimeoutSeconds int `yaml:"timeout_seconds"`

	// RetryCount is accepted for compatibility with existing deployments;
	// the request path does not retry.
	RetryCount int `yaml:"retry_count"`

	LogLevel string `yaml:"log_level"`

	// ReportWindowDays is the default date window applied to report tools
	// when the caller omits from/to.
	ReportWindowDays int `yaml:"report_window_days"`
}

// Default returns the configuration defaults applied before file and
// environment overrides.
func Default() Config {
	return Config{
		BaseURL:          harvest.DefaultBaseURL,
		TimeoutSeconds:   int(harvest.DefaultTimeout / time.Second),
		RetryCount:       3,
		LogLevel:         "info",
		ReportWindowDays: harvest.DefaultReportWindowDays,
	}
}

// Load builds the configuration from defaults, an optional YAML file named
// by HARVEST_MCP_CONFIG, and environment variables. Environment values win
// over file values.
//
// Credentials are required: a missing access token or account ID fails here,
// at startup, rather than on the first tool call.
func Load() (Config, error) {
	cfg := Default()

	if path := os.Getenv(EnvConfigFile); path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if v := os.Getenv(EnvAccessToken); v != "" {
		cfg.AccessToken = v
	}
	if v := os.Getenv(EnvAccountID); v != "" {
		cfg.AccountID = v
	}
	if v := os.Getenv(EnvBaseURL); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv(EnvRequestTimeout); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return Config{}, output.NewUserError("invalid " + EnvRequestTimeout + ": must be a positive number of seconds")
		}
		cfg.TimeoutSeconds = n
	}
	if v := os.Getenv(EnvRetryCount); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return Config{}, output.NewUserError("invalid " + EnvRetryCount + ": must be a non-negative number")
		}
		cfg.RetryCount = n
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv(EnvReportWindowDays); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return Config{}, output.NewUserError("invalid " + EnvReportWindowDays + ": must be a positive number of days")
		}
		cfg.ReportWindowDays = n
	}

	if cfg.AccessToken == "" {
		return Config{}, output.NewUserError(EnvAccessToken + " environment variable not set")
	}
	if cfg.AccountID == "" {
		return Config{}, output.NewUserError(EnvAccountID + " environment variable not set")
	}

	return cfg, nil
}

// Timeout returns the per-request timeout as a duration.
func (c Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// SlogLevel maps the configured log level onto a slog level.
// Unknown values fall back to info.
func (c Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// loadFromFile merges a YAML config file into cfg.
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return nil
}
