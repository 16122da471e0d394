// Package config provides configuration utilities for the application.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/austrich-ai/austrich/internal/api"
	"github.com/spf13/viper"
)

// ExpandPath expands ~ and environment variables in a file path.
// It handles both ~ for home directory and $VAR style environment variables.
func ExpandPath(path string) string {
	if path == "" {
		return path
	}

	// First expand tilde if present
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			path = filepath.Join(home, path[2:])
		}
	} else if path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			path = home
		}
	}

	// Then expand environment variables
	return os.ExpandEnv(path)
}

// LoadAPIConfig loads the backend API configuration from Viper and
// environment variables. It follows this precedence:
// 1. Viper configuration (from config file or AUSTRICH_ env vars)
// 2. Direct environment variables (AUSTRICH_API_URL)
// 3. Default values
func LoadAPIConfig() api.Config {
	cfg := api.Config{
		BaseURL: "http://localhost:8000",
	}

	if v := viper.GetString("api.base_url"); v != "" {
		cfg.BaseURL = v
	} else if v := os.Getenv("AUSTRICH_API_URL"); v != "" {
		cfg.BaseURL = v
	}

	if v := viper.GetDuration("api.timeout"); v > 0 {
		cfg.Timeout = v
	}

	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	return cfg
}

// DatabasePath resolves the path to the local report cache, creating the
// parent directory if needed.
func DatabasePath() (string, error) {
	if v := viper.GetString("database.path"); v != "" {
		return ExpandPath(v), nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	dir := filepath.Join(home, ".local", "share", "austrich")
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", err
	}

	return filepath.Join(dir, "reports.db"), nil
}

// DefaultAnalysisModel is used when no model is configured.
const DefaultAnalysisModel = "us.anthropic.claude-sonnet-4-20250514-v1:0"

// AnalysisModel returns the configured model identifier for analysis runs.
func AnalysisModel() string {
	if v := viper.GetString("analysis.model_id"); v != "" {
		return v
	}
	return DefaultAnalysisModel
}

// AnalysisPrompt returns the configured prompt identifier, empty for the
// backend default.
func AnalysisPrompt() string {
	return viper.GetString("analysis.prompt_id")
}

// HighlightTTL returns how long a transcript highlight stays active.
func HighlightTTL() time.Duration {
	if v := viper.GetDuration("transcript.highlight_ttl"); v > 0 {
		return v
	}
	return 3 * time.Second
}
