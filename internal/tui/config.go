package tui

import (
	"time"

	"github.com/austrich-ai/austrich/internal/service"
	"github.com/austrich-ai/austrich/internal/tui/themes"
)

// Config holds TUI configuration.
type Config struct {
	Theme        themes.Theme
	Store        service.ReportStore
	Backend      service.Backend
	Exporter     service.ChecklistExporter
	ReportID     string
	CSVPath      string
	HighlightTTL time.Duration
	Width        int
	Height       int
}

// Option is a functional option for configuring the TUI.
type Option func(*Config)

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		Theme:        themes.Default,
		Width:        80,
		Height:       24,
		HighlightTTL: 3 * time.Second,
		CSVPath:      "checklist.csv",
	}
}

// WithStore sets the local report cache.
func WithStore(store service.ReportStore) Option {
	return func(c *Config) {
		c.Store = store
	}
}

// WithBackend sets the grading backend client.
func WithBackend(backend service.Backend) Option {
	return func(c *Config) {
		c.Backend = backend
	}
}

// WithExporter sets the checklist exporter used by the export action.
func WithExporter(exporter service.ChecklistExporter) Option {
	return func(c *Config) {
		c.Exporter = exporter
	}
}

// WithReportID sets the report to review.
func WithReportID(id string) Option {
	return func(c *Config) {
		c.ReportID = id
	}
}

// WithTheme sets the visual theme.
func WithTheme(theme themes.Theme) Option {
	return func(c *Config) {
		c.Theme = theme
	}
}

// WithSize sets the initial terminal size.
func WithSize(width, height int) Option {
	return func(c *Config) {
		c.Width = width
		c.Height = height
	}
}

// WithHighlightTTL sets how long a transcript highlight stays active.
func WithHighlightTTL(ttl time.Duration) Option {
	return func(c *Config) {
		if ttl > 0 {
			c.HighlightTTL = ttl
		}
	}
}

// WithCSVPath sets the destination for CSV export.
func WithCSVPath(path string) Option {
	return func(c *Config) {
		if path != "" {
			c.CSVPath = path
		}
	}
}
