package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/austrich-ai/austrich/internal/checklist"
	"github.com/austrich-ai/austrich/internal/common"
	"github.com/austrich-ai/austrich/internal/report"
	tea "github.com/charmbracelet/bubbletea"
)

// loadReport fetches the report from the local cache, falling back to the
// backend on a miss. A backend hit is written through to the cache.
func (m Model) loadReport() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if m.config.ReportID == "" {
			return reportLoadedMsg{err: fmt.Errorf("no report id configured")}
		}

		if m.config.Store != nil {
			cached, err := m.config.Store.GetReport(ctx, m.config.ReportID)
			if err == nil {
				resolved := report.Resolve(cached)
				return reportLoadedMsg{resolved: &resolved}
			}
			if !errors.Is(err, common.ErrNotFound) {
				return reportLoadedMsg{err: err}
			}
		}

		if m.config.Backend == nil {
			return reportLoadedMsg{err: fmt.Errorf("report %s not cached and no backend configured", m.config.ReportID)}
		}

		fetched, err := m.config.Backend.GetReport(ctx, m.config.ReportID)
		if err != nil {
			return reportLoadedMsg{err: err}
		}

		if m.config.Store != nil {
			// Cache failures don't block review.
			_ = m.config.Store.SaveReport(ctx, fetched)
		}

		resolved := report.Resolve(fetched)
		return reportLoadedMsg{resolved: &resolved, fromAPI: true}
	}
}

// exportChecklist writes the reviewed checklist to CSV, and to the configured
// external exporter when one is wired.
func (m Model) exportChecklist() tea.Cmd {
	items := m.items()
	resolved := m.resolved
	cfg := m.config

	return func() tea.Msg {
		if len(items) == 0 {
			return exportDoneMsg{err: fmt.Errorf("nothing to export")}
		}

		dest := cfg.CSVPath
		if dir := filepath.Dir(dest); dir != "." {
			if err := os.MkdirAll(dir, 0o750); err != nil {
				return exportDoneMsg{err: err}
			}
		}

		f, err := os.Create(dest) // #nosec G304 -- user-chosen export path
		if err != nil {
			return exportDoneMsg{err: err}
		}
		defer func() { _ = f.Close() }()

		if err := checklist.WriteCSV(f, items); err != nil {
			return exportDoneMsg{err: err}
		}

		if cfg.Exporter != nil && resolved != nil {
			ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
			defer cancel()
			if err := cfg.Exporter.Export(ctx, resolved.Report, items); err != nil {
				return exportDoneMsg{err: fmt.Errorf("csv written, external export failed: %w", err)}
			}
		}

		return exportDoneMsg{dest: dest, rows: len(items)}
	}
}

// scheduleHighlightExpiry redraws once the highlight TTL elapses.
func (m Model) scheduleHighlightExpiry() tea.Cmd {
	return tea.Tick(m.config.HighlightTTL, func(time.Time) tea.Msg {
		return highlightExpiredMsg{}
	})
}
