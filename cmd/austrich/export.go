package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/austrich-ai/austrich/internal/checklist"
	"github.com/austrich-ai/austrich/internal/cli"
	"github.com/austrich-ai/austrich/internal/common"
	"github.com/austrich-ai/austrich/internal/config"
	"github.com/austrich-ai/austrich/internal/model"
	"github.com/austrich-ai/austrich/internal/report"
	"github.com/austrich-ai/austrich/internal/sheets"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func exportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export <report-id>",
		Short: "Export a report's checklist",
		Long: `Export the checklist of a report to CSV and, when configured,
to Google Sheets.

Verdicts are exported as parsed from the report; run overrides happen in
'austrich review' and are session-only.`,
		Args: cobra.ExactArgs(1),
		RunE: runExport,
	}

	cmd.Flags().StringP("output", "o", "", "CSV destination (default: <report-id>.csv)")
	cmd.Flags().Bool("sheets", false, "Also export to Google Sheets")

	_ = viper.BindPFlag("export.output", cmd.Flags().Lookup("output"))
	_ = viper.BindPFlag("export.sheets", cmd.Flags().Lookup("sheets"))

	return cmd
}

func runExport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	rec, err := loadReportRecord(ctx, args[0])
	if err != nil {
		return err
	}

	resolved := report.Resolve(rec)
	if len(resolved.Checklist) == 0 {
		return fmt.Errorf("report %s has no checklist to export", rec.ID)
	}

	dest := viper.GetString("export.output")
	if dest == "" {
		dest = rec.ID + ".csv"
	}
	if dir := filepath.Dir(dest); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return err
		}
	}

	f, err := os.Create(dest) // #nosec G304 -- user-chosen export path
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", dest, err)
	}
	defer func() { _ = f.Close() }()

	if err := checklist.WriteCSV(f, resolved.Checklist); err != nil {
		return fmt.Errorf("CSV export failed: %w", err)
	}

	slog.Info(cli.FormatSuccess(fmt.Sprintf("Wrote %d rows to %s", len(resolved.Checklist), dest)))

	if viper.GetBool("export.sheets") {
		if err := exportToSheets(ctx, rec, resolved.Checklist); err != nil {
			return err
		}
		slog.Info(cli.FormatSuccess("Exported to Google Sheets"))
	}

	return nil
}

// loadReportRecord prefers the local cache and falls back to the backend.
func loadReportRecord(ctx context.Context, id string) (*model.Report, error) {
	store, err := initStorage(ctx)
	if err == nil {
		defer func() { _ = store.Close() }()
		rec, getErr := store.GetReport(ctx, id)
		if getErr == nil {
			return rec, nil
		}
		if !errors.Is(getErr, common.ErrNotFound) {
			return nil, getErr
		}
	}

	backend, err := newBackend()
	if err != nil {
		return nil, err
	}

	rec, err := backend.GetReport(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch report %s: %w", id, err)
	}
	return rec, nil
}

func exportToSheets(ctx context.Context, rec *model.Report, items []model.ChecklistItem) error {
	cfg, err := config.LoadSheetsConfig()
	if err != nil {
		return fmt.Errorf("sheets not configured: %w", err)
	}

	writer, err := newSheetsWriter(ctx, cfg)
	if err != nil {
		return err
	}

	return writer.Export(ctx, rec, items)
}

func newSheetsWriter(ctx context.Context, cfg *sheets.Config) (*sheets.Writer, error) {
	return sheets.NewWriter(ctx, *cfg, slog.Default())
}
