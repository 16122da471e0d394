package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/austrich-ai/austrich/internal/cli"
	"github.com/austrich-ai/austrich/internal/model"
	"github.com/austrich-ai/austrich/internal/report"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func reportsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reports",
		Short: "List and inspect evaluation reports",
	}

	cmd.AddCommand(reportsListCmd())
	cmd.AddCommand(reportsGetCmd())
	cmd.AddCommand(reportsPDFCmd())
	cmd.AddCommand(reportsForgetCmd())

	return cmd
}

func reportsListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List reports on the backend",
		RunE:  runReportsList,
	}

	cmd.Flags().Bool("cached", false, "List the local cache instead of the backend")
	_ = viper.BindPFlag("reports.cached", cmd.Flags().Lookup("cached"))

	return cmd
}

func runReportsList(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	var cached []model.ReportSummary
	if store, storeErr := initStorage(ctx); storeErr == nil {
		defer func() { _ = store.Close() }()
		var listErr error
		cached, listErr = store.ListReports(ctx)
		if listErr != nil {
			return fmt.Errorf("failed to list cached reports: %w", listErr)
		}
	}

	if viper.GetBool("reports.cached") {
		printSummaries(cmd, cached, nil)
		return nil
	}

	backend, err := newBackend()
	if err != nil {
		return err
	}

	remote, err := backend.ListReports(ctx)
	if err != nil {
		return fmt.Errorf("failed to list reports: %w", err)
	}

	printSummaries(cmd, remote, cached)
	return nil
}

// printSummaries prints the primary listing, then any cached reports the
// primary listing no longer contains (deleted on the backend but still
// reviewable offline).
func printSummaries(cmd *cobra.Command, primary, cached []model.ReportSummary) {
	if len(primary) == 0 && len(cached) == 0 {
		slog.Info(cli.FormatInfo("No reports found"))
		return
	}

	out := cmd.OutOrStdout()
	seen := make(map[string]bool, len(primary))

	slog.Info(cli.FormatTitle(fmt.Sprintf("%d report(s)", len(primary))))
	for _, s := range primary {
		seen[s.ID] = true
		fmt.Fprintln(out, formatReportSummary(s))
	}

	for _, s := range cached {
		if seen[s.ID] {
			continue
		}
		fmt.Fprintln(out, formatReportSummary(s)+cli.SubtleStyle.Render("  (cached only)"))
	}
}

// formatReportSummary renders one listing line: id, then whichever time
// field the source populated.
func formatReportSummary(s model.ReportSummary) string {
	when := s.CreatedAt
	if when == "" {
		when = s.LastModified
	}
	if when == "" {
		return s.ID
	}
	return fmt.Sprintf("%s  %s", s.ID, when)
}

func reportsGetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get <report-id>",
		Short: "Show a report",
		Args:  cobra.ExactArgs(1),
		RunE:  runReportsGet,
	}

	cmd.Flags().Bool("json", false, "Print the raw report record as JSON")
	cmd.Flags().Bool("checklist", false, "Print only the extracted checklist")
	_ = viper.BindPFlag("reports.json", cmd.Flags().Lookup("json"))
	_ = viper.BindPFlag("reports.checklist", cmd.Flags().Lookup("checklist"))

	return cmd
}

func runReportsGet(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	backend, err := newBackend()
	if err != nil {
		return err
	}

	rec, err := backend.GetReport(ctx, args[0])
	if err != nil {
		return fmt.Errorf("failed to fetch report: %w", err)
	}

	if store, storeErr := initStorage(ctx); storeErr == nil {
		defer func() { _ = store.Close() }()
		_ = store.SaveReport(ctx, rec)
	}

	out := cmd.OutOrStdout()

	if viper.GetBool("reports.json") {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(rec)
	}

	resolved := report.Resolve(rec)

	if viper.GetBool("reports.checklist") {
		printChecklist(cmd, resolved.Checklist)
		return nil
	}

	fmt.Fprintln(out, cli.StyleTitle("Report "+rec.ID))
	if rec.CreatedAt != "" {
		fmt.Fprintln(out, cli.SubtleStyle.Render("created "+rec.CreatedAt))
	}
	fmt.Fprintln(out)

	if resolved.Kind == report.KindNarrative {
		fmt.Fprintln(out, strings.TrimSpace(resolved.Narrative))
	} else if rec.OverallScore != nil {
		fmt.Fprintf(out, "Overall score: %d\n", *rec.OverallScore)
	}

	if len(resolved.Checklist) > 0 {
		fmt.Fprintln(out)
		printChecklist(cmd, resolved.Checklist)
	}

	for _, warning := range resolved.ParseWarnings {
		slog.Warn("checklist parse warning", "warning", warning)
	}

	return nil
}

func printChecklist(cmd *cobra.Command, items []model.ChecklistItem) {
	out := cmd.OutOrStdout()
	for _, item := range items {
		line := fmt.Sprintf("%s %s", cli.StatusIcon(string(item.Status)), item.DisplayLabel())
		if item.HasTimestamp() {
			line += cli.SubtleStyle.Render("  [" + *item.Timestamp + "]")
		}
		fmt.Fprintln(out, line)
	}
}

func reportsPDFCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pdf <report-id>",
		Short: "Download a report as PDF",
		Args:  cobra.ExactArgs(1),
		RunE:  runReportsPDF,
	}

	cmd.Flags().StringP("output", "o", "", "Destination file (default: <report-id>.pdf)")
	_ = viper.BindPFlag("reports.output", cmd.Flags().Lookup("output"))

	return cmd
}

func runReportsPDF(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	backend, err := newBackend()
	if err != nil {
		return err
	}

	data, err := backend.DownloadPDF(ctx, args[0])
	if err != nil {
		return fmt.Errorf("failed to download PDF: %w", err)
	}

	dest := viper.GetString("reports.output")
	if dest == "" {
		dest = args[0] + ".pdf"
	}
	if dir := filepath.Dir(dest); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return err
		}
	}

	if err := os.WriteFile(dest, data, 0o600); err != nil {
		return fmt.Errorf("failed to write %s: %w", dest, err)
	}

	slog.Info(cli.FormatSuccess(fmt.Sprintf("Wrote %s (%d bytes)", dest, len(data))))
	return nil
}

func reportsForgetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "forget <report-id>",
		Short: "Remove a report from the local cache",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.DeleteReport(ctx, args[0]); err != nil {
				return fmt.Errorf("failed to delete cached report: %w", err)
			}

			slog.Info(cli.FormatSuccess("Removed from local cache"))
			return nil
		},
	}
}
