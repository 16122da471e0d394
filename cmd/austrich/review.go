package main

import (
	"github.com/austrich-ai/austrich/internal/common"
	"github.com/austrich-ai/austrich/internal/config"
	"github.com/austrich-ai/austrich/internal/tui"
	"github.com/austrich-ai/austrich/internal/tui/themes"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func reviewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "review <report-id>",
		Short: "Review a report's checklist interactively",
		Long: `Open the interactive review console for a report.

Walk the checklist, filter by verdict, jump from a checklist item to the
matching transcript lines, and resolve "Not Sure" verdicts to Yes or No.
Overrides live only in the session; export before quitting to keep them.`,
		Args: cobra.ExactArgs(1),
		RunE: runReview,
	}

	cmd.Flags().String("theme", "default", "Color theme (default, catppuccin-mocha)")
	cmd.Flags().String("csv", "", "Destination for CSV export (default: checklist.csv)")

	_ = viper.BindPFlag("review.theme", cmd.Flags().Lookup("theme"))
	_ = viper.BindPFlag("review.csv", cmd.Flags().Lookup("csv"))

	return cmd
}

func runReview(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	store, err := initStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	opts := []tui.Option{
		tui.WithReportID(args[0]),
		tui.WithStore(store),
		tui.WithTheme(themes.GetTheme(viper.GetString("review.theme"))),
		tui.WithHighlightTTL(config.HighlightTTL()),
		tui.WithCSVPath(viper.GetString("review.csv")),
	}

	// The backend is optional here: a cached report reviews fine offline.
	if backend, backendErr := newBackend(); backendErr == nil {
		opts = append(opts, tui.WithBackend(backend))
	} else {
		common.LogDebug("backend unavailable, reviewing from cache only", common.Fields{"error": backendErr})
	}

	if sheetsCfg, cfgErr := config.LoadSheetsConfig(); cfgErr == nil {
		if writer, writerErr := newSheetsWriter(ctx, sheetsCfg); writerErr == nil {
			opts = append(opts, tui.WithExporter(writer))
		} else {
			common.LogDebug("sheets exporter unavailable", common.Fields{"error": writerErr})
		}
	}

	return tui.Run(ctx, opts...)
}
