package main

import (
	"fmt"
	"log/slog"

	"github.com/austrich-ai/austrich/internal/batch"
	"github.com/austrich-ai/austrich/internal/cli"
	"github.com/austrich-ai/austrich/internal/config"
	"github.com/austrich-ai/austrich/internal/service"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func batchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch <storage-key>",
		Short: "Run repeated evaluations of an uploaded recording",
		Long: `Submit an already-uploaded recording for one or more evaluation runs.

The backend streams progress while it works; each run produces its own
report. Run counts outside 1-10 are rejected.`,
		Args: cobra.ExactArgs(1),
		RunE: runBatch,
	}

	cmd.Flags().IntP("runs", "r", 1, "Number of evaluation runs (1-10)")
	cmd.Flags().String("model", "", "Model identifier (default from config)")
	cmd.Flags().String("prompt", "", "Prompt identifier (backend default when empty)")

	_ = viper.BindPFlag("batch.runs", cmd.Flags().Lookup("runs"))
	_ = viper.BindPFlag("batch.model", cmd.Flags().Lookup("model"))
	_ = viper.BindPFlag("batch.prompt", cmd.Flags().Lookup("prompt"))

	return cmd
}

func runBatch(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	runs := viper.GetInt("batch.runs")

	if err := batch.ValidateRunCount(runs); err != nil {
		return err
	}

	backend, err := newBackend()
	if err != nil {
		return err
	}

	interrupts := cli.NewInterruptHandler(nil)
	ctx = interrupts.HandleInterrupts(ctx, runs > 1)

	slog.Info(cli.FormatTitle(fmt.Sprintf("Evaluating %s (%d run(s))", args[0], runs)))

	bar := progressbar.NewOptions(-1,
		progressbar.OptionSetDescription("waiting for backend"),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionSetWriter(cmd.OutOrStderr()),
		progressbar.OptionClearOnFinish(),
	)

	orchestrator := batch.NewOrchestrator(backend)
	result, err := orchestrator.Submit(ctx, service.StorageAnalyzeRequest{
		Key:      args[0],
		ModelID:  batchModel(),
		PromptID: viper.GetString("batch.prompt"),
		RunCount: runs,
	}, func(message string) {
		bar.Describe(message)
		_ = bar.Add(1)
	})

	_ = bar.Finish()

	if err != nil {
		if interrupts.WasInterrupted() {
			return nil
		}
		return fmt.Errorf("batch evaluation failed: %w", err)
	}

	slog.Info(cli.FormatSuccess(fmt.Sprintf("Report %s created", result.ReportID)))
	if result.Message != "" {
		slog.Info(result.Message)
	}

	store, storeErr := initStorage(ctx)
	if storeErr == nil {
		defer func() { _ = store.Close() }()
		if cacheErr := cacheReport(ctx, backend, store, result.ReportID); cacheErr != nil {
			slog.Warn("failed to cache report locally", "error", cacheErr)
		}
	}

	return nil
}

func batchModel() string {
	if v := viper.GetString("batch.model"); v != "" {
		return v
	}
	return config.AnalysisModel()
}
