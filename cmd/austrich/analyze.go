package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/austrich-ai/austrich/internal/cli"
	"github.com/austrich-ai/austrich/internal/common"
	"github.com/austrich-ai/austrich/internal/config"
	"github.com/austrich-ai/austrich/internal/service"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func analyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Submit an encounter for AI evaluation",
		Long: `Submit an encounter transcript or video recording to the grading backend.

The backend evaluates the encounter against the station checklist and
produces a report; review it with 'austrich review <report-id>'.`,
	}

	cmd.AddCommand(analyzeTranscriptCmd())
	cmd.AddCommand(analyzeVideoCmd())

	return cmd
}

func analyzeTranscriptCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transcript [file]",
		Short: "Analyze a transcript file or pasted text",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runAnalyzeTranscript,
	}

	cmd.Flags().String("text", "", "Transcript text to analyze instead of a file")
	cmd.Flags().String("model", "", "Model identifier (default from config)")
	cmd.Flags().String("prompt", "", "Prompt identifier (backend default when empty)")

	_ = viper.BindPFlag("analyze.text", cmd.Flags().Lookup("text"))
	_ = viper.BindPFlag("analyze.model", cmd.Flags().Lookup("model"))
	_ = viper.BindPFlag("analyze.prompt", cmd.Flags().Lookup("prompt"))

	return cmd
}

func runAnalyzeTranscript(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	req := service.AnalyzeTranscriptRequest{
		Text:     viper.GetString("analyze.text"),
		ModelID:  analysisModel(),
		PromptID: analysisPrompt(),
	}
	if len(args) == 1 {
		req.FilePath = args[0]
	}

	if req.FilePath == "" && req.Text == "" {
		return common.NewUserError("provide a transcript file or --text", common.ErrNoInput)
	}
	if req.FilePath != "" && req.Text != "" {
		return common.NewUserError("provide either a transcript file or --text, not both", nil)
	}
	if req.FilePath != "" {
		if _, err := os.Stat(req.FilePath); err != nil {
			return common.NewUserError("transcript file is not readable", err)
		}
	}

	backend, err := newBackend()
	if err != nil {
		return err
	}

	slog.Info(cli.FormatTitle("Submitting transcript for evaluation"))

	result, err := backend.AnalyzeTranscript(ctx, req)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	slog.Info(cli.FormatSuccess(fmt.Sprintf("Report %s created", result.ReportID)))

	store, err := initStorage(ctx)
	if err == nil {
		defer func() { _ = store.Close() }()
		if cacheErr := cacheReport(ctx, backend, store, result.ReportID); cacheErr != nil {
			slog.Warn("failed to cache report locally", "error", cacheErr)
		}
	}

	slog.Info(cli.FormatInfo(fmt.Sprintf("Review it with: austrich review %s", result.ReportID)))
	return nil
}

func analyzeVideoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "video <file>",
		Short: "Analyze a video recording of an encounter",
		Args:  cobra.ExactArgs(1),
		RunE:  runAnalyzeVideo,
	}

	cmd.Flags().String("timestamp", "", "Recording start offset in seconds, e.g. 12.5")
	cmd.Flags().String("model", "", "Model identifier (default from config)")
	cmd.Flags().String("prompt", "", "Prompt identifier (backend default when empty)")

	_ = viper.BindPFlag("analyze.timestamp", cmd.Flags().Lookup("timestamp"))
	_ = viper.BindPFlag("analyze.model", cmd.Flags().Lookup("model"))
	_ = viper.BindPFlag("analyze.prompt", cmd.Flags().Lookup("prompt"))

	return cmd
}

func runAnalyzeVideo(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	if _, err := os.Stat(args[0]); err != nil {
		return common.NewUserError("video file is not readable", err)
	}

	req := service.AnalyzeVideoRequest{
		FilePath: args[0],
		ModelID:  analysisModel(),
		PromptID: analysisPrompt(),
	}

	if raw := viper.GetString("analyze.timestamp"); raw != "" {
		ts, err := parseTimestampFlag(raw)
		if err != nil {
			return err
		}
		req.Timestamp = &ts
	}

	backend, err := newBackend()
	if err != nil {
		return err
	}

	slog.Info(cli.FormatTitle("Submitting video for evaluation"))
	slog.Info("This can take several minutes for long recordings...")

	result, err := backend.AnalyzeVideo(ctx, req)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	slog.Info(cli.FormatSuccess(fmt.Sprintf("Report %s created", result.ReportID)))
	return nil
}

// parseTimestampFlag converts the --timestamp flag to seconds. Negative
// offsets make no sense for a recording and are rejected.
func parseTimestampFlag(raw string) (float64, error) {
	ts, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid timestamp %q: %w", raw, err)
	}
	if ts < 0 {
		return 0, fmt.Errorf("timestamp cannot be negative")
	}
	return ts, nil
}

func analysisModel() string {
	if v := viper.GetString("analyze.model"); v != "" {
		return v
	}
	return config.AnalysisModel()
}

func analysisPrompt() string {
	if v := viper.GetString("analyze.prompt"); v != "" {
		return v
	}
	return config.AnalysisPrompt()
}
