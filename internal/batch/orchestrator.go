// Package batch drives repeated analysis runs of a single stored input and
// relays the backend's streamed progress to the caller.
package batch

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/austrich-ai/austrich/internal/service"
)

// Run count bounds enforced before anything is sent upstream.
const (
	MinRuns = 1
	MaxRuns = 10
)

// ClampRunCount forces count into [MinRuns, MaxRuns].
func ClampRunCount(count int) int {
	if count < MinRuns {
		return MinRuns
	}
	if count > MaxRuns {
		return MaxRuns
	}
	return count
}

// ValidateRunCount rejects counts outside [MinRuns, MaxRuns].
func ValidateRunCount(count int) error {
	if count < MinRuns || count > MaxRuns {
		return fmt.Errorf("run count must be between %d and %d, got %d", MinRuns, MaxRuns, count)
	}
	return nil
}

// Orchestrator submits batch analysis requests through the backend.
type Orchestrator struct {
	backend service.Backend
}

// NewOrchestrator creates a batch orchestrator over the given backend.
func NewOrchestrator(backend service.Backend) *Orchestrator {
	return &Orchestrator{backend: backend}
}

// Submit fires req.RunCount independent analysis runs of the stored input and
// follows the single streamed connection that multiplexes their progress.
// Progress messages arrive in whatever order the server emits them; there is
// no per-run ordering guarantee. The run count is validated before any
// request is issued.
func (o *Orchestrator) Submit(ctx context.Context, req service.StorageAnalyzeRequest, progress service.ProgressFunc) (service.AnalyzeResult, error) {
	if req.Key == "" {
		return service.AnalyzeResult{}, fmt.Errorf("storage key is required")
	}
	if err := ValidateRunCount(req.RunCount); err != nil {
		return service.AnalyzeResult{}, err
	}

	slog.Info("Submitting batch analysis",
		"key", req.Key,
		"runs", req.RunCount,
		"model_id", req.ModelID)

	result, err := o.backend.AnalyzeFromStorage(ctx, req, progress)
	if err != nil {
		return service.AnalyzeResult{}, err
	}

	slog.Info("Batch analysis complete", "report_id", result.ReportID)
	return result, nil
}
