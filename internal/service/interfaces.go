// Package service defines the interfaces for all application services.
package service

import (
	"context"
	"time"

	"github.com/austrich-ai/austrich/internal/model"
)

// ReportStore defines the contract for the local report cache.
type ReportStore interface {
	SaveReport(ctx context.Context, report *model.Report) error
	GetReport(ctx context.Context, id string) (*model.Report, error)
	ListReports(ctx context.Context) ([]model.ReportSummary, error)
	DeleteReport(ctx context.Context, id string) error
	Migrate(ctx context.Context) error
	Close() error
}

// ProgressFunc receives user-visible progress text during a streamed
// submission. Only processing events reach it; terminal events are returned
// from the call itself.
type ProgressFunc func(message string)

// Backend defines the operations the grading backend exposes to this client.
type Backend interface {
	AnalyzeTranscript(ctx context.Context, req AnalyzeTranscriptRequest) (AnalyzeResult, error)
	AnalyzeVideo(ctx context.Context, req AnalyzeVideoRequest) (AnalyzeResult, error)
	AnalyzeFromStorage(ctx context.Context, req StorageAnalyzeRequest, progress ProgressFunc) (AnalyzeResult, error)
	GetReport(ctx context.Context, id string) (*model.Report, error)
	ListReports(ctx context.Context) ([]model.ReportSummary, error)
	ListInputObjects(ctx context.Context) ([]model.StorageObject, error)
	ListOutputObjects(ctx context.Context) ([]model.StorageObject, error)
	DeleteObject(ctx context.Context, bucket, key string) error
	DownloadPDF(ctx context.Context, id string) ([]byte, error)
}

// AnalyzeTranscriptRequest carries a transcript submission. Exactly one of
// FilePath or Text must be set.
type AnalyzeTranscriptRequest struct {
	FilePath string
	Text     string
	ModelID  string
	PromptID string
}

// AnalyzeVideoRequest carries a video submission.
type AnalyzeVideoRequest struct {
	FilePath  string
	Timestamp *float64
	ModelID   string
	PromptID  string
}

// StorageAnalyzeRequest submits an already-uploaded object for analysis.
type StorageAnalyzeRequest struct {
	Key      string
	ModelID  string
	PromptID string
	RunCount int
}

// AnalyzeResult is the outcome of any submission path.
type AnalyzeResult struct {
	ReportID string
	Message  string
}

// ChecklistExporter writes checklist rows to an external destination.
type ChecklistExporter interface {
	Export(ctx context.Context, report *model.Report, items []model.ChecklistItem) error
}

// RetryOptions configures retry behavior for operations.
type RetryOptions struct {
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64
}
