package main

import (
	"context"
	"fmt"

	"github.com/austrich-ai/austrich/internal/api"
	"github.com/austrich-ai/austrich/internal/config"
	"github.com/austrich-ai/austrich/internal/service"
	"github.com/austrich-ai/austrich/internal/storage"
)

// initStorage opens the local report cache with proper path expansion.
func initStorage(ctx context.Context) (service.ReportStore, error) {
	dbPath, err := config.DatabasePath()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve database path: %w", err)
	}

	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, err
	}

	// Run migrations
	if err := store.Migrate(ctx); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

// newBackend creates the grading backend client from configuration.
func newBackend() (service.Backend, error) {
	client, err := api.NewClient(config.LoadAPIConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to create backend client: %w", err)
	}
	return client, nil
}

// cacheReport fetches a fresh copy of the report and writes it to the local
// cache. Submission commands call this after a successful run so the review
// command works offline.
func cacheReport(ctx context.Context, backend service.Backend, store service.ReportStore, id string) error {
	if store == nil || id == "" {
		return nil
	}

	report, err := backend.GetReport(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to fetch report %s: %w", id, err)
	}

	return store.SaveReport(ctx, report)
}
