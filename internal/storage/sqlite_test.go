package storage

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/austrich-ai/austrich/internal/common"
	"github.com/austrich-ai/austrich/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *SQLiteStorage {
	t.Helper()

	store, err := NewSQLiteStorage(filepath.Join(t.TempDir(), "austrich.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})

	require.NoError(t, store.Migrate(context.Background()))
	return store
}

func TestNewSQLiteStorage_RejectsEmptyPath(t *testing.T) {
	_, err := NewSQLiteStorage("")
	assert.Error(t, err)
}

func TestSaveAndGetReport(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	report := &model.Report{
		ID:         "r-1",
		CreatedAt:  "2025-05-01T10:00:00",
		Transcript: "[00:00:01] Student: Hello.",
		Report:     `Narrative. [{"item": "Washed hands", "status": "Yes"}]`,
	}

	require.NoError(t, store.SaveReport(ctx, report))

	got, err := store.GetReport(ctx, "r-1")
	require.NoError(t, err)
	assert.Equal(t, report, got)
}

func TestSaveReport_UpsertsExisting(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	report := &model.Report{ID: "r-1", CreatedAt: "2025-05-01T10:00:00", Report: "first"}
	require.NoError(t, store.SaveReport(ctx, report))

	report.Report = "second"
	require.NoError(t, store.SaveReport(ctx, report))

	got, err := store.GetReport(ctx, "r-1")
	require.NoError(t, err)
	assert.Equal(t, "second", got.Report)

	summaries, err := store.ListReports(ctx)
	require.NoError(t, err)
	assert.Len(t, summaries, 1)
}

func TestSaveReport_RequiresID(t *testing.T) {
	store := newTestStore(t)

	err := store.SaveReport(context.Background(), &model.Report{CreatedAt: "2025-05-01T10:00:00"})
	assert.Error(t, err)
}

func TestGetReport_NotFound(t *testing.T) {
	store := newTestStore(t)

	_, err := store.GetReport(context.Background(), "missing")
	assert.True(t, errors.Is(err, common.ErrNotFound))
}

func TestListReports_NewestFirst(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveReport(ctx, &model.Report{ID: "old", CreatedAt: "2025-05-01T09:00:00"}))
	require.NoError(t, store.SaveReport(ctx, &model.Report{ID: "new", CreatedAt: "2025-05-02T09:00:00"}))

	summaries, err := store.ListReports(ctx)
	require.NoError(t, err)
	require.Len(t, summaries, 2)
	assert.Equal(t, "new", summaries[0].ID)
	assert.Equal(t, "old", summaries[1].ID)
}

func TestDeleteReport(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveReport(ctx, &model.Report{ID: "r-1", CreatedAt: "2025-05-01T10:00:00"}))
	require.NoError(t, store.DeleteReport(ctx, "r-1"))

	_, err := store.GetReport(ctx, "r-1")
	assert.True(t, errors.Is(err, common.ErrNotFound))

	// Deleting an unknown id is fine.
	assert.NoError(t, store.DeleteReport(ctx, "r-1"))
}
