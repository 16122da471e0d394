package sheets

import (
	"log/slog"
	"testing"

	"github.com/austrich-ai/austrich/internal/checklist"
	"github.com/austrich-ai/austrich/internal/common"
	"github.com/austrich-ai/austrich/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrepareChecklistData(t *testing.T) {
	evidence := "Student introduced themselves at the start."
	ts := "00:00:12"

	report := &model.Report{
		ID:        "report-1",
		CreatedAt: "2026-08-01T10:30:00Z",
	}
	items := []model.ChecklistItem{
		{Item: "Introduced self (Communication)", Status: model.StatusYes, Evidence: &evidence, Timestamp: &ts},
		{Item: "Washed hands", Status: model.StatusNo},
		{Item: "Asked about allergies", Status: model.StatusNotSure},
	}

	w := &Writer{config: DefaultConfig(), logger: slog.Default()}
	values := w.prepareChecklistData(report, items)

	// Title, created, blank, summary header, four stat rows, blank, column
	// header, then one row per item.
	require.Len(t, values, 10+len(items))

	assert.Equal(t, []any{"OSCE Evaluation Report", "report-1"}, values[0])
	assert.Equal(t, []any{"Completed", 1}, values[4])
	assert.Equal(t, []any{"Missed", 1}, values[5])
	assert.Equal(t, []any{"Needs Review", 1}, values[6])
	assert.Equal(t, []any{"Score", "33%"}, values[7])

	header := values[9]
	require.Len(t, header, len(checklist.ExportHeader))
	assert.Equal(t, any("Item"), header[0])

	// Trailing parenthetical stripped for display, evidence carried through.
	assert.Equal(t, []any{"Introduced self", "Yes", evidence, ts}, values[10])
	assert.Equal(t, []any{"Washed hands", "No", "-", "-"}, values[11])
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{
			name:   "service account only",
			mutate: func(c *Config) { c.ServiceAccountPath = "/tmp/key.json" },
		},
		{
			name: "oauth credentials only",
			mutate: func(c *Config) {
				c.ClientID = "id"
				c.ClientSecret = "secret"
				c.RefreshToken = "token"
			},
		},
		{
			name:    "no auth method",
			mutate:  func(c *Config) {},
			wantErr: common.ErrMissingConfig,
		},
		{
			name: "both auth methods",
			mutate: func(c *Config) {
				c.ServiceAccountPath = "/tmp/key.json"
				c.ClientID = "id"
				c.ClientSecret = "secret"
				c.RefreshToken = "token"
			},
			wantErr: common.ErrInvalidConfig,
		},
		{
			name: "negative retry attempts",
			mutate: func(c *Config) {
				c.ServiceAccountPath = "/tmp/key.json"
				c.RetryAttempts = -1
			},
			wantErr: common.ErrInvalidConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
