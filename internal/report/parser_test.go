package report

import (
	"testing"

	"github.com/austrich-ai/austrich/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve_LegacyShape(t *testing.T) {
	score := 72
	r := &model.Report{
		ID:           "legacy-1",
		OverallScore: &score,
		ChecklistResults: []model.ChecklistItem{
			{Item: "Washed hands", Status: model.StatusYes},
		},
	}

	resolved := Resolve(r)

	assert.Equal(t, KindLegacy, resolved.Kind)
	assert.Len(t, resolved.Checklist, 1)
	assert.Empty(t, resolved.Narrative)
}

func TestResolve_NarrativeShape(t *testing.T) {
	r := &model.Report{
		ID: "narrative-1",
		Report: "The student performed adequately.\n\n```json\n" +
			`[{"item": "Asked about onset (OPQRST)", "status": "Yes", "evidence": "When did it start?", "timestamp": "00:01:12"},` +
			`{"item": "Checked vitals", "status": "Not Sure", "evidence": null, "timestamp": null}]` +
			"\n```\n\nFurther feedback follows.",
	}

	resolved := Resolve(r)

	require.Equal(t, KindNarrative, resolved.Kind)
	require.Len(t, resolved.Checklist, 2)
	assert.Equal(t, model.StatusYes, resolved.Checklist[0].Status)
	assert.Equal(t, "00:01:12", *resolved.Checklist[0].Timestamp)
	assert.Equal(t, model.StatusNotSure, resolved.Checklist[1].Status)
	assert.Nil(t, resolved.Checklist[1].Evidence)
	assert.Empty(t, resolved.ParseWarnings)
}

func TestResolve_MalformedChecklistDegrades(t *testing.T) {
	r := &model.Report{
		ID:         "narrative-2",
		Transcript: "[00:00:01] Student: Hello.",
		Report:     "```json\n[{\"item\": \"broken\",]\n```",
	}

	resolved := Resolve(r)

	assert.Equal(t, KindNarrative, resolved.Kind)
	assert.Empty(t, resolved.Checklist)
	// The rest of the record stays usable.
	assert.NotEmpty(t, resolved.Report.Transcript)
	assert.NotEmpty(t, resolved.Narrative)
}

func TestExtractChecklist(t *testing.T) {
	tests := []struct {
		name         string
		narrative    string
		wantItems    int
		wantWarnings int
		wantErr      bool
	}{
		{
			name:      "bare array",
			narrative: `[{"item": "A", "status": "Yes"}]`,
			wantItems: 1,
		},
		{
			name:      "fenced array with prose",
			narrative: "Summary first.\n```json\n[{\"item\": \"A\", \"status\": \"No\"}]\n```\nTrailing notes.",
			wantItems: 1,
		},
		{
			name:      "unfenced array with surrounding prose",
			narrative: "Results: [{\"item\": \"A\", \"status\": \"Yes\"}] done.",
			wantItems: 1,
		},
		{
			name: "bracketed timestamp in leading prose",
			narrative: "At [00:03:10] the student introduced themselves.\n" +
				`[{"item": "Introduced self", "status": "Yes"}]` + "\nFinal remarks [00:09:55].",
			wantItems: 1,
		},
		{
			name: "bracketed timestamps on both sides of fenced array",
			narrative: "Strong opening at [00:00:12].\n```json\n" +
				`[{"item": "A", "status": "Yes"}, {"item": "B", "status": "No"}]` + "\n```",
			wantItems: 2,
		},
		{
			name:         "unknown status is kept and flagged",
			narrative:    `[{"item": "A", "status": "Partially"}]`,
			wantItems:    1,
			wantWarnings: 1,
		},
		{
			name:      "no array at all",
			narrative: "Just prose, no checklist here.",
			wantErr:   true,
		},
		{
			name:      "malformed json",
			narrative: `[{"item": }]`,
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items, warnings, err := ExtractChecklist(tt.narrative)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Len(t, items, tt.wantItems)
			assert.Len(t, warnings, tt.wantWarnings)
		})
	}
}

func TestExtractChecklist_KeepsUnknownStatusValue(t *testing.T) {
	items, warnings, err := ExtractChecklist(`[{"item": "A", "status": "Partially"}]`)
	require.NoError(t, err)
	require.Len(t, items, 1)
	// Displayed as provided, never coerced to a default.
	assert.Equal(t, model.ChecklistStatus("Partially"), items[0].Status)
	assert.Len(t, warnings, 1)
}
