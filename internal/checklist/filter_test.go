package checklist

import (
	"testing"

	"github.com/austrich-ai/austrich/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleChecklist() []model.ChecklistItem {
	return []model.ChecklistItem{
		{Item: "Washed hands", Status: model.StatusYes},
		{Item: "Asked about allergies", Status: model.StatusNo},
		{Item: "Checked pulse", Status: model.StatusNotSure},
		{Item: "Explained diagnosis", Status: model.StatusYes},
		{Item: "Asked about medications", Status: model.StatusNotSure},
	}
}

func TestFilter(t *testing.T) {
	items := sampleChecklist()

	tests := []struct {
		name        string
		mode        FilterMode
		wantIndexes []int
	}{
		{
			name:        "all is identity",
			mode:        FilterAll,
			wantIndexes: []int{0, 1, 2, 3, 4},
		},
		{
			name:        "completed keeps yes rows",
			mode:        FilterCompleted,
			wantIndexes: []int{0, 3},
		},
		{
			name:        "issues keeps no rows",
			mode:        FilterIssues,
			wantIndexes: []int{1},
		},
		{
			name:        "review keeps not-sure rows",
			mode:        FilterReview,
			wantIndexes: []int{2, 4},
		},
		{
			name:        "unknown mode falls back to all",
			mode:        FilterMode("bogus"),
			wantIndexes: []int{0, 1, 2, 3, 4},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := Filter(items, tt.mode)
			require.Len(t, rows, len(tt.wantIndexes))
			for i, row := range rows {
				assert.Equal(t, tt.wantIndexes[i], row.SourceIndex)
				assert.Equal(t, items[row.SourceIndex], row.Item)
			}
		})
	}
}

func TestFilter_SourceIndexSurvivesEdits(t *testing.T) {
	items := sampleChecklist()
	review := NewReviewState(items)

	// Resolve the second Not Sure item through its filtered position.
	rows := Filter(review.Items, FilterReview)
	require.Len(t, rows, 2)

	require.True(t, review.RequestStatusChange(rows[1].SourceIndex, model.StatusYes))
	review.ConfirmStatusChange()

	assert.Equal(t, model.StatusYes, review.Items[4].Status)
	// The other unresolved item is untouched.
	assert.Equal(t, model.StatusNotSure, review.Items[2].Status)
}

func TestFilter_UnrecognizedStatusNeedsReview(t *testing.T) {
	items := []model.ChecklistItem{
		{Item: "Washed hands", Status: model.StatusYes},
		{Item: "Checked pulse", Status: model.ChecklistStatus("Maybe")},
	}

	// An unrecognized verdict is unresolved, so the review filter must
	// surface it; hiding it would leave no way to fix it.
	rows := Filter(items, FilterReview)
	require.Len(t, rows, 1)
	assert.Equal(t, 1, rows[0].SourceIndex)

	assert.Empty(t, Filter(items, FilterIssues))
}

func TestFilter_Empty(t *testing.T) {
	assert.Empty(t, Filter(nil, FilterAll))
	assert.Empty(t, Filter([]model.ChecklistItem{}, FilterReview))
}
