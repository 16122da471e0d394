package checklist

import (
	"testing"

	"github.com/austrich-ai/austrich/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReviewState_RequestStatusChange(t *testing.T) {
	evidence := "I'm going to listen to your chest now."
	timestamp := "00:03:45"

	tests := []struct {
		name        string
		status      model.ChecklistStatus
		target      model.ChecklistStatus
		wantPending bool
	}{
		{
			name:        "not sure can be resolved to yes",
			status:      model.StatusNotSure,
			target:      model.StatusYes,
			wantPending: true,
		},
		{
			name:        "not sure can be resolved to no",
			status:      model.StatusNotSure,
			target:      model.StatusNo,
			wantPending: true,
		},
		{
			name:        "yes is terminal",
			status:      model.StatusYes,
			target:      model.StatusNo,
			wantPending: false,
		},
		{
			name:        "no is terminal",
			status:      model.StatusNo,
			target:      model.StatusYes,
			wantPending: false,
		},
		{
			name:        "cannot resolve to not sure",
			status:      model.StatusNotSure,
			target:      model.StatusNotSure,
			wantPending: false,
		},
		{
			name:        "unrecognized status can be resolved",
			status:      model.ChecklistStatus("Partial"),
			target:      model.StatusYes,
			wantPending: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			review := NewReviewState([]model.ChecklistItem{
				{Item: "Auscultated lungs", Status: tt.status, Evidence: &evidence, Timestamp: &timestamp},
			})

			opened := review.RequestStatusChange(0, tt.target)

			assert.Equal(t, tt.wantPending, opened)
			if tt.wantPending {
				require.NotNil(t, review.Pending)
				assert.Equal(t, 0, review.Pending.Index)
				assert.Equal(t, tt.target, review.Pending.Target)
			} else {
				assert.Nil(t, review.Pending)
			}
			// Requesting never mutates the item.
			assert.Equal(t, tt.status, review.Items[0].Status)
			assert.False(t, review.HasChanges)
		})
	}
}

func TestReviewState_RequestOutOfRange(t *testing.T) {
	review := NewReviewState([]model.ChecklistItem{
		{Item: "A", Status: model.StatusNotSure},
	})

	assert.False(t, review.RequestStatusChange(-1, model.StatusYes))
	assert.False(t, review.RequestStatusChange(1, model.StatusYes))
	assert.Nil(t, review.Pending)
}

func TestReviewState_ConfirmAppliesOverride(t *testing.T) {
	evidence := "Any allergies to medications?"
	timestamp := "00:02:10"
	review := NewReviewState([]model.ChecklistItem{
		{Item: "Washed hands", Status: model.StatusYes},
		{Item: "Asked about allergies", Status: model.StatusNotSure, Evidence: &evidence, Timestamp: &timestamp},
	})

	require.True(t, review.RequestStatusChange(1, model.StatusYes))
	review.ConfirmStatusChange()

	assert.Equal(t, model.StatusYes, review.Items[1].Status)
	// Metadata survives the override.
	assert.Equal(t, evidence, *review.Items[1].Evidence)
	assert.Equal(t, timestamp, *review.Items[1].Timestamp)
	assert.True(t, review.HasChanges)
	assert.Nil(t, review.Pending)
}

func TestReviewState_CancelDiscardsStage(t *testing.T) {
	review := NewReviewState([]model.ChecklistItem{
		{Item: "Checked pulse", Status: model.StatusNotSure},
	})

	require.True(t, review.RequestStatusChange(0, model.StatusNo))
	review.CancelStatusChange()

	assert.Equal(t, model.StatusNotSure, review.Items[0].Status)
	assert.False(t, review.HasChanges)
	assert.Nil(t, review.Pending)
}

func TestReviewState_ConfirmWithoutPendingIsNoOp(t *testing.T) {
	review := NewReviewState([]model.ChecklistItem{
		{Item: "A", Status: model.StatusNotSure},
	})

	review.ConfirmStatusChange()

	assert.Equal(t, model.StatusNotSure, review.Items[0].Status)
	assert.False(t, review.HasChanges)
}

func TestReviewState_DoesNotAliasCallerSlice(t *testing.T) {
	items := []model.ChecklistItem{
		{Item: "A", Status: model.StatusNotSure},
	}
	review := NewReviewState(items)

	require.True(t, review.RequestStatusChange(0, model.StatusYes))
	review.ConfirmStatusChange()

	assert.Equal(t, model.StatusNotSure, items[0].Status)
	assert.Equal(t, model.StatusYes, review.Items[0].Status)
}

func TestReviewState_StatsReflectOverrides(t *testing.T) {
	review := NewReviewState(sampleChecklist())
	assert.Equal(t, Stats{Yes: 2, No: 1, NotSure: 2, ScorePercent: 40}, review.Stats())

	require.True(t, review.RequestStatusChange(2, model.StatusYes))
	review.ConfirmStatusChange()

	assert.Equal(t, Stats{Yes: 3, No: 1, NotSure: 1, ScorePercent: 60}, review.Stats())
}
