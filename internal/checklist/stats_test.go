package checklist

import (
	"testing"

	"github.com/austrich-ai/austrich/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestComputeStats(t *testing.T) {
	tests := []struct {
		name  string
		items []model.ChecklistItem
		want  Stats
	}{
		{
			name:  "empty checklist has zero score",
			items: nil,
			want:  Stats{},
		},
		{
			name: "all yes",
			items: []model.ChecklistItem{
				{Item: "A", Status: model.StatusYes},
				{Item: "B", Status: model.StatusYes},
			},
			want: Stats{Yes: 2, ScorePercent: 100},
		},
		{
			name: "mixed verdicts round correctly",
			items: []model.ChecklistItem{
				{Item: "A", Status: model.StatusYes},
				{Item: "B", Status: model.StatusNo},
				{Item: "C", Status: model.StatusNotSure},
			},
			want: Stats{Yes: 1, No: 1, NotSure: 1, ScorePercent: 33},
		},
		{
			name: "two thirds rounds up",
			items: []model.ChecklistItem{
				{Item: "A", Status: model.StatusYes},
				{Item: "B", Status: model.StatusYes},
				{Item: "C", Status: model.StatusNo},
			},
			want: Stats{Yes: 2, No: 1, ScorePercent: 67},
		},
		{
			name: "unknown status counts as unresolved",
			items: []model.ChecklistItem{
				{Item: "A", Status: model.ChecklistStatus("Partially")},
			},
			want: Stats{NotSure: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeStats(tt.items)
			assert.Equal(t, tt.want, got)
			// Counts always partition the checklist.
			assert.Equal(t, len(tt.items), got.Total())
		})
	}
}
