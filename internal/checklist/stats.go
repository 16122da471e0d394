// Package checklist provides the view-model for checklist rendering and
// review: summary statistics, filtered views, the manual-override state
// machine, and export rows.
package checklist

import (
	"math"

	"github.com/austrich-ai/austrich/internal/model"
)

// Stats summarizes a checklist by verdict.
type Stats struct {
	Yes          int
	No           int
	NotSure      int
	ScorePercent int
}

// Total returns the number of counted items.
func (s Stats) Total() int {
	return s.Yes + s.No + s.NotSure
}

// ComputeStats counts items by status. ScorePercent is the rounded share of
// Yes verdicts, and 0 for an empty checklist.
func ComputeStats(items []model.ChecklistItem) Stats {
	var stats Stats
	for _, item := range items {
		switch item.Status {
		case model.StatusYes:
			stats.Yes++
		case model.StatusNo:
			stats.No++
		default:
			// Unrecognized statuses count as unresolved.
			stats.NotSure++
		}
	}

	total := len(items)
	if total > 0 {
		stats.ScorePercent = int(math.Round(float64(stats.Yes) / float64(total) * 100))
	}

	return stats
}
