package checklist

import "github.com/austrich-ai/austrich/internal/model"

// FilterMode selects which checklist rows to display.
type FilterMode string

// Filter mode constants.
const (
	FilterAll       FilterMode = "all"
	FilterCompleted FilterMode = "completed"
	FilterIssues    FilterMode = "issues"
	FilterReview    FilterMode = "review"
)

// Row pairs a checklist item with its index in the source slice, so an edit
// made through a filtered view maps back to the right item.
type Row struct {
	Item        model.ChecklistItem
	SourceIndex int
}

// Filter returns the rows matching mode, preserving source ordering. An
// unknown mode behaves like FilterAll.
func Filter(items []model.ChecklistItem, mode FilterMode) []Row {
	rows := make([]Row, 0, len(items))
	for i, item := range items {
		if !matches(item.Status, mode) {
			continue
		}
		rows = append(rows, Row{Item: item, SourceIndex: i})
	}
	return rows
}

func matches(status model.ChecklistStatus, mode FilterMode) bool {
	switch mode {
	case FilterCompleted:
		return status == model.StatusYes
	case FilterIssues:
		return status == model.StatusNo
	case FilterReview:
		// Unrecognized statuses are unresolved too; hiding them here would
		// leave them with no path to resolution.
		return !status.IsTerminal()
	default:
		return true
	}
}
