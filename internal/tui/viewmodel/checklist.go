package viewmodel

import (
	"github.com/austrich-ai/austrich/internal/checklist"
)

// ChecklistView represents the checklist pane.
type ChecklistView struct {
	Rows       []ChecklistRow
	Filter     string
	Stats      StatsLine
	Cursor     int
	HasChanges bool
}

// ChecklistRow is one displayable checklist entry. SourceIndex points back at
// the unfiltered item so overrides land on the right verdict.
type ChecklistRow struct {
	Label        string
	Status       string
	Evidence     string
	Timestamp    string
	TimestampEnd string
	SourceIndex  int
	Selected     bool
	Overridable  bool
}

// StatsLine is the summary strip above the checklist.
type StatsLine struct {
	Yes          int
	No           int
	NotSure      int
	Total        int
	ScorePercent int
}

// ConfirmView describes a staged override awaiting the user's decision.
type ConfirmView struct {
	ItemLabel string
	From      string
	To        string
}

// BuildChecklistView projects the review session through the active filter
// into display rows. The cursor is clamped into the filtered range.
func BuildChecklistView(state *checklist.ReviewState, mode checklist.FilterMode, cursor int) ChecklistView {
	filtered := checklist.Filter(state.Items, mode)

	if cursor < 0 {
		cursor = 0
	}
	if cursor >= len(filtered) && len(filtered) > 0 {
		cursor = len(filtered) - 1
	}

	rows := make([]ChecklistRow, 0, len(filtered))
	for i, row := range filtered {
		rows = append(rows, buildRow(row, i == cursor))
	}

	stats := state.Stats()
	return ChecklistView{
		Rows:   rows,
		Filter: string(mode),
		Cursor: cursor,
		Stats: StatsLine{
			Yes:          stats.Yes,
			No:           stats.No,
			NotSure:      stats.NotSure,
			Total:        stats.Total(),
			ScorePercent: stats.ScorePercent,
		},
		HasChanges: state.HasChanges,
	}
}

func buildRow(row checklist.Row, selected bool) ChecklistRow {
	r := ChecklistRow{
		Label:       row.Item.DisplayLabel(),
		Status:      string(row.Item.Status),
		SourceIndex: row.SourceIndex,
		Selected:    selected,
		Overridable: !row.Item.Status.IsTerminal(),
	}
	if row.Item.HasEvidence() {
		r.Evidence = *row.Item.Evidence
	}
	if row.Item.HasTimestamp() {
		r.Timestamp = *row.Item.Timestamp
	}
	if row.Item.TimestampEnd != nil {
		r.TimestampEnd = *row.Item.TimestampEnd
	}
	return r
}

// BuildConfirmView describes the staged change in state, nil when nothing is
// pending.
func BuildConfirmView(state *checklist.ReviewState) *ConfirmView {
	if state.Pending == nil {
		return nil
	}
	item := state.Items[state.Pending.Index]
	return &ConfirmView{
		ItemLabel: item.DisplayLabel(),
		From:      string(item.Status),
		To:        string(state.Pending.Target),
	}
}

// SelectedRow returns the row under the cursor, false when the view is empty.
func (cv ChecklistView) SelectedRow() (ChecklistRow, bool) {
	if len(cv.Rows) == 0 || cv.Cursor < 0 || cv.Cursor >= len(cv.Rows) {
		return ChecklistRow{}, false
	}
	return cv.Rows[cv.Cursor], true
}

// NextFilter cycles through the filter modes in display order.
func NextFilter(mode checklist.FilterMode) checklist.FilterMode {
	switch mode {
	case checklist.FilterAll:
		return checklist.FilterCompleted
	case checklist.FilterCompleted:
		return checklist.FilterIssues
	case checklist.FilterIssues:
		return checklist.FilterReview
	default:
		return checklist.FilterAll
	}
}
