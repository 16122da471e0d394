package checklist

import "github.com/austrich-ai/austrich/internal/model"

// ReviewState holds the session-local review of a checklist. Overrides only
// exist in memory: there is no backend save path for them, so HasChanges is
// the user's only warning that closing the session loses their edits.
type ReviewState struct {
	Items      []model.ChecklistItem
	Pending    *PendingChange
	HasChanges bool
}

// PendingChange is a staged override awaiting user confirmation.
type PendingChange struct {
	Index  int
	Target model.ChecklistStatus
}

// NewReviewState copies the parsed checklist into a fresh review session.
func NewReviewState(items []model.ChecklistItem) *ReviewState {
	owned := make([]model.ChecklistItem, len(items))
	copy(owned, items)
	return &ReviewState{Items: owned}
}

// RequestStatusChange stages an override of item i to target. Terminal
// verdicts cannot be changed; anything unresolved, including a status this
// client does not recognize, can. Returns true if a confirmation is now
// pending.
func (r *ReviewState) RequestStatusChange(i int, target model.ChecklistStatus) bool {
	if i < 0 || i >= len(r.Items) {
		return false
	}
	if r.Items[i].Status.IsTerminal() {
		return false
	}
	if target != model.StatusYes && target != model.StatusNo {
		return false
	}

	r.Pending = &PendingChange{Index: i, Target: target}
	return true
}

// ConfirmStatusChange applies the staged override. Evidence and timestamp
// metadata are untouched; only the status changes.
func (r *ReviewState) ConfirmStatusChange() {
	if r.Pending == nil {
		return
	}

	r.Items[r.Pending.Index].Status = r.Pending.Target
	r.Pending = nil
	r.HasChanges = true
}

// CancelStatusChange discards the staged override without mutation.
func (r *ReviewState) CancelStatusChange() {
	r.Pending = nil
}

// Stats recomputes summary statistics over the current (possibly overridden)
// items.
func (r *ReviewState) Stats() Stats {
	return ComputeStats(r.Items)
}
