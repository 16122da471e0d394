package model

import (
	"fmt"
	"strings"
)

// ChecklistStatus is the AI's verdict on a single checklist criterion.
type ChecklistStatus string

// Checklist status constants.
const (
	StatusYes     ChecklistStatus = "Yes"
	StatusNo      ChecklistStatus = "No"
	StatusNotSure ChecklistStatus = "Not Sure"
)

// Validate checks that the status is one of the three allowed verdicts.
func (s ChecklistStatus) Validate() error {
	switch s {
	case StatusYes, StatusNo, StatusNotSure:
		return nil
	default:
		return fmt.Errorf("invalid checklist status: %q", string(s))
	}
}

// IsTerminal reports whether the status can no longer be changed by review.
// Yes and No are final; Not Sure and any unrecognized status remain open to
// manual resolution.
func (s ChecklistStatus) IsTerminal() bool {
	return s == StatusYes || s == StatusNo
}

// ChecklistItem is one gradable criterion from the evaluation checklist.
type ChecklistItem struct {
	Item         string          `json:"item"`
	Status       ChecklistStatus `json:"status"`
	Evidence     *string         `json:"evidence,omitempty"`
	Timestamp    *string         `json:"timestamp,omitempty"`
	TimestampEnd *string         `json:"timestamp_end,omitempty"`
}

// DisplayLabel returns the item text with any trailing parenthetical
// annotation stripped, e.g. "Asked about onset (OPQRST)" -> "Asked about onset".
func (c ChecklistItem) DisplayLabel() string {
	label := c.Item
	if idx := strings.LastIndex(label, "("); idx > 0 && strings.HasSuffix(strings.TrimSpace(label), ")") {
		label = label[:idx]
	}
	return strings.TrimSpace(label)
}

// HasEvidence reports whether the item carries a supporting quote.
func (c ChecklistItem) HasEvidence() bool {
	return c.Evidence != nil && *c.Evidence != ""
}

// HasTimestamp reports whether the item carries a time anchor.
func (c ChecklistItem) HasTimestamp() bool {
	return c.Timestamp != nil && *c.Timestamp != ""
}
