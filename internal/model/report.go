// Package model defines the core domain models used throughout the application.
package model

// Report is the full OSCE evaluation record as returned by the backend.
//
// A report comes in one of two shapes: the current "narrative" shape, where
// Report holds free text with an embedded JSON checklist, and the older fully
// structured shape where the scored fields are populated directly. A record is
// never required to satisfy both shapes at once.
type Report struct {
	ID         string `json:"id"`
	CreatedAt  string `json:"created_at"`
	SourceFile string `json:"source_file,omitempty"`
	Transcript string `json:"transcript,omitempty"`

	// Report is the raw narrative text from the model. It usually contains a
	// JSON checklist array somewhere inside it.
	Report string `json:"report,omitempty"`

	// Legacy structured fields, kept for reports produced by the old pipeline.
	OverallScore          *int                  `json:"overall_score,omitempty"`
	ChecklistResults      []ChecklistItem       `json:"checklist_results,omitempty"`
	TimestampedFeedback   []TimestampedFeedback `json:"timestamped_feedback,omitempty"`
	ClinicalKnowledge     *CategoryScore        `json:"clinical_knowledge,omitempty"`
	Communication         *CategoryScore        `json:"communication,omitempty"`
	PhysicalExam          *CategoryScore        `json:"physical_exam,omitempty"`
	MissedCriticalActions []string              `json:"missed_critical_actions,omitempty"`
}

// IsNarrative reports whether this record uses the narrative shape.
func (r *Report) IsNarrative() bool {
	return r.Report != ""
}

// CategoryScore holds a sub-score with its feedback lists.
type CategoryScore struct {
	Score     *int     `json:"score,omitempty"`
	Strengths []string `json:"strengths,omitempty"`
	Concerns  []string `json:"concerns,omitempty"`
	Feedback  []string `json:"feedback,omitempty"`
}

// TimestampedFeedback is a single legacy feedback entry tied to a moment in
// the encounter.
type TimestampedFeedback struct {
	Timestamp string `json:"timestamp"`
	Comment   string `json:"comment"`
}

// ReportSummary is the lightweight listing form of a report.
type ReportSummary struct {
	ID           string `json:"id"`
	CreatedAt    string `json:"created_at,omitempty"`
	LastModified string `json:"last_modified,omitempty"`
}

// StorageObject describes one object in the backend's input or output bucket.
type StorageObject struct {
	Key          string `json:"key"`
	LastModified string `json:"last_modified"`
	Size         int64  `json:"size"`
}
