// Package report resolves raw backend report records into a normalized form
// the view layer can render without re-checking optional fields.
package report

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/austrich-ai/austrich/internal/model"
)

// Kind discriminates the two report shapes the backend has produced over time.
type Kind int

const (
	// KindLegacy is the older fully structured shape (overall_score,
	// per-category scores, checklist_results).
	KindLegacy Kind = iota
	// KindNarrative is the current shape: free text with an embedded JSON
	// checklist array.
	KindNarrative
)

// Resolved is a report with its shape decided once at load time.
type Resolved struct {
	Report    *model.Report
	Checklist []model.ChecklistItem
	Narrative string
	Kind      Kind

	// ParseWarnings collects non-fatal problems found while extracting the
	// checklist, such as unrecognized status values. They are logged, never
	// shown as blocking errors.
	ParseWarnings []string
}

// Resolve classifies a raw report record and extracts its checklist.
// A malformed embedded checklist degrades to an empty slice; the narrative
// text and transcript remain usable.
func Resolve(r *model.Report) Resolved {
	if !r.IsNarrative() {
		return Resolved{
			Report:    r,
			Kind:      KindLegacy,
			Checklist: r.ChecklistResults,
		}
	}

	items, warnings, err := ExtractChecklist(r.Report)
	if err != nil {
		slog.Debug("failed to extract embedded checklist",
			"report_id", r.ID,
			"error", err)
		items = nil
	}

	return Resolved{
		Report:        r,
		Kind:          KindNarrative,
		Narrative:     r.Report,
		Checklist:     items,
		ParseWarnings: warnings,
	}
}

// ExtractChecklist parses the JSON checklist array embedded in the narrative
// report text. The model wraps the array in markdown fences or surrounds it
// with prose often enough that this has to scan for the array bounds rather
// than unmarshal the whole string.
func ExtractChecklist(narrative string) ([]model.ChecklistItem, []string, error) {
	payload := cleanMarkdownWrapper(narrative)

	items, err := decodeChecklistArray(payload)
	if err != nil {
		return nil, nil, err
	}

	// Unknown status values are a rendering edge case, not a failure: the
	// item is kept with the value the model provided.
	var warnings []string
	for i, item := range items {
		if err := item.Status.Validate(); err != nil {
			warnings = append(warnings, fmt.Sprintf("item %d: %v", i, err))
		}
	}

	return items, warnings, nil
}

// decodeChecklistArray locates the checklist array in text that may contain
// other bracketed content, such as inline [HH:MM:SS] timestamps in the prose.
// Each "[" is tried in turn; the decoder stops at the end of the JSON value,
// so trailing prose after the array is harmless.
func decodeChecklistArray(payload string) ([]model.ChecklistItem, error) {
	var lastErr error
	for start := strings.Index(payload, "["); start >= 0; {
		dec := json.NewDecoder(strings.NewReader(payload[start:]))
		var items []model.ChecklistItem
		err := dec.Decode(&items)
		if err == nil {
			return items, nil
		}
		lastErr = err

		next := strings.Index(payload[start+1:], "[")
		if next < 0 {
			break
		}
		start += 1 + next
	}

	if lastErr == nil {
		return nil, fmt.Errorf("no JSON array found in report text")
	}
	return nil, fmt.Errorf("failed to parse checklist JSON: %w", lastErr)
}

// cleanMarkdownWrapper strips a surrounding markdown code fence, if present.
func cleanMarkdownWrapper(content string) string {
	content = strings.TrimSpace(content)

	if idx := strings.Index(content, "```json"); idx >= 0 {
		content = content[idx+len("```json"):]
	} else if idx := strings.Index(content, "```"); idx >= 0 {
		content = content[idx+len("```"):]
	} else {
		return content
	}

	if idx := strings.Index(content, "```"); idx >= 0 {
		content = content[:idx]
	}

	return strings.TrimSpace(content)
}
