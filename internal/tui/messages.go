package tui

import (
	"github.com/austrich-ai/austrich/internal/report"
)

// Data loading messages.
type reportLoadedMsg struct {
	err      error
	resolved *report.Resolved
	fromAPI  bool
}

// Async operation messages.
type exportDoneMsg struct {
	err  error
	dest string
	rows int
}

// highlightExpiredMsg fires after the highlight TTL to trigger a redraw so an
// expired highlight disappears without waiting for the next key press.
type highlightExpiredMsg struct{}

