package viewmodel

import "github.com/austrich-ai/austrich/internal/transcript"

// TranscriptView represents the transcript pane.
type TranscriptView struct {
	Lines  []TranscriptLine
	Offset int
}

// TranscriptLine is one rendered transcript entry.
type TranscriptLine struct {
	Text        string
	Speaker     string
	Timestamp   string
	Index       int
	Highlighted bool
}

// BuildTranscriptView projects parsed transcript lines plus the active
// highlight into display lines. Offset is the first visible line, scrolled so
// the first highlighted line is on screen when a highlight is active.
func BuildTranscriptView(lines []transcript.Line, h *transcript.Highlighter, offset, height int) TranscriptView {
	out := make([]TranscriptLine, 0, len(lines))
	firstHighlight := -1
	for _, line := range lines {
		highlighted := h != nil && h.IsHighlighted(line.Index)
		if highlighted && firstHighlight < 0 {
			firstHighlight = len(out)
		}
		out = append(out, TranscriptLine{
			Text:        line.Text,
			Speaker:     line.Speaker,
			Timestamp:   line.Timestamp,
			Index:       line.Index,
			Highlighted: highlighted,
		})
	}

	if firstHighlight >= 0 && height > 0 {
		if firstHighlight < offset || firstHighlight >= offset+height {
			offset = firstHighlight - height/3
		}
	}
	if maxOffset := len(out) - height; height > 0 && offset > maxOffset {
		offset = maxOffset
	}
	if offset < 0 {
		offset = 0
	}

	return TranscriptView{Lines: out, Offset: offset}
}

// Visible returns the window of lines starting at Offset, at most height
// entries.
func (tv TranscriptView) Visible(height int) []TranscriptLine {
	if height <= 0 || tv.Offset >= len(tv.Lines) {
		return nil
	}
	end := tv.Offset + height
	if end > len(tv.Lines) {
		end = len(tv.Lines)
	}
	return tv.Lines[tv.Offset:end]
}

// HasHighlight reports whether any line is currently highlighted.
func (tv TranscriptView) HasHighlight() bool {
	for _, line := range tv.Lines {
		if line.Highlighted {
			return true
		}
	}
	return false
}
