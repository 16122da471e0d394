package transcript

import "time"

// DefaultHighlightTTL is how long a highlight stays visible when not cleared
// explicitly.
const DefaultHighlightTTL = 3 * time.Second

// Highlight is the current highlight selection over a transcript.
type Highlight struct {
	expiresAt time.Time
	LineIndex []int
	Active    bool
}

// Highlighter resolves checklist anchors against a parsed transcript and
// tracks the resulting highlight selection.
type Highlighter struct {
	now     func() time.Time
	lines   []Line
	current Highlight
	ttl     time.Duration
}

// NewHighlighter creates a highlighter over the given transcript lines.
func NewHighlighter(lines []Line) *Highlighter {
	return &Highlighter{
		lines: lines,
		ttl:   DefaultHighlightTTL,
		now:   time.Now,
	}
}

// LinkAndHighlight resolves target (and, when present, the end of the range)
// to transcript lines and makes them the active highlight. With no resolvable
// anchor it clears the highlight and returns false; it never panics on an
// unanchored transcript.
func (h *Highlighter) LinkAndHighlight(target string, targetEnd string) (Line, bool) {
	line, ok := Locate(h.lines, target)
	if !ok {
		h.Clear()
		return Line{}, false
	}

	indexes := []int{line.Index}
	if targetEnd != "" {
		if ranged := LinesInRange(h.lines, target, targetEnd); len(ranged) > 0 {
			indexes = ranged
		}
	}

	h.current = Highlight{
		Active:    true,
		LineIndex: indexes,
		expiresAt: h.now().Add(h.ttl),
	}
	return line, true
}

// Current returns the active highlight, expiring it first if its display
// duration has elapsed.
func (h *Highlighter) Current() Highlight {
	if h.current.Active && h.now().After(h.current.expiresAt) {
		h.Clear()
	}
	return h.current
}

// IsHighlighted reports whether the given line index is currently highlighted.
func (h *Highlighter) IsHighlighted(index int) bool {
	current := h.Current()
	if !current.Active {
		return false
	}
	for _, i := range current.LineIndex {
		if i == index {
			return true
		}
	}
	return false
}

// Clear removes the active highlight.
func (h *Highlighter) Clear() {
	h.current = Highlight{}
}
