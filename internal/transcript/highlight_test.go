package transcript

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHighlighter(raw string) (*Highlighter, *time.Time) {
	h := NewHighlighter(Parse(raw))
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	h.now = func() time.Time { return now }
	return h, &now
}

func TestHighlighter_SingleLine(t *testing.T) {
	h, _ := newTestHighlighter("[00:01:00] A: a\n[00:05:00] B: b")

	line, ok := h.LinkAndHighlight("00:05:00", "")
	require.True(t, ok)
	assert.Equal(t, 1, line.Index)

	assert.True(t, h.IsHighlighted(1))
	assert.False(t, h.IsHighlighted(0))
}

func TestHighlighter_Range(t *testing.T) {
	h, _ := newTestHighlighter("[00:01:00] A: a\n[00:01:30] B: b\n[00:02:30] C: c\n[00:03:00] D: d")

	_, ok := h.LinkAndHighlight("00:01:30", "00:02:30")
	require.True(t, ok)

	assert.False(t, h.IsHighlighted(0))
	assert.True(t, h.IsHighlighted(1))
	assert.True(t, h.IsHighlighted(2))
	assert.False(t, h.IsHighlighted(3))
}

func TestHighlighter_NoAnchorsClearsQuietly(t *testing.T) {
	h, _ := newTestHighlighter("no anchors at all")

	_, ok := h.LinkAndHighlight("00:01:00", "")
	assert.False(t, ok)
	assert.False(t, h.Current().Active)
}

func TestHighlighter_ExpiresAfterTTL(t *testing.T) {
	h, now := newTestHighlighter("[00:01:00] A: a")

	_, ok := h.LinkAndHighlight("00:01:00", "")
	require.True(t, ok)
	assert.True(t, h.Current().Active)

	*now = now.Add(DefaultHighlightTTL + time.Millisecond)
	assert.False(t, h.Current().Active)
}

func TestHighlighter_ExplicitClear(t *testing.T) {
	h, _ := newTestHighlighter("[00:01:00] A: a")

	_, ok := h.LinkAndHighlight("00:01:00", "")
	require.True(t, ok)

	h.Clear()
	assert.False(t, h.Current().Active)
	assert.False(t, h.IsHighlighted(0))
}
