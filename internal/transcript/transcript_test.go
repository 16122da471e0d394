package transcript

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleTranscript = `[00:00:03] Student: Hello, I'm a third-year medical student.
[00:00:10] Patient: Hi, nice to meet you.
(recording noise)
[00:01:00] Student: When did the pain start?
[00:05:00] Patient: About two days ago.
[00:10:00] Student: Let me examine your abdomen.`

func TestParse(t *testing.T) {
	lines := Parse(sampleTranscript)
	require.Len(t, lines, 6)

	assert.Equal(t, "00:00:03", lines[0].Timestamp)
	assert.Equal(t, "Student", lines[0].Speaker)
	assert.Equal(t, "Patient", lines[1].Speaker)

	// Lines without a bracketed timestamp are kept but unanchored.
	assert.False(t, lines[2].HasAnchor())
	assert.Equal(t, 2, lines[2].Index)

	assert.Equal(t, "00:10:00", lines[5].Timestamp)
}

func TestParse_Empty(t *testing.T) {
	assert.Nil(t, Parse(""))
	assert.Nil(t, Parse("   \n  "))
}

func TestSeconds(t *testing.T) {
	tests := []struct {
		name   string
		ts     string
		want   int
		wantOK bool
	}{
		{name: "full form", ts: "01:02:03", want: 3723, wantOK: true},
		{name: "missing hour segment", ts: "04:40", want: 280, wantOK: true},
		{name: "zero", ts: "00:00:00", want: 0, wantOK: true},
		{name: "unpadded hour", ts: "1:05:00", want: 3900, wantOK: true},
		{name: "single segment rejected", ts: "42", wantOK: false},
		{name: "not a timestamp", ts: "abc", wantOK: false},
		{name: "empty", ts: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Seconds(tt.ts)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestLocate_ExactMatch(t *testing.T) {
	lines := Parse(sampleTranscript)

	line, ok := Locate(lines, "00:01:00")
	require.True(t, ok)
	assert.Equal(t, 3, line.Index)
}

func TestLocate_NearestMatch(t *testing.T) {
	lines := Parse("[00:01:00] A: one\n[00:05:00] B: five\n[00:10:00] C: ten")

	line, ok := Locate(lines, "00:04:40")
	require.True(t, ok)
	assert.Equal(t, "00:05:00", line.Timestamp)
}

func TestLocate_TieBreaksFirstSeen(t *testing.T) {
	lines := Parse("[00:01:00] A: one\n[00:03:00] B: three")

	// 00:02:00 is equidistant; the first-seen anchor wins.
	line, ok := Locate(lines, "00:02:00")
	require.True(t, ok)
	assert.Equal(t, "00:01:00", line.Timestamp)
}

func TestLocate_NoAnchors(t *testing.T) {
	lines := Parse("no timestamps here\nnor here")

	_, ok := Locate(lines, "00:01:00")
	assert.False(t, ok)
}

func TestLocate_ToleratesShortTarget(t *testing.T) {
	lines := Parse("[00:04:30] A: text")

	// An "MM:SS" target still resolves by seconds value.
	line, ok := Locate(lines, "04:40")
	require.True(t, ok)
	assert.Equal(t, "00:04:30", line.Timestamp)
}

func TestLinesInRange(t *testing.T) {
	lines := Parse("[00:01:00] A: a\n[00:01:30] B: b\nunanchored\n[00:02:30] C: c\n[00:03:00] D: d")

	indexes := LinesInRange(lines, "00:01:30", "00:02:30")
	assert.Equal(t, []int{1, 3}, indexes)
}

func TestLinesInRange_InclusiveBounds(t *testing.T) {
	lines := Parse("[00:01:00] A: a\n[00:02:00] B: b\n[00:03:00] C: c")

	indexes := LinesInRange(lines, "00:01:00", "00:03:00")
	assert.Equal(t, []int{0, 1, 2}, indexes)
}
