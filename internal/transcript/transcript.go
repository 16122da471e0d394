// Package transcript parses timestamped encounter transcripts and resolves
// checklist time anchors to transcript lines.
package transcript

import (
	"regexp"
	"strconv"
	"strings"
)

// timestampPattern matches the first bracketed [HH:MM:SS] or [MM:SS] token in
// a line, as emitted by the transcription pipeline.
var timestampPattern = regexp.MustCompile(`\[(\d{1,2}:\d{2}(?::\d{2})?)\]`)

// Line is one transcript line with its optional time anchor.
type Line struct {
	Text      string
	Speaker   string
	Timestamp string // empty when the line has no anchor
	Index     int
}

// HasAnchor reports whether the line carries a timestamp.
func (l Line) HasAnchor() bool {
	return l.Timestamp != ""
}

// Parse splits raw transcript text into lines and extracts the first
// bracketed timestamp and speaker label of each. Lines without a bracketed
// timestamp are kept but have no anchor.
func Parse(raw string) []Line {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	rawLines := strings.Split(raw, "\n")
	lines := make([]Line, 0, len(rawLines))
	for i, text := range rawLines {
		line := Line{Text: text, Index: i}

		if m := timestampPattern.FindStringSubmatch(text); m != nil {
			line.Timestamp = m[1]
		}

		// Speaker labels follow the timestamp: "[00:00:05] Student: Hello."
		rest := timestampPattern.ReplaceAllString(text, "")
		if colon := strings.Index(rest, ":"); colon > 0 {
			speaker := strings.TrimSpace(rest[:colon])
			if speaker != "" && !strings.ContainsAny(speaker, "[]") && len(speaker) <= 24 {
				line.Speaker = speaker
			}
		}

		lines = append(lines, line)
	}

	return lines
}

// Seconds converts "HH:MM:SS" or "MM:SS" to a scalar seconds value. It
// returns false for anything that does not look like a timestamp.
func Seconds(ts string) (int, bool) {
	parts := strings.Split(strings.TrimSpace(ts), ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, false
	}

	total := 0
	for _, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 {
			return 0, false
		}
		total = total*60 + n
	}
	return total, true
}
