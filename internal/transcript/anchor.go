package transcript

// Locate finds the transcript line for a checklist time anchor. It tries an
// exact timestamp match first; failing that, it picks the anchored line whose
// time is nearest in seconds, keeping the first-seen line on ties. It returns
// false when no anchored line exists or the target cannot be parsed.
func Locate(lines []Line, target string) (Line, bool) {
	for _, line := range lines {
		if line.HasAnchor() && line.Timestamp == target {
			return line, true
		}
	}

	targetSecs, ok := Seconds(target)
	if !ok {
		return Line{}, false
	}

	var best Line
	bestDiff := -1
	for _, line := range lines {
		if !line.HasAnchor() {
			continue
		}
		secs, ok := Seconds(line.Timestamp)
		if !ok {
			continue
		}

		diff := targetSecs - secs
		if diff < 0 {
			diff = -diff
		}
		if bestDiff < 0 || diff < bestDiff {
			best = line
			bestDiff = diff
		}
	}

	if bestDiff < 0 {
		return Line{}, false
	}
	return best, true
}

// LinesInRange returns the indexes of anchored lines whose timestamp falls
// within [start, end] inclusive. Comparison is lexicographic, which is
// correct for the uniformly zero-padded timestamps the transcription
// pipeline emits; mixed padding is out of contract.
func LinesInRange(lines []Line, start, end string) []int {
	var indexes []int
	for _, line := range lines {
		if !line.HasAnchor() {
			continue
		}
		if line.Timestamp >= start && line.Timestamp <= end {
			indexes = append(indexes, line.Index)
		}
	}
	return indexes
}
