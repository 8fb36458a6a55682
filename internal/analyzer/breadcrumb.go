package analyzer

import "strings"

// Marker is the comment tag that marks a declaration as documented. Any
// line containing it, in whatever comment syntax the language uses,
// counts.
const Marker = "@codebase-summary:"

const (
	// markerLookback is how many lines above a declaration are searched
	markerLookback = 10
	// markerLookahead is how many lines below are searched, covering
	// docstring styles that document after the signature
	markerLookahead = 2
)

// hasMarkerNear reports whether the documentation marker appears within
// the detection window around line idx. The window is clamped to the
// file bounds.
func hasMarkerNear(lines []string, idx int) bool {
	start := idx - markerLookback
	if start < 0 {
		start = 0
	}
	end := idx + markerLookahead + 1
	if end > len(lines) {
		end = len(lines)
	}

	for i := start; i < end; i++ {
		if strings.Contains(lines[i], Marker) {
			return true
		}
	}
	return false
}
