package tabular

import "strings"

// delimiterCandidates are checked in priority order; earlier candidates
// win ties.
var delimiterCandidates = []rune{',', '\t', ';', '|'}

// DetectDelimiter picks the field separator for a sample line. The
// candidate (comma, tab, semicolon, pipe) with the most occurrences
// wins; when none occurs the result is comma.
func DetectDelimiter(sample string) rune {
	best := ','
	bestCount := 0
	for _, d := range delimiterCandidates {
		if n := strings.Count(sample, string(d)); n > bestCount {
			best = d
			bestCount = n
		}
	}
	return best
}
