package filter

import (
	"fmt"
	"strconv"
	"strings"
)

// ColumnSpec is an ordered list of 1-based column indices to display.
// An empty spec selects every column in original order. Indices may
// repeat and need not be sorted.
type ColumnSpec []int

// ParseColumns parses a column selection expression such as "1,3,5" or
// "1-3,6". Tokens expand left to right exactly as written, so "3,1-2"
// yields [3 1 2]; no sorting or deduplication is applied.
func ParseColumns(spec string) (ColumnSpec, error) {
	var cols ColumnSpec
	for _, tok := range strings.Split(spec, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			return nil, fmt.Errorf("empty token in column spec %q", spec)
		}

		lo, hi, isRange := strings.Cut(tok, "-")
		if !isRange {
			n, err := parseColumnIndex(tok)
			if err != nil {
				return nil, err
			}
			cols = append(cols, n)
			continue
		}

		start, err := parseColumnIndex(lo)
		if err != nil {
			return nil, err
		}
		end, err := parseColumnIndex(hi)
		if err != nil {
			return nil, err
		}
		if end < start {
			return nil, fmt.Errorf("invalid column range %q: end before start", tok)
		}
		for n := start; n <= end; n++ {
			cols = append(cols, n)
		}
	}
	return cols, nil
}

func parseColumnIndex(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid column %q: not a number", s)
	}
	if n < 1 {
		return 0, fmt.Errorf("invalid column %d: indices are 1-based", n)
	}
	return n, nil
}

// Project selects the spec's columns from fields, in spec order. An
// index past the end of the row yields an empty string rather than an
// error. An empty spec returns fields unchanged.
func (c ColumnSpec) Project(fields []string) []string {
	if len(c) == 0 {
		return fields
	}
	out := make([]string, len(c))
	for i, idx := range c {
		if idx-1 < len(fields) {
			out[i] = fields[idx-1]
		}
	}
	return out
}
