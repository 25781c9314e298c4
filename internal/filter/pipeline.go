// Package filter implements the row filtering engine: column selection,
// pattern matching, header display policy, and the streaming pipeline
// that ties them together.
package filter

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"csvtools/internal/tabular"
)

// ErrNoMatch reports that the input was fully processed but no row was
// emitted. Callers map it to the conventional grep exit status 1.
var ErrNoMatch = errors.New("no rows matched")

// HeaderMode controls whether the first input row is shown independent
// of whether it matches the pattern.
type HeaderMode int

const (
	// HeaderAuto treats the first row like any other: shown only when
	// it matches.
	HeaderAuto HeaderMode = iota

	// HeaderAlways shows the first row regardless of the pattern.
	HeaderAlways

	// HeaderNever suppresses the first row regardless of the pattern.
	HeaderNever
)

// Pipeline streams rows through match, header and projection policy.
// One row is fully handled before the next is read; the only state
// carried between rows is whether the first row has been seen.
type Pipeline struct {
	Matcher Matcher

	// Invert emits non-matching rows instead of matching ones. The
	// header override applies after inversion.
	Invert bool

	Columns ColumnSpec
	Header  HeaderMode

	// LineNumbers prefixes each emitted row with "N:" where N is the
	// row's 1-based position in the input, not in the output.
	LineNumbers bool
}

// Run filters every row from r to w. Matching is evaluated against the
// raw line text; column selection affects only what is displayed. Run
// returns ErrNoMatch when the input (including an empty input) produced
// no output rows.
func (p *Pipeline) Run(r *tabular.Reader, w *tabular.Writer) error {
	emitted := 0
	first := true

	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("reading input: %w", err)
		}

		emit := p.Matcher.Match(row.Raw) != p.Invert
		if first {
			switch p.Header {
			case HeaderAlways:
				emit = true
			case HeaderNever:
				emit = false
			}
			first = false
		}
		if !emit {
			continue
		}

		line := tabular.Join(p.Columns.Project(row.Fields), r.Delimiter())
		if p.LineNumbers {
			line = strconv.Itoa(row.Line) + ":" + line
		}
		if err := w.WriteLine(line); err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
		emitted++
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("flushing output: %w", err)
	}
	if emitted == 0 {
		return ErrNoMatch
	}
	return nil
}
