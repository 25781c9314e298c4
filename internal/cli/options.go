// Package cli provides shared option handling and I/O helpers for the
// csvtools commands.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"csvtools/internal/filter"
)

// FilterOptions contains the csvgrep matching and display options.
type FilterOptions struct {
	// Columns is the column selection expression (empty = all columns)
	Columns string

	// IgnoreCase enables case-insensitive matching
	IgnoreCase bool

	// Fixed treats the pattern as a literal string instead of a regex
	Fixed bool

	// Invert emits non-matching rows instead of matching ones
	Invert bool

	// LineNumbers prefixes each emitted row with its 1-based ordinal
	LineNumbers bool

	// WithHeader forces the first row to be emitted regardless of match
	WithHeader bool

	// NoHeader forces the first row to never be emitted
	NoHeader bool

	// Delimiter is the field separator (empty = auto-detect)
	Delimiter string
}

// AddFilterFlags adds the filtering flags to a cobra command.
func AddFilterFlags(cmd *cobra.Command, opts *FilterOptions) {
	flags := cmd.Flags()

	flags.StringVarP(&opts.Columns, "columns", "c", "",
		"columns to display, e.g. 1,3,5 or 1-3,6 (1-based)")
	flags.BoolVarP(&opts.IgnoreCase, "ignore-case", "i", false,
		"case-insensitive matching")
	flags.BoolVarP(&opts.Fixed, "fixed-strings", "F", false,
		"treat the pattern as a literal string, not a regex")
	flags.BoolVarP(&opts.Invert, "invert-match", "v", false,
		"output non-matching rows instead")
	flags.BoolVarP(&opts.LineNumbers, "line-number", "n", false,
		"prefix each row with its 1-based line number")
	flags.BoolVarP(&opts.WithHeader, "with-header", "H", false,
		"always output the first row, whether or not it matches")
	flags.BoolVar(&opts.NoHeader, "no-header", false,
		"never output the first row, whether or not it matches")
	flags.StringVarP(&opts.Delimiter, "delimiter", "d", "",
		"field separator: one character or tab/comma/semi/pipe/space (default: auto-detect)")
}

// HeaderMode resolves the header flag pair to a display policy.
// Supplying both flags is an error.
func (o *FilterOptions) HeaderMode() (filter.HeaderMode, error) {
	switch {
	case o.WithHeader && o.NoHeader:
		return 0, fmt.Errorf("--with-header and --no-header are mutually exclusive")
	case o.WithHeader:
		return filter.HeaderAlways, nil
	case o.NoHeader:
		return filter.HeaderNever, nil
	}
	return filter.HeaderAuto, nil
}

// ConvertOptions contains the options shared by the converter commands.
type ConvertOptions struct {
	// Output is the output file path (empty = derive from the input name)
	Output string

	// Delimiter is the field separator (empty = auto-detect)
	Delimiter string
}

// AddConvertFlags adds the converter flags to a cobra command.
func AddConvertFlags(cmd *cobra.Command, opts *ConvertOptions) {
	flags := cmd.Flags()

	flags.StringVarP(&opts.Output, "output", "o", "",
		"output file (default: derived from the input name)")
	flags.StringVarP(&opts.Delimiter, "delimiter", "d", "",
		"field separator: one character or tab/comma/semi/pipe/space (default: auto-detect)")
}

// ParseDelimiter resolves a --delimiter value to a separator rune.
// Empty means auto-detect and returns 0. The names tab, comma, semi,
// pipe and space are accepted alongside a literal single character.
func ParseDelimiter(s string) (rune, error) {
	switch s {
	case "":
		return 0, nil
	case "tab", `\t`:
		return '\t', nil
	case "comma":
		return ',', nil
	case "semi":
		return ';', nil
	case "pipe":
		return '|', nil
	case "space":
		return ' ', nil
	}

	runes := []rune(s)
	if len(runes) != 1 {
		return 0, fmt.Errorf("delimiter must be a single character, got %q", s)
	}
	return runes[0], nil
}
