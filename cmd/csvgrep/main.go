// Command csvgrep searches rows of a delimited file for a pattern.
//
// Usage:
//
//	csvgrep [options] pattern [file]
//
// Examples:
//
//	csvgrep -c 1,2,5 -i melbourne data.csv
//	csvgrep -n error logfile.csv
//	csvgrep -F "192.168.1.1" data.csv
//	csvgrep -v test data.csv
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"csvtools/internal/cli"
	"csvtools/internal/filter"
	"csvtools/internal/tabular"
)

var opts cli.FilterOptions

var rootCmd = &cobra.Command{
	Use:   "csvgrep [options] pattern [file]",
	Short: "Search rows of a delimited file for a pattern",
	Long: `This command filters rows of a delimited file, printing the rows whose
text matches a pattern. The pattern is a regular expression matched
anywhere in the raw row text; column selection changes what is
displayed, never what is searched. The field separator is auto-detected
from the first line (comma, tab, semicolon or pipe) unless given with
--delimiter.

An empty pattern matches every row, which is useful for projecting
columns from the whole file.

Exit status is 0 when at least one row was output, 1 when no row
matched, and 2 on a usage or input error.

Examples:

  # Find rows containing "melbourne" and show columns 1, 2 and 5
  csvgrep -c 1,2,5 -i melbourne data.csv

  # Find rows containing "error", with line numbers
  csvgrep -n error logfile.csv

  # Literal match, no regex interpretation
  csvgrep -F "192.168.1.1" data.csv

  # Show columns 1-3 and 6 from every row
  csvgrep -c 1-3,6 "" data.csv

  # Rows NOT containing "test", keeping the header row
  csvgrep -H -v test data.csv`,
	Args:          cobra.RangeArgs(1, 2),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	cli.AddFilterFlags(rootCmd, &opts)
}

func run(cmd *cobra.Command, args []string) error {
	pattern := args[0]
	var inputFile string
	if len(args) > 1 {
		inputFile = args[1]
	}

	headerMode, err := opts.HeaderMode()
	if err != nil {
		return err
	}

	delim, err := cli.ParseDelimiter(opts.Delimiter)
	if err != nil {
		return err
	}

	var columns filter.ColumnSpec
	if opts.Columns != "" {
		columns, err = filter.ParseColumns(opts.Columns)
		if err != nil {
			return err
		}
	}

	matcher, err := filter.NewMatcher(filter.MatchOptions{
		Pattern:    pattern,
		IgnoreCase: opts.IgnoreCase,
		Fixed:      opts.Fixed,
	})
	if err != nil {
		return err
	}

	in, err := cli.OpenInput(inputFile)
	if err != nil {
		return err
	}
	defer in.Close()

	pipe := &filter.Pipeline{
		Matcher:     matcher,
		Invert:      opts.Invert,
		Columns:     columns,
		Header:      headerMode,
		LineNumbers: opts.LineNumbers,
	}
	return pipe.Run(tabular.NewReader(in, delim), tabular.NewWriter(os.Stdout, delim))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, filter.ErrNoMatch) {
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
}
