// Command csv-to-md converts a delimited file to a Markdown pipe table.
//
// Usage:
//
//	csv-to-md [options] file
//
// Examples:
//
//	csv-to-md data.csv
//	csv-to-md --nohead -o report.md data.csv
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"csvtools/internal/cli"
	"csvtools/internal/tabular"
)

var (
	opts   cli.ConvertOptions
	noHead bool
)

var rootCmd = &cobra.Command{
	Use:   "csv-to-md [options] file",
	Short: "Convert a delimited file to a Markdown pipe table",
	Long: `This command renders a delimited file as a Markdown pipe table and
writes it next to the input with a .md extension (or to --output).
Ragged rows are padded to the widest row. Without a header row, column
headings C1..Cn are synthesized.

Examples:

  # Convert data.csv to data.md, first row as the table header
  csv-to-md data.csv

  # Input has no header row; write to a chosen file
  csv-to-md --nohead -o report.md data.csv`,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	cli.AddConvertFlags(rootCmd, &opts)
	rootCmd.Flags().BoolVar(&noHead, "nohead", false,
		"input file has no header row (synthesize C1..Cn)")
}

func run(cmd *cobra.Command, args []string) error {
	inputFile := args[0]

	delim, err := cli.ParseDelimiter(opts.Delimiter)
	if err != nil {
		return err
	}

	f, err := os.Open(inputFile)
	if err != nil {
		return fmt.Errorf("opening input: %w", err)
	}
	defer f.Close()

	rows, err := tabular.NewReader(f, delim).ReadAll()
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	table, numCols, numRows := renderTable(rows)

	outputFile := opts.Output
	if outputFile == "" {
		outputFile = strings.TrimSuffix(inputFile, filepath.Ext(inputFile)) + ".md"
	}

	out, err := cli.OpenOutput(outputFile)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.WriteString(out, table); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	fmt.Printf("Wrote %s (%d columns, %d data rows)\n", outputFile, numCols, numRows)
	return nil
}

// renderTable builds the pipe table and reports the column and data-row
// counts. An empty input yields an empty table.
func renderTable(rows []tabular.Row) (string, int, int) {
	if len(rows) == 0 {
		return "", 0, 0
	}

	numCols := 0
	for _, row := range rows {
		if len(row.Fields) > numCols {
			numCols = len(row.Fields)
		}
	}

	// Pad ragged rows to a uniform width
	cells := make([][]string, len(rows))
	for i, row := range rows {
		padded := make([]string, numCols)
		copy(padded, row.Fields)
		cells[i] = padded
	}

	var header []string
	var data [][]string
	if noHead {
		header = make([]string, numCols)
		for i := range header {
			header[i] = fmt.Sprintf("C%d", i+1)
		}
		data = cells
	} else {
		header = cells[0]
		data = cells[1:]
	}

	var b strings.Builder
	writeRow := func(fields []string) {
		b.WriteString("| ")
		b.WriteString(strings.Join(fields, " | "))
		b.WriteString(" |\n")
	}

	writeRow(header)
	separator := make([]string, numCols)
	for i := range separator {
		separator[i] = "---"
	}
	writeRow(separator)
	for _, row := range data {
		writeRow(row)
	}

	return b.String(), numCols, len(data)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
