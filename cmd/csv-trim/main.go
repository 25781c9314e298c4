// Command csv-trim removes columns that are empty in every data row.
//
// Usage:
//
//	csv-trim [options] file
//
// Examples:
//
//	csv-trim data.csv
//	csv-trim -o cleaned.csv data.csv
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"csvtools/internal/cli"
	"csvtools/internal/tabular"
)

var opts cli.ConvertOptions

var rootCmd = &cobra.Command{
	Use:   "csv-trim [options] file",
	Short: "Remove columns that are empty in every data row",
	Long: `This command copies a delimited file, dropping every column whose value
is empty in all data rows. The first row is treated as the header: it
is excluded from the emptiness check but trimmed along with the rest.
The result is written next to the input with "-trimmed" appended to
the name (or to --output).

Examples:

  # data.csv -> data-trimmed.csv
  csv-trim data.csv

  # Choose the output file
  csv-trim -o cleaned.csv data.csv`,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	cli.AddConvertFlags(rootCmd, &opts)
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

	reader := tabular.NewReader(f, delim)
	rows, err := reader.ReadAll()
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	if len(rows) == 0 {
		return fmt.Errorf("input file is empty")
	}

	keep := columnsToKeep(rows)

	outputFile := opts.Output
	if outputFile == "" {
		ext := filepath.Ext(inputFile)
		outputFile = strings.TrimSuffix(inputFile, ext) + "-trimmed" + ext
	}

	out, err := cli.OpenOutput(outputFile)
	if err != nil {
		return err
	}
	defer out.Close()

	writer := tabular.NewWriter(out, reader.Delimiter())
	for _, row := range rows {
		trimmed := make([]string, 0, len(keep))
		for _, idx := range keep {
			if idx < len(row.Fields) {
				trimmed = append(trimmed, row.Fields[idx])
			}
		}
		if err := writer.WriteQuotedRow(trimmed...); err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
	}
	if err := writer.Flush(); err != nil {
		return fmt.Errorf("flushing output: %w", err)
	}

	original := len(rows[0].Fields)
	removed := original - len(keep)
	fmt.Printf("Trimmed %s -> %s: %d of %d columns kept, %d removed\n",
		inputFile, outputFile, len(keep), original, removed)
	if removed == 0 {
		fmt.Println("No empty columns found, all columns retained.")
	}
	return nil
}

// columnsToKeep returns the 0-based indices of the columns that have at
// least one non-empty value in the data rows. The header (first row)
// sets the column count and is not inspected. With fewer than two rows
// nothing can be judged empty, so every column is kept.
func columnsToKeep(rows []tabular.Row) []int {
	numCols := len(rows[0].Fields)

	empty := make(map[int]bool, numCols)
	if len(rows) >= 2 {
		for i := 0; i < numCols; i++ {
			empty[i] = true
		}
		for _, row := range rows[1:] {
			for i := 0; i < numCols && i < len(row.Fields); i++ {
				if row.Fields[i] != "" {
					delete(empty, i)
				}
			}
			if len(empty) == 0 {
				break
			}
		}
	}

	keep := make([]int, 0, numCols)
	for i := 0; i < numCols; i++ {
		if !empty[i] {
			keep = append(keep, i)
		}
	}
	return keep
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
