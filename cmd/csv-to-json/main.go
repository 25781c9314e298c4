// Command csv-to-json converts a delimited file to JSON keyed by a
// chosen column.
//
// Usage:
//
//	csv-to-json [options] file output keycol
//
// Examples:
//
//	csv-to-json data.csv output.json "DEVICE NAME"
//	csv-to-json data.csv output.json 2
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"csvtools/internal/cli"
	"csvtools/internal/tabular"
)

var delimFlag string

var rootCmd = &cobra.Command{
	Use:   "csv-to-json [options] file output keycol",
	Short: "Convert a delimited file to JSON keyed by a column",
	Long: `This command converts a delimited file to a JSON object. The first row
is the header; each data row becomes an object of the non-key columns,
stored under its key-column value. The key column is given by header
name or 1-based index.

Rows with an empty key value are skipped with a warning, and a
duplicate key overwrites the earlier entry with a warning.

Examples:

  # Key the records by the DEVICE NAME column
  csv-to-json data.csv output.json "DEVICE NAME"

  # Key the records by the second column
  csv-to-json data.csv output.json 2`,
	Args:         cobra.ExactArgs(3),
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().StringVarP(&delimFlag, "delimiter", "d", "",
		"field separator: one character or tab/comma/semi/pipe/space (default: auto-detect)")
}

func run(cmd *cobra.Command, args []string) error {
	inputFile, outputFile, keyCol := args[0], args[1], args[2]

	delim, err := cli.ParseDelimiter(delimFlag)
	if err != nil {
		return err
	}

	f, err := os.Open(inputFile)
	if err != nil {
		return fmt.Errorf("opening input: %w", err)
	}
	defer f.Close()

	reader := tabular.NewReader(f, delim)

	headerRow, err := reader.Read()
	if err == io.EOF {
		return fmt.Errorf("input file is empty")
	}
	if err != nil {
		return fmt.Errorf("reading header: %w", err)
	}
	headers := headerRow.Fields

	keyIdx, err := findColumn(keyCol, headers)
	if err != nil {
		return err
	}

	result := make(map[string]map[string]string)
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("reading row: %w", err)
		}

		var key string
		if keyIdx < len(row.Fields) {
			key = row.Fields[keyIdx]
		}
		if key == "" {
			fmt.Fprintf(os.Stderr, "Warning: skipping row %d with empty key value\n", row.Line)
			continue
		}
		if _, ok := result[key]; ok {
			fmt.Fprintf(os.Stderr, "Warning: duplicate key %q, overwriting previous entry\n", key)
		}

		record := make(map[string]string, len(headers)-1)
		for i, name := range headers {
			if i == keyIdx {
				continue
			}
			var value string
			if i < len(row.Fields) {
				value = row.Fields[i]
			}
			record[name] = value
		}
		result[key] = record
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}

	out, err := cli.OpenOutput(outputFile)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := out.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	fmt.Printf("Converted %d rows from %s to %s using %q as the key column\n",
		len(result), inputFile, outputFile, headers[keyIdx])
	return nil
}

// findColumn resolves a key column given by header name or 1-based
// index to a 0-based index.
func findColumn(col string, headers []string) (int, error) {
	for i, h := range headers {
		if h == col {
			return i, nil
		}
	}

	if idx, err := strconv.Atoi(col); err == nil {
		if idx < 1 || idx > len(headers) {
			return 0, fmt.Errorf("column index %d out of range (1-%d)", idx, len(headers))
		}
		return idx - 1, nil
	}

	return 0, fmt.Errorf("column %q not found (available: %s)", col, strings.Join(headers, ", "))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
