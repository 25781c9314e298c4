// Package tabular provides streaming row I/O for delimited text files:
// quote-aware field splitting, delimiter auto-detection, and buffered
// reading and writing of rows.
package tabular

import (
	"bufio"
	"io"
	"strings"
)

// Row is one physical input line split into fields.
type Row struct {
	// Fields holds the delimiter-split values. Rows may be ragged;
	// the field count is not validated against other rows.
	Fields []string

	// Raw is the original line text with the trailing newline removed.
	Raw string

	// Line is the 1-based position of the row in the input.
	Line int
}

// Reader streams rows from delimited text. A zero delim selects
// auto-detection: the separator is resolved from the first line read and
// then fixed for the rest of the stream.
type Reader struct {
	br    *bufio.Reader
	delim rune
	line  int
}

// NewReader creates a Reader over r. Pass delim 0 to auto-detect the
// separator from the first line.
func NewReader(r io.Reader, delim rune) *Reader {
	return &Reader{
		br:    bufio.NewReader(r),
		delim: delim,
	}
}

// Delimiter returns the field separator. In auto-detect mode it returns
// 0 until the first row has been read.
func (r *Reader) Delimiter() rune {
	return r.delim
}

// Read returns the next row, or io.EOF when the input is exhausted.
// Blank lines are returned as rows with a single empty field so line
// ordinals always match physical positions.
func (r *Reader) Read() (Row, error) {
	line, err := r.br.ReadString('\n')
	if err != nil && len(line) == 0 {
		return Row{}, err
	}
	line = strings.TrimRight(line, "\r\n")
	r.line++

	if r.delim == 0 {
		r.delim = DetectDelimiter(line)
	}

	return Row{
		Fields: SplitFields(line, r.delim),
		Raw:    line,
		Line:   r.line,
	}, nil
}

// ReadAll reads every remaining row into memory. Tools whose output
// depends on whole-file properties (column widths, column emptiness)
// use this; the streaming filter does not.
func (r *Reader) ReadAll() ([]Row, error) {
	var rows []Row
	for {
		row, err := r.Read()
		if err == io.EOF {
			return rows, nil
		}
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
}
