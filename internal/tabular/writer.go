package tabular

import (
	"bufio"
	"io"
	"strings"
)

// Writer writes delimited rows with buffering. Call Flush before the
// underlying writer is closed.
type Writer struct {
	bw    *bufio.Writer
	delim rune
}

// NewWriter creates a Writer emitting fields separated by delim.
func NewWriter(w io.Writer, delim rune) *Writer {
	return &Writer{
		bw:    bufio.NewWriter(w),
		delim: delim,
	}
}

// WriteLine writes a pre-formatted line followed by a newline.
func (w *Writer) WriteLine(line string) error {
	if _, err := w.bw.WriteString(line); err != nil {
		return err
	}
	return w.bw.WriteByte('\n')
}

// WriteRow joins fields with the delimiter and writes the line. Fields
// are written verbatim, without quoting.
func (w *Writer) WriteRow(fields ...string) error {
	return w.WriteLine(Join(fields, w.delim))
}

// WriteQuotedRow writes the row with CSV-style quoting: a field
// containing the delimiter, a double quote, or a newline is wrapped in
// double quotes with inner quotes doubled.
func (w *Writer) WriteQuotedRow(fields ...string) error {
	quoted := make([]string, len(fields))
	for i, f := range fields {
		quoted[i] = quoteField(f, w.delim)
	}
	return w.WriteLine(Join(quoted, w.delim))
}

// Flush flushes any buffered output to the underlying writer.
func (w *Writer) Flush() error {
	return w.bw.Flush()
}

func quoteField(f string, delim rune) string {
	if !strings.ContainsAny(f, string(delim)+"\"\n") {
		return f
	}
	return `"` + strings.ReplaceAll(f, `"`, `""`) + `"`
}
