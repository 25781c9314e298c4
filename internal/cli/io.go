package cli

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// OpenInput opens the input file, or stdin when path is empty or "-".
// An interactive stdin is rejected so a forgotten file argument fails
// fast instead of waiting for terminal input.
func OpenInput(path string) (io.ReadCloser, error) {
	if path == "" || path == "-" {
		if term.IsTerminal(int(os.Stdin.Fd())) {
			return nil, fmt.Errorf("no input file and standard input is a terminal")
		}
		return io.NopCloser(os.Stdin), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening input: %w", err)
	}
	return f, nil
}

// OpenOutput opens the output file, or stdout when path is empty or "-".
func OpenOutput(path string) (io.WriteCloser, error) {
	if path == "" || path == "-" {
		return nopWriteCloser{os.Stdout}, nil
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("opening output: %w", err)
	}
	return f, nil
}

// nopWriteCloser wraps a writer with a no-op Close.
type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error {
	return nil
}
