package cli

import (
	"testing"

	"github.com/spf13/cobra"

	"csvtools/internal/filter"
)

func TestAddFilterFlags(t *testing.T) {
	cmd := &cobra.Command{}
	opts := &FilterOptions{}

	AddFilterFlags(cmd, opts)

	flags := []string{"columns", "ignore-case", "fixed-strings", "invert-match",
		"line-number", "with-header", "no-header", "delimiter"}
	for _, name := range flags {
		if cmd.Flags().Lookup(name) == nil {
			t.Errorf("flag %q not found", name)
		}
	}

	shortFlags := map[string]string{
		"c": "columns",
		"i": "ignore-case",
		"F": "fixed-strings",
		"v": "invert-match",
		"n": "line-number",
		"H": "with-header",
		"d": "delimiter",
	}
	for short, long := range shortFlags {
		if cmd.Flags().ShorthandLookup(short) == nil {
			t.Errorf("short flag %q (for %s) not found", short, long)
		}
	}
}

func TestAddConvertFlags(t *testing.T) {
	cmd := &cobra.Command{}
	opts := &ConvertOptions{}

	AddConvertFlags(cmd, opts)

	for _, name := range []string{"output", "delimiter"} {
		if cmd.Flags().Lookup(name) == nil {
			t.Errorf("flag %q not found", name)
		}
	}
}

func TestFilterOptions_HeaderMode(t *testing.T) {
	tests := []struct {
		name    string
		opts    FilterOptions
		want    filter.HeaderMode
		wantErr bool
	}{
		{"neither flag", FilterOptions{}, filter.HeaderAuto, false},
		{"with-header", FilterOptions{WithHeader: true}, filter.HeaderAlways, false},
		{"no-header", FilterOptions{NoHeader: true}, filter.HeaderNever, false},
		{"both flags conflict", FilterOptions{WithHeader: true, NoHeader: true}, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.opts.HeaderMode()
			if (err != nil) != tt.wantErr {
				t.Fatalf("HeaderMode() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("HeaderMode() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseDelimiter(t *testing.T) {
	tests := []struct {
		in      string
		want    rune
		wantErr bool
	}{
		{"", 0, false},
		{",", ',', false},
		{";", ';', false},
		{"tab", '\t', false},
		{`\t`, '\t', false},
		{"comma", ',', false},
		{"semi", ';', false},
		{"pipe", '|', false},
		{"space", ' ', false},
		{"ab", 0, true},
		{"::", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDelimiter(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseDelimiter(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("ParseDelimiter(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
