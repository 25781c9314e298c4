package filter

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"csvtools/internal/tabular"
)

// runPipeline drives p over input with auto-detected delimiter and
// returns the produced output.
func runPipeline(t *testing.T, p *Pipeline, input string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	err := p.Run(tabular.NewReader(strings.NewReader(input), 0), tabular.NewWriter(&buf, 0))
	return buf.String(), err
}

func mustMatcher(t *testing.T, opts MatchOptions) Matcher {
	t.Helper()
	m, err := NewMatcher(opts)
	if err != nil {
		t.Fatalf("NewMatcher(%+v) error = %v", opts, err)
	}
	return m
}

func TestPipeline_Basic(t *testing.T) {
	p := &Pipeline{Matcher: mustMatcher(t, MatchOptions{Pattern: "Alice"})}

	got, err := runPipeline(t, p, "name,age\nAlice,30\nBob,25\n")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if got != "Alice,30\n" {
		t.Errorf("output = %q, want %q", got, "Alice,30\n")
	}
}

func TestPipeline_NoMatch(t *testing.T) {
	p := &Pipeline{Matcher: mustMatcher(t, MatchOptions{Pattern: "zz"})}

	got, err := runPipeline(t, p, "name,age\nAlice,30\nBob,25\n")
	if !errors.Is(err, ErrNoMatch) {
		t.Errorf("Run() error = %v, want ErrNoMatch", err)
	}
	if got != "" {
		t.Errorf("output = %q, want empty", got)
	}
}

func TestPipeline_EmptyInput(t *testing.T) {
	p := &Pipeline{Matcher: mustMatcher(t, MatchOptions{Pattern: ""})}

	got, err := runPipeline(t, p, "")
	if !errors.Is(err, ErrNoMatch) {
		t.Errorf("Run() error = %v, want ErrNoMatch", err)
	}
	if got != "" {
		t.Errorf("output = %q, want empty", got)
	}
}

func TestPipeline_HeaderModes(t *testing.T) {
	const input = "H1,H2\n1,2\nfoo,3\n"

	tests := []struct {
		name    string
		pattern string
		header  HeaderMode
		want    string
		wantErr error
	}{
		{
			name:    "auto drops non-matching header",
			pattern: "foo",
			header:  HeaderAuto,
			want:    "foo,3\n",
		},
		{
			name:    "always prepends header",
			pattern: "foo",
			header:  HeaderAlways,
			want:    "H1,H2\nfoo,3\n",
		},
		{
			name:    "never suppresses matching header",
			pattern: "H1",
			header:  HeaderNever,
			want:    "",
			wantErr: ErrNoMatch,
		},
		{
			name:    "auto keeps matching header",
			pattern: "H1",
			header:  HeaderAuto,
			want:    "H1,H2\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &Pipeline{
				Matcher: mustMatcher(t, MatchOptions{Pattern: tt.pattern}),
				Header:  tt.header,
			}
			got, err := runPipeline(t, p, input)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Run() error = %v, want %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("output = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPipeline_HeaderOverridesApplyAfterInversion(t *testing.T) {
	const input = "H1,H2\nfoo,1\nbar,2\n"

	// Inverted: data rows not containing foo. HeaderAlways still emits
	// the header even though inversion would as well; HeaderNever still
	// suppresses it even though it does not match "foo".
	p := &Pipeline{
		Matcher: mustMatcher(t, MatchOptions{Pattern: "foo"}),
		Invert:  true,
		Header:  HeaderAlways,
	}
	got, err := runPipeline(t, p, input)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if got != "H1,H2\nbar,2\n" {
		t.Errorf("output = %q, want %q", got, "H1,H2\nbar,2\n")
	}

	p = &Pipeline{
		Matcher: mustMatcher(t, MatchOptions{Pattern: "foo"}),
		Invert:  true,
		Header:  HeaderNever,
	}
	got, err = runPipeline(t, p, input)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if got != "bar,2\n" {
		t.Errorf("output = %q, want %q", got, "bar,2\n")
	}
}

func TestPipeline_Invert(t *testing.T) {
	p := &Pipeline{
		Matcher: mustMatcher(t, MatchOptions{Pattern: "Alice"}),
		Invert:  true,
		Header:  HeaderNever,
	}

	got, err := runPipeline(t, p, "name,age\nAlice,30\nBob,25\n")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if got != "Bob,25\n" {
		t.Errorf("output = %q, want %q", got, "Bob,25\n")
	}
}

func TestPipeline_LineNumbersReflectInputPosition(t *testing.T) {
	p := &Pipeline{
		Matcher:     mustMatcher(t, MatchOptions{Pattern: "x"}),
		LineNumbers: true,
	}

	got, err := runPipeline(t, p, "x,1\nskip,2\nx,3\n")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	want := "1:x,1\n3:x,3\n"
	if got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestPipeline_Projection(t *testing.T) {
	p := &Pipeline{
		Matcher: mustMatcher(t, MatchOptions{Pattern: ""}),
		Columns: ColumnSpec{1, 5},
	}

	got, err := runPipeline(t, p, "a,b\n")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if got != "a,\n" {
		t.Errorf("output = %q, want %q", got, "a,\n")
	}
}

func TestPipeline_ProjectionUsesDetectedDelimiter(t *testing.T) {
	p := &Pipeline{
		Matcher: mustMatcher(t, MatchOptions{Pattern: ""}),
		Columns: ColumnSpec{2, 1},
	}

	got, err := runPipeline(t, p, "a\tb\n")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if got != "b\ta\n" {
		t.Errorf("output = %q, want %q", got, "b\ta\n")
	}
}

func TestPipeline_MatchesRawTextNotProjection(t *testing.T) {
	// The pattern hits column 2, which is not displayed; the row must
	// still be emitted because matching runs on the raw line.
	p := &Pipeline{
		Matcher: mustMatcher(t, MatchOptions{Pattern: "secret"}),
		Columns: ColumnSpec{1},
	}

	got, err := runPipeline(t, p, "a,secret\nb,other\n")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if got != "a\n" {
		t.Errorf("output = %q, want %q", got, "a\n")
	}
}

func TestPipeline_QuotedDelimiterStaysInField(t *testing.T) {
	p := &Pipeline{
		Matcher: mustMatcher(t, MatchOptions{Pattern: ""}),
		Columns: ColumnSpec{2},
	}

	got, err := runPipeline(t, p, "a,\"b,c\",d\n")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if got != "b,c\n" {
		t.Errorf("output = %q, want %q", got, "b,c\n")
	}
}
