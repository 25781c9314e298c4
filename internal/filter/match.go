package filter

import (
	"fmt"
	"regexp"
	"strings"
)

// Matcher reports whether a line of text matches the configured
// pattern. The variant (literal substring or compiled regex) is chosen
// once at construction, so per-row matching never re-checks mode flags.
type Matcher interface {
	Match(text string) bool
}

// MatchOptions selects how a pattern is interpreted.
type MatchOptions struct {
	// Pattern is the search expression. Empty matches every line.
	Pattern string

	// IgnoreCase makes matching case-insensitive.
	IgnoreCase bool

	// Fixed treats Pattern as a literal substring instead of a regex.
	Fixed bool
}

// NewMatcher builds the match predicate for opts. An invalid regular
// expression is reported here, before any input is read.
func NewMatcher(opts MatchOptions) (Matcher, error) {
	if opts.Fixed {
		pat := opts.Pattern
		if opts.IgnoreCase {
			pat = strings.ToLower(pat)
		}
		return literalMatcher{pattern: pat, fold: opts.IgnoreCase}, nil
	}

	pat := opts.Pattern
	if opts.IgnoreCase {
		pat = "(?i)" + pat
	}
	re, err := regexp.Compile(pat)
	if err != nil {
		return nil, fmt.Errorf("invalid pattern %q: %w", opts.Pattern, err)
	}
	return regexMatcher{re: re}, nil
}

type literalMatcher struct {
	pattern string
	fold    bool
}

func (m literalMatcher) Match(text string) bool {
	if m.fold {
		text = strings.ToLower(text)
	}
	return strings.Contains(text, m.pattern)
}

type regexMatcher struct {
	re *regexp.Regexp
}

func (m regexMatcher) Match(text string) bool {
	return m.re.MatchString(text)
}
