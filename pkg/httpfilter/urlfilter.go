package httpfilter

import (
	"regexp"
	"strings"
)

// URLFilter reports whether a request URL is excluded from tracing.
// Patterns are compiled once at construction; lookups are read-only.
type URLFilter struct {
	patterns []urlPattern
}

type urlPattern struct {
	source string
	re     *regexp.Regexp
}

// NewURLFilter compiles the given ant-style glob patterns. Patterns
// that fail to compile are dropped silently.
func NewURLFilter(patterns []string) *URLFilter {
	f := &URLFilter{}
	for _, p := range patterns {
		re, err := compilePattern(p)
		if err != nil {
			continue
		}
		f.patterns = append(f.patterns, urlPattern{source: p, re: re})
	}
	return f
}

// IsFiltered reports whether url full-matches any configured pattern.
// Matching is case-sensitive.
func (f *URLFilter) IsFiltered(url string) bool {
	for _, p := range f.patterns {
		if p.re.MatchString(url) {
			return true
		}
	}
	return false
}

// Patterns returns the source patterns that compiled successfully, in
// configuration order.
func (f *URLFilter) Patterns() []string {
	out := make([]string, 0, len(f.patterns))
	for _, p := range f.patterns {
		out = append(out, p.source)
	}
	return out
}

// compilePattern translates an ant-style glob into an anchored regular
// expression: `*` matches within one path segment, `**` crosses
// segment boundaries.
func compilePattern(glob string) (*regexp.Regexp, error) {
	var sb strings.Builder
	sb.WriteByte('^')

	// A lone `*` is held pending until the next char decides whether it
	// is a single- or double-star wildcard.
	pending := false
	for _, c := range glob {
		if pending {
			pending = false
			if c == '*' {
				sb.WriteString(".*")
				continue
			}
			sb.WriteString("[^/]*")
		}
		if c == '*' {
			pending = true
			continue
		}
		writeLiteral(&sb, c)
	}
	if pending {
		sb.WriteString("[^/]*")
	}

	sb.WriteByte('$')
	return regexp.Compile(sb.String())
}

// writeLiteral emits c, escaping the metacharacters that would
// otherwise change the compiled expression.
func writeLiteral(sb *strings.Builder, c rune) {
	switch c {
	case '.', '+', '^', '[', ']', '{', '}':
		sb.WriteByte('\\')
	}
	sb.WriteRune(c)
}
