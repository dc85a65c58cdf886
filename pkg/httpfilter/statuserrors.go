package httpfilter

import (
	"strconv"
	"strings"
)

// StatusCodeErrors classifies HTTP status codes as errors according to
// configured tokens such as "5xx" or "404". Built once; lookups are
// read-only.
type StatusCodeErrors struct {
	predicates []codePredicate
}

// codePredicate is the closed set of status-code predicates. Both
// variants live in this package; nothing outside can add a third.
type codePredicate interface {
	matches(code int) bool
}

type exactCode int

func (e exactCode) matches(code int) bool {
	return int(e) == code
}

type codeRange struct {
	lo, hi int
}

func (r codeRange) matches(code int) bool {
	return r.lo <= code && code <= r.hi
}

// NewStatusCodeErrors parses the given tokens. Unparseable tokens are
// dropped silently; duplicates are harmless.
func NewStatusCodeErrors(tokens []string) *StatusCodeErrors {
	s := &StatusCodeErrors{}
	for _, tok := range tokens {
		if p, ok := parseStatusToken(tok); ok {
			s.predicates = append(s.predicates, p)
		}
	}
	return s
}

// parseStatusToken understands the "Nxx" range shorthand (for example
// "5xx" covers 500-599) and exact integer codes.
func parseStatusToken(tok string) (codePredicate, bool) {
	t := strings.TrimSpace(tok)
	if len(t) == 3 && strings.EqualFold(t[1:], "xx") {
		if c := t[0]; '1' <= c && c <= '9' {
			lo := int(c-'0') * 100
			return codeRange{lo: lo, hi: lo + 99}, true
		}
		return nil, false
	}
	code, err := strconv.Atoi(t)
	if err != nil {
		return nil, false
	}
	return exactCode(code), true
}

// IsErrorCode reports whether code matches any configured predicate.
func (s *StatusCodeErrors) IsErrorCode(code int) bool {
	for _, p := range s.predicates {
		if p.matches(code) {
			return true
		}
	}
	return false
}
