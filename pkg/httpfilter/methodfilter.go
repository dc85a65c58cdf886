package httpfilter

import "strings"

// MethodFilter reports whether an HTTP method is excluded from
// tracing. Lookups are read-only after construction.
type MethodFilter struct {
	methods []string
}

// NewMethodFilter creates a filter matching the given method tokens.
func NewMethodFilter(methods []string) *MethodFilter {
	f := &MethodFilter{}
	f.methods = append(f.methods, methods...)
	return f
}

// IsFiltered reports whether method equals any configured token,
// compared case-insensitively.
func (f *MethodFilter) IsFiltered(method string) bool {
	for _, m := range f.methods {
		if strings.EqualFold(m, method) {
			return true
		}
	}
	return false
}

// Methods returns the configured tokens in configuration order.
func (f *MethodFilter) Methods() []string {
	out := make([]string, len(f.methods))
	copy(out, f.methods)
	return out
}
