package recording

import (
	"net/http"
	"strings"
)

// HeaderReader is the capability the recorder consumes: point lookup
// plus early-stoppable enumeration. Push-only sources may always
// report absence from Get; those work only with capture-all
// configuration.
type HeaderReader interface {
	// Get returns the first value for key and whether it was present.
	Get(key string) (string, bool)
	// ForEach visits every (key, value) pair until visit returns false.
	ForEach(visit func(key, value string) bool)
}

// HTTPHeaders adapts a net/http header map to the HeaderReader
// capability. Lookups are case-insensitive per the HTTP spec;
// enumeration order follows the underlying map.
func HTTPHeaders(h http.Header) HeaderReader {
	return httpHeaderReader{h: h}
}

type httpHeaderReader struct {
	h http.Header
}

func (r httpHeaderReader) Get(key string) (string, bool) {
	values := r.h.Values(key)
	if len(values) == 0 {
		return "", false
	}
	return values[0], true
}

func (r httpHeaderReader) ForEach(visit func(key, value string) bool) {
	for key, values := range r.h {
		for _, v := range values {
			if !visit(key, v) {
				return
			}
		}
	}
}

// Cookies parses the raw value of a Cookie request header
// ("a=1; b=2") and exposes the pairs through the HeaderReader
// capability, so cookie capture shares the header recorder code path.
// Pair order is preserved; malformed fragments without '=' are kept
// with an empty value.
func Cookies(rawCookie string) HeaderReader {
	r := cookieReader{}
	for _, part := range strings.Split(rawCookie, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		name, value, _ := strings.Cut(part, "=")
		r.pairs = append(r.pairs, cookiePair{name: name, value: value})
	}
	return r
}

type cookiePair struct {
	name  string
	value string
}

type cookieReader struct {
	pairs []cookiePair
}

func (r cookieReader) Get(key string) (string, bool) {
	for _, p := range r.pairs {
		if p.name == key {
			return p.value, true
		}
	}
	return "", false
}

func (r cookieReader) ForEach(visit func(key, value string) bool) {
	for _, p := range r.pairs {
		if !visit(p.name, p.value) {
			return
		}
	}
}
