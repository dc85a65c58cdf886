package recording

import (
	"net/http"
	"testing"

	"github.com/tracegate/tracegate/pkg/annotation"
)

// listReader is an ordered in-memory HeaderReader for tests.
type listReader struct {
	pairs [][2]string
}

func (r listReader) Get(key string) (string, bool) {
	for _, p := range r.pairs {
		if p[0] == key {
			return p[1], true
		}
	}
	return "", false
}

func (r listReader) ForEach(visit func(key, value string) bool) {
	for _, p := range r.pairs {
		if !visit(p[0], p[1]) {
			return
		}
	}
}

func TestRecord_SelectedNamesInConfigurationOrder(t *testing.T) {
	t.Parallel()
	reader := listReader{pairs: [][2]string{
		{"Host", "example.com"},
		{"Accept", "text/html"},
		{"User-Agent", "test"},
	}}
	rec := NewHeaderRecorder(annotation.KeyHTTPRequestHeader, []string{"User-Agent", "Host"})
	ann := annotation.New(nil)

	rec.Record(reader, ann)

	entries := ann.Entries()
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	first := entries[0].Value.(annotation.StringStringValue)
	if first.First != "User-Agent" || first.Second != "test" {
		t.Errorf("entry 0 = %+v, want configuration order", first)
	}
	second := entries[1].Value.(annotation.StringStringValue)
	if second.First != "Host" || second.Second != "example.com" {
		t.Errorf("entry 1 = %+v", second)
	}
}

func TestRecord_AbsentNamesSkippedSilently(t *testing.T) {
	t.Parallel()
	reader := listReader{pairs: [][2]string{{"Host", "example.com"}}}
	rec := NewHeaderRecorder(annotation.KeyHTTPRequestHeader, []string{"Missing", "Host"})
	ann := annotation.New(nil)

	rec.Record(reader, ann)

	if ann.Len() != 1 {
		t.Fatalf("expected 1 entry, got %d", ann.Len())
	}
}

func TestRecord_EmptyConfigurationIsNoOp(t *testing.T) {
	t.Parallel()
	reader := listReader{pairs: [][2]string{{"Host", "example.com"}}}
	rec := NewHeaderRecorder(annotation.KeyHTTPRequestHeader, nil)
	ann := annotation.New(nil)

	rec.Record(reader, ann)

	if ann.Len() != 0 {
		t.Errorf("expected no entries, got %d", ann.Len())
	}
}

func TestRecord_CaptureAllEnumeratesEverything(t *testing.T) {
	t.Parallel()
	reader := listReader{pairs: [][2]string{
		{"A", "1"},
		{"B", "2"},
		{"A", "3"},
	}}
	rec := NewHeaderRecorder(annotation.KeyHTTPRequestHeader, []string{CaptureAll})
	ann := annotation.New(nil)

	rec.Record(reader, ann)

	entries := ann.Entries()
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	for i, want := range [][2]string{{"A", "1"}, {"B", "2"}, {"A", "3"}} {
		got := entries[i].Value.(annotation.StringStringValue)
		if got.First != want[0] || got.Second != want[1] {
			t.Errorf("entry %d = %+v, want %v", i, got, want)
		}
		if entries[i].Key != annotation.KeyHTTPRequestHeader {
			t.Errorf("entry %d: key = %d", i, entries[i].Key)
		}
	}
}

func TestRecord_CaptureAllSentinelOnlyWhenAlone(t *testing.T) {
	t.Parallel()
	reader := listReader{pairs: [][2]string{{"X", "1"}, {"Y", "2"}}}
	// Two names, one of them the sentinel: both are treated as literal
	// header names.
	rec := NewHeaderRecorder(annotation.KeyHTTPRequestHeader, []string{CaptureAll, "X"})
	ann := annotation.New(nil)

	rec.Record(reader, ann)

	if rec.CapturesAll() {
		t.Error("sentinel must only engage when it is the sole name")
	}
	if ann.Len() != 1 {
		t.Fatalf("expected only the literal X capture, got %d entries", ann.Len())
	}
}

func TestHTTPHeaders_CaseInsensitiveGet(t *testing.T) {
	t.Parallel()
	h := http.Header{}
	h.Set("Content-Type", "application/json")
	reader := HTTPHeaders(h)

	if v, ok := reader.Get("content-type"); !ok || v != "application/json" {
		t.Errorf("Get(content-type) = %q, %v", v, ok)
	}
	if _, ok := reader.Get("Missing"); ok {
		t.Error("absent header must report not present")
	}
}

func TestHTTPHeaders_CaptureAllCountsAllValues(t *testing.T) {
	t.Parallel()
	h := http.Header{}
	h.Set("A", "1")
	h.Add("B", "2")
	h.Add("B", "3")
	rec := NewHeaderRecorder(annotation.KeyHTTPResponseHeader, []string{CaptureAll})
	ann := annotation.New(nil)

	rec.Record(HTTPHeaders(h), ann)

	// Enumeration order over http.Header is undefined; assert the count.
	if ann.Len() != 3 {
		t.Errorf("expected 3 captured values, got %d", ann.Len())
	}
}

func TestCookies_ParsesAndPreservesOrder(t *testing.T) {
	t.Parallel()
	reader := Cookies("session=abc123; theme=dark; flag")

	var got [][2]string
	reader.ForEach(func(k, v string) bool {
		got = append(got, [2]string{k, v})
		return true
	})

	want := [][2]string{{"session", "abc123"}, {"theme", "dark"}, {"flag", ""}}
	if len(got) != len(want) {
		t.Fatalf("expected %d pairs, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("pair %d = %v, want %v", i, got[i], want[i])
		}
	}

	if v, ok := reader.Get("theme"); !ok || v != "dark" {
		t.Errorf("Get(theme) = %q, %v", v, ok)
	}
}

func TestForEach_EarlyStop(t *testing.T) {
	t.Parallel()
	reader := Cookies("a=1; b=2; c=3")

	visited := 0
	reader.ForEach(func(string, string) bool {
		visited++
		return visited < 2
	})

	if visited != 2 {
		t.Errorf("expected enumeration to stop after 2 visits, got %d", visited)
	}
}
