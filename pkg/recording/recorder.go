package recording

import "github.com/tracegate/tracegate/pkg/annotation"

// CaptureAll is the sentinel configuration value meaning "record every
// pair the reader can enumerate". It is recognized only when it is the
// sole configured name.
const CaptureAll = "HEADERS-ALL"

// HeaderRecorder copies selected header or cookie values into an
// annotation under a fixed key. An empty configuration records
// nothing. Immutable after construction.
type HeaderRecorder struct {
	key   int32
	names []string
	all   bool
}

// NewHeaderRecorder creates a recorder appending captured pairs under
// the given annotation key. Names are captured in configuration order;
// a configuration of exactly [CaptureAll] captures everything.
func NewHeaderRecorder(key int32, names []string) *HeaderRecorder {
	r := &HeaderRecorder{key: key}
	if len(names) == 1 && names[0] == CaptureAll {
		r.all = true
		return r
	}
	r.names = append(r.names, names...)
	return r
}

// Record appends one StringString entry per captured pair. Absent
// names are skipped silently; nothing is reported back to the caller.
func (r *HeaderRecorder) Record(reader HeaderReader, ann *annotation.Annotation) {
	if r.all {
		reader.ForEach(func(key, value string) bool {
			ann.AppendStringString(r.key, key, value)
			return true
		})
		return
	}
	for _, name := range r.names {
		if value, ok := reader.Get(name); ok {
			ann.AppendStringString(r.key, name, value)
		}
	}
}

// CapturesAll reports whether the recorder is in capture-all mode.
func (r *HeaderRecorder) CapturesAll() bool {
	return r.all
}
