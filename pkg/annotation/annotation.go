package annotation

import (
	"log/slog"

	"github.com/tracegate/tracegate/pkg/logging"
)

// Entry is one (key, value) element of an Annotation.
type Entry struct {
	Key   int32
	Value Value
}

// Annotation is an insertion-ordered, append-only list of typed
// metadata entries. It has a single owner — the span or span event it
// belongs to — and is not safe for concurrent appends; owners needing
// multi-writer access must serialize externally.
type Annotation struct {
	entries []Entry
	logger  *slog.Logger
}

// New returns an empty Annotation. A nil logger falls back to a no-op
// logger.
func New(logger *slog.Logger) *Annotation {
	if logger == nil {
		logger = logging.Nop()
	}
	return &Annotation{logger: logger}
}

// AppendInt appends a 32-bit integer entry.
func (a *Annotation) AppendInt(key int32, value int32) {
	a.append(key, IntValue(value))
}

// AppendLong appends a 64-bit integer entry.
func (a *Annotation) AppendLong(key int32, value int64) {
	a.append(key, LongValue(value))
}

// AppendString appends a string entry.
func (a *Annotation) AppendString(key int32, value string) {
	a.append(key, StringValue(value))
}

// AppendStringString appends a string-pair entry.
func (a *Annotation) AppendStringString(key int32, first, second string) {
	a.append(key, StringStringValue{First: first, Second: second})
}

// AppendIntStringString appends an integer-with-string-pair entry.
func (a *Annotation) AppendIntStringString(key int32, i int32, first, second string) {
	a.append(key, IntStringStringValue{Int: i, First: first, Second: second})
}

// AppendBytesStringString appends a bytes-with-string-pair entry.
func (a *Annotation) AppendBytesStringString(key int32, b []byte, first, second string) {
	a.append(key, BytesStringStringValue{Bytes: b, First: first, Second: second})
}

// AppendLongIntIntByteByteString appends a packed composite entry.
func (a *Annotation) AppendLongIntIntByteByteString(key int32, l int64, i1, i2 int32, b1, b2 byte, s string) {
	a.append(key, LongIntIntByteByteStringValue{
		Long: l, Int1: i1, Int2: i2, Byte1: b1, Byte2: b2, String: s,
	})
}

// append adds one entry. Failures never escape to the caller: the
// entry is dropped and the failure logged.
func (a *Annotation) append(key int32, v Value) {
	defer func() {
		if r := recover(); r != nil {
			a.logger.Warn("annotation append dropped", "key", key, "reason", r)
		}
	}()
	a.entries = append(a.entries, Entry{Key: key, Value: v})
}

// Entries returns the entries in insertion order. The returned slice
// is the annotation's backing storage; callers must treat it as
// read-only.
func (a *Annotation) Entries() []Entry {
	return a.entries
}

// Len returns the number of entries.
func (a *Annotation) Len() int {
	return len(a.entries)
}
