// Package annotation holds the typed, ordered metadata attached to a
// span or span event.
//
// An Annotation is an append-only list of (key, value) entries. Keys
// are int32 identifiers shared with the collector; values are one of a
// closed set of shapes (see Value). Entries keep insertion order,
// duplicate keys are valid, and nothing is ever merged, mutated or
// removed — the record is destroyed with its owning span.
//
// Appends never fail outward. An internal failure is logged and the
// entry dropped; metadata capture must not be able to crash the host.
package annotation
