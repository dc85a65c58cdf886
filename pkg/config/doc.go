// Package config defines the admission configuration consumed by the
// tracer core and builds the sampler, filter and recorder set from it.
//
// Loading supports single YAML/JSON files and doublestar glob patterns
// for layered configuration. Validation normalizes rather than fails:
// a bad value is clamped or replaced with its default and reported as
// a note, because a configuration typo must never break tracing in the
// host application.
package config
