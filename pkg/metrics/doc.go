// Package metrics provides dependency-free counters for in-process
// admission statistics.
//
// The agent keeps its decision counters on plain atomics rather than a
// metrics client library: the counters are consumed in-process by the
// periodic stats report and by tests, and no exposition endpoint or
// wire protocol exists at this layer.
//
// All counters are thread-safe and usable from their zero value.
package metrics
