// Package recording copies selected HTTP header and cookie values into
// span annotations.
//
// A HeaderRecorder is configured once with an annotation key and a list
// of names to capture — or the HEADERS-ALL sentinel to capture
// everything — and then applied per request through the HeaderReader
// capability. Adapters for net/http header maps and raw Cookie header
// values let request headers, response headers and cookies share one
// capture path.
package recording
