// Package httpfilter decides which HTTP requests are eligible for
// tracing and which response codes count as errors.
//
// It provides three read-only matchers, each built once from
// configuration tokens and then safe for lock-free concurrent lookups:
//
//   - URLFilter: ant-style glob patterns (* for one path segment,
//     ** for any depth) compiled to anchored regular expressions
//   - MethodFilter: case-insensitive HTTP method tokens
//   - StatusCodeErrors: exact codes and "Nxx" range shorthands
//
// Construction never fails: tokens or patterns that do not parse are
// dropped silently, because a configuration typo must not break
// tracing in the host application.
package httpfilter
