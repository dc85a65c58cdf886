// Package sampling makes the keep-or-drop admission decisions for
// traced units of work.
//
// Two layers compose:
//
//   - Sampler: the binary probability decision. CounterSampler keeps
//     exactly one call in N, evenly spaced by call order; PercentSampler
//     keeps a fixed percentage using integer basis-point accumulation.
//   - TraceSampler: the decision API consumed by the tracer core.
//     BasicTraceSampler applies the Sampler to new traces and admits all
//     continued traces; ThroughputLimitTraceSampler additionally gates
//     decisions through per-second rate limiters to protect the
//     downstream collector.
//
// All decisions are lock-free and never fail: a misconfigured or absent
// limiter degrades to unthrottled, never to denial.
package sampling
