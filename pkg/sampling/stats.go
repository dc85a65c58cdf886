package sampling

import "github.com/tracegate/tracegate/pkg/metrics"

// Stats counts the admission decisions made by a TraceSampler,
// cumulative since construction.
type Stats struct {
	// SampleNew counts new traces admitted with full detail.
	SampleNew metrics.Counter
	// UnsampleNew counts new traces dropped by the probability sampler.
	UnsampleNew metrics.Counter
	// SkipNew counts new traces that passed probability but were denied
	// by the throughput limiter.
	SkipNew metrics.Counter
	// SampleContinue counts continued traces admitted.
	SampleContinue metrics.Counter
	// SkipContinue counts continued traces denied by the limiter.
	SkipContinue metrics.Counter
}

// Snapshot returns a point-in-time copy of the counter values.
func (s *Stats) Snapshot() StatsSnapshot {
	return StatsSnapshot{
		SampleNew:      s.SampleNew.Value(),
		UnsampleNew:    s.UnsampleNew.Value(),
		SkipNew:        s.SkipNew.Value(),
		SampleContinue: s.SampleContinue.Value(),
		SkipContinue:   s.SkipContinue.Value(),
	}
}

// StatsSnapshot is a point-in-time view of Stats, safe to serialize.
type StatsSnapshot struct {
	SampleNew      uint64 `json:"sampleNew"`
	UnsampleNew    uint64 `json:"unsampleNew"`
	SkipNew        uint64 `json:"skipNew"`
	SampleContinue uint64 `json:"sampleContinue"`
	SkipContinue   uint64 `json:"skipContinue"`
}
