package sampling

import (
	"math"
	"sync/atomic"
)

// Sampler makes the binary keep-or-drop decision for one unit of work.
// Implementations are safe for concurrent use.
type Sampler interface {
	IsSampled() bool
}

// CounterSampler keeps exactly one call in every rate calls, evenly
// spaced by call order.
type CounterSampler struct {
	rate    uint64
	counter atomic.Uint64
}

// NewCounterSampler creates a sampler keeping one in rate calls.
// rate <= 0 disables sampling entirely.
func NewCounterSampler(rate int) *CounterSampler {
	if rate < 0 {
		rate = 0
	}
	return &CounterSampler{rate: uint64(rate)}
}

// IsSampled reports whether this call is the rate-th, 2*rate-th, ...
// call since construction. The counter wraps at 2^64.
func (s *CounterSampler) IsSampled() bool {
	if s.rate == 0 {
		return false
	}
	return s.counter.Add(1)%s.rate == 0
}

// Rate returns the configured 1-in-N rate.
func (s *CounterSampler) Rate() int {
	return int(s.rate)
}

// percentScale is the accumulator modulus: 100% in basis points.
const percentScale = 10000

// PercentSampler keeps a fixed percentage of calls. The percentage is
// stored as basis points and accumulated with integer arithmetic only,
// so the long-run sampled proportion is exact and the sampled-call
// sequence is deterministic.
type PercentSampler struct {
	rate    uint64 // basis points added per call
	counter atomic.Uint64
}

// NewPercentSampler creates a sampler keeping percent% of calls.
// percent is clamped to [0, 100]; 0 disables sampling.
func NewPercentSampler(percent float64) *PercentSampler {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	return &PercentSampler{rate: uint64(math.Round(percent * 100))}
}

// IsSampled adds the per-call basis points to the accumulator and
// keeps the call when the running total just crossed a multiple of the
// scale.
func (s *PercentSampler) IsSampled() bool {
	if s.rate == 0 {
		return false
	}
	c := s.counter.Add(s.rate)
	return c%percentScale < s.rate
}

// Percent returns the configured percentage.
func (s *PercentSampler) Percent() float64 {
	return float64(s.rate) / 100
}
