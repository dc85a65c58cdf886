package sampling

import "github.com/tracegate/tracegate/pkg/ratelimit"

// TraceSampler decides whether to build a full span for a unit of
// work. New traces originate in this process; continued traces arrive
// with an upstream sampling decision already attached.
type TraceSampler interface {
	IsNewSampled() bool
	IsContinueSampled() bool
}

// BasicTraceSampler applies the probability sampler to new traces and
// admits every continued trace.
type BasicTraceSampler struct {
	sampler Sampler
	stats   Stats
}

// NewBasicTraceSampler creates a trace sampler with no throughput
// limiting.
func NewBasicTraceSampler(sampler Sampler) *BasicTraceSampler {
	return &BasicTraceSampler{sampler: sampler}
}

// IsNewSampled reports the probability sampler's decision for a new
// trace.
func (t *BasicTraceSampler) IsNewSampled() bool {
	if t.sampler.IsSampled() {
		t.stats.SampleNew.Inc()
		return true
	}
	t.stats.UnsampleNew.Inc()
	return false
}

// IsContinueSampled always admits a continued trace: the upstream node
// already decided to keep it.
func (t *BasicTraceSampler) IsContinueSampled() bool {
	t.stats.SampleContinue.Inc()
	return true
}

// Stats returns the sampler's decision counters.
func (t *BasicTraceSampler) Stats() *Stats {
	return &t.stats
}

// ThroughputLimitTraceSampler gates sampling decisions through
// per-second rate limiters. A nil limiter means that path is
// unthrottled; throttling never turns into denial of an otherwise
// unsampled trace.
type ThroughputLimitTraceSampler struct {
	sampler     Sampler
	newLimiter  *ratelimit.Limiter
	contLimiter *ratelimit.Limiter
	stats       Stats
}

// NewThroughputLimitTraceSampler creates a trace sampler capping
// admitted new traces at newTps per second and continued traces at
// continueTps per second. A cap of 0 leaves that path unlimited.
func NewThroughputLimitTraceSampler(sampler Sampler, newTps, continueTps int) *ThroughputLimitTraceSampler {
	t := &ThroughputLimitTraceSampler{sampler: sampler}
	if newTps > 0 {
		t.newLimiter = ratelimit.New(newTps)
	}
	if continueTps > 0 {
		t.contLimiter = ratelimit.New(continueTps)
	}
	return t
}

// IsNewSampled admits a new trace when the probability sampler keeps
// it and, if a new-trace limiter is configured, a token is available.
func (t *ThroughputLimitTraceSampler) IsNewSampled() bool {
	if !t.sampler.IsSampled() {
		t.stats.UnsampleNew.Inc()
		return false
	}
	if t.newLimiter != nil && !t.newLimiter.Allow() {
		t.stats.SkipNew.Inc()
		return false
	}
	t.stats.SampleNew.Inc()
	return true
}

// IsContinueSampled admits a continued trace unless the continue-trace
// limiter is configured and exhausted.
func (t *ThroughputLimitTraceSampler) IsContinueSampled() bool {
	if t.contLimiter != nil && !t.contLimiter.Allow() {
		t.stats.SkipContinue.Inc()
		return false
	}
	t.stats.SampleContinue.Inc()
	return true
}

// Stats returns the sampler's decision counters.
func (t *ThroughputLimitTraceSampler) Stats() *Stats {
	return &t.stats
}
