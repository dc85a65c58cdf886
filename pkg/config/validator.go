package config

import (
	"fmt"
	"strings"
)

// Percent rate bounds applied when a nonzero percent rate is
// configured.
const (
	minPercentRate = 0.01
	maxPercentRate = 100
)

// Validate normalizes the configuration in place and returns notes
// describing every adjustment. It never fails: out-of-range values are
// clamped or reset to defaults so that a bad configuration degrades
// tracing instead of breaking the host.
func (c *Config) Validate() []string {
	var notes []string

	switch strings.ToUpper(strings.TrimSpace(c.Sampling.Type)) {
	case SamplerTypePercent:
		c.Sampling.Type = SamplerTypePercent
	case SamplerTypeCounter, "":
		c.Sampling.Type = SamplerTypeCounter
	default:
		notes = append(notes, fmt.Sprintf("unknown sampler type %q, using %s", c.Sampling.Type, SamplerTypeCounter))
		c.Sampling.Type = SamplerTypeCounter
	}

	if c.Sampling.CounterRate < 0 {
		notes = append(notes, fmt.Sprintf("negative counter rate %d, sampling disabled", c.Sampling.CounterRate))
		c.Sampling.CounterRate = 0
	}

	if c.Sampling.PercentRate != 0 {
		if c.Sampling.PercentRate < minPercentRate {
			notes = append(notes, fmt.Sprintf("percent rate %v below minimum, using %v", c.Sampling.PercentRate, minPercentRate))
			c.Sampling.PercentRate = minPercentRate
		}
		if c.Sampling.PercentRate > maxPercentRate {
			notes = append(notes, fmt.Sprintf("percent rate %v above maximum, using %v", c.Sampling.PercentRate, maxPercentRate))
			c.Sampling.PercentRate = maxPercentRate
		}
	}

	if c.Sampling.NewThroughput < 0 {
		notes = append(notes, fmt.Sprintf("negative new-trace throughput %d, treating as unlimited", c.Sampling.NewThroughput))
		c.Sampling.NewThroughput = 0
	}
	if c.Sampling.ContinueThroughput < 0 {
		notes = append(notes, fmt.Sprintf("negative continue-trace throughput %d, treating as unlimited", c.Sampling.ContinueThroughput))
		c.Sampling.ContinueThroughput = 0
	}

	return notes
}
