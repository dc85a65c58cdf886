package config

// Sampler type tokens accepted in configuration.
const (
	SamplerTypeCounter = "COUNTER"
	SamplerTypePercent = "PERCENT"
)

// Config is the admission configuration for the in-process agent.
type Config struct {
	Sampling SamplingConfig `yaml:"sampling" json:"sampling"`
	HTTP     HTTPConfig     `yaml:"http" json:"http"`
}

// SamplingConfig selects the sampler variant and its throughput caps.
type SamplingConfig struct {
	// Type selects the sampler: COUNTER or PERCENT.
	Type string `yaml:"type" json:"type"`

	// CounterRate keeps one new trace in every CounterRate. 0 disables
	// sampling.
	CounterRate int `yaml:"counterRate" json:"counterRate"`

	// PercentRate keeps PercentRate% of new traces. Effective range is
	// 0.01 to 100; 0 disables sampling.
	PercentRate float64 `yaml:"percentRate" json:"percentRate"`

	// NewThroughput caps sampled new traces per second. 0 = unlimited.
	NewThroughput int `yaml:"newThroughput" json:"newThroughput"`

	// ContinueThroughput caps continued traces per second. 0 = unlimited.
	ContinueThroughput int `yaml:"continueThroughput" json:"continueThroughput"`
}

// HTTPConfig configures request eligibility and metadata capture.
type HTTPConfig struct {
	// ExcludeURLs lists ant-style glob patterns; matching request URLs
	// are not traced.
	ExcludeURLs []string `yaml:"excludeUrls" json:"excludeUrls"`

	// ExcludeMethods lists HTTP methods (case-insensitive) that are not
	// traced.
	ExcludeMethods []string `yaml:"excludeMethods" json:"excludeMethods"`

	// StatusCodeErrors lists codes or "Nxx" ranges classified as errors.
	StatusCodeErrors []string `yaml:"statusCodeErrors" json:"statusCodeErrors"`

	// RecordRequestHeaders lists request header names to capture, or
	// the single sentinel HEADERS-ALL for everything.
	RecordRequestHeaders []string `yaml:"recordRequestHeaders" json:"recordRequestHeaders"`

	// RecordResponseHeaders lists response header names to capture.
	RecordResponseHeaders []string `yaml:"recordResponseHeaders" json:"recordResponseHeaders"`

	// RecordRequestCookies lists cookie names to capture.
	RecordRequestCookies []string `yaml:"recordRequestCookies" json:"recordRequestCookies"`
}

// Default returns the configuration used when no file is provided:
// count-based 1-in-20 sampling, unlimited throughput, 5xx as errors.
func Default() Config {
	return Config{
		Sampling: SamplingConfig{
			Type:        SamplerTypeCounter,
			CounterRate: 20,
		},
		HTTP: HTTPConfig{
			StatusCodeErrors: []string{"5xx"},
		},
	}
}
