package config

import (
	"github.com/tracegate/tracegate/pkg/annotation"
	"github.com/tracegate/tracegate/pkg/httpfilter"
	"github.com/tracegate/tracegate/pkg/recording"
	"github.com/tracegate/tracegate/pkg/sampling"
)

// NewTraceSampler builds the trace sampler the configuration calls
// for. Throughput limiting engages when either cap is positive.
func (c Config) NewTraceSampler() sampling.TraceSampler {
	var s sampling.Sampler
	switch c.Sampling.Type {
	case SamplerTypePercent:
		s = sampling.NewPercentSampler(c.Sampling.PercentRate)
	default:
		s = sampling.NewCounterSampler(c.Sampling.CounterRate)
	}

	if c.Sampling.NewThroughput > 0 || c.Sampling.ContinueThroughput > 0 {
		return sampling.NewThroughputLimitTraceSampler(s, c.Sampling.NewThroughput, c.Sampling.ContinueThroughput)
	}
	return sampling.NewBasicTraceSampler(s)
}

// NewURLFilter builds the request-URL exclusion filter.
func (c Config) NewURLFilter() *httpfilter.URLFilter {
	return httpfilter.NewURLFilter(c.HTTP.ExcludeURLs)
}

// NewMethodFilter builds the HTTP method exclusion filter.
func (c Config) NewMethodFilter() *httpfilter.MethodFilter {
	return httpfilter.NewMethodFilter(c.HTTP.ExcludeMethods)
}

// NewStatusCodeErrors builds the status code error classifier.
func (c Config) NewStatusCodeErrors() *httpfilter.StatusCodeErrors {
	return httpfilter.NewStatusCodeErrors(c.HTTP.StatusCodeErrors)
}

// NewRequestHeaderRecorder builds the request header capture recorder.
func (c Config) NewRequestHeaderRecorder() *recording.HeaderRecorder {
	return recording.NewHeaderRecorder(annotation.KeyHTTPRequestHeader, c.HTTP.RecordRequestHeaders)
}

// NewResponseHeaderRecorder builds the response header capture
// recorder.
func (c Config) NewResponseHeaderRecorder() *recording.HeaderRecorder {
	return recording.NewHeaderRecorder(annotation.KeyHTTPResponseHeader, c.HTTP.RecordResponseHeaders)
}

// NewCookieRecorder builds the request cookie capture recorder.
func (c Config) NewCookieRecorder() *recording.HeaderRecorder {
	return recording.NewHeaderRecorder(annotation.KeyHTTPCookie, c.HTTP.RecordRequestCookies)
}
