package metrics

import "sync/atomic"

// Counter is a monotonically increasing counter safe for concurrent
// use. The zero value is ready to use.
type Counter struct {
	value atomic.Uint64
}

// Inc adds one to the counter.
func (c *Counter) Inc() {
	c.value.Add(1)
}

// Add increases the counter by delta.
func (c *Counter) Add(delta uint64) {
	c.value.Add(delta)
}

// Value returns the current count.
func (c *Counter) Value() uint64 {
	return c.value.Load()
}
