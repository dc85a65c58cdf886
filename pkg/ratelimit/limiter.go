// Package ratelimit provides the per-second token-bucket admission gate
// that caps how many sampling decisions may pass each second.
//
// Unlike a smooth-refill bucket, a Limiter refills all at once when the
// wall-clock second changes: idle seconds never accumulate tokens beyond
// capacity, and within one second at most capacity calls are admitted.
package ratelimit

import (
	"sync/atomic"
	"time"
)

// Clock returns the current time as whole seconds from an arbitrary
// monotonic reference.
type Clock func() int64

func monotonicClock() Clock {
	start := time.Now()
	return func() int64 {
		return int64(time.Since(start) / time.Second)
	}
}

// Limiter is a token bucket with one-second refill granularity.
// It is safe for concurrent use. The refill check and the token
// decrement are independently atomic rather than a single transaction,
// so callers racing across a second boundary may both reset the bucket
// and admit up to 2*capacity-1 calls in a short wall-clock window. That
// trade keeps Allow lock-free; the bucket never exceeds capacity.
type Limiter struct {
	capacity int64
	bucket   atomic.Int64
	baseTime atomic.Int64
	now      Clock
}

// New creates a Limiter admitting up to tps calls per second. The
// bucket starts full. tps <= 0 yields a limiter that denies every call.
func New(tps int) *Limiter {
	return NewWithClock(tps, monotonicClock())
}

// NewWithClock is New with an explicit clock, letting tests step time
// deterministically.
func NewWithClock(tps int, now Clock) *Limiter {
	l := &Limiter{capacity: int64(tps), now: now}
	if l.capacity < 0 {
		l.capacity = 0
	}
	l.bucket.Store(l.capacity)
	l.baseTime.Store(now())
	return l
}

// Allow consumes one token if available. On the first call of a new
// second the bucket resets to full capacity before the token is taken.
func (l *Limiter) Allow() bool {
	if l.capacity == 0 {
		return false
	}

	now := l.now()
	if now-l.baseTime.Load() > 0 {
		l.baseTime.Store(now)
		l.bucket.Store(l.capacity)
	}

	for {
		tokens := l.bucket.Load()
		if tokens <= 0 {
			return false
		}
		if l.bucket.CompareAndSwap(tokens, tokens-1) {
			return true
		}
	}
}

// Capacity returns the configured tokens-per-second cap.
func (l *Limiter) Capacity() int {
	return int(l.capacity)
}

// Available returns the number of tokens left in the current second.
func (l *Limiter) Available() int {
	return int(l.bucket.Load())
}
