package scenario

import (
	"sync"
	"time"
)

// Clock produces the created_at/updated_at stamps the shells attach to
// scenarios before handing them to the store. The store itself never
// generates timestamps.
type Clock interface {
	// Now returns the current time as an RFC 3339 UTC string.
	// The format sorts lexically in chronological order, which is what
	// the store's updated_at ordering relies on.
	Now() string
}

// SystemClock stamps with the real wall clock.
//
// Thread-safety: SystemClock is stateless and safe for concurrent use.
type SystemClock struct{}

// Now returns the current UTC time formatted as RFC 3339.
func (SystemClock) Now() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// FixedClock returns predetermined stamps for testing.
//
// This enables deterministic save ordering and golden output comparison.
// Tests provide a known sequence of stamps and verify exact list order.
//
// Thread-safety: FixedClock is safe for concurrent use via internal mutex.
type FixedClock struct {
	mu     sync.Mutex
	stamps []string
	idx    int
}

// NewFixedClock creates a clock that returns stamps in order.
//
// Example:
//
//	clk := NewFixedClock("2024-01-01T00:00:00Z", "2024-02-01T00:00:00Z")
//	clk.Now() // "2024-01-01T00:00:00Z"
//	clk.Now() // "2024-02-01T00:00:00Z"
//	clk.Now() // panic: all stamps exhausted
func NewFixedClock(stamps ...string) *FixedClock {
	return &FixedClock{stamps: stamps}
}

// Now returns the next predetermined stamp.
// Thread-safe: uses mutex to protect index access.
//
// Panics if all stamps have been consumed. This is a fail-fast approach
// to catch test misconfiguration (test stamped more scenarios than expected).
func (c *FixedClock) Now() string {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.idx >= len(c.stamps) {
		panic("FixedClock: all stamps exhausted")
	}
	stamp := c.stamps[c.idx]
	c.idx++
	return stamp
}
