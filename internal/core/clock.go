package core

import (
	"sync"
	"time"
)

// Clock is a monotonic elapsed-time source. Simulation timing (spawn cadence)
// is derived from it rather than from frame counts, so frame-rate variance
// does not change how often things happen.
type Clock interface {
	// Elapsed returns the time since the clock started. Never decreases.
	Elapsed() time.Duration
}

// MonotonicClock measures wall time using the runtime's monotonic reading.
type MonotonicClock struct {
	started time.Time
}

// NewMonotonicClock starts a clock at the current instant.
func NewMonotonicClock() *MonotonicClock {
	return &MonotonicClock{started: time.Now()}
}

// Elapsed returns time since the clock was created.
func (c *MonotonicClock) Elapsed() time.Duration {
	return time.Since(c.started)
}

// ManualClock only moves when advanced. Used for deterministic headless runs
// and tests.
type ManualClock struct {
	mu      sync.Mutex
	elapsed time.Duration
}

// NewManualClock creates a clock at zero elapsed time.
func NewManualClock() *ManualClock {
	return &ManualClock{}
}

// Elapsed returns the accumulated time.
func (c *ManualClock) Elapsed() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.elapsed
}

// Advance moves the clock forward. Negative durations are ignored.
func (c *ManualClock) Advance(d time.Duration) {
	if d <= 0 {
		return
	}
	c.mu.Lock()
	c.elapsed += d
	c.mu.Unlock()
}

// TickInterval returns the frame interval for a tick rate, defaulting to 60Hz.
func TickInterval(tickRate int) time.Duration {
	if tickRate <= 0 {
		tickRate = 60
	}
	return time.Second / time.Duration(tickRate)
}
