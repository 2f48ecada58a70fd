package core

import (
	"sync/atomic"
	"time"
)

// Clock is a monotonic millisecond time source. The simulation reads it
// once per tick.
type Clock interface {
	Millis() int64
}

// SystemClock measures milliseconds elapsed since it was created.
type SystemClock struct {
	start time.Time
}

// NewSystemClock creates a clock starting at zero now.
func NewSystemClock() *SystemClock {
	return &SystemClock{start: time.Now()}
}

// Millis returns milliseconds since the clock was created.
func (c *SystemClock) Millis() int64 {
	return time.Since(c.start).Milliseconds()
}

// ManualClock only moves when told to. Used by tests and the headless
// simulator to step time exactly one frame at a time.
type ManualClock struct {
	ms atomic.Int64
}

// NewManualClock creates a manual clock at the given time.
func NewManualClock(start int64) *ManualClock {
	c := &ManualClock{}
	c.ms.Store(start)
	return c
}

// Millis returns the current manual time.
func (c *ManualClock) Millis() int64 {
	return c.ms.Load()
}

// Advance moves the clock forward by d milliseconds.
func (c *ManualClock) Advance(d int64) {
	c.ms.Add(d)
}

// Set jumps the clock to t.
func (c *ManualClock) Set(t int64) {
	c.ms.Store(t)
}
