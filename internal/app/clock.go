package app

import (
	"sync"
	"time"
)

// Clock supplies the loop's monotonic millisecond time and its tick wait.
type Clock interface {
	// NowMS returns milliseconds since an arbitrary fixed origin.
	NowMS() uint64
	// After delivers once d has elapsed. Equivalent to time.After.
	After(d time.Duration) <-chan time.Time
}

type realClock struct {
	start time.Time
}

// RealClock measures from the moment it is created using the monotonic
// reading carried by time.Time.
func RealClock() Clock {
	return &realClock{start: time.Now()}
}

func (c *realClock) NowMS() uint64 {
	return uint64(time.Since(c.start).Milliseconds())
}

func (c *realClock) After(d time.Duration) <-chan time.Time {
	return time.After(d)
}

// FakeClock is a manually driven Clock. After advances the clock by d and
// fires immediately, so a loop under test runs as fast as it can iterate.
type FakeClock struct {
	mu      sync.Mutex
	ms      uint64
	onAfter func(nowMS uint64)
}

// NewFakeClock starts at startMS.
func NewFakeClock(startMS uint64) *FakeClock {
	return &FakeClock{ms: startMS}
}

// OnAfter registers f to run after each After call advances the clock.
func (c *FakeClock) OnAfter(f func(nowMS uint64)) {
	c.mu.Lock()
	c.onAfter = f
	c.mu.Unlock()
}

func (c *FakeClock) NowMS() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ms
}

// Advance moves the clock forward by d.
func (c *FakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.ms += uint64(d.Milliseconds())
	c.mu.Unlock()
}

func (c *FakeClock) After(d time.Duration) <-chan time.Time {
	c.Advance(d)

	c.mu.Lock()
	now, hook := c.ms, c.onAfter
	c.mu.Unlock()
	if hook != nil {
		hook(now)
	}

	ch := make(chan time.Time, 1)
	ch <- time.UnixMilli(int64(now))
	return ch
}
