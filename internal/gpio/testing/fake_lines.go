// Package testing provides test doubles for the gpio package.
package testing

import (
	"fmt"
	"sync"
	"time"

	"github.com/rileyhilliard/lcdstat/internal/gpio"
)

// Operation names recorded in Call.Op.
const (
	OpSet   = "set"
	OpGet   = "get"
	OpSleep = "sleep"
	OpClose = "close"
)

// Call records one operation against a FakeLines.
type Call struct {
	Op     string
	Offset int
	Value  bool
	Delay  time.Duration
}

// String renders the call compactly for assertion diffs.
func (c Call) String() string {
	switch c.Op {
	case OpSet, OpGet:
		v := 0
		if c.Value {
			v = 1
		}
		return fmt.Sprintf("%s(%d)=%d", c.Op, c.Offset, v)
	case OpSleep:
		return fmt.Sprintf("sleep(%s)", c.Delay)
	default:
		return c.Op
	}
}

// Set builds an expected write call.
func Set(offset int, value bool) Call { return Call{Op: OpSet, Offset: offset, Value: value} }

// Sleep builds an expected delay call.
func Sleep(d time.Duration) Call { return Call{Op: OpSleep, Delay: d} }

// Get builds an expected read call.
func Get(offset int, value bool) Call { return Call{Op: OpGet, Offset: offset, Value: value} }

// FakeLines simulates a requested line group. Output writes update the
// simulated level so a later Get observes them; input levels are driven by
// the test with SetLevel. Every operation is recorded, and the Sleep method
// can be injected as a driver's sleeper so delays interleave with writes.
type FakeLines struct {
	mu       sync.Mutex
	levels   map[int]bool
	getErrs  map[int]error
	setLimit int
	setErr   error
	sets     int

	Calls  []Call
	Closed bool
}

// NewFakeLines creates an empty fake line group.
func NewFakeLines() *FakeLines {
	return &FakeLines{
		levels:  make(map[int]bool),
		getErrs: make(map[int]error),
	}
}

// SetLevel drives the level a subsequent Get(offset) will read.
func (f *FakeLines) SetLevel(offset int, value bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.levels[offset] = value
}

// FailGet makes every Get(offset) return err. A nil err clears the fault.
func (f *FakeLines) FailGet(offset int, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err == nil {
		delete(f.getErrs, offset)
		return
	}
	f.getErrs[offset] = err
}

// FailSetAfter lets n more Set calls succeed, then fails every later one with err.
func (f *FakeLines) FailSetAfter(n int, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.setLimit = f.sets + n
	f.setErr = err
}

func (f *FakeLines) Set(offset int, value bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.setErr != nil && f.sets >= f.setLimit {
		return f.setErr
	}
	f.sets++
	f.levels[offset] = value
	f.Calls = append(f.Calls, Set(offset, value))
	return nil
}

func (f *FakeLines) Get(offset int) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err, ok := f.getErrs[offset]; ok {
		return false, err
	}
	v := f.levels[offset]
	f.Calls = append(f.Calls, Get(offset, v))
	return v, nil
}

func (f *FakeLines) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Closed = true
	f.Calls = append(f.Calls, Call{Op: OpClose})
	return nil
}

// Sleep records a delay without waiting.
func (f *FakeLines) Sleep(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Calls = append(f.Calls, Sleep(d))
}

// Writes returns the recorded Set and Sleep calls in order.
func (f *FakeLines) Writes() []Call {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []Call
	for _, c := range f.Calls {
		if c.Op == OpSet || c.Op == OpSleep {
			out = append(out, c)
		}
	}
	return out
}

// Reset forgets recorded calls but keeps levels and faults.
func (f *FakeLines) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Calls = nil
}

// Request records one call to FakeChip.Request.
type Request struct {
	Consumer  string
	Offsets   []int
	Direction gpio.Direction
}

// FakeChip hands out FakeLines per consumer name.
type FakeChip struct {
	mu   sync.Mutex
	errs map[string]error

	Lines    map[string]*FakeLines
	Requests []Request
	Closed   bool
}

// NewFakeChip creates a fake chip with no configured failures.
func NewFakeChip() *FakeChip {
	return &FakeChip{
		errs:  make(map[string]error),
		Lines: make(map[string]*FakeLines),
	}
}

// FailRequest makes Request fail for the given consumer.
func (c *FakeChip) FailRequest(consumer string, err error) *FakeChip {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.errs[consumer] = err
	return c
}

func (c *FakeChip) Request(consumer string, offsets []int, dir gpio.Direction) (gpio.Lines, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Requests = append(c.Requests, Request{Consumer: consumer, Offsets: offsets, Direction: dir})
	if err, ok := c.errs[consumer]; ok {
		return nil, err
	}
	l, ok := c.Lines[consumer]
	if !ok {
		l = NewFakeLines()
		c.Lines[consumer] = l
	}
	return l, nil
}

func (c *FakeChip) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Closed = true
	return nil
}

var (
	_ gpio.Lines = (*FakeLines)(nil)
	_ gpio.Chip  = (*FakeChip)(nil)
)
