package buttons

import (
	"github.com/rileyhilliard/lcdstat/internal/gpio"
	"github.com/rileyhilliard/lcdstat/internal/logger"
)

// Event is a navigation request produced by a button press.
type Event int

const (
	EventNone Event = iota
	EventNext
	EventPrev
)

// String returns a human-readable event name.
func (e Event) String() string {
	switch e {
	case EventNone:
		return "none"
	case EventNext:
		return "next"
	case EventPrev:
		return "prev"
	default:
		return "unknown"
	}
}

// Consumer is the label the button lines are requested under.
const Consumer = "lcdstat_buttons"

// Pins are the chip offsets of the two button inputs.
type Pins struct {
	Next int
	Prev int
}

// Offsets lists the pins in request order.
func (p Pins) Offsets() []int {
	return []int{p.Next, p.Prev}
}

// Buttons polls the NEXT and PREV lines of an input group.
type Buttons struct {
	lines gpio.Lines
	pins  Pins
	next  Debouncer
	prev  Debouncer
	log   logger.Logger
}

// New binds debouncers to an input line group. Both debouncers are seeded
// with the current level so a button held at startup does not fire; a
// failed read seeds "not pressed".
func New(lines gpio.Lines, pins Pins, log logger.Logger) *Buttons {
	if log == nil {
		log = logger.Noop()
	}
	b := &Buttons{lines: lines, pins: pins, log: log}
	b.next = NewDebouncer(b.initial(pins.Next))
	b.prev = NewDebouncer(b.initial(pins.Prev))
	return b
}

func (b *Buttons) initial(offset int) bool {
	v, err := b.lines.Get(offset)
	if err != nil {
		b.log.Debug("initial read of line %d failed: %v", offset, err)
		return false
	}
	return v
}

// Poll samples both buttons at nowMS and returns at most one event.
// NEXT is evaluated first and wins if both complete a press on the same
// poll; PREV's state is then left untouched until the next poll. A read
// fault on either line skips the poll entirely.
func (b *Buttons) Poll(nowMS uint64) Event {
	rawNext, err := b.lines.Get(b.pins.Next)
	if err != nil {
		b.log.Debug("read NEXT failed: %v", err)
		return EventNone
	}
	rawPrev, err := b.lines.Get(b.pins.Prev)
	if err != nil {
		b.log.Debug("read PREV failed: %v", err)
		return EventNone
	}

	if b.next.Update(rawNext, nowMS) {
		return EventNext
	}
	if b.prev.Update(rawPrev, nowMS) {
		return EventPrev
	}
	return EventNone
}

// State returns copies of the two debouncers, NEXT first.
func (b *Buttons) State() (next, prev Debouncer) {
	return b.next, b.prev
}

// Close releases the input line group.
func (b *Buttons) Close() error {
	return b.lines.Close()
}
