package sim

import (
	"github.com/rileyhilliard/lcdstat/internal/buttons"
	"github.com/rileyhilliard/lcdstat/internal/pages"
)

// Screen is an in-memory display the loop draws into.
type Screen struct {
	line1, line2 pages.Line
	writes       int
}

// NewScreen returns a blank screen.
func NewScreen() *Screen {
	s := &Screen{}
	_ = s.Clear()
	return s
}

func (s *Screen) WriteLines(line1, line2 [pages.Width]byte) error {
	s.line1, s.line2 = line1, line2
	s.writes++
	return nil
}

func (s *Screen) Clear() error {
	s.line1 = pages.NewLine("")
	s.line2 = pages.NewLine("")
	return nil
}

// Lines returns the current contents.
func (s *Screen) Lines() (string, string) {
	return s.line1.String(), s.line2.String()
}

// Writes counts WriteLines calls.
func (s *Screen) Writes() int {
	return s.writes
}

// keyEvents queues key presses until the loop polls. A keyboard does not
// bounce, so presses skip the debouncer.
type keyEvents struct {
	pending []buttons.Event
}

func (k *keyEvents) push(e buttons.Event) {
	k.pending = append(k.pending, e)
}

// Poll yields one queued event per tick, matching the one-event-per-poll
// behaviour of the hardware buttons.
func (k *keyEvents) Poll(uint64) buttons.Event {
	if len(k.pending) == 0 {
		return buttons.EventNone
	}
	e := k.pending[0]
	k.pending = k.pending[1:]
	return e
}
