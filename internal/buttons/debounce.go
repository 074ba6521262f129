// Package buttons turns the raw levels of the NEXT and PREV push buttons
// into debounced press events.
//
// The package never reads a clock: callers pass a monotonic millisecond
// timestamp into every poll, which keeps the state machine deterministic.
package buttons

// DebounceMS is how long a raw level must hold before it is accepted.
const DebounceMS = 50

// Debouncer tracks one button. Levels are logical: true means pressed.
type Debouncer struct {
	Raw          bool   // last raw level seen
	Stable       bool   // committed level
	PrevStable   bool   // committed level before the latest commit
	LastChangeMS uint64 // when Raw last changed
}

// NewDebouncer starts a debouncer settled at level.
func NewDebouncer(level bool) Debouncer {
	return Debouncer{Raw: level, Stable: level, PrevStable: level}
}

// Update feeds one raw sample taken at nowMS and reports whether it
// completed a press (a committed not-pressed to pressed transition).
//
// Any raw change restarts the window, so bounces shorter than DebounceMS
// never commit. Once the window has elapsed every poll commits, which makes
// PrevStable catch up with Stable on the next poll and turns the press into
// a single event.
func (d *Debouncer) Update(raw bool, nowMS uint64) bool {
	if raw != d.Raw {
		d.Raw = raw
		d.LastChangeMS = nowMS
	}

	if nowMS-d.LastChangeMS >= DebounceMS {
		d.PrevStable = d.Stable
		d.Stable = d.Raw
		return !d.PrevStable && d.Stable
	}
	return false
}
