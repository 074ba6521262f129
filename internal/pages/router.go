package pages

import "github.com/rileyhilliard/lcdstat/internal/stats"

// Count is the size of the page ring.
const Count = 3

var (
	errLine1 = NewLine("ERR")
	errLine2 = NewLine("NO PAGE/STATS")
)

// Router holds the page ring and a cursor into it.
type Router struct {
	pages   [Count]Page
	current int
}

// NewRouter returns a router over CPU, RAM and TEMP, positioned on CPU.
func NewRouter() *Router {
	return &Router{pages: [Count]Page{CPUPage, RAMPage, TempPage}}
}

// Next advances the cursor, wrapping from the last page to the first.
func (r *Router) Next() {
	if r == nil {
		return
	}
	r.current = (r.current + 1) % Count
}

// Prev moves the cursor back, wrapping from the first page to the last.
func (r *Router) Prev() {
	if r == nil {
		return
	}
	r.current = (r.current + Count - 1) % Count
}

// Current returns the page under the cursor, or the zero Page on a nil
// router.
func (r *Router) Current() Page {
	if r == nil {
		return Page{}
	}
	return r.pages[r.current]
}

// Index returns the cursor position, 0 on a nil router.
func (r *Router) Index() int {
	if r == nil {
		return 0
	}
	return r.current
}

// Name returns the current page's name, or "NULL" on a nil router.
func (r *Router) Name() string {
	if r == nil {
		return "NULL"
	}
	if n := r.pages[r.current].Name; n != "" {
		return n
	}
	return "NONAME"
}

// Render formats s with the current page. With no snapshot, no router or a
// page without a render function it returns the fixed ERR / NO PAGE/STATS
// pair so the display always shows something.
func (r *Router) Render(s *stats.Snapshot) (Line, Line) {
	if r == nil || s == nil {
		return errLine1, errLine2
	}
	p := r.pages[r.current]
	if p.Render == nil {
		return errLine1, errLine2
	}
	return p.Render(s)
}
