// Package app runs the display loop: sample host stats about once a
// second, poll the buttons and redraw the current page every tick.
package app

import (
	"context"
	"time"

	"github.com/rileyhilliard/lcdstat/internal/buttons"
	"github.com/rileyhilliard/lcdstat/internal/logger"
	"github.com/rileyhilliard/lcdstat/internal/pages"
	"github.com/rileyhilliard/lcdstat/internal/stats"
)

const (
	// TickInterval is the poll and redraw period.
	TickInterval = 20 * time.Millisecond
	// SampleInterval is the minimum gap between successful samples.
	SampleInterval = time.Second
)

// Sampler produces one snapshot per call.
type Sampler interface {
	Sample(ctx context.Context) (*stats.Snapshot, error)
}

// EventSource yields at most one navigation event per poll.
type EventSource interface {
	Poll(nowMS uint64) buttons.Event
}

// Screen is a two-line, sixteen-column character display.
type Screen interface {
	WriteLines(line1, line2 [pages.Width]byte) error
	Clear() error
}

// Loop holds the state carried between ticks. Not safe for concurrent use.
type Loop struct {
	sampler Sampler
	screen  Screen
	events  EventSource
	router  *pages.Router
	clock   Clock
	log     logger.Logger

	snap         *stats.Snapshot
	sampled      bool
	lastSampleMS uint64
	failing      bool
}

// Option configures a Loop.
type Option func(*Loop)

// WithButtons enables page navigation. Without it the loop only shows
// the first page.
func WithButtons(e EventSource) Option {
	return func(l *Loop) { l.events = e }
}

// WithClock replaces the real monotonic clock.
func WithClock(c Clock) Option {
	return func(l *Loop) { l.clock = c }
}

// WithLogger sets the loop's logger.
func WithLogger(log logger.Logger) Option {
	return func(l *Loop) { l.log = log }
}

// WithRouter replaces the default page ring.
func WithRouter(r *pages.Router) Option {
	return func(l *Loop) { l.router = r }
}

// NewLoop creates a loop drawing sampler output onto screen.
func NewLoop(sampler Sampler, screen Screen, opts ...Option) *Loop {
	l := &Loop{
		sampler: sampler,
		screen:  screen,
		router:  pages.NewRouter(),
		log:     logger.Noop(),
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.clock == nil {
		l.clock = RealClock()
	}
	return l
}

// Router exposes the page ring, e.g. for a front end that navigates
// without buttons.
func (l *Loop) Router() *pages.Router {
	return l.router
}

// Snapshot returns the most recent successful sample, or nil.
func (l *Loop) Snapshot() *stats.Snapshot {
	return l.snap
}

// Step runs one tick at nowMS: sample when due, poll, render, write.
// A failed sample keeps the previous snapshot and is retried next tick.
func (l *Loop) Step(ctx context.Context, nowMS uint64) {
	if !l.sampled || nowMS-l.lastSampleMS >= uint64(SampleInterval.Milliseconds()) {
		l.sample(ctx, nowMS)
	}

	turned := false
	if l.events != nil {
		switch l.events.Poll(nowMS) {
		case buttons.EventNext:
			l.router.Next()
			turned = true
		case buttons.EventPrev:
			l.router.Prev()
			turned = true
		}
	}

	line1, line2 := l.router.Render(l.snap)
	if turned {
		l.log.Debug("page -> %s (%d/%d) %q", l.router.Name(), l.router.Index()+1, pages.Count, line1.Trimmed())
	}
	if err := l.screen.WriteLines(line1, line2); err != nil {
		l.log.Warn("write failed: %v", err)
	}
}

func (l *Loop) sample(ctx context.Context, nowMS uint64) {
	snap, err := l.sampler.Sample(ctx)
	if err != nil {
		if !l.failing {
			l.log.Warn("sampling failed, keeping previous reading: %v", err)
			l.failing = true
		} else {
			l.log.Debug("sampling still failing: %v", err)
		}
		return
	}
	if l.failing {
		l.log.Info("sampling recovered")
		l.failing = false
	}
	l.snap = snap
	l.sampled = true
	l.lastSampleMS = nowMS
}

// Run ticks until ctx is cancelled, then clears the screen and returns nil.
func (l *Loop) Run(ctx context.Context) error {
	l.log.Info("display loop started on page %s", l.router.Name())
	for ctx.Err() == nil {
		l.Step(ctx, l.clock.NowMS())

		select {
		case <-ctx.Done():
		case <-l.clock.After(TickInterval):
		}
	}

	if err := l.screen.Clear(); err != nil {
		l.log.Warn("clear on shutdown failed: %v", err)
	}
	l.log.Info("display loop stopped")
	return nil
}
