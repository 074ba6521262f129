package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rileyhilliard/lcdstat/internal/buttons"
	"github.com/rileyhilliard/lcdstat/internal/logger"
	"github.com/rileyhilliard/lcdstat/internal/pages"
	"github.com/rileyhilliard/lcdstat/internal/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSampler struct {
	calls int
	snaps []*stats.Snapshot
	errs  []error
}

// Sample returns the call-th canned result, repeating the last one.
func (f *fakeSampler) Sample(context.Context) (*stats.Snapshot, error) {
	i := f.calls
	f.calls++
	if i < len(f.errs) && f.errs[i] != nil {
		return nil, f.errs[i]
	}
	if i >= len(f.snaps) {
		i = len(f.snaps) - 1
	}
	return f.snaps[i], nil
}

type frame struct {
	line1, line2 string
}

type fakeScreen struct {
	frames   []frame
	clears   int
	writeErr error
}

func (s *fakeScreen) WriteLines(line1, line2 [pages.Width]byte) error {
	s.frames = append(s.frames, frame{string(line1[:]), string(line2[:])})
	return s.writeErr
}

func (s *fakeScreen) Clear() error {
	s.clears++
	return nil
}

func (s *fakeScreen) last() frame {
	return s.frames[len(s.frames)-1]
}

type scriptedEvents map[uint64]buttons.Event

func (e scriptedEvents) Poll(nowMS uint64) buttons.Event {
	return e[nowMS]
}

func cpuSnap(pct float64) *stats.Snapshot {
	return &stats.Snapshot{CPUUsagePercent: pct, CPUTempC: stats.TempUnavailable, Load1: 0.5}
}

func TestLoop_SamplesOnFirstTickThenOncePerSecond(t *testing.T) {
	sampler := &fakeSampler{snaps: []*stats.Snapshot{cpuSnap(10), cpuSnap(20), cpuSnap(30)}}
	screen := &fakeScreen{}
	l := NewLoop(sampler, screen)
	ctx := context.Background()

	for ms := uint64(0); ms < 1000; ms += 20 {
		l.Step(ctx, ms)
	}
	assert.Equal(t, 1, sampler.calls)
	assert.Equal(t, "CPU: 10.0%      ", screen.last().line1)

	l.Step(ctx, 1000)
	assert.Equal(t, 2, sampler.calls)
	assert.Equal(t, "CPU: 20.0%      ", screen.last().line1)
	assert.Len(t, screen.frames, 51, "one write per tick")
}

func TestLoop_FailedSampleKeepsPreviousSnapshot(t *testing.T) {
	boom := errors.New("boom")
	sampler := &fakeSampler{
		snaps: []*stats.Snapshot{cpuSnap(10), nil, nil, cpuSnap(40)},
		errs:  []error{nil, boom, boom},
	}
	screen := &fakeScreen{}
	log := logger.NewBufferLogger()
	l := NewLoop(sampler, screen, WithLogger(log))
	ctx := context.Background()

	l.Step(ctx, 0)
	l.Step(ctx, 1000)
	assert.Equal(t, "CPU: 10.0%      ", screen.last().line1)
	assert.True(t, log.HasLevel("warn"))

	// failure is retried on the next tick, not a second later
	l.Step(ctx, 1020)
	assert.Equal(t, 3, sampler.calls)
	l.Step(ctx, 1040)
	assert.Equal(t, 4, sampler.calls)
	assert.Equal(t, "CPU: 40.0%      ", screen.last().line1)
	assert.True(t, log.HasLevel("info"), "recovery is logged")
}

func TestLoop_NoSnapshotYetShowsFallback(t *testing.T) {
	sampler := &fakeSampler{snaps: []*stats.Snapshot{nil}, errs: []error{errors.New("no procfs")}}
	screen := &fakeScreen{}
	l := NewLoop(sampler, screen)

	l.Step(context.Background(), 0)

	assert.Nil(t, l.Snapshot())
	assert.Equal(t, frame{"ERR             ", "NO PAGE/STATS   "}, screen.last())
}

func TestLoop_ButtonsNavigate(t *testing.T) {
	sampler := &fakeSampler{snaps: []*stats.Snapshot{cpuSnap(10)}}
	screen := &fakeScreen{}
	events := scriptedEvents{20: buttons.EventNext, 40: buttons.EventNext, 60: buttons.EventPrev, 80: buttons.EventPrev, 100: buttons.EventPrev}
	l := NewLoop(sampler, screen, WithButtons(events))
	ctx := context.Background()

	var names []string
	for ms := uint64(0); ms <= 100; ms += 20 {
		l.Step(ctx, ms)
		names = append(names, l.Router().Name())
	}
	assert.Equal(t, []string{pages.NameCPU, pages.NameRAM, pages.NameTemp, pages.NameRAM, pages.NameCPU, pages.NameTemp}, names)
	assert.Equal(t, "CPU TEMP:  N/A  ", screen.last().line1)
}

func TestLoop_PageTurnIsLogged(t *testing.T) {
	sampler := &fakeSampler{snaps: []*stats.Snapshot{cpuSnap(10)}}
	log := logger.NewBufferLogger()
	l := NewLoop(sampler, &fakeScreen{}, WithButtons(scriptedEvents{20: buttons.EventPrev}), WithLogger(log))

	l.Step(context.Background(), 0)
	log.Clear()
	l.Step(context.Background(), 20)

	require.Len(t, log.Messages, 1)
	assert.Equal(t, "debug", log.Messages[0].Level)
	assert.Equal(t, `page -> TEMP (3/3) "CPU TEMP:  N/A"`, log.Messages[0].Message)
}

func TestLoop_WriteFailureDoesNotStop(t *testing.T) {
	sampler := &fakeSampler{snaps: []*stats.Snapshot{cpuSnap(10)}}
	screen := &fakeScreen{writeErr: errors.New("bus")}
	log := logger.NewBufferLogger()
	l := NewLoop(sampler, screen, WithLogger(log))

	l.Step(context.Background(), 0)
	l.Step(context.Background(), 20)

	assert.Len(t, screen.frames, 2)
	assert.True(t, log.HasLevel("warn"))
}

func TestLoop_RunClearsOnCancel(t *testing.T) {
	sampler := &fakeSampler{snaps: []*stats.Snapshot{cpuSnap(10), cpuSnap(20), cpuSnap(30)}}
	screen := &fakeScreen{}
	clock := NewFakeClock(0)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	clock.OnAfter(func(nowMS uint64) {
		if nowMS >= 2000 {
			cancel()
		}
	})

	l := NewLoop(sampler, screen, WithClock(clock))
	err := l.Run(ctx)

	require.NoError(t, err)
	assert.Equal(t, 1, screen.clears)
	assert.Len(t, screen.frames, 100, "ticks at 0..1980 ms")
	assert.Equal(t, 2, sampler.calls)
}

func TestLoop_RunAlreadyCancelled(t *testing.T) {
	screen := &fakeScreen{}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewLoop(&fakeSampler{snaps: []*stats.Snapshot{cpuSnap(1)}}, screen, WithClock(NewFakeClock(0))).Run(ctx)

	require.NoError(t, err)
	assert.Empty(t, screen.frames)
	assert.Equal(t, 1, screen.clears)
}

func TestFakeClock(t *testing.T) {
	c := NewFakeClock(100)
	assert.Equal(t, uint64(100), c.NowMS())

	c.Advance(50 * time.Millisecond)
	assert.Equal(t, uint64(150), c.NowMS())

	<-c.After(TickInterval)
	assert.Equal(t, uint64(170), c.NowMS())
}

func TestRealClockIsMonotonic(t *testing.T) {
	c := RealClock()
	a := c.NowMS()
	b := c.NowMS()
	assert.GreaterOrEqual(t, b, a)
}
