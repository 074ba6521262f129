package stats

import (
	"context"

	"github.com/rileyhilliard/lcdstat/internal/errors"
	"github.com/rileyhilliard/lcdstat/internal/logger"
)

func sourceErr(source string, cause error) error {
	return errors.SourceUnavailable(source, cause)
}

// Sampler turns Source readings into Snapshots, carrying the CPU counters
// between calls. Not safe for concurrent use.
type Sampler struct {
	src Source
	cpu CPUCounters
	log logger.Logger
}

// NewSampler creates a sampler over src. A nil log discards messages.
func NewSampler(src Source, log logger.Logger) *Sampler {
	if log == nil {
		log = logger.Noop()
	}
	return &Sampler{src: src, log: log}
}

// Sample reads every metric once. Any failing mandatory read fails the
// whole sample with a SOURCE error and no snapshot; CPU counters only move
// when the CPU read succeeded.
func (s *Sampler) Sample(ctx context.Context) (*Snapshot, error) {
	times, err := s.src.CPUTimes(ctx)
	if err != nil {
		return nil, err
	}
	usage := SampleCPUUsage(&s.cpu, times)

	mem, err := s.src.Memory(ctx)
	if err != nil {
		return nil, err
	}
	if mem.AvailableKB < 0 || mem.AvailableKB > mem.TotalKB {
		clamped := mem.AvailableKB
		if clamped < 0 {
			clamped = 0
		}
		if clamped > mem.TotalKB {
			clamped = mem.TotalKB
		}
		s.log.Debug("clamping available memory %d kB to %d kB (total %d kB)", mem.AvailableKB, clamped, mem.TotalKB)
		mem.AvailableKB = clamped
	}

	load, err := s.src.LoadAvg(ctx)
	if err != nil {
		return nil, err
	}

	uptime, err := s.src.Uptime(ctx)
	if err != nil {
		return nil, err
	}

	return &Snapshot{
		CPUUsagePercent: usage,
		MemTotalKB:      mem.TotalKB,
		MemAvailableKB:  mem.AvailableKB,
		Load1:           load.Load1,
		Load5:           load.Load5,
		Load15:          load.Load15,
		UptimeSeconds:   uptime,
		CPUTempC:        s.src.Temperature(ctx),
	}, nil
}
