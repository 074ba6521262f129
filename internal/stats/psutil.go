package stats

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/load"
	"github.com/shirou/gopsutil/v4/mem"
	"github.com/shirou/gopsutil/v4/sensors"
)

// userHZ converts gopsutil's CPU seconds back to kernel clock ticks.
const userHZ = 100

// preferredSensors are matched against sensor keys before falling back to
// the first positive reading.
var preferredSensors = []string{"cpu", "soc", "coretemp", "k10temp"}

// PsutilSource reads metrics through gopsutil. Used where procfs text is
// not available or the host layout differs.
type PsutilSource struct{}

// NewPsutilSource creates a gopsutil-backed source.
func NewPsutilSource() *PsutilSource {
	return &PsutilSource{}
}

func ticks(seconds float64) uint64 {
	if seconds <= 0 {
		return 0
	}
	return uint64(math.Round(seconds * userHZ))
}

func (p *PsutilSource) CPUTimes(ctx context.Context) (CPUTimes, error) {
	all, err := cpu.TimesWithContext(ctx, false)
	if err != nil {
		return CPUTimes{}, sourceErr("cpu times", err)
	}
	if len(all) == 0 {
		return CPUTimes{}, sourceErr("cpu times", fmt.Errorf("no aggregate cpu entry"))
	}
	t := all[0]
	return CPUTimes{
		User:      ticks(t.User),
		Nice:      ticks(t.Nice),
		System:    ticks(t.System),
		Idle:      ticks(t.Idle),
		IOWait:    ticks(t.Iowait),
		IRQ:       ticks(t.Irq),
		SoftIRQ:   ticks(t.Softirq),
		Steal:     ticks(t.Steal),
		Guest:     ticks(t.Guest),
		GuestNice: ticks(t.GuestNice),
	}, nil
}

func (p *PsutilSource) Memory(ctx context.Context) (Memory, error) {
	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return Memory{}, sourceErr("virtual memory", err)
	}
	return Memory{
		TotalKB:     int64(vm.Total / 1024),
		AvailableKB: int64(vm.Available / 1024),
	}, nil
}

func (p *PsutilSource) LoadAvg(ctx context.Context) (LoadAvg, error) {
	avg, err := load.AvgWithContext(ctx)
	if err != nil {
		return LoadAvg{}, sourceErr("load average", err)
	}
	return LoadAvg{Load1: avg.Load1, Load5: avg.Load5, Load15: avg.Load15}, nil
}

func (p *PsutilSource) Uptime(ctx context.Context) (float64, error) {
	up, err := host.UptimeWithContext(ctx)
	if err != nil {
		return 0, sourceErr("uptime", err)
	}
	return float64(up), nil
}

func (p *PsutilSource) Temperature(ctx context.Context) float64 {
	// Partial results come back alongside a warnings error; use what we got.
	temps, _ := sensors.TemperaturesWithContext(ctx)
	return pickTemperature(temps)
}

func pickTemperature(temps []sensors.TemperatureStat) float64 {
	for _, want := range preferredSensors {
		for _, t := range temps {
			if t.Temperature > 0 && strings.Contains(strings.ToLower(t.SensorKey), want) {
				return t.Temperature
			}
		}
	}
	for _, t := range temps {
		if t.Temperature > 0 {
			return t.Temperature
		}
	}
	return TempUnavailable
}
