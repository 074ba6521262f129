// Package stats samples host metrics for the display: CPU usage derived
// from kernel jiffies deltas, memory, load averages, uptime and CPU
// temperature.
package stats

// CPUCounters is the previous jiffies reading the usage delta is taken
// against. The zero value is unprimed.
type CPUCounters struct {
	Total       uint64
	Idle        uint64
	Initialized bool
}

// SampleCPUUsage folds a new reading into state and returns the busy
// percentage since the previous one, clamped to 0..100.
//
// The first call only primes state and returns 0. A zero total delta, or
// a total that went backwards, also return 0. The stored counters are
// replaced on every call.
func SampleCPUUsage(state *CPUCounters, r CPUTimes) float64 {
	total := r.Total()
	idle := r.IdleAll()

	if !state.Initialized {
		state.Total = total
		state.Idle = idle
		state.Initialized = true
		return 0
	}

	prevTotal, prevIdle := state.Total, state.Idle
	state.Total = total
	state.Idle = idle

	if total < prevTotal {
		return 0
	}
	totalDiff := total - prevTotal
	if totalDiff == 0 {
		return 0
	}

	// iowait can go down, so the idle delta may be negative.
	idleDiff := float64(idle) - float64(prevIdle)
	usage := 100 * (float64(totalDiff) - idleDiff) / float64(totalDiff)
	if usage < 0 {
		usage = 0
	}
	if usage > 100 {
		usage = 100
	}
	return usage
}
