package stats

// TempUnavailable is the CPUTempC sentinel for "no temperature source".
const TempUnavailable = -1.0

// Snapshot is one sampling tick's worth of metrics. Built fresh by
// Sampler.Sample and not modified afterwards.
type Snapshot struct {
	CPUUsagePercent float64 // 0..100; 0 on the priming sample
	MemTotalKB      int64
	MemAvailableKB  int64 // clamped to 0..MemTotalKB
	Load1           float64
	Load5           float64
	Load15          float64
	UptimeSeconds   float64
	CPUTempC        float64 // TempUnavailable when unknown
}

// HasTemp reports whether CPUTempC holds a real reading.
func (s *Snapshot) HasTemp() bool {
	return s.CPUTempC > 0
}

// MemUsedKB is total minus available memory.
func (s *Snapshot) MemUsedKB() int64 {
	return s.MemTotalKB - s.MemAvailableKB
}

// MemUsedPercent is the used share of total memory, or 0 when total is unknown.
func (s *Snapshot) MemUsedPercent() float64 {
	if s.MemTotalKB <= 0 {
		return 0
	}
	return 100 * float64(s.MemUsedKB()) / float64(s.MemTotalKB)
}

// CPUTimes is one reading of the aggregate jiffies line.
type CPUTimes struct {
	User      uint64
	Nice      uint64
	System    uint64
	Idle      uint64
	IOWait    uint64
	IRQ       uint64
	SoftIRQ   uint64
	Steal     uint64
	Guest     uint64
	GuestNice uint64
}

// IdleAll is idle plus iowait.
func (t CPUTimes) IdleAll() uint64 {
	return t.Idle + t.IOWait
}

// Total is every bucket, busy and idle.
func (t CPUTimes) Total() uint64 {
	nonIdle := t.User + t.Nice + t.System + t.IRQ + t.SoftIRQ + t.Steal + t.Guest + t.GuestNice
	return nonIdle + t.IdleAll()
}

// Memory is the pair of memory summary fields the display uses, in kB.
type Memory struct {
	TotalKB     int64
	AvailableKB int64
}

// LoadAvg holds the 1, 5 and 15 minute load averages.
type LoadAvg struct {
	Load1  float64
	Load5  float64
	Load15 float64
}
