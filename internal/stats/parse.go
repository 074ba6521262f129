package stats

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"
)

// ParseCPUTimes parses the aggregate line at the top of /proc/stat:
//
//	cpu  user nice system idle iowait irq softirq steal guest guest_nice
//
// At least user..idle must be present; missing trailing buckets are zero.
func ParseCPUTimes(procStat string) (CPUTimes, error) {
	line := procStat
	if i := strings.IndexByte(line, '\n'); i >= 0 {
		line = line[:i]
	}

	fields := strings.Fields(line)
	if len(fields) < 5 || !strings.HasPrefix(fields[0], "cpu") {
		return CPUTimes{}, fmt.Errorf("invalid /proc/stat cpu line: %q", line)
	}

	var vals [10]uint64
	for i := 1; i < len(fields) && i <= len(vals); i++ {
		v, err := strconv.ParseUint(fields[i], 10, 64)
		if err != nil {
			if i <= 4 {
				return CPUTimes{}, fmt.Errorf("failed to parse cpu field %d: %w", i, err)
			}
			break
		}
		vals[i-1] = v
	}

	return CPUTimes{
		User:      vals[0],
		Nice:      vals[1],
		System:    vals[2],
		Idle:      vals[3],
		IOWait:    vals[4],
		IRQ:       vals[5],
		SoftIRQ:   vals[6],
		Steal:     vals[7],
		Guest:     vals[8],
		GuestNice: vals[9],
	}, nil
}

// ParseMemInfo extracts MemTotal and MemAvailable (kB) from /proc/meminfo.
// MemTotal is required; a kernel without MemAvailable reports 0 available.
func ParseMemInfo(procMeminfo string) (Memory, error) {
	scanner := bufio.NewScanner(strings.NewReader(procMeminfo))

	mem := Memory{}
	foundTotal, foundAvail := false, false

	for scanner.Scan() {
		parts := strings.Fields(scanner.Text())
		if len(parts) < 2 {
			continue
		}

		key := strings.TrimSuffix(parts[0], ":")
		if key != "MemTotal" && key != "MemAvailable" {
			continue
		}
		val, err := strconv.ParseInt(parts[1], 10, 64)
		if err != nil {
			return Memory{}, fmt.Errorf("failed to parse %s: %w", key, err)
		}

		if key == "MemTotal" {
			mem.TotalKB = val
			foundTotal = true
		} else {
			mem.AvailableKB = val
			foundAvail = true
		}
		if foundTotal && foundAvail {
			break
		}
	}

	if err := scanner.Err(); err != nil {
		return Memory{}, fmt.Errorf("error scanning /proc/meminfo: %w", err)
	}
	if !foundTotal {
		return Memory{}, fmt.Errorf("MemTotal not found in /proc/meminfo")
	}
	return mem, nil
}

// ParseLoadAvg parses the first three fields of /proc/loadavg.
func ParseLoadAvg(procLoadavg string) (LoadAvg, error) {
	fields := strings.Fields(procLoadavg)
	if len(fields) < 3 {
		return LoadAvg{}, fmt.Errorf("invalid /proc/loadavg: %q", strings.TrimSpace(procLoadavg))
	}

	var vals [3]float64
	for i := range vals {
		v, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return LoadAvg{}, fmt.Errorf("failed to parse loadavg field %d: %w", i, err)
		}
		vals[i] = v
	}
	return LoadAvg{Load1: vals[0], Load5: vals[1], Load15: vals[2]}, nil
}

// ParseUptime returns the first field of /proc/uptime, in seconds. The
// second (idle) field must be present too.
func ParseUptime(procUptime string) (float64, error) {
	fields := strings.Fields(procUptime)
	if len(fields) < 2 {
		return 0, fmt.Errorf("invalid /proc/uptime: %q", strings.TrimSpace(procUptime))
	}
	up, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse uptime: %w", err)
	}
	if _, err := strconv.ParseFloat(fields[1], 64); err != nil {
		return 0, fmt.Errorf("failed to parse idle time: %w", err)
	}
	return up, nil
}

// ParseMilliCelsius converts a sysfs temperature reading (an integer in
// thousandths of a degree) to degrees.
func ParseMilliCelsius(raw string) (float64, error) {
	fields := strings.Fields(raw)
	if len(fields) == 0 {
		return 0, fmt.Errorf("empty temperature reading")
	}
	milli, err := strconv.ParseInt(fields[0], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse temperature: %w", err)
	}
	return float64(milli) / 1000, nil
}
