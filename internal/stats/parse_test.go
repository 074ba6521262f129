package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleProcStat = `cpu  4705 356 584 3699 23 23 0 0 0 0
cpu0 1393 280 471 1216 14 12 0 0 0 0
intr 114930548 113199788 3 0 5 263 0 4
ctxt 1990473
`

func TestParseCPUTimes(t *testing.T) {
	got, err := ParseCPUTimes(sampleProcStat)
	require.NoError(t, err)

	assert.Equal(t, CPUTimes{User: 4705, Nice: 356, System: 584, Idle: 3699, IOWait: 23, IRQ: 23}, got)
}

func TestParseCPUTimes_ShortLines(t *testing.T) {
	got, err := ParseCPUTimes("cpu 10 20 30 40\n")
	require.NoError(t, err)
	assert.Equal(t, CPUTimes{User: 10, Nice: 20, System: 30, Idle: 40}, got)
}

func TestParseCPUTimes_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty", input: ""},
		{name: "too few fields", input: "cpu 1 2 3\n"},
		{name: "not a cpu line", input: "intr 1 2 3 4 5\n"},
		{name: "garbage in mandatory field", input: "cpu 1 x 3 4 5\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCPUTimes(tt.input)
			assert.Error(t, err)
		})
	}
}

func TestParseMemInfo(t *testing.T) {
	input := `MemTotal:        3884328 kB
MemFree:          204116 kB
MemAvailable:    2451924 kB
Buffers:          142360 kB
`
	got, err := ParseMemInfo(input)
	require.NoError(t, err)
	assert.Equal(t, Memory{TotalKB: 3884328, AvailableKB: 2451924}, got)
}

func TestParseMemInfo_MissingAvailable(t *testing.T) {
	got, err := ParseMemInfo("MemTotal: 1000 kB\nMemFree: 200 kB\n")
	require.NoError(t, err)
	assert.Equal(t, Memory{TotalKB: 1000}, got)
}

func TestParseMemInfo_Invalid(t *testing.T) {
	_, err := ParseMemInfo("MemFree: 200 kB\n")
	assert.ErrorContains(t, err, "MemTotal not found")

	_, err = ParseMemInfo("MemTotal: lots kB\n")
	assert.ErrorContains(t, err, "MemTotal")
}

func TestParseLoadAvg(t *testing.T) {
	got, err := ParseLoadAvg("0.42 0.30 0.20 1/234 5678\n")
	require.NoError(t, err)
	assert.Equal(t, LoadAvg{Load1: 0.42, Load5: 0.30, Load15: 0.20}, got)

	_, err = ParseLoadAvg("0.42 0.30\n")
	assert.Error(t, err)

	_, err = ParseLoadAvg("0.42 high 0.20\n")
	assert.Error(t, err)
}

func TestParseUptime(t *testing.T) {
	got, err := ParseUptime("3723.90 14000.12\n")
	require.NoError(t, err)
	assert.InDelta(t, 3723.9, got, 1e-9)

	_, err = ParseUptime("3723.90\n")
	assert.Error(t, err)

	_, err = ParseUptime("soon 1.0\n")
	assert.Error(t, err)
}

func TestParseMilliCelsius(t *testing.T) {
	got, err := ParseMilliCelsius("48312\n")
	require.NoError(t, err)
	assert.InDelta(t, 48.312, got, 1e-9)

	_, err = ParseMilliCelsius("")
	assert.Error(t, err)

	_, err = ParseMilliCelsius("warm\n")
	assert.Error(t, err)
}
