package doctor

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/rileyhilliard/lcdstat/internal/buttons"
	"github.com/rileyhilliard/lcdstat/internal/config"
	"github.com/rileyhilliard/lcdstat/internal/gpio"
	gpiotest "github.com/rileyhilliard/lcdstat/internal/gpio/testing"
	"github.com/rileyhilliard/lcdstat/internal/lcd"
	"github.com/rileyhilliard/lcdstat/internal/stats"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func opener(chip *gpiotest.FakeChip, err error) ChipOpener {
	return func(string) (gpio.Chip, error) {
		if err != nil {
			return nil, err
		}
		return chip, nil
	}
}

func TestGPIOCheck(t *testing.T) {
	t.Run("lines free", func(t *testing.T) {
		chip := gpiotest.NewFakeChip()
		r := (&GPIOCheck{Config: config.DefaultConfig(), Open: opener(chip, nil)}).Run()

		assert.Equal(t, StatusPass, r.Status)
		require.Len(t, chip.Requests, 2)
		assert.Equal(t, lcd.Consumer, chip.Requests[0].Consumer)
		assert.Equal(t, buttons.Consumer, chip.Requests[1].Consumer)
		assert.True(t, chip.Lines[lcd.Consumer].Closed)
		assert.True(t, chip.Lines[buttons.Consumer].Closed)
		assert.True(t, chip.Closed)
	})

	t.Run("chip missing", func(t *testing.T) {
		r := (&GPIOCheck{Config: config.DefaultConfig(), Open: opener(nil, fmt.Errorf("no such device"))}).Run()
		assert.Equal(t, StatusFail, r.Status)
		assert.Contains(t, r.Message, "no such device")
	})

	t.Run("display lines busy", func(t *testing.T) {
		chip := gpiotest.NewFakeChip().FailRequest(lcd.Consumer, fmt.Errorf("device or resource busy"))
		r := (&GPIOCheck{Config: config.DefaultConfig(), Open: opener(chip, nil)}).Run()
		assert.Equal(t, StatusFail, r.Status)
		assert.Len(t, chip.Requests, 1)
		assert.True(t, chip.Closed)
	})

	t.Run("button lines busy", func(t *testing.T) {
		chip := gpiotest.NewFakeChip().FailRequest(buttons.Consumer, fmt.Errorf("device or resource busy"))
		r := (&GPIOCheck{Config: config.DefaultConfig(), Open: opener(chip, nil)}).Run()
		assert.Equal(t, StatusWarn, r.Status)
	})

	t.Run("buttons disabled", func(t *testing.T) {
		cfg := config.DefaultConfig()
		cfg.Buttons.Enabled = false
		chip := gpiotest.NewFakeChip()
		r := (&GPIOCheck{Config: cfg, Open: opener(chip, nil)}).Run()
		assert.Equal(t, StatusPass, r.Status)
		assert.Len(t, chip.Requests, 1)
		assert.Contains(t, r.Message, "buttons disabled")
	})
}

func procFs(t *testing.T, temp string) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	files := map[string]string{
		"/proc/stat":    "cpu  100 0 50 850 0 0 0 0 0 0\n",
		"/proc/meminfo": "MemTotal:       2048000 kB\nMemAvailable:   1024000 kB\n",
		"/proc/loadavg": "0.42 0.30 0.25 1/123 4567\n",
		"/proc/uptime":  "3725.50 7000.00\n",
	}
	if temp != "" {
		files["/sys/temp"] = temp
	}
	for name, body := range files {
		require.NoError(t, afero.WriteFile(fs, name, []byte(body), 0o644))
	}
	return fs
}

func TestStatsCheck(t *testing.T) {
	src := stats.NewProcSourceFs(procFs(t, ""), "/proc", []string{"/sys/temp"})
	r := (&StatsCheck{Source: src}).Run()
	assert.Equal(t, StatusPass, r.Status)
	assert.Contains(t, r.Message, "2000 MB total")
	assert.Contains(t, r.Message, "load 0.42")

	fs := procFs(t, "")
	require.NoError(t, fs.Remove("/proc/loadavg"))
	r = (&StatsCheck{Source: stats.NewProcSourceFs(fs, "/proc", nil)}).Run()
	assert.Equal(t, StatusFail, r.Status)
	assert.Contains(t, r.Message, "loadavg")
	assert.NotContains(t, r.Message, "\n")
}

func TestTemperatureCheck(t *testing.T) {
	src := stats.NewProcSourceFs(procFs(t, "48500\n"), "/proc", []string{"/sys/temp"})
	r := (&TemperatureCheck{Source: src}).Run()
	assert.Equal(t, StatusPass, r.Status)
	assert.Contains(t, r.Message, "48.5C")

	src = stats.NewProcSourceFs(procFs(t, ""), "/proc", []string{"/sys/temp"})
	r = (&TemperatureCheck{Source: src}).Run()
	assert.Equal(t, StatusWarn, r.Status)
}

func TestConfigChecks(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", dir)

	t.Run("explicit path missing", func(t *testing.T) {
		results := RunAll(NewConfigChecks(filepath.Join(dir, "missing.yaml")))
		require.Len(t, results, 2)
		assert.Equal(t, StatusFail, results[0].Status)
		assert.Equal(t, StatusFail, results[1].Status)
	})

	t.Run("valid file", func(t *testing.T) {
		path := filepath.Join(dir, "good.yaml")
		require.NoError(t, config.Save(config.DefaultConfig(), path))

		results := RunAll(NewConfigChecks(path))
		assert.Equal(t, StatusPass, results[0].Status)
		assert.Contains(t, results[0].Message, path)
		assert.Equal(t, StatusPass, results[1].Status)
	})

	t.Run("invalid file", func(t *testing.T) {
		path := filepath.Join(dir, "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("version: 99\n"), 0o644))

		results := RunAll(NewConfigChecks(path))
		assert.Equal(t, StatusPass, results[0].Status)
		assert.Equal(t, StatusFail, results[1].Status)
	})
}
