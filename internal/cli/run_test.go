package cli

import (
	"context"
	"errors"
	"testing"

	"github.com/rileyhilliard/lcdstat/internal/app"
	"github.com/rileyhilliard/lcdstat/internal/buttons"
	"github.com/rileyhilliard/lcdstat/internal/config"
	lcderrors "github.com/rileyhilliard/lcdstat/internal/errors"
	"github.com/rileyhilliard/lcdstat/internal/gpio"
	gpiotest "github.com/rileyhilliard/lcdstat/internal/gpio/testing"
	"github.com/rileyhilliard/lcdstat/internal/lcd"
	"github.com/rileyhilliard/lcdstat/internal/stats"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakeProcSource(t *testing.T) stats.Source {
	t.Helper()
	fs := afero.NewMemMapFs()
	files := map[string]string{
		"/proc/stat":                            "cpu  100 0 100 800 0 0 0 0 0 0\n",
		"/proc/meminfo":                         "MemTotal: 2048000 kB\nMemAvailable: 1024000 kB\n",
		"/proc/loadavg":                         "0.10 0.20 0.30 1/100 42\n",
		"/proc/uptime":                          "120.00 200.00\n",
		"/sys/class/thermal/thermal_zone0/temp": "45000\n",
	}
	for path, content := range files {
		require.NoError(t, afero.WriteFile(fs, path, []byte(content), 0o644))
	}
	return stats.NewProcSourceFs(fs, "", nil)
}

// newHardware wires a fake chip whose display lines record sleeps, and a
// clock that cancels ctx once stopAtMS is reached.
func newHardware(t *testing.T, stopAtMS uint64) (context.Context, *gpiotest.FakeChip, *gpiotest.FakeLines, hardware) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	chip := gpiotest.NewFakeChip()
	display := gpiotest.NewFakeLines()
	chip.Lines[lcd.Consumer] = display

	clock := app.NewFakeClock(0)
	clock.OnAfter(func(nowMS uint64) {
		if nowMS >= stopAtMS {
			cancel()
		}
	})

	return ctx, chip, display, hardware{
		chip:    chip,
		source:  fakeProcSource(t),
		clock:   clock,
		lcdOpts: []lcd.Option{lcd.WithSleeper(display.Sleep)},
	}
}

func TestRunDisplay_RequestsAndReleasesLines(t *testing.T) {
	ctx, chip, display, hw := newHardware(t, 200)
	cfg := config.DefaultConfig()

	err := runDisplay(ctx, cfg, hw)
	require.NoError(t, err)

	require.Len(t, chip.Requests, 2)
	assert.Equal(t, gpiotest.Request{Consumer: lcd.Consumer, Offsets: []int{26, 19, 13, 6, 5, 11}, Direction: gpio.Output}, chip.Requests[0])
	assert.Equal(t, gpiotest.Request{Consumer: buttons.Consumer, Offsets: []int{20, 21}, Direction: gpio.Input}, chip.Requests[1])

	assert.True(t, display.Closed)
	assert.True(t, chip.Lines[buttons.Consumer].Closed)

	writes := display.Writes()
	require.NotEmpty(t, writes)
	assert.Equal(t, gpiotest.Sleep(lcd.ClearDelay), writes[len(writes)-1], "display cleared on shutdown")
}

func TestRunDisplay_ButtonsDisabled(t *testing.T) {
	ctx, chip, _, hw := newHardware(t, 100)
	cfg := config.DefaultConfig()
	cfg.Buttons.Enabled = false

	require.NoError(t, runDisplay(ctx, cfg, hw))
	require.Len(t, chip.Requests, 1)
	assert.Equal(t, lcd.Consumer, chip.Requests[0].Consumer)
}

func TestRunDisplay_ButtonFailureIsNotFatal(t *testing.T) {
	ctx, chip, display, hw := newHardware(t, 100)
	chip.FailRequest(buttons.Consumer, errors.New("line busy"))

	require.NoError(t, runDisplay(ctx, config.DefaultConfig(), hw))
	assert.True(t, display.Closed)
}

func TestRunDisplay_DisplayRequestFailure(t *testing.T) {
	ctx, chip, _, hw := newHardware(t, 100)
	chip.FailRequest(lcd.Consumer, errors.New("line busy"))

	err := runDisplay(ctx, config.DefaultConfig(), hw)
	require.Error(t, err)
	assert.True(t, lcderrors.IsCode(err, lcderrors.ErrGPIO))
	assert.Len(t, chip.Requests, 1, "buttons are not requested without a display")
}

func TestRunDisplay_InitFailure(t *testing.T) {
	ctx, _, display, hw := newHardware(t, 100)
	display.FailSetAfter(3, errors.New("bus fault"))

	err := runDisplay(ctx, config.DefaultConfig(), hw)
	require.Error(t, err)
	assert.True(t, lcderrors.IsCode(err, lcderrors.ErrDriver))
	assert.True(t, display.Closed, "lines released when init fails")
}
