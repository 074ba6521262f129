package cli

import (
	"context"

	"github.com/rileyhilliard/lcdstat/internal/app"
	"github.com/rileyhilliard/lcdstat/internal/buttons"
	"github.com/rileyhilliard/lcdstat/internal/config"
	"github.com/rileyhilliard/lcdstat/internal/errors"
	"github.com/rileyhilliard/lcdstat/internal/gpio"
	"github.com/rileyhilliard/lcdstat/internal/lcd"
	"github.com/rileyhilliard/lcdstat/internal/logger"
	"github.com/rileyhilliard/lcdstat/internal/stats"
)

// RunOptions holds options for the run command.
type RunOptions struct {
	ConfigPath string // Explicit config file (--config)
	NoButtons  bool   // Skip requesting the button lines
}

// Run loads config, opens the gpio chip and drives the display until ctx
// is cancelled.
func Run(ctx context.Context, opts RunOptions) error {
	cfg, err := config.LoadOrDefault(opts.ConfigPath)
	if err != nil {
		return err
	}
	if cfg.Debug {
		logger.SetDebug(true)
	}
	if opts.NoButtons {
		cfg.Buttons.Enabled = false
	}

	chip, err := gpio.OpenChip(cfg.Chip)
	if err != nil {
		return err
	}
	defer chip.Close()

	return runDisplay(ctx, cfg, hardware{
		chip:   chip,
		source: cfg.NewSource(),
	})
}

// hardware is what runDisplay drives. Zero-valued fields get production
// defaults.
type hardware struct {
	chip    gpio.Chip
	source  stats.Source
	clock   app.Clock
	lcdOpts []lcd.Option
}

// runDisplay acquires the display and button lines, runs the loop and
// releases everything in reverse order. Display acquisition failure is
// fatal; button acquisition failure only disables navigation.
func runDisplay(ctx context.Context, cfg *config.Config, hw hardware) error {
	lcdLog := logger.NewEnvLogger("lcd")
	appLog := logger.NewEnvLogger("app")

	pins := cfg.LCDPins()
	lines, err := hw.chip.Request(lcd.Consumer, pins.Offsets(), gpio.Output)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrGPIO,
			"Can't acquire the display lines",
			"Check the lcd pins in your config and that no other process holds them")
	}

	display, err := lcd.Open(lines, pins, append([]lcd.Option{lcd.WithLogger(lcdLog)}, hw.lcdOpts...)...)
	if err != nil {
		_ = lines.Close()
		return err
	}
	defer display.Close()

	if err := display.Clear(); err != nil {
		return err
	}

	opts := []app.Option{app.WithLogger(appLog)}
	if hw.clock != nil {
		opts = append(opts, app.WithClock(hw.clock))
	}

	if cfg.Buttons.Enabled {
		btnPins := cfg.ButtonPins()
		btnLines, err := hw.chip.Request(buttons.Consumer, btnPins.Offsets(), gpio.Input)
		if err != nil {
			appLog.Warn("buttons unavailable, running without navigation: %v", err)
		} else {
			btn := buttons.New(btnLines, btnPins, logger.NewEnvLogger("buttons"))
			defer btn.Close()
			opts = append(opts, app.WithButtons(btn))
		}
	}

	sampler := stats.NewSampler(hw.source, logger.NewEnvLogger("stats"))
	return app.NewLoop(sampler, display, opts...).Run(ctx)
}
