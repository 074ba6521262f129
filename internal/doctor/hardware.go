package doctor

import (
	"context"
	"fmt"
	"strings"

	"github.com/rileyhilliard/lcdstat/internal/buttons"
	"github.com/rileyhilliard/lcdstat/internal/config"
	"github.com/rileyhilliard/lcdstat/internal/gpio"
	"github.com/rileyhilliard/lcdstat/internal/lcd"
	"github.com/rileyhilliard/lcdstat/internal/stats"
)

// ChipOpener opens a gpio chip by path.
type ChipOpener func(path string) (gpio.Chip, error)

// GPIOCheck opens the chip and requests each line group once, releasing
// them straight away. It fails when another process holds the lines.
type GPIOCheck struct {
	Config *config.Config
	Open   ChipOpener
}

func (c *GPIOCheck) Name() string     { return "gpio_lines" }
func (c *GPIOCheck) Category() string { return "GPIO" }

func (c *GPIOCheck) Run() CheckResult {
	chip, err := c.Open(c.Config.Chip)
	if err != nil {
		return CheckResult{
			Status:     StatusFail,
			Message:    fmt.Sprintf("Can't open %s: %s", c.Config.Chip, firstLine(err)),
			Suggestion: "Check the chip path and that your user is in the gpio group",
		}
	}
	defer chip.Close()

	lines, err := chip.Request(lcd.Consumer, c.Config.LCDPins().Offsets(), gpio.Input)
	if err != nil {
		return CheckResult{
			Status:     StatusFail,
			Message:    fmt.Sprintf("Display lines unavailable: %v", err),
			Suggestion: "Stop any other lcdstat instance, or fix the lcd pins in the config",
		}
	}
	_ = lines.Close()

	if !c.Config.Buttons.Enabled {
		return CheckResult{Status: StatusPass, Message: fmt.Sprintf("%s: display lines free, buttons disabled", c.Config.Chip)}
	}

	lines, err = chip.Request(buttons.Consumer, c.Config.ButtonPins().Offsets(), gpio.Input)
	if err != nil {
		return CheckResult{
			Status:     StatusWarn,
			Message:    fmt.Sprintf("Button lines unavailable: %v", err),
			Suggestion: "The display will run without page navigation",
		}
	}
	_ = lines.Close()

	return CheckResult{Status: StatusPass, Message: fmt.Sprintf("%s: display and button lines free", c.Config.Chip)}
}

// StatsCheck takes one sample from the configured source.
type StatsCheck struct {
	Source stats.Source
}

func (c *StatsCheck) Name() string     { return "stats_source" }
func (c *StatsCheck) Category() string { return "STATS" }

func (c *StatsCheck) Run() CheckResult {
	snap, err := stats.NewSampler(c.Source, nil).Sample(context.Background())
	if err != nil {
		return CheckResult{
			Status:     StatusFail,
			Message:    firstLine(err),
			Suggestion: "Check stats.proc_root, or switch stats.backend to gopsutil",
		}
	}
	return CheckResult{
		Status:  StatusPass,
		Message: fmt.Sprintf("Metrics readable (%d MB total, load %.2f)", snap.MemTotalKB/1024, snap.Load1),
	}
}

// TemperatureCheck reports whether any temperature source has a reading.
type TemperatureCheck struct {
	Source stats.Source
}

func (c *TemperatureCheck) Name() string     { return "temperature" }
func (c *TemperatureCheck) Category() string { return "STATS" }

func (c *TemperatureCheck) Run() CheckResult {
	t := c.Source.Temperature(context.Background())
	if t <= 0 {
		return CheckResult{
			Status:     StatusWarn,
			Message:    "No temperature reading, pages will show N/A",
			Suggestion: "Add a readable sysfs file to stats.temp_sources",
		}
	}
	return CheckResult{Status: StatusPass, Message: fmt.Sprintf("CPU temperature %.1fC", t)}
}

// NewHardwareChecks returns the gpio and stats checks for cfg.
func NewHardwareChecks(cfg *config.Config, open ChipOpener, src stats.Source) []Check {
	return []Check{
		&GPIOCheck{Config: cfg, Open: open},
		&StatsCheck{Source: src},
		&TemperatureCheck{Source: src},
	}
}

func firstLine(err error) string {
	msg := strings.TrimPrefix(err.Error(), "✗ ")
	if i := strings.IndexByte(msg, '\n'); i >= 0 {
		msg = msg[:i]
	}
	return msg
}
