package config

import (
	"fmt"

	"github.com/rileyhilliard/lcdstat/internal/errors"
)

// MaxOffset is the highest line offset accepted on a gpio chip.
const MaxOffset = 511

// Validate checks the config for errors and returns structured error messages.
func Validate(cfg *Config) error {
	if cfg.Version > CurrentConfigVersion {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("This config is from the future (version %d, but lcdstat only knows up to %d)", cfg.Version, CurrentConfigVersion),
			"Upgrade lcdstat or regenerate the file with 'lcdstat init --force'")
	}

	if cfg.Chip == "" {
		return errors.New(errors.ErrConfig,
			"No gpio chip configured",
			"Set 'chip' to a character device such as /dev/gpiochip0")
	}

	if err := validatePins(cfg); err != nil {
		return err
	}

	switch cfg.Stats.Backend {
	case BackendProcfs:
		if cfg.Stats.ProcRoot == "" {
			return errors.New(errors.ErrConfig,
				"stats.proc_root is empty",
				"Set it to the procfs mount, usually /proc")
		}
	case BackendGopsutil:
	default:
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Unknown stats backend '%s'", cfg.Stats.Backend),
			fmt.Sprintf("Use '%s' or '%s'", BackendProcfs, BackendGopsutil))
	}

	if len(cfg.Stats.TempSources) == 0 {
		return errors.New(errors.ErrConfig,
			"No temperature sources configured",
			"List at least one sysfs file under stats.temp_sources, e.g. /sys/class/thermal/thermal_zone0/temp")
	}

	return nil
}

type namedPin struct {
	name   string
	offset int
}

func (c *Config) namedPins() []namedPin {
	pins := []namedPin{
		{"lcd.rs", c.LCD.RS},
		{"lcd.e", c.LCD.E},
		{"lcd.d4", c.LCD.D4},
		{"lcd.d5", c.LCD.D5},
		{"lcd.d6", c.LCD.D6},
		{"lcd.d7", c.LCD.D7},
	}
	if c.Buttons.Enabled {
		pins = append(pins, namedPin{"buttons.next", c.Buttons.Next}, namedPin{"buttons.prev", c.Buttons.Prev})
	}
	return pins
}

func validatePins(cfg *Config) error {
	seen := make(map[int]string)
	for _, p := range cfg.namedPins() {
		if p.offset < 0 || p.offset > MaxOffset {
			return errors.New(errors.ErrConfig,
				fmt.Sprintf("%s: offset %d is out of range", p.name, p.offset),
				fmt.Sprintf("Line offsets run from 0 to %d", MaxOffset))
		}
		if other, ok := seen[p.offset]; ok {
			return errors.New(errors.ErrConfig,
				fmt.Sprintf("%s and %s both use line %d", other, p.name, p.offset),
				"Every display and button line needs its own offset")
		}
		seen[p.offset] = p.name
	}
	return nil
}
