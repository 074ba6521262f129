package config

import (
	"github.com/rileyhilliard/lcdstat/internal/buttons"
	"github.com/rileyhilliard/lcdstat/internal/gpio"
	"github.com/rileyhilliard/lcdstat/internal/lcd"
	"github.com/rileyhilliard/lcdstat/internal/stats"
)

// CurrentConfigVersion is the config schema version this build writes.
const CurrentConfigVersion = 1

// Metric source backends.
const (
	BackendProcfs   = "procfs"
	BackendGopsutil = "gopsutil"
)

// Config is the lcdstat.yaml configuration.
type Config struct {
	Version int          `yaml:"version" mapstructure:"version"`
	Chip    string       `yaml:"chip" mapstructure:"chip"`
	LCD     LCDConfig    `yaml:"lcd" mapstructure:"lcd"`
	Buttons ButtonConfig `yaml:"buttons" mapstructure:"buttons"`
	Stats   StatsConfig  `yaml:"stats" mapstructure:"stats"`
	Debug   bool         `yaml:"debug,omitempty" mapstructure:"debug"`
}

// LCDConfig holds the chip offsets of the display's six control lines.
type LCDConfig struct {
	RS int `yaml:"rs" mapstructure:"rs"`
	E  int `yaml:"e" mapstructure:"e"`
	D4 int `yaml:"d4" mapstructure:"d4"`
	D5 int `yaml:"d5" mapstructure:"d5"`
	D6 int `yaml:"d6" mapstructure:"d6"`
	D7 int `yaml:"d7" mapstructure:"d7"`
}

// ButtonConfig holds the navigation button inputs.
type ButtonConfig struct {
	Enabled bool `yaml:"enabled" mapstructure:"enabled"`
	Next    int  `yaml:"next" mapstructure:"next"`
	Prev    int  `yaml:"prev" mapstructure:"prev"`
}

// StatsConfig selects where metrics are read from.
type StatsConfig struct {
	// Backend is "procfs" (text files under ProcRoot) or "gopsutil".
	Backend string `yaml:"backend" mapstructure:"backend"`
	// ProcRoot is the procfs mount, usually /proc. Lets a container read
	// the host's procfs from a bind mount.
	ProcRoot string `yaml:"proc_root" mapstructure:"proc_root"`
	// TempSources are sysfs files holding millidegrees, tried in order.
	TempSources []string `yaml:"temp_sources" mapstructure:"temp_sources"`
}

// DefaultConfig returns a config matching the reference wiring of a
// Raspberry Pi header (BCM numbering).
func DefaultConfig() *Config {
	return &Config{
		Version: CurrentConfigVersion,
		Chip:    gpio.DefaultChip,
		LCD: LCDConfig{
			RS: 26,
			E:  19,
			D4: 13,
			D5: 6,
			D6: 5,
			D7: 11,
		},
		Buttons: ButtonConfig{
			Enabled: true,
			Next:    20,
			Prev:    21,
		},
		Stats: StatsConfig{
			Backend:     BackendProcfs,
			ProcRoot:    "/proc",
			TempSources: append([]string(nil), stats.DefaultTempSources...),
		},
	}
}

// LCDPins converts the display section to driver pins.
func (c *Config) LCDPins() lcd.Pins {
	return lcd.Pins{
		RS: c.LCD.RS,
		E:  c.LCD.E,
		D4: c.LCD.D4,
		D5: c.LCD.D5,
		D6: c.LCD.D6,
		D7: c.LCD.D7,
	}
}

// ButtonPins converts the buttons section to input pins.
func (c *Config) ButtonPins() buttons.Pins {
	return buttons.Pins{Next: c.Buttons.Next, Prev: c.Buttons.Prev}
}

// NewSource builds the metric source the stats section selects.
func (c *Config) NewSource() stats.Source {
	if c.Stats.Backend == BackendGopsutil {
		return stats.NewPsutilSource()
	}
	return stats.NewProcSource(c.Stats.ProcRoot, c.Stats.TempSources)
}
