package config

import (
	"testing"

	"github.com/rileyhilliard/lcdstat/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr string
	}{
		{name: "defaults", modify: func(*Config) {}},
		{
			name:    "future version",
			modify:  func(c *Config) { c.Version = CurrentConfigVersion + 1 },
			wantErr: "from the future",
		},
		{
			name:    "no chip",
			modify:  func(c *Config) { c.Chip = "" },
			wantErr: "No gpio chip",
		},
		{
			name:    "duplicate lcd pins",
			modify:  func(c *Config) { c.LCD.D5 = c.LCD.D4 },
			wantErr: "lcd.d4 and lcd.d5 both use line 13",
		},
		{
			name:    "button collides with lcd",
			modify:  func(c *Config) { c.Buttons.Prev = c.LCD.RS },
			wantErr: "lcd.rs and buttons.prev both use line 26",
		},
		{
			name: "disabled buttons may overlap",
			modify: func(c *Config) {
				c.Buttons.Enabled = false
				c.Buttons.Next = c.LCD.RS
			},
		},
		{
			name:    "negative offset",
			modify:  func(c *Config) { c.LCD.E = -1 },
			wantErr: "lcd.e: offset -1 is out of range",
		},
		{
			name:    "offset too large",
			modify:  func(c *Config) { c.Buttons.Next = MaxOffset + 1 },
			wantErr: "out of range",
		},
		{
			name:    "unknown backend",
			modify:  func(c *Config) { c.Stats.Backend = "sysctl" },
			wantErr: "Unknown stats backend 'sysctl'",
		},
		{
			name:    "empty proc root",
			modify:  func(c *Config) { c.Stats.ProcRoot = "" },
			wantErr: "proc_root is empty",
		},
		{
			name:   "gopsutil ignores proc root",
			modify: func(c *Config) { c.Stats.Backend = BackendGopsutil; c.Stats.ProcRoot = "" },
		},
		{
			name:    "no temperature sources",
			modify:  func(c *Config) { c.Stats.TempSources = nil },
			wantErr: "No temperature sources",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)

			err := Validate(cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.IsCode(err, errors.ErrConfig))
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
