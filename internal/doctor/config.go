package doctor

import (
	"fmt"

	"github.com/rileyhilliard/lcdstat/internal/config"
)

// ConfigFileCheck reports which config file is in effect.
type ConfigFileCheck struct {
	ConfigPath string // Explicit path, or empty to search
}

func (c *ConfigFileCheck) Name() string     { return "config_file" }
func (c *ConfigFileCheck) Category() string { return "CONFIG" }

func (c *ConfigFileCheck) Run() CheckResult {
	path, err := config.Find(c.ConfigPath)
	if err != nil {
		return CheckResult{
			Status:     StatusFail,
			Message:    fmt.Sprintf("Error finding config: %v", firstLine(err)),
			Suggestion: "Check the --config path or run 'lcdstat init'",
		}
	}
	if path == "" {
		return CheckResult{
			Status:     StatusWarn,
			Message:    "No config file found, using built-in defaults",
			Suggestion: "Run 'lcdstat init' if your wiring differs from the defaults",
		}
	}
	return CheckResult{
		Status:  StatusPass,
		Message: fmt.Sprintf("Config file: %s", path),
	}
}

// ConfigValidCheck loads and validates the config in effect.
type ConfigValidCheck struct {
	ConfigPath string
}

func (c *ConfigValidCheck) Name() string     { return "config_valid" }
func (c *ConfigValidCheck) Category() string { return "CONFIG" }

func (c *ConfigValidCheck) Run() CheckResult {
	if _, err := config.LoadOrDefault(c.ConfigPath); err != nil {
		return CheckResult{
			Status:     StatusFail,
			Message:    firstLine(err),
			Suggestion: "Fix the reported field in your lcdstat.yaml",
		}
	}
	return CheckResult{Status: StatusPass, Message: "Config is valid"}
}

// NewConfigChecks returns the config category checks.
func NewConfigChecks(configPath string) []Check {
	return []Check{
		&ConfigFileCheck{ConfigPath: configPath},
		&ConfigValidCheck{ConfigPath: configPath},
	}
}
