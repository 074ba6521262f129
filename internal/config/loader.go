package config

import (
	"os"
	"path/filepath"

	"github.com/rileyhilliard/lcdstat/internal/errors"
	"github.com/spf13/viper"
)

const (
	// ConfigFileName is the config file looked for in the working directory.
	ConfigFileName = "lcdstat.yaml"
	// SystemConfigPath is the system-wide config location.
	SystemConfigPath = "/etc/lcdstat/config.yaml"
	// UserConfigDir is the per-user config directory, relative to home.
	UserConfigDir = ".config/lcdstat"
	// UserConfigFile is the per-user config file name.
	UserConfigFile = "config.yaml"
)

// Load reads config from the specified path, merged over DefaultConfig.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.WrapWithCode(err, errors.ErrConfig,
				"Config file not found",
				"Run 'lcdstat init' to create a config file, or specify one with --config")
		}
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to read config file",
			"Check the file exists and is valid YAML")
	}

	cfg := DefaultConfig()
	if v.IsSet("stats.temp_sources") {
		// A listed set replaces the default candidates rather than merging.
		cfg.Stats.TempSources = nil
	}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Invalid config format",
			"Check the YAML syntax in "+path)
	}
	return cfg, nil
}

// Find locates the config file using the search order:
// 1. Explicit path (from --config flag)
// 2. lcdstat.yaml in the current directory
// 3. /etc/lcdstat/config.yaml
// 4. ~/.config/lcdstat/config.yaml
//
// Returns the path to the config file, or empty string if not found.
func Find(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			if os.IsNotExist(err) {
				return "", errors.WrapWithCode(err, errors.ErrConfig,
					"Specified config file not found: "+explicit,
					"Check the path is correct")
			}
			return "", errors.WrapWithCode(err, errors.ErrConfig,
				"Cannot access config file: "+explicit,
				"Check file permissions")
		}
		return explicit, nil
	}

	for _, candidate := range searchPaths() {
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", nil
}

func searchPaths() []string {
	var paths []string
	if cwd, err := os.Getwd(); err == nil {
		paths = append(paths, filepath.Join(cwd, ConfigFileName))
	}
	paths = append(paths, SystemConfigPath)
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		paths = append(paths, filepath.Join(home, UserConfigDir, UserConfigFile))
	}
	return paths
}

// LoadOrDefault loads the config Find locates, or returns defaults when
// there is none. The returned config is validated either way.
func LoadOrDefault(explicit string) (*Config, error) {
	path, err := Find(explicit)
	if err != nil {
		return nil, err
	}

	cfg := DefaultConfig()
	if path != "" {
		cfg, err = Load(path)
		if err != nil {
			return nil, err
		}
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
