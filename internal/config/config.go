// Package config loads the CLI configuration file (.sxm.yaml). Values are
// decoded through an untyped map with mapstructure so unknown keys are
// tolerated; flags override file values at the command layer.
package config

import (
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Config holds the tool-level settings.
type Config struct {
	// DepthBound caps the guard-aware search for coverage generation.
	DepthBound int `mapstructure:"depth_bound"`

	// Listen is the HTTP server address for `sxm serve`.
	Listen string `mapstructure:"listen"`

	// LogLevel is debug, info, warn or error.
	LogLevel string `mapstructure:"log_level"`

	// Redis configures the durable session store for `sxm run`.
	Redis RedisConfig `mapstructure:"redis"`
}

// RedisConfig is the connection for the redis session store. An empty
// Addr disables persistence.
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		DepthBound: 10,
		Listen:     ":8080",
		LogLevel:   "info",
	}
}

// Load reads path and overlays it on the defaults. A missing file is not
// an error: defaults are returned.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := mapstructure.Decode(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to decode config %s: %w", path, err)
	}

	return cfg, nil
}
