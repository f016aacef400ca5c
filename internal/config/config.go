// Package config holds the settings of the molcheck command and loads them
// through viper from a config file, the environment and flags.
package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/rmera/molcheck"
)

// BondsConfig holds the bond inference settings.
type BondsConfig struct {
	// MaxDistance is the bond distance threshold in angstroms (default 2.0).
	MaxDistance float64 `mapstructure:"max_distance" json:"max_distance" yaml:"max_distance"`

	// ResidueWindow is the largest residue number difference allowed
	// between bonded atoms (default 1).
	ResidueWindow int `mapstructure:"residue_window" json:"residue_window" yaml:"residue_window"`

	// Workers is the number of goroutines for bond inference (default 1).
	Workers int `mapstructure:"workers" json:"workers" yaml:"workers"`
}

// Options converts the settings to molcheck.BondOptions.
func (b BondsConfig) Options() molcheck.BondOptions {
	return molcheck.BondOptions{
		MaxDistance:   b.MaxDistance,
		ResidueWindow: b.ResidueWindow,
		Workers:       b.Workers,
	}
}

// LogConfig holds the logging settings.
type LogConfig struct {
	Level       string `mapstructure:"level" json:"level" yaml:"level"`
	Format      string `mapstructure:"format" json:"format" yaml:"format"` // "json" or "console"
	Development bool   `mapstructure:"development" json:"development" yaml:"development"`
}

// OutputConfig selects how results are printed.
type OutputConfig struct {
	Format string `mapstructure:"format" json:"format" yaml:"format"` // "json" or "yaml"
}

// CacheConfig controls the validation result cache.
type CacheConfig struct {
	// TTL is how long a result is kept for identical content (default 10m).
	TTL time.Duration `mapstructure:"ttl" json:"ttl" yaml:"ttl"`
}

// MetricsConfig controls the Prometheus metrics written after a run.
type MetricsConfig struct {
	// File is where metrics are written in text format. Empty disables them.
	File string `mapstructure:"file" json:"file" yaml:"file"`
}

// Config is the full configuration of the molcheck command.
type Config struct {
	Bonds   BondsConfig   `mapstructure:"bonds" json:"bonds" yaml:"bonds"`
	Log     LogConfig     `mapstructure:"log" json:"log" yaml:"log"`
	Output  OutputConfig  `mapstructure:"output" json:"output" yaml:"output"`
	Cache   CacheConfig   `mapstructure:"cache" json:"cache" yaml:"cache"`
	Metrics MetricsConfig `mapstructure:"metrics" json:"metrics" yaml:"metrics"`
}

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("bonds.max_distance", molcheck.DefaultMaxBondDistance)
	v.SetDefault("bonds.residue_window", molcheck.DefaultResidueWindow)
	v.SetDefault("bonds.workers", 1)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("log.development", false)
	v.SetDefault("output.format", "json")
	v.SetDefault("cache.ttl", 10*time.Minute)
	v.SetDefault("metrics.file", "")
}

// Load reads the configuration from v, after registering the defaults, and
// validates it.
func Load(v *viper.Viper) (*Config, error) {
	SetDefaults(v)
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks that all values are in range.
func (c *Config) Validate() error {
	if err := c.Bonds.Options().Check(); err != nil {
		return fmt.Errorf("config: bonds: %w", err)
	}
	switch c.Output.Format {
	case "json", "yaml":
	default:
		return fmt.Errorf("config: output.format must be json or yaml, got %q", c.Output.Format)
	}
	switch c.Log.Format {
	case "json", "console":
	default:
		return fmt.Errorf("config: log.format must be json or console, got %q", c.Log.Format)
	}
	if c.Cache.TTL < 0 {
		return fmt.Errorf("config: cache.ttl can't be negative")
	}
	return nil
}
