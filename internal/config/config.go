package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/mgpai22/srt2vtt/internal/logging"
)

const defaultSettleDelay = 200 * time.Millisecond

type Config struct {
	Convert ConvertConfig `yaml:"convert"`
	Watch   WatchConfig   `yaml:"watch"`
	Logging LoggingConfig `yaml:"logging"`
}

type ConvertConfig struct {
	StrictExtension bool `yaml:"strict_extension"`
	TimestampsOnly  bool `yaml:"timestamps_only"`
}

type WatchConfig struct {
	Dir         string         `yaml:"dir"`
	OutputDir   string         `yaml:"output_dir"`
	// nil means unset; an explicit 0 disables the delay
	SettleDelay *time.Duration `yaml:"settle_delay"`
}

// Delay returns the settle delay, or the default when it was never set.
func (w WatchConfig) Delay() time.Duration {
	if w.SettleDelay == nil {
		return defaultSettleDelay
	}
	return *w.SettleDelay
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	cfg := Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads a YAML file, fills defaults and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	c.applyDefaults()

	if _, err := logging.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("logging.level: %w", err)
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf(
			"logging.format must be console or json, got %q",
			c.Logging.Format,
		)
	}
	if c.Watch.Delay() < 0 {
		return fmt.Errorf("watch.settle_delay must not be negative")
	}

	return nil
}

func (c *Config) applyDefaults() {
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))

	if c.Logging.Level == "" {
		c.Logging.Level = "warn"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "console"
	}
	if c.Watch.SettleDelay == nil {
		delay := defaultSettleDelay
		c.Watch.SettleDelay = &delay
	}
}
