package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v2"
)

// Config holds the settings of the sread front end.
type Config struct {
	Prompt      string `yaml:"prompt"`
	HistoryFile string `yaml:"historyFile"`
	MaxDepth    int    `yaml:"maxDepth"`
	Debug       bool   `yaml:"debug"`
	Echo        bool   `yaml:"echo"`
	MetricsAddr string `yaml:"metricsAddr"`
}

// Default returns the configuration used when nothing else is given.
func Default() Config {
	return Config{
		Prompt:   "read> ",
		MaxDepth: 1000,
	}
}

// Load reads a YAML file on top of the defaults. An empty path returns the
// defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.UnmarshalStrict(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

// Validate checks that the values make sense.
func (c *Config) Validate() error {
	if c.MaxDepth < 0 {
		return fmt.Errorf("maxDepth must not be negative, got %d", c.MaxDepth)
	}
	return nil
}

// Set overrides a single setting by its YAML name.
func (c *Config) Set(key, val string) error {
	var err error
	switch key {
	case "prompt":
		c.Prompt = val
	case "historyFile":
		c.HistoryFile = val
	case "metricsAddr":
		c.MetricsAddr = val
	case "maxDepth":
		c.MaxDepth, err = strconv.Atoi(val)
	case "debug":
		c.Debug, err = strconv.ParseBool(val)
	case "echo":
		c.Echo, err = strconv.ParseBool(val)
	default:
		return fmt.Errorf("unknown setting %q", key)
	}
	if err != nil {
		return fmt.Errorf("invalid value for %s: %w", key, err)
	}
	return nil
}

// Apply overrides settings from a comma separated list of key=value pairs,
// left to right. Blanks around keys and values are ignored.
func (c *Config) Apply(overrides string) error {
	for _, pair := range strings.Split(overrides, ",") {
		if strings.TrimSpace(pair) == "" {
			continue
		}
		key, val, ok := strings.Cut(pair, "=")
		if !ok {
			return fmt.Errorf("setting %q has no value", strings.TrimSpace(pair))
		}
		if err := c.Set(strings.TrimSpace(key), strings.TrimSpace(val)); err != nil {
			return err
		}
	}
	return c.Validate()
}
