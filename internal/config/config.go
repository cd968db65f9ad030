// Package config loads run settings for the simulator commands.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config carries the knobs shared by the run, animate and gui commands.
type Config struct {
	Width   int     `yaml:"width"`
	Height  int     `yaml:"height"`
	Wrap    bool    `yaml:"wrap"`
	Seed    int64   `yaml:"seed"`
	Density float64 `yaml:"density"`
	Pattern string  `yaml:"pattern"`
	Steps   int     `yaml:"steps"`
	Rate    float64 `yaml:"rate"`
}

// Default returns the standard configuration: a toroidal 128x96 soup.
func Default() Config {
	return Config{
		Width:   128,
		Height:  96,
		Wrap:    true,
		Seed:    1337,
		Density: 0.3,
		Steps:   100,
		Rate:    10,
	}
}

// Load reads a YAML config from path on top of the defaults, so a file only
// needs the fields it wants to change.
func Load(path string) (Config, error) {
	c := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("config: %w", err)
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	c.Normalize()
	return c, nil
}

// Normalize clamps out-of-range values to usable ones.
func (c *Config) Normalize() {
	if c.Width < 0 {
		c.Width = 0
	}
	if c.Height < 0 {
		c.Height = 0
	}
	if c.Density < 0 {
		c.Density = 0
	} else if c.Density > 1 {
		c.Density = 1
	}
	if c.Steps < 0 {
		c.Steps = 0
	}
	if c.Rate <= 0 {
		c.Rate = Default().Rate
	}
}
