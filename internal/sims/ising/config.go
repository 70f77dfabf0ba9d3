package ising

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Start modes for the initial lattice.
const (
	// StartHot draws every spin uniformly from {-1, +1}.
	StartHot = "hot"
	// StartCold aligns every spin up.
	StartCold = "cold"
)

// Params holds the tunable physics and pacing values for the Ising sim.
type Params struct {
	// Beta is the inverse temperature. Values near 0.4 sit close to the
	// critical point of the model and give the most active domain dynamics.
	Beta float64 `yaml:"beta"`

	// SweepsPerFrame is how many full lattice sweeps the viewer runs per
	// displayed frame.
	SweepsPerFrame int `yaml:"sweeps_per_frame"`

	// Start selects the initial lattice: "hot" or "cold".
	Start string `yaml:"start"`
}

// Config controls the Ising simulation dimensions and parameters.
type Config struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	Seed int64 `yaml:"seed"`

	Params Params `yaml:"params"`
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:  256,
		Height: 256,
		Seed:   1337,
		Params: Params{
			Beta:           0.4,
			SweepsPerFrame: 1,
			Start:          StartHot,
		},
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["beta"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Params.Beta = parsed
		}
	}
	if v, ok := cfg["sweeps_per_frame"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Params.SweepsPerFrame = parsed
		}
	}
	if v, ok := cfg["start"]; ok {
		if v == StartHot || v == StartCold {
			c.Params.Start = v
		}
	}
	return c
}

// LoadConfig reads a YAML configuration file. Fields absent from the file
// keep their defaults.
func LoadConfig(path string) (Config, error) {
	c := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("reading ising config: %w", err)
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("parsing ising config: %w", err)
	}
	return c.sanitized(), nil
}

// sanitized clamps out-of-range values back to defaults after a YAML load.
func (c Config) sanitized() Config {
	d := DefaultConfig()
	if c.Width <= 0 {
		c.Width = d.Width
	}
	if c.Height <= 0 {
		c.Height = d.Height
	}
	if c.Params.Beta <= 0 {
		c.Params.Beta = d.Params.Beta
	}
	if c.Params.SweepsPerFrame <= 0 {
		c.Params.SweepsPerFrame = d.Params.SweepsPerFrame
	}
	if c.Params.Start != StartHot && c.Params.Start != StartCold {
		c.Params.Start = d.Params.Start
	}
	return c
}
