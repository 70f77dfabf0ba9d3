package app

import (
	"flag"
	"strconv"
)

// Config represents the command-line parameters for the viewer.
type Config struct {
	Sim   string
	Scale int
	TPS   int
	Seed  int64

	Width  int
	Height int
	Beta   float64
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "ising", Scale: 3, TPS: 60, Seed: 1337, Width: 256, Height: 256, Beta: 0.4}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.IntVar(&c.Width, "w", c.Width, "lattice width")
	fs.IntVar(&c.Height, "h", c.Height, "lattice height")
	fs.Float64Var(&c.Beta, "beta", c.Beta, "inverse temperature")
}

// Options converts the viewer flags into the string map consumed by sim
// factories.
func (c *Config) Options() map[string]string {
	return map[string]string{
		"w":    strconv.Itoa(c.Width),
		"h":    strconv.Itoa(c.Height),
		"seed": strconv.FormatInt(c.Seed, 10),
		"beta": strconv.FormatFloat(c.Beta, 'g', -1, 64),
	}
}
