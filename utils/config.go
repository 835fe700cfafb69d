package utils

import (
	"encoding/json"
	"flag"
	"os"
	"time"

	"github.com/pkg/errors"
)

// ErrInvalidConfig is returned by Validate for unusable settings
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the configuration for the simulation driver
type Config struct {
	Width          int      `json:"width"`
	Height         int      `json:"height"`
	FrameRate      Duration `json:"frame_rate"`
	MaxGenerations int      `json:"max_generations"` // 0 runs until extinction
	Seed           int64    `json:"seed"`            // 0 seeds from the clock
	StopOnCycle    bool     `json:"stop_on_cycle"`
	CycleWindow    int      `json:"cycle_window"`
	MetricsAddr    string   `json:"metrics_addr"` // empty disables the metrics endpoint
}

// DefaultConfig returns the 10x10, 250ms setup
func DefaultConfig() Config {
	return Config{
		Width:       10,
		Height:      10,
		FrameRate:   Duration(250 * time.Millisecond),
		CycleWindow: 5,
	}
}

// LoadConfig loads configuration from JSON file, keeping defaults for absent keys
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// Validate rejects settings the driver cannot run with
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return errors.Wrapf(ErrInvalidConfig, "grid must be at least 1x1, got %dx%d", c.Width, c.Height)
	case c.FrameRate < 0:
		return errors.Wrapf(ErrInvalidConfig, "frame_rate must not be negative, got %s", c.FrameRate)
	case c.MaxGenerations < 0:
		return errors.Wrapf(ErrInvalidConfig, "max_generations must not be negative, got %d", c.MaxGenerations)
	case c.StopOnCycle && c.CycleWindow <= 0:
		return errors.Wrapf(ErrInvalidConfig, "cycle_window must be positive, got %d", c.CycleWindow)
	}
	return nil
}

// BindFlags registers command-line overrides for every field on fs
func (c *Config) BindFlags(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "height", c.Height, "grid height in cells")
	fs.Var(&c.FrameRate, "frame-rate", "pause between frames")
	fs.IntVar(&c.MaxGenerations, "max-generations", c.MaxGenerations, "stop after this many generations (0 = until extinction)")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "random seed (0 = clock)")
	fs.BoolVar(&c.StopOnCycle, "stop-on-cycle", c.StopOnCycle, "stop when the board repeats a recent state")
	fs.IntVar(&c.CycleWindow, "cycle-window", c.CycleWindow, "number of recent states checked for repeats")
	fs.StringVar(&c.MetricsAddr, "metrics-addr", c.MetricsAddr, "serve Prometheus metrics on this address")
}

// Duration is a time.Duration that reads "250ms" style strings from JSON and flags
type Duration time.Duration

// String implements flag.Value
func (d Duration) String() string { return time.Duration(d).String() }

// Set implements flag.Value
func (d *Duration) Set(s string) error {
	v, err := time.ParseDuration(s)
	if err != nil {
		return errors.Wrapf(err, "[Duration.Set] bad duration %q", s)
	}
	*d = Duration(v)
	return nil
}

// UnmarshalJSON accepts either a duration string or integer nanoseconds
func (d *Duration) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		return d.Set(s)
	}
	var n int64
	if err := json.Unmarshal(b, &n); err != nil {
		return errors.Wrapf(err, "[Duration.UnmarshalJSON] expected string or integer, got %s", b)
	}
	*d = Duration(n)
	return nil
}

// MarshalJSON writes the duration as a string
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}
