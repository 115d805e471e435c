package generator

import (
	"fmt"
	"time"

	itoml "github.com/cnosdb/sensorgen/pkg/toml"
)

const (
	// DefaultPath is where readings are stored when no path is configured.
	DefaultPath = "data/metrics.db"

	// DefaultCount is the number of readings generated per run.
	DefaultCount = 100

	// DefaultInterval is the logical time between two consecutive readings.
	DefaultInterval = 2 * time.Second

	// DefaultProgressEvery is how many readings pass between progress notices.
	DefaultProgressEvery = 10
)

// Config represents the generator configuration.
type Config struct {
	Path          string         `toml:"path"`
	Count         int            `toml:"count"`
	Interval      itoml.Duration `toml:"interval"`
	Seed          int64          `toml:"seed"`
	ProgressEvery int            `toml:"progress-every"`

	Temperature FieldSpec `toml:"temperature"`
	Pressure    FieldSpec `toml:"pressure"`
	Humidity    FieldSpec `toml:"humidity"`
	FlowRate    FieldSpec `toml:"flow-rate"`
}

// NewConfig builds a new configuration with default values.
func NewConfig() *Config {
	return &Config{
		Path:          DefaultPath,
		Count:         DefaultCount,
		Interval:      itoml.Duration(DefaultInterval),
		ProgressEvery: DefaultProgressEvery,

		// °C
		Temperature: FieldSpec{Base: 25.0, Jitter: 2.0, Drift: 0.1, Precision: 2},
		// bar
		Pressure: FieldSpec{Base: 1.013, Jitter: 0.05, Drift: 0.001, Precision: 3},
		// %
		Humidity: FieldSpec{Base: 45.0, Jitter: 5.0, Drift: 0.05, Precision: 1},
		// L/min
		FlowRate: FieldSpec{Base: 10.0, Jitter: 1.0, Drift: 0.02, Precision: 2},
	}
}

// Validate returns an error if the config is invalid.
func (c *Config) Validate() error {
	if c.Path == "" {
		return ErrPathRequired
	}
	if c.Count < 0 {
		return ErrInvalidCount
	}
	if c.Interval <= 0 {
		return ErrInvalidInterval
	}
	if c.ProgressEvery < 0 {
		return fmt.Errorf("progress-every must not be negative: %d", c.ProgressEvery)
	}
	for _, f := range c.fields() {
		if err := f.spec.Validate(); err != nil {
			return fmt.Errorf("%s: %s", f.name, err)
		}
	}
	return nil
}

type namedField struct {
	name string
	spec FieldSpec
}

func (c *Config) fields() []namedField {
	return []namedField{
		{"temperature", c.Temperature},
		{"pressure", c.Pressure},
		{"humidity", c.Humidity},
		{"flow-rate", c.FlowRate},
	}
}
