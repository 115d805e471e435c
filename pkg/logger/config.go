package logger

import (
	"github.com/cnosdb/sensorgen/internal/log"
)

const (
	// DefaultLogFormat is the default format of the log.
	DefaultLogFormat = "text"
	DefaultLogLevel  = "info"

	// DefaultLogMaxSize is the default size of log files.
	DefaultLogMaxSize = 64 // MB
)

type Config struct {
	log.Config
}

func NewDefaultLogConfig() *Config {
	return &Config{
		Config: log.Config{
			Level:             DefaultLogLevel,
			Format:            DefaultLogFormat,
			DisableTimestamp:  false,
			DisableStacktrace: true,
			File:              log.FileConfig{MaxSize: DefaultLogMaxSize},
		},
	}
}

// Validate checks the level and format before a logger is built from them.
func (c *Config) Validate() error {
	_, _, err := log.InitLogger(&log.Config{Level: c.Level, Format: c.Format})
	return err
}
