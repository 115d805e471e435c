package generator

import "errors"

var (
	// ErrNotConnected is returned when an operation needs the store before
	// Connect succeeded.
	ErrNotConnected = errors.New("store not connected")

	// ErrAlreadyConnected is returned when connecting a generator twice.
	ErrAlreadyConnected = errors.New("store already connected")
)

var (
	// ErrInvalidCount is returned when asked for a negative number of readings.
	ErrInvalidCount = errors.New("reading count must not be negative")

	// ErrInvalidInterval is returned when the reading interval is not positive.
	ErrInvalidInterval = errors.New("reading interval must be positive")

	// ErrPathRequired is returned when no store path is configured.
	ErrPathRequired = errors.New("store path must be specified")
)
