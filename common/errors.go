package common

import "errors"

var (
	// ErrWorkingDir is returned when the working directory or a batch directory cannot be listed.
	ErrWorkingDir = errors.New("working directory not accessible")

	// ErrTimestampFormat is returned when a batch directory name does not match TimestampLayout.
	ErrTimestampFormat = errors.New("batch directory name is not a timestamp")

	// ErrRecordRead is returned when a measurement file cannot be read.
	ErrRecordRead = errors.New("measurement file not readable")

	// ErrRecordParse is returned when a measurement file is not valid JSON.
	ErrRecordParse = errors.New("no json data")

	// ErrMissingField is returned when valid JSON lacks end.sum_received.bits_per_second
	// or holds something other than a non-negative number there.
	ErrMissingField = errors.New("missing end.sum_received.bits_per_second")

	// ErrInvalidConfig is returned for unknown conventions, renderers, formats or directions.
	ErrInvalidConfig = errors.New("invalid configuration")
)
