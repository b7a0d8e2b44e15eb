package config

import "errors"

var (
	// ErrInvalidLogLevel is returned when the configured log level is not a known zap level.
	ErrInvalidLogLevel = errors.New("log level must be one of debug, info, warn, error, dpanic, panic, fatal")
	// ErrInvalidLogEncoding is returned when the configured log encoding is neither json nor console.
	ErrInvalidLogEncoding = errors.New("log encoding must be json or console")
)
