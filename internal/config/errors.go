package config

import "errors"

var (
	// ErrNoConfig is returned by the file loaders when no config file exists
	// at any searched location.
	ErrNoConfig = errors.New("no config file")

	// ErrInvalidFormat indicates an output format other than table, text or json.
	ErrInvalidFormat = errors.New("invalid output format")

	// ErrInvalidLogLevel indicates a log level zerolog does not know.
	ErrInvalidLogLevel = errors.New("invalid log level")
)
