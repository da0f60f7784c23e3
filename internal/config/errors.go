package config

import "errors"

// Validation errors returned when a configuration group is incomplete or
// invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid transport settings
	// (for example, an unparsable base URL or a negative timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidLogConfigs indicates invalid logging settings
	// (for example, an unknown level name).
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
)
