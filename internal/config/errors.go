package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidServerConfigs indicates invalid HTTP server settings
	// (for example, an empty listen address or a negative timeout).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidAdpointConfigs indicates invalid upstream settings
	// (for example, a base URL without scheme or a zero concurrency limit).
	ErrInvalidAdpointConfigs = errors.New("invalid adpoint configuration")
)
