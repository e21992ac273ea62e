package config

import "errors"

// Validation errors returned by [ClientConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAPIConfigs indicates invalid API client settings
	// (for example, a missing base URL or a negative request timeout).
	ErrInvalidAPIConfigs = errors.New("invalid api configuration")
)
