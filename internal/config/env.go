package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv populates cfg from environment variables using the caarlos0/env
// library. All lookups are prefixed with "CRM_"; nested fields are mapped via
// the `env` and `envPrefix` tags defined on [ClientConfig] and its nested
// types.
//
// Returns a wrapped error if env parsing fails (e.g. a value cannot be
// converted to the target type).
func parseEnv(cfg *ClientConfig) error {
	err := env.ParseWithOptions(cfg, env.Options{Prefix: "CRM_"})
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
