package config

import (
	"fmt"

	"github.com/caarlos0/env/v10"
)

// parseEnv overlays cfg with RECIPEBOX_* variables. Unset variables keep
// the current value. A nil environ means the process environment.
func parseEnv(cfg *Config, environ map[string]string) error {
	opts := env.Options{Prefix: EnvPrefix, Environment: environ}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return fmt.Errorf("failed to parse environment: %w", err)
	}
	return nil
}
