package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// parseEnv overlays TOKENKEEPER_* environment variables onto config. A .env
// file in the working directory is loaded first when present; variables
// already set in the process environment win over it. Unset variables leave
// the current value untouched.
func parseEnv(config *Config) error {
	_ = godotenv.Load()

	if err := env.Parse(config); err != nil {
		return fmt.Errorf("env config: %w", err)
	}
	return nil
}
