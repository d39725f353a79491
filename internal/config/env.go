package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix marks the environment variables read by parseEnv.
const EnvPrefix = "LIGHTBNB_"

// parseEnv overlays config with LIGHTBNB_* environment variables. Variables
// already present in the process environment win over a .env file.
func parseEnv(config *Config) error {
	// .env is optional
	_ = godotenv.Load()

	k := koanf.New(".")
	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil)
	if err != nil {
		return fmt.Errorf("load env: %w", err)
	}

	if err := k.Unmarshal("", config); err != nil {
		return fmt.Errorf("decode env: %w", err)
	}
	return nil
}
