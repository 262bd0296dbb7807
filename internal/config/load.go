package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Load reads configuration from environment variables, applying defaults for
// anything unset. Environment variables use the HANDOFF_ prefix with sections
// joined by underscores (e.g. HANDOFF_SCHEDULER_WORKER_COUNT).
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("log.level", "info")
	v.SetDefault("scheduler.worker_count", 2)
	v.SetDefault("scheduler.queue_size", 100)
	v.SetDefault("scheduler.mode", "eager")
	v.SetDefault("scheduler.delivery", "shared")

	v.SetEnvPrefix("HANDOFF")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	return &cfg, nil
}
