package config

import (
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

// Config holds runtime configuration for the roster tool.
// Groups are embedded so each leaf tag is the full variable name.
type Config struct {
	StatsAPIConfig
	LogConfig
	MetricsConfig
	ServerConfig
}

// LogConfig controls the slog handler.
type LogConfig struct {
	Level  string `envconfig:"LOG_LEVEL" default:"info"`
	Format string `envconfig:"LOG_FORMAT" default:"text"`
}

// ServerConfig controls the HTTP listener used by the serve command.
type ServerConfig struct {
	Port string `envconfig:"PORT" default:"4000"`
}

// Load reads configuration from environment variables with sensible defaults.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	cfg.StatsAPIConfig.Provider = strings.ToLower(strings.TrimSpace(cfg.StatsAPIConfig.Provider))
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.StatsAPIConfig.Provider {
	case ProviderStatsAPI, ProviderFixture:
	default:
		return fmt.Errorf("load config: unknown provider %q", c.StatsAPIConfig.Provider)
	}
	if c.StatsAPIConfig.Timeout < 0 {
		return fmt.Errorf("load config: negative statsapi timeout %s", c.StatsAPIConfig.Timeout)
	}
	return nil
}
