package logger

import (
	"log/slog"
	"strings"
)

// Config is the environment-driven logger configuration.
type Config struct {
	Env     string `env:"APP_ENV" envDefault:"development"`
	Service string `env:"APP_NAME" envDefault:"formkit"`
	Level   string `env:"LOG_LEVEL"`  // Overrides the environment default when set: debug, info, warn, error.
	Format  string `env:"LOG_FORMAT"` // Overrides the environment default when set: json or text.
}

// NewFromConfig builds a logger from cfg, applying explicit level and format
// on top of the environment defaults.
func NewFromConfig(cfg Config, opts ...Option) *slog.Logger {
	configOpts := []Option{WithEnvironment(cfg.Env, cfg.Service)}

	if cfg.Level != "" {
		var level slog.Level
		if err := level.UnmarshalText([]byte(strings.ToUpper(cfg.Level))); err == nil {
			configOpts = append(configOpts, WithLevel(level))
		}
	}
	if cfg.Format != "" {
		configOpts = append(configOpts, WithFormat(Format(strings.ToLower(cfg.Format))))
	}

	return New(append(configOpts, opts...)...)
}
