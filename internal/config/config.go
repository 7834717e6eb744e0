// Package config loads application configuration from the environment
package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the bot's runtime configuration
type Config struct {
	DiscordToken   string        `env:"DISCORD_TOKEN,required"`
	RedisAddr      string        `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	LogLevel       string        `env:"LOG_LEVEL" envDefault:"info"`
	ReplyTimeout   time.Duration `env:"REPLY_TIMEOUT" envDefault:"60s"`
	ReplaceTimeout time.Duration `env:"REPLACE_TIMEOUT" envDefault:"30s"`
}

// Load parses configuration from environment variables
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &cfg, nil
}

// SlogLevel converts the configured log level to a slog.Level
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
