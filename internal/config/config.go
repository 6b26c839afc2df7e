// Package config loads server configuration from the environment, with an
// optional .env file for local development.
package config

import (
	"log/slog"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the server configuration
type Config struct {
	Host string `env:"BANKER_HOST" envDefault:""`
	Port int    `env:"BANKER_PORT" envDefault:"8080"`

	// StorageType selects the storage backend: "memory" or "redis"
	StorageType string `env:"BANKER_STORAGE" envDefault:"memory"`
	RedisURL    string `env:"BANKER_REDIS_URL" envDefault:"redis://localhost:6379"`

	// Passcode enables banker auth on mutating endpoints when non-empty
	Passcode string `env:"BANKER_PASSCODE"`

	LogLevel slog.Level `env:"BANKER_LOG_LEVEL" envDefault:"info"`
}

// Load reads configuration from the environment. A missing .env file is fine.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
