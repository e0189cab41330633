// Package config provides environment-based configuration loading for the
// lobby server.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// ServerConfig holds HTTP listener settings.
type ServerConfig struct {
	// Host is the bind address for the HTTP listener.
	Host string `env:"HOST"`
	// Port is the TCP port for the HTTP listener.
	Port int `env:"PORT" envDefault:"7378"`
	// ShutdownTimeout bounds how long a graceful shutdown may take.
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"30s"`
}

// Addr returns the "host:port" listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `env:"LOG_LEVEL" envDefault:"info"`
	// Format is the log output format: "json" or "text".
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

// SlogLevel maps the configured level name onto a slog level.
func (l LoggingConfig) SlogLevel() slog.Level {
	switch l.Level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ArchiveConfig holds archive store settings.
type ArchiveConfig struct {
	// StorageType selects the archive backend: "memory" or "redis".
	StorageType string `env:"STORAGE_TYPE" envDefault:"memory"`
	// RedisURL is the Redis connection URL, used when StorageType is "redis".
	RedisURL string `env:"REDIS_URL" envDefault:"redis://localhost:6379"`
	// RecordTTL is how long Redis keeps archived game records.
	RecordTTL time.Duration `env:"ARCHIVE_RECORD_TTL" envDefault:"168h"`
}

// Config holds all lobby server configuration, loaded from the environment.
type Config struct {
	Server  ServerConfig
	Logging LoggingConfig
	Archive ArchiveConfig
}

// Load reads configuration from the environment. A .env file in the
// working directory is applied first when present; missing files are fine,
// deployments set the environment directly.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks the configuration for values that cannot work.
func (c Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Server.Port)
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %q", c.Logging.Level)
	}

	switch c.Logging.Format {
	case "json", "text":
	default:
		return fmt.Errorf("invalid log format: %q", c.Logging.Format)
	}

	switch c.Archive.StorageType {
	case "memory", "redis":
	default:
		return fmt.Errorf("invalid storage type: %q", c.Archive.StorageType)
	}

	if c.Archive.StorageType == "redis" && c.Archive.RedisURL == "" {
		return errors.New("REDIS_URL required when STORAGE_TYPE=redis")
	}

	if c.Archive.RecordTTL <= 0 {
		return fmt.Errorf("invalid archive record ttl: %v", c.Archive.RecordTTL)
	}

	return nil
}
