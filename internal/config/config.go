package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
)

// Storage backends
const (
	StorageMemory = "memory"
	StorageRedis  = "redis"
	StorageSQLite = "sqlite"
)

// Config is the environment configuration shared by the CLI and the server.
// CLI flags override these values.
type Config struct {
	Storage    string `env:"GUESSR_STORAGE"     envDefault:"sqlite"`
	SQLitePath string `env:"GUESSR_SQLITE_PATH"`
	RedisURL   string `env:"GUESSR_REDIS_URL"   envDefault:"redis://localhost:6379/0"`
	Dictionary string `env:"GUESSR_DICTIONARY"`
	Port       int    `env:"GUESSR_PORT"        envDefault:"8080"`
	ServerURL  string `env:"GUESSR_SERVER"      envDefault:"http://localhost:8080"`
}

// Load parses the environment and fills in path defaults
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.SQLitePath == "" {
		cfg.SQLitePath = DefaultSQLitePath()
	}
	return cfg, nil
}

// Validate checks the storage selection and the settings it needs
func (c Config) Validate() error {
	switch c.Storage {
	case StorageMemory:
	case StorageRedis:
		if c.RedisURL == "" {
			return fmt.Errorf("redis storage requires a redis url")
		}
	case StorageSQLite:
		if c.SQLitePath == "" {
			return fmt.Errorf("sqlite storage requires a database path")
		}
	default:
		return fmt.Errorf("unknown storage %q: must be memory, redis or sqlite", c.Storage)
	}
	return nil
}

// DefaultSQLitePath returns ~/.guessr/guessr.db, or a relative path when
// there is no home directory
func DefaultSQLitePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".guessr", "guessr.db")
	}
	return filepath.Join(home, ".guessr", "guessr.db")
}
