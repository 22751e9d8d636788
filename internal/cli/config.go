package cli

import (
	"io"
	"log/slog"

	"github.com/mcoot/guessr/internal/config"
)

// Config holds CLI configuration: the environment settings plus
// presentation flags
type Config struct {
	config.Config

	Output  string
	Verbose bool
}

// DefaultConfig returns a Config seeded from the environment. A malformed
// environment is reported by the returned error; the Config still carries
// usable defaults.
func DefaultConfig() (*Config, error) {
	env, err := config.Load()
	if err != nil {
		env = config.Config{
			Storage:    config.StorageSQLite,
			SQLitePath: config.DefaultSQLitePath(),
			Port:       8080,
			ServerURL:  "http://localhost:8080",
		}
	}
	return &Config{
		Config: env,
		Output: "text",
	}, err
}

// Logger returns a text logger on w at warn level, or debug when verbose
func (c *Config) Logger(w io.Writer) *slog.Logger {
	level := slog.LevelWarn
	if c.Verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
