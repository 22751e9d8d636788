package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mcoot/guessr/internal/factory"
)

var (
	cfg    *Config
	logger *slog.Logger
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	var envErr error
	cfg, envErr = DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "guessr",
		Short: "Number guessing and hangman in the terminal",
		Long: `guessr plays guess-the-number and hangman at the console.

Players, games and their progress are stored (SQLite by default), so an
unfinished game can be resumed later and wins count towards the scoreboard.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if envErr != nil {
				return envErr
			}
			if cfg.Output != "text" && cfg.Output != "json" {
				return fmt.Errorf("unknown output format %q: must be text or json", cfg.Output)
			}
			logger = cfg.Logger(cmd.ErrOrStderr())
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfg.Storage, "storage", cfg.Storage, "Storage backend: memory, redis, sqlite (env: GUESSR_STORAGE)")
	flags.StringVar(&cfg.SQLitePath, "sqlite-path", cfg.SQLitePath, "SQLite database path (env: GUESSR_SQLITE_PATH)")
	flags.StringVar(&cfg.RedisURL, "redis-url", cfg.RedisURL, "Redis URL (env: GUESSR_REDIS_URL)")
	flags.StringVar(&cfg.Dictionary, "dictionary", cfg.Dictionary, "Hangman word list, one word per line (env: GUESSR_DICTIONARY)")
	flags.StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json")
	flags.BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "Verbose logging")

	// Add subcommands
	rootCmd.AddCommand(newPlayerCmd())
	rootCmd.AddCommand(newNumberCmd())
	rootCmd.AddCommand(newHangmanCmd())
	rootCmd.AddCommand(newGamesCmd())
	rootCmd.AddCommand(newScoreboardCmd())
	rootCmd.AddCommand(newRemoteCmd())

	return rootCmd
}

// Execute runs the root command until it finishes or ctx is cancelled
func Execute(ctx context.Context) {
	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		NewOutput(cfg.Output, os.Stderr).PrintError(err)
		os.Exit(1)
	}
}

// withApp opens the configured storage for the duration of fn
func withApp(cmd *cobra.Command, fn func(ctx context.Context, app *factory.App) error) error {
	ctx := cmd.Context()
	app, err := factory.New(ctx, cfg.Config, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := app.Close(); err != nil {
			logger.Warn("failed to close storage", slog.String("error", err.Error()))
		}
	}()
	return fn(ctx, app)
}
