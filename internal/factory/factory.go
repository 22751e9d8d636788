package factory

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/mcoot/guessr/internal/config"
	"github.com/mcoot/guessr/internal/dependencies/clock"
	"github.com/mcoot/guessr/internal/dependencies/random"
	"github.com/mcoot/guessr/internal/services/dictionary"
	"github.com/mcoot/guessr/internal/services/game"
	"github.com/mcoot/guessr/internal/services/player"
	"github.com/mcoot/guessr/internal/services/scoring"
	"github.com/mcoot/guessr/internal/storage"
	"github.com/mcoot/guessr/internal/storage/memory"
	redisstorage "github.com/mcoot/guessr/internal/storage/redis"
	sqlitestorage "github.com/mcoot/guessr/internal/storage/sqlite"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	DictionaryService *dictionary.Service
	PlayerService     *player.Service
	ScoringService    *scoring.Service
	GameController    *game.Controller
}

// Close releases the storage backend
func (a *App) Close() error {
	return a.Storage.Close()
}

// New opens the configured storage backend and wires all services.
// A nil logger discards output.
func New(ctx context.Context, cfg config.Config, logger *slog.Logger) (*App, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	store, err := openStorage(ctx, cfg)
	if err != nil {
		return nil, err
	}
	logger.Debug("storage opened", slog.String("storage", cfg.Storage))

	return newWithDependencies(store, clock.New(), random.New(), logger), nil
}

func openStorage(ctx context.Context, cfg config.Config) (storage.Storage, error) {
	switch cfg.Storage {
	case config.StorageMemory:
		return memory.New(), nil
	case config.StorageRedis:
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = cfg.RedisURL
		return redisstorage.New(redisCfg)
	case config.StorageSQLite:
		if err := os.MkdirAll(filepath.Dir(cfg.SQLitePath), 0o700); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
		return sqlitestorage.Open(ctx, cfg.SQLitePath)
	default:
		return nil, fmt.Errorf("unknown storage %q", cfg.Storage)
	}
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, rnd random.Random, logger *slog.Logger) *App {
	dictService := dictionary.New(store, rnd, logger)
	playerService := player.New(store, clk, logger)
	scoringService := scoring.New(store)
	gameController := game.NewController(store, dictService, clk, rnd, logger)

	return &App{
		Storage:           store,
		Clock:             clk,
		Random:            rnd,
		DictionaryService: dictService,
		PlayerService:     playerService,
		ScoringService:    scoringService,
		GameController:    gameController,
	}
}

// LoadDictionary loads the hangman word list. An explicit path is read
// and stored; otherwise stored words are used, falling back to the
// built-in list.
func (a *App) LoadDictionary(ctx context.Context, path string) error {
	if path != "" {
		return a.DictionaryService.LoadFromFile(ctx, path)
	}
	if err := a.DictionaryService.LoadFromStorage(ctx); err == nil && a.DictionaryService.IsLoaded() {
		return nil
	}
	return a.DictionaryService.LoadDefault(ctx)
}
