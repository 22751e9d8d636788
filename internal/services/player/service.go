package player

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/mcoot/guessr/internal/dependencies/clock"
	"github.com/mcoot/guessr/internal/model"
	"github.com/mcoot/guessr/internal/storage"
)

// Service manages players
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	logger  *slog.Logger
}

// New creates a new player Service
func New(storage storage.Storage, clock clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		clock:   clock,
		logger:  logger,
	}
}

// Create validates name and stores a new player.
// Empty and duplicate names are rejected with a *model.ValidationError.
func (s *Service) Create(ctx context.Context, name string) (*model.Player, error) {
	player, err := model.NewPlayer(name, s.clock.Now())
	if err != nil {
		return nil, err
	}

	if err := s.storage.CreatePlayer(ctx, player); err != nil {
		if errors.Is(err, model.ErrDuplicateName) {
			return nil, &model.ValidationError{Field: "name", Err: model.ErrDuplicateName}
		}
		return nil, err
	}

	s.logger.Info("player created",
		slog.Int64("player_id", int64(player.ID)),
		slog.String("name", player.Name),
	)
	return player, nil
}

// Get retrieves a player by ID
func (s *Service) Get(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	return s.storage.GetPlayer(ctx, id)
}

// GetByName retrieves a player by exact name
func (s *Service) GetByName(ctx context.Context, name string) (*model.Player, error) {
	players, err := s.storage.ListPlayers(ctx, storage.PlayerByName(strings.TrimSpace(name)))
	if err != nil {
		return nil, err
	}
	if len(players) == 0 {
		return nil, model.ErrPlayerNotFound
	}
	return players[0], nil
}

// List returns all players ordered by ID
func (s *Service) List(ctx context.Context) ([]*model.Player, error) {
	return s.storage.ListPlayers(ctx, nil)
}

// GetOrCreate returns the player called name, creating it if needed
func (s *Service) GetOrCreate(ctx context.Context, name string) (*model.Player, error) {
	player, err := s.GetByName(ctx, name)
	if err == nil {
		return player, nil
	}
	if !errors.Is(err, model.ErrPlayerNotFound) {
		return nil, err
	}
	return s.Create(ctx, name)
}
