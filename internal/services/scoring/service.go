package scoring

import (
	"context"
	"fmt"

	"github.com/mcoot/guessr/internal/model"
	"github.com/mcoot/guessr/internal/storage"
)

// Service builds the scoreboard from stored players and games
type Service struct {
	storage storage.Storage
}

// New creates a new scoring Service
func New(storage storage.Storage) *Service {
	return &Service{
		storage: storage,
	}
}

// Scoreboard returns every player's score, highest first
func (s *Service) Scoreboard(ctx context.Context) ([]model.ScoreEntry, error) {
	players, err := s.storage.ListPlayers(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}
	numberGames, err := s.storage.ListNumberGames(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("list number games: %w", err)
	}
	hangmen, err := s.storage.ListHangmen(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("list hangman games: %w", err)
	}

	games := make([]model.Outcome, 0, len(numberGames)+len(hangmen))
	for _, g := range numberGames {
		games = append(games, g)
	}
	for _, g := range hangmen {
		games = append(games, g)
	}

	return Sorted(Scoreboard(players, games)), nil
}
