package storage

import (
	"context"
	"io"

	"github.com/mcoot/guessr/internal/model"
)

// PlayerFilter selects players in ListPlayers; nil selects all
type PlayerFilter func(*model.Player) bool

// NumberGameFilter selects games in ListNumberGames; nil selects all
type NumberGameFilter func(*model.NumberGuessingGame) bool

// HangmanFilter selects games in ListHangmen; nil selects all
type HangmanFilter func(*model.Hangman) bool

// Storage defines the interface for data persistence.
// Create operations assign the entity's ID. List operations return
// entities ordered by ID.
type Storage interface {
	io.Closer

	// Player operations
	CreatePlayer(ctx context.Context, player *model.Player) error
	GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error)
	ListPlayers(ctx context.Context, filter PlayerFilter) ([]*model.Player, error)
	SavePlayer(ctx context.Context, player *model.Player) error

	// Number guessing game operations
	CreateNumberGame(ctx context.Context, game *model.NumberGuessingGame) error
	GetNumberGame(ctx context.Context, id model.GameID) (*model.NumberGuessingGame, error)
	ListNumberGames(ctx context.Context, filter NumberGameFilter) ([]*model.NumberGuessingGame, error)
	SaveNumberGame(ctx context.Context, game *model.NumberGuessingGame) error

	// Hangman operations
	CreateHangman(ctx context.Context, game *model.Hangman) error
	GetHangman(ctx context.Context, id model.GameID) (*model.Hangman, error)
	ListHangmen(ctx context.Context, filter HangmanFilter) ([]*model.Hangman, error)
	SaveHangman(ctx context.Context, game *model.Hangman) error

	// Dictionary operations
	GetDictionaryWords(ctx context.Context) ([]string, error)
	SaveDictionaryWords(ctx context.Context, words []string) error
}

// NumberGamesByPlayer returns a filter matching number games owned by playerID.
// A zero playerID matches every game.
func NumberGamesByPlayer(playerID model.PlayerID) NumberGameFilter {
	if playerID == 0 {
		return nil
	}
	return func(g *model.NumberGuessingGame) bool { return g.PlayerID == playerID }
}

// HangmenByPlayer returns a filter matching hangman games owned by playerID.
// A zero playerID matches every game.
func HangmenByPlayer(playerID model.PlayerID) HangmanFilter {
	if playerID == 0 {
		return nil
	}
	return func(g *model.Hangman) bool { return g.PlayerID == playerID }
}

// PlayerByName returns a filter matching the player with the given name
func PlayerByName(name string) PlayerFilter {
	return func(p *model.Player) bool { return p.Name == name }
}
