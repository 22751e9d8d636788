package game

import (
	"context"
	"log/slog"

	"github.com/mcoot/guessr/internal/dependencies/clock"
	"github.com/mcoot/guessr/internal/dependencies/random"
	"github.com/mcoot/guessr/internal/model"
	"github.com/mcoot/guessr/internal/services/dictionary"
	"github.com/mcoot/guessr/internal/services/engine"
	"github.com/mcoot/guessr/internal/storage"
)

// Controller runs game transitions against storage. Every transition
// loads the game, applies the engine rule and saves the result.
type Controller struct {
	storage     storage.Storage
	dictService *dictionary.Service
	clock       clock.Clock
	random      random.Random
	logger      *slog.Logger
}

// NewController creates a new game Controller
func NewController(
	storage storage.Storage,
	dictService *dictionary.Service,
	clock clock.Clock,
	random random.Random,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		storage:     storage,
		dictService: dictService,
		clock:       clock,
		random:      random,
		logger:      logger,
	}
}

// StartNumberGame creates a number game with a random answer for playerID
func (c *Controller) StartNumberGame(ctx context.Context, playerID model.PlayerID) (*model.NumberGuessingGame, error) {
	if _, err := c.storage.GetPlayer(ctx, playerID); err != nil {
		return nil, err
	}

	answer := c.random.Between(model.MinAnswer, model.MaxAnswer)
	game, err := model.NewNumberGame(playerID, answer, c.clock.Now())
	if err != nil {
		return nil, err
	}

	if err := c.storage.CreateNumberGame(ctx, game); err != nil {
		c.logger.Error("failed to create number game",
			slog.Int64("player_id", int64(playerID)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	c.logger.Info("number game started",
		slog.Int64("game_id", int64(game.ID)),
		slog.Int64("player_id", int64(playerID)),
	)
	return game, nil
}

// GuessNumber applies guess to the game. A quit guess leaves the stored
// game untouched.
func (c *Controller) GuessNumber(ctx context.Context, id model.GameID, guess int) (*model.NumberGuessingGame, model.GuessResult, error) {
	game, err := c.storage.GetNumberGame(ctx, id)
	if err != nil {
		return nil, "", err
	}

	result, err := engine.ApplyGuess(game, guess)
	if err != nil {
		return game, "", err
	}
	if result == model.GuessQuit {
		return game, result, nil
	}

	game.UpdatedAt = c.clock.Now()
	if err := c.storage.SaveNumberGame(ctx, game); err != nil {
		return nil, "", err
	}

	c.logger.Debug("number guessed",
		slog.Int64("game_id", int64(game.ID)),
		slog.Int("guess", guess),
		slog.String("result", string(result)),
	)
	if game.Finished {
		c.logger.Info("number game finished",
			slog.Int64("game_id", int64(game.ID)),
			slog.Int("attempts", game.Attempts),
		)
	}
	return game, result, nil
}

// StartHangman creates a hangman game for playerID. An empty word picks
// one from the dictionary.
func (c *Controller) StartHangman(ctx context.Context, playerID model.PlayerID, word string) (*model.Hangman, error) {
	if _, err := c.storage.GetPlayer(ctx, playerID); err != nil {
		return nil, err
	}

	if word == "" {
		picked, err := c.dictService.RandomWord()
		if err != nil {
			return nil, err
		}
		word = picked
	}

	game, err := model.NewHangman(playerID, word, model.DefaultTurns, c.clock.Now())
	if err != nil {
		return nil, err
	}

	if err := c.storage.CreateHangman(ctx, game); err != nil {
		c.logger.Error("failed to create hangman game",
			slog.Int64("player_id", int64(playerID)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	c.logger.Info("hangman game started",
		slog.Int64("game_id", int64(game.ID)),
		slog.Int64("player_id", int64(playerID)),
		slog.Int("length", len(game.Answer)),
	)
	return game, nil
}

// GuessLetter applies a letter guess to the game. Repeated letters are
// reported without saving.
func (c *Controller) GuessLetter(ctx context.Context, id model.GameID, letter string) (*model.Hangman, model.LetterResult, error) {
	game, err := c.storage.GetHangman(ctx, id)
	if err != nil {
		return nil, "", err
	}

	result, err := engine.GuessLetter(game, letter)
	if err != nil {
		return game, "", err
	}
	if result == model.LetterRepeated {
		return game, result, nil
	}

	game.UpdatedAt = c.clock.Now()
	if err := c.storage.SaveHangman(ctx, game); err != nil {
		return nil, "", err
	}

	c.logger.Debug("letter guessed",
		slog.Int64("game_id", int64(game.ID)),
		slog.String("result", string(result)),
		slog.Int("turns", game.Turns),
	)
	if game.Finished {
		c.logger.Info("hangman game finished",
			slog.Int64("game_id", int64(game.ID)),
			slog.Bool("won", game.Won()),
		)
	}
	return game, result, nil
}

// GetNumberGame retrieves a number game by ID
func (c *Controller) GetNumberGame(ctx context.Context, id model.GameID) (*model.NumberGuessingGame, error) {
	return c.storage.GetNumberGame(ctx, id)
}

// GetHangman retrieves a hangman game by ID
func (c *Controller) GetHangman(ctx context.Context, id model.GameID) (*model.Hangman, error) {
	return c.storage.GetHangman(ctx, id)
}

// ResumeNumberGame returns an unfinished number game
func (c *Controller) ResumeNumberGame(ctx context.Context, id model.GameID) (*model.NumberGuessingGame, error) {
	game, err := c.storage.GetNumberGame(ctx, id)
	if err != nil {
		return nil, err
	}
	if game.Finished {
		return nil, model.ErrGameFinished
	}
	return game, nil
}

// ResumeHangman returns an unfinished hangman game
func (c *Controller) ResumeHangman(ctx context.Context, id model.GameID) (*model.Hangman, error) {
	game, err := c.storage.GetHangman(ctx, id)
	if err != nil {
		return nil, err
	}
	if game.Finished {
		return nil, model.ErrGameFinished
	}
	return game, nil
}

// ListNumberGames returns number games for playerID, or all games if playerID is 0
func (c *Controller) ListNumberGames(ctx context.Context, playerID model.PlayerID) ([]*model.NumberGuessingGame, error) {
	return c.storage.ListNumberGames(ctx, storage.NumberGamesByPlayer(playerID))
}

// ListHangmen returns hangman games for playerID, or all games if playerID is 0
func (c *Controller) ListHangmen(ctx context.Context, playerID model.PlayerID) ([]*model.Hangman, error) {
	return c.storage.ListHangmen(ctx, storage.HangmenByPlayer(playerID))
}
