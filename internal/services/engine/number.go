// Package engine holds the pure state transitions for each game type.
// Nothing here performs I/O; callers persist the mutated record themselves.
package engine

import (
	"strconv"
	"strings"

	"github.com/mcoot/guessr/internal/model"
)

// QuitGuess is the guess value that ends a session without changing the game
const QuitGuess = 0

// ParseGuess converts user input to a guess. Input that is not an integer
// parses to QuitGuess.
func ParseGuess(input string) int {
	guess, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return QuitGuess
	}
	return guess
}

// ApplyGuess records guess on game and reports how it compares to the answer.
// QuitGuess leaves the game untouched.
func ApplyGuess(game *model.NumberGuessingGame, guess int) (model.GuessResult, error) {
	if game.Finished {
		return "", model.ErrGameFinished
	}
	if guess == QuitGuess {
		return model.GuessQuit, nil
	}

	game.Guess = &guess
	game.Attempts++

	switch {
	case guess == game.Answer:
		game.Finished = true
		return model.GuessCorrect, nil
	case guess > game.Answer:
		return model.GuessTooHigh, nil
	default:
		return model.GuessTooLow, nil
	}
}
