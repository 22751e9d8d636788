package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/mcoot/guessr/internal/model"
	"github.com/mcoot/guessr/internal/services/engine"
)

// Number session text
const (
	numberIntro   = "Select a number between 1 - 100."
	numberInvalid = "That is not a valid option. Select a number between 1 - 100."
	numberTooHigh = "That number is too high. Guess again!"
	numberTooLow  = "That number is too low. Guess again!"
	numberCorrect = "That is correct! You've won!"
)

// hangmanQuit suspends a hangman session
const hangmanQuit = "quit"

// NumberGuesser applies guesses to stored number games
type NumberGuesser interface {
	GuessNumber(ctx context.Context, id model.GameID, guess int) (*model.NumberGuessingGame, model.GuessResult, error)
}

// LetterGuesser applies guesses to stored hangman games
type LetterGuesser interface {
	GuessLetter(ctx context.Context, id model.GameID, letter string) (*model.Hangman, model.LetterResult, error)
}

// Session drives interactive games over a Prompter
type Session struct {
	prompter Prompter
}

// NewSession creates a Session using prompter for all input and output
func NewSession(prompter Prompter) *Session {
	return &Session{prompter: prompter}
}

// PlayNumber runs the guess loop for game until it is won or the player
// quits. Invalid input or end of input suspends the game. The returned game
// reflects the last stored state.
func (s *Session) PlayNumber(ctx context.Context, guesser NumberGuesser, game *model.NumberGuessingGame) (*model.NumberGuessingGame, error) {
	s.prompter.Print(numberIntro)

	for !game.Finished {
		input, err := s.prompter.Prompt("> ")
		if err != nil && !errors.Is(err, io.EOF) {
			return game, err
		}

		guess := engine.QuitGuess
		if err == nil {
			guess = engine.ParseGuess(input)
		}

		updated, result, err := guesser.GuessNumber(ctx, game.ID, guess)
		if err != nil {
			return game, err
		}
		game = updated

		switch result {
		case model.GuessQuit:
			s.prompter.Print(numberInvalid)
			s.prompter.Print(fmt.Sprintf("Game %d saved. Resume with: guessr number resume %d", game.ID, game.ID))
			return game, nil
		case model.GuessTooHigh:
			s.prompter.Print(numberTooHigh)
		case model.GuessTooLow:
			s.prompter.Print(numberTooLow)
		case model.GuessCorrect:
			s.prompter.Print(numberCorrect)
		}
	}

	return game, nil
}

// PlayHangman runs the letter loop for game until it finishes or the
// player types quit. End of input also suspends the game.
func (s *Session) PlayHangman(ctx context.Context, guesser LetterGuesser, game *model.Hangman) (*model.Hangman, error) {
	for !game.Finished {
		s.printHangman(game)

		input, err := s.prompter.Prompt("Guess a letter: ")
		if errors.Is(err, io.EOF) || (err == nil && strings.EqualFold(strings.TrimSpace(input), hangmanQuit)) {
			s.prompter.Print(fmt.Sprintf("Game %d saved. Resume with: guessr hangman resume %d", game.ID, game.ID))
			return game, nil
		}
		if err != nil {
			return game, err
		}

		updated, result, err := guesser.GuessLetter(ctx, game.ID, input)
		if errors.Is(err, model.ErrInvalidLetter) {
			s.prompter.Print("Please enter a single letter a-z.")
			continue
		}
		if err != nil {
			return game, err
		}
		game = updated

		switch result {
		case model.LetterRepeated:
			s.prompter.Print("You already guessed that letter.")
		case model.LetterHit:
			s.prompter.Print("Good guess!")
		case model.LetterMiss:
			s.prompter.Print("Nope.")
		}
	}

	if game.Won() {
		s.prompter.Print(fmt.Sprintf("You won! The word was %q.", game.Answer))
	} else {
		s.prompter.Print(fmt.Sprintf("Out of turns! The word was %q.", game.Answer))
	}
	return game, nil
}

func (s *Session) printHangman(game *model.Hangman) {
	s.prompter.Print("")
	s.prompter.Print("Word:    " + engine.Masked(game))
	s.prompter.Print(fmt.Sprintf("Turns:   %d", game.Turns))
	if len(game.Guesses) > 0 {
		s.prompter.Print("Guessed: " + strings.Join(game.Guesses, " "))
	}
}
