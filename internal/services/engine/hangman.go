package engine

import (
	"strings"

	"github.com/mcoot/guessr/internal/model"
)

// NormalizeLetter trims and lowercases input and checks it is one letter a-z
func NormalizeLetter(input string) (string, error) {
	letter := strings.ToLower(strings.TrimSpace(input))
	if len(letter) != 1 || letter[0] < 'a' || letter[0] > 'z' {
		return "", model.ErrInvalidLetter
	}
	return letter, nil
}

// GuessLetter adds letter to the game's guesses. A miss costs one turn;
// repeating a letter changes nothing. Finished is recomputed after every
// guess and never reverts.
func GuessLetter(game *model.Hangman, input string) (model.LetterResult, error) {
	if game.Finished {
		return "", model.ErrGameFinished
	}
	letter, err := NormalizeLetter(input)
	if err != nil {
		return "", err
	}
	if game.HasGuessed(letter) {
		return model.LetterRepeated, nil
	}

	game.Guesses = append(game.Guesses, letter)

	result := model.LetterHit
	if !strings.Contains(game.Answer, letter) {
		result = model.LetterMiss
		if game.Turns > 0 {
			game.Turns--
		}
	}

	game.Finished = game.Finished || game.Turns == 0 || game.AllLettersGuessed()
	return result, nil
}

// Masked renders the answer with unguessed letters as underscores, e.g. "c _ t"
func Masked(game *model.Hangman) string {
	parts := make([]string, 0, len(game.Answer))
	for _, r := range game.Answer {
		if game.HasGuessed(string(r)) {
			parts = append(parts, string(r))
		} else {
			parts = append(parts, "_")
		}
	}
	return strings.Join(parts, " ")
}
