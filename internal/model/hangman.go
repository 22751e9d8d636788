package model

import (
	"regexp"
	"strings"
	"time"
)

// DefaultTurns is the number of misses a hangman game allows
const DefaultTurns = 7

var wordPattern = regexp.MustCompile(`^[a-z]+$`)

// LetterResult is the feedback for a single hangman guess
type LetterResult string

const (
	LetterHit      LetterResult = "hit"
	LetterMiss     LetterResult = "miss"
	LetterRepeated LetterResult = "repeated"
)

// Hangman is a single game of hangman
type Hangman struct {
	ID       GameID   `json:"id"`
	PlayerID PlayerID `json:"player_id"`
	Answer   string   `json:"answer"`
	Guesses  []string `json:"guesses"` // single letters in guess order, no duplicates
	Turns    int      `json:"turns"`
	Finished bool     `json:"finished"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ValidWord returns true if word is a non-empty lowercase a-z word
func ValidWord(word string) bool {
	return wordPattern.MatchString(word)
}

// NewHangman validates answer and returns an unsaved game with the given turns
func NewHangman(playerID PlayerID, answer string, turns int, now time.Time) (*Hangman, error) {
	if !ValidWord(answer) {
		return nil, &ValidationError{Field: "answer", Err: ErrMalformedWord}
	}
	if turns <= 0 {
		return nil, &ValidationError{Field: "turns", Err: ErrInvalidTurns}
	}
	return &Hangman{
		PlayerID:  playerID,
		Answer:    answer,
		Guesses:   []string{},
		Turns:     turns,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// HasGuessed returns true if letter is already in the guess set
func (h *Hangman) HasGuessed(letter string) bool {
	for _, g := range h.Guesses {
		if g == letter {
			return true
		}
	}
	return false
}

// AllLettersGuessed returns true if every letter of the answer has been guessed
func (h *Hangman) AllLettersGuessed() bool {
	for _, r := range h.Answer {
		if !h.HasGuessed(string(r)) {
			return false
		}
	}
	return true
}

// Misses returns the guessed letters that are not in the answer
func (h *Hangman) Misses() []string {
	var misses []string
	for _, g := range h.Guesses {
		if !strings.Contains(h.Answer, g) {
			misses = append(misses, g)
		}
	}
	return misses
}

// Owner returns the player who owns this game
func (h *Hangman) Owner() PlayerID {
	return h.PlayerID
}

// Won returns true if the game finished with every letter guessed
func (h *Hangman) Won() bool {
	return h.Finished && h.AllLettersGuessed()
}

var _ Outcome = (*Hangman)(nil)
