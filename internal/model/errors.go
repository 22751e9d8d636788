package model

import (
	"errors"
	"fmt"
)

// Common errors used across the application
var (
	// Player errors
	ErrPlayerNotFound = errors.New("player not found")
	ErrEmptyName      = errors.New("name must not be empty")
	ErrDuplicateName  = errors.New("name is already taken")

	// Game errors
	ErrGameNotFound     = errors.New("game not found")
	ErrGameFinished     = errors.New("game is already finished")
	ErrMalformedWord    = errors.New("only lowercase words allowed")
	ErrInvalidLetter    = errors.New("guess must be a single letter a-z")
	ErrInvalidTurns     = errors.New("turns must be positive")
	ErrAnswerOutOfRange = errors.New("answer must be between 1 and 100")

	// Dictionary errors
	ErrDictionaryNotLoaded = errors.New("dictionary not loaded")
)

// ValidationError reports that an entity was rejected at creation time.
// It unwraps to one of the sentinel errors above.
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// IsValidation reports whether err is (or wraps) a ValidationError
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
