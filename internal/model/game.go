package model

import "time"

// GameID uniquely identifies a game record within its game type
type GameID int64

// Number guessing bounds (inclusive)
const (
	MinAnswer = 1
	MaxAnswer = 100
)

// GuessResult is the feedback for a single number guess
type GuessResult string

const (
	GuessQuit    GuessResult = "quit"
	GuessCorrect GuessResult = "correct"
	GuessTooHigh GuessResult = "too high"
	GuessTooLow  GuessResult = "too low"
)

// Outcome is implemented by every game record that counts towards the scoreboard
type Outcome interface {
	Owner() PlayerID
	Won() bool
}

// NumberGuessingGame is a single game of guess-the-number
type NumberGuessingGame struct {
	ID       GameID   `json:"id"`
	PlayerID PlayerID `json:"player_id"`
	Answer   int      `json:"answer"`
	Guess    *int     `json:"guess"` // latest guess, nil until the first one
	Attempts int      `json:"attempts"`
	Finished bool     `json:"finished"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewNumberGame returns an unsaved game for playerID with the given answer
func NewNumberGame(playerID PlayerID, answer int, now time.Time) (*NumberGuessingGame, error) {
	if answer < MinAnswer || answer > MaxAnswer {
		return nil, &ValidationError{Field: "answer", Err: ErrAnswerOutOfRange}
	}
	return &NumberGuessingGame{
		PlayerID:  playerID,
		Answer:    answer,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Owner returns the player who owns this game
func (g *NumberGuessingGame) Owner() PlayerID {
	return g.PlayerID
}

// Won returns true if the game finished with the correct guess
func (g *NumberGuessingGame) Won() bool {
	return g.Finished && g.Guess != nil && *g.Guess == g.Answer
}

var _ Outcome = (*NumberGuessingGame)(nil)
