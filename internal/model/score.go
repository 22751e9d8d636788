package model

// ScoreEntry is one player's row on the scoreboard
type ScoreEntry struct {
	PlayerID    PlayerID `json:"player_id"`
	Name        string   `json:"name"`
	Score       int      `json:"score"`
	NumberWins  int      `json:"number_wins"`
	HangmanWins int      `json:"hangman_wins"`
}
