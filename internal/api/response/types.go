package response

import (
	"time"

	"github.com/mcoot/guessr/internal/model"
	"github.com/mcoot/guessr/internal/services/engine"
)

// Health is the response for the health endpoint
type Health struct {
	Status string `json:"status"`
}

// Player represents a player in API responses
type Player struct {
	ID        model.PlayerID `json:"id"`
	Name      string         `json:"name"`
	CreatedAt time.Time      `json:"created_at"`
}

// PlayerFromModel converts a model.Player to a response Player
func PlayerFromModel(p *model.Player) Player {
	return Player{
		ID:        p.ID,
		Name:      p.Name,
		CreatedAt: p.CreatedAt,
	}
}

// PlayerList is the response for GET /players
type PlayerList struct {
	Players []Player `json:"players"`
}

// PlayerListFromModel converts a slice of players
func PlayerListFromModel(players []*model.Player) PlayerList {
	list := PlayerList{Players: make([]Player, 0, len(players))}
	for _, p := range players {
		list.Players = append(list.Players, PlayerFromModel(p))
	}
	return list
}

// Scoreboard is the response for GET /scoreboard
type Scoreboard struct {
	Entries []model.ScoreEntry `json:"entries"`
}

// ScoreboardFromModel wraps scoreboard entries
func ScoreboardFromModel(entries []model.ScoreEntry) Scoreboard {
	if entries == nil {
		entries = []model.ScoreEntry{}
	}
	return Scoreboard{Entries: entries}
}

// NumberGame represents a number guessing game. The answer is only
// included once the game is finished.
type NumberGame struct {
	ID        model.GameID `json:"id"`
	Guess     *int         `json:"guess"`
	Attempts  int          `json:"attempts"`
	Finished  bool         `json:"finished"`
	Won       bool         `json:"won"`
	Answer    *int         `json:"answer,omitempty"`
	UpdatedAt time.Time    `json:"updated_at"`
}

// NumberGameFromModel converts a model.NumberGuessingGame
func NumberGameFromModel(g *model.NumberGuessingGame) NumberGame {
	resp := NumberGame{
		ID:        g.ID,
		Guess:     g.Guess,
		Attempts:  g.Attempts,
		Finished:  g.Finished,
		Won:       g.Won(),
		UpdatedAt: g.UpdatedAt,
	}
	if g.Finished {
		answer := g.Answer
		resp.Answer = &answer
	}
	return resp
}

// Hangman represents a hangman game. The answer is only included once the
// game is finished.
type Hangman struct {
	ID        model.GameID `json:"id"`
	Masked    string       `json:"masked"`
	Guesses   []string     `json:"guesses"`
	Turns     int          `json:"turns"`
	Finished  bool         `json:"finished"`
	Won       bool         `json:"won"`
	Answer    string       `json:"answer,omitempty"`
	UpdatedAt time.Time    `json:"updated_at"`
}

// HangmanFromModel converts a model.Hangman
func HangmanFromModel(g *model.Hangman) Hangman {
	resp := Hangman{
		ID:        g.ID,
		Masked:    engine.Masked(g),
		Guesses:   g.Guesses,
		Turns:     g.Turns,
		Finished:  g.Finished,
		Won:       g.Won(),
		UpdatedAt: g.UpdatedAt,
	}
	if resp.Guesses == nil {
		resp.Guesses = []string{}
	}
	if g.Finished {
		resp.Answer = g.Answer
	}
	return resp
}

// PlayerGames is the response for GET /players/{id}/games
type PlayerGames struct {
	Player       Player       `json:"player"`
	NumberGames  []NumberGame `json:"number_games"`
	HangmanGames []Hangman    `json:"hangman_games"`
}

// PlayerGamesFromModel converts a player and their games
func PlayerGamesFromModel(p *model.Player, numberGames []*model.NumberGuessingGame, hangmen []*model.Hangman) PlayerGames {
	resp := PlayerGames{
		Player:       PlayerFromModel(p),
		NumberGames:  make([]NumberGame, 0, len(numberGames)),
		HangmanGames: make([]Hangman, 0, len(hangmen)),
	}
	for _, g := range numberGames {
		resp.NumberGames = append(resp.NumberGames, NumberGameFromModel(g))
	}
	for _, g := range hangmen {
		resp.HangmanGames = append(resp.HangmanGames, HangmanFromModel(g))
	}
	return resp
}
