package model

import (
	"strings"
	"time"
)

// PlayerID uniquely identifies a player across the system
type PlayerID int64

// Player represents a person who plays games
type Player struct {
	ID        PlayerID  `json:"id"`
	Name      string    `json:"name"` // unique, non-empty
	CreatedAt time.Time `json:"created_at"`
}

// NewPlayer validates name and returns an unsaved player.
// Uniqueness is checked by storage on create.
func NewPlayer(name string, now time.Time) (*Player, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, &ValidationError{Field: "name", Err: ErrEmptyName}
	}
	return &Player{
		Name:      name,
		CreatedAt: now,
	}, nil
}
