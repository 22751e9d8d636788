package redis

import (
	"fmt"

	"github.com/mcoot/guessr/internal/model"
)

// Key prefix for all guessr data
const keyPrefix = "guessr"

// Entity kinds, used for id sequences and index sets
const (
	kindPlayer     = "player"
	kindNumberGame = "number_game"
	kindHangman    = "hangman"
)

// sequenceKey returns the counter INCRed to allocate IDs of the given kind
func sequenceKey(kind string) string {
	return fmt.Sprintf("%s:seq:%s", keyPrefix, kind)
}

// indexKey returns the sorted set of all IDs of the given kind, scored by ID
func indexKey(kind string) string {
	return fmt.Sprintf("%s:idx:%s", keyPrefix, kind)
}

func playerKey(id model.PlayerID) string {
	return fmt.Sprintf("%s:%s:%d", keyPrefix, kindPlayer, id)
}

// playerNameKey returns the key mapping a unique player name to its ID
func playerNameKey(name string) string {
	return fmt.Sprintf("%s:idx:player_name:%s", keyPrefix, name)
}

func numberGameKey(id model.GameID) string {
	return fmt.Sprintf("%s:%s:%d", keyPrefix, kindNumberGame, id)
}

func hangmanKey(id model.GameID) string {
	return fmt.Sprintf("%s:%s:%d", keyPrefix, kindHangman, id)
}

// dictionaryKey returns the Redis key for the dictionary word set
func dictionaryKey() string {
	return fmt.Sprintf("%s:dictionary", keyPrefix)
}
