package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/mcoot/guessr/internal/model"
	"github.com/mcoot/guessr/internal/storage"
)

// Storage is an in-memory implementation of the storage interface.
// Entities are copied on the way in and out so callers must Save to persist changes.
type Storage struct {
	mu sync.RWMutex

	players     map[model.PlayerID]*model.Player
	nameIndex   map[string]model.PlayerID
	numberGames map[model.GameID]*model.NumberGuessingGame
	hangmen     map[model.GameID]*model.Hangman

	lastPlayerID     model.PlayerID
	lastNumberGameID model.GameID
	lastHangmanID    model.GameID

	dictionaryWords []string
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		players:     make(map[model.PlayerID]*model.Player),
		nameIndex:   make(map[string]model.PlayerID),
		numberGames: make(map[model.GameID]*model.NumberGuessingGame),
		hangmen:     make(map[model.GameID]*model.Hangman),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Close is a no-op for memory storage
func (s *Storage) Close() error {
	return nil
}

// Player operations

func (s *Storage) CreatePlayer(ctx context.Context, player *model.Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, taken := s.nameIndex[player.Name]; taken {
		return model.ErrDuplicateName
	}
	s.lastPlayerID++
	player.ID = s.lastPlayerID
	s.players[player.ID] = clonePlayer(player)
	s.nameIndex[player.Name] = player.ID
	return nil
}

func (s *Storage) GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	player, ok := s.players[id]
	if !ok {
		return nil, model.ErrPlayerNotFound
	}
	return clonePlayer(player), nil
}

func (s *Storage) ListPlayers(ctx context.Context, filter storage.PlayerFilter) ([]*model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	players := make([]*model.Player, 0, len(s.players))
	for _, p := range s.players {
		if filter == nil || filter(p) {
			players = append(players, clonePlayer(p))
		}
	}
	sort.Slice(players, func(i, j int) bool { return players[i].ID < players[j].ID })
	return players, nil
}

func (s *Storage) SavePlayer(ctx context.Context, player *model.Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.players[player.ID]
	if !ok {
		return model.ErrPlayerNotFound
	}
	if existing.Name != player.Name {
		if _, taken := s.nameIndex[player.Name]; taken {
			return model.ErrDuplicateName
		}
		delete(s.nameIndex, existing.Name)
		s.nameIndex[player.Name] = player.ID
	}
	s.players[player.ID] = clonePlayer(player)
	return nil
}

// Number guessing game operations

func (s *Storage) CreateNumberGame(ctx context.Context, game *model.NumberGuessingGame) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastNumberGameID++
	game.ID = s.lastNumberGameID
	s.numberGames[game.ID] = cloneNumberGame(game)
	return nil
}

func (s *Storage) GetNumberGame(ctx context.Context, id model.GameID) (*model.NumberGuessingGame, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	game, ok := s.numberGames[id]
	if !ok {
		return nil, model.ErrGameNotFound
	}
	return cloneNumberGame(game), nil
}

func (s *Storage) ListNumberGames(ctx context.Context, filter storage.NumberGameFilter) ([]*model.NumberGuessingGame, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	games := make([]*model.NumberGuessingGame, 0, len(s.numberGames))
	for _, g := range s.numberGames {
		if filter == nil || filter(g) {
			games = append(games, cloneNumberGame(g))
		}
	}
	sort.Slice(games, func(i, j int) bool { return games[i].ID < games[j].ID })
	return games, nil
}

func (s *Storage) SaveNumberGame(ctx context.Context, game *model.NumberGuessingGame) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.numberGames[game.ID]; !ok {
		return model.ErrGameNotFound
	}
	s.numberGames[game.ID] = cloneNumberGame(game)
	return nil
}

// Hangman operations

func (s *Storage) CreateHangman(ctx context.Context, game *model.Hangman) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastHangmanID++
	game.ID = s.lastHangmanID
	s.hangmen[game.ID] = cloneHangman(game)
	return nil
}

func (s *Storage) GetHangman(ctx context.Context, id model.GameID) (*model.Hangman, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	game, ok := s.hangmen[id]
	if !ok {
		return nil, model.ErrGameNotFound
	}
	return cloneHangman(game), nil
}

func (s *Storage) ListHangmen(ctx context.Context, filter storage.HangmanFilter) ([]*model.Hangman, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	games := make([]*model.Hangman, 0, len(s.hangmen))
	for _, g := range s.hangmen {
		if filter == nil || filter(g) {
			games = append(games, cloneHangman(g))
		}
	}
	sort.Slice(games, func(i, j int) bool { return games[i].ID < games[j].ID })
	return games, nil
}

func (s *Storage) SaveHangman(ctx context.Context, game *model.Hangman) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.hangmen[game.ID]; !ok {
		return model.ErrGameNotFound
	}
	s.hangmen[game.ID] = cloneHangman(game)
	return nil
}

// Dictionary operations

func (s *Storage) GetDictionaryWords(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.dictionaryWords == nil {
		return nil, model.ErrDictionaryNotLoaded
	}
	result := make([]string, len(s.dictionaryWords))
	copy(result, s.dictionaryWords)
	return result, nil
}

func (s *Storage) SaveDictionaryWords(ctx context.Context, words []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dictionaryWords = make([]string, len(words))
	copy(s.dictionaryWords, words)
	return nil
}

func clonePlayer(p *model.Player) *model.Player {
	c := *p
	return &c
}

func cloneNumberGame(g *model.NumberGuessingGame) *model.NumberGuessingGame {
	c := *g
	if g.Guess != nil {
		guess := *g.Guess
		c.Guess = &guess
	}
	return &c
}

func cloneHangman(g *model.Hangman) *model.Hangman {
	c := *g
	c.Guesses = append([]string{}, g.Guesses...)
	return &c
}
