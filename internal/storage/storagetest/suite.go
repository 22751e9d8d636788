// Package storagetest holds the behavioural suite every storage backend runs.
package storagetest

import (
	"context"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/guessr/internal/model"
	"github.com/mcoot/guessr/internal/storage"
)

// Suite exercises a storage.Storage implementation.
// NewStorage is called before each test and must return an empty store.
type Suite struct {
	suite.Suite
	NewStorage func() storage.Storage

	storage storage.Storage
	ctx     context.Context
	now     time.Time
}

func (s *Suite) SetupTest() {
	s.storage = s.NewStorage()
	s.ctx = context.Background()
	s.now = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
}

func (s *Suite) TearDownTest() {
	if s.storage != nil {
		_ = s.storage.Close()
	}
}

func (s *Suite) createPlayer(name string) *model.Player {
	player, err := model.NewPlayer(name, s.now)
	s.Require().NoError(err)
	s.Require().NoError(s.storage.CreatePlayer(s.ctx, player))
	return player
}

func intPtr(v int) *int {
	return &v
}

// Player tests

func (s *Suite) TestCreatePlayerAssignsIncreasingIDs() {
	alice := s.createPlayer("alice")
	bob := s.createPlayer("bob")

	s.Positive(int64(alice.ID))
	s.Greater(bob.ID, alice.ID)
}

func (s *Suite) TestCreateAndGetPlayer() {
	alice := s.createPlayer("alice")

	retrieved, err := s.storage.GetPlayer(s.ctx, alice.ID)
	s.Require().NoError(err)
	s.Equal(alice.ID, retrieved.ID)
	s.Equal("alice", retrieved.Name)
	s.True(s.now.Equal(retrieved.CreatedAt))
}

func (s *Suite) TestGetPlayerNotFound() {
	_, err := s.storage.GetPlayer(s.ctx, 999)
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *Suite) TestCreatePlayerRejectsDuplicateName() {
	s.createPlayer("alice")

	dup, err := model.NewPlayer("alice", s.now)
	s.Require().NoError(err)
	err = s.storage.CreatePlayer(s.ctx, dup)
	s.ErrorIs(err, model.ErrDuplicateName)

	players, err := s.storage.ListPlayers(s.ctx, nil)
	s.Require().NoError(err)
	s.Len(players, 1)
}

func (s *Suite) TestListPlayersWithFilter() {
	s.createPlayer("alice")
	bob := s.createPlayer("bob")
	s.createPlayer("carol")

	all, err := s.storage.ListPlayers(s.ctx, nil)
	s.Require().NoError(err)
	s.Require().Len(all, 3)
	s.Equal("alice", all[0].Name)
	s.Equal("carol", all[2].Name)

	found, err := s.storage.ListPlayers(s.ctx, storage.PlayerByName("bob"))
	s.Require().NoError(err)
	s.Require().Len(found, 1)
	s.Equal(bob.ID, found[0].ID)
}

func (s *Suite) TestListPlayersEmpty() {
	players, err := s.storage.ListPlayers(s.ctx, nil)
	s.Require().NoError(err)
	s.Empty(players)
}

func (s *Suite) TestSavePlayerNotFound() {
	err := s.storage.SavePlayer(s.ctx, &model.Player{ID: 42, Name: "ghost"})
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

// Number game tests

func (s *Suite) TestCreateAndGetNumberGame() {
	alice := s.createPlayer("alice")
	game, err := model.NewNumberGame(alice.ID, 42, s.now)
	s.Require().NoError(err)

	s.Require().NoError(s.storage.CreateNumberGame(s.ctx, game))
	s.Positive(int64(game.ID))

	retrieved, err := s.storage.GetNumberGame(s.ctx, game.ID)
	s.Require().NoError(err)
	s.Equal(alice.ID, retrieved.PlayerID)
	s.Equal(42, retrieved.Answer)
	s.Nil(retrieved.Guess)
	s.False(retrieved.Finished)
}

func (s *Suite) TestSaveNumberGamePersistsGuess() {
	alice := s.createPlayer("alice")
	game, _ := model.NewNumberGame(alice.ID, 42, s.now)
	s.Require().NoError(s.storage.CreateNumberGame(s.ctx, game))

	game.Guess = intPtr(42)
	game.Attempts = 3
	game.Finished = true
	game.UpdatedAt = s.now.Add(time.Minute)
	s.Require().NoError(s.storage.SaveNumberGame(s.ctx, game))

	retrieved, err := s.storage.GetNumberGame(s.ctx, game.ID)
	s.Require().NoError(err)
	s.Require().NotNil(retrieved.Guess)
	s.Equal(42, *retrieved.Guess)
	s.Equal(3, retrieved.Attempts)
	s.True(retrieved.Finished)
	s.True(game.UpdatedAt.Equal(retrieved.UpdatedAt))
}

func (s *Suite) TestUnsavedNumberGameChangesAreNotVisible() {
	alice := s.createPlayer("alice")
	game, _ := model.NewNumberGame(alice.ID, 42, s.now)
	s.Require().NoError(s.storage.CreateNumberGame(s.ctx, game))

	loaded, err := s.storage.GetNumberGame(s.ctx, game.ID)
	s.Require().NoError(err)
	loaded.Guess = intPtr(10)

	again, err := s.storage.GetNumberGame(s.ctx, game.ID)
	s.Require().NoError(err)
	s.Nil(again.Guess)
}

func (s *Suite) TestGetNumberGameNotFound() {
	_, err := s.storage.GetNumberGame(s.ctx, 999)
	s.ErrorIs(err, model.ErrGameNotFound)
}

func (s *Suite) TestSaveNumberGameNotFound() {
	err := s.storage.SaveNumberGame(s.ctx, &model.NumberGuessingGame{ID: 999, PlayerID: 1, Answer: 5})
	s.ErrorIs(err, model.ErrGameNotFound)
}

func (s *Suite) TestListNumberGamesByPlayer() {
	alice := s.createPlayer("alice")
	bob := s.createPlayer("bob")
	for _, owner := range []model.PlayerID{alice.ID, bob.ID, alice.ID} {
		game, _ := model.NewNumberGame(owner, 50, s.now)
		s.Require().NoError(s.storage.CreateNumberGame(s.ctx, game))
	}

	all, err := s.storage.ListNumberGames(s.ctx, nil)
	s.Require().NoError(err)
	s.Len(all, 3)

	mine, err := s.storage.ListNumberGames(s.ctx, storage.NumberGamesByPlayer(alice.ID))
	s.Require().NoError(err)
	s.Require().Len(mine, 2)
	s.Less(mine[0].ID, mine[1].ID)
	for _, g := range mine {
		s.Equal(alice.ID, g.PlayerID)
	}
}

// Hangman tests

func (s *Suite) TestCreateAndGetHangman() {
	alice := s.createPlayer("alice")
	game, err := model.NewHangman(alice.ID, "cat", model.DefaultTurns, s.now)
	s.Require().NoError(err)

	s.Require().NoError(s.storage.CreateHangman(s.ctx, game))
	s.Positive(int64(game.ID))

	retrieved, err := s.storage.GetHangman(s.ctx, game.ID)
	s.Require().NoError(err)
	s.Equal("cat", retrieved.Answer)
	s.Equal(model.DefaultTurns, retrieved.Turns)
	s.Empty(retrieved.Guesses)
	s.False(retrieved.Finished)
}

func (s *Suite) TestSaveHangmanPersistsGuesses() {
	alice := s.createPlayer("alice")
	game, _ := model.NewHangman(alice.ID, "cat", model.DefaultTurns, s.now)
	s.Require().NoError(s.storage.CreateHangman(s.ctx, game))

	game.Guesses = []string{"x", "c", "a"}
	game.Turns = 6
	s.Require().NoError(s.storage.SaveHangman(s.ctx, game))

	retrieved, err := s.storage.GetHangman(s.ctx, game.ID)
	s.Require().NoError(err)
	s.Equal([]string{"x", "c", "a"}, retrieved.Guesses)
	s.Equal(6, retrieved.Turns)
}

func (s *Suite) TestGetHangmanNotFound() {
	_, err := s.storage.GetHangman(s.ctx, 999)
	s.ErrorIs(err, model.ErrGameNotFound)
}

func (s *Suite) TestSaveHangmanNotFound() {
	err := s.storage.SaveHangman(s.ctx, &model.Hangman{ID: 999, PlayerID: 1, Answer: "cat", Turns: 7})
	s.ErrorIs(err, model.ErrGameNotFound)
}

func (s *Suite) TestListHangmenWithFilter() {
	alice := s.createPlayer("alice")
	bob := s.createPlayer("bob")
	first, _ := model.NewHangman(alice.ID, "cat", 7, s.now)
	second, _ := model.NewHangman(bob.ID, "dog", 7, s.now)
	s.Require().NoError(s.storage.CreateHangman(s.ctx, first))
	s.Require().NoError(s.storage.CreateHangman(s.ctx, second))

	games, err := s.storage.ListHangmen(s.ctx, storage.HangmenByPlayer(bob.ID))
	s.Require().NoError(err)
	s.Require().Len(games, 1)
	s.Equal("dog", games[0].Answer)

	unfinished, err := s.storage.ListHangmen(s.ctx, func(h *model.Hangman) bool { return !h.Finished })
	s.Require().NoError(err)
	s.Len(unfinished, 2)
}

// Dictionary tests

func (s *Suite) TestDictionaryNotLoaded() {
	_, err := s.storage.GetDictionaryWords(s.ctx)
	s.ErrorIs(err, model.ErrDictionaryNotLoaded)
}

func (s *Suite) TestSaveAndGetDictionaryWords() {
	words := []string{"apple", "banana", "cherry"}
	s.Require().NoError(s.storage.SaveDictionaryWords(s.ctx, words))

	retrieved, err := s.storage.GetDictionaryWords(s.ctx)
	s.Require().NoError(err)
	s.ElementsMatch(words, retrieved)
}

func (s *Suite) TestSaveDictionaryWordsReplaces() {
	s.Require().NoError(s.storage.SaveDictionaryWords(s.ctx, []string{"old", "words"}))
	s.Require().NoError(s.storage.SaveDictionaryWords(s.ctx, []string{"new"}))

	retrieved, err := s.storage.GetDictionaryWords(s.ctx)
	s.Require().NoError(err)
	s.Equal([]string{"new"}, retrieved)
}
