package factory

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/mcoot/guessr/internal/config"
	"github.com/mcoot/guessr/internal/model"
	"github.com/mcoot/guessr/internal/testutil"
)

type FactorySuite struct {
	suite.Suite
	ctx context.Context
}

func TestFactorySuite(t *testing.T) {
	suite.Run(t, new(FactorySuite))
}

func (s *FactorySuite) SetupTest() {
	s.ctx = context.Background()
}

func (s *FactorySuite) TestNewMemory() {
	app, err := New(s.ctx, config.Config{Storage: config.StorageMemory}, nil)
	s.Require().NoError(err)
	defer app.Close()

	p, err := app.PlayerService.Create(s.ctx, "alice")
	s.Require().NoError(err)
	s.NotZero(p.ID)
}

func (s *FactorySuite) TestNewSQLiteCreatesDirectory() {
	path := filepath.Join(s.T().TempDir(), "nested", "guessr.db")
	cfg := config.Config{Storage: config.StorageSQLite, SQLitePath: path}

	app, err := New(s.ctx, cfg, testutil.NopLogger())
	s.Require().NoError(err)
	p, err := app.PlayerService.Create(s.ctx, "alice")
	s.Require().NoError(err)
	s.Require().NoError(app.Close())

	reopened, err := New(s.ctx, cfg, testutil.NopLogger())
	s.Require().NoError(err)
	defer reopened.Close()

	got, err := reopened.PlayerService.Get(s.ctx, p.ID)
	s.Require().NoError(err)
	s.Equal("alice", got.Name)
}

func (s *FactorySuite) TestNewRedis() {
	mr := miniredis.RunT(s.T())

	app, err := New(s.ctx, config.Config{Storage: config.StorageRedis, RedisURL: "redis://" + mr.Addr()}, nil)
	s.Require().NoError(err)
	defer app.Close()

	_, err = app.PlayerService.Create(s.ctx, "alice")
	s.Require().NoError(err)
}

func (s *FactorySuite) TestNewInvalidStorage() {
	_, err := New(s.ctx, config.Config{Storage: "paper"}, nil)
	s.ErrorContains(err, "unknown storage")
}

func (s *FactorySuite) TestLoadDictionaryFallsBackToBuiltin() {
	app := NewTestApp()

	s.Require().NoError(app.LoadDictionary(s.ctx, ""))
	s.True(app.DictionaryService.IsLoaded())

	stored, err := app.Storage.GetDictionaryWords(s.ctx)
	s.Require().NoError(err)
	s.NotEmpty(stored)
}

func (s *FactorySuite) TestLoadDictionaryPrefersStoredWords() {
	app := NewTestApp()
	s.Require().NoError(app.Storage.SaveDictionaryWords(s.ctx, []string{"llama"}))

	s.Require().NoError(app.LoadDictionary(s.ctx, ""))
	s.Equal(1, app.DictionaryService.WordCount())
}

// A full session across services, as the CLI drives it
func (s *FactorySuite) TestPlayAndScore() {
	app := NewTestApp()
	app.LoadTestDictionary()

	alice, err := app.PlayerService.GetOrCreate(s.ctx, "alice")
	s.Require().NoError(err)
	bob, err := app.PlayerService.GetOrCreate(s.ctx, "bob")
	s.Require().NoError(err)

	app.MockRandom.QueueBetween(42, 7)
	aliceGame, err := app.GameController.StartNumberGame(s.ctx, alice.ID)
	s.Require().NoError(err)
	bobGame, err := app.GameController.StartNumberGame(s.ctx, bob.ID)
	s.Require().NoError(err)

	_, result, err := app.GameController.GuessNumber(s.ctx, aliceGame.ID, 42)
	s.Require().NoError(err)
	s.Equal(model.GuessCorrect, result)
	_, result, err = app.GameController.GuessNumber(s.ctx, bobGame.ID, 8)
	s.Require().NoError(err)
	s.Equal(model.GuessTooHigh, result)

	app.MockRandom.QueueIntn(0)
	hangman, err := app.GameController.StartHangman(s.ctx, alice.ID, "")
	s.Require().NoError(err)
	s.Equal("cat", hangman.Answer)
	for _, letter := range []string{"c", "a", "t"} {
		_, _, err := app.GameController.GuessLetter(s.ctx, hangman.ID, letter)
		s.Require().NoError(err)
	}

	board, err := app.ScoringService.Scoreboard(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(board, 2)
	s.Equal(model.ScoreEntry{PlayerID: alice.ID, Name: "alice", Score: 2, NumberWins: 1, HangmanWins: 1}, board[0])
	s.Equal(model.ScoreEntry{PlayerID: bob.ID, Name: "bob"}, board[1])
}
