package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/guessr/internal/api"
	"github.com/mcoot/guessr/internal/api/apierr"
	"github.com/mcoot/guessr/internal/api/response"
	"github.com/mcoot/guessr/internal/factory"
	"github.com/mcoot/guessr/internal/model"
	"github.com/mcoot/guessr/internal/testutil"
)

type APISuite struct {
	suite.Suite
	app     *factory.TestApp
	handler http.Handler
	ctx     context.Context
}

func TestAPISuite(t *testing.T) {
	suite.Run(t, new(APISuite))
}

func (s *APISuite) SetupTest() {
	s.app = factory.NewTestApp()
	s.ctx = context.Background()
	s.handler = api.NewRouter(api.RouterConfig{
		Logger:         testutil.NopLogger(),
		PlayerService:  s.app.PlayerService,
		ScoringService: s.app.ScoringService,
		GameController: s.app.GameController,
	})
}

func (s *APISuite) get(path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rr := httptest.NewRecorder()
	s.handler.ServeHTTP(rr, req)
	return rr
}

func (s *APISuite) decode(rr *httptest.ResponseRecorder, into any) {
	s.Equal("application/json", rr.Header().Get("Content-Type"))
	s.Require().NoError(json.Unmarshal(rr.Body.Bytes(), into))
}

func (s *APISuite) errorCode(rr *httptest.ResponseRecorder) string {
	var body apierr.ErrorResponse
	s.decode(rr, &body)
	return body.Error.Code
}

func (s *APISuite) createPlayer(name string) *model.Player {
	p, err := s.app.PlayerService.Create(s.ctx, name)
	s.Require().NoError(err)
	return p
}

func (s *APISuite) winNumberGame(p *model.Player) *model.NumberGuessingGame {
	s.app.MockRandom.QueueBetween(30)
	g, err := s.app.GameController.StartNumberGame(s.ctx, p.ID)
	s.Require().NoError(err)
	g, _, err = s.app.GameController.GuessNumber(s.ctx, g.ID, 30)
	s.Require().NoError(err)
	return g
}

func (s *APISuite) TestHealth() {
	rr := s.get("/api/v1/health")

	s.Equal(http.StatusOK, rr.Code)
	var body response.Health
	s.decode(rr, &body)
	s.Equal("ok", body.Status)
}

func (s *APISuite) TestScoreboardEmpty() {
	rr := s.get("/api/v1/scoreboard")

	s.Equal(http.StatusOK, rr.Code)
	s.JSONEq(`{"entries":[]}`, rr.Body.String())
}

func (s *APISuite) TestScoreboardOrdered() {
	b := s.createPlayer("B")
	a := s.createPlayer("A")
	s.winNumberGame(a)
	s.winNumberGame(a)
	s.winNumberGame(b)

	rr := s.get("/api/v1/scoreboard")

	s.Equal(http.StatusOK, rr.Code)
	var body response.Scoreboard
	s.decode(rr, &body)
	s.Require().Len(body.Entries, 2)
	s.Equal("A", body.Entries[0].Name)
	s.Equal(2, body.Entries[0].Score)
	s.Equal("B", body.Entries[1].Name)
	s.Equal(1, body.Entries[1].Score)
}

func (s *APISuite) TestListPlayers() {
	s.createPlayer("alice")
	s.createPlayer("bob")

	rr := s.get("/api/v1/players")

	s.Equal(http.StatusOK, rr.Code)
	var body response.PlayerList
	s.decode(rr, &body)
	s.Require().Len(body.Players, 2)
	s.Equal("alice", body.Players[0].Name)
	s.Equal("bob", body.Players[1].Name)
}

func (s *APISuite) TestGetPlayer() {
	p := s.createPlayer("alice")

	rr := s.get("/api/v1/players/1")

	s.Equal(http.StatusOK, rr.Code)
	var body response.Player
	s.decode(rr, &body)
	s.Equal(p.ID, body.ID)
	s.Equal("alice", body.Name)
}

func (s *APISuite) TestGetPlayerNotFound() {
	rr := s.get("/api/v1/players/42")

	s.Equal(http.StatusNotFound, rr.Code)
	s.Equal(apierr.CodePlayerNotFound, s.errorCode(rr))
}

func (s *APISuite) TestGetPlayerMalformedID() {
	for _, path := range []string{"/api/v1/players/abc", "/api/v1/players/-1", "/api/v1/players/abc/games"} {
		rr := s.get(path)

		s.Equal(http.StatusBadRequest, rr.Code, path)
		s.Equal(apierr.CodeInvalidRequest, s.errorCode(rr))
	}
}

func (s *APISuite) TestPlayerGamesHidesUnfinishedAnswers() {
	p := s.createPlayer("alice")
	s.winNumberGame(p)

	s.app.MockRandom.QueueBetween(77)
	_, err := s.app.GameController.StartNumberGame(s.ctx, p.ID)
	s.Require().NoError(err)

	hangman, err := s.app.GameController.StartHangman(s.ctx, p.ID, "cat")
	s.Require().NoError(err)
	_, _, err = s.app.GameController.GuessLetter(s.ctx, hangman.ID, "a")
	s.Require().NoError(err)

	rr := s.get("/api/v1/players/1/games")

	s.Equal(http.StatusOK, rr.Code)
	var body response.PlayerGames
	s.decode(rr, &body)

	s.Equal("alice", body.Player.Name)
	s.Require().Len(body.NumberGames, 2)
	s.True(body.NumberGames[0].Won)
	s.Require().NotNil(body.NumberGames[0].Answer)
	s.Equal(30, *body.NumberGames[0].Answer)
	s.False(body.NumberGames[1].Finished)
	s.Nil(body.NumberGames[1].Answer)

	s.Require().Len(body.HangmanGames, 1)
	s.Equal("_ a _", body.HangmanGames[0].Masked)
	s.Equal([]string{"a"}, body.HangmanGames[0].Guesses)
	s.Empty(body.HangmanGames[0].Answer)
}

func (s *APISuite) TestPlayerGamesUnknownPlayer() {
	rr := s.get("/api/v1/players/9/games")

	s.Equal(http.StatusNotFound, rr.Code)
	s.Equal(apierr.CodePlayerNotFound, s.errorCode(rr))
}

func (s *APISuite) TestUnknownRoute() {
	rr := s.get("/api/v1/lobbies")

	s.Equal(http.StatusNotFound, rr.Code)
	s.Equal(apierr.CodeNotFound, s.errorCode(rr))
}

func (s *APISuite) TestReadOnly() {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/players", nil)
	rr := httptest.NewRecorder()
	s.handler.ServeHTTP(rr, req)

	s.Equal(http.StatusMethodNotAllowed, rr.Code)
	s.Equal(apierr.CodeMethodNotAllowed, s.errorCode(rr))
}
