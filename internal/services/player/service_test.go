package player

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/guessr/internal/dependencies/mocks"
	"github.com/mcoot/guessr/internal/model"
	"github.com/mcoot/guessr/internal/storage/memory"
	"github.com/mcoot/guessr/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	clock   *mocks.MockClock
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.service = New(s.storage, s.clock, testutil.NopLogger())
	s.ctx = context.Background()
}

func (s *ServiceSuite) TestCreate() {
	player, err := s.service.Create(s.ctx, "alice")
	s.Require().NoError(err)

	s.NotZero(player.ID)
	s.Equal("alice", player.Name)
	s.Equal(s.clock.Now(), player.CreatedAt)

	stored, err := s.storage.GetPlayer(s.ctx, player.ID)
	s.Require().NoError(err)
	s.Equal(player, stored)
}

func (s *ServiceSuite) TestCreateEmptyName() {
	_, err := s.service.Create(s.ctx, "  ")
	s.ErrorIs(err, model.ErrEmptyName)
	s.True(model.IsValidation(err))
}

func (s *ServiceSuite) TestCreateDuplicateName() {
	_, err := s.service.Create(s.ctx, "alice")
	s.Require().NoError(err)

	_, err = s.service.Create(s.ctx, " alice ")
	s.ErrorIs(err, model.ErrDuplicateName)
	s.True(model.IsValidation(err))

	players, err := s.service.List(s.ctx)
	s.Require().NoError(err)
	s.Len(players, 1)
}

func (s *ServiceSuite) TestGetNotFound() {
	_, err := s.service.Get(s.ctx, 42)
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *ServiceSuite) TestGetByName() {
	created, _ := s.service.Create(s.ctx, "alice")
	_, _ = s.service.Create(s.ctx, "bob")

	found, err := s.service.GetByName(s.ctx, "alice")
	s.Require().NoError(err)
	s.Equal(created.ID, found.ID)

	_, err = s.service.GetByName(s.ctx, "carol")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *ServiceSuite) TestGetOrCreate() {
	first, err := s.service.GetOrCreate(s.ctx, "alice")
	s.Require().NoError(err)

	second, err := s.service.GetOrCreate(s.ctx, "alice")
	s.Require().NoError(err)
	s.Equal(first.ID, second.ID)

	_, err = s.service.GetOrCreate(s.ctx, "")
	s.ErrorIs(err, model.ErrEmptyName)
}

func (s *ServiceSuite) TestListOrderedByID() {
	_, _ = s.service.Create(s.ctx, "zed")
	_, _ = s.service.Create(s.ctx, "amy")

	players, err := s.service.List(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(players, 2)
	s.Equal("zed", players[0].Name)
	s.Equal("amy", players[1].Name)
}
