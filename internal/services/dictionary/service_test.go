package dictionary

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/guessr/internal/dependencies/mocks"
	"github.com/mcoot/guessr/internal/model"
	"github.com/mcoot/guessr/internal/storage/memory"
	"github.com/mcoot/guessr/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	random  *mocks.MockRandom
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.random = mocks.NewMockRandom()
	s.service = New(s.storage, s.random, testutil.NopLogger())
	s.ctx = context.Background()
}

func (s *ServiceSuite) writeFile(contents string) string {
	path := filepath.Join(s.T().TempDir(), "words.txt")
	s.Require().NoError(os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func (s *ServiceSuite) TestIsNotLoadedByDefault() {
	s.False(s.service.IsLoaded())
	s.Equal(0, s.service.WordCount())

	_, err := s.service.RandomWord()
	s.ErrorIs(err, model.ErrDictionaryNotLoaded)
}

func (s *ServiceSuite) TestLoadWordsLowercasesAndDedupes() {
	s.service.LoadWords([]string{"Apple", "apple", "banana", "not valid"})

	s.True(s.service.IsLoaded())
	s.Equal(2, s.service.WordCount())
}

func (s *ServiceSuite) TestRandomWordUsesInjectedRandom() {
	s.service.LoadWords([]string{"apple", "banana", "cherry"})
	s.random.QueueIntn(2, 0)

	word, err := s.service.RandomWord()
	s.Require().NoError(err)
	s.Equal("cherry", word)

	word, err = s.service.RandomWord()
	s.Require().NoError(err)
	s.Equal("apple", word)
}

func (s *ServiceSuite) TestLoadFromFileSkipsInvalidWords() {
	logger, buf := testutil.BufferLogger()
	s.service = New(s.storage, s.random, logger)
	path := s.writeFile("cat\n\n  Dog \nhello world\nr2d2\nfish\n")

	err := s.service.LoadFromFile(s.ctx, path)
	s.Require().NoError(err)

	s.Equal(3, s.service.WordCount())
	s.Contains(buf.String(), "skipping dictionary word")
	s.Contains(buf.String(), "word=r2d2")
}

func (s *ServiceSuite) TestLoadFromFileSavesToStorage() {
	path := s.writeFile("cat\ndog\n")

	s.Require().NoError(s.service.LoadFromFile(s.ctx, path))

	words, err := s.storage.GetDictionaryWords(s.ctx)
	s.Require().NoError(err)
	s.ElementsMatch([]string{"cat", "dog"}, words)
}

func (s *ServiceSuite) TestLoadFromFileMissing() {
	err := s.service.LoadFromFile(s.ctx, filepath.Join(s.T().TempDir(), "missing.txt"))
	s.ErrorIs(err, os.ErrNotExist)
	s.False(s.service.IsLoaded())
}

func (s *ServiceSuite) TestLoadDefault() {
	s.Require().NoError(s.service.LoadDefault(s.ctx))
	s.True(s.service.IsLoaded())

	word, err := s.service.RandomWord()
	s.Require().NoError(err)
	s.True(model.ValidWord(word))

	stored, err := s.storage.GetDictionaryWords(s.ctx)
	s.Require().NoError(err)
	s.Len(stored, s.service.WordCount())
}

func (s *ServiceSuite) TestLoadFromStorage() {
	s.Require().NoError(s.storage.SaveDictionaryWords(s.ctx, []string{"owl", "emu"}))

	s.Require().NoError(s.service.LoadFromStorage(s.ctx))
	s.Equal(2, s.service.WordCount())
}

func (s *ServiceSuite) TestLoadFromEmptyStorage() {
	err := s.service.LoadFromStorage(s.ctx)
	s.ErrorIs(err, model.ErrDictionaryNotLoaded)
	s.False(s.service.IsLoaded())
}
