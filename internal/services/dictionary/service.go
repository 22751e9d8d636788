package dictionary

import (
	"bufio"
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/mcoot/guessr/internal/dependencies/random"
	"github.com/mcoot/guessr/internal/model"
	"github.com/mcoot/guessr/internal/storage"
)

//go:embed words.txt
var defaultWords []byte

// Service holds the hangman word list
type Service struct {
	storage storage.Storage
	random  random.Random
	logger  *slog.Logger

	mu    sync.RWMutex
	words []string
}

// New creates a new dictionary Service
func New(storage storage.Storage, rnd random.Random, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		random:  rnd,
		logger:  logger,
	}
}

// LoadFromStorage loads dictionary words from storage
func (s *Service) LoadFromStorage(ctx context.Context) error {
	words, err := s.storage.GetDictionaryWords(ctx)
	if err != nil {
		return err
	}
	s.loadWords(words)
	return nil
}

// LoadFromFile loads dictionary words from a file (one word per line) and
// saves them to storage. Words that are not plain a-z are skipped.
func (s *Service) LoadFromFile(ctx context.Context, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open dictionary: %w", err)
	}
	defer file.Close()

	return s.load(ctx, path, file)
}

// LoadDefault loads the built-in word list and saves it to storage
func (s *Service) LoadDefault(ctx context.Context) error {
	return s.load(ctx, "builtin", bytes.NewReader(defaultWords))
}

func (s *Service) load(ctx context.Context, source string, r io.Reader) error {
	var words []string
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		word := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if word == "" {
			continue
		}
		if !model.ValidWord(word) {
			s.logger.Warn("skipping dictionary word",
				slog.String("source", source),
				slog.Int("line", line),
				slog.String("word", word),
			)
			continue
		}
		words = append(words, word)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read dictionary: %w", err)
	}

	if err := s.storage.SaveDictionaryWords(ctx, words); err != nil {
		return err
	}

	s.loadWords(words)
	s.logger.Debug("dictionary loaded",
		slog.String("source", source),
		slog.Int("words", len(words)),
	)
	return nil
}

// LoadWords directly loads a slice of words (useful for testing)
func (s *Service) LoadWords(words []string) {
	s.loadWords(words)
}

func (s *Service) loadWords(words []string) {
	seen := make(map[string]struct{}, len(words))
	loaded := make([]string, 0, len(words))
	for _, word := range words {
		word = strings.ToLower(word)
		if _, ok := seen[word]; ok || !model.ValidWord(word) {
			continue
		}
		seen[word] = struct{}{}
		loaded = append(loaded, word)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.words = loaded
}

// RandomWord picks a word uniformly from the dictionary
func (s *Service) RandomWord() (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.words) == 0 {
		return "", model.ErrDictionaryNotLoaded
	}
	return s.words[s.random.Intn(len(s.words))], nil
}

// IsLoaded returns whether the dictionary has any words
func (s *Service) IsLoaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.words) > 0
}

// WordCount returns the number of words in the dictionary
func (s *Service) WordCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.words)
}
