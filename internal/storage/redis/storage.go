package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mcoot/guessr/internal/model"
	"github.com/mcoot/guessr/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface.
// Entities are stored as JSON strings; each kind has an INCR sequence for IDs
// and a sorted set index (member = entity key, score = ID) for listing.
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Player operations

func (s *Storage) CreatePlayer(ctx context.Context, player *model.Player) error {
	id, err := s.client.Incr(ctx, sequenceKey(kindPlayer)).Result()
	if err != nil {
		return fmt.Errorf("allocate player id: %w", err)
	}

	// Claim the name first so concurrent creates cannot both succeed
	claimed, err := s.client.SetNX(ctx, playerNameKey(player.Name), id, 0).Result()
	if err != nil {
		return fmt.Errorf("claim player name: %w", err)
	}
	if !claimed {
		return model.ErrDuplicateName
	}

	player.ID = model.PlayerID(id)
	if err := s.put(ctx, kindPlayer, playerKey(player.ID), id, player); err != nil {
		_ = s.client.Del(ctx, playerNameKey(player.Name)).Err()
		return err
	}
	return nil
}

func (s *Storage) GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	return getJSON[model.Player](ctx, s.client, playerKey(id), model.ErrPlayerNotFound)
}

func (s *Storage) ListPlayers(ctx context.Context, filter storage.PlayerFilter) ([]*model.Player, error) {
	return listJSON[model.Player](ctx, s.client, kindPlayer, filter)
}

func (s *Storage) SavePlayer(ctx context.Context, player *model.Player) error {
	existing, err := s.GetPlayer(ctx, player.ID)
	if err != nil {
		return err
	}

	if existing.Name != player.Name {
		claimed, err := s.client.SetNX(ctx, playerNameKey(player.Name), int64(player.ID), 0).Result()
		if err != nil {
			return fmt.Errorf("claim player name: %w", err)
		}
		if !claimed {
			return model.ErrDuplicateName
		}
		if err := s.client.Del(ctx, playerNameKey(existing.Name)).Err(); err != nil {
			return fmt.Errorf("release player name: %w", err)
		}
	}

	return s.put(ctx, kindPlayer, playerKey(player.ID), int64(player.ID), player)
}

// Number guessing game operations

func (s *Storage) CreateNumberGame(ctx context.Context, game *model.NumberGuessingGame) error {
	id, err := s.client.Incr(ctx, sequenceKey(kindNumberGame)).Result()
	if err != nil {
		return fmt.Errorf("allocate number game id: %w", err)
	}
	game.ID = model.GameID(id)
	return s.put(ctx, kindNumberGame, numberGameKey(game.ID), id, game)
}

func (s *Storage) GetNumberGame(ctx context.Context, id model.GameID) (*model.NumberGuessingGame, error) {
	return getJSON[model.NumberGuessingGame](ctx, s.client, numberGameKey(id), model.ErrGameNotFound)
}

func (s *Storage) ListNumberGames(ctx context.Context, filter storage.NumberGameFilter) ([]*model.NumberGuessingGame, error) {
	return listJSON[model.NumberGuessingGame](ctx, s.client, kindNumberGame, filter)
}

func (s *Storage) SaveNumberGame(ctx context.Context, game *model.NumberGuessingGame) error {
	key := numberGameKey(game.ID)
	if err := s.mustExist(ctx, key, model.ErrGameNotFound); err != nil {
		return err
	}
	return s.put(ctx, kindNumberGame, key, int64(game.ID), game)
}

// Hangman operations

func (s *Storage) CreateHangman(ctx context.Context, game *model.Hangman) error {
	id, err := s.client.Incr(ctx, sequenceKey(kindHangman)).Result()
	if err != nil {
		return fmt.Errorf("allocate hangman id: %w", err)
	}
	game.ID = model.GameID(id)
	return s.put(ctx, kindHangman, hangmanKey(game.ID), id, game)
}

func (s *Storage) GetHangman(ctx context.Context, id model.GameID) (*model.Hangman, error) {
	return getJSON[model.Hangman](ctx, s.client, hangmanKey(id), model.ErrGameNotFound)
}

func (s *Storage) ListHangmen(ctx context.Context, filter storage.HangmanFilter) ([]*model.Hangman, error) {
	return listJSON[model.Hangman](ctx, s.client, kindHangman, filter)
}

func (s *Storage) SaveHangman(ctx context.Context, game *model.Hangman) error {
	key := hangmanKey(game.ID)
	if err := s.mustExist(ctx, key, model.ErrGameNotFound); err != nil {
		return err
	}
	return s.put(ctx, kindHangman, key, int64(game.ID), game)
}

// Dictionary operations

func (s *Storage) GetDictionaryWords(ctx context.Context) ([]string, error) {
	key := dictionaryKey()

	// Check if dictionary exists
	exists, err := s.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, err
	}
	if exists == 0 {
		return nil, model.ErrDictionaryNotLoaded
	}

	return s.client.SMembers(ctx, key).Result()
}

func (s *Storage) SaveDictionaryWords(ctx context.Context, words []string) error {
	key := dictionaryKey()

	// Delete existing dictionary and add new words atomically
	pipe := s.client.TxPipeline()
	pipe.Del(ctx, key)

	if len(words) > 0 {
		members := make([]any, len(words))
		for i, w := range words {
			members[i] = w
		}
		pipe.SAdd(ctx, key, members...)
	}

	_, err := pipe.Exec(ctx)
	return err
}

// put writes the entity and its index entry in one transaction
func (s *Storage) put(ctx context.Context, kind, key string, id int64, entity any) error {
	data, err := json.Marshal(entity)
	if err != nil {
		return err
	}

	pipe := s.client.TxPipeline()
	pipe.Set(ctx, key, data, 0)
	pipe.ZAdd(ctx, indexKey(kind), redis.Z{Score: float64(id), Member: key})
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("save %s: %w", kind, err)
	}
	return nil
}

func (s *Storage) mustExist(ctx context.Context, key string, notFound error) error {
	n, err := s.client.Exists(ctx, key).Result()
	if err != nil {
		return err
	}
	if n == 0 {
		return notFound
	}
	return nil
}

func getJSON[T any](ctx context.Context, client *redis.Client, key string, notFound error) (*T, error) {
	data, err := client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, notFound
		}
		return nil, err
	}

	var entity T
	if err := json.Unmarshal(data, &entity); err != nil {
		return nil, fmt.Errorf("decode %s: %w", key, err)
	}
	return &entity, nil
}

// listJSON loads every entity of kind in ID order and keeps those matching filter
func listJSON[T any](ctx context.Context, client *redis.Client, kind string, filter func(*T) bool) ([]*T, error) {
	keys, err := client.ZRange(ctx, indexKey(kind), 0, -1).Result()
	if err != nil {
		return nil, err
	}

	result := make([]*T, 0, len(keys))
	if len(keys) == 0 {
		return result, nil
	}

	values, err := client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	for i, val := range values {
		str, ok := val.(string)
		if !ok {
			continue // Index entry without a value
		}
		var entity T
		if err := json.Unmarshal([]byte(str), &entity); err != nil {
			return nil, fmt.Errorf("decode %s: %w", keys[i], err)
		}
		if filter == nil || filter(&entity) {
			result = append(result, &entity)
		}
	}

	return result, nil
}
