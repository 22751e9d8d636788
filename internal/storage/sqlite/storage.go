// Package sqlite provides a SQLite-backed storage implementation.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"

	"github.com/mcoot/guessr/internal/model"
	"github.com/mcoot/guessr/internal/storage"
	"github.com/mcoot/guessr/internal/storage/sqlite/migrations"
)

// Storage persists players and games in a SQLite database file
type Storage struct {
	db *sql.DB
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Open opens (creating if needed) the database at path and applies migrations
func Open(ctx context.Context, path string) (*Storage, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	dsn := filepath.Clean(path) + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := applyMigrations(ctx, db, migrations.FS); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Storage{db: db}, nil
}

// Close closes the database handle
func (s *Storage) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func toMillis(t time.Time) int64 {
	return t.UTC().UnixMilli()
}

func fromMillis(v int64) time.Time {
	return time.UnixMilli(v).UTC()
}

// isUniqueViolation reports whether err is a UNIQUE or PRIMARY KEY constraint failure
func isUniqueViolation(err error) bool {
	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3lib.SQLITE_CONSTRAINT_UNIQUE:
			return true
		}
	}
	return strings.Contains(strings.ToLower(err.Error()), "unique constraint failed")
}

// Player operations

func (s *Storage) CreatePlayer(ctx context.Context, player *model.Player) error {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO players (name, created_at, updated_at) VALUES (?, ?, ?)`,
		player.Name, toMillis(player.CreatedAt), toMillis(player.CreatedAt),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return model.ErrDuplicateName
		}
		return fmt.Errorf("create player: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("create player: %w", err)
	}
	player.ID = model.PlayerID(id)
	return nil
}

func (s *Storage) GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, name, created_at FROM players WHERE id = ?`, int64(id))
	player, err := scanPlayer(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrPlayerNotFound
		}
		return nil, fmt.Errorf("get player: %w", err)
	}
	return player, nil
}

func (s *Storage) ListPlayers(ctx context.Context, filter storage.PlayerFilter) ([]*model.Player, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name, created_at FROM players ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}
	defer rows.Close()

	players := []*model.Player{}
	for rows.Next() {
		player, err := scanPlayer(rows)
		if err != nil {
			return nil, fmt.Errorf("list players: %w", err)
		}
		if filter == nil || filter(player) {
			players = append(players, player)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}
	return players, nil
}

func (s *Storage) SavePlayer(ctx context.Context, player *model.Player) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE players SET name = ?, updated_at = ? WHERE id = ?`,
		player.Name, toMillis(time.Now()), int64(player.ID),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return model.ErrDuplicateName
		}
		return fmt.Errorf("save player: %w", err)
	}
	return requireAffected(res, model.ErrPlayerNotFound)
}

// Number guessing game operations

const numberGameColumns = `id, player_id, answer, guess, attempts, finished, created_at, updated_at`

func (s *Storage) CreateNumberGame(ctx context.Context, game *model.NumberGuessingGame) error {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO number_guessing_games (player_id, answer, guess, attempts, finished, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		int64(game.PlayerID), game.Answer, nullableInt(game.Guess), game.Attempts, game.Finished,
		toMillis(game.CreatedAt), toMillis(game.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("create number game: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("create number game: %w", err)
	}
	game.ID = model.GameID(id)
	return nil
}

func (s *Storage) GetNumberGame(ctx context.Context, id model.GameID) (*model.NumberGuessingGame, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+numberGameColumns+` FROM number_guessing_games WHERE id = ?`, int64(id))
	game, err := scanNumberGame(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrGameNotFound
		}
		return nil, fmt.Errorf("get number game: %w", err)
	}
	return game, nil
}

func (s *Storage) ListNumberGames(ctx context.Context, filter storage.NumberGameFilter) ([]*model.NumberGuessingGame, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+numberGameColumns+` FROM number_guessing_games ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("list number games: %w", err)
	}
	defer rows.Close()

	games := []*model.NumberGuessingGame{}
	for rows.Next() {
		game, err := scanNumberGame(rows)
		if err != nil {
			return nil, fmt.Errorf("list number games: %w", err)
		}
		if filter == nil || filter(game) {
			games = append(games, game)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list number games: %w", err)
	}
	return games, nil
}

func (s *Storage) SaveNumberGame(ctx context.Context, game *model.NumberGuessingGame) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE number_guessing_games
		    SET player_id = ?, answer = ?, guess = ?, attempts = ?, finished = ?, updated_at = ?
		  WHERE id = ?`,
		int64(game.PlayerID), game.Answer, nullableInt(game.Guess), game.Attempts, game.Finished,
		toMillis(game.UpdatedAt), int64(game.ID),
	)
	if err != nil {
		return fmt.Errorf("save number game: %w", err)
	}
	return requireAffected(res, model.ErrGameNotFound)
}

// Hangman operations

const hangmanColumns = `id, player_id, answer, guesses, turns, finished, created_at, updated_at`

func (s *Storage) CreateHangman(ctx context.Context, game *model.Hangman) error {
	guesses, err := encodeGuesses(game.Guesses)
	if err != nil {
		return err
	}
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO hangmen (player_id, answer, guesses, turns, finished, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		int64(game.PlayerID), game.Answer, guesses, game.Turns, game.Finished,
		toMillis(game.CreatedAt), toMillis(game.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("create hangman: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("create hangman: %w", err)
	}
	game.ID = model.GameID(id)
	return nil
}

func (s *Storage) GetHangman(ctx context.Context, id model.GameID) (*model.Hangman, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+hangmanColumns+` FROM hangmen WHERE id = ?`, int64(id))
	game, err := scanHangman(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrGameNotFound
		}
		return nil, fmt.Errorf("get hangman: %w", err)
	}
	return game, nil
}

func (s *Storage) ListHangmen(ctx context.Context, filter storage.HangmanFilter) ([]*model.Hangman, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+hangmanColumns+` FROM hangmen ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("list hangmen: %w", err)
	}
	defer rows.Close()

	games := []*model.Hangman{}
	for rows.Next() {
		game, err := scanHangman(rows)
		if err != nil {
			return nil, fmt.Errorf("list hangmen: %w", err)
		}
		if filter == nil || filter(game) {
			games = append(games, game)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list hangmen: %w", err)
	}
	return games, nil
}

func (s *Storage) SaveHangman(ctx context.Context, game *model.Hangman) error {
	guesses, err := encodeGuesses(game.Guesses)
	if err != nil {
		return err
	}
	res, err := s.db.ExecContext(ctx,
		`UPDATE hangmen
		    SET player_id = ?, answer = ?, guesses = ?, turns = ?, finished = ?, updated_at = ?
		  WHERE id = ?`,
		int64(game.PlayerID), game.Answer, guesses, game.Turns, game.Finished,
		toMillis(game.UpdatedAt), int64(game.ID),
	)
	if err != nil {
		return fmt.Errorf("save hangman: %w", err)
	}
	return requireAffected(res, model.ErrGameNotFound)
}

// Dictionary operations

func (s *Storage) GetDictionaryWords(ctx context.Context) ([]string, error) {
	var loaded int
	if err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM dictionary_state WHERE id = 1`).Scan(&loaded); err != nil {
		return nil, fmt.Errorf("get dictionary: %w", err)
	}
	if loaded == 0 {
		return nil, model.ErrDictionaryNotLoaded
	}

	rows, err := s.db.QueryContext(ctx, `SELECT word FROM dictionary_words ORDER BY word ASC`)
	if err != nil {
		return nil, fmt.Errorf("get dictionary: %w", err)
	}
	defer rows.Close()

	words := []string{}
	for rows.Next() {
		var word string
		if err := rows.Scan(&word); err != nil {
			return nil, fmt.Errorf("get dictionary: %w", err)
		}
		words = append(words, word)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get dictionary: %w", err)
	}
	return words, nil
}

func (s *Storage) SaveDictionaryWords(ctx context.Context, words []string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("save dictionary: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM dictionary_words`); err != nil {
		return fmt.Errorf("save dictionary: %w", err)
	}
	for _, word := range words {
		if _, err := tx.ExecContext(ctx,
			`INSERT OR IGNORE INTO dictionary_words (word) VALUES (?)`, word); err != nil {
			return fmt.Errorf("save dictionary: %w", err)
		}
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT OR REPLACE INTO dictionary_state (id, loaded_at) VALUES (1, ?)`,
		toMillis(time.Now())); err != nil {
		return fmt.Errorf("save dictionary: %w", err)
	}
	return tx.Commit()
}

// Row helpers

type scanner interface {
	Scan(dest ...any) error
}

func scanPlayer(row scanner) (*model.Player, error) {
	var (
		player    model.Player
		id        int64
		createdAt int64
	)
	if err := row.Scan(&id, &player.Name, &createdAt); err != nil {
		return nil, err
	}
	player.ID = model.PlayerID(id)
	player.CreatedAt = fromMillis(createdAt)
	return &player, nil
}

func scanNumberGame(row scanner) (*model.NumberGuessingGame, error) {
	var (
		game                 model.NumberGuessingGame
		id, playerID         int64
		guess                sql.NullInt64
		createdAt, updatedAt int64
	)
	if err := row.Scan(&id, &playerID, &game.Answer, &guess, &game.Attempts, &game.Finished, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	game.ID = model.GameID(id)
	game.PlayerID = model.PlayerID(playerID)
	if guess.Valid {
		g := int(guess.Int64)
		game.Guess = &g
	}
	game.CreatedAt = fromMillis(createdAt)
	game.UpdatedAt = fromMillis(updatedAt)
	return &game, nil
}

func scanHangman(row scanner) (*model.Hangman, error) {
	var (
		game                 model.Hangman
		id, playerID         int64
		guesses              string
		createdAt, updatedAt int64
	)
	if err := row.Scan(&id, &playerID, &game.Answer, &guesses, &game.Turns, &game.Finished, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	game.ID = model.GameID(id)
	game.PlayerID = model.PlayerID(playerID)
	if err := json.Unmarshal([]byte(guesses), &game.Guesses); err != nil {
		return nil, fmt.Errorf("decode guesses: %w", err)
	}
	if game.Guesses == nil {
		game.Guesses = []string{}
	}
	game.CreatedAt = fromMillis(createdAt)
	game.UpdatedAt = fromMillis(updatedAt)
	return &game, nil
}

func encodeGuesses(guesses []string) (string, error) {
	if guesses == nil {
		guesses = []string{}
	}
	data, err := json.Marshal(guesses)
	if err != nil {
		return "", fmt.Errorf("encode guesses: %w", err)
	}
	return string(data), nil
}

func nullableInt(v *int) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*v), Valid: true}
}

func requireAffected(res sql.Result, notFound error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return notFound
	}
	return nil
}
