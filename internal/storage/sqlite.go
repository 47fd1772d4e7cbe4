// Package storage provides SQLite-based persistence for the leaderboard.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
//
// The database is a small key-value table. The leaderboard is stored as a
// JSON array under a single key, always ranked and truncated.
package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/killer-emoji/internal/core"
)

// DefaultKey is the key the leaderboard is stored under.
const DefaultKey = "killerEmojiHighScores"

// DefaultLimit is the number of entries kept.
const DefaultLimit = 5

// Options configures a Store.
type Options struct {
	Key    string      // Key the leaderboard is stored under
	Limit  int         // Entries kept after every save
	Logger *log.Logger // Receives read failures; nil discards them
}

// Store manages the SQLite database connection for score persistence.
type Store struct {
	db     *sql.DB
	key    string
	limit  int
	logger *log.Logger
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string, opts Options) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	// Open database
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	// One connection serializes read-merge-write cycles from SSH sessions
	db.SetMaxOpenConns(1)

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	if opts.Key == "" {
		opts.Key = DefaultKey
	}
	if opts.Limit <= 0 {
		opts.Limit = DefaultLimit
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	store := &Store{db: db, key: opts.Key, limit: opts.Limit, logger: opts.Logger}

	// Run migrations
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS kv (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Load returns the leaderboard, best first. A missing or unreadable value
// is logged and reads as an empty board.
func (s *Store) Load() []core.HighScore {
	entries, err := s.read(s.db)
	if err != nil {
		s.logger.Warn("cannot read high scores, starting empty", "key", s.key, "err", err)
		return []core.HighScore{}
	}
	return core.RankScores(entries, s.limit)
}

// Save merges entry into the leaderboard, re-ranks, truncates and writes it
// back in one transaction. A corrupt stored value is replaced.
func (s *Store) Save(entry core.HighScore) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	entries, err := s.read(tx)
	if err != nil {
		s.logger.Warn("discarding unreadable high scores", "key", s.key, "err", err)
		entries = nil
	}

	ranked := core.RankScores(append(entries, entry), s.limit)
	if err := s.write(tx, ranked); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit scores: %w", err)
	}
	return nil
}

// Reset deletes the leaderboard.
func (s *Store) Reset() error {
	if _, err := s.db.Exec("DELETE FROM kv WHERE key = ?", s.key); err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

// Raw returns the stored value for the leaderboard key as is.
// Returns an empty string if nothing is stored.
func (s *Store) Raw() (string, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM kv WHERE key = ?", s.key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("storage: cannot query scores: %w", err)
	}
	return value, nil
}

// querier is satisfied by *sql.DB and *sql.Tx.
type querier interface {
	QueryRow(query string, args ...any) *sql.Row
	Exec(query string, args ...any) (sql.Result, error)
}

func (s *Store) read(q querier) ([]core.HighScore, error) {
	var value string
	err := q.QueryRow("SELECT value FROM kv WHERE key = ?", s.key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}

	var entries []core.HighScore
	if err := json.Unmarshal([]byte(value), &entries); err != nil {
		return nil, fmt.Errorf("storage: corrupt scores: %w", err)
	}
	return entries, nil
}

func (s *Store) write(q querier, entries []core.HighScore) error {
	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("storage: cannot encode scores: %w", err)
	}

	_, err = q.Exec(
		`INSERT INTO kv (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		s.key, string(data),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save scores: %w", err)
	}
	return nil
}

