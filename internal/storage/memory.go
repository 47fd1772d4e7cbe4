package storage

import (
	"sync"

	"github.com/vovakirdan/killer-emoji/internal/core"
)

// Memory keeps the leaderboard for the lifetime of the process.
// It is used when no database is available.
type Memory struct {
	mu      sync.Mutex
	limit   int
	entries []core.HighScore
}

// NewMemory creates an empty in-memory leaderboard.
func NewMemory(limit int) *Memory {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &Memory{limit: limit}
}

// Load returns a copy of the leaderboard, best first.
func (m *Memory) Load() []core.HighScore {
	m.mu.Lock()
	defer m.mu.Unlock()
	return core.RankScores(m.entries, m.limit)
}

// Save merges entry into the leaderboard.
func (m *Memory) Save(entry core.HighScore) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = core.RankScores(append(m.entries, entry), m.limit)
	return nil
}

// Reset clears the leaderboard.
func (m *Memory) Reset() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = nil
	return nil
}
