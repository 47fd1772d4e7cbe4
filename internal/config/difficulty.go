package config

import (
	"math"
	"time"
)

// Difficulty is the live difficulty state of a session.
// Speed and SpawnInterval compound across tiers; they are never recomputed
// from a table.
type Difficulty struct {
	Level         int           // Current tier, 1..MaxLevel
	Speed         float64       // Base fall speed for newly spawned emoji
	SpawnInterval time.Duration // Time between spawns
}

// DifficultyManager derives tiers from the displayed score and applies the
// compounding speed/spawn steps when the tier rises.
type DifficultyManager struct {
	cfg         DifficultyConfig
	speedStart  float64
	intervalMin time.Duration
	intervalMax time.Duration
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig, emoji EmojiConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:         cfg,
		speedStart:  emoji.SpeedStart,
		intervalMin: time.Duration(emoji.SpawnIntervalMinMs) * time.Millisecond,
		intervalMax: time.Duration(emoji.SpawnIntervalStartMs) * time.Millisecond,
	}
}

// Initial returns the difficulty at the start of a session.
func (d *DifficultyManager) Initial() Difficulty {
	return Difficulty{
		Level:         1,
		Speed:         d.speedStart,
		SpawnInterval: d.intervalMax,
	}
}

// Tier returns the difficulty tier for a displayed score:
// min(MaxLevel, floor(displayed / threshold) + 1).
func (d *DifficultyManager) Tier(displayed int) int {
	threshold := d.cfg.ScoreThreshold
	if threshold <= 0 {
		threshold = 1 // Prevent division by zero
	}
	if displayed < 0 {
		displayed = 0
	}
	return min(d.cfg.MaxLevel, displayed/threshold+1)
}

// Advance recomputes the tier for the displayed score. When the tier rose it
// returns the new difficulty and true. Under MultiTierOnce a single
// compounding step is applied no matter how many tiers were crossed; under
// MultiTierPerTier one step is applied per tier.
func (d *DifficultyManager) Advance(cur Difficulty, displayed int) (Difficulty, bool) {
	tier := d.Tier(displayed)
	if tier <= cur.Level {
		return cur, false
	}

	steps := 1
	if d.cfg.MultiTier == MultiTierPerTier {
		steps = tier - cur.Level
	}

	next := cur
	next.Level = tier
	for range steps {
		next.Speed *= d.cfg.SpeedIncrease
		next.SpawnInterval = d.shrink(next.SpawnInterval)
	}
	return next, true
}

// shrink applies one spawn interval step, floored at the minimum.
func (d *DifficultyManager) shrink(interval time.Duration) time.Duration {
	scaled := time.Duration(math.Round(float64(interval) * d.cfg.SpawnDecrease))
	return max(scaled, d.intervalMin)
}
