package game

import (
	"time"

	"github.com/vovakirdan/killer-emoji/internal/config"
)

// RandSource supplies the random draws used at spawn time.
// *math/rand.Rand satisfies it.
type RandSource interface {
	Float64() float64
	Intn(n int) int
}

// Spawner creates falling emoji on a timer.
type Spawner struct {
	cfg config.EmojiConfig
	rng RandSource
}

// NewSpawner creates a spawner drawing from rng.
func NewSpawner(cfg config.EmojiConfig, rng RandSource) *Spawner {
	return &Spawner{cfg: cfg, rng: rng}
}

// Due reports whether the spawn interval has strictly elapsed since last.
func (s *Spawner) Due(now, last, interval time.Duration) bool {
	return now-last > interval
}

// Spawn creates an emoji above the field. Its speed is the base speed
// times a jitter factor drawn from [JitterMin, JitterMax).
func (s *Spawner) Spawn(now time.Duration, baseSpeed float64) Emoji {
	x := s.rng.Float64() * (100 - s.cfg.Size)
	glyph := s.cfg.Glyphs[s.rng.Intn(len(s.cfg.Glyphs))]
	jitter := s.cfg.JitterMin + s.rng.Float64()*(s.cfg.JitterMax-s.cfg.JitterMin)
	rotation := s.rng.Float64() * 360

	return Emoji{
		ID:       int64(now),
		X:        x,
		Y:        s.cfg.SpawnY,
		Glyph:    glyph,
		Speed:    baseSpeed * jitter,
		Rotation: rotation,
	}
}
