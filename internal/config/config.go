// Package config provides YAML-based game configuration loading and
// difficulty presets for Killer Emoji.
package config

// GameConfig contains all tunables for the game.
// Positions and sizes are in play-field percent (0..100), speeds are in
// percent per frame.
type GameConfig struct {
	Player     PlayerConfig     `yaml:"player"`
	Emoji      EmojiConfig      `yaml:"emoji"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Scores     ScoresConfig     `yaml:"scores"`
	Audio      AudioConfig      `yaml:"audio"`
	Share      ShareConfig      `yaml:"share"`
	Input      InputConfig      `yaml:"input"`
}

// PlayerConfig defines the player character and its hit-box band.
type PlayerConfig struct {
	Width        float64 `yaml:"width"`
	Speed        float64 `yaml:"speed"`
	HitboxTop    float64 `yaml:"hitbox_top"`
	HitboxBottom float64 `yaml:"hitbox_bottom"`
	StartX       float64 `yaml:"start_x"`
}

// EmojiConfig defines falling emoji spawning and motion.
type EmojiConfig struct {
	Size                 float64  `yaml:"size"`
	SpawnY               float64  `yaml:"spawn_y"`
	SpeedStart           float64  `yaml:"speed_start"`
	SpawnIntervalStartMs int      `yaml:"spawn_interval_start_ms"`
	SpawnIntervalMinMs   int      `yaml:"spawn_interval_min_ms"`
	JitterMin            float64  `yaml:"jitter_min"`
	JitterMax            float64  `yaml:"jitter_max"`
	Glyphs               []string `yaml:"glyphs"`
}

// MultiTierPolicy decides how many compounding steps a frame applies when
// the displayed score crosses more than one tier boundary at once.
type MultiTierPolicy string

const (
	// MultiTierOnce applies a single compounding step per frame.
	MultiTierOnce MultiTierPolicy = "once"
	// MultiTierPerTier applies one compounding step per tier crossed.
	MultiTierPerTier MultiTierPolicy = "per_tier"
)

// DifficultyConfig defines the tiered difficulty progression.
type DifficultyConfig struct {
	ScoreThreshold int             `yaml:"score_threshold"` // Displayed points per tier
	SpeedIncrease  float64         `yaml:"speed_increase"`  // Fall speed multiplier per tier (>1)
	SpawnDecrease  float64         `yaml:"spawn_decrease"`  // Spawn interval multiplier per tier (<1)
	MaxLevel       int             `yaml:"max_level"`
	MultiTier      MultiTierPolicy `yaml:"multi_tier"`
}

// ScoresConfig defines the leaderboard.
type ScoresConfig struct {
	Limit           int    `yaml:"limit"`
	PlaceholderName string `yaml:"placeholder_name"`
	MaxNameLength   int    `yaml:"max_name_length"`
	Key             string `yaml:"key"`
}

// AudioConfig defines sound output.
type AudioConfig struct {
	Enabled bool `yaml:"enabled"`
	Volume  int  `yaml:"volume"` // 0..5
}

// ShareConfig defines how a score is shared.
type ShareConfig struct {
	Command []string `yaml:"command"` // Receives the message on stdin; empty = clipboard only
	Text    string   `yaml:"text"`    // fmt template, %d is the score
	URL     string   `yaml:"url"`
}

// InputConfig defines keyboard handling.
type InputConfig struct {
	HoldMs        int `yaml:"hold_ms"`         // A held direction is released when no repeat arrives in this window
	RepeatDelayMs int `yaml:"repeat_delay_ms"` // Window after the first press, covering the terminal's key repeat delay
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a CLI string to a preset. Empty input means no preset.
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s), true
	case "":
		return "", true
	default:
		return "", false
	}
}

// presetScale returns the (speed, interval) scale factors for a preset.
func presetScale(preset DifficultyPreset) (float64, float64) {
	switch preset {
	case DifficultyEasy:
		return 0.75, 1.25
	case DifficultyHard:
		return 1.4, 0.7
	default:
		return 1.0, 1.0
	}
}

// ApplyPreset modifies the starting speed and spawn interval for a preset.
// The spawn interval never drops below the configured minimum.
func ApplyPreset(cfg *GameConfig, preset DifficultyPreset) {
	speed, interval := presetScale(preset)
	cfg.Emoji.SpeedStart *= speed
	cfg.Emoji.SpawnIntervalStartMs = max(
		int(float64(cfg.Emoji.SpawnIntervalStartMs)*interval),
		cfg.Emoji.SpawnIntervalMinMs,
	)
}
