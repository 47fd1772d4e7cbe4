package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the game configuration.
// Search order: customPath -> ~/.killer-emoji/config.yaml -> ./configs/killer-emoji.yaml -> embedded default
//
// Files are decoded on top of the defaults, so a partial file only overrides
// the keys it names. The result is validated.
func Load(customPath string) (GameConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return GameConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return GameConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := UserConfigPath(); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "killer-emoji.yaml")); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultGameYAML)
	if err != nil {
		return DefaultGameConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML on top of the embedded defaults and validates the result.
func Parse(data []byte) (GameConfig, error) {
	cfg := DefaultGameConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return GameConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return GameConfig{}, err
	}
	return cfg, nil
}

// Marshal encodes the configuration as YAML.
func Marshal(cfg GameConfig) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// UserConfigPath returns the path to the user config file, or empty if home is unavailable.
func UserConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".killer-emoji", "config.yaml")
}

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Validate checks that the configuration describes a playable game.
func (c GameConfig) Validate() error {
	switch {
	case c.Player.Width <= 0 || c.Player.Width >= 100:
		return fmt.Errorf("%w: player.width must be in (0, 100)", ErrInvalid)
	case c.Player.Speed <= 0:
		return fmt.Errorf("%w: player.speed must be positive", ErrInvalid)
	case c.Player.HitboxTop >= c.Player.HitboxBottom:
		return fmt.Errorf("%w: player.hitbox_top must be above hitbox_bottom", ErrInvalid)
	case c.Emoji.Size <= 0 || c.Emoji.Size >= 100:
		return fmt.Errorf("%w: emoji.size must be in (0, 100)", ErrInvalid)
	case c.Emoji.SpeedStart <= 0:
		return fmt.Errorf("%w: emoji.speed_start must be positive", ErrInvalid)
	case c.Emoji.SpawnIntervalMinMs <= 0:
		return fmt.Errorf("%w: emoji.spawn_interval_min_ms must be positive", ErrInvalid)
	case c.Emoji.SpawnIntervalStartMs < c.Emoji.SpawnIntervalMinMs:
		return fmt.Errorf("%w: emoji.spawn_interval_start_ms is below the minimum", ErrInvalid)
	case c.Emoji.JitterMin <= 0 || c.Emoji.JitterMin > c.Emoji.JitterMax:
		return fmt.Errorf("%w: emoji jitter range is empty", ErrInvalid)
	case len(c.Emoji.Glyphs) == 0:
		return fmt.Errorf("%w: emoji.glyphs is empty", ErrInvalid)
	case c.Difficulty.ScoreThreshold <= 0:
		return fmt.Errorf("%w: difficulty.score_threshold must be positive", ErrInvalid)
	case c.Difficulty.SpeedIncrease <= 1:
		return fmt.Errorf("%w: difficulty.speed_increase must be greater than 1", ErrInvalid)
	case c.Difficulty.SpawnDecrease <= 0 || c.Difficulty.SpawnDecrease >= 1:
		return fmt.Errorf("%w: difficulty.spawn_decrease must be in (0, 1)", ErrInvalid)
	case c.Difficulty.MaxLevel < 1:
		return fmt.Errorf("%w: difficulty.max_level must be at least 1", ErrInvalid)
	case c.Difficulty.MultiTier != MultiTierOnce && c.Difficulty.MultiTier != MultiTierPerTier:
		return fmt.Errorf("%w: difficulty.multi_tier must be %q or %q", ErrInvalid, MultiTierOnce, MultiTierPerTier)
	case c.Scores.Limit < 1:
		return fmt.Errorf("%w: scores.limit must be at least 1", ErrInvalid)
	case c.Scores.Key == "":
		return fmt.Errorf("%w: scores.key is empty", ErrInvalid)
	case c.Audio.Volume < 0 || c.Audio.Volume > MaxVolume:
		return fmt.Errorf("%w: audio.volume must be in [0, %d]", ErrInvalid, MaxVolume)
	case c.Input.HoldMs <= 0:
		return fmt.Errorf("%w: input.hold_ms must be positive", ErrInvalid)
	case c.Input.RepeatDelayMs < c.Input.HoldMs:
		return fmt.Errorf("%w: input.repeat_delay_ms must be at least hold_ms", ErrInvalid)
	}
	return nil
}

// MaxVolume is the loudest volume level.
const MaxVolume = 5
