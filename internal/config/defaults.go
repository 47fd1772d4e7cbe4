package config

import (
	_ "embed"
)

//go:embed defaults/killer_emoji.yaml
var defaultGameYAML []byte

// DefaultGameConfig returns the hard-coded default configuration.
// It mirrors defaults/killer_emoji.yaml and is used when the embedded YAML
// cannot be parsed.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Player: PlayerConfig{
			Width:        5,
			Speed:        1.0,
			HitboxTop:    90,
			HitboxBottom: 100,
			StartX:       50,
		},
		Emoji: EmojiConfig{
			Size:                 4,
			SpawnY:               -10,
			SpeedStart:           0.2,
			SpawnIntervalStartMs: 600,
			SpawnIntervalMinMs:   150,
			JitterMin:            0.8,
			JitterMax:            1.2,
			Glyphs: []string{
				"💧", "🔥", "💀", "💣", "😂", "🌶️",
				"🚀", "⭐", "🍕", "👻", "🤖", "🤯",
			},
		},
		Difficulty: DifficultyConfig{
			ScoreThreshold: 100,
			SpeedIncrease:  1.2,
			SpawnDecrease:  0.9,
			MaxLevel:       5,
			MultiTier:      MultiTierOnce,
		},
		Scores: ScoresConfig{
			Limit:           5,
			PlaceholderName: "Anonymous",
			MaxNameLength:   12,
			Key:             "killerEmojiHighScores",
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  4,
		},
		Share: ShareConfig{
			Text: "I scored %d points in Killer Emoji! Try to beat me!",
		},
		Input: InputConfig{
			HoldMs:        160,
			RepeatDelayMs: 550,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultGameYAML
}
