package core

// RuntimeConfig contains configuration passed to the game at start-up.
// The platform fills it from the terminal (or SSH PTY) and CLI flags.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in columns
	ScreenH  int   // Screen height in rows
	TickRate int   // Frames per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay, 0 = time based
	Remote   bool  // Running inside an SSH session
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// HighScore is a single leaderboard entry.
type HighScore struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
}

// ShareResult reports how a score was shared.
type ShareResult int

const (
	ShareFailed  ShareResult = iota // Nothing worked; the failure was logged
	ShareNative                     // Handed to the platform share command
	ShareCopied                     // Copied to a clipboard
)

// String returns a short status line for the result.
func (r ShareResult) String() string {
	switch r {
	case ShareNative:
		return "Shared!"
	case ShareCopied:
		return "Copied to clipboard!"
	default:
		return "Sharing is unavailable"
	}
}
