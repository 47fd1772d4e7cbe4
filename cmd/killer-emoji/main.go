// killer-emoji is a terminal arcade game: dodge the emoji falling from the
// top of the screen for as long as you can.
//
// Usage:
//
//	killer-emoji                 - Play (same as 'killer-emoji play')
//	killer-emoji play            - Play a round in this terminal
//	killer-emoji serve           - Start SSH server for remote play
//	killer-emoji scores          - Show the leaderboard
//	killer-emoji config dump     - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>           - Set tick rate (default: 60)
//	--seed <value>         - Set RNG seed for reproducible gameplay
//	--db <path>            - Set database path (default: ~/.killer-emoji/scores.db)
//	--config <path>        - Use a custom configuration file
//	--difficulty <preset>  - Difficulty preset: easy, normal, hard
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/killer-emoji/internal/config"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogPath    string
	flagMute       bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "killer-emoji",
	Short: "Killer Emoji - dodge falling emoji in your terminal",
	Long: `Killer Emoji is a terminal arcade game. Emoji rain down from the top
of the screen; move left and right to dodge them. Every frame you survive
scores, and the rain gets faster and denser as your score grows.

Available commands:
  play     - Play in this terminal (default)
  serve    - Start SSH server for remote play
  scores   - View or reset the leaderboard
  config   - Inspect the configuration

Examples:
  killer-emoji
  killer-emoji play --difficulty hard
  killer-emoji serve --ssh :2222
  killer-emoji scores`,
	Run: runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.killer-emoji/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "~/.killer-emoji/killer-emoji.log", "Path to log file")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable sound")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// loadGameConfig loads the configuration and applies the global flags.
func loadGameConfig() (config.GameConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.GameConfig{}, err
	}

	preset, ok := config.ParsePreset(flagDifficulty)
	if !ok {
		return config.GameConfig{}, fmt.Errorf("unknown difficulty %q (use easy, normal or hard)", flagDifficulty)
	}
	config.ApplyPreset(&cfg, preset)

	if flagMute {
		cfg.Audio.Enabled = false
	}
	return cfg, nil
}

// newFileLogger opens the log file, creating its directory. The TUI owns
// the terminal, so log output never goes to stdout or stderr. Logging is
// discarded if the file cannot be opened.
func newFileLogger(path string) (*log.Logger, func()) {
	var w io.Writer = io.Discard
	closeFn := func() {}

	if path = expandHome(path); path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err == nil {
			if f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644); err == nil {
				w = f
				closeFn = func() { f.Close() }
			}
		}
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "killer-emoji",
	})
	return logger, closeFn
}

// expandHome expands a leading ~ to the home directory.
func expandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, path[1:])
}
