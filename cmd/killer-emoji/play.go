package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/killer-emoji/internal/audio"
	"github.com/vovakirdan/killer-emoji/internal/core"
	"github.com/vovakirdan/killer-emoji/internal/game"
	"github.com/vovakirdan/killer-emoji/internal/platform/tui"
	"github.com/vovakirdan/killer-emoji/internal/share"
	"github.com/vovakirdan/killer-emoji/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Killer Emoji",
	Long: `Start Killer Emoji in this terminal.

Controls:
  ←/A  →/D     - Move (hold the key, or hold the mouse on either half)
  ↓/Space      - Stop
  ↑/↓          - Pick a character on the start screen
  Enter        - Start / save your high score
  R            - Retry after game over
  S            - Share your score
  Tab          - Ranking
  +/-          - Volume
  Esc          - Back to the start screen
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Slower emoji, longer spawn interval
  normal - Default settings
  hard   - Faster emoji, shorter spawn interval

Examples:
  killer-emoji play
  killer-emoji play --difficulty easy
  killer-emoji play --seed 42 --mute
  killer-emoji play --config ./my-killer-emoji.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := loadGameConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog := newFileLogger(flagLogPath)
	defer closeLog()

	// Get terminal size early so the first frame fits
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Open score storage
	var scores game.ScoreStore
	store, err := storage.Open(flagDBPath, storage.Options{
		Key:    cfg.Scores.Key,
		Limit:  cfg.Scores.Limit,
		Logger: logger,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("scores kept in memory", "err", err)
		// Continue without persistence - scores last until exit
		scores = storage.NewMemory(cfg.Scores.Limit)
	} else {
		scores = store
	}

	sharer := share.New(cfg.Share, logger,
		share.SystemClipboard{},
		share.OSC52Clipboard{W: os.Stdout, Tmux: os.Getenv("TMUX") != ""},
	)

	// Run the game
	runErr := tui.Run(tui.Options{
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		Game:   cfg,
		Scores: scores,
		Sounds: audio.New(cfg.Audio, logger),
		Sharer: sharer,
		Logger: logger,
	})

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		closeLog()
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
