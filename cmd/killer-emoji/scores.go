package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/killer-emoji/internal/storage"
)

var (
	flagReset bool
	flagRaw   bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the leaderboard",
	Long: `Display the top scores stored in the scores database.

Examples:
  killer-emoji scores
  killer-emoji scores --raw
  killer-emoji scores --reset
  killer-emoji scores --db ./scores.db`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagReset, "reset", false, "Delete all stored scores")
	scoresCmd.Flags().BoolVar(&flagRaw, "raw", false, "Print the stored value as is")
}

func runScores(_ *cobra.Command, _ []string) {
	cfg, err := loadGameConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath, storage.Options{
		Key:   cfg.Scores.Key,
		Limit: cfg.Scores.Limit,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	switch {
	case flagReset:
		if err := store.Reset(); err != nil {
			store.Close()
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Leaderboard cleared.")
		return

	case flagRaw:
		raw, err := store.Raw()
		if err != nil {
			store.Close()
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(raw)
		return
	}

	scores := store.Load()

	// Display scores
	fmt.Println("High Scores - Killer Emoji")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'killer-emoji play' to set the first high score!")
		return
	}

	// Calculate column widths
	nameLen := len("Name")
	for _, entry := range scores {
		nameLen = max(nameLen, len([]rune(entry.Name)))
	}

	// Print header
	fmt.Printf("  %-4s  %-*s  %s\n", "Rank", nameLen, "Name", "Score")
	fmt.Printf("  %-4s  %-*s  %s\n", "----", nameLen, "----", "-----")

	// Print scores
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-*s  %d\n", i+1, nameLen, entry.Name, entry.Score)
	}
}
