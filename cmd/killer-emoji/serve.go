package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/killer-emoji/internal/platform/tui"
	"github.com/vovakirdan/killer-emoji/internal/storage"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Killer Emoji SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own game, named after the SSH user.
Scores are stored per-server (all users share the same leaderboard).
Remote players have no sound; sharing copies the message to the
player's own clipboard through their terminal.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.killer-emoji/host_key

Examples:
  killer-emoji serve                           # Listen on :23234 with auto-generated key
  killer-emoji serve --ssh :2222               # Listen on port 2222
  killer-emoji serve --host-key ./my_host_key  # Use specific host key
  killer-emoji serve --db ./scores.db          # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) {
	gameCfg, err := loadGameConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "killer-emoji-ssh",
	})

	store, err := storage.Open(flagDBPath, storage.Options{
		Key:    gameCfg.Scores.Key,
		Limit:  gameCfg.Scores.Limit,
		Logger: logger,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	// Shared scores point at this server when it has a public name
	connect, named := tui.ConnectCommand(flagSSHAddr)
	if named && gameCfg.Share.URL == "" {
		gameCfg.Share.URL = connect
	}

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.Game = gameCfg
	if flagIdleTimeout > 0 {
		cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	}
	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}

	server, err := tui.NewSSHServer(cfg, store, logger)
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting Killer Emoji SSH server on %s\n", server.Addr())
	fmt.Println("Connect with: " + connect)
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
