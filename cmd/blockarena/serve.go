package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockarena/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Block Arena SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own session with the ruleset menu.
Runs are recorded under the SSH user name, and all users share the
same leaderboard.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.blockarena/host_key

Examples:
  blockarena serve                           # Listen on :23234 with auto-generated key
  blockarena serve --ssh :2222               # Listen on port 2222
  blockarena serve --host-key ./my_host_key  # Use specific host key
  blockarena serve --db ./scores.db          # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().DurationVar(&flagHold, "hold", tui.DefaultHoldWindow, "How long a key stays held after its last press")
}

func runServe(_ *cobra.Command, _ []string) error {
	arenaCfg, preset, err := loadBaseArena()
	if err != nil {
		return err
	}
	if flagFPS > 0 {
		arenaCfg.Field.FPS = flagFPS
	}

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		DBPath:      flagDBPath,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		Arena:       arenaCfg,
		Difficulty:  preset,
		HoldWindow:  flagHold,
		Logger:      logger.WithPrefix("blockarena-ssh"),
	}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		return err
	}

	logger.Info("connect with ssh", "address", cfg.Address, "hint", "ssh localhost -p 23234")
	return server.ListenAndServe()
}
