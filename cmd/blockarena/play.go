package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockarena/internal/platform/tui"
	"github.com/vovakirdan/blockarena/internal/registry"
)

var flagHold time.Duration

var playCmd = &cobra.Command{
	Use:   "play [ruleset]",
	Short: "Play in the terminal",
	Long: `Start playing the given ruleset (default: arena) in the terminal.

Controls:
  W/A/S/D      - Move
  Arrow keys   - Shoot
  P            - Pause
  R            - Restart (after game over)
  Q/Esc/Ctrl+C - Quit
  Ctrl+S       - Save a text screenshot

Terminals do not report key releases, so a key counts as held for
--hold after its last press or auto-repeat.

Difficulty options:
  easy    - More health, slower spawns and attacks
  normal  - Slightly relaxed
  hard    - Less health, faster spawns and attacks
  classic - The config exactly as loaded

Examples:
  blockarena play
  blockarena play arena_fair
  blockarena play --difficulty easy
  blockarena play --config ./my-arena.yaml --seed 7`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().DurationVar(&flagHold, "hold", tui.DefaultHoldWindow, "How long a key stays held after its last press")
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID, err := rulesetArg(args)
	if err != nil {
		return err
	}

	arenaCfg, preset, err := loadArena()
	if err != nil {
		return err
	}

	game, err := registry.CreateConfigured(gameID, arenaCfg)
	if err != nil {
		return fmt.Errorf("cannot create game: %w", err)
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	width, height := terminalSize()
	cfg := runtimeConfig(arenaCfg, width, height)
	logger.Debug("starting game", "game", gameID, "difficulty", preset, "seed", cfg.Seed, "fps", cfg.TickRate)

	return tui.Run(game, store, cfg, tui.Options{
		Arena:      arenaCfg,
		Player:     playerName(),
		HoldWindow: flagHold,
	})
}
