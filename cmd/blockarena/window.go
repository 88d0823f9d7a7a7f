package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockarena/internal/platform/window"
	"github.com/vovakirdan/blockarena/internal/registry"
)

var flagScale float64

var windowCmd = &cobra.Command{
	Use:   "window [ruleset]",
	Short: "Play in a desktop window",
	Long: `Open a desktop window and play the given ruleset (default: arena)
at full resolution.

Controls:
  W/A/S/D     - Move
  Arrow keys  - Shoot
  P           - Pause
  R           - Restart (after game over)
  Esc/Q/B     - Quit

Examples:
  blockarena window
  blockarena window arena_fair --scale 1.5`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWindow,
}

func init() {
	windowCmd.Flags().Float64Var(&flagScale, "scale", 1, "Window pixels per arena unit")
}

func runWindow(_ *cobra.Command, args []string) error {
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

	cfg := runtimeConfig(arenaCfg, int(arenaCfg.Field.Width), int(arenaCfg.Field.Height))
	logger.Info("opening window", "game", gameID, "difficulty", preset, "seed", cfg.Seed)

	return window.Run(game, store, cfg, window.Options{
		Arena:  arenaCfg,
		Player: playerName(),
		Scale:  flagScale,
		Logger: logger,
	})
}
