package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockarena/internal/config"
	"github.com/vovakirdan/blockarena/internal/platform/tui"
	"github.com/vovakirdan/blockarena/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a ruleset and difficulty interactively",
	Long: `Start Block Arena in interactive menu mode.

Use arrow keys or j/k to pick a ruleset, left/right to change difficulty,
Enter to play. After a game ends, press B to return to the menu.

Controls:
  Up/Down/j/k     - Navigate menu
  Left/Right/h/l  - Change difficulty
  Enter/Space     - Play
  Tab             - Scoreboard
  Q               - Quit

Examples:
  blockarena menu
  blockarena menu --difficulty hard
  blockarena menu --db ./scores.db`,
	RunE: runMenu,
}

func init() {
	menuCmd.Flags().DurationVar(&flagHold, "hold", tui.DefaultHoldWindow, "How long a key stays held after its last press")
}

func runMenu(_ *cobra.Command, _ []string) error {
	baseCfg, preset, err := loadBaseArena()
	if err != nil {
		return err
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	width, height := terminalSize()
	cfg := runtimeConfig(baseCfg, width, height)

	for {
		menuResult, err := tui.RunMenu(store, cfg, preset)
		if err != nil {
			return err
		}

		cfg = menuResult.Config
		preset = menuResult.Difficulty

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				return sbErr
			}
			if goBack {
				continue
			}
			return nil
		}

		arenaCfg := baseCfg
		config.ApplyArenaPreset(&arenaCfg, preset)

		game, err := registry.CreateConfigured(menuResult.GameID, arenaCfg)
		if err != nil {
			logger.Error("cannot create game", "game", menuResult.GameID, "error", err)
			continue
		}

		// Fresh seed per game unless --seed pins it
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		if err := tui.Run(game, store, cfg, tui.Options{
			Arena:      arenaCfg,
			Player:     playerName(),
			HoldWindow: flagHold,
		}); err != nil {
			return fmt.Errorf("cannot run game: %w", err)
		}
	}
}
