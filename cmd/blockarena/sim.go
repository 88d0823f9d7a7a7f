package main

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/blockarena/internal/core"
	"github.com/vovakirdan/blockarena/internal/games/arena"
	"github.com/vovakirdan/blockarena/internal/registry"
	"github.com/vovakirdan/blockarena/internal/storage"
)

var (
	flagMaxFrames int
	flagRealtime  bool
	flagRecord    bool
)

var simCmd = &cobra.Command{
	Use:   "sim [ruleset]",
	Short: "Run a headless bot session",
	Long: `Run a session without a display, driven by the built-in bot, and
print the final arena snapshot as YAML.

With the same --seed, --config and --difficulty the run is reproducible
frame for frame. Use --log-level debug to log every game event.

Examples:
  blockarena sim --seed 42
  blockarena sim arena_fair --seed 7 --max-frames 18000
  blockarena sim --seed 1 --record --log-level debug`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagMaxFrames, "max-frames", 60*60*5, "Stop after this many frames (0 = until the game ends)")
	simCmd.Flags().BoolVar(&flagRealtime, "realtime", false, "Pace frames at the tick rate instead of running flat out")
	simCmd.Flags().BoolVar(&flagRecord, "record", false, "Save the finished run to the scores database")
}

func runSim(cmd *cobra.Command, args []string) error {
	gameID, err := rulesetArg(args)
	if err != nil {
		return err
	}

	arenaCfg, preset, err := loadArena()
	if err != nil {
		return err
	}

	created, err := registry.CreateConfigured(gameID, arenaCfg)
	if err != nil {
		return fmt.Errorf("cannot create game: %w", err)
	}
	game, ok := created.(*arena.Game)
	if !ok {
		return fmt.Errorf("ruleset %q cannot be simulated", gameID)
	}

	cfg := runtimeConfig(arenaCfg, 0, 0)
	game.Reset(cfg)

	var pacer core.Pacer = core.NoPacer{}
	if flagRealtime {
		rt := core.NewRealtimePacer(cfg.TickRate)
		defer rt.Stop()
		pacer = rt
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	logger.Info("simulating", "game", gameID, "difficulty", preset, "seed", cfg.Seed, "max_frames", flagMaxFrames)

	res, err := core.RunLoop(ctx, game, arena.NewBot(game), nil, pacer, core.LoopOptions{
		MaxFrames: flagMaxFrames,
		OnStep: func(frame int, step core.StepResult) {
			for _, ev := range step.Events {
				logger.Debug("event", "frame", frame, "kind", ev.Kind, "entity", ev.Entity, "x", ev.X, "y", ev.Y)
			}
		},
	})
	if err != nil {
		return fmt.Errorf("simulation failed: %w", err)
	}

	logger.Info("simulation finished", "outcome", res.Outcome, "score", res.Score,
		"frames", res.Frames, "elapsed_ms", res.ElapsedMillis)

	if flagRecord {
		recordSim(gameID, cfg.Seed, res)
	}

	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	if err := enc.Encode(game.Snapshot()); err != nil {
		return fmt.Errorf("cannot encode snapshot: %w", err)
	}
	return enc.Close()
}

// recordSim saves a simulated run under the "bot" player.
func recordSim(gameID string, seed int64, res core.Result) {
	store := openStore()
	if store == nil {
		return
	}
	defer store.Close()

	id, err := store.SaveRun(storage.Run{
		GameID:     gameID,
		Player:     "bot",
		Outcome:    res.Outcome.String(),
		Score:      res.Score,
		DurationMs: res.ElapsedMillis,
		Seed:       seed,
	})
	if err != nil {
		logger.Warn("could not save run", "error", err)
		return
	}
	logger.Debug("saved run", "id", id)
}
