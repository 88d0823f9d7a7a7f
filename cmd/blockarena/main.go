// blockarena is a top-down arena shooter for the terminal, SSH and the desktop.
//
// Usage:
//
//	blockarena list                - List available rulesets
//	blockarena play [ruleset]      - Play in the terminal
//	blockarena menu                - Pick a ruleset and difficulty interactively
//	blockarena serve               - Start SSH server for remote play
//	blockarena scores [ruleset]    - Show high scores and run statistics
//	blockarena window [ruleset]    - Play in a desktop window
//	blockarena sim [ruleset]       - Run a headless bot session
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: from config, 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.blockarena/scores.db)
//	--config <path>       - Load a custom arena config YAML
//	--difficulty <preset> - easy, normal, hard or classic
//	--log-level <level>   - debug, info, warn or error
//	--wall-clock          - Drive game timers from real time instead of frames
package main

import (
	"fmt"
	"os"
	"os/user"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/blockarena/internal/config"
	"github.com/vovakirdan/blockarena/internal/core"
	"github.com/vovakirdan/blockarena/internal/games/arena"
	"github.com/vovakirdan/blockarena/internal/registry"
	"github.com/vovakirdan/blockarena/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagWallClock  bool

	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "blockarena",
	})
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error("command failed", "error", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "blockarena",
	Short: "Block Arena - survive the blocks, shoot them all",
	Long: `Block Arena is a top-down arena shooter. You are a black square in a
white field: dodge the chasing lines, the bouncing triangles and the charging
rectangles, and shoot every one of them to win.

Available commands:
  list     - Show all rulesets
  play     - Play a ruleset in the terminal
  menu     - Interactive ruleset and difficulty picker
  serve    - Start SSH server for remote play
  scores   - View high scores and statistics
  window   - Play in a desktop window
  sim      - Run a headless bot session and print the final snapshot

Examples:
  blockarena play
  blockarena play arena_fair --difficulty hard
  blockarena window --seed 42
  blockarena serve --ssh :2222
  blockarena sim --seed 1 --max-frames 3600`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		level, err := log.ParseLevel(flagLogLevel)
		if err != nil {
			return fmt.Errorf("invalid --log-level: %w", err)
		}
		logger.SetLevel(level)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = use config field.fps)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.blockarena/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom arena config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, classic")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&flagWallClock, "wall-clock", false, "Drive game timers from real time instead of frame count")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(simCmd)
}

// loadBaseArena loads the arena config and parses --difficulty without
// applying it. Menus apply the preset the player finally picks.
func loadBaseArena() (config.ArenaConfig, config.DifficultyPreset, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.ArenaConfig{}, "", err
	}
	cfg, err := config.LoadArena(flagConfig)
	if err != nil {
		return config.ArenaConfig{}, "", err
	}
	return cfg, preset, nil
}

// loadArena loads the arena config with the difficulty preset applied.
func loadArena() (config.ArenaConfig, config.DifficultyPreset, error) {
	cfg, preset, err := loadBaseArena()
	if err != nil {
		return cfg, preset, err
	}
	config.ApplyArenaPreset(&cfg, preset)
	return cfg, preset, nil
}

// rulesetArg returns the ruleset named on the command line, defaulting to
// the classic arena.
func rulesetArg(args []string) (string, error) {
	id := arena.IDClassic
	if len(args) > 0 {
		id = args[0]
	}
	if !registry.Exists(id) {
		return "", fmt.Errorf("unknown ruleset %q (run 'blockarena list')", id)
	}
	return id, nil
}

// runtimeConfig builds the runtime config from the global flags.
func runtimeConfig(cfg config.ArenaConfig, width, height int) core.RuntimeConfig {
	tickRate := flagFPS
	if tickRate <= 0 {
		tickRate = cfg.Field.FPS
	}
	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: tickRate,
		Seed:     seed,
		RealTime: flagWallClock,
	}
}

// terminalSize returns the size of stdout, or 80x24 when it is not a terminal.
func terminalSize() (int, int) {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		return w, h
	}
	return 80, 24
}

// openStore opens the scores database. A failure is logged and the game runs
// without persistence.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// playerName is the local user name recorded with every run.
func playerName() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return os.Getenv("USER")
}
