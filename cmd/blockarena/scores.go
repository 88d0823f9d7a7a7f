package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockarena/internal/registry"
	"github.com/vovakirdan/blockarena/internal/storage"
)

var (
	flagScoresLimit  int
	flagScoresClear  bool
	flagScoresRecent int
	flagScoresAll    bool
	flagScoresRun    int64
)

var scoresCmd = &cobra.Command{
	Use:   "scores [ruleset]",
	Short: "Show high scores and run statistics",
	Long: `Display the top scores and aggregate statistics for a ruleset
(default: arena).

Examples:
  blockarena scores
  blockarena scores arena_fair --limit 20
  blockarena scores --recent 5
  blockarena scores --all
  blockarena scores --run 12
  blockarena scores arena --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete every recorded run for the ruleset")
	scoresCmd.Flags().IntVar(&flagScoresRecent, "recent", 0, "Also list this many most recent runs")
	scoresCmd.Flags().BoolVar(&flagScoresAll, "all", false, "Summarize every ruleset that has recorded runs")
	scoresCmd.Flags().Int64Var(&flagScoresRun, "run", 0, "Show the details of one run by id")
	scoresCmd.MarkFlagsMutuallyExclusive("all", "run", "clear")
}

func runScores(_ *cobra.Command, args []string) error {
	if flagScoresAll || flagScoresRun > 0 {
		store, err := storage.Open(flagDBPath)
		if err != nil {
			return err
		}
		defer store.Close()
		if flagScoresAll {
			return printAllStats(os.Stdout, store)
		}
		return printRun(os.Stdout, store, flagScoresRun)
	}

	gameID, err := rulesetArg(args)
	if err != nil {
		return err
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("cannot create game: %w", err)
	}
	title := game.Title()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		logger.Info("cleared runs", "game", gameID)
		return nil
	}

	scores, err := store.TopScores(gameID, flagScoresLimit)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'blockarena play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-7s  %-7s  %-12s  %s\n", "Rank", "Score", "Outcome", "Player", "Date")
	fmt.Printf("  %-4s  %-7s  %-7s  %-12s  %s\n", "----", "-----", "-------", "------", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-7d  %-7s  %-12s  %s\n", i+1, entry.Score, entry.Outcome, entry.Player, dateStr)
	}

	stats, err := store.GetGameStats(gameID)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Printf("Best: %d   Runs: %d   Wins: %d   Losses: %d   Average: %.1f\n",
		stats.HighScore, stats.GamesCount, stats.Wins, stats.Losses, stats.AvgScore)
	if stats.FastestWin > 0 {
		fmt.Printf("Fastest win: %s   Longest run: %s\n",
			stats.FastestWin.Round(100*time.Millisecond), stats.LongestRun.Round(100*time.Millisecond))
	}

	if flagScoresRecent > 0 {
		return printRecent(store, gameID, flagScoresRecent)
	}
	return nil
}

func printRecent(store *storage.Store, gameID string, limit int) error {
	runs, err := store.RecentRuns(gameID, limit)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("Recent runs:")
	for _, r := range runs {
		fmt.Printf("  #%-5d  %-7s  %5d  %8s  seed %d  %s\n",
			r.ID, r.Outcome, r.Score, (time.Duration(r.DurationMs) * time.Millisecond).Round(time.Second),
			r.Seed, r.Player)
	}
	return nil
}

// printAllStats writes one summary line per ruleset with recorded runs.
func printAllStats(w io.Writer, store *storage.Store) error {
	all, err := store.GetAllGamesStats()
	if err != nil {
		return err
	}
	if len(all) == 0 {
		fmt.Fprintln(w, "No runs recorded yet.")
		return nil
	}

	ids := make([]string, 0, len(all))
	for id := range all {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Fprintf(w, "  %-12s  %5s  %5s  %6s  %5s  %s\n", "Ruleset", "Runs", "Wins", "Losses", "Best", "Last played")
	for _, id := range ids {
		st := all[id]
		fmt.Fprintf(w, "  %-12s  %5d  %5d  %6d  %5d  %s\n",
			id, st.GamesCount, st.Wins, st.Losses, st.HighScore, st.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}

// printRun writes the details of a single recorded run.
func printRun(w io.Writer, store *storage.Store, id int64) error {
	r, err := store.RunByID(id)
	if errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("no run with id %d", id)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Run #%d\n", r.ID)
	fmt.Fprintf(w, "  Ruleset:  %s\n", r.GameID)
	fmt.Fprintf(w, "  Player:   %s\n", r.Player)
	fmt.Fprintf(w, "  Outcome:  %s\n", r.Outcome)
	fmt.Fprintf(w, "  Score:    %d\n", r.Score)
	fmt.Fprintf(w, "  Duration: %s\n", (time.Duration(r.DurationMs) * time.Millisecond).Round(100*time.Millisecond))
	fmt.Fprintf(w, "  Seed:     %d\n", r.Seed)
	fmt.Fprintf(w, "  Played:   %s\n", r.CreatedAt.Format("2006-01-02 15:04"))
	return nil
}
