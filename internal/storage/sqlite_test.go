package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

// saveScore records a run carrying only a score.
func saveScore(t *testing.T, store *Store, gameID string, score int) {
	t.Helper()
	_, err := store.SaveRun(Run{GameID: gameID, Score: score})
	require.NoError(t, err)
}

func TestStoreOpenCreatesNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	require.NoError(t, err)
	defer store.Close()

	_, err = os.Stat(dbPath)
	assert.NoError(t, err, "database file was not created")
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 50, 200} {
		saveScore(t, store, "arena", score)
	}
	saveScore(t, store, "arena_fair", 500)

	scores, err := store.TopScores("arena", 10)
	require.NoError(t, err)
	require.Len(t, scores, 3)
	assert.Equal(t, 200, scores[0].Score)
	assert.Equal(t, 100, scores[1].Score)
	assert.Equal(t, 50, scores[2].Score)
	assert.Equal(t, "none", scores[0].Outcome)

	fair, err := store.TopScores("arena_fair", 10)
	require.NoError(t, err)
	assert.Len(t, fair, 1)
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)
	for i := range 5 {
		saveScore(t, store, "arena", (i+1)*10)
	}

	scores, err := store.TopScores("arena", 3)
	require.NoError(t, err)
	require.Len(t, scores, 3)
	assert.Equal(t, []int{50, 40, 30}, []int{scores[0].Score, scores[1].Score, scores[2].Score})
}

func TestStoreSaveRunRoundTrip(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveRun(Run{
		GameID:     "arena",
		Player:     "alice",
		Outcome:    "win",
		Score:      7,
		DurationMs: 42000,
		Seed:       1234,
	})
	require.NoError(t, err)

	run, err := store.RunByID(id)
	require.NoError(t, err)
	assert.Equal(t, "alice", run.Player)
	assert.Equal(t, "win", run.Outcome)
	assert.Equal(t, 7, run.Score)
	assert.Equal(t, int64(42000), run.DurationMs)
	assert.Equal(t, int64(1234), run.Seed)

	_, err = store.RunByID(id + 1)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStoreRecentRuns(t *testing.T) {
	store := openTestStore(t)
	for i := range 4 {
		_, err := store.SaveRun(Run{GameID: "arena", Score: i})
		require.NoError(t, err)
	}
	_, err := store.SaveRun(Run{GameID: "arena_fair", Score: 99})
	require.NoError(t, err)

	runs, err := store.RecentRuns("arena", 2)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, 3, runs[0].Score, "newest first")
	assert.Equal(t, 2, runs[1].Score)

	all, err := store.RecentRuns("", 10)
	require.NoError(t, err)
	assert.Len(t, all, 5)
	assert.Equal(t, "arena_fair", all[0].GameID)
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("arena")
	require.NoError(t, err)
	assert.Equal(t, 0, high)

	for _, s := range []int{100, 300, 200} {
		saveScore(t, store, "arena", s)
	}
	high, err = store.HighScore("arena")
	require.NoError(t, err)
	assert.Equal(t, 300, high)
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)
	saveScore(t, store, "arena", 100)
	saveScore(t, store, "arena", 200)
	saveScore(t, store, "arena_fair", 300)

	require.NoError(t, store.ClearScores("arena"))

	scores, err := store.TopScores("arena", 10)
	require.NoError(t, err)
	assert.Empty(t, scores)

	fair, err := store.TopScores("arena_fair", 10)
	require.NoError(t, err)
	assert.Len(t, fair, 1, "other games are not affected")
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetGameStats("arena")
	require.NoError(t, err)
	assert.Equal(t, 0, empty.GamesCount)
	assert.Zero(t, empty.FastestWin)

	runs := []Run{
		{GameID: "arena", Outcome: "win", Score: 10, DurationMs: 60000},
		{GameID: "arena", Outcome: "win", Score: 6, DurationMs: 30000},
		{GameID: "arena", Outcome: "loss", Score: 2, DurationMs: 90000},
		{GameID: "arena", Outcome: "quit", Score: 0, DurationMs: 1000},
	}
	for _, r := range runs {
		_, err := store.SaveRun(r)
		require.NoError(t, err)
	}

	stats, err := store.GetGameStats("arena")
	require.NoError(t, err)
	assert.Equal(t, 4, stats.GamesCount)
	assert.Equal(t, 2, stats.Wins)
	assert.Equal(t, 1, stats.Losses)
	assert.Equal(t, 10, stats.HighScore)
	assert.InDelta(t, 4.5, stats.AvgScore, 1e-9)
	assert.Equal(t, int64(18), stats.TotalScore)
	assert.Equal(t, 30*time.Second, stats.FastestWin)
	assert.Equal(t, 90*time.Second, stats.LongestRun)

	all, err := store.GetAllGamesStats()
	require.NoError(t, err)
	require.Contains(t, all, "arena")
	assert.Equal(t, 4, all["arena"].GamesCount)
}
