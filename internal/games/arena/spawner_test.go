package arena

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/blockarena/internal/config"
)

func newTestSpawner(rules config.RulesConfig, seed int64) *Spawner {
	cfg := config.DefaultArenaConfig()
	cfg.Rules = rules
	return NewSpawner(cfg, rand.New(rand.NewSource(seed)), 0)
}

func TestSpawnerNothingBeforeInterval(t *testing.T) {
	s := newTestSpawner(config.ClassicRules(), 1)
	assert.True(t, s.Plan(4999, 5).Empty())
}

func TestSpawnerDuplicatesAliveEnemies(t *testing.T) {
	s := newTestSpawner(config.ClassicRules(), 1)
	plan := s.Plan(5000, 1)
	require.Len(t, plan.Enemies, 1)

	p := plan.Enemies[0]
	assert.GreaterOrEqual(t, p.X, 0.0)
	assert.LessOrEqual(t, p.X, 450.0)
	assert.GreaterOrEqual(t, p.Y, 0.0)
	assert.LessOrEqual(t, p.Y, 450.0)

	// Timer restarted at 5000.
	assert.Empty(t, s.Plan(9999, 2).Enemies)
	assert.Len(t, s.Plan(10000, 2).Enemies, 2)
}

func TestSpawnerNoAliveEnemiesNoGrowth(t *testing.T) {
	s := newTestSpawner(config.ClassicRules(), 1)
	assert.Empty(t, s.Plan(5000, 0).Enemies)
}

func TestSpawnerEnemyCap(t *testing.T) {
	rules := config.FairRules()
	rules.MaxEnemies = 4
	s := newTestSpawner(rules, 1)

	assert.Len(t, s.Plan(5000, 3).Enemies, 1)
	assert.Empty(t, s.Plan(10000, 4).Enemies)
	assert.Empty(t, s.Plan(15000, 9).Enemies)
}

func TestSpawnerTrianglesAndRects(t *testing.T) {
	s := newTestSpawner(config.ClassicRules(), 7)

	plan := s.Plan(10000, 0)
	require.Len(t, plan.Triangles, 1)
	assert.Empty(t, plan.Rects)
	assert.GreaterOrEqual(t, plan.Triangles[0], 0.0)
	assert.LessOrEqual(t, plan.Triangles[0], 400.0)

	plan = s.Plan(20000, 0)
	assert.Len(t, plan.Triangles, 1)
	require.Len(t, plan.Rects, 1)
	assert.GreaterOrEqual(t, plan.Rects[0], 0.0)
	assert.LessOrEqual(t, plan.Rects[0], 400.0)
}

func TestSpawnerTriangleRowsReachTopEdge(t *testing.T) {
	s := newTestSpawner(config.ClassicRules(), 3)
	interval := config.DefaultArenaConfig().Spawner.TriangleIntervalMs

	lowest := 400.0
	for i := int64(1); i <= 400; i++ {
		for _, y := range s.Plan(i*interval, 0).Triangles {
			assert.GreaterOrEqual(t, y, 0.0)
			lowest = min(lowest, y)
		}
	}
	// Rows above the triangle size are reachable.
	assert.Less(t, lowest, config.DefaultArenaConfig().Triangle.Size)
}

func TestSpawnerDeterministic(t *testing.T) {
	a := newTestSpawner(config.ClassicRules(), 99)
	b := newTestSpawner(config.ClassicRules(), 99)
	for now := int64(5000); now <= 60000; now += 5000 {
		assert.Equal(t, a.Plan(now, 3), b.Plan(now, 3))
	}
}
