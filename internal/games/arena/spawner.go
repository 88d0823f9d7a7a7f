package arena

import (
	"math/rand"

	"github.com/vovakirdan/blockarena/internal/config"
	"github.com/vovakirdan/blockarena/internal/core"
)

// SpawnPlan lists the entities due this frame.
type SpawnPlan struct {
	Enemies   []core.Vec2 // positions
	Triangles []float64   // y coordinates, x is the spawn column
	Rects     []float64   // y coordinates, x is the spawn column
}

// Empty reports whether nothing is due.
func (p SpawnPlan) Empty() bool {
	return len(p.Enemies) == 0 && len(p.Triangles) == 0 && len(p.Rects) == 0
}

// Spawner decides when and where new hostiles appear. Each kind has its own
// timer measured from the last time it fired.
type Spawner struct {
	cfg        config.SpawnerConfig
	rng        *rand.Rand
	maxEnemies int

	// Ranges for random positions.
	enemyMaxX, enemyMaxY float64

	lastEnemy    int64
	lastTriangle int64
	lastRect     int64
}

// NewSpawner creates a spawner whose timers start at now.
func NewSpawner(cfg config.ArenaConfig, rng *rand.Rand, now int64) *Spawner {
	return &Spawner{
		cfg:          cfg.Spawner,
		rng:          rng,
		maxEnemies:   cfg.Rules.MaxEnemies,
		enemyMaxX:    cfg.Field.Width - cfg.Enemy.Size,
		enemyMaxY:    cfg.Field.Height - cfg.Enemy.Size,
		lastEnemy:    now,
		lastTriangle: now,
		lastRect:     now,
	}
}

// Plan returns what should spawn at now given the number of alive enemies,
// and restarts the timers that fired.
func (s *Spawner) Plan(now int64, aliveEnemies int) SpawnPlan {
	var plan SpawnPlan

	if now-s.lastEnemy >= s.cfg.EnemyIntervalMs {
		n := aliveEnemies
		if s.maxEnemies > 0 && aliveEnemies+n > s.maxEnemies {
			n = max(s.maxEnemies-aliveEnemies, 0)
		}
		for range n {
			plan.Enemies = append(plan.Enemies, core.Vec2{
				X: s.randRange(0, s.enemyMaxX),
				Y: s.randRange(0, s.enemyMaxY),
			})
		}
		s.lastEnemy = now
	}

	if now-s.lastTriangle >= s.cfg.TriangleIntervalMs {
		plan.Triangles = append(plan.Triangles, s.randRange(0, s.cfg.SpawnMaxY))
		s.lastTriangle = now
	}

	if now-s.lastRect >= s.cfg.RectIntervalMs {
		plan.Rects = append(plan.Rects, s.randRange(0, s.cfg.SpawnMaxY))
		s.lastRect = now
	}

	return plan
}

// randRange returns a whole number in [lo, hi]; hi below lo yields lo.
func (s *Spawner) randRange(lo, hi float64) float64 {
	span := int(hi) - int(lo)
	if span <= 0 {
		return lo
	}
	return float64(int(lo) + s.rng.Intn(span+1))
}
