package arena

// Snapshot contains the observable session state for logs and headless runs.
// Uses primitive types only for stable serialization.
type Snapshot struct {
	Ruleset   string         `yaml:"ruleset"`
	Seed      int64          `yaml:"seed"`
	Tick      uint64         `yaml:"tick"`
	ElapsedMs int64          `yaml:"elapsed_ms"`
	Score     int            `yaml:"score"`
	Outcome   string         `yaml:"outcome"`
	Paused    bool           `yaml:"paused"`
	Player    PlayerSnapshot `yaml:"player"`

	Enemies       int `yaml:"enemies"`
	Triangles     int `yaml:"triangles"`
	Rects         int `yaml:"rects"`
	EnemyBullets  int `yaml:"enemy_bullets"`
	PlayerBullets int `yaml:"player_bullets"`

	RectStates map[string]int `yaml:"rect_states,omitempty"`
}

// PlayerSnapshot is the avatar part of a Snapshot.
type PlayerSnapshot struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Health int     `yaml:"health"`
	Facing string  `yaml:"facing"`
}

// Snapshot returns the current session state.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Ruleset:   g.ID(),
		Seed:      g.runtime.Seed,
		Tick:      g.tick,
		ElapsedMs: g.elapsed,
		Score:     g.score,
		Outcome:   g.outcome.String(),
		Paused:    g.paused,
		Player: PlayerSnapshot{
			X:      g.player.X,
			Y:      g.player.Y,
			Health: g.player.Health,
			Facing: g.player.LastDir.String(),
		},
		Enemies:       g.enemies.AliveCount(),
		Triangles:     g.triangles.AliveCount(),
		Rects:         g.rects.AliveCount(),
		PlayerBullets: len(g.bullets),
	}

	g.triangles.Each(func(_ EntityID, t *Triangle) bool {
		s.EnemyBullets += len(t.Bullets)
		return true
	})
	g.rects.Each(func(_ EntityID, r *Rect) bool {
		if s.RectStates == nil {
			s.RectStates = make(map[string]int)
		}
		s.RectStates[r.State.String()]++
		return true
	})
	return s
}
