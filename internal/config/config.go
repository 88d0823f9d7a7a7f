// Package config provides YAML-based arena configuration loading,
// ruleset presets and difficulty presets.
package config

// ArenaConfig contains all tunable parameters of an arena session.
type ArenaConfig struct {
	Field    FieldConfig    `yaml:"field"`
	Player   PlayerConfig   `yaml:"player"`
	Bullets  BulletConfig   `yaml:"bullets"`
	Enemy    EnemyConfig    `yaml:"enemy"`
	Triangle TriangleConfig `yaml:"triangle"`
	Rect     RectConfig     `yaml:"rect"`
	Spawner  SpawnerConfig  `yaml:"spawner"`
	Combat   CombatConfig   `yaml:"combat"`
	Rules    RulesConfig    `yaml:"rules"`
	Colors   ColorsConfig   `yaml:"colors"`
}

// FieldConfig defines the playing field in world units.
type FieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	FPS    int     `yaml:"fps"`
}

// PlayerConfig defines the player avatar.
type PlayerConfig struct {
	StartX         float64 `yaml:"start_x"`
	StartY         float64 `yaml:"start_y"`
	Speed          float64 `yaml:"speed"`
	Size           float64 `yaml:"size"`
	Health         int     `yaml:"health"`
	PushBack       float64 `yaml:"push_back"`        // Distance moved on contact
	ShotCooldownMs int64   `yaml:"shot_cooldown_ms"` // Per direction
}

// BulletConfig defines player and enemy projectiles.
type BulletConfig struct {
	PlayerSpeed float64 `yaml:"player_speed"`
	PlayerSize  float64 `yaml:"player_size"`
	EnemySpeed  float64 `yaml:"enemy_speed"`
	EnemySize   float64 `yaml:"enemy_size"`
}

// EnemyConfig defines the homing line enemy.
type EnemyConfig struct {
	Speed     float64 `yaml:"speed"`
	Size      float64 `yaml:"size"` // Line length
	LineWidth float64 `yaml:"line_width"`
	Health    int     `yaml:"health"`
}

// TriangleConfig defines the oscillating shooter.
type TriangleConfig struct {
	StartX         float64 `yaml:"start_x"`
	StartY         float64 `yaml:"start_y"`
	Speed          float64 `yaml:"speed"`
	Size           float64 `yaml:"size"`
	Health         int     `yaml:"health"`
	ShotCooldownMs int64   `yaml:"shot_cooldown_ms"`
}

// RectConfig defines the charging block.
type RectConfig struct {
	StartX           float64 `yaml:"start_x"`
	StartY           float64 `yaml:"start_y"`
	Speed            float64 `yaml:"speed"` // Cruising speed
	Size             float64 `yaml:"size"`  // Height; width is Size * WidthFactor
	WidthFactor      float64 `yaml:"width_factor"`
	Health           int     `yaml:"health"`
	ChargeSpeed      float64 `yaml:"charge_speed"`
	ChargeCooldownMs int64   `yaml:"charge_cooldown_ms"`
	ChargeDelayMs    int64   `yaml:"charge_delay_ms"`
}

// SpawnerConfig defines the initial population and spawn timers.
type SpawnerConfig struct {
	InitialEnemies     int     `yaml:"initial_enemies"`
	InitialTriangles   int     `yaml:"initial_triangles"`
	InitialRects       int     `yaml:"initial_rects"`
	EnemyIntervalMs    int64   `yaml:"enemy_interval_ms"`    // Duplicates every alive enemy
	TriangleIntervalMs int64   `yaml:"triangle_interval_ms"` // One triangle
	RectIntervalMs     int64   `yaml:"rect_interval_ms"`     // One rect
	SpawnX             float64 `yaml:"spawn_x"`              // Column for spawned triangles and rects
	SpawnMaxY          float64 `yaml:"spawn_max_y"`
}

// CombatConfig defines damage and scoring.
type CombatConfig struct {
	ContactDamage int `yaml:"contact_damage"`
	BulletDamage  int `yaml:"bullet_damage"`
	ScorePerKill  int `yaml:"score_per_kill"`
}

// Idle facing modes.
const (
	IdleFacingRight = "right" // No movement resets facing to right
	IdleFacingKeep  = "keep"  // No movement keeps the last facing
)

// RulesConfig toggles balance fixes over the classic behavior. A session
// only honors it when Name matches the ruleset being played; otherwise that
// ruleset's preset applies.
type RulesConfig struct {
	Name              string `yaml:"name"`
	ContactCooldownMs int64  `yaml:"contact_cooldown_ms"` // 0 = damage every overlapping frame
	MaxEnemies        int    `yaml:"max_enemies"`         // 0 = unlimited duplication
	IdleFacing        string `yaml:"idle_facing"`
}

// ColorsConfig holds hex colors ("#rrggbb") for every drawable.
type ColorsConfig struct {
	Background     string `yaml:"background"`
	Text           string `yaml:"text"`
	Player         string `yaml:"player"`
	PlayerBullet   string `yaml:"player_bullet"`
	Enemy          string `yaml:"enemy"`
	Triangle       string `yaml:"triangle"`
	TriangleBullet string `yaml:"triangle_bullet"`
	Rect           string `yaml:"rect"`
	HealthBar      string `yaml:"health_bar"`
	HealthBarBack  string `yaml:"health_bar_back"`
}
