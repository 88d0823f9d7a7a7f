package config

import (
	_ "embed"
)

//go:embed defaults/arena.yaml
var defaultArenaYAML []byte

// DefaultArenaConfig returns the classic arena configuration.
func DefaultArenaConfig() ArenaConfig {
	return ArenaConfig{
		Field: FieldConfig{
			Width:  500,
			Height: 500,
			FPS:    60,
		},
		Player: PlayerConfig{
			StartX:         250,
			StartY:         250,
			Speed:          2,
			Size:           25,
			Health:         3,
			PushBack:       50,
			ShotCooldownMs: 500,
		},
		Bullets: BulletConfig{
			PlayerSpeed: 5,
			PlayerSize:  5,
			EnemySpeed:  3,
			EnemySize:   5,
		},
		Enemy: EnemyConfig{
			Speed:     1,
			Size:      50,
			LineWidth: 5,
			Health:    3,
		},
		Triangle: TriangleConfig{
			StartX:         20,
			StartY:         200,
			Speed:          2,
			Size:           20,
			Health:         3,
			ShotCooldownMs: 1000,
		},
		Rect: RectConfig{
			StartX:           20,
			StartY:           200,
			Speed:            5,
			Size:             20,
			WidthFactor:      5,
			Health:           5,
			ChargeSpeed:      7,
			ChargeCooldownMs: 5000,
			ChargeDelayMs:    2000,
		},
		Spawner: SpawnerConfig{
			InitialEnemies:     1,
			InitialTriangles:   1,
			InitialRects:       1,
			EnemyIntervalMs:    5000,
			TriangleIntervalMs: 10000,
			RectIntervalMs:     20000,
			SpawnX:             20,
			SpawnMaxY:          400,
		},
		Combat: CombatConfig{
			ContactDamage: 1,
			BulletDamage:  1,
			ScorePerKill:  1,
		},
		Rules: ClassicRules(),
		Colors: ColorsConfig{
			Background:     "#ffffff",
			Text:           "#000000",
			Player:         "#000000",
			PlayerBullet:   "#ff0000",
			Enemy:          "#000000",
			Triangle:       "#0000ff",
			TriangleBullet: "#00ff00",
			Rect:           "#00ff00",
			HealthBar:      "#00ff00",
			HealthBarBack:  "#ff0000",
		},
	}
}

// ClassicRules keeps the first release behavior, quirks included.
func ClassicRules() RulesConfig {
	return RulesConfig{
		Name:              "classic",
		ContactCooldownMs: 0,
		MaxEnemies:        0,
		IdleFacing:        IdleFacingRight,
	}
}

// FairRules enables the balance fixes: a short invulnerability window after
// contact, a cap on enemy duplication and stable idle facing.
func FairRules() RulesConfig {
	return RulesConfig{
		Name:              "fair",
		ContactCooldownMs: 500,
		MaxEnemies:        64,
		IdleFacing:        IdleFacingKeep,
	}
}
