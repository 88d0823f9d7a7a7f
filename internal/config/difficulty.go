package config

import (
	"fmt"
	"strings"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy    DifficultyPreset = "easy"
	DifficultyNormal  DifficultyPreset = "normal"
	DifficultyHard    DifficultyPreset = "hard"
	DifficultyClassic DifficultyPreset = "classic" // Leave the loaded config untouched
)

// Presets lists the accepted preset names.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyClassic}
}

// ParsePreset converts a flag value to a preset. Empty means classic.
func ParsePreset(s string) (DifficultyPreset, error) {
	if s == "" {
		return DifficultyClassic, nil
	}
	p := DifficultyPreset(strings.ToLower(s))
	for _, known := range Presets() {
		if p == known {
			return p, nil
		}
	}
	return "", fmt.Errorf("config: unknown difficulty %q", s)
}

// presetLevel maps a preset to a level in [0, 1] where 0.5 is the loaded config.
func presetLevel(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 1.0
	default:
		return 0.5
	}
}

// ApplyArenaPreset scales health, cooldowns and spawn intervals for a preset.
// Lower levels give the player more health and slow the spawners down.
func ApplyArenaPreset(cfg *ArenaConfig, preset DifficultyPreset) {
	if preset == DifficultyClassic || preset == "" {
		return
	}

	level := presetLevel(preset)
	// 1.5x at level 0, 1x at 0.5, 0.5x at 1.
	slow := 1.5 - level

	cfg.Spawner.EnemyIntervalMs = scaleMillis(cfg.Spawner.EnemyIntervalMs, slow)
	cfg.Spawner.TriangleIntervalMs = scaleMillis(cfg.Spawner.TriangleIntervalMs, slow)
	cfg.Spawner.RectIntervalMs = scaleMillis(cfg.Spawner.RectIntervalMs, slow)
	cfg.Triangle.ShotCooldownMs = scaleMillis(cfg.Triangle.ShotCooldownMs, slow)
	cfg.Rect.ChargeDelayMs = scaleMillis(cfg.Rect.ChargeDelayMs, slow)

	switch preset {
	case DifficultyEasy:
		cfg.Player.Health += 2
	case DifficultyHard:
		if cfg.Player.Health > 1 {
			cfg.Player.Health--
		}
	}
}

func scaleMillis(ms int64, k float64) int64 {
	v := int64(float64(ms) * k)
	if v < 1 {
		v = 1
	}
	return v
}

// Ruleset names registered by the arena game.
const (
	RulesetClassic = "classic"
	RulesetFair    = "fair"
)

// RulesFor returns the rules preset with the given name.
func RulesFor(name string) (RulesConfig, error) {
	switch name {
	case RulesetClassic:
		return ClassicRules(), nil
	case RulesetFair:
		return FairRules(), nil
	default:
		return RulesConfig{}, fmt.Errorf("config: unknown ruleset %q", name)
	}
}
