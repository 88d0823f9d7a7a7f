package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/blockarena/internal/core"
)

const arenaFile = "arena.yaml"

// LoadArena loads the arena configuration.
// Search order: customPath -> ~/.blockarena/configs/arena.yaml -> ./configs/arena.yaml -> embedded default.
// Files are overlaid on the defaults, so partial files are valid.
func LoadArena(customPath string) (ArenaConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultArenaConfig(), fmt.Errorf("config: read %s: %w", customPath, err)
		}
		cfg, err := parseArena(data)
		if err != nil {
			return DefaultArenaConfig(), fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(arenaFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseArena(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", arenaFile)); err == nil {
		if cfg, err := parseArena(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseArena(defaultArenaYAML)
	if err != nil {
		return DefaultArenaConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func parseArena(data []byte) (ArenaConfig, error) {
	cfg := DefaultArenaConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".blockarena", "configs", filename)
}

// Validate rejects configurations the simulation cannot run with.
func (c ArenaConfig) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, v))
		}
	}

	positive("field.width", c.Field.Width)
	positive("field.height", c.Field.Height)
	positive("field.fps", float64(c.Field.FPS))

	positive("player.speed", c.Player.Speed)
	positive("player.size", c.Player.Size)
	positive("player.health", float64(c.Player.Health))
	positive("player.shot_cooldown_ms", float64(c.Player.ShotCooldownMs))

	positive("bullets.player_speed", c.Bullets.PlayerSpeed)
	positive("bullets.player_size", c.Bullets.PlayerSize)
	positive("bullets.enemy_speed", c.Bullets.EnemySpeed)
	positive("bullets.enemy_size", c.Bullets.EnemySize)

	positive("enemy.speed", c.Enemy.Speed)
	positive("enemy.size", c.Enemy.Size)
	positive("enemy.health", float64(c.Enemy.Health))

	positive("triangle.speed", c.Triangle.Speed)
	positive("triangle.size", c.Triangle.Size)
	positive("triangle.health", float64(c.Triangle.Health))
	positive("triangle.shot_cooldown_ms", float64(c.Triangle.ShotCooldownMs))

	positive("rect.speed", c.Rect.Speed)
	positive("rect.size", c.Rect.Size)
	positive("rect.width_factor", c.Rect.WidthFactor)
	positive("rect.health", float64(c.Rect.Health))
	positive("rect.charge_speed", c.Rect.ChargeSpeed)

	positive("spawner.enemy_interval_ms", float64(c.Spawner.EnemyIntervalMs))
	positive("spawner.triangle_interval_ms", float64(c.Spawner.TriangleIntervalMs))
	positive("spawner.rect_interval_ms", float64(c.Spawner.RectIntervalMs))

	if c.Player.Size > c.Field.Width || c.Player.Size > c.Field.Height {
		errs = append(errs, fmt.Errorf("player.size %v does not fit the field", c.Player.Size))
	}
	if c.Spawner.InitialEnemies < 0 || c.Spawner.InitialTriangles < 0 || c.Spawner.InitialRects < 0 {
		errs = append(errs, errors.New("spawner initial counts must not be negative"))
	}
	if c.Rules.ContactCooldownMs < 0 || c.Rules.MaxEnemies < 0 {
		errs = append(errs, errors.New("rules values must not be negative"))
	}
	if _, err := RulesFor(c.Rules.Name); err != nil {
		errs = append(errs, fmt.Errorf("rules.name: %w", err))
	}
	switch c.Rules.IdleFacing {
	case IdleFacingRight, IdleFacingKeep:
	default:
		errs = append(errs, fmt.Errorf("rules.idle_facing must be %q or %q, got %q",
			IdleFacingRight, IdleFacingKeep, c.Rules.IdleFacing))
	}
	if _, err := c.Colors.Palette(); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid arena config: %w", errors.Join(errs...))
	}
	return nil
}

// Palette is the parsed form of ColorsConfig.
type Palette struct {
	Background     core.RGB
	Text           core.RGB
	Player         core.RGB
	PlayerBullet   core.RGB
	Enemy          core.RGB
	Triangle       core.RGB
	TriangleBullet core.RGB
	Rect           core.RGB
	HealthBar      core.RGB
	HealthBarBack  core.RGB
}

// Palette parses every configured color.
func (c ColorsConfig) Palette() (Palette, error) {
	var p Palette
	fields := []struct {
		name string
		hex  string
		dst  *core.RGB
	}{
		{"background", c.Background, &p.Background},
		{"text", c.Text, &p.Text},
		{"player", c.Player, &p.Player},
		{"player_bullet", c.PlayerBullet, &p.PlayerBullet},
		{"enemy", c.Enemy, &p.Enemy},
		{"triangle", c.Triangle, &p.Triangle},
		{"triangle_bullet", c.TriangleBullet, &p.TriangleBullet},
		{"rect", c.Rect, &p.Rect},
		{"health_bar", c.HealthBar, &p.HealthBar},
		{"health_bar_back", c.HealthBarBack, &p.HealthBarBack},
	}
	for _, f := range fields {
		rgb, err := core.ParseHex(f.hex)
		if err != nil {
			return p, fmt.Errorf("colors.%s: %w", f.name, err)
		}
		*f.dst = rgb
	}
	return p, nil
}
