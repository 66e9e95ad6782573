// Package config loads arena tuning from YAML. Missing fields keep their
// defaults; Validate rejects values the simulation cannot run with.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/Garsondee/Horde-Sense/internal/wave"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// SafeZone is the side length, in cells, of the always-open square around the
// map centre.
const SafeZone = 5

// MapConfig describes the tile grid and obstacle generation.
type MapConfig struct {
	TileSize       int `yaml:"tileSize"`
	Cols           int `yaml:"cols"`
	Rows           int `yaml:"rows"`
	ObstacleCount  int `yaml:"obstacleCount"`
	WallDurability int `yaml:"wallDurability"` // hit points of interior walls
}

// WaveConfig is the YAML form of wave.Settings. Shares are whole percent.
type WaveConfig struct {
	Base        int     `yaml:"base"`
	Increment   int     `yaml:"increment"`
	CooldownSec float64 `yaml:"cooldownSec"`
	NormalStart int     `yaml:"normalStart"`
	NormalStep  int     `yaml:"normalStep"`
	NormalFloor int     `yaml:"normalFloor"`
	FastStart   int     `yaml:"fastStart"`
	FastStep    int     `yaml:"fastStep"`
	FastCeil    int     `yaml:"fastCeil"`
	StrongStep  int     `yaml:"strongStep"`
	StrongCeil  int     `yaml:"strongCeil"`
}

// SpawnConfig places the spawn perimeter.
type SpawnConfig struct {
	Interval float64 `yaml:"interval"` // pixels between perimeter points
	Margin   float64 `yaml:"margin"`   // pixels outside the map edge
}

// NavConfig tunes route recomputation. RecalcTicks <= 1 recomputes every tick.
type NavConfig struct {
	RecalcTicks int `yaml:"recalcTicks"`
}

// PlayerConfig holds player movement and survivability.
type PlayerConfig struct {
	Speed        float64 `yaml:"speed"` // pixels per second
	Health       float64 `yaml:"health"`
	Radius       float64 `yaml:"radius"`
	StartAmmo    int     `yaml:"startAmmo"`
	FireCooldown float64 `yaml:"fireCooldownSec"`
}

// CombatConfig covers projectiles and wall breaking.
type CombatConfig struct {
	BulletSpeed       float64 `yaml:"bulletSpeed"`
	BulletLifetime    float64 `yaml:"bulletLifetimeSec"`
	BulletDamage      float64 `yaml:"bulletDamage"`
	BulletRadius      float64 `yaml:"bulletRadius"`
	WallBreakCooldown float64 `yaml:"wallBreakCooldownSec"`
}

// PowerupConfig controls drops and their effects. Drop shares are percent of
// drops and must sum to 100.
type PowerupConfig struct {
	DropChance      float64 `yaml:"dropChance"` // 0..1 per kill
	HealthShare     int     `yaml:"healthShare"`
	AmmoShare       int     `yaml:"ammoShare"`
	SpeedShare      int     `yaml:"speedShare"`
	HealthAmount    float64 `yaml:"healthAmount"`
	AmmoAmount      int     `yaml:"ammoAmount"`
	SpeedMultiplier float64 `yaml:"speedMultiplier"`
	SpeedDuration   float64 `yaml:"speedDurationSec"`
	Radius          float64 `yaml:"radius"`
}

// ArchetypeStats is the per-archetype stat row. Damage is contact damage per
// second of overlap with the player.
type ArchetypeStats struct {
	Speed       float64 `yaml:"speed"`
	Health      float64 `yaml:"health"`
	Damage      float64 `yaml:"damage"`
	Radius      float64 `yaml:"radius"`
	BreaksWalls bool    `yaml:"breaksWalls"`
	WallDamage  int     `yaml:"wallDamage"`
}

// Config is the root document.
type Config struct {
	Map        MapConfig                 `yaml:"map"`
	Waves      WaveConfig                `yaml:"waves"`
	Spawn      SpawnConfig               `yaml:"spawn"`
	Nav        NavConfig                 `yaml:"nav"`
	Player     PlayerConfig              `yaml:"player"`
	Combat     CombatConfig              `yaml:"combat"`
	Powerups   PowerupConfig             `yaml:"powerups"`
	Archetypes map[string]ArchetypeStats `yaml:"archetypes"`
}

// Default returns the stock tuning.
func Default() *Config {
	return &Config{
		Map: MapConfig{
			TileSize:       32,
			Cols:           32,
			Rows:           24,
			ObstacleCount:  20,
			WallDurability: 100,
		},
		Waves: WaveConfig{
			Base:        10,
			Increment:   5,
			CooldownSec: 5,
			NormalStart: 90,
			NormalStep:  5,
			NormalFloor: 40,
			FastStart:   10,
			FastStep:    3,
			FastCeil:    40,
			StrongStep:  2,
			StrongCeil:  20,
		},
		Spawn: SpawnConfig{Interval: 50, Margin: 50},
		Nav:   NavConfig{RecalcTicks: 1},
		Player: PlayerConfig{
			Speed:        200,
			Health:       100,
			Radius:       14,
			StartAmmo:    50,
			FireCooldown: 0.15,
		},
		Combat: CombatConfig{
			BulletSpeed:       600,
			BulletLifetime:    1,
			BulletDamage:      25,
			BulletRadius:      3,
			WallBreakCooldown: 0.5,
		},
		Powerups: PowerupConfig{
			DropChance:      0.2,
			HealthShare:     40,
			AmmoShare:       40,
			SpeedShare:      20,
			HealthAmount:    25,
			AmmoAmount:      20,
			SpeedMultiplier: 1.5,
			SpeedDuration:   5,
			Radius:          8,
		},
		Archetypes: defaultArchetypes(),
	}
}

func defaultArchetypes() map[string]ArchetypeStats {
	return map[string]ArchetypeStats{
		wave.Normal.String(): {Speed: 80, Health: 50, Damage: 10, Radius: 14},
		wave.Fast.String():   {Speed: 150, Health: 25, Damage: 5, Radius: 10},
		wave.Strong.String(): {Speed: 50, Health: 150, Damage: 20, Radius: 18, BreaksWalls: true, WallDamage: 25},
	}
}

// Load reads path, overlays it on Default and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML over the defaults and validates it.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	applyDefaults(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyDefaults fills archetypes a partial archetypes map left out.
func applyDefaults(cfg *Config) {
	if cfg.Archetypes == nil {
		cfg.Archetypes = map[string]ArchetypeStats{}
	}
	for name, stats := range defaultArchetypes() {
		if _, ok := cfg.Archetypes[name]; !ok {
			cfg.Archetypes[name] = stats
		}
	}
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...))
}

// Validate reports the first setting the simulation cannot honour.
func (c *Config) Validate() error {
	m := c.Map
	if m.TileSize <= 0 {
		return invalid("map.tileSize must be positive, got %d", m.TileSize)
	}
	// Border ring plus the safe zone must fit.
	if m.Cols < SafeZone+2 || m.Rows < SafeZone+2 {
		return invalid("map %dx%d is smaller than the %dx%d safe zone plus border", m.Cols, m.Rows, SafeZone, SafeZone)
	}
	if m.ObstacleCount < 0 {
		return invalid("map.obstacleCount cannot be negative, got %d", m.ObstacleCount)
	}
	if m.WallDurability <= 0 {
		return invalid("map.wallDurability must be positive, got %d", m.WallDurability)
	}

	w := c.Waves
	if w.Base < 0 || w.Increment < 0 {
		return invalid("waves.base and waves.increment cannot be negative")
	}
	if w.CooldownSec < 0 {
		return invalid("waves.cooldownSec cannot be negative, got %v", w.CooldownSec)
	}
	for name, v := range map[string]int{
		"normalStart": w.NormalStart, "normalFloor": w.NormalFloor,
		"fastStart": w.FastStart, "fastCeil": w.FastCeil, "strongCeil": w.StrongCeil,
	} {
		if v < 0 || v > 100 {
			return invalid("waves.%s must be within 0..100, got %d", name, v)
		}
	}
	if w.NormalFloor+w.FastCeil > 100 {
		return invalid("waves.normalFloor + waves.fastCeil exceeds 100 (%d + %d)", w.NormalFloor, w.FastCeil)
	}

	if c.Spawn.Interval <= 0 {
		return invalid("spawn.interval must be positive, got %v", c.Spawn.Interval)
	}
	if c.Spawn.Margin < 0 {
		return invalid("spawn.margin cannot be negative, got %v", c.Spawn.Margin)
	}

	p := c.Player
	if p.Speed <= 0 || p.Health <= 0 || p.Radius <= 0 {
		return invalid("player speed, health and radius must be positive")
	}
	if p.StartAmmo < 0 || p.FireCooldown < 0 {
		return invalid("player.startAmmo and player.fireCooldownSec cannot be negative")
	}

	if c.Combat.BulletSpeed <= 0 || c.Combat.BulletLifetime <= 0 {
		return invalid("combat.bulletSpeed and combat.bulletLifetimeSec must be positive")
	}

	pu := c.Powerups
	if pu.DropChance < 0 || pu.DropChance > 1 {
		return invalid("powerups.dropChance must be within 0..1, got %v", pu.DropChance)
	}
	if pu.HealthShare < 0 || pu.AmmoShare < 0 || pu.SpeedShare < 0 || pu.HealthShare+pu.AmmoShare+pu.SpeedShare != 100 {
		return invalid("powerup shares must be non-negative and sum to 100, got %d/%d/%d",
			pu.HealthShare, pu.AmmoShare, pu.SpeedShare)
	}

	for _, a := range wave.Archetypes {
		s := c.Archetypes[a.String()]
		if s.Speed <= 0 || s.Health <= 0 || s.Radius <= 0 {
			return invalid("archetype %s: speed, health and radius must be positive", a)
		}
		if s.Damage < 0 || s.WallDamage < 0 {
			return invalid("archetype %s: damage cannot be negative", a)
		}
	}
	return nil
}

// WaveSettings converts the wave section for the controller.
func (c *Config) WaveSettings() wave.Settings {
	w := c.Waves
	return wave.Settings{
		Base:        w.Base,
		Increment:   w.Increment,
		Cooldown:    Seconds(w.CooldownSec),
		NormalStart: w.NormalStart,
		NormalStep:  w.NormalStep,
		NormalFloor: w.NormalFloor,
		FastStart:   w.FastStart,
		FastStep:    w.FastStep,
		FastCeil:    w.FastCeil,
		StrongStep:  w.StrongStep,
		StrongCeil:  w.StrongCeil,
	}
}

// Stats returns the stat row for archetype a.
func (c *Config) Stats(a wave.Archetype) ArchetypeStats {
	return c.Archetypes[a.String()]
}

// MapBounds returns the map size in pixels.
func (c *Config) MapBounds() (w, h float64) {
	return float64(c.Map.Cols * c.Map.TileSize), float64(c.Map.Rows * c.Map.TileSize)
}

// Seconds converts a fractional second setting to a duration.
func Seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
