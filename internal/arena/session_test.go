package arena

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Garsondee/Horde-Sense/internal/nav"
	"github.com/Garsondee/Horde-Sense/internal/wave"
)

func killAll(s *Session) {
	for _, e := range s.Enemies {
		if e.TakeDamage(e.Health) {
			s.kill(e)
		}
	}
}

func TestNewSession_GridMatchesWorldAndFirstWaveSpawns(t *testing.T) {
	s := NewSession(WithSeed(7))

	assert.Equal(t, s.World.WallCount(), s.Grid.BlockedCount())
	assert.False(t, s.Grid.IsBlocked(s.Grid.ToCell(s.Player.Pos)), "player starts in the safe zone")

	assert.Equal(t, 1, s.Waves().Wave())
	require.Len(t, s.Enemies, 10)
	counts := map[wave.Archetype]int{}
	for _, e := range s.Enemies {
		counts[e.Archetype]++
		assert.True(t, s.Perimeter().Contains(e.Pos), "enemy %d spawned off the perimeter", e.ID)
	}
	comp := wave.CompositionFor(s.Config().WaveSettings(), 1)
	assert.Equal(t, comp.Normal, counts[wave.Normal])
	assert.Equal(t, comp.Fast, counts[wave.Fast])
	assert.Equal(t, comp.Strong, counts[wave.Strong])
	assert.True(t, s.Log.HasEntry(CatWave, "started", "wave 1: 10 enemies"))
}

func TestSession_WaveSizesFollowSchedule(t *testing.T) {
	s := NewSession(WithOpenMap())
	total := 0
	for w := 1; w <= 4; w++ {
		require.Equal(t, w, s.Waves().Wave())
		want := wave.SizeFor(s.Config().WaveSettings(), w)
		require.Len(t, s.Enemies, want, "wave %d", w)
		total += want

		killAll(s)
		at := s.RunUntil(func(s *Session) bool { return s.Waves().Wave() == w+1 }, 400)
		require.NotEqual(t, -1, at, "wave %d never advanced", w+1)
	}
	assert.Equal(t, 5, s.Waves().Wave())
	assert.Equal(t, total+wave.SizeFor(s.Config().WaveSettings(), 5), s.Report().Spawned)
	assert.Equal(t, 4, s.Log.CountCategory(CatWave, "completed"))
	assert.Equal(t, total, s.Report().TotalKills())
}

func TestSession_CooldownBeforeNextWave(t *testing.T) {
	s := NewSession(WithOpenMap())
	killAll(s)

	// Completion is seen on tick 1; 5s at 60 ticks/s puts wave 2 near tick 301.
	at := s.RunUntil(func(s *Session) bool { return s.Waves().Wave() == 2 }, 400)
	assert.GreaterOrEqual(t, at, 300)
	assert.LessOrEqual(t, at, 303)
	assert.Equal(t, 1, s.Log.FirstTick(CatWave, "completed", ""))
}

func TestSession_EnemiesNeverStandInBlockedCellsWhileRouting(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		s := NewSession(WithSeed(seed), WithAutoFire(true))
		violations := 0
		routed := 0
		s.RunUntil(func(s *Session) bool {
			for _, e := range s.Enemies {
				if !e.Alive() || !e.Routed {
					continue
				}
				routed++
				if s.Grid.IsBlocked(s.Grid.ToCell(e.Pos)) {
					violations++
				}
			}
			return false
		}, 1200)
		assert.Zero(t, violations, "seed %d", seed)
		assert.Positive(t, routed, "seed %d: no enemy ever followed a route", seed)
	}
}

func TestSession_BreakerDestroysWallAndGridRebuilds(t *testing.T) {
	// Enclose the player's cell (16,12) in a ring two cells out.
	opts := []Option{WithOpenMap(), WithoutWaves()}
	for d := -2; d <= 2; d++ {
		opts = append(opts,
			WithWall(16+d, 10), WithWall(16+d, 14),
			WithWall(14, 12+d), WithWall(18, 12+d))
	}
	opts = append(opts, WithEnemy(wave.Strong, 528, 176)) // centre of (16,5)
	s := NewSession(opts...)

	target := nav.Cell{Col: 16, Row: 10}
	require.True(t, s.Grid.IsBlocked(target))
	version := s.Grid.Version()

	at := s.RunUntil(func(s *Session) bool {
		return s.Log.CountCategory(CatWall, "destroyed") > 0
	}, 900)
	require.NotEqual(t, -1, at, "wall never destroyed:\n%s", s.Log.Format())

	last, _ := s.Log.LastOf(CatWall, "destroyed")
	assert.Contains(t, last.Value, "(16,10)")
	assert.False(t, s.World.IsWall(target))
	assert.False(t, s.Grid.IsBlocked(target), "grid not rebuilt")
	assert.Greater(t, s.Grid.Version(), version)
	assert.True(t, s.Log.HasEntry(CatNav, "rebuild", ""))
	assert.Equal(t, 4, s.Log.CountCategory(CatWall, "damaged"))
	assert.Equal(t, 1, s.Report().WallsDestroyed)

	s.RunTicks(2)
	require.Len(t, s.Enemies, 1)
	assert.True(t, s.Enemies[0].Routed, "breaker should path through the gap")
}

func TestSession_AutoFireKillsEnemy(t *testing.T) {
	s := NewSession(WithOpenMap(), WithoutWaves(), WithAutoFire(true),
		WithEnemy(wave.Normal, 628, 400))

	at := s.RunUntil(func(s *Session) bool { return s.AliveEnemies() == 0 }, 60)
	require.NotEqual(t, -1, at)

	r := s.Report()
	assert.Equal(t, 1, r.Kills[wave.Normal.String()])
	assert.Equal(t, 2, r.Shots, "50 health takes two 25 damage rounds")
	assert.Equal(t, 48, s.Player.Ammo)
	assert.Equal(t, 100.0, s.Player.Health)
	assert.True(t, s.Log.HasEntry(CatEnemy, "killed", "normal"))
}

func TestSession_ContactDamageEndsRun(t *testing.T) {
	s := NewSession(WithOpenMap(), WithoutWaves(), WithEnemy(wave.Strong, 528, 400))

	// 20 damage per second of overlap against 100 health.
	s.RunTicks(60)
	assert.InDelta(t, 80.0, s.Player.Health, 0.5)

	s.RunTicks(10000)
	assert.True(t, s.Over())
	assert.Zero(t, s.Player.Health)
	assert.True(t, s.Log.HasEntry(CatPlayer, "died", ""))
	assert.False(t, s.Report().Survived)

	tick := s.Tick()
	s.Step(TickDuration)
	assert.Equal(t, tick, s.Tick(), "a finished session does not advance")
}

func TestSession_PowerupPickup(t *testing.T) {
	s := NewSession(WithOpenMap(), WithoutWaves())
	cfg := s.Config().Powerups
	s.Player.TakeDamage(50)
	s.Powerups = append(s.Powerups,
		&Powerup{Kind: PowerupHealth, Pos: s.Player.Pos},
		&Powerup{Kind: PowerupAmmo, Pos: s.Player.Pos},
		&Powerup{Kind: PowerupSpeed, Pos: s.Player.Pos},
		&Powerup{Kind: PowerupAmmo, Pos: nav.Vec{X: 100, Y: 100}},
	)

	s.Step(TickDuration)

	assert.Equal(t, 50+cfg.HealthAmount, s.Player.Health)
	assert.Equal(t, 50+cfg.AmmoAmount, s.Player.Ammo)
	assert.True(t, s.Player.Boosted())
	assert.Len(t, s.Powerups, 1, "the distant pickup stays")
	assert.Equal(t, 3, s.Report().PowerupsCollected)
}

func TestSession_InputMovesPlayer(t *testing.T) {
	s := NewSession(WithOpenMap(), WithoutWaves())
	start := s.Player.Pos
	s.SetInput(Input{MoveX: 1})
	s.RunTicks(30)
	assert.InDelta(t, start.X+100, s.Player.Pos.X, 0.01)
	assert.Equal(t, start.Y, s.Player.Pos.Y)
}

func TestSession_DeterministicBySeed(t *testing.T) {
	run := func(seed int64) (Snapshot, Report) {
		s := NewSession(WithSeed(seed), WithAutoFire(true))
		s.RunTicks(900)
		return s.Snapshot(), s.Report()
	}
	snapA, repA := run(11)
	snapB, repB := run(11)
	assert.Equal(t, snapA, snapB)
	assert.Equal(t, repA, repB)
}

func TestSession_RouteCacheServesHits(t *testing.T) {
	s := NewSession(WithSeed(3), WithRouteCache(5))
	s.RunTicks(300)
	r := s.Report()
	assert.True(t, s.Routes().Enabled())
	assert.Positive(t, r.CacheHits)
	assert.Positive(t, r.Searches)
}

func TestSession_DefaultRecomputesEveryTick(t *testing.T) {
	s := NewSession(WithOpenMap(), WithoutWaves(), WithEnemy(wave.Normal, 200, 200))
	s.RunTicks(10)
	assert.False(t, s.Routes().Enabled())
	assert.Equal(t, 10, s.Report().Searches)
	assert.Zero(t, s.Report().CacheHits)
	assert.Positive(t, s.Report().AvgExpanded)
}

func TestReport_Format(t *testing.T) {
	r := Report{
		Seed: 4, Ticks: 600, Wave: 3, Survived: false, Spawned: 45,
		Kills:    map[string]int{"normal": 20, "fast": 5, "strong": 2},
		Searches: 100, AvgExpanded: 12.25,
	}
	out := r.Format()
	assert.Contains(t, out, "seed=4 ticks=600 wave=3 outcome=died")
	assert.Contains(t, out, "spawned=45 killed=27 normal=20 fast=5 strong=2")
	assert.Contains(t, out, "avg_expanded=12.2")
}
