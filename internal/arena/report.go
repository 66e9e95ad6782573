package arena

import (
	"fmt"
	"strings"

	"github.com/Garsondee/Horde-Sense/internal/wave"
)

// Report summarises a session for the CLI, the clipboard and the record store.
type Report struct {
	Seed              int64
	Ticks             int
	Wave              int
	Survived          bool
	Spawned           int
	Kills             map[string]int // by archetype name
	WallsDestroyed    int
	Shots             int
	PowerupsCollected int
	Searches          int
	CacheHits         int
	AvgExpanded       float64
}

// TotalKills sums kills over archetypes.
func (r Report) TotalKills() int {
	n := 0
	for _, k := range r.Kills {
		n += k
	}
	return n
}

// Report builds the run summary at the current tick.
func (s *Session) Report() Report {
	c := s.counters
	r := Report{
		Seed:              s.seed,
		Ticks:             s.tick,
		Wave:              c.waveReached,
		Survived:          !s.over,
		Spawned:           c.spawned,
		Kills:             make(map[string]int, len(wave.Archetypes)),
		WallsDestroyed:    c.wallsDestroyed,
		Shots:             c.shots,
		PowerupsCollected: c.powerups,
		Searches:          c.searches,
		CacheHits:         s.routes.Hits(),
	}
	for _, a := range wave.Archetypes {
		r.Kills[a.String()] = c.kills[a]
	}
	if c.searches > 0 {
		r.AvgExpanded = float64(c.expanded) / float64(c.searches)
	}
	return r
}

// Format renders the report as key=value lines.
func (r Report) Format() string {
	var sb strings.Builder
	outcome := "survived"
	if !r.Survived {
		outcome = "died"
	}
	fmt.Fprintf(&sb, "seed=%d ticks=%d wave=%d outcome=%s\n", r.Seed, r.Ticks, r.Wave, outcome)
	fmt.Fprintf(&sb, "enemies: spawned=%d killed=%d", r.Spawned, r.TotalKills())
	for _, a := range wave.Archetypes {
		fmt.Fprintf(&sb, " %s=%d", a, r.Kills[a.String()])
	}
	sb.WriteByte('\n')
	fmt.Fprintf(&sb, "combat: shots=%d walls_destroyed=%d powerups=%d\n", r.Shots, r.WallsDestroyed, r.PowerupsCollected)
	fmt.Fprintf(&sb, "nav: searches=%d cache_hits=%d avg_expanded=%.1f\n", r.Searches, r.CacheHits, r.AvgExpanded)
	return sb.String()
}

// Snapshot is a lightweight copy of session state at a tick.
type Snapshot struct {
	Tick    int
	Wave    int
	Phase   wave.Phase
	Player  PlayerSnapshot
	Enemies []EnemySnapshot
}

// PlayerSnapshot copies player state.
type PlayerSnapshot struct {
	X, Y   float64
	Health float64
	Ammo   int
}

// EnemySnapshot copies one enemy's state.
type EnemySnapshot struct {
	ID        int
	Archetype wave.Archetype
	X, Y      float64
	Health    float64
	Routed    bool
}

// Snapshot returns the current state of the player and live enemies.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:  s.tick,
		Wave:  s.waves.Wave(),
		Phase: s.waves.Phase(),
		Player: PlayerSnapshot{
			X: s.Player.Pos.X, Y: s.Player.Pos.Y, Health: s.Player.Health, Ammo: s.Player.Ammo,
		},
	}
	for _, e := range s.Enemies {
		if !e.Alive() {
			continue
		}
		snap.Enemies = append(snap.Enemies, EnemySnapshot{
			ID: e.ID, Archetype: e.Archetype, X: e.Pos.X, Y: e.Pos.Y, Health: e.Health, Routed: e.Routed,
		})
	}
	return snap
}
