package arena

import (
	"fmt"

	"github.com/Garsondee/Horde-Sense/internal/config"
	"github.com/Garsondee/Horde-Sense/internal/nav"
	"github.com/Garsondee/Horde-Sense/internal/wave"
)

// Enemy is one pursuer. Behaviour differences come from Stats, not type.
type Enemy struct {
	ID        int
	Archetype wave.Archetype
	Stats     config.ArchetypeStats
	Pos       nav.Vec
	Vel       nav.Vec
	Health    float64

	// Waypoint is the next route point; valid while Routed is true.
	Waypoint nav.Vec
	Routed   bool
	RouteLen int

	wallCooldown float64
	dead         bool
}

func newEnemy(id int, a wave.Archetype, stats config.ArchetypeStats, pos nav.Vec) *Enemy {
	return &Enemy{ID: id, Archetype: a, Stats: stats, Pos: pos, Health: stats.Health}
}

// Label returns the log label, e.g. "E12".
func (e *Enemy) Label() string { return fmt.Sprintf("E%d", e.ID) }

// Alive reports whether the enemy still counts toward the wave.
func (e *Enemy) Alive() bool { return !e.dead }

// TakeDamage lowers health and reports whether this hit killed the enemy.
// Hits on a dead enemy are ignored.
func (e *Enemy) TakeDamage(amount float64) bool {
	if e.dead {
		return false
	}
	e.Health -= amount
	if e.Health <= 0 {
		e.Health = 0
		e.dead = true
		return true
	}
	return false
}

// steer moves the enemy for dt seconds. With a route it heads for the first
// waypoint without overshooting it; otherwise it seeks target directly.
func (e *Enemy) steer(route nav.Path, target nav.Vec, dt float64) {
	e.RouteLen = len(route)
	goal := target
	e.Routed = len(route) > 0
	if e.Routed {
		e.Waypoint = route[0]
		goal = route[0]
	}
	delta := goal.Sub(e.Pos)
	dist := delta.Len()
	step := e.Stats.Speed * dt
	if dist == 0 {
		e.Vel = nav.Vec{}
		return
	}
	e.Vel = delta.Scale(e.Stats.Speed / dist)
	if step >= dist {
		e.Pos = goal
		return
	}
	e.Pos = e.Pos.Add(delta.Scale(step / dist))
}

// overlaps reports whether circles around e and p of radii touch.
func (e *Enemy) overlaps(p nav.Vec, r float64) bool {
	return e.Pos.Dist(p) < e.Stats.Radius+r
}
