// Package arena runs one survival session: map, player, enemies, projectiles
// and power-ups around the nav and wave cores. It has no rendering dependency
// and is driven by Step, from the ebiten front-end or a headless loop.
package arena

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/Garsondee/Horde-Sense/internal/config"
	"github.com/Garsondee/Horde-Sense/internal/event"
	"github.com/Garsondee/Horde-Sense/internal/nav"
	"github.com/Garsondee/Horde-Sense/internal/wave"
)

// TickDuration is the fixed step used by RunTicks and RunUntil.
const TickDuration = time.Second / 60

// Input is the player's intent for the next Step.
type Input struct {
	MoveX, MoveY float64 // -1..1 per axis
	Aim          nav.Vec // world position to fire at
	Fire         bool
}

// Session owns every collaborator of one run. Not safe for concurrent use.
type Session struct {
	World    *World
	Grid     *nav.Grid
	Player   *Player
	Enemies  []*Enemy
	Bullets  []*Bullet
	Powerups []*Powerup
	Log      *EventLog

	cfg       *config.Config
	seed      int64
	rng       *rand.Rand
	pf        *nav.Pathfinder
	routes    *nav.RouteCache
	perimeter *wave.Perimeter
	waves     *wave.Controller
	events    *event.Dispatcher
	counters  *counters

	input  Input
	tick   int
	clock  time.Duration
	nextID int
	over   bool

	// builder toggles
	recalcTicks *int
	openMap     bool
	wavesOff    bool
	autoFire    bool
}

// hooks adapts the session to the wave controller's collaborator interfaces.
type hooks struct{ s *Session }

func (h hooks) Spawn(a wave.Archetype, pos nav.Vec) { h.s.spawn(a, pos) }

func (h hooks) WaveStarted(w int, comp wave.Composition, _ time.Duration) {
	h.s.emit(event.WaveStarted, event.WaveData{Wave: w, Tick: h.s.tick, Composition: comp})
}

func (h hooks) WaveCompleted(w int, _ time.Duration) {
	h.s.emit(event.WaveCompleted, event.WaveData{Wave: w, Tick: h.s.tick})
}

func (s *Session) emit(t event.Type, data any) {
	s.events.Dispatch(event.Event{Type: t, Data: data})
}

func (s *Session) spawn(a wave.Archetype, pos nav.Vec) *Enemy {
	e := newEnemy(s.nextID, a, s.cfg.Stats(a), pos)
	s.nextID++
	s.Enemies = append(s.Enemies, e)
	s.emit(event.EnemySpawned, event.EnemyData{ID: e.ID, Archetype: a, Pos: pos, Tick: s.tick})
	return e
}

// Config returns the session tuning.
func (s *Session) Config() *config.Config { return s.cfg }

// Seed returns the RNG seed.
func (s *Session) Seed() int64 { return s.seed }

// Tick returns the number of completed steps.
func (s *Session) Tick() int { return s.tick }

// Clock returns simulated time.
func (s *Session) Clock() time.Duration { return s.clock }

// Over reports whether the player died.
func (s *Session) Over() bool { return s.over }

// Waves exposes the wave controller.
func (s *Session) Waves() *wave.Controller { return s.waves }

// Perimeter returns the spawn points.
func (s *Session) Perimeter() *wave.Perimeter { return s.perimeter }

// Events returns the dispatcher so callers can subscribe.
func (s *Session) Events() *event.Dispatcher { return s.events }

// Routes returns the route cache.
func (s *Session) Routes() *nav.RouteCache { return s.routes }

// SetInput sets the player intent used by subsequent steps.
func (s *Session) SetInput(in Input) { s.input = in }

// AliveEnemies counts enemies still in play.
func (s *Session) AliveEnemies() int {
	n := 0
	for _, e := range s.Enemies {
		if e.Alive() {
			n++
		}
	}
	return n
}

// RunTicks advances n fixed steps, stopping early if the player dies.
func (s *Session) RunTicks(n int) {
	for i := 0; i < n && !s.over; i++ {
		s.Step(TickDuration)
	}
}

// RunUntil steps up to maxTicks times and returns the tick at which pred
// first held, or -1.
func (s *Session) RunUntil(pred func(*Session) bool, maxTicks int) int {
	for i := 0; i < maxTicks && !s.over; i++ {
		s.Step(TickDuration)
		if pred(s) {
			return s.tick
		}
	}
	return -1
}

// Step advances the session by dt. The order is player, waves, enemies,
// projectiles, pickups, contact damage, removal of the dead.
func (s *Session) Step(dt time.Duration) {
	if s.over {
		return
	}
	s.tick++
	s.clock += dt
	sec := dt.Seconds()

	in := s.input
	if s.autoFire {
		in.Aim, in.Fire = s.autoAim()
	}
	s.Player.Update(sec)
	s.Player.Move(in.MoveX, in.MoveY, sec, s.Grid)
	if in.Fire {
		s.fire(in.Aim)
	}

	s.waves.Update(s.clock, s.AliveEnemies())
	s.updateEnemies(sec)
	s.updateBullets(sec)
	s.updatePowerups(sec)
	s.contactDamage(sec)
	s.sweep()

	if s.Player.Dead() {
		s.over = true
		s.emit(event.PlayerDied, event.PlayerData{Wave: s.waves.Wave(), Tick: s.tick})
	}
}

func (s *Session) updateEnemies(dt float64) {
	target := s.Player.Pos
	for _, e := range s.Enemies {
		if !e.Alive() {
			continue
		}
		before := s.routes.Searches()
		route := s.routes.Route(e.ID, e.Pos, target)
		if s.routes.Searches() > before {
			s.counters.searches++
			s.counters.expanded += s.pf.Stats().Expanded
		}
		s.Log.AddVerbose(s.tick, e.Label(), CatNav, "route", fmt.Sprintf("%d waypoints", len(route)), float64(len(route)))

		if len(route) == 0 && e.Stats.BreaksWalls {
			if c, ok := s.wallAhead(e, target); ok {
				e.Routed, e.RouteLen, e.Vel = false, 0, nav.Vec{}
				s.hitWall(e, c, dt)
				continue
			}
		}
		e.steer(route, target, dt)
	}
}

// wallAhead returns the breakable wall a direct-seeking enemy is standing in
// or about to enter.
func (s *Session) wallAhead(e *Enemy, target nav.Vec) (nav.Cell, bool) {
	here := s.Grid.ToCell(e.Pos)
	if s.breakable(here) {
		return here, true
	}
	front := e.Pos.Add(target.Sub(e.Pos).Normalize().Scale(e.Stats.Radius))
	c := s.Grid.ToCell(front)
	return c, s.breakable(c)
}

func (s *Session) breakable(c nav.Cell) bool {
	t := s.World.At(c)
	return t != nil && t.Wall && t.Durability > 0
}

func (s *Session) hitWall(e *Enemy, c nav.Cell, dt float64) {
	e.wallCooldown -= dt
	if e.wallCooldown > 0 {
		return
	}
	e.wallCooldown = s.cfg.Combat.WallBreakCooldown
	remaining, destroyed := s.World.DamageWall(c, e.Stats.WallDamage)
	data := event.WallData{Cell: c, Durability: remaining, Tick: s.tick}
	s.emit(event.WallDamaged, data)
	if destroyed {
		s.emit(event.WallDestroyed, data)
	}
}

// autoAim targets the nearest enemy inside the map.
func (s *Session) autoAim() (nav.Vec, bool) {
	best, bestD := nav.Vec{}, math.Inf(1)
	for _, e := range s.Enemies {
		if !e.Alive() || !s.Grid.InBounds(s.Grid.ToCell(e.Pos)) {
			continue
		}
		if d := e.Pos.Dist(s.Player.Pos); d < bestD {
			best, bestD = e.Pos, d
		}
	}
	return best, !math.IsInf(bestD, 1)
}

func (s *Session) fire(aim nav.Vec) {
	if !s.Player.CanFire() {
		return
	}
	dir := aim.Sub(s.Player.Pos).Normalize()
	if dir == (nav.Vec{}) {
		return
	}
	c := s.cfg.Combat
	s.Player.consumeShot()
	s.Bullets = append(s.Bullets, &Bullet{
		Pos:      s.Player.Pos,
		Dir:      dir,
		Speed:    c.BulletSpeed,
		Radius:   c.BulletRadius,
		Damage:   c.BulletDamage,
		lifetime: c.BulletLifetime,
	})
	s.counters.shots++
}

func (s *Session) updateBullets(dt float64) {
	for _, b := range s.Bullets {
		if !b.Alive() {
			continue
		}
		b.update(dt, s.Grid)
		if !b.Alive() {
			continue
		}
		for _, e := range s.Enemies {
			if !e.Alive() || !e.overlaps(b.Pos, b.Radius) {
				continue
			}
			b.dead = true
			if e.TakeDamage(b.Damage) {
				s.kill(e)
			}
			break
		}
	}
}

func (s *Session) kill(e *Enemy) {
	s.routes.Forget(e.ID)
	s.emit(event.EnemyKilled, event.EnemyData{ID: e.ID, Archetype: e.Archetype, Pos: e.Pos, Tick: s.tick})
	pc := s.cfg.Powerups
	if s.rng.Float64() >= pc.DropChance {
		return
	}
	kind := PowerupSpeed
	switch r := s.rng.Intn(100); {
	case r < pc.HealthShare:
		kind = PowerupHealth
	case r < pc.HealthShare+pc.AmmoShare:
		kind = PowerupAmmo
	}
	s.Powerups = append(s.Powerups, &Powerup{Kind: kind, Pos: e.Pos})
	s.emit(event.PowerupDropped, event.PowerupData{Kind: kind.String(), Pos: e.Pos, Tick: s.tick})
}

func (s *Session) updatePowerups(dt float64) {
	r := s.cfg.Powerups.Radius + s.Player.Radius
	for _, pu := range s.Powerups {
		pu.Age += dt
		if pu.taken || pu.Pos.Dist(s.Player.Pos) >= r {
			continue
		}
		pu.taken = true
		pu.apply(s.Player, s.cfg.Powerups)
		s.emit(event.PowerupCollected, event.PowerupData{Kind: pu.Kind.String(), Pos: pu.Pos, Tick: s.tick})
	}
}

func (s *Session) contactDamage(dt float64) {
	for _, e := range s.Enemies {
		if e.Alive() && e.overlaps(s.Player.Pos, s.Player.Radius) {
			s.Player.TakeDamage(e.Stats.Damage * dt)
		}
	}
}

// sweep drops dead enemies, spent bullets and collected power-ups.
func (s *Session) sweep() {
	enemies := s.Enemies[:0]
	for _, e := range s.Enemies {
		if e.Alive() {
			enemies = append(enemies, e)
		}
	}
	clear(s.Enemies[len(enemies):])
	s.Enemies = enemies

	bullets := s.Bullets[:0]
	for _, b := range s.Bullets {
		if b.Alive() {
			bullets = append(bullets, b)
		}
	}
	clear(s.Bullets[len(bullets):])
	s.Bullets = bullets

	pus := s.Powerups[:0]
	for _, pu := range s.Powerups {
		if !pu.taken {
			pus = append(pus, pu)
		}
	}
	clear(s.Powerups[len(pus):])
	s.Powerups = pus
}

// Route returns the current route of enemy e toward the player without
// advancing the session. Used by the path overlay.
func (s *Session) Route(e *Enemy) nav.Path {
	return s.pf.FindPath(e.Pos, s.Player.Pos)
}
