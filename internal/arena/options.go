package arena

import (
	"math/rand"

	"github.com/Garsondee/Horde-Sense/internal/config"
	"github.com/Garsondee/Horde-Sense/internal/event"
	"github.com/Garsondee/Horde-Sense/internal/nav"
	"github.com/Garsondee/Horde-Sense/internal/wave"
)

// optionKind controls the pass in which an option is applied.
type optionKind int

const (
	optInfra optionKind = iota // config, seed, logging, toggles; applied first
	optWorld                   // wall edits; applied after map generation
	optActor                   // player and enemies; applied after the nav grid exists
)

// Option is a builder step applied during NewSession.
type Option struct {
	kind optionKind
	fn   func(*Session)
}

// WithConfig replaces the default tuning. The config is not copied.
func WithConfig(cfg *config.Config) Option {
	return Option{optInfra, func(s *Session) { s.cfg = cfg }}
}

// WithSeed sets the RNG seed for map generation, spawns and drops.
func WithSeed(seed int64) Option {
	return Option{optInfra, func(s *Session) { s.seed = seed }}
}

// WithVerbose enables per-tick log entries.
func WithVerbose(v bool) Option {
	return Option{optInfra, func(s *Session) { s.Log = NewEventLog(v) }}
}

// WithRouteCache overrides nav.recalcTicks. ticks <= 1 recomputes every tick.
func WithRouteCache(ticks int) Option {
	return Option{optInfra, func(s *Session) { s.recalcTicks = &ticks }}
}

// WithOpenMap generates only the border ring, no obstacles.
func WithOpenMap() Option {
	return Option{optInfra, func(s *Session) { s.openMap = true }}
}

// WithoutWaves leaves the wave controller idle so tests can place enemies by
// hand.
func WithoutWaves() Option {
	return Option{optInfra, func(s *Session) { s.wavesOff = true }}
}

// WithAutoFire makes the player shoot the nearest enemy whenever possible.
func WithAutoFire(on bool) Option {
	return Option{optInfra, func(s *Session) { s.autoFire = on }}
}

// WithWall places a destructible interior wall at (col, row).
func WithWall(col, row int) Option {
	return Option{optWorld, func(s *Session) {
		s.World.SetWall(nav.Cell{Col: col, Row: row}, s.cfg.Map.WallDurability)
	}}
}

// WithPlayerAt moves the player to world position (x, y).
func WithPlayerAt(x, y float64) Option {
	return Option{optActor, func(s *Session) { s.Player.Pos = nav.Vec{X: x, Y: y} }}
}

// WithEnemy spawns an enemy of archetype a at (x, y).
func WithEnemy(a wave.Archetype, x, y float64) Option {
	return Option{optActor, func(s *Session) { s.spawn(a, nav.Vec{X: x, Y: y}) }}
}

// NewSession builds a session from opts in ordered passes:
//  1. Infrastructure (config, seed, logging, toggles)
//  2. Map generation, then wall edits
//  3. Nav grid, pathfinder, events, wave controller, player
//  4. Actors
//
// The first wave starts at the end unless WithoutWaves was given.
func NewSession(opts ...Option) *Session {
	s := &Session{
		cfg:  config.Default(),
		seed: 1,
		Log:  NewEventLog(false),
	}
	s.apply(opts, optInfra)

	s.rng = rand.New(rand.NewSource(s.seed)) // #nosec G404 -- deterministic simulation
	m := s.cfg.Map
	s.World = NewWorld(m.Cols, m.Rows, m.TileSize)
	obstacles := m.ObstacleCount
	if s.openMap {
		obstacles = 0
	}
	GenerateWalls(s.World, s.rng, obstacles, m.WallDurability)
	s.apply(opts, optWorld)

	s.buildNav()
	s.wireEvents()

	w, h := s.cfg.MapBounds()
	s.perimeter = wave.NewPerimeter(w, h, s.cfg.Spawn.Interval, s.cfg.Spawn.Margin)
	s.waves = wave.NewController(s.cfg.WaveSettings(), s.perimeter, s.rng, hooks{s})
	s.waves.SetListener(hooks{s})
	s.Player = NewPlayer(s.Grid.CellCenter(s.World.Center()), s.cfg.Player)

	s.apply(opts, optActor)
	if !s.wavesOff {
		s.waves.Start(0)
	}
	return s
}

func (s *Session) apply(opts []Option, kind optionKind) {
	for _, o := range opts {
		if o.kind == kind {
			o.fn(s)
		}
	}
}

func (s *Session) buildNav() {
	m := s.cfg.Map
	s.Grid = nav.NewGrid(m.Cols, m.Rows, m.TileSize)
	s.Grid.Rebuild(s.World.WallSet())
	s.pf = nav.NewPathfinder(s.Grid)
	ticks := s.cfg.Nav.RecalcTicks
	if s.recalcTicks != nil {
		ticks = *s.recalcTicks
	}
	s.routes = nav.NewRouteCache(s.pf, ticks)
}

func (s *Session) wireEvents() {
	s.events = event.NewDispatcher()
	rebuild := &navRebuilder{grid: s.Grid, world: s.World, log: s.Log, tick: s.Tick}
	s.events.Subscribe(event.WallDestroyed, rebuild)

	lw := &logWriter{log: s.Log}
	for _, t := range loggedEvents {
		s.events.Subscribe(t, lw)
	}

	s.counters = &counters{}
	for _, t := range countedEvents {
		s.events.Subscribe(t, s.counters)
	}
}
