package wave

import (
	"time"

	"github.com/Garsondee/Horde-Sense/internal/nav"
)

// Phase is the lifecycle state of the current wave.
type Phase int

const (
	PhaseIdle      Phase = iota // Start not yet called
	PhaseSpawning               // enemies being created
	PhaseActive                 // enemies alive
	PhaseCompleted              // last enemy died this update; cooldown started
	PhaseCooldown               // waiting out the cooldown
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseSpawning:
		return "spawning"
	case PhaseActive:
		return "active"
	case PhaseCompleted:
		return "completed"
	case PhaseCooldown:
		return "cooldown"
	default:
		return "unknown"
	}
}

// Spawner instantiates one enemy of archetype a at pos.
type Spawner interface {
	Spawn(a Archetype, pos nav.Vec)
}

// Listener observes wave transitions. Either method may be a no-op.
type Listener interface {
	WaveStarted(wave int, comp Composition, at time.Duration)
	WaveCompleted(wave int, at time.Duration)
}

// Controller drives the wave state machine. It never sees the enemy list,
// only the live count passed to Update.
type Controller struct {
	cfg       Settings
	perimeter *Perimeter
	rng       Rand
	spawner   Spawner
	listener  Listener

	wave        int
	phase       Phase
	size        int
	comp        Composition
	completed   bool
	completedAt time.Duration
	startedAt   time.Duration
	spawned     int
}

// NewController wires a controller to its collaborators. Call Start to
// launch wave 1.
func NewController(cfg Settings, perimeter *Perimeter, rng Rand, spawner Spawner) *Controller {
	return &Controller{
		cfg:       cfg,
		perimeter: perimeter,
		rng:       rng,
		spawner:   spawner,
		phase:     PhaseIdle,
	}
}

// SetListener registers l for transition callbacks.
func (c *Controller) SetListener(l Listener) { c.listener = l }

// Start begins wave 1 at time now. No-op once a wave has started.
func (c *Controller) Start(now time.Duration) {
	if c.phase != PhaseIdle {
		return
	}
	c.startNext(now)
}

// Update advances the state machine. alive is the number of live enemies.
// A wave completes the first time alive reaches zero; the next wave starts
// once now-completedAt >= Cooldown, which may happen in the same call.
func (c *Controller) Update(now time.Duration, alive int) {
	if c.phase == PhaseIdle {
		return
	}
	if !c.completed && alive == 0 {
		c.completed = true
		c.completedAt = now
		c.phase = PhaseCompleted
		if c.listener != nil {
			c.listener.WaveCompleted(c.wave, now)
		}
	} else if c.completed {
		c.phase = PhaseCooldown
	}
	if c.completed && now-c.completedAt >= c.cfg.Cooldown {
		c.startNext(now)
	}
}

func (c *Controller) startNext(now time.Duration) {
	c.wave++
	c.completed = false
	c.phase = PhaseSpawning
	c.startedAt = now
	c.size = SizeFor(c.cfg, c.wave)
	c.comp = CompositionFor(c.cfg, c.wave)
	if c.listener != nil {
		c.listener.WaveStarted(c.wave, c.comp, now)
	}
	c.comp.Each(func(a Archetype) {
		c.spawner.Spawn(a, c.perimeter.Choose(c.rng))
		c.spawned++
	})
	c.phase = PhaseActive
}

// Wave returns the current wave index (0 before Start).
func (c *Controller) Wave() int { return c.wave }

// Phase returns the current lifecycle phase.
func (c *Controller) Phase() Phase { return c.phase }

// Size returns the enemy count of the current wave.
func (c *Controller) Size() int { return c.size }

// Composition returns the archetype breakdown of the current wave.
func (c *Controller) Composition() Composition { return c.comp }

// Completed reports whether the current wave has been cleared.
func (c *Controller) Completed() bool { return c.completed }

// Spawned returns the total number of enemies spawned across all waves.
func (c *Controller) Spawned() int { return c.spawned }

// StartedAt returns when the current wave began.
func (c *Controller) StartedAt() time.Duration { return c.startedAt }

// CooldownRemaining returns the time left before the next wave, or 0 when no
// cooldown is running.
func (c *Controller) CooldownRemaining(now time.Duration) time.Duration {
	if !c.completed {
		return 0
	}
	left := c.cfg.Cooldown - (now - c.completedAt)
	if left < 0 {
		return 0
	}
	return left
}
