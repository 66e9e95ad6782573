package arena

import (
	"math"

	"github.com/Garsondee/Horde-Sense/internal/config"
	"github.com/Garsondee/Horde-Sense/internal/nav"
)

// Player is the pursued actor.
type Player struct {
	Pos       nav.Vec
	Radius    float64
	Health    float64
	MaxHealth float64
	Ammo      int

	baseSpeed    float64
	speedMul     float64
	boostLeft    float64 // seconds
	fireCooldown float64 // seconds between shots
	sinceShot    float64
}

// NewPlayer creates a player at pos from the player config.
func NewPlayer(pos nav.Vec, pc config.PlayerConfig) *Player {
	return &Player{
		Pos:          pos,
		Radius:       pc.Radius,
		Health:       pc.Health,
		MaxHealth:    pc.Health,
		Ammo:         pc.StartAmmo,
		baseSpeed:    pc.Speed,
		speedMul:     1,
		fireCooldown: pc.FireCooldown,
		sinceShot:    pc.FireCooldown,
	}
}

// Speed returns the current movement speed in pixels per second.
func (p *Player) Speed() float64 { return p.baseSpeed * p.speedMul }

// Boosted reports whether a speed power-up is active.
func (p *Player) Boosted() bool { return p.boostLeft > 0 }

// BoostLeft returns the remaining boost time in seconds.
func (p *Player) BoostLeft() float64 { return p.boostLeft }

// Dead reports whether health reached zero.
func (p *Player) Dead() bool { return p.Health <= 0 }

// Update advances timers by dt seconds.
func (p *Player) Update(dt float64) {
	p.sinceShot += dt
	if p.boostLeft > 0 {
		p.boostLeft -= dt
		if p.boostLeft <= 0 {
			p.boostLeft = 0
			p.speedMul = 1
		}
	}
}

// Move walks along (dx, dy) for dt seconds. Diagonal input is normalised.
// Each axis is applied separately and rejected if the body would overlap a
// blocked cell, so the player slides along walls.
func (p *Player) Move(dx, dy, dt float64, g *nav.Grid) {
	dir := nav.Vec{X: dx, Y: dy}.Normalize()
	if dir == (nav.Vec{}) {
		return
	}
	step := dir.Scale(p.Speed() * dt)
	if nx := (nav.Vec{X: p.Pos.X + step.X, Y: p.Pos.Y}); !overlapsBlocked(g, nx, p.Radius) {
		p.Pos = nx
	}
	if ny := (nav.Vec{X: p.Pos.X, Y: p.Pos.Y + step.Y}); !overlapsBlocked(g, ny, p.Radius) {
		p.Pos = ny
	}
}

// overlapsBlocked reports whether the square of half-size r around pos
// touches a blocked or out-of-bounds cell.
func overlapsBlocked(g *nav.Grid, pos nav.Vec, r float64) bool {
	const eps = 1e-6
	lo := g.ToCell(nav.Vec{X: pos.X - r, Y: pos.Y - r})
	hi := g.ToCell(nav.Vec{X: pos.X + r - eps, Y: pos.Y + r - eps})
	for row := lo.Row; row <= hi.Row; row++ {
		for col := lo.Col; col <= hi.Col; col++ {
			if g.IsBlocked(nav.Cell{Col: col, Row: row}) {
				return true
			}
		}
	}
	return false
}

// TakeDamage lowers health, never below zero.
func (p *Player) TakeDamage(amount float64) {
	p.Health = math.Max(0, p.Health-amount)
}

// Heal raises health, capped at MaxHealth.
func (p *Player) Heal(amount float64) {
	p.Health = math.Min(p.MaxHealth, p.Health+amount)
}

// AddAmmo adds n rounds.
func (p *Player) AddAmmo(n int) { p.Ammo += n }

// ApplySpeedBoost multiplies speed by mul for dur seconds. A second boost
// restarts the timer rather than stacking.
func (p *Player) ApplySpeedBoost(mul, dur float64) {
	p.speedMul = mul
	p.boostLeft = dur
}

// CanFire reports whether the cooldown elapsed and ammo remains.
func (p *Player) CanFire() bool {
	return p.Ammo > 0 && p.sinceShot >= p.fireCooldown
}

// consumeShot spends one round and restarts the cooldown.
func (p *Player) consumeShot() {
	p.Ammo--
	p.sinceShot = 0
}
