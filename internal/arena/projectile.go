package arena

import (
	"github.com/Garsondee/Horde-Sense/internal/config"
	"github.com/Garsondee/Horde-Sense/internal/nav"
)

// Bullet is a player projectile.
type Bullet struct {
	Pos    nav.Vec
	Dir    nav.Vec // unit vector
	Speed  float64
	Radius float64
	Damage float64

	age      float64
	lifetime float64
	dead     bool
}

// Alive reports whether the bullet is still in flight.
func (b *Bullet) Alive() bool { return !b.dead }

// update advances the bullet and expires it on timeout or when it enters a
// blocked or out-of-bounds cell.
func (b *Bullet) update(dt float64, g *nav.Grid) {
	b.Pos = b.Pos.Add(b.Dir.Scale(b.Speed * dt))
	b.age += dt
	if b.age > b.lifetime || g.IsBlocked(g.ToCell(b.Pos)) {
		b.dead = true
	}
}

// PowerupKind selects a power-up effect.
type PowerupKind int

const (
	PowerupHealth PowerupKind = iota
	PowerupAmmo
	PowerupSpeed
)

func (k PowerupKind) String() string {
	switch k {
	case PowerupHealth:
		return "health"
	case PowerupAmmo:
		return "ammo"
	case PowerupSpeed:
		return "speed"
	default:
		return "unknown"
	}
}

// Powerup is a dropped pickup.
type Powerup struct {
	Kind PowerupKind
	Pos  nav.Vec
	Age  float64 // seconds since drop, drives the bob animation

	taken bool
}

// apply grants the effect to p.
func (pu *Powerup) apply(p *Player, cfg config.PowerupConfig) {
	switch pu.Kind {
	case PowerupHealth:
		p.Heal(cfg.HealthAmount)
	case PowerupAmmo:
		p.AddAmmo(cfg.AmmoAmount)
	case PowerupSpeed:
		p.ApplySpeedBoost(cfg.SpeedMultiplier, cfg.SpeedDuration)
	}
}
