package game

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Garsondee/Horde-Sense/internal/arena"
	"github.com/Garsondee/Horde-Sense/internal/nav"
	"github.com/Garsondee/Horde-Sense/internal/wave"
)

var (
	groundColor = color.RGBA{R: 28, G: 42, B: 28, A: 255}
	borderFill  = color.RGBA{R: 38, G: 36, B: 32, A: 255}
	wallLight   = color.RGBA{R: 118, G: 112, B: 96, A: 220}
	wallDark    = color.RGBA{R: 45, G: 42, B: 34, A: 200}
	pathColor   = color.RGBA{R: 255, G: 220, B: 0, A: 110}
	playerColor = color.RGBA{R: 70, G: 150, B: 255, A: 255}
	boostColor  = color.RGBA{R: 120, G: 230, B: 255, A: 255}
	bulletColor = color.RGBA{R: 255, G: 240, B: 160, A: 255}
	barBack     = color.RGBA{R: 40, G: 10, B: 10, A: 200}
	barFront    = color.RGBA{R: 90, G: 220, B: 90, A: 230}
)

// enemyColor tints enemies by archetype.
func enemyColor(a wave.Archetype) color.RGBA {
	switch a {
	case wave.Fast:
		return color.RGBA{R: 230, G: 200, B: 40, A: 255}
	case wave.Strong:
		return color.RGBA{R: 150, G: 40, B: 40, A: 255}
	default:
		return color.RGBA{R: 90, G: 160, B: 70, A: 255}
	}
}

func powerupColor(k arena.PowerupKind) color.RGBA {
	switch k {
	case arena.PowerupHealth:
		return color.RGBA{R: 230, G: 60, B: 60, A: 255}
	case arena.PowerupAmmo:
		return color.RGBA{R: 230, G: 180, B: 60, A: 255}
	default:
		return color.RGBA{R: 80, G: 200, B: 255, A: 255}
	}
}

// wallFill fades interior walls toward the ground colour as they take damage.
func wallFill(durability, max int) color.RGBA {
	base := color.RGBA{R: 88, G: 82, B: 70, A: 255}
	if max <= 0 || durability >= max {
		return base
	}
	f := 0.4 + 0.6*float64(durability)/float64(max)
	return color.RGBA{
		R: uint8(float64(base.R) * f),
		G: uint8(float64(base.G) * f),
		B: uint8(float64(base.B) * f),
		A: 255,
	}
}

func (g *Game) drawWorld(screen *ebiten.Image) {
	w := g.session.World
	ts := float32(w.TileSize)
	vector.FillRect(screen, 0, 0, float32(g.width), float32(g.height), groundColor, false)

	maxDur := g.cfg.Map.WallDurability
	for _, c := range w.Walls() {
		x0, y0 := float32(c.Col)*ts, float32(c.Row)*ts
		fill := borderFill
		if !w.IsBorder(c) {
			fill = wallFill(w.At(c).Durability, maxDur)
		}
		vector.FillRect(screen, x0, y0, ts, ts, fill, false)
		vector.StrokeLine(screen, x0, y0, x0+ts, y0, 1.0, wallLight, false)
		vector.StrokeLine(screen, x0, y0, x0, y0+ts, 1.0, wallLight, false)
		vector.StrokeLine(screen, x0, y0+ts, x0+ts, y0+ts, 1.0, wallDark, false)
		vector.StrokeLine(screen, x0+ts, y0, x0+ts, y0+ts, 1.0, wallDark, false)
	}
}

// drawPaths overlays each enemy's current route to the player.
func (g *Game) drawPaths(screen *ebiten.Image) {
	s := g.session
	for _, e := range s.Enemies {
		prev := e.Pos
		for _, wp := range s.Route(e) {
			vector.StrokeLine(screen, float32(prev.X), float32(prev.Y), float32(wp.X), float32(wp.Y), 1.0, pathColor, false)
			prev = wp
		}
	}
}

func (g *Game) drawActors(screen *ebiten.Image) {
	s := g.session
	for _, pu := range s.Powerups {
		bob := float32(math.Sin(pu.Age*4) * 2)
		r := float32(s.Config().Powerups.Radius)
		vector.FillCircle(screen, float32(pu.Pos.X), float32(pu.Pos.Y)+bob, r, powerupColor(pu.Kind), true)
	}
	for _, b := range s.Bullets {
		vector.FillCircle(screen, float32(b.Pos.X), float32(b.Pos.Y), float32(b.Radius), bulletColor, true)
	}
	for _, e := range s.Enemies {
		drawBody(screen, e.Pos, e.Stats.Radius, enemyColor(e.Archetype))
		if e.Health < e.Stats.Health {
			drawBar(screen, e.Pos, e.Stats.Radius, e.Health/e.Stats.Health)
		}
	}
	p := s.Player
	col := playerColor
	if p.Boosted() {
		col = boostColor
	}
	drawBody(screen, p.Pos, p.Radius, col)
	aim := g.screenToWorld(ebiten.CursorPosition())
	dir := aim.Sub(p.Pos).Normalize()
	tip := p.Pos.Add(dir.Scale(p.Radius + 6))
	vector.StrokeLine(screen, float32(p.Pos.X), float32(p.Pos.Y), float32(tip.X), float32(tip.Y), 2.0, col, true)
}

func drawBody(screen *ebiten.Image, pos nav.Vec, r float64, col color.RGBA) {
	x, y := float32(pos.X), float32(pos.Y)
	vector.FillCircle(screen, x+1.5, y+1.5, float32(r), color.RGBA{A: 90}, true)
	vector.FillCircle(screen, x, y, float32(r), col, true)
}

// drawBar draws a health bar above a body; frac is clamped to 0..1.
func drawBar(screen *ebiten.Image, pos nav.Vec, r, frac float64) {
	frac = math.Max(0, math.Min(1, frac))
	w := float32(2 * r)
	x, y := float32(pos.X-r), float32(pos.Y-r-6)
	vector.FillRect(screen, x, y, w, 3, barBack, false)
	vector.FillRect(screen, x, y, w*float32(frac), 3, barFront, false)
}
