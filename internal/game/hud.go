package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Garsondee/Horde-Sense/internal/wave"
)

const (
	hudLineH = 15
	hudPadX  = 6
	hudPadY  = 5
	hudCharW = 7 // basicfont.Face7x13 advance
)

var (
	hudText   = color.RGBA{R: 220, G: 230, B: 220, A: 255}
	hudPanel  = color.RGBA{R: 6, G: 10, B: 6, A: 210}
	hudBorder = color.RGBA{R: 60, G: 100, B: 60, A: 180}
	hudAlert  = color.RGBA{R: 255, G: 90, B: 70, A: 255}
)

// statusLines is the top-left HUD panel.
func (g *Game) statusLines() []string {
	s := g.session
	p := s.Player
	waves := s.Waves()
	lines := []string{
		fmt.Sprintf("HP %3.0f/%.0f  Ammo %d", p.Health, p.MaxHealth, p.Ammo),
		fmt.Sprintf("Wave %d (%s)  Zombies %d", waves.Wave(), waves.Phase(), s.AliveEnemies()),
	}
	switch waves.Phase() {
	case wave.PhaseCooldown, wave.PhaseCompleted:
		lines = append(lines, fmt.Sprintf("Next wave in %.1fs", waves.CooldownRemaining(s.Clock()).Seconds()))
	case wave.PhaseActive:
		lines = append(lines, fmt.Sprintf("Wave time %.0fs", (s.Clock()-waves.StartedAt()).Seconds()))
	}
	if p.Boosted() {
		lines = append(lines, fmt.Sprintf("Speed x%.1f %.1fs", g.cfg.Powerups.SpeedMultiplier, p.BoostLeft()))
	}
	if best := g.records.Best(); best.Wave > 0 {
		lines = append(lines, fmt.Sprintf("Best: wave %d, %d kills", best.Wave, best.Kills))
	}
	if g.simSpeed != 1 {
		lines = append(lines, fmt.Sprintf("Sim %.1fx", g.simSpeed))
	}
	if g.flashLeft > 0 {
		lines = append(lines, g.flash)
	}
	return lines
}

// bannerLines is the centred message for pause and game over, or nil.
func (g *Game) bannerLines() []string {
	s := g.session
	switch {
	case s.Over():
		r := s.Report()
		lines := []string{
			"YOU DIED",
			fmt.Sprintf("wave %d, %d kills", r.Wave, r.TotalKills()),
		}
		if g.newRecord {
			lines = append(lines, "New record!")
		}
		return append(lines, "R restart  C copy report")
	case g.paused:
		return []string{
			"PAUSED",
			"WASD move  mouse aim/fire",
			"P paths  ,/. speed  C copy report",
			"Esc resume",
		}
	}
	return nil
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	g.drawPanel(screen, g.statusLines(), 4, 4, hudText)

	if lines := g.bannerLines(); lines != nil {
		w, h := panelSize(lines)
		x := (float32(g.width) - w) / 2
		y := (float32(g.height) - h) / 2
		col := hudText
		if g.session.Over() {
			col = hudAlert
		}
		g.drawPanel(screen, lines, x, y, col)
	}
}

func panelSize(lines []string) (w, h float32) {
	maxLen := 0
	for _, l := range lines {
		if len(l) > maxLen {
			maxLen = len(l)
		}
	}
	return float32(maxLen*hudCharW + hudPadX*2), float32(len(lines)*hudLineH + hudPadY*2)
}

func (g *Game) drawPanel(screen *ebiten.Image, lines []string, x, y float32, col color.RGBA) {
	w, h := panelSize(lines)
	vector.FillRect(screen, x, y, w, h, hudPanel, false)
	vector.StrokeRect(screen, x, y, w, h, 1.0, hudBorder, false)

	for i, line := range lines {
		op := &text.DrawOptions{}
		op.GeoM.Translate(float64(x)+hudPadX, float64(y)+hudPadY+float64(i*hudLineH))
		op.ColorScale.ScaleWithColor(col)
		text.Draw(screen, line, g.face, op)
	}
}
