package game

import (
	"log"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/Garsondee/Horde-Sense/internal/arena"
	"github.com/Garsondee/Horde-Sense/internal/config"
	"github.com/Garsondee/Horde-Sense/internal/records"
)

// flashTicks is how long a status message stays on screen (3s at 60 TPS).
const flashTicks = 180

// Game is the ebiten front-end around one arena session at a time.
type Game struct {
	cfg     *config.Config
	records *records.Store
	session *arena.Session
	seed    int64

	width  int
	height int

	paused    bool
	showPath  bool
	submitted bool // the finished run has been sent to the record store
	newRecord bool

	// Simulation speed control.
	simSpeed  float64 // multiplier: 0.5, 1, 2, 4
	tickAccum float64

	flash     string
	flashLeft int

	face *text.GoXFace

	// copyText is swapped out in tests.
	copyText func(string) error
}

// New builds a game on cfg. store may be in degraded mode but not nil.
func New(cfg *config.Config, store *records.Store, seed int64) *Game {
	w, h := cfg.MapBounds()
	g := &Game{
		cfg:      cfg,
		records:  store,
		seed:     seed,
		width:    int(w),
		height:   int(h),
		simSpeed: 1.0,
		copyText: clipboard.WriteAll,
	}
	g.restart()
	return g
}

// Session returns the running session.
func (g *Game) Session() *arena.Session { return g.session }

func (g *Game) restart() {
	g.session = arena.NewSession(arena.WithConfig(g.cfg), arena.WithSeed(g.seed))
	g.paused = false
	g.submitted = false
	g.newRecord = false
	g.tickAccum = 0
	log.Printf("[Game] seed %d started", g.seed)
}

// Update reads input and advances the session at the current sim speed.
func (g *Game) Update() error {
	g.apply(readControls(g.screenToWorld))
	return nil
}

// apply runs one frame of game logic against already-sampled controls.
func (g *Game) apply(c controls) {
	if g.flashLeft > 0 {
		g.flashLeft--
	}
	g.handleToggles(c)

	s := g.session
	if s.Over() {
		g.finish()
		return
	}
	if g.paused {
		return
	}

	s.SetInput(arena.Input{MoveX: c.moveX, MoveY: c.moveY, Aim: c.aim, Fire: c.fire})
	g.tickAccum += g.simSpeed
	for g.tickAccum >= 1.0 && !s.Over() {
		g.tickAccum -= 1.0
		s.Step(arena.TickDuration)
	}
	if s.Over() {
		g.finish()
	}
}

func (g *Game) handleToggles(c controls) {
	over := g.session.Over()
	if c.pause && !over {
		g.paused = !g.paused
	}
	if c.togglePath {
		g.showPath = !g.showPath
	}
	if c.faster && g.simSpeed < 4 {
		g.simSpeed *= 2
	}
	if c.slower && g.simSpeed > 0.5 {
		g.simSpeed /= 2
	}
	if c.copyReport {
		g.copyReport()
	}
	if c.restart && over {
		g.seed++
		g.restart()
	}
}

// finish submits the run once per session.
func (g *Game) finish() {
	if g.submitted {
		return
	}
	g.submitted = true
	improved, err := g.records.Submit(records.FromReport(g.session.Report()))
	if err != nil {
		log.Printf("[Game] Warning: failed to save record: %v", err)
	}
	g.newRecord = improved
}

func (g *Game) copyReport() {
	if err := g.copyText(g.session.Report().Format()); err != nil {
		log.Printf("[Game] Warning: clipboard unavailable: %v", err)
		g.setFlash("clipboard unavailable")
		return
	}
	g.setFlash("report copied")
}

func (g *Game) setFlash(msg string) {
	g.flash = msg
	g.flashLeft = flashTicks
}

// Layout keeps the logical screen at map size; ebiten scales the window.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}

// Draw renders the arena and HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.face == nil {
		g.face = text.NewGoXFace(basicfont.Face7x13)
	}
	g.drawWorld(screen)
	if g.showPath {
		g.drawPaths(screen)
	}
	g.drawActors(screen)
	g.drawHUD(screen)
}
