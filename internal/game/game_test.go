package game

import (
	"errors"
	"strings"
	"testing"

	"github.com/Garsondee/Horde-Sense/internal/config"
	"github.com/Garsondee/Horde-Sense/internal/records"
	"github.com/Garsondee/Horde-Sense/internal/wave"
)

func newTestGame(t *testing.T) (*Game, *[]string) {
	t.Helper()
	cfg := config.Default()
	cfg.Map.ObstacleCount = 0
	store, err := records.NewStore(nil)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	g := New(cfg, store, 1)
	var copied []string
	g.copyText = func(s string) error {
		copied = append(copied, s)
		return nil
	}
	return g, &copied
}

func containsLine(lines []string, substr string) bool {
	for _, l := range lines {
		if strings.Contains(l, substr) {
			return true
		}
	}
	return false
}

func TestAxes(t *testing.T) {
	cases := []struct {
		up, down, left, right bool
		x, y                  float64
	}{
		{false, false, false, false, 0, 0},
		{true, false, false, true, 1, -1},
		{true, true, false, false, 0, 0},
		{false, true, true, false, -1, 1},
	}
	for _, c := range cases {
		x, y := axes(c.up, c.down, c.left, c.right)
		if x != c.x || y != c.y {
			t.Fatalf("axes(%v,%v,%v,%v) = (%v,%v), want (%v,%v)", c.up, c.down, c.left, c.right, x, y, c.x, c.y)
		}
	}
}

func TestGame_LayoutMatchesMap(t *testing.T) {
	g, _ := newTestGame(t)
	w, h := g.Layout(1920, 1080)
	// 32x24 cells of 32px.
	if w != 1024 || h != 768 {
		t.Fatalf("Layout = %dx%d, want 1024x768", w, h)
	}
}

func TestGame_ApplyMovesPlayer(t *testing.T) {
	g, _ := newTestGame(t)
	start := g.Session().Player.Pos
	for i := 0; i < 30; i++ {
		g.apply(controls{moveX: 1})
	}
	// 200 px/s for 30 ticks of 1/60s.
	got := g.Session().Player.Pos.X - start.X
	if got < 99.99 || got > 100.01 {
		t.Fatalf("moved %.3f px, want 100", got)
	}
}

func TestGame_PauseStopsSimulation(t *testing.T) {
	g, _ := newTestGame(t)
	g.apply(controls{pause: true})
	if !g.paused {
		t.Fatal("expected paused")
	}
	tick := g.Session().Tick()
	g.apply(controls{moveX: 1})
	if g.Session().Tick() != tick {
		t.Fatalf("tick advanced while paused: %d -> %d", tick, g.Session().Tick())
	}
	if !containsLine(g.bannerLines(), "PAUSED") {
		t.Fatalf("banner = %v", g.bannerLines())
	}
	// Resuming steps in the same frame.
	g.apply(controls{pause: true})
	g.apply(controls{})
	if g.Session().Tick() != tick+2 {
		t.Fatalf("tick = %d after resume, want %d", g.Session().Tick(), tick+2)
	}
}

func TestGame_SpeedRunsExtraTicks(t *testing.T) {
	g, _ := newTestGame(t)
	g.apply(controls{faster: true}) // 2x
	if g.Session().Tick() != 2 {
		t.Fatalf("tick = %d at 2x, want 2", g.Session().Tick())
	}
	g.apply(controls{slower: true}) // back to 1x
	g.apply(controls{slower: true}) // 0.5x: accumulates half a tick
	if g.Session().Tick() != 3 {
		t.Fatalf("tick = %d, want 3", g.Session().Tick())
	}
	g.apply(controls{})
	if g.Session().Tick() != 4 {
		t.Fatalf("tick = %d, want 4", g.Session().Tick())
	}
}

func TestGame_GameOverSubmitsOnceAndRestarts(t *testing.T) {
	g, _ := newTestGame(t)

	g.apply(controls{restart: true})
	if g.seed != 1 {
		t.Fatal("restart must be ignored while alive")
	}

	g.Session().Player.TakeDamage(1000)
	g.apply(controls{})
	if !g.Session().Over() {
		t.Fatal("expected game over")
	}
	if !g.newRecord {
		t.Fatal("first finished run should be a record")
	}
	best := g.records.Best()
	if best.Wave != 1 || best.Seed != 1 {
		t.Fatalf("best = %+v", best)
	}
	banner := g.bannerLines()
	if !containsLine(banner, "YOU DIED") || !containsLine(banner, "New record!") {
		t.Fatalf("banner = %v", banner)
	}

	g.apply(controls{pause: true})
	if g.paused {
		t.Fatal("pause should be ignored after game over")
	}

	g.apply(controls{restart: true})
	if g.seed != 2 || g.Session().Over() || g.Session().Seed() != 2 {
		t.Fatalf("restart: seed=%d over=%v", g.seed, g.Session().Over())
	}
	if g.submitted || g.newRecord {
		t.Fatal("restart should reset run flags")
	}
}

func TestGame_CopyReport(t *testing.T) {
	g, copied := newTestGame(t)
	g.apply(controls{copyReport: true})
	if len(*copied) != 1 || !strings.HasPrefix((*copied)[0], "seed=1 ") {
		t.Fatalf("copied = %q", *copied)
	}
	if !containsLine(g.statusLines(), "report copied") {
		t.Fatalf("status = %v", g.statusLines())
	}

	g.copyText = func(string) error { return errors.New("no xclip") }
	g.apply(controls{copyReport: true})
	if !containsLine(g.statusLines(), "clipboard unavailable") {
		t.Fatalf("status = %v", g.statusLines())
	}
}

func TestGame_StatusShowsCooldown(t *testing.T) {
	g, _ := newTestGame(t)
	lines := g.statusLines()
	if !containsLine(lines, "Ammo 50") || !containsLine(lines, "Wave 1 (active)  Zombies 10") {
		t.Fatalf("status = %v", lines)
	}

	// 2.5s into the wave.
	for i := 0; i < 150; i++ {
		g.apply(controls{})
	}
	if !containsLine(g.statusLines(), "Wave time 2s") && !containsLine(g.statusLines(), "Wave time 3s") {
		t.Fatalf("status = %v", g.statusLines())
	}

	for _, e := range g.Session().Enemies {
		e.TakeDamage(e.Health)
	}
	g.apply(controls{}) // wave completes
	g.apply(controls{}) // cooldown
	if g.Session().Waves().Phase() != wave.PhaseCooldown {
		t.Fatalf("phase = %s", g.Session().Waves().Phase())
	}
	if !containsLine(g.statusLines(), "Next wave in 5.0s") {
		t.Fatalf("status = %v", g.statusLines())
	}
}

func TestWallFill_DarkensWithDamage(t *testing.T) {
	full := wallFill(100, 100)
	half := wallFill(50, 100)
	if half.R >= full.R {
		t.Fatalf("damaged wall %v not darker than %v", half, full)
	}
	if wallFill(0, 0) != full {
		t.Fatal("zero max should use the base colour")
	}
}
