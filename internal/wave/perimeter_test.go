package wave

import (
	"math"
	"math/rand"
	"testing"

	"github.com/Garsondee/Horde-Sense/internal/nav"
)

func TestPerimeter_Size(t *testing.T) {
	cases := []struct {
		w, h, interval float64
	}{
		{1024, 768, 50}, // 21 + 21 + 16 + 16
		{1000, 500, 50}, // exact division: 20 + 20 + 10 + 10
		{96, 64, 32},
		{33, 10, 32},
	}
	for _, c := range cases {
		p := NewPerimeter(c.w, c.h, c.interval, 50)
		want := 2*int(math.Ceil(c.w/c.interval)) + 2*int(math.Ceil(c.h/c.interval))
		if p.Len() != want {
			t.Fatalf("%.0fx%.0f every %.0f: expected %d points, got %d", c.w, c.h, c.interval, want, p.Len())
		}
	}
}

func TestPerimeter_PointsOutsideMap(t *testing.T) {
	w, h := 1024.0, 768.0
	p := NewPerimeter(w, h, 50, 50)
	for _, pt := range p.Points() {
		inside := pt.X >= 0 && pt.X < w && pt.Y >= 0 && pt.Y < h
		if inside {
			t.Fatalf("spawn point %v lies inside the map", pt)
		}
	}
	if !p.Contains(nav.Vec{X: 0, Y: -50}) {
		t.Fatal("expected top-left point (0,-50)")
	}
	if !p.Contains(nav.Vec{X: w + 50, Y: 750}) {
		t.Fatal("expected right edge point (1074,750)")
	}
}

func TestPerimeter_PointsIsACopy(t *testing.T) {
	p := NewPerimeter(100, 100, 50, 10)
	pts := p.Points()
	pts[0] = nav.Vec{X: 12345, Y: 12345}
	if p.Contains(nav.Vec{X: 12345, Y: 12345}) {
		t.Fatal("mutating Points() result changed the perimeter")
	}
}

func TestPerimeter_ChooseAlwaysFromSet(t *testing.T) {
	p := NewPerimeter(1024, 768, 50, 50)
	rng := rand.New(rand.NewSource(3)) // #nosec G404 -- test determinism
	seen := map[nav.Vec]int{}
	for i := 0; i < 20000; i++ {
		pt := p.Choose(rng)
		if !p.Contains(pt) {
			t.Fatalf("chose %v which is not a perimeter point", pt)
		}
		seen[pt]++
	}
	if len(seen) != p.Len() {
		t.Fatalf("expected every point to be chosen at least once, saw %d of %d", len(seen), p.Len())
	}
}

func TestPerimeter_EmptyInterval(t *testing.T) {
	p := NewPerimeter(100, 100, 0, 10)
	if p.Len() != 0 {
		t.Fatalf("expected no points, got %d", p.Len())
	}
	if pt := p.Choose(rand.New(rand.NewSource(1))); pt != (nav.Vec{}) { // #nosec G404 -- test
		t.Fatalf("expected zero vector from empty perimeter, got %v", pt)
	}
}
