package nav

import "testing"

func TestGrid_UnblockedByDefault(t *testing.T) {
	g := NewGrid(10, 8, 32)
	if g.IsBlocked(Cell{0, 0}) {
		t.Fatal("empty grid should have no blocked cells")
	}
	if g.IsBlocked(Cell{9, 7}) {
		t.Fatal("corner cell should not be blocked")
	}
	if g.BlockedCount() != 0 {
		t.Fatalf("expected 0 blocked cells, got %d", g.BlockedCount())
	}
}

func TestGrid_OOB_IsBlocked(t *testing.T) {
	g := NewGrid(10, 8, 32)
	for _, c := range []Cell{{-1, 0}, {0, -1}, {10, 0}, {0, 8}, {99, 99}} {
		if !g.IsBlocked(c) {
			t.Fatalf("out-of-bounds cell %v should be blocked", c)
		}
	}
}

func TestGrid_ToCell(t *testing.T) {
	g := NewGrid(10, 8, 32)
	// 40/32=1, 70/32=2
	if c := g.ToCell(Vec{40, 70}); c != (Cell{1, 2}) {
		t.Fatalf("expected (1,2) got %v", c)
	}
	// Exactly on a boundary belongs to the next cell.
	if c := g.ToCell(Vec{64, 0}); c != (Cell{2, 0}) {
		t.Fatalf("expected (2,0) got %v", c)
	}
	// Left of the map floors to -1, not 0.
	if c := g.ToCell(Vec{-10, -50}); c != (Cell{-1, -2}) {
		t.Fatalf("expected (-1,-2) got %v", c)
	}
}

func TestGrid_CellCenter(t *testing.T) {
	g := NewGrid(10, 8, 32)
	// 2*32+16=80, 3*32+16=112
	if p := g.CellCenter(Cell{2, 3}); p != (Vec{80, 112}) {
		t.Fatalf("expected (80,112) got %v", p)
	}
	if c := g.ToCell(g.CellCenter(Cell{7, 5})); c != (Cell{7, 5}) {
		t.Fatalf("centre should map back to its own cell, got %v", c)
	}
}

func TestGrid_RebuildReplacesMask(t *testing.T) {
	g := NewGrid(5, 5, 16)
	g.Rebuild(map[Cell]struct{}{{1, 1}: {}, {2, 2}: {}})
	if !g.IsBlocked(Cell{1, 1}) || !g.IsBlocked(Cell{2, 2}) {
		t.Fatal("rebuilt walls should be blocked")
	}
	g.Rebuild(map[Cell]struct{}{{3, 3}: {}})
	if g.IsBlocked(Cell{1, 1}) {
		t.Fatal("wall removed from the set should be cleared")
	}
	if !g.IsBlocked(Cell{3, 3}) {
		t.Fatal("new wall should be blocked")
	}
	if g.BlockedCount() != 1 {
		t.Fatalf("expected 1 blocked cell, got %d", g.BlockedCount())
	}
}

func TestGrid_RebuildIgnoresOutOfRangeWalls(t *testing.T) {
	g := NewGrid(3, 3, 16)
	g.Rebuild(map[Cell]struct{}{{-1, 0}: {}, {5, 5}: {}, {1, 1}: {}})
	if g.BlockedCount() != 1 {
		t.Fatalf("expected only the in-range wall, got %d blocked", g.BlockedCount())
	}
}

func TestGrid_RebuildIdempotent(t *testing.T) {
	walls := map[Cell]struct{}{{0, 0}: {}, {4, 1}: {}, {2, 3}: {}}
	g := NewGrid(6, 5, 16)
	g.Rebuild(walls)
	first := append([]bool(nil), g.blocked...)
	g.Rebuild(walls)
	for i := range first {
		if first[i] != g.blocked[i] {
			t.Fatalf("mask differs at index %d after second rebuild", i)
		}
	}
}

func TestGrid_RebuildBumpsVersion(t *testing.T) {
	g := NewGrid(4, 4, 16)
	v := g.Version()
	g.Rebuild(nil)
	if g.Version() != v+1 {
		t.Fatalf("expected version %d, got %d", v+1, g.Version())
	}
}

func TestGrid_Bounds(t *testing.T) {
	g := NewGrid(32, 24, 32)
	w, h := g.Bounds()
	if w != 1024 || h != 768 {
		t.Fatalf("expected 1024x768, got %.0fx%.0f", w, h)
	}
}
