package nav

import "math"

// Cell identifies one square of the navigation grid.
type Cell struct {
	Col, Row int
}

// Vec is a continuous world-space position in pixels.
type Vec struct {
	X, Y float64
}

// Sub returns v - o.
func (v Vec) Sub(o Vec) Vec { return Vec{v.X - o.X, v.Y - o.Y} }

// Add returns v + o.
func (v Vec) Add(o Vec) Vec { return Vec{v.X + o.X, v.Y + o.Y} }

// Scale returns v * k.
func (v Vec) Scale(k float64) Vec { return Vec{v.X * k, v.Y * k} }

// Len returns the Euclidean length of v.
func (v Vec) Len() float64 { return math.Hypot(v.X, v.Y) }

// Dist returns the distance between v and o.
func (v Vec) Dist(o Vec) float64 { return v.Sub(o).Len() }

// Normalize returns v scaled to unit length, or the zero vector.
func (v Vec) Normalize() Vec {
	l := v.Len()
	if l == 0 {
		return Vec{}
	}
	return Vec{v.X / l, v.Y / l}
}

// Grid is a fixed-size walkability mask where true = blocked.
// Row-major: index = row*cols + col.
type Grid struct {
	cols     int
	rows     int
	tileSize int
	blocked  []bool
	version  uint64
}

// NewGrid builds an all-open grid of cols×rows cells, each tileSize pixels wide.
func NewGrid(cols, rows, tileSize int) *Grid {
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	if tileSize <= 0 {
		tileSize = 1
	}
	return &Grid{
		cols:     cols,
		rows:     rows,
		tileSize: tileSize,
		blocked:  make([]bool, cols*rows),
	}
}

func (g *Grid) Cols() int     { return g.cols }
func (g *Grid) Rows() int     { return g.rows }
func (g *Grid) TileSize() int { return g.tileSize }

// Version increments on every Rebuild. Route caches compare it to detect layout changes.
func (g *Grid) Version() uint64 { return g.version }

// Bounds returns the pixel extent of the grid.
func (g *Grid) Bounds() (w, h float64) {
	return float64(g.cols * g.tileSize), float64(g.rows * g.tileSize)
}

// ToCell converts a world position to the cell containing it.
// Negative coordinates floor toward -inf, so points left of the map land in col -1.
func (g *Grid) ToCell(p Vec) Cell {
	ts := float64(g.tileSize)
	return Cell{Col: int(math.Floor(p.X / ts)), Row: int(math.Floor(p.Y / ts))}
}

// CellCenter returns the world-space centre of c.
func (g *Grid) CellCenter(c Cell) Vec {
	half := g.tileSize / 2
	return Vec{
		X: float64(c.Col*g.tileSize + half),
		Y: float64(c.Row*g.tileSize + half),
	}
}

// InBounds reports whether c lies inside the grid.
func (g *Grid) InBounds(c Cell) bool {
	return c.Col >= 0 && c.Row >= 0 && c.Col < g.cols && c.Row < g.rows
}

// IsBlocked returns true for obstructed cells and for any cell outside the grid.
func (g *Grid) IsBlocked(c Cell) bool {
	if !g.InBounds(c) {
		return true
	}
	return g.blocked[c.Row*g.cols+c.Col]
}

// Rebuild replaces the blocked mask with exactly the given wall set.
// Walls outside the grid are ignored. Must be called after any wall-set change
// and before the next path query that depends on it.
func (g *Grid) Rebuild(walls map[Cell]struct{}) {
	for i := range g.blocked {
		g.blocked[i] = false
	}
	for c := range walls {
		if g.InBounds(c) {
			g.blocked[c.Row*g.cols+c.Col] = true
		}
	}
	g.version++
}

// BlockedCount returns the number of blocked cells.
func (g *Grid) BlockedCount() int {
	n := 0
	for _, b := range g.blocked {
		if b {
			n++
		}
	}
	return n
}

// index is only valid for in-bounds cells.
func (g *Grid) index(c Cell) int { return c.Row*g.cols + c.Col }
