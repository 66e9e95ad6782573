package arena

import (
	"math/rand"

	"github.com/Garsondee/Horde-Sense/internal/config"
	"github.com/Garsondee/Horde-Sense/internal/nav"
)

// Tile is one cell of the arena.
type Tile struct {
	Wall       bool
	Durability int // hit points; 0 on a wall means indestructible
}

// World is the authoritative wall layout. The nav grid is derived from it
// through WallSet and rebuilt when a wall falls.
type World struct {
	Cols     int
	Rows     int
	TileSize int
	Tiles    []Tile // row-major: index = row*Cols + col
}

// NewWorld creates an empty world.
func NewWorld(cols, rows, tileSize int) *World {
	return &World{Cols: cols, Rows: rows, TileSize: tileSize, Tiles: make([]Tile, cols*rows)}
}

func (w *World) inBounds(c nav.Cell) bool {
	return c.Col >= 0 && c.Col < w.Cols && c.Row >= 0 && c.Row < w.Rows
}

// At returns the tile at c, or nil out of bounds.
func (w *World) At(c nav.Cell) *Tile {
	if !w.inBounds(c) {
		return nil
	}
	return &w.Tiles[c.Row*w.Cols+c.Col]
}

// IsWall reports whether c holds a wall.
func (w *World) IsWall(c nav.Cell) bool {
	t := w.At(c)
	return t != nil && t.Wall
}

// IsBorder reports whether c lies on the outer ring.
func (w *World) IsBorder(c nav.Cell) bool {
	return c.Col == 0 || c.Row == 0 || c.Col == w.Cols-1 || c.Row == w.Rows-1
}

// SetWall places a wall with the given durability (0 = indestructible).
func (w *World) SetWall(c nav.Cell, durability int) {
	if t := w.At(c); t != nil {
		t.Wall = true
		t.Durability = durability
	}
}

// Clear removes any wall at c.
func (w *World) Clear(c nav.Cell) {
	if t := w.At(c); t != nil {
		*t = Tile{}
	}
}

// DamageWall removes dmg hit points from the wall at c. It returns the
// remaining durability and whether this call destroyed the wall. Empty cells
// and indestructible walls are unaffected.
func (w *World) DamageWall(c nav.Cell, dmg int) (remaining int, destroyed bool) {
	t := w.At(c)
	if t == nil || !t.Wall || t.Durability <= 0 {
		return 0, false
	}
	t.Durability -= dmg
	if t.Durability <= 0 {
		*t = Tile{}
		return 0, true
	}
	return t.Durability, false
}

// WallSet returns the current wall cells for nav.Grid.Rebuild.
func (w *World) WallSet() map[nav.Cell]struct{} {
	set := make(map[nav.Cell]struct{})
	for i, t := range w.Tiles {
		if t.Wall {
			set[nav.Cell{Col: i % w.Cols, Row: i / w.Cols}] = struct{}{}
		}
	}
	return set
}

// Walls returns wall cells in row-major order.
func (w *World) Walls() []nav.Cell {
	var out []nav.Cell
	for i, t := range w.Tiles {
		if t.Wall {
			out = append(out, nav.Cell{Col: i % w.Cols, Row: i / w.Cols})
		}
	}
	return out
}

// WallCount returns the number of wall cells.
func (w *World) WallCount() int {
	n := 0
	for _, t := range w.Tiles {
		if t.Wall {
			n++
		}
	}
	return n
}

// Center returns the centre cell, where the player starts.
func (w *World) Center() nav.Cell {
	return nav.Cell{Col: w.Cols / 2, Row: w.Rows / 2}
}

// obstacle shapes
const (
	shapeBlock = iota
	shapeHorizontal
	shapeVertical
	shapeCount
)

// GenerateWalls lays out the border ring, count random obstacles and the
// cleared safe zone. Interior walls get durability hit points; the border is
// indestructible. Obstacle anchors fall in [2, cols-3] x [2, rows-3] and lines
// stop short of the border.
func GenerateWalls(w *World, rng *rand.Rand, count, durability int) {
	for col := 0; col < w.Cols; col++ {
		w.SetWall(nav.Cell{Col: col, Row: 0}, 0)
		w.SetWall(nav.Cell{Col: col, Row: w.Rows - 1}, 0)
	}
	for row := 0; row < w.Rows; row++ {
		w.SetWall(nav.Cell{Col: 0, Row: row}, 0)
		w.SetWall(nav.Cell{Col: w.Cols - 1, Row: row}, 0)
	}

	for i := 0; i < count; i++ {
		x := 2 + rng.Intn(w.Cols-4)
		y := 2 + rng.Intn(w.Rows-4)
		switch rng.Intn(shapeCount) {
		case shapeBlock:
			for dy := 0; dy < 2; dy++ {
				for dx := 0; dx < 2; dx++ {
					w.SetWall(nav.Cell{Col: x + dx, Row: y + dy}, durability)
				}
			}
		case shapeHorizontal:
			length := 3 + rng.Intn(3)
			for dx := 0; dx < length && x+dx < w.Cols-1; dx++ {
				w.SetWall(nav.Cell{Col: x + dx, Row: y}, durability)
			}
		case shapeVertical:
			length := 3 + rng.Intn(3)
			for dy := 0; dy < length && y+dy < w.Rows-1; dy++ {
				w.SetWall(nav.Cell{Col: x, Row: y + dy}, durability)
			}
		}
	}

	half := config.SafeZone / 2
	c := w.Center()
	for row := c.Row - half; row <= c.Row+half; row++ {
		for col := c.Col - half; col <= c.Col+half; col++ {
			w.Clear(nav.Cell{Col: col, Row: row})
		}
	}
}
