package nav

import (
	"container/heap"
	"math"
)

// Path is a sequence of world-space cell centres. Empty means no route.
type Path []Vec

// SearchStats describes the most recent FindPath call.
type SearchStats struct {
	Expanded int // nodes finalized
	Pushed   int // open-list insertions, including stale duplicates
	Found    bool
}

type neighbor struct {
	dc, dr   int
	cost     float64
	diagonal bool
}

var neighbors = [8]neighbor{
	{dc: 0, dr: 1, cost: 1},
	{dc: 1, dr: 0, cost: 1},
	{dc: 0, dr: -1, cost: 1},
	{dc: -1, dr: 0, cost: 1},
	{dc: 1, dr: 1, cost: math.Sqrt2, diagonal: true},
	{dc: -1, dr: 1, cost: math.Sqrt2, diagonal: true},
	{dc: 1, dr: -1, cost: math.Sqrt2, diagonal: true},
	{dc: -1, dr: -1, cost: math.Sqrt2, diagonal: true},
}

// --- open list ---

type openEntry struct {
	idx int
	f   float64
	seq uint64
}

type openList []openEntry

func (ol openList) Len() int { return len(ol) }
func (ol openList) Less(i, j int) bool {
	if ol[i].f != ol[j].f {
		return ol[i].f < ol[j].f
	}
	return ol[i].seq < ol[j].seq
}
func (ol openList) Swap(i, j int)       { ol[i], ol[j] = ol[j], ol[i] }
func (ol *openList) Push(x interface{}) { *ol = append(*ol, x.(openEntry)) }
func (ol *openList) Pop() interface{} {
	old := *ol
	n := old[len(old)-1]
	*ol = old[:len(old)-1]
	return n
}

// Pathfinder runs A* searches over a Grid. Scratch buffers are kept between
// calls and invalidated by a generation stamp, so repeated queries do not
// reallocate per-cell maps. Not safe for concurrent use.
type Pathfinder struct {
	grid *Grid

	gen    uint32
	seen   []uint32 // seen[i] == gen → gScore[i] and parent[i] are valid
	closed []uint32 // closed[i] == gen → finalized this search
	gScore []float64
	parent []int
	open   openList
	seq    uint64

	stats SearchStats
}

// NewPathfinder returns a pathfinder reading g. The grid is read, never mutated.
func NewPathfinder(g *Grid) *Pathfinder {
	return &Pathfinder{grid: g}
}

// Stats returns counters for the last FindPath call.
func (pf *Pathfinder) Stats() SearchStats { return pf.stats }

// FindPath returns world-coordinate waypoints from start to goal. The first
// waypoint is the cell after the start cell and the last is the goal cell's
// centre. Returns nil when either endpoint is out of bounds or blocked, when
// both lie in the same cell, or when no route exists.
//
// Heuristic is Manhattan distance even though diagonal steps cost √2, so the
// estimate can exceed the true remaining cost. Finalized nodes are never
// reopened. Equal f-scores pop in insertion order.
func (pf *Pathfinder) FindPath(start, goal Vec) Path {
	g := pf.grid
	pf.stats = SearchStats{}

	sc := g.ToCell(start)
	gc := g.ToCell(goal)
	if g.IsBlocked(sc) || g.IsBlocked(gc) {
		return nil
	}
	if sc == gc {
		return nil
	}

	pf.reset()
	si := g.index(sc)
	gi := g.index(gc)

	pf.seen[si] = pf.gen
	pf.gScore[si] = 0
	pf.parent[si] = -1
	pf.push(si, Manhattan(sc, gc))

	for pf.open.Len() > 0 {
		cur := heap.Pop(&pf.open).(openEntry)
		if pf.closed[cur.idx] == pf.gen {
			continue
		}
		if cur.idx == gi {
			pf.stats.Found = true
			return pf.reconstruct(si, gi)
		}
		pf.closed[cur.idx] = pf.gen
		pf.stats.Expanded++

		cc := Cell{Col: cur.idx % g.cols, Row: cur.idx / g.cols}
		for _, d := range neighbors {
			nc := Cell{Col: cc.Col + d.dc, Row: cc.Row + d.dr}
			if g.IsBlocked(nc) {
				continue
			}
			// No clipping through a wall corner.
			if d.diagonal {
				if g.IsBlocked(Cell{Col: cc.Col + d.dc, Row: cc.Row}) ||
					g.IsBlocked(Cell{Col: cc.Col, Row: cc.Row + d.dr}) {
					continue
				}
			}
			ni := g.index(nc)
			if pf.closed[ni] == pf.gen {
				continue
			}
			tentative := pf.gScore[cur.idx] + d.cost
			if pf.seen[ni] == pf.gen && tentative >= pf.gScore[ni] {
				continue
			}
			pf.seen[ni] = pf.gen
			pf.gScore[ni] = tentative
			pf.parent[ni] = cur.idx
			pf.push(ni, tentative+Manhattan(nc, gc))
		}
	}
	return nil
}

func (pf *Pathfinder) push(idx int, f float64) {
	pf.seq++
	pf.stats.Pushed++
	heap.Push(&pf.open, openEntry{idx: idx, f: f, seq: pf.seq})
}

// reset prepares scratch buffers for a new search, resizing if the grid changed shape.
func (pf *Pathfinder) reset() {
	n := pf.grid.cols * pf.grid.rows
	if len(pf.seen) != n {
		pf.seen = make([]uint32, n)
		pf.closed = make([]uint32, n)
		pf.gScore = make([]float64, n)
		pf.parent = make([]int, n)
		pf.gen = 0
	}
	pf.gen++
	if pf.gen == 0 {
		// Stamp wrapped; old stamps could collide.
		for i := range pf.seen {
			pf.seen[i] = 0
			pf.closed[i] = 0
		}
		pf.gen = 1
	}
	pf.open = pf.open[:0]
	pf.seq = 0
}

func (pf *Pathfinder) reconstruct(si, gi int) Path {
	g := pf.grid
	var cells []int
	for i := gi; i != si; i = pf.parent[i] {
		cells = append(cells, i)
	}
	path := make(Path, len(cells))
	for k, idx := range cells {
		c := Cell{Col: idx % g.cols, Row: idx / g.cols}
		path[len(cells)-1-k] = g.CellCenter(c)
	}
	return path
}

// Manhattan is the search heuristic: |Δcol| + |Δrow|.
func Manhattan(a, b Cell) float64 {
	return math.Abs(float64(a.Col-b.Col)) + math.Abs(float64(a.Row-b.Row))
}

// StepCost returns the octile cost between two cells: 1 per straight step,
// √2 per diagonal step. For adjacent cells this is the search's move cost.
func StepCost(a, b Cell) float64 {
	dx := math.Abs(float64(a.Col - b.Col))
	dy := math.Abs(float64(a.Row - b.Row))
	diag := math.Min(dx, dy)
	return diag*math.Sqrt2 + (math.Max(dx, dy) - diag)
}

// PathCost sums the step costs along p, starting from the cell containing start.
func PathCost(g *Grid, start Vec, p Path) float64 {
	prev := g.ToCell(start)
	total := 0.0
	for _, wp := range p {
		c := g.ToCell(wp)
		total += StepCost(prev, c)
		prev = c
	}
	return total
}
