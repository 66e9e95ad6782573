package nav

// RouteCache throttles per-agent path recomputation. With recalcTicks <= 1
// every Route call runs a fresh search, which is the baseline behaviour.
type RouteCache struct {
	pf          *Pathfinder
	recalcTicks int
	entries     map[int]*routeEntry

	searches int
	hits     int
}

type routeEntry struct {
	path    Path
	goal    Cell
	version uint64
	age     int
}

// NewRouteCache wraps pf. recalcTicks is the maximum number of Route calls a
// cached path is reused for before a forced recompute.
func NewRouteCache(pf *Pathfinder, recalcTicks int) *RouteCache {
	return &RouteCache{
		pf:          pf,
		recalcTicks: recalcTicks,
		entries:     make(map[int]*routeEntry),
	}
}

// Enabled reports whether paths are reused across calls.
func (rc *RouteCache) Enabled() bool { return rc.recalcTicks > 1 }

// Route returns the remaining waypoints from start to goal for agent id.
// Call at most once per agent per tick. The returned slice must not be modified.
func (rc *RouteCache) Route(id int, start, goal Vec) Path {
	if !rc.Enabled() {
		rc.searches++
		return rc.pf.FindPath(start, goal)
	}

	g := rc.pf.grid
	goalCell := g.ToCell(goal)
	e, ok := rc.entries[id]
	if ok && e.version == g.Version() && e.goal == goalCell && e.age < rc.recalcTicks && len(e.path) > 0 {
		if rest, onRoute := advance(g, e.path, g.ToCell(start)); onRoute {
			e.path = rest
			e.age++
			if len(rest) > 0 {
				rc.hits++
				return rest
			}
		}
	}

	rc.searches++
	p := rc.pf.FindPath(start, goal)
	rc.entries[id] = &routeEntry{path: p, goal: goalCell, version: g.Version(), age: 1}
	return p
}

// advance drops waypoints the agent already stands on. The agent is on route
// if its cell is the first remaining waypoint's cell or adjacent to it.
func advance(g *Grid, p Path, at Cell) (Path, bool) {
	for len(p) > 0 && g.ToCell(p[0]) == at {
		p = p[1:]
	}
	if len(p) == 0 {
		return p, true
	}
	next := g.ToCell(p[0])
	dc, dr := next.Col-at.Col, next.Row-at.Row
	if dc < -1 || dc > 1 || dr < -1 || dr > 1 {
		return p, false
	}
	return p, true
}

// Forget drops the cached route for id, e.g. when the agent dies.
func (rc *RouteCache) Forget(id int) { delete(rc.entries, id) }

// Searches returns how many Route calls ran a search.
func (rc *RouteCache) Searches() int { return rc.searches }

// Hits returns how many Route calls were served from cache.
func (rc *RouteCache) Hits() int { return rc.hits }
