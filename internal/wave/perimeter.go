package wave

import "github.com/Garsondee/Horde-Sense/internal/nav"

// Rand is the subset of *rand.Rand used for spawn choices.
type Rand interface {
	Intn(n int) int
}

// Perimeter is the fixed set of spawn points just outside the map edges.
type Perimeter struct {
	points []nav.Vec
	set    map[nav.Vec]struct{}
}

// NewPerimeter samples points every interval pixels along each edge of a
// width×height map, pushed margin pixels outside it. Top and bottom get
// ceil(width/interval) points each; left and right get ceil(height/interval).
func NewPerimeter(width, height, interval, margin float64) *Perimeter {
	p := &Perimeter{set: make(map[nav.Vec]struct{})}
	if interval <= 0 {
		return p
	}
	for i := 0; float64(i)*interval < width; i++ {
		p.add(nav.Vec{X: float64(i) * interval, Y: -margin})
	}
	for i := 0; float64(i)*interval < width; i++ {
		p.add(nav.Vec{X: float64(i) * interval, Y: height + margin})
	}
	for i := 0; float64(i)*interval < height; i++ {
		p.add(nav.Vec{X: -margin, Y: float64(i) * interval})
	}
	for i := 0; float64(i)*interval < height; i++ {
		p.add(nav.Vec{X: width + margin, Y: float64(i) * interval})
	}
	return p
}

func (p *Perimeter) add(v nav.Vec) {
	p.points = append(p.points, v)
	p.set[v] = struct{}{}
}

// Len returns the number of spawn points.
func (p *Perimeter) Len() int { return len(p.points) }

// Points returns a copy of the spawn points in generation order.
func (p *Perimeter) Points() []nav.Vec {
	return append([]nav.Vec(nil), p.points...)
}

// Contains reports whether v is one of the spawn points.
func (p *Perimeter) Contains(v nav.Vec) bool {
	_, ok := p.set[v]
	return ok
}

// Choose picks a spawn point uniformly at random. Calls are independent, so
// simultaneous spawns may share a point.
func (p *Perimeter) Choose(rng Rand) nav.Vec {
	if len(p.points) == 0 {
		return nav.Vec{}
	}
	return p.points[rng.Intn(len(p.points))]
}
