package wave

import "time"

// Archetype tags an enemy variant. Stats live in a per-archetype table owned by
// the caller, so behaviour is selected by tag rather than by type.
type Archetype int

const (
	Normal Archetype = iota // baseline walker
	Fast                    // quick, fragile
	Strong                  // slow, tough, breaks walls
	archetypeCount
)

// Archetypes lists every archetype in spawn order.
var Archetypes = [archetypeCount]Archetype{Normal, Fast, Strong}

func (a Archetype) String() string {
	switch a {
	case Normal:
		return "normal"
	case Fast:
		return "fast"
	case Strong:
		return "strong"
	default:
		return "unknown"
	}
}

// Settings controls wave size, pacing and archetype mix. Shares are whole
// percentages so the floor of size*share/100 is exact.
type Settings struct {
	Base      int           // enemies in wave 1
	Increment int           // extra enemies per subsequent wave
	Cooldown  time.Duration // pause between a cleared wave and the next

	NormalStart int // normal share before the per-wave step
	NormalStep  int // normal share lost per wave
	NormalFloor int // normal share never drops below this
	FastStart   int
	FastStep    int
	FastCeil    int
	StrongStep  int
	StrongCeil  int
}

// DefaultSettings returns the classic tuning: 10 enemies, +5 per wave, 5s
// cooldown, normal 90%→40%, fast 10%→40%, strong 0%→20%.
func DefaultSettings() Settings {
	return Settings{
		Base:        10,
		Increment:   5,
		Cooldown:    5 * time.Second,
		NormalStart: 90,
		NormalStep:  5,
		NormalFloor: 40,
		FastStart:   10,
		FastStep:    3,
		FastCeil:    40,
		StrongStep:  2,
		StrongCeil:  20,
	}
}

// SizeFor returns the number of enemies in wave w (w >= 1).
func SizeFor(s Settings, w int) int {
	n := s.Base + (w-1)*s.Increment
	if n < 0 {
		return 0
	}
	return n
}

// Shares returns the normal, fast and strong percentages for wave w. The
// strong share is informational; strong counts absorb the rounding remainder.
func Shares(s Settings, w int) (normal, fast, strong int) {
	normal = clampPct(max(s.NormalStart-w*s.NormalStep, s.NormalFloor))
	fast = clampPct(min(s.FastStart+w*s.FastStep, s.FastCeil))
	strong = clampPct(min(w*s.StrongStep, s.StrongCeil))
	return normal, fast, strong
}

func clampPct(p int) int {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

// Composition is the archetype breakdown of one wave.
type Composition struct {
	Normal int
	Fast   int
	Strong int
}

// CompositionFor splits SizeFor(s, w) into archetype counts. Normal and fast
// are floored; strong takes whatever is left so the total is always exact.
func CompositionFor(s Settings, w int) Composition {
	total := SizeFor(s, w)
	np, fp, _ := Shares(s, w)
	normal := total * np / 100
	fast := total * fp / 100
	if normal+fast > total {
		// Only reachable when shares sum past 100; keep counts non-negative.
		fast = total - normal
	}
	return Composition{Normal: normal, Fast: fast, Strong: total - normal - fast}
}

// Total returns the number of enemies in the composition.
func (c Composition) Total() int { return c.Normal + c.Fast + c.Strong }

// Count returns how many enemies of archetype a the composition holds.
func (c Composition) Count(a Archetype) int {
	switch a {
	case Normal:
		return c.Normal
	case Fast:
		return c.Fast
	case Strong:
		return c.Strong
	default:
		return 0
	}
}

// Each calls fn once per enemy, normals first, then fast, then strong.
func (c Composition) Each(fn func(Archetype)) {
	for _, a := range Archetypes {
		for i := 0; i < c.Count(a); i++ {
			fn(a)
		}
	}
}
