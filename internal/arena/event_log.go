package arena

import (
	"fmt"
	"strings"
)

// Log categories.
const (
	CatWave    = "wave"
	CatSpawn   = "spawn"
	CatEnemy   = "enemy"
	CatWall    = "wall"
	CatPlayer  = "player"
	CatPowerup = "powerup"
	CatNav     = "nav"
)

// LogEntry is one recorded event of a session.
type LogEntry struct {
	Tick     int
	Actor    string  // "E12", "P", or "--" for global events
	Category string  // wave, spawn, enemy, wall, player, powerup, nav
	Key      string  // event name within the category
	Value    string  // human-readable detail
	NumVal   float64 // optional numeric value for threshold checks
}

// String formats the entry as a fixed-width log line.
//
//	[T=0042] E7   enemy    killed           fast at (512,300)
func (e LogEntry) String() string {
	return fmt.Sprintf("[T=%04d] %-4s %-8s %-16s %s",
		e.Tick, e.Actor, e.Category, e.Key, e.Value)
}

// EventLog collects structured session events. It is unbounded; verbose mode
// adds per-tick entries such as route lengths.
type EventLog struct {
	entries []LogEntry
	verbose bool
}

// NewEventLog creates an EventLog.
func NewEventLog(verbose bool) *EventLog {
	return &EventLog{verbose: verbose}
}

// Verbose reports whether per-tick entries are kept.
func (l *EventLog) Verbose() bool { return l.verbose }

// Add records a new entry.
func (l *EventLog) Add(tick int, actor, category, key, value string, numVal float64) {
	l.entries = append(l.entries, LogEntry{
		Tick:     tick,
		Actor:    actor,
		Category: category,
		Key:      key,
		Value:    value,
		NumVal:   numVal,
	})
}

// AddVerbose records an entry only when verbose mode is on.
func (l *EventLog) AddVerbose(tick int, actor, category, key, value string, numVal float64) {
	if !l.verbose {
		return
	}
	l.Add(tick, actor, category, key, value, numVal)
}

// Entries returns all recorded entries.
func (l *EventLog) Entries() []LogEntry { return l.entries }

// Len returns the number of entries.
func (l *EventLog) Len() int { return len(l.entries) }

// Filter returns entries matching category and key. Empty strings match
// anything.
func (l *EventLog) Filter(category, key string) []LogEntry {
	var out []LogEntry
	for _, e := range l.entries {
		if category != "" && e.Category != category {
			continue
		}
		if key != "" && e.Key != key {
			continue
		}
		out = append(out, e)
	}
	return out
}

// FilterActor returns entries for one actor label.
func (l *EventLog) FilterActor(actor string) []LogEntry {
	var out []LogEntry
	for _, e := range l.entries {
		if e.Actor == actor {
			out = append(out, e)
		}
	}
	return out
}

// FilterTickRange returns entries within [from, to] inclusive.
func (l *EventLog) FilterTickRange(from, to int) []LogEntry {
	var out []LogEntry
	for _, e := range l.entries {
		if e.Tick >= from && e.Tick <= to {
			out = append(out, e)
		}
	}
	return out
}

// CountCategory returns how many entries match category and key.
func (l *EventLog) CountCategory(category, key string) int {
	n := 0
	for _, e := range l.entries {
		if (category == "" || e.Category == category) && (key == "" || e.Key == key) {
			n++
		}
	}
	return n
}

// LastOf returns the most recent entry matching category and key.
func (l *EventLog) LastOf(category, key string) (LogEntry, bool) {
	for i := len(l.entries) - 1; i >= 0; i-- {
		e := l.entries[i]
		if (category == "" || e.Category == category) && (key == "" || e.Key == key) {
			return e, true
		}
	}
	return LogEntry{}, false
}

// FirstTick returns the tick of the first entry matching category and key
// whose value contains substr, or -1.
func (l *EventLog) FirstTick(category, key, substr string) int {
	for _, e := range l.entries {
		if e.Category != category || e.Key != key {
			continue
		}
		if substr == "" || strings.Contains(e.Value, substr) {
			return e.Tick
		}
	}
	return -1
}

// HasEntry reports whether an entry matches category, key and value substring.
func (l *EventLog) HasEntry(category, key, valueSubstr string) bool {
	for _, e := range l.entries {
		if category != "" && e.Category != category {
			continue
		}
		if key != "" && e.Key != key {
			continue
		}
		if valueSubstr != "" && !strings.Contains(e.Value, valueSubstr) {
			continue
		}
		return true
	}
	return false
}

// Format returns the full log, one entry per line.
func (l *EventLog) Format() string {
	return formatEntries(l.entries)
}

// FormatRange returns the log restricted to [from, to].
func (l *EventLog) FormatRange(from, to int) string {
	return formatEntries(l.FilterTickRange(from, to))
}

func formatEntries(entries []LogEntry) string {
	var sb strings.Builder
	for _, e := range entries {
		sb.WriteString(e.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}
