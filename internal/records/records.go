// Package records persists the best run across sessions using gdata. Without
// a usable data directory it keeps records in memory only.
package records

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"

	"github.com/Garsondee/Horde-Sense/internal/arena"
)

const (
	recordsObject   = "records"
	recordsProperty = "best"
)

// Record is one finished run.
type Record struct {
	Wave  int   `yaml:"wave"`
	Kills int   `yaml:"kills"`
	Ticks int   `yaml:"ticks"`
	Seed  int64 `yaml:"seed"`
}

// FromReport extracts the ranked fields of a run report.
func FromReport(r arena.Report) Record {
	return Record{Wave: r.Wave, Kills: r.TotalKills(), Ticks: r.Ticks, Seed: r.Seed}
}

// Beats ranks by wave reached, then kills, then survival time.
func (r Record) Beats(o Record) bool {
	if r.Wave != o.Wave {
		return r.Wave > o.Wave
	}
	if r.Kills != o.Kills {
		return r.Kills > o.Kills
	}
	return r.Ticks > o.Ticks
}

// Store holds the best record. A nil manager means degraded in-memory mode.
type Store struct {
	manager *gdata.Manager
	best    Record
}

// Open opens the gdata store for appName, falling back to memory when the
// platform data directory is unavailable.
func Open(appName string) *Store {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		log.Printf("[Records] Warning: gdata unavailable: %v (records kept in memory)", err)
		m = nil
	}
	s, err := NewStore(m)
	if err != nil {
		log.Printf("[Records] Warning: %v (starting with no record)", err)
	}
	return s
}

// NewStore wraps m and loads the saved record. The store is usable even when
// loading fails.
func NewStore(m *gdata.Manager) (*Store, error) {
	s := &Store{manager: m}
	if err := s.Load(); err != nil {
		return s, err
	}
	return s, nil
}

// Persistent reports whether records survive the process.
func (s *Store) Persistent() bool { return s.manager != nil }

// Load reads the saved record, if any.
func (s *Store) Load() error {
	s.best = Record{}
	if s.manager == nil || !s.manager.ObjectPropExists(recordsObject, recordsProperty) {
		return nil
	}
	data, err := s.manager.LoadObjectProp(recordsObject, recordsProperty)
	if err != nil {
		return fmt.Errorf("failed to load record: %w", err)
	}
	var r Record
	if err := yaml.Unmarshal(data, &r); err != nil {
		return fmt.Errorf("failed to unmarshal record: %w", err)
	}
	s.best = r
	return nil
}

// Best returns the best record so far (zero if none).
func (s *Store) Best() Record { return s.best }

// Submit keeps r if it beats the current best and persists it. improved is
// true whenever r became the new best, even if saving failed.
func (s *Store) Submit(r Record) (improved bool, err error) {
	if !r.Beats(s.best) {
		return false, nil
	}
	s.best = r
	if s.manager == nil {
		return true, nil
	}
	data, err := yaml.Marshal(r)
	if err != nil {
		return true, fmt.Errorf("failed to marshal record: %w", err)
	}
	if err := s.manager.SaveObjectProp(recordsObject, recordsProperty, data); err != nil {
		return true, fmt.Errorf("failed to save record: %w", err)
	}
	log.Printf("[Records] New best: wave %d, %d kills", r.Wave, r.Kills)
	return true, nil
}
