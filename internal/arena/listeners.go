package arena

import (
	"fmt"

	"github.com/Garsondee/Horde-Sense/internal/event"
	"github.com/Garsondee/Horde-Sense/internal/nav"
	"github.com/Garsondee/Horde-Sense/internal/wave"
)

// navRebuilder keeps the nav grid in step with the world. Rebuild runs
// synchronously inside Dispatch, before the next route query.
type navRebuilder struct {
	grid  *nav.Grid
	world *World
	log   *EventLog
	tick  func() int
}

func (r *navRebuilder) OnEvent(e event.Event) {
	r.grid.Rebuild(r.world.WallSet())
	r.log.Add(r.tick(), "--", CatNav, "rebuild",
		fmt.Sprintf("version %d, %d blocked", r.grid.Version(), r.grid.BlockedCount()), float64(r.grid.Version()))
}

var loggedEvents = []event.Type{
	event.WaveStarted, event.WaveCompleted, event.EnemySpawned, event.EnemyKilled,
	event.WallDamaged, event.WallDestroyed, event.PowerupDropped, event.PowerupCollected,
	event.PlayerDied,
}

// logWriter turns dispatched events into EventLog entries.
type logWriter struct {
	log *EventLog
}

func (w *logWriter) OnEvent(e event.Event) {
	switch d := e.Data.(type) {
	case event.WaveData:
		if e.Type == event.WaveStarted {
			c := d.Composition
			w.log.Add(d.Tick, "--", CatWave, "started",
				fmt.Sprintf("wave %d: %d enemies (normal=%d fast=%d strong=%d)", d.Wave, c.Total(), c.Normal, c.Fast, c.Strong),
				float64(d.Wave))
		} else {
			w.log.Add(d.Tick, "--", CatWave, "completed", fmt.Sprintf("wave %d cleared", d.Wave), float64(d.Wave))
		}
	case event.EnemyData:
		label := fmt.Sprintf("E%d", d.ID)
		if e.Type == event.EnemySpawned {
			w.log.AddVerbose(d.Tick, label, CatSpawn, "spawned",
				fmt.Sprintf("%s at (%.0f,%.0f)", d.Archetype, d.Pos.X, d.Pos.Y), 0)
		} else {
			w.log.Add(d.Tick, label, CatEnemy, "killed",
				fmt.Sprintf("%s at (%.0f,%.0f)", d.Archetype, d.Pos.X, d.Pos.Y), 0)
		}
	case event.WallData:
		key := "damaged"
		if e.Type == event.WallDestroyed {
			key = "destroyed"
		}
		w.log.Add(d.Tick, "--", CatWall, key,
			fmt.Sprintf("(%d,%d) durability=%d", d.Cell.Col, d.Cell.Row, d.Durability), float64(d.Durability))
	case event.PowerupData:
		key := "dropped"
		if e.Type == event.PowerupCollected {
			key = "collected"
		}
		w.log.Add(d.Tick, "P", CatPowerup, key, fmt.Sprintf("%s at (%.0f,%.0f)", d.Kind, d.Pos.X, d.Pos.Y), 0)
	case event.PlayerData:
		w.log.Add(d.Tick, "P", CatPlayer, "died", fmt.Sprintf("in wave %d", d.Wave), float64(d.Wave))
	}
}

var countedEvents = []event.Type{
	event.WaveStarted, event.EnemySpawned, event.EnemyKilled, event.WallDestroyed, event.PowerupCollected,
}

// counters accumulates the run report.
type counters struct {
	waveReached    int
	spawned        int
	kills          [len(wave.Archetypes)]int
	wallsDestroyed int
	powerups       int
	shots          int
	searches       int
	expanded       int
}

func (c *counters) OnEvent(e event.Event) {
	switch e.Type {
	case event.WaveStarted:
		c.waveReached = e.Data.(event.WaveData).Wave
	case event.EnemySpawned:
		c.spawned++
	case event.EnemyKilled:
		if a := e.Data.(event.EnemyData).Archetype; a >= 0 && int(a) < len(c.kills) {
			c.kills[a]++
		}
	case event.WallDestroyed:
		c.wallsDestroyed++
	case event.PowerupCollected:
		c.powerups++
	}
}
