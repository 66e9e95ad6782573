package event

import (
	"github.com/Garsondee/Horde-Sense/internal/nav"
	"github.com/Garsondee/Horde-Sense/internal/wave"
)

const (
	WaveStarted      Type = "WaveStarted"      // WaveData
	WaveCompleted    Type = "WaveCompleted"    // WaveData
	EnemySpawned     Type = "EnemySpawned"     // EnemyData
	EnemyKilled      Type = "EnemyKilled"      // EnemyData
	WallDamaged      Type = "WallDamaged"      // WallData
	WallDestroyed    Type = "WallDestroyed"    // WallData
	PowerupDropped   Type = "PowerupDropped"   // PowerupData
	PowerupCollected Type = "PowerupCollected" // PowerupData
	PlayerDied       Type = "PlayerDied"       // PlayerData
)

type WaveData struct {
	Wave        int
	Tick        int
	Composition wave.Composition
}

type EnemyData struct {
	ID        int
	Archetype wave.Archetype
	Pos       nav.Vec
	Tick      int
}

type WallData struct {
	Cell       nav.Cell
	Durability int // remaining; 0 once destroyed
	Tick       int
}

type PowerupData struct {
	Kind string
	Pos  nav.Vec
	Tick int
}

type PlayerData struct {
	Wave int
	Tick int
}
