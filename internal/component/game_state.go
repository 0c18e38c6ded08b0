package component

import (
	"go-path-defense/internal/config"
	"go-path-defense/internal/defs"
)

// Phase — фаза игры
type Phase int

const (
	PhaseRunning Phase = iota
	PhaseGameOver
)

// Economy is the single authoritative record of money, lives and wave
// progress. Only the simulation tick mutates it.
type Economy struct {
	Money           int
	Lives           int
	Level           int
	EnemiesPerWave  int
	EnemiesSpawned  int
	BaseEnemyHealth int
	EnemySpeed      float64
}

// NewEconomy returns the state every game starts from.
func NewEconomy() *Economy {
	e := &Economy{
		Money: config.StartMoney,
		Lives: config.StartLives,
	}
	e.ApplyWave(defs.FirstWave)
	return e
}

// Wave returns the wave parameters currently in force.
func (e *Economy) Wave() defs.WaveDefinition {
	return defs.WaveDefinition{
		Level:      e.Level,
		Quota:      e.EnemiesPerWave,
		Speed:      e.EnemySpeed,
		BaseHealth: e.BaseEnemyHealth,
	}
}

// ApplyWave switches to the given wave and resets the spawn counter.
func (e *Economy) ApplyWave(w defs.WaveDefinition) {
	e.Level = w.Level
	e.EnemiesPerWave = w.Quota
	e.EnemySpeed = w.Speed
	e.BaseEnemyHealth = w.BaseHealth
	e.EnemiesSpawned = 0
}

// WaveSpawned reports whether the whole quota of the current wave is out.
func (e *Economy) WaveSpawned() bool {
	return e.EnemiesSpawned >= e.EnemiesPerWave
}
