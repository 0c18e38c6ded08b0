// internal/defs/waves.go
package defs

import "go-path-defense/internal/config"

// WaveDefinition describes the quota and enemy stats in force for one level.
type WaveDefinition struct {
	Level      int     // Номер уровня
	Quota      int     // Количество врагов в волне
	Speed      float64 // Скорость новых врагов
	BaseHealth int     // Базовое здоровье новых врагов
}

// FirstWave is the wave in force at game start.
var FirstWave = WaveDefinition{
	Level:      config.StartLevel,
	Quota:      config.StartEnemiesPerWave,
	Speed:      config.StartEnemySpeed,
	BaseHealth: config.StartEnemyHealth,
}

// Next returns the wave that follows w: one more level, two more enemies,
// a little faster and tougher.
func (w WaveDefinition) Next() WaveDefinition {
	level := w.Level + 1
	return WaveDefinition{
		Level:      level,
		Quota:      w.Quota + config.EnemiesIncrementPerWave,
		Speed:      w.Speed + config.EnemySpeedIncrement,
		BaseHealth: w.BaseHealth + config.EnemyHealthPerLevel*(level-1),
	}
}
