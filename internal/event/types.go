// internal/event/types.go
package event

const (
	EnemySpawned    EventType = "EnemySpawned"    // Враг появился
	EnemyKilled     EventType = "EnemyKilled"     // Враг уничтожен, награда выдана
	EnemyEscaped    EventType = "EnemyEscaped"    // Враг дошёл до конца пути
	TowerPlaced     EventType = "TowerPlaced"     // Башня построена
	ProjectileFired EventType = "ProjectileFired" // Башня выстрелила
	WaveCompleted   EventType = "WaveCompleted"   // Волна заспавнена, сложность повышена
	GameOver        EventType = "GameOver"        // Жизни закончились
)
