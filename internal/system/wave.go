// internal/system/wave.go
package system

import (
	"go-path-defense/internal/component"
	"go-path-defense/internal/defs"
	"go-path-defense/internal/entity"
	"go-path-defense/internal/event"
	"go-path-defense/internal/types"
	"go-path-defense/pkg/route"
	"log"
)

// WaveSystem spawns enemies on request of the spawn timer and raises the
// difficulty once a wave's quota has been spawned.
type WaveSystem struct {
	ecs             *entity.ECS
	route           *route.Path
	eventDispatcher *event.Dispatcher
}

func NewWaveSystem(ecs *entity.ECS, path *route.Path, eventDispatcher *event.Dispatcher) *WaveSystem {
	return &WaveSystem{
		ecs:             ecs,
		route:           path,
		eventDispatcher: eventDispatcher,
	}
}

// SpawnNext appends exactly one enemy at the start of the route. The last
// enemy of a wave is a Tank. Speed and health are read from the economy
// now; later scaling does not touch enemies already alive.
func (s *WaveSystem) SpawnNext() types.EntityID {
	econ := s.ecs.Economy
	variant := defs.EnemyStandard
	if econ.EnemiesSpawned+1 == econ.EnemiesPerWave {
		variant = defs.EnemyTank
	}
	econ.EnemiesSpawned++

	return s.spawnEnemy(variant, econ.BaseEnemyHealth, econ.EnemySpeed)
}

func (s *WaveSystem) spawnEnemy(variant defs.EnemyVariant, baseHealth int, speed float64) types.EntityID {
	def := defs.Enemy(variant)
	health := def.SpawnHealth(baseHealth)
	start := s.route.Start()

	id := s.ecs.NewEntity()
	s.ecs.Positions[id] = &component.Position{X: start.X, Y: start.Y}
	s.ecs.Velocities[id] = &component.Velocity{Speed: speed}
	s.ecs.Paths[id] = &component.PathFollower{Index: 0}
	s.ecs.Healths[id] = &component.Health{Value: health, Max: health}
	s.ecs.Renderables[id] = &component.Renderable{
		Color:  def.Visuals.Color,
		Radius: float32(def.Visuals.Radius),
	}
	s.ecs.Enemies[id] = &component.Enemy{
		Variant: variant,
		Bounty:  def.Bounty,
	}
	s.ecs.AddEnemy(id)

	s.eventDispatcher.Dispatch(event.Event{
		Type: event.EnemySpawned,
		Data: event.EnemyData{ID: id, Variant: variant, Bounty: def.Bounty},
	})
	return id
}

// Update scales difficulty when the current wave is fully spawned. The
// spawn counter is reset in the same step, so it fires once per wave.
func (s *WaveSystem) Update() bool {
	econ := s.ecs.Economy
	if !econ.WaveSpawned() {
		return false
	}

	econ.ApplyWave(econ.Wave().Next())
	log.Printf("Wave complete, entering level %d: %d enemies, speed %.1f, health %d",
		econ.Level, econ.EnemiesPerWave, econ.EnemySpeed, econ.BaseEnemyHealth)
	s.eventDispatcher.Dispatch(event.Event{Type: event.WaveCompleted, Data: event.WaveData{Level: econ.Level}})
	return true
}
