// internal/system/status_effect.go
package system

import (
	"go-path-defense/internal/config"
	"go-path-defense/internal/entity"
)

// StatusEffectSystem ticks damage-over-time stacks inside the simulation
// pass. Effects live on the enemy, so removal cancels them.
type StatusEffectSystem struct {
	ecs *entity.ECS
}

func NewStatusEffectSystem(ecs *entity.ECS) *StatusEffectSystem {
	return &StatusEffectSystem{ecs: ecs}
}

// Update обрабатывает все активные эффекты в порядке спавна.
func (s *StatusEffectSystem) Update() {
	for _, id := range s.ecs.EnemyOrder {
		container, ok := s.ecs.DoTs[id]
		if !ok {
			continue
		}

		active := container.Instances[:0]
		for _, inst := range container.Instances {
			if !s.ecs.IsEnemyAlive(id) {
				break
			}
			inst.Countdown--
			if inst.Countdown <= 0 {
				ApplyDamage(s.ecs, id, inst.DamagePerTick)
				inst.TicksLeft--
				inst.Countdown = config.DoTTickInterval
			}
			if inst.TicksLeft > 0 {
				active = append(active, inst)
			}
		}

		if len(active) == 0 || !s.ecs.IsEnemyAlive(id) {
			delete(s.ecs.DoTs, id)
			continue
		}
		container.Instances = active
	}
}
