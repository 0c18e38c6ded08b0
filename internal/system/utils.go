// internal/system/utils.go
package system

import (
	"go-path-defense/internal/component"
	"go-path-defense/internal/config"
	"go-path-defense/internal/defs"
	"go-path-defense/internal/entity"
	"go-path-defense/internal/types"
)

// ApplyDamage наносит урон живому врагу. Returns false when the target is
// gone or already dead, in which case nothing is changed.
func ApplyDamage(ecs *entity.ECS, entityID types.EntityID, damage int) bool {
	if !ecs.IsEnemyAlive(entityID) {
		return false
	}
	if damage < 0 {
		damage = 0
	}

	health := ecs.Healths[entityID]
	health.Value -= damage
	if health.Value < 0 {
		health.Value = 0
	}
	return true
}

// ApplyDoT schedules dot on a living enemy: Duration applications of
// DamagePerSecond, the first one a full second after impact.
func ApplyDoT(ecs *entity.ECS, entityID types.EntityID, dot *defs.DoTDef) bool {
	if dot == nil || dot.Duration <= 0 || dot.DamagePerSecond <= 0 {
		return false
	}
	if !ecs.IsEnemyAlive(entityID) {
		return false
	}

	container, ok := ecs.DoTs[entityID]
	if !ok {
		container = &component.DoTContainer{}
		ecs.DoTs[entityID] = container
	}
	container.Instances = append(container.Instances, component.DoTInstance{
		DamagePerTick: dot.DamagePerSecond,
		TicksLeft:     dot.Duration,
		Countdown:     config.DoTTickInterval,
	})
	return true
}
