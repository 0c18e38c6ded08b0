package system

import (
	"go-path-defense/internal/component"
	"go-path-defense/internal/config"
	"go-path-defense/internal/entity"
	"go-path-defense/internal/event"
	"go-path-defense/internal/types"
	"math"
)

// CombatSystem управляет атакой башен. Towers act in placement order; each
// one fires (or cools down) and then advances its own projectiles.
type CombatSystem struct {
	ecs              *entity.ECS
	eventDispatcher  *event.Dispatcher
	projectileSystem *ProjectileSystem
}

func NewCombatSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, projectileSystem *ProjectileSystem) *CombatSystem {
	return &CombatSystem{
		ecs:              ecs,
		eventDispatcher:  eventDispatcher,
		projectileSystem: projectileSystem,
	}
}

func (s *CombatSystem) Update() {
	for _, id := range s.ecs.TowerOrder {
		s.updateTower(id)
		s.projectileSystem.UpdateOwned(id)
	}
}

func (s *CombatSystem) updateTower(id types.EntityID) {
	combat, ok := s.ecs.Combats[id]
	if !ok {
		return
	}
	if combat.Cooldown > 0 {
		combat.Cooldown--
		return
	}

	towerPos, ok := s.ecs.Positions[id]
	if !ok {
		return
	}
	targetID, found := s.FindTarget(*towerPos, combat.Range)
	if !found {
		return
	}

	s.createProjectile(id, targetID, combat, towerPos)
	combat.Cooldown = combat.MaxCooldown
}

// FindTarget returns the first living enemy, in spawn order, within rng of
// pos. First-found is deliberate: it is not the nearest or the weakest.
func (s *CombatSystem) FindTarget(pos component.Position, rng float64) (types.EntityID, bool) {
	for _, enemyID := range s.ecs.EnemyOrder {
		if !s.ecs.IsEnemyAlive(enemyID) {
			continue
		}
		enemyPos, ok := s.ecs.Positions[enemyID]
		if !ok {
			continue
		}
		dx := enemyPos.X - pos.X
		dy := enemyPos.Y - pos.Y
		if math.Sqrt(dx*dx+dy*dy) <= rng {
			return enemyID, true
		}
	}
	return 0, false
}

func (s *CombatSystem) createProjectile(towerID, enemyID types.EntityID, combat *component.Combat, towerPos *component.Position) {
	proj := &component.Projectile{
		TargetID: enemyID,
		Speed:    config.ProjectileSpeed,
		Damage:   combat.Damage,
		DoT:      combat.DoT,
	}
	if renderable, ok := s.ecs.Renderables[towerID]; ok {
		proj.Color = renderable.Color
	}

	projID := s.ecs.AddProjectile(towerID, proj, *towerPos)
	s.ecs.Renderables[projID] = &component.Renderable{
		Color:  proj.Color,
		Radius: config.ProjectileRadius,
	}
	s.eventDispatcher.Dispatch(event.Event{Type: event.ProjectileFired, Data: towerID})
}
