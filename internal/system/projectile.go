// internal/system/projectile.go
package system

import (
	"go-path-defense/internal/component"
	"go-path-defense/internal/entity"
	"go-path-defense/internal/types"
	"math"
)

// ProjectileSystem управляет движением снарядов и нанесением урона.
// Projectiles home on the target's current position every tick.
type ProjectileSystem struct {
	ecs *entity.ECS
}

func NewProjectileSystem(ecs *entity.ECS) *ProjectileSystem {
	return &ProjectileSystem{ecs: ecs}
}

// UpdateOwned advances every projectile fired by towerID.
func (s *ProjectileSystem) UpdateOwned(towerID types.EntityID) {
	tower, ok := s.ecs.Towers[towerID]
	if !ok || len(tower.Projectiles) == 0 {
		return
	}

	owned := make([]types.EntityID, len(tower.Projectiles))
	copy(owned, tower.Projectiles)
	for _, id := range owned {
		s.step(id)
	}
}

func (s *ProjectileSystem) step(id types.EntityID) {
	proj, ok := s.ecs.Projectiles[id]
	pos, hasPos := s.ecs.Positions[id]
	if !ok || !hasPos {
		s.ecs.RemoveProjectile(id)
		return
	}

	// Цель пропала или уже мертва: снаряд исчезает без эффекта
	targetPos, targetExists := s.ecs.Positions[proj.TargetID]
	if !targetExists || !s.ecs.IsEnemyAlive(proj.TargetID) {
		s.ecs.RemoveProjectile(id)
		return
	}

	dx := targetPos.X - pos.X
	dy := targetPos.Y - pos.Y
	dist := math.Sqrt(dx*dx + dy*dy)

	if dist < proj.Speed {
		s.hitTarget(id, proj)
		return
	}
	pos.X += (dx / dist) * proj.Speed
	pos.Y += (dy / dist) * proj.Speed
}

func (s *ProjectileSystem) hitTarget(projectileID types.EntityID, proj *component.Projectile) {
	if ApplyDamage(s.ecs, proj.TargetID, proj.Damage) && proj.DoT != nil {
		ApplyDoT(s.ecs, proj.TargetID, proj.DoT)
	}
	s.ecs.RemoveProjectile(projectileID)
}
