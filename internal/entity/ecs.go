package entity

import (
	"go-path-defense/internal/component"
	"go-path-defense/internal/types"
)

// ECS keeps every component in its own map. Maps iterate in random order,
// so EnemyOrder and TowerOrder record spawn and placement order for the
// systems that must be deterministic.
type ECS struct {
	Tick        uint64
	NextID      types.EntityID
	Positions   map[types.EntityID]*component.Position
	Velocities  map[types.EntityID]*component.Velocity
	Paths       map[types.EntityID]*component.PathFollower
	Healths     map[types.EntityID]*component.Health
	Renderables map[types.EntityID]*component.Renderable
	Towers      map[types.EntityID]*component.Tower
	Combats     map[types.EntityID]*component.Combat
	Projectiles map[types.EntityID]*component.Projectile
	Enemies     map[types.EntityID]*component.Enemy
	DoTs        map[types.EntityID]*component.DoTContainer
	EnemyOrder  []types.EntityID
	TowerOrder  []types.EntityID
	Economy     *component.Economy
	Phase       component.Phase
}

func NewECS() *ECS {
	return &ECS{
		NextID:      1,
		Positions:   make(map[types.EntityID]*component.Position),
		Velocities:  make(map[types.EntityID]*component.Velocity),
		Paths:       make(map[types.EntityID]*component.PathFollower),
		Healths:     make(map[types.EntityID]*component.Health),
		Renderables: make(map[types.EntityID]*component.Renderable),
		Towers:      make(map[types.EntityID]*component.Tower),
		Combats:     make(map[types.EntityID]*component.Combat),
		Projectiles: make(map[types.EntityID]*component.Projectile),
		Enemies:     make(map[types.EntityID]*component.Enemy),
		DoTs:        make(map[types.EntityID]*component.DoTContainer),
		Economy:     component.NewEconomy(),
		Phase:       component.PhaseRunning,
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// AddEnemy registers an enemy that already has its components set and
// appends it to the spawn order.
func (ecs *ECS) AddEnemy(id types.EntityID) {
	ecs.EnemyOrder = append(ecs.EnemyOrder, id)
}

// AddTower registers a tower in placement order.
func (ecs *ECS) AddTower(id types.EntityID) {
	ecs.TowerOrder = append(ecs.TowerOrder, id)
}

// IsEnemyAlive reports whether id is an enemy still in the world with
// positive health. Dead enemies waiting for cleanup are not alive.
func (ecs *ECS) IsEnemyAlive(id types.EntityID) bool {
	if _, ok := ecs.Enemies[id]; !ok {
		return false
	}
	health, ok := ecs.Healths[id]
	return ok && health.Value > 0
}

// RemoveEnemy deletes an enemy and everything attached to it, including
// pending DoT. This is the only place enemies leave the world.
func (ecs *ECS) RemoveEnemy(id types.EntityID) {
	delete(ecs.Positions, id)
	delete(ecs.Velocities, id)
	delete(ecs.Paths, id)
	delete(ecs.Healths, id)
	delete(ecs.Renderables, id)
	delete(ecs.Enemies, id)
	delete(ecs.DoTs, id)
	ecs.EnemyOrder = removeID(ecs.EnemyOrder, id)
}

// AddProjectile creates a projectile owned by ownerID at pos.
func (ecs *ECS) AddProjectile(ownerID types.EntityID, proj *component.Projectile, pos component.Position) types.EntityID {
	id := ecs.NewEntity()
	proj.OwnerID = ownerID
	ecs.Positions[id] = &pos
	ecs.Projectiles[id] = proj
	if tower, ok := ecs.Towers[ownerID]; ok {
		tower.Projectiles = append(tower.Projectiles, id)
	}
	return id
}

// RemoveProjectile deletes a projectile and unlinks it from its tower.
func (ecs *ECS) RemoveProjectile(id types.EntityID) {
	proj, ok := ecs.Projectiles[id]
	if ok {
		if tower, hasTower := ecs.Towers[proj.OwnerID]; hasTower {
			tower.Projectiles = removeID(tower.Projectiles, id)
		}
	}
	delete(ecs.Positions, id)
	delete(ecs.Projectiles, id)
	delete(ecs.Renderables, id)
}

// PendingDoTTicks returns how many DoT applications are scheduled on id.
func (ecs *ECS) PendingDoTTicks(id types.EntityID) int {
	return ecs.DoTs[id].Pending()
}

// EnemyCount returns the number of enemies in the world.
func (ecs *ECS) EnemyCount() int {
	return len(ecs.EnemyOrder)
}

func removeID(ids []types.EntityID, id types.EntityID) []types.EntityID {
	for i, v := range ids {
		if v == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}
