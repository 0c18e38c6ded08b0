package app

import (
	"go-path-defense/internal/component"
	"go-path-defense/internal/defs"
	"go-path-defense/internal/types"
	"image/color"
)

// EnemyView is the read-only picture of one enemy.
type EnemyView struct {
	ID        types.EntityID
	X, Y      float64
	Health    int
	MaxHealth int
	Variant   defs.EnemyVariant
	Radius    float64
	Color     color.RGBA
}

// TowerView is the read-only picture of one tower.
type TowerView struct {
	ID        types.EntityID
	DefID     defs.TowerID
	X, Y      float64
	Range     float64
	Color     color.RGBA
	ShowRange bool
}

// ProjectileView is the read-only picture of one projectile.
type ProjectileView struct {
	X, Y  float64
	Color color.RGBA
}

// Snapshot is everything a front-end needs to draw one frame. It shares no
// memory with the simulation.
type Snapshot struct {
	Tick        uint64
	Enemies     []EnemyView
	Towers      []TowerView
	Projectiles []ProjectileView
	Economy     component.Economy
	Selected    defs.TowerID
	GameOver    bool
	Stats       Stats
}

// Snapshot builds a Snapshot. Enemies come in spawn order, towers and
// their projectiles in placement order.
func (g *Game) Snapshot() Snapshot {
	ecs := g.ECS
	snap := Snapshot{
		Tick:        ecs.Tick,
		Enemies:     make([]EnemyView, 0, len(ecs.EnemyOrder)),
		Towers:      make([]TowerView, 0, len(ecs.TowerOrder)),
		Projectiles: make([]ProjectileView, 0, len(ecs.Projectiles)),
		Economy:     *ecs.Economy,
		Selected:    g.selectedTower,
		GameOver:    g.IsGameOver(),
		Stats:       *g.Stats,
	}

	for _, id := range ecs.EnemyOrder {
		pos, hasPos := ecs.Positions[id]
		health, hasHealth := ecs.Healths[id]
		enemy, isEnemy := ecs.Enemies[id]
		if !hasPos || !hasHealth || !isEnemy {
			continue
		}
		view := EnemyView{
			ID:        id,
			X:         pos.X,
			Y:         pos.Y,
			Health:    health.Value,
			MaxHealth: health.Max,
			Variant:   enemy.Variant,
		}
		if r, ok := ecs.Renderables[id]; ok {
			view.Radius = float64(r.Radius)
			view.Color = r.Color
		}
		snap.Enemies = append(snap.Enemies, view)
	}

	for _, id := range ecs.TowerOrder {
		pos, hasPos := ecs.Positions[id]
		tower, isTower := ecs.Towers[id]
		combat, hasCombat := ecs.Combats[id]
		if !hasPos || !isTower || !hasCombat {
			continue
		}
		view := TowerView{
			ID:        id,
			DefID:     tower.DefID,
			X:         pos.X,
			Y:         pos.Y,
			Range:     combat.Range,
			ShowRange: tower.ShowRange,
		}
		if r, ok := ecs.Renderables[id]; ok {
			view.Color = r.Color
		}
		snap.Towers = append(snap.Towers, view)

		for _, projID := range tower.Projectiles {
			projPos, ok := ecs.Positions[projID]
			proj, isProj := ecs.Projectiles[projID]
			if !ok || !isProj {
				continue
			}
			snap.Projectiles = append(snap.Projectiles, ProjectileView{X: projPos.X, Y: projPos.Y, Color: proj.Color})
		}
	}
	return snap
}
