// internal/app/tower_management.go
package app

import (
	"go-path-defense/internal/component"
	"go-path-defense/internal/config"
	"go-path-defense/internal/defs"
	"go-path-defense/internal/event"
	"go-path-defense/internal/types"
	"go-path-defense/pkg/route"
	"log"
)

// SelectTowerType sets the tower type used by PlaceSelectedTower.
func (g *Game) SelectTowerType(id defs.TowerID) bool {
	if _, ok := defs.Tower(id); !ok {
		log.Printf("SelectTowerType: unknown tower %q", id)
		return false
	}
	g.selectedTower = id
	return true
}

// SelectedTowerType returns the currently selected tower type.
func (g *Game) SelectedTowerType() defs.TowerID {
	return g.selectedTower
}

// PlaceSelectedTower places the selected tower type at pos.
func (g *Game) PlaceSelectedTower(pos route.Point) bool {
	return g.TryPlaceTower(pos, g.selectedTower)
}

// TryPlaceTower attempts to place a tower of type id at pos. Rejections
// (funds, overlap, path clearance) change nothing and return false.
func (g *Game) TryPlaceTower(pos route.Point, id defs.TowerID) bool {
	def, ok := defs.Tower(id)
	if !ok {
		return false
	}
	if !g.canPlaceTower(pos, def) {
		return false
	}

	towerID := g.createTowerEntity(pos, def)
	g.ECS.Economy.Money -= def.Cost
	g.EventDispatcher.Dispatch(event.Event{Type: event.TowerPlaced, Data: towerID})
	return true
}

func (g *Game) canPlaceTower(pos route.Point, def defs.TowerDefinition) bool {
	if g.IsGameOver() {
		return false
	}
	if g.ECS.Economy.Money < def.Cost {
		return false
	}
	if g.isTowerOverlapping(pos) {
		return false
	}
	if g.isTowerOverlappingPath(pos) {
		return false
	}
	return true
}

// isTowerOverlapping reports whether pos is too close to an existing tower.
func (g *Game) isTowerOverlapping(pos route.Point) bool {
	for _, id := range g.ECS.TowerOrder {
		towerPos, ok := g.ECS.Positions[id]
		if !ok {
			continue
		}
		if towerPos.Point().Distance(pos) < config.TowerOverlapDistance {
			return true
		}
	}
	return false
}

// isTowerOverlappingPath reports whether a tower at pos would sit on the route.
func (g *Game) isTowerOverlappingPath(pos route.Point) bool {
	return g.Route.DistanceTo(pos) <= config.TowerPathClearance
}

func (g *Game) createTowerEntity(pos route.Point, def defs.TowerDefinition) types.EntityID {
	id := g.ECS.NewEntity()
	g.ECS.Positions[id] = &component.Position{X: pos.X, Y: pos.Y}
	g.ECS.Towers[id] = &component.Tower{DefID: def.ID}
	g.ECS.Combats[id] = &component.Combat{
		Range:       def.Range,
		Damage:      def.Damage,
		Cooldown:    0,
		MaxCooldown: def.Cooldown,
		DoT:         def.DoT,
	}
	g.ECS.Renderables[id] = &component.Renderable{
		Color:  def.Color,
		Radius: float32(config.TowerSize / 2),
	}
	g.ECS.AddTower(id)
	return id
}

// HoverAt shows the range ring of every tower under the cursor and hides
// the others.
func (g *Game) HoverAt(pos route.Point) {
	for _, id := range g.ECS.TowerOrder {
		tower := g.ECS.Towers[id]
		towerPos, ok := g.ECS.Positions[id]
		if tower == nil || !ok {
			continue
		}
		tower.ShowRange = towerPos.Point().Distance(pos) <= config.TowerHoverRadius
	}
}

// CanAfford reports whether the tower type is affordable right now.
func (g *Game) CanAfford(id defs.TowerID) bool {
	def, ok := defs.Tower(id)
	return ok && g.ECS.Economy.Money >= def.Cost
}

// CanPlaceAt reports whether TryPlaceTower would accept id at pos. Used for
// the placement preview.
func (g *Game) CanPlaceAt(pos route.Point, id defs.TowerID) bool {
	def, ok := defs.Tower(id)
	return ok && g.canPlaceTower(pos, def)
}
