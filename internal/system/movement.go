// internal/system/movement.go
package system

import (
	"go-path-defense/internal/entity"
	"go-path-defense/internal/event"
	"go-path-defense/internal/types"
	"go-path-defense/pkg/route"
	"math"
)

// MovementSystem двигает врагов по маршруту, по одному вейпоинту за тик.
type MovementSystem struct {
	ecs             *entity.ECS
	route           *route.Path
	eventDispatcher *event.Dispatcher
}

func NewMovementSystem(ecs *entity.ECS, path *route.Path, eventDispatcher *event.Dispatcher) *MovementSystem {
	return &MovementSystem{ecs: ecs, route: path, eventDispatcher: eventDispatcher}
}

// Update advances every enemy by its own speed. Enemies that reach the
// final waypoint escape: they cost one life, lose any pending DoT and
// leave the world without a bounty.
func (s *MovementSystem) Update() {
	var escaped []types.EntityID

	for _, id := range s.ecs.EnemyOrder {
		pos, hasPos := s.ecs.Positions[id]
		vel, hasVel := s.ecs.Velocities[id]
		follower, hasPath := s.ecs.Paths[id]
		if !hasPos || !hasVel || !hasPath {
			continue
		}

		if follower.Index < s.route.LastIndex() {
			target := s.route.At(follower.Index + 1)
			dx := target.X - pos.X
			dy := target.Y - pos.Y
			dist := math.Sqrt(dx*dx + dy*dy)

			if dist < vel.Speed {
				pos.X = target.X
				pos.Y = target.Y
				follower.Index++
			} else {
				pos.X += (dx / dist) * vel.Speed
				pos.Y += (dy / dist) * vel.Speed
			}
		}

		if follower.Index >= s.route.LastIndex() {
			escaped = append(escaped, id)
		}
	}

	for _, id := range escaped {
		s.escape(id)
	}
}

func (s *MovementSystem) escape(id types.EntityID) {
	data := event.EnemyData{ID: id}
	if enemy, ok := s.ecs.Enemies[id]; ok {
		data.Variant = enemy.Variant
	}

	s.ecs.RemoveEnemy(id)
	if s.ecs.Economy.Lives > 0 {
		s.ecs.Economy.Lives--
	}
	s.eventDispatcher.Dispatch(event.Event{Type: event.EnemyEscaped, Data: data})
}
