// component/movement.go
package component

import "go-path-defense/pkg/route"

// Position — компонент позиции
type Position struct {
	X, Y float64
}

// Point converts the position into a route point.
func (p Position) Point() route.Point {
	return route.Point{X: p.X, Y: p.Y}
}

// Velocity — скорость в единицах за тик, фиксируется при спавне
type Velocity struct {
	Speed float64
}

// PathFollower tracks progress along the route. Index is the last waypoint
// reached; the enemy is walking towards Index+1.
type PathFollower struct {
	Index int
}
