// internal/defs/route.go
package defs

import (
	"go-path-defense/internal/config"
	"go-path-defense/pkg/route"
)

// Route is the single fixed path enemies follow. The repeated (600, 400)
// point is a zero-length segment and is walked through as a no-op.
var Route = route.MustNew(
	route.Point{X: 0, Y: 400},
	route.Point{X: 100, Y: 400},
	route.Point{X: 100, Y: 450},
	route.Point{X: 300, Y: 450},
	route.Point{X: 300, Y: 200},
	route.Point{X: 400, Y: 200},
	route.Point{X: 400, Y: 500},
	route.Point{X: 500, Y: 500},
	route.Point{X: 500, Y: 400},
	route.Point{X: 600, Y: 400},
	route.Point{X: 600, Y: 400},
	route.Point{X: config.FieldWidth, Y: 400},
)
