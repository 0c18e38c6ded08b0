// internal/component/projectile.go
package component

import (
	"go-path-defense/internal/defs"
	"go-path-defense/internal/types"
	"image/color"
)

// Projectile представляет летящий снаряд. TargetID is re-resolved every
// tick; a missing target means the projectile fizzles.
type Projectile struct {
	OwnerID  types.EntityID
	TargetID types.EntityID
	Speed    float64
	Damage   int
	Color    color.RGBA
	DoT      *defs.DoTDef
}
