// component/tower.go
package component

import (
	"go-path-defense/internal/defs"
	"go-path-defense/internal/types"
)

type Tower struct {
	DefID       defs.TowerID
	ShowRange   bool             // Подсвечен ли радиус (курсор над башней)
	Projectiles []types.EntityID // Снаряды в полёте, принадлежат только этой башне
}
