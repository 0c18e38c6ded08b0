package component

import "go-path-defense/internal/defs"

// Enemy представляет вражескую сущность.
type Enemy struct {
	Variant defs.EnemyVariant
	Bounty  int
}
