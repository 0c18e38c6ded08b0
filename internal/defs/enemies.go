// internal/defs/enemies.go
package defs

import (
	"go-path-defense/internal/config"
	"image/color"
)

// EnemyVariant tags the kind of an enemy. Variant-specific numbers live in
// EnemyLibrary instead of behind methods.
type EnemyVariant int

const (
	EnemyStandard EnemyVariant = iota
	EnemyTank
)

func (v EnemyVariant) String() string {
	switch v {
	case EnemyStandard:
		return "Standard"
	case EnemyTank:
		return "Tank"
	default:
		return "Unknown"
	}
}

// EnemyDefinition holds the static data for an enemy variant.
type EnemyDefinition struct {
	Variant          EnemyVariant `json:"variant"`
	Name             string       `json:"name"`
	HealthMultiplier float64      `json:"health_multiplier"`
	Bounty           int          `json:"bounty"`
	Visuals          Visuals      `json:"visuals"`
}

// Visuals contains parameters for rendering an entity.
type Visuals struct {
	Color  color.RGBA `json:"color"`
	Radius float64    `json:"radius"`
}

// EnemyLibrary is the library of all enemy variants.
var EnemyLibrary = map[EnemyVariant]EnemyDefinition{
	EnemyStandard: {
		Variant:          EnemyStandard,
		Name:             "Standard",
		HealthMultiplier: 1.0,
		Bounty:           config.EnemyBounty,
		Visuals:          Visuals{Color: config.EnemyColor, Radius: config.EnemyRadius},
	},
	EnemyTank: {
		Variant:          EnemyTank,
		Name:             "Tank",
		HealthMultiplier: 1.5,
		Bounty:           config.EnemyBounty * 2,
		Visuals:          Visuals{Color: config.TankColor, Radius: config.TankRadius},
	},
}

// Enemy returns the definition of a variant, falling back to Standard.
func Enemy(v EnemyVariant) EnemyDefinition {
	if def, ok := EnemyLibrary[v]; ok {
		return def
	}
	return EnemyLibrary[EnemyStandard]
}

// SpawnHealth returns the health an enemy of this variant spawns with.
func (d EnemyDefinition) SpawnHealth(baseHealth int) int {
	return int(float64(baseHealth) * d.HealthMultiplier)
}
