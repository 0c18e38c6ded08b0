// internal/defs/towers.go
package defs

import (
	"go-path-defense/internal/config"
	"image/color"
)

// TowerID identifies an entry of the tower catalog.
type TowerID string

const (
	TowerBasic  TowerID = "BASIC"
	TowerSniper TowerID = "SNIPER"
	TowerRapid  TowerID = "RAPID"
	TowerFlame  TowerID = "FLAME"
)

// DoTDef describes a damage-over-time payload carried by projectiles.
type DoTDef struct {
	DamagePerSecond int `json:"damage_per_second"`
	Duration        int `json:"duration"` // секунды, один тик урона в секунду
}

// TowerDefinition holds all the static data for a specific type of tower.
type TowerDefinition struct {
	ID       TowerID    `json:"id"`
	Name     string     `json:"name"`
	Cost     int        `json:"cost"`
	Range    float64    `json:"range"`
	Damage   int        `json:"damage"`
	Cooldown int        `json:"cooldown"` // тиков между выстрелами
	Color    color.RGBA `json:"color"`
	DoT      *DoTDef    `json:"dot,omitempty"`
}

// TowerLibrary is the static tower catalog keyed by ID.
var TowerLibrary = map[TowerID]TowerDefinition{
	TowerBasic: {
		ID: TowerBasic, Name: "Basic Tower",
		Cost: 50, Range: 100, Damage: 20, Cooldown: 50,
		Color: config.ColorBasic,
	},
	TowerSniper: {
		ID: TowerSniper, Name: "Sniper Tower",
		Cost: 100, Range: 200, Damage: 50, Cooldown: 100,
		Color: config.ColorSniper,
	},
	TowerRapid: {
		ID: TowerRapid, Name: "Rapid Tower",
		Cost: 75, Range: 80, Damage: 10, Cooldown: 20,
		Color: config.ColorRapid,
	},
	TowerFlame: {
		ID: TowerFlame, Name: "Flame Tower",
		Cost: 125, Range: 90, Damage: 5, Cooldown: 40,
		Color: config.ColorFlame,
		DoT:   &DoTDef{DamagePerSecond: 4, Duration: 3},
	},
}

// ShopOrder is the order towers appear in the shop.
var ShopOrder = []TowerID{TowerBasic, TowerSniper, TowerRapid, TowerFlame}

// Tower looks up a catalog entry.
func Tower(id TowerID) (TowerDefinition, bool) {
	def, ok := TowerLibrary[id]
	return def, ok
}

// Towers returns the catalog in shop order.
func Towers() []TowerDefinition {
	out := make([]TowerDefinition, 0, len(ShopOrder))
	for _, id := range ShopOrder {
		out = append(out, TowerLibrary[id])
	}
	return out
}
