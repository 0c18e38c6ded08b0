// Package layout holds screen geometry shared by the front-ends. It does
// not draw, so it is safe to use without a window.
package layout

import (
	"fmt"
	"go-path-defense/internal/app"
	"go-path-defense/internal/component"
	"go-path-defense/internal/config"
	"go-path-defense/internal/defs"
)

// Rect is an axis-aligned rectangle in screen units.
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether (x, y) lies inside r, edges included.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}

// ShopButton is one tower slot of the shop panel.
type ShopButton struct {
	Tower defs.TowerID
	Rect  Rect
}

// ShopButtons lays out one button per tower in shop order.
func ShopButtons() []ShopButton {
	buttons := make([]ShopButton, 0, len(defs.ShopOrder))
	for i, id := range defs.ShopOrder {
		buttons = append(buttons, ShopButton{
			Tower: id,
			Rect: Rect{
				X: float64(config.ShopMargin + i*config.ShopButtonSpacing),
				Y: float64(config.FieldHeight + config.ShopMargin),
				W: config.ShopButtonWidth,
				H: config.ShopButtonHeight,
			},
		})
	}
	return buttons
}

// ShopButtonAt returns the tower whose shop button covers (x, y).
func ShopButtonAt(x, y float64) (defs.TowerID, bool) {
	for _, b := range ShopButtons() {
		if b.Rect.Contains(x, y) {
			return b.Tower, true
		}
	}
	return "", false
}

// InField reports whether (x, y) is on the playing field rather than the
// shop panel.
func InField(x, y float64) bool {
	return x >= 0 && x < config.FieldWidth && y >= 0 && y < config.FieldHeight
}

// InCircle is the hit test used by the round speed and pause buttons.
func InCircle(x, y, cx, cy, r float64) bool {
	dx := x - cx
	dy := y - cy
	return dx*dx+dy*dy <= r*r
}

// StartButton is the rectangle of the start screen button.
func StartButton() Rect {
	return Rect{
		X: float64(config.ScreenWidth-config.StartButtonWidth) / 2,
		Y: float64(config.ScreenHeight-config.StartButtonHeight) / 2,
		W: config.StartButtonWidth,
		H: config.StartButtonHeight,
	}
}

// HUDLines formats the economy counters, one entry per line.
func HUDLines(econ component.Economy) []string {
	return []string{
		fmt.Sprintf("Money: %d", econ.Money),
		fmt.Sprintf("Lives: %d", econ.Lives),
		fmt.Sprintf("Level: %d", econ.Level),
		fmt.Sprintf("Enemies Spawned: %d", econ.EnemiesSpawned),
		fmt.Sprintf("Enemies per Level: %d", econ.EnemiesPerWave),
		fmt.Sprintf("Enemy Speed: %.1f", econ.EnemySpeed),
		fmt.Sprintf("Base Health: %d", econ.BaseEnemyHealth),
	}
}

// ShopLabel is the caption of a shop button.
func ShopLabel(def defs.TowerDefinition) []string {
	lines := []string{
		def.Name,
		fmt.Sprintf("Cost: %d", def.Cost),
		fmt.Sprintf("Range: %.0f", def.Range),
		fmt.Sprintf("Damage: %d", def.Damage),
	}
	if def.DoT != nil {
		lines = append(lines, fmt.Sprintf("Burn: %d/s x%ds", def.DoT.DamagePerSecond, def.DoT.Duration))
	}
	return lines
}

// SpeedMultiplier returns the number of ticks per frame for a speed button
// state. Out-of-range states fall back to x1.
func SpeedMultiplier(state int) int {
	if state < 0 || state >= len(config.SpeedSteps) {
		return 1
	}
	return config.SpeedSteps[state]
}

// StatsLines summarizes a finished run for the game over screen.
func StatsLines(stats app.Stats, econ component.Economy) []string {
	return []string{
		fmt.Sprintf("Reached level %d", econ.Level),
		fmt.Sprintf("Enemies killed: %d (+%d gold)", stats.Kills, stats.BountyEarned),
		fmt.Sprintf("Enemies escaped: %d", stats.Escapes),
		fmt.Sprintf("Towers built: %d", stats.TowersBuilt),
		fmt.Sprintf("Shots fired: %d", stats.ShotsFired),
	}
}
