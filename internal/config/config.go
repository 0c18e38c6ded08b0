// internal/config/config.go
package config

import "image/color"

const (
	// Игровое поле, под ним панель магазина.
	FieldWidth     = 1000
	FieldHeight    = 600
	ScreenWidth    = FieldWidth
	ScreenHeight   = FieldHeight + ShopHeight
	TicksPerSecond = 60   // ebiten TPS, один Advance на тик
	MaxDeltaTime   = 0.06 // секунды
	ClickCooldown  = 300  // мс

	// Spawner runs on wall-clock time, independent of the tick.
	SpawnInterval = 2000 // мс

	StartMoney          = 100
	StartLives          = 10
	StartLevel          = 1
	StartEnemiesPerWave = 5
	StartEnemySpeed     = 1.0 // единиц за тик
	StartEnemyHealth    = 100

	EnemiesIncrementPerWave = 2
	EnemySpeedIncrement     = 0.2
	EnemyHealthPerLevel     = 20

	EnemyBounty     = 10
	EnemyRadius     = 10.0
	TankRadius      = 15.0
	HealthBarWidth  = 50.0
	HealthBarHeight = 10.0
	HealthBarOffset = 22.0

	ProjectileSpeed  = 5.0 // единиц за тик
	ProjectileRadius = 5.0

	TowerSize            = 30.0
	TowerOverlapDistance = 20.0
	TowerPathClearance   = 30.0
	TowerHoverRadius     = 15.0

	// DoT ticks once per second of simulation time.
	DoTTickInterval = TicksPerSecond

	PathWidth = 5.0

	ShopButtonWidth   = 130
	ShopButtonHeight  = 100
	ShopButtonSpacing = 150
	ShopMargin        = 10
	ShopHeight        = 120

	HUDX          = 10
	HUDY          = 20
	HUDLineHeight = 30

	SpeedButtonX    = ScreenWidth - 120
	SpeedButtonY    = FieldHeight + ShopHeight/2
	SpeedButtonSize = 14.0
	PauseButtonX    = ScreenWidth - 60
	PauseButtonY    = FieldHeight + ShopHeight/2
	PauseButtonSize = 14.0

	StartButtonWidth  = 200
	StartButtonHeight = 60

	// Terminal front-end: one cell covers CellWidth x CellHeight units.
	CellWidth  = 10.0
	CellHeight = 20.0
)

// SpeedSteps are the simulation speed multipliers cycled by the speed button.
var SpeedSteps = []int{1, 2, 4}

var (
	BackgroundColor   = color.RGBA{235, 235, 235, 255}
	PathColor         = color.RGBA{0, 0, 0, 255}
	EnemyColor        = color.RGBA{220, 30, 30, 255}
	TankColor         = color.RGBA{130, 20, 20, 255}
	HealthBarBgColor  = color.RGBA{128, 128, 128, 255}
	HealthBarFgColor  = color.RGBA{0, 128, 0, 255}
	RangeColor        = color.RGBA{0, 0, 0, 26}
	ShopColor         = color.RGBA{211, 211, 211, 255}
	ShopPanelColor    = color.RGBA{60, 60, 60, 255}
	PreviewColor      = color.RGBA{255, 255, 255, 120}
	InvalidColor      = color.RGBA{255, 0, 0, 120}
	PauseColor        = color.RGBA{70, 130, 180, 220}
	PlayColor         = color.RGBA{60, 180, 75, 220}
	ShopDisabledColor = color.RGBA{128, 128, 128, 255}
	ShopSelectedColor = color.RGBA{255, 255, 0, 255}
	TextDarkColor     = color.RGBA{0, 0, 0, 255}
	TextLightColor    = color.RGBA{240, 240, 240, 255}
	GameOverColor     = color.RGBA{255, 0, 0, 255}
	OverlayColor      = color.RGBA{0, 0, 0, 140}
	UIBorderColor     = color.RGBA{40, 40, 40, 255}
	UIBorderWidth     = float32(2.0)

	ColorBasic  = color.RGBA{66, 135, 245, 255}
	ColorSniper = color.RGBA{0, 128, 0, 255}
	ColorRapid  = color.RGBA{128, 0, 128, 255}
	ColorFlame  = color.RGBA{255, 140, 0, 255}

	SpeedButtonColors = []color.RGBA{
		{70, 130, 180, 220},  // x1
		{220, 60, 60, 220},   // x2
		{194, 178, 128, 255}, // x4
	}
)
