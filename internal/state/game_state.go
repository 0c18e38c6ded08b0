// internal/state/game_state.go
package state

import (
	"fmt"
	"go-path-defense/internal/app"
	"go-path-defense/internal/config"
	"go-path-defense/internal/defs"
	"go-path-defense/internal/render"
	"go-path-defense/internal/ui"
	"go-path-defense/internal/ui/layout"
	"go-path-defense/pkg/route"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// offField is a cursor position that hovers nothing.
var offField = route.Point{X: -config.FieldWidth, Y: -config.FieldHeight}

var towerKeys = map[ebiten.Key]defs.TowerID{
	ebiten.Key1: defs.TowerBasic,
	ebiten.Key2: defs.TowerSniper,
	ebiten.Key3: defs.TowerRapid,
	ebiten.Key4: defs.TowerFlame,
}

// GameState — состояние игры. It is the tick driver: each Update runs
// Advance once per speed step and feeds the wall-clock spawn timer.
type GameState struct {
	sm            *StateMachine
	game          *app.Game
	renderer      *render.FieldRenderer
	shop          *ui.Shop
	hud           *ui.HUD
	speedButton   *ui.SpeedButton
	pauseButton   *ui.PauseButton
	spawnTimer    float64 // мс с последнего спавна
	lastClickTime time.Time
	cursorX       int
	cursorY       int
}

func NewGameState(sm *StateMachine) *GameState {
	gameLogic := app.NewGame(defs.Route)

	return &GameState{
		sm:       sm,
		game:     gameLogic,
		renderer: render.NewFieldRenderer(gameLogic.Route, fontFace),
		shop:     ui.NewShop(fontFace),
		hud:      ui.NewHUD(fontFace),
		speedButton: ui.NewSpeedButton(
			config.SpeedButtonX, config.SpeedButtonY, config.SpeedButtonSize, config.SpeedButtonColors),
		pauseButton: ui.NewPauseButton(
			config.PauseButtonX, config.PauseButtonY, config.PauseButtonSize, config.PauseColor, config.PlayColor),
		lastClickTime: time.Now(),
	}
}

func (g *GameState) Enter() {
	// Ничего не делаем при входе
}

func (g *GameState) Update(deltaTime float64) {
	g.pauseButton.SetPaused(false)

	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyF9) {
		g.pause()
		return
	}
	for key, id := range towerKeys {
		if inpututil.IsKeyJustPressed(key) {
			g.game.SelectTowerType(id)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.speedButton.ToggleState()
	}

	g.cursorX, g.cursorY = ebiten.CursorPosition()
	if layout.InField(float64(g.cursorX), float64(g.cursorY)) {
		g.game.HoverAt(route.Point{X: float64(g.cursorX), Y: float64(g.cursorY)})
	} else {
		g.game.HoverAt(offField)
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if g.handleClick(g.cursorX, g.cursorY) {
			return
		}
	}

	g.step(deltaTime)

	if g.game.IsGameOver() {
		g.sm.SetState(NewGameOverState(g.sm, g))
	}
}

// step runs the simulation for one frame at the current speed.
func (g *GameState) step(deltaTime float64) {
	mult := g.speedButton.Multiplier()
	for i := 0; i < mult; i++ {
		g.game.Advance()
	}

	g.spawnTimer += deltaTime * 1000 * float64(mult)
	for g.spawnTimer >= config.SpawnInterval {
		g.spawnTimer -= config.SpawnInterval
		g.game.SpawnNext()
	}
}

// handleClick routes a left click. It returns true when the state changed
// and the frame must not advance.
func (g *GameState) handleClick(x, y int) bool {
	defer func() { g.lastClickTime = time.Now() }()

	switch {
	case g.speedButton.IsClicked(x, y):
		if time.Since(g.speedButton.LastToggleTime) >= time.Duration(config.ClickCooldown)*time.Millisecond {
			g.speedButton.ToggleState()
		}
	case g.pauseButton.IsClicked(x, y):
		if time.Since(g.pauseButton.LastToggleTime) >= time.Duration(config.ClickCooldown)*time.Millisecond {
			g.pause()
			return true
		}
	default:
		if id, ok := g.shop.TowerAt(x, y); ok {
			g.game.SelectTowerType(id)
			return false
		}
		if layout.InField(float64(x), float64(y)) {
			g.game.PlaceSelectedTower(route.Point{X: float64(x), Y: float64(y)})
		}
	}
	return false
}

func (g *GameState) pause() {
	g.pauseButton.TogglePause()
	g.sm.SetState(NewPauseState(g.sm, g))
}

// Restart resets the simulation and the spawn timer. Speed is kept.
func (g *GameState) Restart() {
	g.game.ResetGame()
	g.spawnTimer = 0
}

func (g *GameState) preview() *render.Preview {
	x, y := float64(g.cursorX), float64(g.cursorY)
	if !layout.InField(x, y) || g.game.IsGameOver() {
		return nil
	}
	def, ok := defs.Tower(g.game.SelectedTowerType())
	if !ok {
		return nil
	}
	return &render.Preview{
		X:     x,
		Y:     y,
		Tower: def,
		Valid: g.game.CanPlaceAt(route.Point{X: x, Y: y}, def.ID),
	}
}

func (g *GameState) Draw(screen *ebiten.Image) {
	snap := g.game.Snapshot()

	g.renderer.Draw(screen, snap, g.preview())
	g.hud.Draw(screen, snap.Economy)
	g.shop.Draw(screen, snap.Economy.Money, snap.Selected)
	g.speedButton.Draw(screen)
	g.pauseButton.Draw(screen)

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS: %0.0f  x%d", ebiten.ActualTPS(), g.speedButton.Multiplier()),
		config.FieldWidth-120, 4)
}

func (g *GameState) Exit() {
	// Ничего не делаем при выходе
}
