// internal/state/menu_state.go
package state

import (
	"go-path-defense/internal/config"
	"go-path-defense/internal/render"
	"go-path-defense/internal/ui"
	"go-path-defense/internal/ui/layout"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// MenuState — стартовый экран
type MenuState struct {
	sm          *StateMachine
	startButton *ui.MenuButton
}

func NewMenuState(sm *StateMachine) *MenuState {
	return &MenuState{
		sm:          sm,
		startButton: ui.NewMenuButton(layout.StartButton(), "Start Game", fontFace),
	}
}

func (m *MenuState) Enter() {
	// Ничего не делаем при входе
}

func (m *MenuState) Update(deltaTime float64) {
	start := inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		start = start || m.startButton.IsClicked(x, y)
	}
	if start {
		m.sm.SetState(NewGameState(m.sm))
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	render.DrawCenteredText(screen, fontFace, "Path Defense", config.ScreenWidth/2, config.ScreenHeight/2-60, config.TextDarkColor)
	m.startButton.Draw(screen)
}

func (m *MenuState) Exit() {
	// Ничего не делаем при выходе
}
