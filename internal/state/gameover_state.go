package state

import (
	"go-path-defense/internal/config"
	"go-path-defense/internal/render"
	"go-path-defense/internal/ui/layout"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var _ State = (*GameOverState)(nil)

// GameOverState shows the final field with the run totals. A click
// restarts from the initial values.
type GameOverState struct {
	stateMachine *StateMachine
	gameState    *GameState
}

func NewGameOverState(sm *StateMachine, gs *GameState) *GameOverState {
	return &GameOverState{stateMachine: sm, gameState: gs}
}

func (s *GameOverState) Enter() {}

func (s *GameOverState) Update(deltaTime float64) {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) ||
		inpututil.IsKeyJustPressed(ebiten.KeyEnter) ||
		inpututil.IsKeyJustPressed(ebiten.KeyR) {
		s.gameState.Restart()
		s.stateMachine.SetState(s.gameState)
	}
}

func (s *GameOverState) Draw(screen *ebiten.Image) {
	s.gameState.Draw(screen)
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.OverlayColor, false)

	cx := config.ScreenWidth / 2
	y := config.FieldHeight/2 - 60
	render.DrawCenteredText(screen, fontFace, "GAME OVER", cx, y, config.GameOverColor)
	y += 2 * config.HUDLineHeight

	game := s.gameState.game
	for _, line := range layout.StatsLines(*game.Stats, game.Economy()) {
		render.DrawCenteredText(screen, fontFace, line, cx, y, config.TextLightColor)
		y += 20
	}
	y += 20
	render.DrawCenteredText(screen, fontFace, "Click to restart", cx, y, config.TextLightColor)
}

func (s *GameOverState) Exit() {}
