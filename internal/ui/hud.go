package ui

import (
	"go-path-defense/internal/component"
	"go-path-defense/internal/config"
	"go-path-defense/internal/ui/layout"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// HUD prints the economy counters in the top left corner.
type HUD struct {
	fontFace font.Face
}

func NewHUD(fontFace font.Face) *HUD {
	return &HUD{fontFace: fontFace}
}

func (h *HUD) Draw(screen *ebiten.Image, econ component.Economy) {
	y := config.HUDY
	for _, line := range layout.HUDLines(econ) {
		text.Draw(screen, line, h.fontFace, config.HUDX, y, config.TextDarkColor)
		y += config.HUDLineHeight
	}
}
