// internal/ui/menu_button.go
package ui

import (
	"go-path-defense/internal/config"
	"go-path-defense/internal/render"
	"go-path-defense/internal/ui/layout"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// MenuButton представляет собой простую кнопку для использования в меню.
type MenuButton struct {
	Rect     layout.Rect
	Text     string
	bgColor  color.RGBA
	fgColor  color.RGBA
	fontFace font.Face
}

// NewMenuButton создает новую кнопку меню.
func NewMenuButton(rect layout.Rect, text string, fontFace font.Face) *MenuButton {
	return &MenuButton{
		Rect:     rect,
		Text:     text,
		bgColor:  config.ShopColor,
		fgColor:  config.TextDarkColor,
		fontFace: fontFace,
	}
}

// Draw отрисовывает кнопку.
func (b *MenuButton) Draw(screen *ebiten.Image) {
	r := b.Rect
	vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), b.bgColor, false)
	vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), config.UIBorderWidth, config.UIBorderColor, false)
	render.DrawCenteredText(screen, b.fontFace, b.Text, int(r.X+r.W/2), int(r.Y+r.H/2)+4, b.fgColor)
}

// IsClicked проверяет, был ли клик по кнопке.
func (b *MenuButton) IsClicked(x, y int) bool {
	return b.Rect.Contains(float64(x), float64(y))
}
