// internal/ui/shop.go
package ui

import (
	"go-path-defense/internal/config"
	"go-path-defense/internal/defs"
	"go-path-defense/internal/render"
	"go-path-defense/internal/ui/layout"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// Shop is the tower panel under the field. Buttons the player cannot
// afford are greyed out, the selected tower is outlined.
type Shop struct {
	buttons  []layout.ShopButton
	fontFace font.Face
}

func NewShop(fontFace font.Face) *Shop {
	return &Shop{buttons: layout.ShopButtons(), fontFace: fontFace}
}

// TowerAt returns the tower under the cursor, if any.
func (s *Shop) TowerAt(x, y int) (defs.TowerID, bool) {
	return layout.ShopButtonAt(float64(x), float64(y))
}

func (s *Shop) Draw(screen *ebiten.Image, money int, selected defs.TowerID) {
	vector.DrawFilledRect(screen, 0, config.FieldHeight, config.ScreenWidth, config.ShopHeight, config.ShopPanelColor, false)

	for _, b := range s.buttons {
		def, ok := defs.Tower(b.Tower)
		if !ok {
			continue
		}
		r := b.Rect
		x, y, w, h := float32(r.X), float32(r.Y), float32(r.W), float32(r.H)

		bg := config.ShopColor
		fg := config.TextDarkColor
		if money < def.Cost {
			bg = config.ShopDisabledColor
			fg = render.DarkenColor(config.TextLightColor)
		}
		vector.DrawFilledRect(screen, x, y, w, h, bg, false)
		vector.DrawFilledRect(screen, x+4, y+4, 12, 12, def.Color, false)

		border := config.UIBorderColor
		borderWidth := config.UIBorderWidth
		if b.Tower == selected {
			border = config.ShopSelectedColor
			borderWidth *= 2
		}
		vector.StrokeRect(screen, x, y, w, h, borderWidth, border, false)

		lineY := int(r.Y) + 30
		for _, line := range layout.ShopLabel(def) {
			text.Draw(screen, line, s.fontFace, int(r.X)+8, lineY, fg)
			lineY += 15
		}
	}
}
