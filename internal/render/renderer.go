// internal/render/renderer.go
package render

import (
	"go-path-defense/internal/app"
	"go-path-defense/internal/component"
	"go-path-defense/internal/config"
	"go-path-defense/internal/defs"
	"go-path-defense/pkg/route"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// Preview is the ghost tower that follows the cursor.
type Preview struct {
	X, Y  float64
	Tower defs.TowerDefinition
	Valid bool
}

// FieldRenderer draws the playing field from a snapshot. It never touches
// the simulation.
type FieldRenderer struct {
	route    *route.Path
	fontFace font.Face
	mapImage *ebiten.Image // предрендеренный фон с дорогой
}

func NewFieldRenderer(path *route.Path, fontFace font.Face) *FieldRenderer {
	r := &FieldRenderer{route: path, fontFace: fontFace}
	r.renderMapImage()
	return r
}

func (r *FieldRenderer) renderMapImage() {
	r.mapImage = ebiten.NewImage(config.FieldWidth, config.FieldHeight)
	r.mapImage.Fill(config.BackgroundColor)
	for i := 0; i < r.route.Segments(); i++ {
		a, b := r.route.Segment(i)
		vector.StrokeLine(r.mapImage, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), config.PathWidth, config.PathColor, true)
	}
}

// Draw renders towers, enemies and projectiles, then the optional preview.
func (r *FieldRenderer) Draw(screen *ebiten.Image, snap app.Snapshot, preview *Preview) {
	screen.DrawImage(r.mapImage, nil)

	for _, t := range snap.Towers {
		r.drawTower(screen, t.X, t.Y, t.Color)
		if t.ShowRange {
			r.drawRange(screen, t.X, t.Y, t.Range, config.RangeColor)
		}
	}

	for _, e := range snap.Enemies {
		vector.DrawFilledCircle(screen, float32(e.X), float32(e.Y), float32(e.Radius), e.Color, true)
		r.drawHealthBar(screen, e)
	}

	for _, p := range snap.Projectiles {
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), config.ProjectileRadius, p.Color, true)
	}

	if preview != nil {
		clr := WithAlpha(preview.Tower.Color, 120)
		ring := config.RangeColor
		if !preview.Valid {
			clr = config.InvalidColor
			ring = config.InvalidColor
		}
		r.drawTower(screen, preview.X, preview.Y, clr)
		r.drawRange(screen, preview.X, preview.Y, preview.Tower.Range, ring)
	}
}

func (r *FieldRenderer) drawTower(screen *ebiten.Image, x, y float64, clr color.RGBA) {
	half := config.TowerSize / 2
	vector.DrawFilledRect(screen, float32(x-half), float32(y-half), config.TowerSize, config.TowerSize, clr, true)
	vector.StrokeRect(screen, float32(x-half), float32(y-half), config.TowerSize, config.TowerSize, 1, DarkenColor(clr), true)
}

func (r *FieldRenderer) drawRange(screen *ebiten.Image, x, y, rng float64, clr color.RGBA) {
	vector.DrawFilledCircle(screen, float32(x), float32(y), float32(rng), clr, true)
	vector.StrokeCircle(screen, float32(x), float32(y), float32(rng), 1, WithAlpha(clr, 80), true)
}

func (r *FieldRenderer) drawHealthBar(screen *ebiten.Image, e app.EnemyView) {
	x := float32(e.X - config.HealthBarWidth/2)
	y := float32(e.Y - config.HealthBarOffset)
	frac := float32(component.Health{Value: e.Health, Max: e.MaxHealth}.Fraction())
	vector.DrawFilledRect(screen, x, y, config.HealthBarWidth, config.HealthBarHeight, config.HealthBarBgColor, false)
	vector.DrawFilledRect(screen, x, y, config.HealthBarWidth*frac, config.HealthBarHeight, config.HealthBarFgColor, false)
}

// DrawCenteredText draws s centered horizontally on cx with its baseline at y.
func DrawCenteredText(screen *ebiten.Image, face font.Face, s string, cx, y int, clr color.Color) {
	bounds := text.BoundString(face, s)
	text.Draw(screen, s, face, cx-bounds.Dx()/2, y, clr)
}
