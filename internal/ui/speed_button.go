// internal/ui/speed_button.go
package ui

import (
	"go-path-defense/internal/render"
	"go-path-defense/internal/ui/layout"
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// SpeedButton cycles the simulation speed x1 → x2 → x4.
type SpeedButton struct {
	X, Y           float32
	Size           float32
	LastClickTime  time.Time
	LastToggleTime time.Time
	StateColors    []color.RGBA
	CurrentState   int
}

func NewSpeedButton(x, y, size float32, stateColors []color.RGBA) *SpeedButton {
	return &SpeedButton{
		X:            x,
		Y:            y,
		Size:         size,
		StateColors:  stateColors,
		CurrentState: 0,
	}
}

func (b *SpeedButton) Draw(screen *ebiten.Image) {
	elapsed := time.Since(b.LastClickTime).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	triangleSize := b.Size * float32(scale)

	clr := b.StateColors[b.CurrentState%len(b.StateColors)]

	// Параметры треугольников
	height := triangleSize * 1.2
	width := triangleSize
	offset := width * 0.8

	// Левый треугольник
	render.FillTriangle(screen, b.X-width, b.Y-height/2, b.X, b.Y, b.X-width, b.Y+height/2, clr)
	// Правый треугольник
	render.FillTriangle(screen, b.X-width+offset, b.Y-height/2, b.X+offset, b.Y, b.X-width+offset, b.Y+height/2, clr)
	vector.StrokeCircle(screen, b.X, b.Y, b.Size*1.5, 1, color.White, true)
}

// IsClicked uses a circle for the hit area since the shape is irregular.
func (b *SpeedButton) IsClicked(x, y int) bool {
	return layout.InCircle(float64(x), float64(y), float64(b.X), float64(b.Y), float64(b.Size*1.5))
}

func (b *SpeedButton) ToggleState() {
	b.CurrentState = (b.CurrentState + 1) % len(b.StateColors)
	b.LastClickTime = time.Now()
	b.LastToggleTime = time.Now()
}

// Multiplier is the number of simulation ticks per frame.
func (b *SpeedButton) Multiplier() int {
	return layout.SpeedMultiplier(b.CurrentState)
}
