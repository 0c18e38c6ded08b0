// Package tui is a terminal front-end over the simulation. It draws
// snapshots with tcell and turns keys into placement commands.
package tui

import (
	"fmt"
	"go-path-defense/internal/app"
	"go-path-defense/internal/config"
	"go-path-defense/internal/defs"
	"go-path-defense/internal/ui/layout"
	"go-path-defense/pkg/route"
	"image/color"
	"strings"

	"github.com/gdamore/tcell/v2"
)

const (
	// Field size in cells.
	FieldCols = int(config.FieldWidth / config.CellWidth)
	FieldRows = int(config.FieldHeight / config.CellHeight)
)

var (
	pathStyle     = tcell.StyleDefault.Foreground(tcell.ColorGray)
	enemyStyle    = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	hudStyle      = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	dimStyle      = tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	cursorOK      = tcell.StyleDefault.Background(tcell.ColorGreen)
	cursorBad     = tcell.StyleDefault.Background(tcell.ColorRed)
	gameOverStyle = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
)

// CellOf maps a field position to its cell.
func CellOf(x, y float64) (col, row int) {
	return int(x / config.CellWidth), int(y / config.CellHeight)
}

// CellCenter maps a cell back to the field position at its center.
func CellCenter(col, row int) route.Point {
	return route.Point{
		X: (float64(col) + 0.5) * config.CellWidth,
		Y: (float64(row) + 0.5) * config.CellHeight,
	}
}

// Renderer draws snapshots onto a tcell screen. The path mask is computed
// once since the route never changes.
type Renderer struct {
	screen tcell.Screen
	path   [][]bool
}

func NewRenderer(screen tcell.Screen, path *route.Path) *Renderer {
	mask := make([][]bool, FieldRows)
	for row := range mask {
		mask[row] = make([]bool, FieldCols)
	}
	// Шагаем по каждому сегменту с шагом в одну единицу.
	for i := 0; i < path.Segments(); i++ {
		a, b := path.Segment(i)
		steps := int(a.Distance(b)) + 1
		for k := 0; k <= steps; k++ {
			t := float64(k) / float64(steps)
			col, row := CellOf(a.X+(b.X-a.X)*t, a.Y+(b.Y-a.Y)*t)
			if row >= 0 && row < FieldRows && col >= 0 && col < FieldCols {
				mask[row][col] = true
			}
		}
	}
	return &Renderer{screen: screen, path: mask}
}

// Cursor is the keyboard placement cursor, in cells.
type Cursor struct {
	Col, Row int
	Valid    bool
}

// Draw renders one frame: field, cursor, HUD on the two rows below the
// field and a game over banner when the run has ended.
func (r *Renderer) Draw(snap app.Snapshot, cursor Cursor) {
	r.screen.Clear()

	for row, cells := range r.path {
		for col, onPath := range cells {
			if onPath {
				r.set(col, row, '·', pathStyle)
			}
		}
	}

	for _, t := range snap.Towers {
		col, row := CellOf(t.X, t.Y)
		r.set(col, row, towerRune(t.DefID), tcell.StyleDefault.Foreground(toTcell(t.Color)).Bold(true))
	}
	for _, p := range snap.Projectiles {
		col, row := CellOf(p.X, p.Y)
		r.set(col, row, '*', tcell.StyleDefault.Foreground(toTcell(p.Color)))
	}
	for _, e := range snap.Enemies {
		col, row := CellOf(e.X, e.Y)
		ch := 'o'
		if e.Variant == defs.EnemyTank {
			ch = 'O'
		}
		r.set(col, row, ch, enemyStyle)
	}

	if !snap.GameOver {
		style := cursorBad
		if cursor.Valid {
			style = cursorOK
		}
		mainc, _, _, _ := r.screen.GetContent(cursor.Col, cursor.Row)
		r.set(cursor.Col, cursor.Row, mainc, style)
	}

	r.drawText(0, FieldRows, strings.Join(layout.HUDLines(snap.Economy), "  "), hudStyle)
	r.drawShop(FieldRows+1, snap)

	if snap.GameOver {
		lines := append([]string{"GAME OVER"}, layout.StatsLines(snap.Stats, snap.Economy)...)
		lines = append(lines, "press r to restart, q to quit")
		top := FieldRows/2 - len(lines)/2
		for i, line := range lines {
			r.drawText(FieldCols/2-len(line)/2, top+i, line, gameOverStyle)
		}
	}

	r.screen.Show()
}

func (r *Renderer) drawShop(row int, snap app.Snapshot) {
	col := 0
	for i, def := range defs.Towers() {
		label := fmt.Sprintf("[%d] %s %d", i+1, def.Name, def.Cost)
		style := hudStyle
		if snap.Economy.Money < def.Cost {
			style = dimStyle
		}
		if def.ID == snap.Selected {
			style = style.Reverse(true)
		}
		r.drawText(col, row, label, style)
		col += len(label) + 2
	}
}

func (r *Renderer) drawText(col, row int, s string, style tcell.Style) {
	for i, ch := range s {
		r.set(col+i, row, ch, style)
	}
}

// set clips to the screen; small terminals just see less of the field.
func (r *Renderer) set(col, row int, ch rune, style tcell.Style) {
	w, h := r.screen.Size()
	if col < 0 || row < 0 || col >= w || row >= h {
		return
	}
	r.screen.SetContent(col, row, ch, nil, style)
}

func towerRune(id defs.TowerID) rune {
	if id == "" {
		return '#'
	}
	return rune(id[0])
}

func toTcell(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
