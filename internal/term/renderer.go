// internal/term/renderer.go
package term

import (
	"fmt"
	"go-balloon-defense/internal/app"
	"go-balloon-defense/pkg/tilemap"
	"image"

	"github.com/gdamore/tcell/v2"
)

// Одна клетка карты — один символ терминала. Строка 0 занята статусом.
const mapOffsetY = 1

var (
	grassStyle    = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	pathStyle     = tcell.StyleDefault.Foreground(tcell.ColorTan)
	waypointStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	towerStyle    = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	firingStyle   = towerStyle.Background(tcell.ColorDarkRed)
	balloonStyle  = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	hurtStyle     = tcell.StyleDefault.Foreground(tcell.ColorOrange)
	statusStyle   = tcell.StyleDefault.Foreground(tcell.ColorSilver)
	cursorOK      = tcell.StyleDefault.Reverse(true)
	cursorBad     = tcell.StyleDefault.Foreground(tcell.ColorRed).Reverse(true)
)

const (
	glyphGrass    = '.'
	glyphWaypoint = '•'
	glyphTower    = 'T'
	glyphBalloon  = '@'
	glyphHurt     = 'o'
)

var tileGlyphs = map[tilemap.Tile]rune{
	tilemap.TileGrass:         glyphGrass,
	tilemap.TileStraight:      '─',
	tilemap.TileTurnUp:        '╯',
	tilemap.TileTurnDown:      '╮',
	tilemap.TileClimbUp:       '╱',
	tilemap.TileClimbDown:     '╲',
	tilemap.TileLevelFromUp:   '╭',
	tilemap.TileLevelFromDown: '╰',
}

// Cursor — клетка, над которой стоит курсор.
type Cursor struct {
	Row, Col int
}

// Point returns the pixel centre of the cursor cell.
func (c Cursor) Point(grid *tilemap.Grid) image.Point {
	x, y := grid.CellCenter(c.Row, c.Col)
	return image.Pt(int(x), int(y))
}

// Surface — часть tcell.Screen, нужная рендереру.
type Surface interface {
	Clear()
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
}

// Renderer draws the simulation onto a tcell screen.
type Renderer struct {
	screen Surface
	drawn  map[image.Point]rune // последний символ каждой клетки карты
}

func NewRenderer(screen Surface) *Renderer {
	return &Renderer{screen: screen, drawn: make(map[image.Point]rune)}
}

// Draw рисует статус, карту, путь, башни, шары и курсор. Show не вызывается.
func (r *Renderer) Draw(g *app.Game, cursor Cursor, paused bool) {
	r.screen.Clear()
	clear(r.drawn)
	grid := g.Grid()

	r.drawStatus(g, paused)

	grid.Each(func(row, col int, t tilemap.Tile) {
		style := grassStyle
		if t.IsPath() {
			style = pathStyle
		}
		r.set(row, col, tileGlyphs[t], style)
	})

	// Точки, добавленные вручную вне дороги
	for _, w := range g.Waypoints() {
		row, col, ok := grid.CellAt(w.X, w.Y)
		if !ok {
			continue
		}
		if t, _ := grid.At(row, col); !t.IsPath() {
			r.set(row, col, glyphWaypoint, waypointStyle)
		}
	}

	for _, tv := range g.Towers() {
		row, col, ok := grid.CellAt(tv.Pos.X, tv.Pos.Y)
		if !ok {
			continue
		}
		style := towerStyle
		if tv.Beam {
			style = firingStyle
		}
		r.set(row, col, glyphTower, style)
	}

	for _, bv := range g.Balloons() {
		row, col, ok := grid.CellAt(bv.Center.X, bv.Center.Y)
		if !ok {
			continue
		}
		if bv.Health < g.Rules.BalloonHealth {
			r.set(row, col, glyphHurt, hurtStyle)
		} else {
			r.set(row, col, glyphBalloon, balloonStyle)
		}
	}

	r.drawCursor(g, cursor)
}

func (r *Renderer) drawStatus(g *app.Game, paused bool) {
	status := fmt.Sprintf("frame %d  mode %s  balloons %d  towers %d  waypoints %d",
		g.Frame(), g.Mode(), g.BalloonCount(), len(g.Towers()), g.Path.Len())
	if paused {
		status += "  [paused]"
	}
	for i, ch := range status {
		r.screen.SetContent(i, 0, ch, nil, statusStyle)
	}
}

func (r *Renderer) drawCursor(g *app.Game, cursor Cursor) {
	grid := g.Grid()
	if !grid.Contains(cursor.Row, cursor.Col) {
		return
	}
	style := cursorOK
	if !g.Preview(cursor.Point(grid)).Valid {
		style = cursorBad
	}
	r.set(cursor.Row, cursor.Col, r.drawn[image.Pt(cursor.Col, cursor.Row)], style)
}

func (r *Renderer) set(row, col int, ch rune, style tcell.Style) {
	r.drawn[image.Pt(col, row)] = ch
	r.screen.SetContent(col, row+mapOffsetY, ch, nil, style)
}
