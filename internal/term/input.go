// internal/term/input.go
package term

import (
	"go-balloon-defense/internal/app"
	"go-balloon-defense/pkg/tilemap"

	"github.com/gdamore/tcell/v2"
)

// Input превращает нажатия клавиш в команды ядра. Курсор и пауза живут
// здесь, ядро о них не знает.
type Input struct {
	Cursor Cursor
	Paused bool
}

// HandleEvent returns the commands produced by ev. The grid bounds the cursor.
func (in *Input) HandleEvent(ev tcell.Event, g *app.Game) []app.Command {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return nil
	}
	grid := g.Grid()

	switch key.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return []app.Command{app.Quit{}}
	case tcell.KeyUp:
		in.move(grid, -1, 0)
	case tcell.KeyDown:
		in.move(grid, 1, 0)
	case tcell.KeyLeft:
		in.move(grid, 0, -1)
	case tcell.KeyRight:
		in.move(grid, 0, 1)
	case tcell.KeyEnter:
		return in.click(g, false)
	case tcell.KeyBackspace, tcell.KeyBackspace2, tcell.KeyDelete:
		return in.click(g, true)
	case tcell.KeyRune:
		return in.handleRune(key.Rune(), g)
	}
	return nil
}

func (in *Input) handleRune(r rune, g *app.Game) []app.Command {
	switch r {
	case 'q':
		return []app.Command{app.Quit{}}
	case 'r':
		return []app.Command{app.RegenerateMap{}}
	case 'm':
		return []app.Command{app.ToggleEditMode{}}
	case 'n':
		return []app.Command{app.ClearPath{}}
	case 'p':
		in.Paused = !in.Paused
	case ' ':
		return in.click(g, false)
	case 'x':
		return in.click(g, true)
	case 'k':
		in.move(g.Grid(), -1, 0)
	case 'j':
		in.move(g.Grid(), 1, 0)
	case 'h':
		in.move(g.Grid(), 0, -1)
	case 'l':
		in.move(g.Grid(), 0, 1)
	}
	return nil
}

func (in *Input) click(g *app.Game, secondary bool) []app.Command {
	cmd := app.ClickCommand(g.Mode(), in.Cursor.Point(g.Grid()), secondary)
	if cmd == nil {
		return nil
	}
	return []app.Command{cmd}
}

func (in *Input) move(grid *tilemap.Grid, dRow, dCol int) {
	in.Cursor.Row = min(max(in.Cursor.Row+dRow, 0), grid.Height-1)
	in.Cursor.Col = min(max(in.Cursor.Col+dCol, 0), grid.Width-1)
}
