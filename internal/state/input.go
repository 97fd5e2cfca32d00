// internal/state/input.go
package state

import (
	"go-balloon-defense/internal/app"
	"image"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Input — ввод за один тик.
type Input struct {
	Keys     []ebiten.Key // только что нажатые
	Released []ebiten.MouseButton
	Held     bool // ЛКМ зажата, показываем рамку
	Cursor   image.Point
}

var mouseButtons = []ebiten.MouseButton{ebiten.MouseButtonLeft, ebiten.MouseButtonRight}

// PollInput reads this tick's keyboard and mouse state from ebiten.
func PollInput() Input {
	in := Input{
		Keys: inpututil.AppendJustPressedKeys(nil),
		Held: ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
	}
	in.Cursor = image.Pt(ebiten.CursorPosition())
	for _, b := range mouseButtons {
		if inpututil.IsMouseButtonJustReleased(b) {
			in.Released = append(in.Released, b)
		}
	}
	return in
}

// Pressed reports whether key went down this tick.
func (in Input) Pressed(key ebiten.Key) bool {
	return slices.Contains(in.Keys, key)
}

// Commands переводит ввод в команды ядра. Клик срабатывает на отпускании кнопки.
func (in Input) Commands(mode app.EditMode) []app.Command {
	if in.Pressed(ebiten.KeyEscape) {
		return []app.Command{app.Quit{}}
	}
	var cmds []app.Command
	if in.Pressed(ebiten.KeyR) {
		cmds = append(cmds, app.RegenerateMap{})
	}
	if in.Pressed(ebiten.KeyN) {
		cmds = append(cmds, app.ClearPath{})
	}
	// Клик обрабатывается в режиме, действовавшем до переключения
	for _, b := range in.Released {
		if cmd := app.ClickCommand(mode, in.Cursor, b == ebiten.MouseButtonRight); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if in.Pressed(ebiten.KeyM) {
		cmds = append(cmds, app.ToggleEditMode{})
	}
	return cmds
}
