// internal/app/command.go
package app

import "image"

// Command — пользовательская команда, применяемая перед шагом кадра.
type Command interface {
	apply(g *Game)
}

type (
	PlaceTower     struct{ Pos image.Point }
	RemoveTower    struct{ Pos image.Point }
	AppendWaypoint struct{ Pos image.Point }
	ClearPath      struct{}
	RegenerateMap  struct{}
	ToggleEditMode struct{}
	Quit           struct{}
)

func (c PlaceTower) apply(g *Game)     { g.PlaceTower(c.Pos) }
func (c RemoveTower) apply(g *Game)    { g.RemoveTower(c.Pos) }
func (c AppendWaypoint) apply(g *Game) { g.AppendWaypoint(c.Pos) }
func (ClearPath) apply(g *Game)        { g.ClearPath() }
func (RegenerateMap) apply(g *Game)    { g.RegenerateMap() }
func (ToggleEditMode) apply(g *Game)   { g.ToggleEditMode() }
func (Quit) apply(g *Game)             { g.Quit() }

// ClickCommand maps a released mouse button to a command for the given mode.
// It returns nil when the click does nothing in that mode.
func ClickCommand(mode EditMode, pos image.Point, secondary bool) Command {
	switch mode {
	case ModeTowers:
		if secondary {
			return RemoveTower{Pos: pos}
		}
		return PlaceTower{Pos: pos}
	case ModePaths:
		if !secondary {
			return AppendWaypoint{Pos: pos}
		}
	}
	return nil
}
