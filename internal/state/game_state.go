// internal/state/game_state.go
package state

import (
	"fmt"
	"go-balloon-defense/internal/app"
	"go-balloon-defense/internal/config"
	"go-balloon-defense/internal/system"
	"go-balloon-defense/internal/ui"
	"go-balloon-defense/pkg/render"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

var controlsHelp = []string{
	"LMB: place tower / add waypoint   RMB: remove tower",
	"M: mode   R: new map   N: clear path   P: pause   Esc: quit",
}

// GameState — состояние игры
type GameState struct {
	sm           *StateMachine
	game         *app.Game
	renderer     *render.MapRenderer
	renderSystem *system.RenderSystem
	indicator    *ui.ModeIndicator
	input        Input
	poll         func() Input
}

func NewGameState(sm *StateMachine, game *app.Game) *GameState {
	rules := game.Rules

	// Создаем и заполняем структуру с цветами для рендерера
	mapColors := &render.MapColors{
		BackgroundColor: config.BackgroundColor,
		GrassColor:      config.GrassColor,
		PathColor:       config.PathColor,
		PathEdgeColor:   config.PathEdgeColor,
		WaypointColor:   config.WaypointColor,
		PathLineColor:   config.PathLineColor,
		TextLightColor:  config.TextLightColor,
		StrokeWidth:     float32(config.PathLineWidth),
	}
	renderer := render.NewMapRenderer(rules.ScreenWidth, rules.ScreenHeight, mapColors)

	indicator := ui.NewModeIndicator(
		float32(rules.ScreenWidth-config.IndicatorOffsetX),
		float32(config.IndicatorOffsetX),
		float32(config.IndicatorRadius),
	)

	return &GameState{
		sm:           sm,
		game:         game,
		renderer:     renderer,
		renderSystem: system.NewRenderSystem(game.ECS),
		indicator:    indicator,
		poll:         PollInput,
	}
}

func (g *GameState) Enter() {}

func (g *GameState) Update() {
	g.input = g.poll()
	if g.input.Pressed(ebiten.KeyP) {
		g.sm.SetState(NewPauseState(g.sm, g))
		return
	}

	mode := g.game.Mode()
	g.game.Tick(g.input.Commands(mode))
	if g.game.Mode() != mode {
		g.indicator.Pulse(time.Now())
	}
}

// Game returns the simulation driven by this state.
func (g *GameState) Game() *app.Game {
	return g.game
}

func (g *GameState) Draw(screen *ebiten.Image) {
	g.renderer.RenderMapImage(g.game.Grid())
	g.renderer.Draw(screen, g.game.Waypoints(), g.game.Rules.WaypointSize)
	g.renderSystem.Draw(screen)

	if g.input.Held {
		p := g.game.Preview(g.input.Cursor)
		g.renderer.DrawPreview(screen, p.Rect, p.Range, p.Valid, p.Mode == app.ModePaths, render.PreviewColors{
			ValidColor:   config.PreviewValidColor,
			InvalidColor: config.PreviewBadColor,
			StrokeWidth:  float32(config.PreviewLineWidth),
		})
	}

	g.indicator.Draw(screen, modeColor(g.game.Mode()))
	g.renderer.DrawText(screen, controlsHelp)

	// Debug text
	ebitenutil.DebugPrint(screen, fmt.Sprintf("Frame: %d  Mode: %s  Balloons: %d  TPS: %.0f",
		g.game.Frame(), g.game.Mode(), g.game.BalloonCount(), ebiten.ActualTPS()))
}

func (g *GameState) Exit() {}

func modeColor(mode app.EditMode) color.RGBA {
	if mode == app.ModePaths {
		return config.PathModeColor
	}
	return config.TowerModeColor
}
