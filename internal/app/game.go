// internal/app/game.go
package app

import (
	"go-balloon-defense/internal/config"
	"go-balloon-defense/internal/entity"
	"go-balloon-defense/internal/event"
	"go-balloon-defense/internal/system"
	"go-balloon-defense/pkg/tilemap"
	"log"
)

// Random — источник случайности симуляции: генератор карты и интервалы спавна.
type Random interface {
	tilemap.RandomSource
	system.IntervalSampler
}

// Game holds the simulation: map, path, entities and the per-frame systems.
type Game struct {
	Rules           *config.Rules
	ECS             *entity.ECS
	Path            *tilemap.Path
	EventDispatcher *event.Dispatcher
	Rng             Random

	MovementSystem *system.MovementSystem
	SpawnSystem    *system.SpawnSystem
	CombatSystem   *system.CombatSystem
	CullSystem     *system.CullSystem

	grid     *tilemap.Grid
	startY   float64
	mode     EditMode
	quitting bool
}

// NewGame creates a game and generates its first map.
func NewGame(rules *config.Rules, rng Random, eventDispatcher *event.Dispatcher, mode EditMode) *Game {
	if rules == nil {
		rules = config.DefaultRules()
	}
	if eventDispatcher == nil {
		eventDispatcher = event.NewDispatcher()
	}

	ecs := entity.NewECS()
	g := &Game{
		Rules:           rules,
		ECS:             ecs,
		Path:            tilemap.NewPath(nil),
		EventDispatcher: eventDispatcher,
		Rng:             rng,
		MovementSystem:  system.NewMovementSystem(ecs, rules, eventDispatcher),
		SpawnSystem:     system.NewSpawnSystem(ecs, rules, rng, eventDispatcher),
		CombatSystem:    system.NewCombatSystem(ecs, eventDispatcher),
		CullSystem:      system.NewCullSystem(ecs, eventDispatcher),
		mode:            mode,
	}
	g.RegenerateMap()
	return g
}

// Tick применяет команды кадра и делает один шаг симуляции.
// После Quit шаги больше не выполняются.
func (g *Game) Tick(cmds []Command) {
	for _, cmd := range cmds {
		g.Execute(cmd)
	}
	if g.quitting {
		return
	}
	g.Step()
}

// Execute applies a single command. Commands after Quit are ignored.
func (g *Game) Execute(cmd Command) {
	if cmd == nil || g.quitting {
		return
	}
	cmd.apply(g)
}

// Step runs the fixed per-frame order:
// movement, reattachment, spawn, towers, cull, frame counter.
func (g *Game) Step() {
	g.MovementSystem.Update(g.Path)
	g.MovementSystem.Reattach(g.Path)
	g.SpawnSystem.Update(g.startY, g.Path)
	g.CombatSystem.Update()
	g.CullSystem.Update()
	g.ECS.Frame++
}

// RegenerateMap заменяет сетку и путь целиком. Шары в полёте сохраняют
// индекс цели и будут перепривязаны к новым точкам.
func (g *Game) RegenerateMap() {
	layout := tilemap.Generate(g.Rng, g.Rules.MapHeight(), g.Rules.MapWidth(), g.Rules.CellSize)
	g.grid = layout.Grid
	g.Path.Replace(layout.Waypoints)
	g.startY = float64(layout.StartY)

	log.Printf("Map generated: %dx%d, %d waypoints, start row %d", layout.Grid.Width, layout.Grid.Height, len(layout.Waypoints), layout.StartRow)
	g.EventDispatcher.Dispatch(event.Event{Type: event.MapGenerated, Frame: g.ECS.Frame, Data: len(layout.Waypoints)})
}

// ClearPath empties the waypoint list without touching the grid.
func (g *Game) ClearPath() {
	g.Path.Clear()
	log.Println("Path cleared")
	g.EventDispatcher.Dispatch(event.Event{Type: event.PathCleared, Frame: g.ECS.Frame})
}

func (g *Game) ToggleEditMode() {
	g.mode = g.mode.Next()
	g.EventDispatcher.Dispatch(event.Event{Type: event.ModeChanged, Frame: g.ECS.Frame, Data: g.mode})
}

func (g *Game) Quit() {
	g.quitting = true
}

func (g *Game) Grid() *tilemap.Grid { return g.grid }
func (g *Game) Mode() EditMode      { return g.mode }
func (g *Game) Frame() int          { return g.ECS.Frame }
func (g *Game) StartY() float64     { return g.startY }
func (g *Game) Quitting() bool      { return g.quitting }
func (g *Game) NextSpawn() int      { return g.SpawnSystem.NextSpawn() }
func (g *Game) BalloonCount() int   { return len(g.ECS.Balloons) }
