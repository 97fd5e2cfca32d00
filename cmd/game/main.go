// cmd/game/main.go
package main

import (
	"go-balloon-defense/internal/app"
	"go-balloon-defense/internal/config"
	"go-balloon-defense/internal/event"
	"go-balloon-defense/internal/metrics"
	"go-balloon-defense/internal/state"
	"go-balloon-defense/internal/utils"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/prometheus/client_golang/prometheus"
)

type AppGame struct {
	stateMachine *state.StateMachine
	game         *app.Game
	rules        *config.Rules
}

func (a *AppGame) Update() error {
	a.stateMachine.Update()
	if a.game.Quitting() {
		return ebiten.Termination
	}
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.rules.ScreenWidth, a.rules.ScreenHeight
}

func main() {
	settings := config.Load()
	rules, err := settings.Rules()
	if err != nil {
		log.Fatal(err)
	}
	mode, err := app.ParseMode(settings.StartMode)
	if err != nil {
		log.Fatal(err)
	}

	reg := prometheus.NewRegistry()
	dispatcher := event.NewDispatcher()
	metrics.NewCollector(reg).Subscribe(dispatcher)
	metrics.StartDebugServer(settings.DebugAddr, reg)

	rng := utils.NewPRNGService(settings.Seed)
	log.Printf("Seed: %d", rng.Seed())
	game := app.NewGame(rules, rng, dispatcher, mode)

	sm := state.NewStateMachine() // Создаём машину состояний
	sm.SetState(state.NewGameState(sm, game))

	ebiten.SetWindowSize(rules.ScreenWidth, rules.ScreenHeight)
	ebiten.SetWindowTitle("Balloon Defense")
	ebiten.SetTPS(rules.TicksPerSecond)
	if err := ebiten.RunGame(&AppGame{stateMachine: sm, game: game, rules: rules}); err != nil {
		log.Fatal(err)
	}
}
