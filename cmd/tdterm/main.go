// cmd/tdterm/main.go
package main

import (
	"go-balloon-defense/internal/app"
	"go-balloon-defense/internal/config"
	"go-balloon-defense/internal/event"
	"go-balloon-defense/internal/metrics"
	"go-balloon-defense/internal/term"
	"go-balloon-defense/internal/utils"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/prometheus/client_golang/prometheus"
)

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

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("failed to create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("failed to init screen: %v", err)
	}
	defer screen.Fini()

	run(screen, game, rules.TicksPerSecond)
}

// run крутит фиксированный шаг: события клавиатуры копятся между тиками и
// уходят в ядро одной пачкой.
func run(screen tcell.Screen, game *app.Game, tps int) {
	renderer := term.NewRenderer(screen)
	input := &term.Input{}

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(tps))
	defer ticker.Stop()

	var pending []app.Command
	for {
		select {
		case ev := <-events:
			if _, ok := ev.(*tcell.EventResize); ok {
				screen.Sync()
				continue
			}
			pending = append(pending, input.HandleEvent(ev, game)...)

		case <-ticker.C:
			if input.Paused {
				// команды применяются, но шаг не делается
				for _, cmd := range pending {
					game.Execute(cmd)
				}
			} else {
				game.Tick(pending)
			}
			pending = pending[:0]
			if game.Quitting() {
				return
			}
			renderer.Draw(game, input.Cursor, input.Paused)
			screen.Show()
		}
	}
}
