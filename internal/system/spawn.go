// internal/system/spawn.go
package system

import (
	"go-balloon-defense/internal/component"
	"go-balloon-defense/internal/config"
	"go-balloon-defense/internal/entity"
	"go-balloon-defense/internal/event"
	"go-balloon-defense/internal/types"
	"go-balloon-defense/pkg/tilemap"
)

// IntervalSampler выдаёт случайный интервал в секундах.
type IntervalSampler interface {
	Uniform(min, max float64) float64
}

// SpawnSystem выпускает по одному шару через случайные интервалы.
// Первый шар появляется на кадре, с которого система начала работу.
type SpawnSystem struct {
	ecs             *entity.ECS
	rules           *config.Rules
	rng             IntervalSampler
	eventDispatcher *event.Dispatcher
	nextSpawn       int
}

func NewSpawnSystem(ecs *entity.ECS, rules *config.Rules, rng IntervalSampler, eventDispatcher *event.Dispatcher) *SpawnSystem {
	return &SpawnSystem{
		ecs:             ecs,
		rules:           rules,
		rng:             rng,
		eventDispatcher: eventDispatcher,
		nextSpawn:       ecs.Frame,
	}
}

// Update выпускает шар, если подошёл его кадр, и заново разыгрывает интервал.
func (s *SpawnSystem) Update(startY float64, path *tilemap.Path) (types.EntityID, bool) {
	if s.ecs.Frame < s.nextSpawn {
		return 0, false
	}
	id := s.SpawnBalloon(startY, path)
	seconds := s.rng.Uniform(s.rules.SpawnMinSeconds, s.rules.SpawnMaxSeconds)
	s.nextSpawn = s.ecs.Frame + s.rules.SecondsToFrames(seconds)
	return id, true
}

// NextSpawn — кадр следующего появления.
func (s *SpawnSystem) NextSpawn() int {
	return s.nextSpawn
}

// SpawnBalloon creates a balloon at the left edge on the start row, aimed at
// the first waypoint when there is one.
func (s *SpawnSystem) SpawnBalloon(startY float64, path *tilemap.Path) types.EntityID {
	b := &component.Balloon{
		Pos:         component.Position{X: s.rules.BalloonSpawnX, Y: startY},
		Width:       s.rules.BalloonWidth,
		Height:      s.rules.BalloonHeight,
		Health:      s.rules.BalloonHealth,
		TargetIndex: 0,
	}
	if ref, ok := path.RefAt(0); ok {
		b.Target = &ref
	}
	id := s.ecs.AddBalloon(b)
	s.eventDispatcher.Dispatch(event.Event{Type: event.BalloonSpawned, Frame: s.ecs.Frame, Entity: id})
	return id
}
