// internal/system/movement.go
package system

import (
	"go-balloon-defense/internal/component"
	"go-balloon-defense/internal/config"
	"go-balloon-defense/internal/entity"
	"go-balloon-defense/internal/event"
	"go-balloon-defense/pkg/tilemap"
	"math"
)

// MovementSystem ведёт шары по точкам пути с постоянной скоростью.
type MovementSystem struct {
	ecs             *entity.ECS
	rules           *config.Rules
	eventDispatcher *event.Dispatcher
}

func NewMovementSystem(ecs *entity.ECS, rules *config.Rules, eventDispatcher *event.Dispatcher) *MovementSystem {
	return &MovementSystem{ecs: ecs, rules: rules, eventDispatcher: eventDispatcher}
}

// Update делает один шаг каждого шара. Шары, ушедшие за правый край, удаляются.
func (s *MovementSystem) Update(path *tilemap.Path) {
	limit := float64(s.rules.ScreenWidth)
	for _, id := range s.ecs.BalloonIDs() {
		b := s.ecs.Balloons[id]
		if b.Left() > limit+float64(b.Width) {
			s.ecs.RemoveBalloon(id)
			s.eventDispatcher.Dispatch(event.Event{Type: event.BalloonEscaped, Frame: s.ecs.Frame, Entity: id})
			continue
		}
		s.step(b, path)
	}
}

func (s *MovementSystem) step(b *component.Balloon, path *tilemap.Path) {
	speed := s.rules.BalloonSpeed

	if b.Target == nil {
		b.Pos.X += speed
		return
	}

	target, ok := path.Resolve(*b.Target)
	if !ok {
		// Путь заменили или очистили: ссылка устарела, индекс остаётся.
		// Reattach перепривяжет шар по индексу.
		b.Target = nil
		b.Pos.X += speed
		return
	}

	dx := target.X - b.Pos.X
	dy := target.Y - b.Pos.Y
	dist := math.Sqrt(dx*dx + dy*dy)

	if dist <= speed {
		b.Pos.X = target.X
		b.Pos.Y = target.Y
		advanceTarget(b, path)
		return
	}

	b.Pos.X += (dx / dist) * speed
	b.Pos.Y += (dy / dist) * speed
}

// advanceTarget переключает шар на следующую точку или завершает путь.
func advanceTarget(b *component.Balloon, path *tilemap.Path) {
	b.TargetIndex++
	if ref, ok := path.RefAt(b.TargetIndex); ok {
		b.Target = &ref
		return
	}
	b.TargetIndex = -1
	b.Target = nil
}

// Reattach привязывает шары без цели к точке с их текущим индексом, если она
// существует. Завершившие путь шары (индекс -1) не трогаются.
func (s *MovementSystem) Reattach(path *tilemap.Path) {
	for _, id := range s.ecs.BalloonIDs() {
		b := s.ecs.Balloons[id]
		if b.PathDone() || b.Target != nil {
			continue
		}
		if ref, ok := path.RefAt(b.TargetIndex); ok {
			b.Target = &ref
		}
	}
}
