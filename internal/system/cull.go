// internal/system/cull.go
package system

import (
	"go-balloon-defense/internal/entity"
	"go-balloon-defense/internal/event"
)

// CullSystem убирает лопнувшие шары после того, как отстреляли все башни.
type CullSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewCullSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *CullSystem {
	return &CullSystem{ecs: ecs, eventDispatcher: eventDispatcher}
}

// Update returns the number of balloons removed.
func (s *CullSystem) Update() int {
	removed := 0
	for _, id := range s.ecs.BalloonIDs() {
		if s.ecs.Balloons[id].IsAlive() {
			continue
		}
		s.ecs.RemoveBalloon(id)
		removed++
		s.eventDispatcher.Dispatch(event.Event{Type: event.BalloonPopped, Frame: s.ecs.Frame, Entity: id})
	}
	return removed
}
