package system

import (
	"go-balloon-defense/internal/component"
	"go-balloon-defense/internal/config"
	"go-balloon-defense/internal/entity"
	"go-balloon-defense/internal/event"
	"go-balloon-defense/internal/types"
	"go-balloon-defense/pkg/tilemap"
)

// eventLog records every dispatched event.
type eventLog struct {
	events []event.Event
}

func (l *eventLog) OnEvent(e event.Event) { l.events = append(l.events, e) }

func (l *eventLog) count(t event.EventType) int {
	n := 0
	for _, e := range l.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

func newDispatcher() (*event.Dispatcher, *eventLog) {
	d := event.NewDispatcher()
	log := &eventLog{}
	d.SubscribeAll(log, event.All...)
	return d, log
}

// addBalloon places a balloon whose centre is at (cx, cy).
func addBalloon(ecs *entity.ECS, cx, cy float64) types.EntityID {
	return ecs.AddBalloon(&component.Balloon{
		Pos:    component.Position{X: cx, Y: cy + config.BalloonHeight/2},
		Width:  config.BalloonWidth,
		Height: config.BalloonHeight,
		Health: config.BalloonHealth,
	})
}

func addTower(ecs *entity.ECS, rules *config.Rules, x, y float64) types.EntityID {
	return ecs.AddTower(&component.Tower{
		Pos:  component.Position{X: x, Y: y},
		Size: rules.TowerSize,
		Combat: component.Combat{
			Range:    rules.TowerRange,
			Cooldown: rules.TowerCooldown,
			Travel:   rules.TowerTravel,
			Damage:   rules.TowerDamage,
			LastShot: -rules.TowerCooldown,
		},
	})
}

func pathOf(points ...tilemap.Waypoint) *tilemap.Path {
	return tilemap.NewPath(points)
}

func walker(ecs *entity.ECS, path *tilemap.Path, x, y float64) (*component.Balloon, types.EntityID) {
	b := &component.Balloon{
		Pos:    component.Position{X: x, Y: y},
		Width:  config.BalloonWidth,
		Height: config.BalloonHeight,
		Health: config.BalloonHealth,
	}
	if ref, ok := path.RefAt(0); ok {
		b.Target = &ref
	}
	return b, ecs.AddBalloon(b)
}
