// internal/app/tower_management.go
package app

import (
	"go-balloon-defense/internal/component"
	"go-balloon-defense/internal/event"
	"go-balloon-defense/internal/types"
	"go-balloon-defense/pkg/tilemap"
	"image"
)

// PlaceTower ставит башню с центром в pos. Пересечение хитбокса с уже
// стоящей башней отклоняет постройку.
func (g *Game) PlaceTower(pos image.Point) bool {
	hitbox := component.HitboxAt(pos, g.Rules.TowerSize)
	if g.overlapsTower(hitbox) {
		return false
	}

	id := g.ECS.AddTower(&component.Tower{
		Pos:  component.Position{X: float64(pos.X), Y: float64(pos.Y)},
		Size: g.Rules.TowerSize,
		Combat: component.Combat{
			Range:    g.Rules.TowerRange,
			Cooldown: g.Rules.TowerCooldown,
			Travel:   g.Rules.TowerTravel,
			Damage:   g.Rules.TowerDamage,
			LastShot: g.ECS.Frame - g.Rules.TowerCooldown,
		},
	})
	g.EventDispatcher.Dispatch(event.Event{Type: event.TowerPlaced, Frame: g.ECS.Frame, Entity: id, Data: pos})
	return true
}

// RemoveTower removes the first tower, in placement order, whose hitbox
// overlaps a tower-sized rectangle centred on pos.
func (g *Game) RemoveTower(pos image.Point) bool {
	id, ok := g.towerAt(component.HitboxAt(pos, g.Rules.TowerSize))
	if !ok {
		return false
	}
	g.ECS.RemoveTower(id)
	g.EventDispatcher.Dispatch(event.Event{Type: event.TowerRemoved, Frame: g.ECS.Frame, Entity: id, Data: pos})
	return true
}

// AppendWaypoint добавляет точку в конец пути. Существующие ссылки шаров
// остаются действительными.
func (g *Game) AppendWaypoint(pos image.Point) {
	g.Path.Append(tilemap.Waypoint{X: float64(pos.X), Y: float64(pos.Y)})
	g.EventDispatcher.Dispatch(event.Event{Type: event.WaypointAdded, Frame: g.ECS.Frame, Data: g.Path.Len() - 1})
}

func (g *Game) overlapsTower(rect image.Rectangle) bool {
	_, ok := g.towerAt(rect)
	return ok
}

func (g *Game) towerAt(rect image.Rectangle) (types.EntityID, bool) {
	for _, id := range g.ECS.TowerIDs() {
		if g.ECS.Towers[id].Hitbox().Overlaps(rect) {
			return id, true
		}
	}
	return 0, false
}
