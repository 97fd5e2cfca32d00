// internal/app/views.go
package app

import (
	"go-balloon-defense/internal/component"
	"go-balloon-defense/internal/types"
	"go-balloon-defense/pkg/tilemap"
	"image"
)

// TowerView — то, что фронтенду нужно знать о башне.
type TowerView struct {
	ID           types.EntityID
	Pos          component.Position
	Hitbox       image.Rectangle
	Range        float64
	Target       types.EntityID
	Beam         bool               // захват был, попадания ещё не было
	BeamTo       component.Position // центр цели, если Beam
	CooldownLeft int
}

// BalloonView describes a balloon for drawing.
type BalloonView struct {
	ID          types.EntityID
	Pos         component.Position // середина нижней грани
	Center      component.Position
	Width       int
	Height      int
	Health      int
	TargetIndex int
}

// Preview — рамка под курсором при зажатой кнопке.
type Preview struct {
	Mode  EditMode
	Rect  image.Rectangle
	Range float64 // 0 в режиме путей
	Valid bool
}

func (g *Game) Waypoints() []tilemap.Waypoint {
	return g.Path.Points()
}

// Towers returns tower views in placement order.
func (g *Game) Towers() []TowerView {
	ids := g.ECS.TowerIDs()
	views := make([]TowerView, 0, len(ids))
	for _, id := range ids {
		t, ok := g.ECS.Tower(id)
		if !ok {
			continue
		}
		v := TowerView{
			ID:           id,
			Pos:          t.Pos,
			Hitbox:       t.Hitbox(),
			Range:        t.Combat.Range,
			Target:       t.Combat.Target,
			CooldownLeft: t.Combat.CooldownLeft(g.ECS.Frame),
		}
		if b, ok := g.ECS.Balloon(t.Combat.Target); ok {
			v.Beam = true
			v.BeamTo = b.Center()
		}
		views = append(views, v)
	}
	return views
}

// Balloons returns balloon views in spawn order.
func (g *Game) Balloons() []BalloonView {
	ids := g.ECS.BalloonIDs()
	views := make([]BalloonView, 0, len(ids))
	for _, id := range ids {
		b := g.ECS.Balloons[id]
		views = append(views, BalloonView{
			ID:          id,
			Pos:         b.Pos,
			Center:      b.Center(),
			Width:       b.Width,
			Height:      b.Height,
			Health:      b.Health,
			TargetIndex: b.TargetIndex,
		})
	}
	return views
}

// Entities lists towers then balloons through the common Entity interface.
func (g *Game) Entities() []component.Entity {
	entities := make([]component.Entity, 0, len(g.ECS.Towers)+len(g.ECS.Balloons))
	for _, id := range g.ECS.TowerIDs() {
		entities = append(entities, g.ECS.Towers[id])
	}
	for _, id := range g.ECS.BalloonIDs() {
		entities = append(entities, g.ECS.Balloons[id])
	}
	return entities
}

// Preview показывает, что произойдёт при отпускании ЛКМ в точке pos:
// Valid=false, если рамка пересекает башню.
func (g *Game) Preview(pos image.Point) Preview {
	if g.mode == ModePaths {
		rect := component.HitboxAt(pos, g.Rules.WaypointSize)
		return Preview{Mode: ModePaths, Rect: rect, Valid: !g.overlapsTower(rect)}
	}
	rect := component.HitboxAt(pos, g.Rules.TowerSize)
	return Preview{Mode: ModeTowers, Rect: rect, Range: g.Rules.TowerRange, Valid: !g.overlapsTower(rect)}
}
