// internal/system/render.go
package system

import (
	"go-balloon-defense/internal/component"
	"go-balloon-defense/internal/config"
	"go-balloon-defense/internal/entity"
	"go-balloon-defense/internal/utils"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// RenderSystem рисует сущности
type RenderSystem struct {
	ecs *entity.ECS
}

func NewRenderSystem(ecs *entity.ECS) *RenderSystem {
	return &RenderSystem{ecs: ecs}
}

func (s *RenderSystem) Draw(screen *ebiten.Image) {
	// Сначала башни с радиусом
	for _, id := range s.ecs.TowerIDs() {
		tower := s.ecs.Towers[id]
		x, y := float32(tower.Pos.X), float32(tower.Pos.Y)
		vector.DrawFilledCircle(screen, x, y, float32(tower.Combat.Range), config.RangeColor, true)

		box := tower.Hitbox()
		vector.DrawFilledRect(screen, float32(box.Min.X), float32(box.Min.Y), float32(box.Dx()), float32(box.Dy()), config.TowerColor, false)
		vector.StrokeRect(screen, float32(box.Min.X), float32(box.Min.Y), float32(box.Dx()), float32(box.Dy()), 2, config.TowerStrokeColor, false)
	}

	// Затем шары
	for _, id := range s.ecs.BalloonIDs() {
		b := s.ecs.Balloons[id]
		c := b.Center()
		radius := float32(b.Width) * 0.3
		vector.DrawFilledCircle(screen, float32(c.X), float32(c.Y), radius, balloonColor(b), true)
		// Нитка от шара до точки привязки
		vector.StrokeLine(screen, float32(c.X), float32(c.Y)+radius, float32(b.Pos.X), float32(b.Pos.Y), 1, config.TowerStrokeColor, true)
	}

	// Лучи от захвата до попадания, поверх всего
	for _, id := range s.ecs.TowerIDs() {
		tower := s.ecs.Towers[id]
		if tower.Combat.Target == 0 {
			continue
		}
		target, ok := s.ecs.Balloon(tower.Combat.Target)
		if !ok {
			continue
		}
		c := target.Center()
		vector.StrokeLine(screen, float32(tower.Pos.X), float32(tower.Pos.Y), float32(c.X), float32(c.Y), config.BeamWidth, config.BeamColor, true)
	}
}

// balloonColor смешивает цвет шара с цветом ранения по доле потерянного здоровья.
func balloonColor(b *component.Balloon) color.RGBA {
	t := 1 - float32(b.Health)/float32(config.BalloonHealth)
	return color.RGBA{
		R: utils.LerpRGB(config.BalloonColor.R, config.BalloonHurtColor.R, t),
		G: utils.LerpRGB(config.BalloonColor.G, config.BalloonHurtColor.G, t),
		B: utils.LerpRGB(config.BalloonColor.B, config.BalloonHurtColor.B, t),
		A: 255,
	}
}
