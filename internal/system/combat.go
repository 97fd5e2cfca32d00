// internal/system/combat.go
package system

import (
	"go-balloon-defense/internal/component"
	"go-balloon-defense/internal/entity"
	"go-balloon-defense/internal/event"
	"go-balloon-defense/internal/types"
	"math"
)

// CombatSystem управляет атакой башен: поиск ближайшего шара, перезарядка
// и отложенное попадание.
//
// Башня: IDLE -> (цель в радиусе и перезарядка прошла) захват -> луч, пока
// летит снаряд -> урон и сброс цели -> IDLE. Между попаданием и следующим
// захватом цель не хранится.
type CombatSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewCombatSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *CombatSystem {
	return &CombatSystem{ecs: ecs, eventDispatcher: eventDispatcher}
}

func (s *CombatSystem) Update() {
	frame := s.ecs.Frame
	for _, id := range s.ecs.TowerIDs() {
		tower := s.ecs.Towers[id]
		combat := &tower.Combat

		closest := s.findNearestBalloonInRange(tower.Pos, combat.Range)
		if closest != 0 && combat.ReadyAt(frame) {
			combat.Target = closest
			combat.LastShot = frame
			s.eventDispatcher.Dispatch(event.Event{
				Type:   event.ShotFired,
				Frame:  frame,
				Entity: id,
				Data:   event.HitData{Target: closest, Damage: combat.Damage},
			})
		}

		if combat.Target == 0 {
			continue
		}
		if _, alive := s.ecs.Balloon(combat.Target); !alive {
			// Цель исчезла до попадания
			combat.Target = 0
			continue
		}
		if combat.Pending(frame) {
			continue
		}

		s.hitTarget(id, combat)
	}
}

func (s *CombatSystem) hitTarget(towerID types.EntityID, combat *component.Combat) {
	target := combat.Target
	combat.Target = 0

	before, after, ok := ApplyDamage(s.ecs, target, combat.Damage)
	if !ok {
		return
	}
	s.eventDispatcher.Dispatch(event.Event{
		Type:   event.BalloonHit,
		Frame:  s.ecs.Frame,
		Entity: towerID,
		Data:   event.HitData{Target: target, Damage: combat.Damage, HealthBefore: before, HealthAfter: after},
	})
}

// findNearestBalloonInRange возвращает ближайший живой шар строго внутри
// радиуса. При равенстве расстояний выигрывает шар, появившийся раньше.
func (s *CombatSystem) findNearestBalloonInRange(center component.Position, rangeRadius float64) types.EntityID {
	var nearest types.EntityID
	minDistance := math.MaxFloat64
	for _, id := range s.ecs.BalloonIDs() {
		b := s.ecs.Balloons[id]
		if !b.IsAlive() {
			continue
		}
		distance := center.DistanceTo(b.Center())
		if distance < rangeRadius && distance < minDistance {
			minDistance = distance
			nearest = id
		}
	}
	return nearest
}
