// internal/entity/ecs.go
package entity

import (
	"go-balloon-defense/internal/component"
	"go-balloon-defense/internal/types"
)

// ECS владеет всеми сущностями симуляции и счётчиком кадров.
// Списки порядка задают стабильный обход: шары по времени появления,
// башни по времени постройки.
type ECS struct {
	Frame    int
	NextID   types.EntityID
	Balloons map[types.EntityID]*component.Balloon
	Towers   map[types.EntityID]*component.Tower

	balloonOrder []types.EntityID
	towerOrder   []types.EntityID
}

func NewECS() *ECS {
	return &ECS{
		NextID:   1,
		Balloons: make(map[types.EntityID]*component.Balloon),
		Towers:   make(map[types.EntityID]*component.Tower),
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// AddBalloon регистрирует шар и возвращает его идентификатор.
func (ecs *ECS) AddBalloon(b *component.Balloon) types.EntityID {
	id := ecs.NewEntity()
	ecs.Balloons[id] = b
	ecs.balloonOrder = append(ecs.balloonOrder, id)
	return id
}

// AddTower регистрирует башню и возвращает её идентификатор.
func (ecs *ECS) AddTower(t *component.Tower) types.EntityID {
	id := ecs.NewEntity()
	ecs.Towers[id] = t
	ecs.towerOrder = append(ecs.towerOrder, id)
	return id
}

// Balloon resolves a handle. Removed or never-issued ids are not found.
func (ecs *ECS) Balloon(id types.EntityID) (*component.Balloon, bool) {
	b, ok := ecs.Balloons[id]
	return b, ok
}

func (ecs *ECS) Tower(id types.EntityID) (*component.Tower, bool) {
	t, ok := ecs.Towers[id]
	return t, ok
}

func (ecs *ECS) RemoveBalloon(id types.EntityID) bool {
	if _, ok := ecs.Balloons[id]; !ok {
		return false
	}
	delete(ecs.Balloons, id)
	ecs.balloonOrder = removeID(ecs.balloonOrder, id)
	return true
}

func (ecs *ECS) RemoveTower(id types.EntityID) bool {
	if _, ok := ecs.Towers[id]; !ok {
		return false
	}
	delete(ecs.Towers, id)
	ecs.towerOrder = removeID(ecs.towerOrder, id)
	return true
}

// BalloonIDs возвращает копию порядка обхода шаров, так что во время обхода
// шары можно удалять.
func (ecs *ECS) BalloonIDs() []types.EntityID {
	return append([]types.EntityID(nil), ecs.balloonOrder...)
}

func (ecs *ECS) TowerIDs() []types.EntityID {
	return append([]types.EntityID(nil), ecs.towerOrder...)
}

func removeID(ids []types.EntityID, id types.EntityID) []types.EntityID {
	for i, v := range ids {
		if v == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}
