// internal/system/utils.go
package system

import (
	"go-balloon-defense/internal/entity"
	"go-balloon-defense/internal/types"
)

// ApplyDamage наносит урон шару. Если шар уже удалён или лопнул, вызов ничего
// не делает и возвращает ok == false.
func ApplyDamage(ecs *entity.ECS, id types.EntityID, damage int) (before, after int, ok bool) {
	b, exists := ecs.Balloon(id)
	if !exists || !b.IsAlive() {
		return 0, 0, false
	}
	before = b.Health
	b.Health -= damage
	return before, b.Health, true
}
