// internal/component/combat.go
package component

import "go-balloon-defense/internal/types"

// Combat — компонент для башен, управляющий атакой
type Combat struct {
	Range    float64 // Радиус обнаружения в пикселях
	Cooldown int     // Кадров между захватами цели
	Travel   int     // Кадров от выстрела до попадания
	Damage   int

	LastShot int            // Кадр последнего выстрела
	Target   types.EntityID // 0 — башня простаивает
}

// ReadyAt reports whether the fire-rate gate is open at the given frame.
func (c *Combat) ReadyAt(frame int) bool {
	return frame >= c.LastShot+c.Cooldown
}

// Pending reports whether a shot is in flight (beam visible, no damage yet).
func (c *Combat) Pending(frame int) bool {
	return c.Target != 0 && frame < c.LastShot+c.Travel
}

// CooldownLeft — сколько кадров осталось до открытия затвора.
func (c *Combat) CooldownLeft(frame int) int {
	if left := c.LastShot + c.Cooldown - frame; left > 0 {
		return left
	}
	return 0
}
