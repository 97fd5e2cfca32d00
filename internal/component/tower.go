// internal/component/tower.go
package component

import (
	"image"
	"math"
)

// Tower — башня игрока. Не двигается; Pos — центр хитбокса размером Size×Size.
type Tower struct {
	Pos    Position
	Size   int
	Combat Combat
}

// Hitbox returns the tower's placement rectangle.
func (t *Tower) Hitbox() image.Rectangle {
	return HitboxAt(image.Pt(int(math.Round(t.Pos.X)), int(math.Round(t.Pos.Y))), t.Size)
}

// HitboxAt returns a size×size square centred on p.
func HitboxAt(p image.Point, size int) image.Rectangle {
	corner := p.Sub(image.Pt(size/2, size/2))
	return image.Rectangle{Min: corner, Max: corner.Add(image.Pt(size, size))}
}

func (t *Tower) Location() Position { return t.Pos }
func (t *Tower) Sprite() SpriteID   { return SpriteTower }
func (t *Tower) IsAlive() bool      { return true }
