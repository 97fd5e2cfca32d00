// internal/component/entity.go
package component

// SpriteID — какой спрайт рисовать для сущности.
type SpriteID int

const (
	SpriteNone SpriteID = iota
	SpriteBalloon
	SpriteTower
)

// Entity — общий вид для отрисовки: позиция центра, спрайт и признак жизни.
type Entity interface {
	Location() Position
	Sprite() SpriteID
	IsAlive() bool
}

var (
	_ Entity = (*Balloon)(nil)
	_ Entity = (*Tower)(nil)
)
