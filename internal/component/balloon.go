// internal/component/balloon.go
package component

import "go-balloon-defense/pkg/tilemap"

// Balloon — враг, идущий по пути. Pos — середина нижней грани спрайта.
type Balloon struct {
	Pos    Position
	Width  int
	Height int
	Health int

	// Target — ссылка на текущую точку пути, nil если цели нет.
	Target *tilemap.Ref
	// TargetIndex — индекс следующей точки; -1 означает, что путь пройден.
	TargetIndex int
}

// Center returns the sprite centre (targeting uses it, movement uses Pos).
func (b *Balloon) Center() Position {
	return Position{X: b.Pos.X, Y: b.Pos.Y - float64(b.Height)/2}
}

// Left — x левой грани спрайта.
func (b *Balloon) Left() float64 {
	return b.Pos.X - float64(b.Width)/2
}

// PathDone reports whether the balloon walked past the last waypoint.
func (b *Balloon) PathDone() bool {
	return b.TargetIndex < 0
}

func (b *Balloon) Location() Position { return b.Center() }
func (b *Balloon) Sprite() SpriteID   { return SpriteBalloon }
func (b *Balloon) IsAlive() bool      { return b.Health > 0 }
