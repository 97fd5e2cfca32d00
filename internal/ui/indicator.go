// internal/ui/indicator.go
package ui

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ModeIndicator — лампа режима редактирования в углу экрана.
// После переключения режима она коротко вспыхивает.
type ModeIndicator struct {
	X, Y           float32
	Radius         float32
	LastToggleTime time.Time
}

func NewModeIndicator(x, y, radius float32) *ModeIndicator {
	return &ModeIndicator{
		X:      x,
		Y:      y,
		Radius: radius,
	}
}

// Pulse запускает вспышку.
func (i *ModeIndicator) Pulse(now time.Time) {
	i.LastToggleTime = now
}

// RadiusAt returns the radius including the decaying pulse.
func (i *ModeIndicator) RadiusAt(now time.Time) float32 {
	elapsed := now.Sub(i.LastToggleTime).Seconds()
	if elapsed < 0 {
		elapsed = 0
	}
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	return i.Radius * float32(scale)
}

// Draw отрисовывает индикатор
func (i *ModeIndicator) Draw(screen *ebiten.Image, modeColor color.RGBA) {
	r := i.RadiusAt(time.Now())
	vector.DrawFilledCircle(screen, i.X, i.Y, r, modeColor, true)
	vector.StrokeCircle(screen, i.X, i.Y, r, 1, color.White, true)
}
