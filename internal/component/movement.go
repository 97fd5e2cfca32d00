// internal/component/movement.go
package component

import "math"

// Position — компонент позиции
type Position struct {
	X, Y float64
}

// DistanceTo returns the Euclidean distance between two positions.
func (p Position) DistanceTo(o Position) float64 {
	return math.Hypot(o.X-p.X, o.Y-p.Y)
}
