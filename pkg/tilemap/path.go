// pkg/tilemap/path.go
package tilemap

import (
	"image"
	"math"
)

// Waypoint — центр маркера пути.
type Waypoint struct {
	X, Y float64
}

// Bounds returns the square marker of the given size centred on the waypoint.
func (w Waypoint) Bounds(size int) image.Rectangle {
	x := int(math.Round(w.X)) - size/2
	y := int(math.Round(w.Y)) - size/2
	return image.Rect(x, y, x+size, y+size)
}

// Ref — невладеющая ссылка на точку пути: версия списка и индекс в нём.
// Ссылка, выданная до очистки или замены пути, больше не разрешается.
type Ref struct {
	Version uint64
	Index   int
}

// Path — упорядоченная ломаная, по которой идут шары. Порядок вставки и есть
// порядок обхода. Добавление в конец не ломает выданные ссылки; Replace и
// Clear увеличивают версию.
type Path struct {
	points  []Waypoint
	version uint64
}

func NewPath(points []Waypoint) *Path {
	p := &Path{version: 1}
	p.points = append(p.points, points...)
	return p
}

func (p *Path) Len() int {
	return len(p.points)
}

func (p *Path) Version() uint64 {
	return p.version
}

// At returns the waypoint at index i.
func (p *Path) At(i int) (Waypoint, bool) {
	if i < 0 || i >= len(p.points) {
		return Waypoint{}, false
	}
	return p.points[i], true
}

// Points возвращает копию списка точек.
func (p *Path) Points() []Waypoint {
	out := make([]Waypoint, len(p.points))
	copy(out, p.points)
	return out
}

// Append добавляет точку в конец пути.
func (p *Path) Append(w Waypoint) {
	p.points = append(p.points, w)
}

// Replace заменяет путь целиком.
func (p *Path) Replace(points []Waypoint) {
	p.points = append(p.points[:0:0], points...)
	p.version++
}

func (p *Path) Clear() {
	p.Replace(nil)
}

// RefAt returns a reference to index i if it is in range.
func (p *Path) RefAt(i int) (Ref, bool) {
	if i < 0 || i >= len(p.points) {
		return Ref{}, false
	}
	return Ref{Version: p.version, Index: i}, true
}

// Resolve разрешает ссылку. Устаревшая версия или индекс вне диапазона дают false.
func (p *Path) Resolve(ref Ref) (Waypoint, bool) {
	if ref.Version != p.version {
		return Waypoint{}, false
	}
	return p.At(ref.Index)
}
