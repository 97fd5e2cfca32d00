// pkg/render/tiles.go
package render

import "go-balloon-defense/pkg/tilemap"

// Openings — стороны клетки, через которые проходит дорога.
type Openings struct {
	Left, Right, Up, Down bool
}

// TileOpenings maps a connector tile to the cell sides its road touches.
func TileOpenings(t tilemap.Tile) Openings {
	switch t {
	case tilemap.TileStraight:
		return Openings{Left: true, Right: true}
	case tilemap.TileTurnUp:
		return Openings{Left: true, Up: true}
	case tilemap.TileTurnDown:
		return Openings{Left: true, Down: true}
	case tilemap.TileClimbUp, tilemap.TileClimbDown:
		return Openings{Up: true, Down: true}
	case tilemap.TileLevelFromUp:
		return Openings{Down: true, Right: true}
	case tilemap.TileLevelFromDown:
		return Openings{Up: true, Right: true}
	}
	return Openings{}
}
