// pkg/tilemap/tile.go
package tilemap

// Direction — шаг случайного блуждания по строкам.
type Direction int

const (
	Straight Direction = iota
	Up
	Down
)

func (d Direction) String() string {
	switch d {
	case Straight:
		return "straight"
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return "unknown"
	}
}

// Tile — код клетки сетки. Коннекторы пути различаются только визуально.
type Tile int8

const (
	TileGrass Tile = iota
	TileStraight
	TileTurnUp        // прямо → вверх
	TileTurnDown      // прямо → вниз
	TileClimbUp       // вверх → вверх
	TileClimbDown     // вниз → вниз
	TileLevelFromUp   // вверх → прямо
	TileLevelFromDown // вниз → прямо
	tileCount
)

// Valid reports whether t belongs to the tile enumeration.
func (t Tile) Valid() bool {
	return t >= TileGrass && t < tileCount
}

// IsPath reports whether the tile is part of the enemy path.
func (t Tile) IsPath() bool {
	return t.Valid() && t != TileGrass
}

func (t Tile) String() string {
	switch t {
	case TileGrass:
		return "grass"
	case TileStraight:
		return "straight"
	case TileTurnUp:
		return "turn-up"
	case TileTurnDown:
		return "turn-down"
	case TileClimbUp:
		return "climb-up"
	case TileClimbDown:
		return "climb-down"
	case TileLevelFromUp:
		return "level-from-up"
	case TileLevelFromDown:
		return "level-from-down"
	default:
		return "invalid"
	}
}

// connectorTile выбирает спрайт-коннектор по предыдущему и следующему шагу.
func connectorTile(prev, next Direction) Tile {
	switch next {
	case Up:
		if prev == Up {
			return TileClimbUp
		}
		return TileTurnUp
	case Down:
		if prev == Down {
			return TileClimbDown
		}
		return TileTurnDown
	default:
		switch prev {
		case Up:
			return TileLevelFromUp
		case Down:
			return TileLevelFromDown
		default:
			return TileStraight
		}
	}
}
