// pkg/tilemap/grid.go
package tilemap

// Grid — прямоугольная сетка клеток Height×Width с фиксированным размером клетки.
// После генерации не меняется; новая карта создаёт новую сетку.
type Grid struct {
	Width    int
	Height   int
	CellSize int
	tiles    [][]Tile
}

// NewGrid returns a grid filled with grass.
func NewGrid(height, width, cellSize int) *Grid {
	if height < 0 {
		height = 0
	}
	if width < 0 {
		width = 0
	}
	tiles := make([][]Tile, height)
	for row := range tiles {
		tiles[row] = make([]Tile, width)
		for col := range tiles[row] {
			tiles[row][col] = TileGrass
		}
	}
	return &Grid{
		Width:    width,
		Height:   height,
		CellSize: cellSize,
		tiles:    tiles,
	}
}

// At возвращает клетку и false, если точка вне сетки.
func (g *Grid) At(row, col int) (Tile, bool) {
	if !g.Contains(row, col) {
		return TileGrass, false
	}
	return g.tiles[row][col], true
}

func (g *Grid) Contains(row, col int) bool {
	return row >= 0 && row < g.Height && col >= 0 && col < g.Width
}

func (g *Grid) set(row, col int, t Tile) {
	g.tiles[row][col] = t
}

// CellAt maps a pixel coordinate to its cell.
func (g *Grid) CellAt(x, y float64) (row, col int, ok bool) {
	if x < 0 || y < 0 || g.CellSize <= 0 {
		return 0, 0, false
	}
	row = int(y) / g.CellSize
	col = int(x) / g.CellSize
	return row, col, g.Contains(row, col)
}

// CellCenter returns the pixel centre of a cell.
func (g *Grid) CellCenter(row, col int) (x, y float64) {
	half := float64(g.CellSize) / 2
	return float64(col*g.CellSize) + half, float64(row*g.CellSize) + half
}

// Each вызывает fn для каждой клетки построчно.
func (g *Grid) Each(fn func(row, col int, t Tile)) {
	for row, line := range g.tiles {
		for col, t := range line {
			fn(row, col, t)
		}
	}
}
