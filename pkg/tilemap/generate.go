// pkg/tilemap/generate.go
package tilemap

// RandomSource выбирает индекс по набору весов.
type RandomSource interface {
	ChooseWeighted(weights []float64) int
}

// Layout — результат генерации карты.
type Layout struct {
	StartY    int // пиксельная высота стартовой строки, точка появления шаров
	StartRow  int
	Grid      *Grid
	Waypoints []Waypoint
	Rows      []int // строка каждой точки пути
}

type transition struct {
	next    []Direction
	weights []float64
}

// Резкий разворот вверх→вниз (и наоборот) запрещён, чтобы путь не зигзагил.
var transitions = map[Direction]transition{
	Straight: {next: []Direction{Straight, Up, Down}, weights: []float64{0.8, 0.1, 0.1}},
	Up:       {next: []Direction{Straight, Up}, weights: []float64{0.8, 0.1}},
	Down:     {next: []Direction{Straight, Down}, weights: []float64{0.8, 0.1}},
}

// nextDirection делает взвешенный выбор следующего шага.
func nextDirection(rng RandomSource, prev Direction) Direction {
	t := transitions[prev]
	i := rng.ChooseWeighted(t.weights)
	if i < 0 || i >= len(t.next) {
		return Straight
	}
	return t.next[i]
}

// Generate строит карту случайным блужданием слева направо: одна клетка пути
// и одна точка в центре клетки на каждую колонку. Строка сдвигается на шаг
// вверх или вниз после клетки и ограничивается рамками сетки.
func Generate(rng RandomSource, mapHeight, mapWidth, cellSize int) Layout {
	grid := NewGrid(mapHeight, mapWidth, cellSize)
	startRow := grid.Height / 2
	layout := Layout{
		StartY:   startRow * cellSize,
		StartRow: startRow,
		Grid:     grid,
	}
	if grid.Height == 0 || grid.Width == 0 {
		return layout
	}

	row := startRow
	prev := Straight
	layout.Waypoints = make([]Waypoint, 0, grid.Width)
	layout.Rows = make([]int, 0, grid.Width)

	for col := 0; col < grid.Width; col++ {
		ud := nextDirection(rng, prev)

		grid.set(row, col, connectorTile(prev, ud))
		x, y := grid.CellCenter(row, col)
		layout.Waypoints = append(layout.Waypoints, Waypoint{X: x, Y: y})
		layout.Rows = append(layout.Rows, row)

		switch ud {
		case Up:
			row = max(0, row-1)
		case Down:
			row = min(grid.Height-1, row+1)
		}
		prev = ud
	}

	return layout
}
