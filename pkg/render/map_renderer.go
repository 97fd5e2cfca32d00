// pkg/render/map_renderer.go
package render

import (
	"image"
	"image/color"

	"go-balloon-defense/pkg/tilemap"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// MapRenderer рисует карту, путь, рамку под курсором и текст поверх.
// Сетка не меняется между перегенерациями, поэтому она рисуется один раз
// в mapImage.
type MapRenderer struct {
	screenWidth  int
	screenHeight int
	colors       *MapColors
	fontFace     font.Face
	mapImage     *ebiten.Image // Поле для предрендеренной карты
	grid         *tilemap.Grid
}

func NewMapRenderer(screenWidth, screenHeight int, colors *MapColors) *MapRenderer {
	return &MapRenderer{
		screenWidth:  screenWidth,
		screenHeight: screenHeight,
		colors:       colors,
		fontFace:     basicfont.Face7x13,
	}
}

// RenderMapImage перерисовывает фон, если сетка сменилась.
func (r *MapRenderer) RenderMapImage(grid *tilemap.Grid) {
	if grid == r.grid && r.mapImage != nil {
		return
	}
	r.grid = grid
	if r.mapImage == nil {
		r.mapImage = ebiten.NewImage(r.screenWidth, r.screenHeight)
	}
	r.mapImage.Fill(r.colors.BackgroundColor)

	size := float32(grid.CellSize)
	grid.Each(func(row, col int, t tilemap.Tile) {
		x, y := float32(col)*size, float32(row)*size
		if !t.IsPath() {
			vector.DrawFilledRect(r.mapImage, x, y, size, size, TileColor(t, r.colors), false)
			return
		}
		vector.DrawFilledRect(r.mapImage, x, y, size, size, r.colors.GrassColor, false)
		r.drawRoad(x, y, size, TileOpenings(t))
	})
}

// drawRoad рисует дорогу шириной в половину клетки от центра к каждой открытой стороне.
func (r *MapRenderer) drawRoad(x, y, size float32, o Openings) {
	half := size / 2
	road := size / 2
	edge := r.colors.StrokeWidth
	cx, cy := x+half, y+half

	segment := func(x0, y0, w, h float32) {
		vector.DrawFilledRect(r.mapImage, x0, y0, w, h, r.colors.PathEdgeColor, false)
		vector.DrawFilledRect(r.mapImage, x0+edge, y0+edge, w-2*edge, h-2*edge, r.colors.PathColor, false)
	}

	segment(cx-road/2, cy-road/2, road, road)
	if o.Left {
		segment(x, cy-road/2, half+road/2, road)
	}
	if o.Right {
		segment(cx-road/2, cy-road/2, half+road/2, road)
	}
	if o.Up {
		segment(cx-road/2, y, road, half+road/2)
	}
	if o.Down {
		segment(cx-road/2, cy-road/2, road, half+road/2)
	}
}

// Draw рисует фон и поверх него путь: отрезки между точками и маркеры.
func (r *MapRenderer) Draw(screen *ebiten.Image, waypoints []tilemap.Waypoint, markerSize int) {
	if r.mapImage != nil {
		screen.DrawImage(r.mapImage, nil)
	}

	for i := 1; i < len(waypoints); i++ {
		a, b := waypoints[i-1], waypoints[i]
		vector.StrokeLine(screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), r.colors.StrokeWidth, r.colors.PathLineColor, true)
	}
	for _, w := range waypoints {
		box := w.Bounds(markerSize)
		fillRect(screen, box, r.colors.WaypointColor)
	}
}

// DrawPreview рисует рамку под курсором; rangeRadius > 0 добавляет круг радиуса.
func (r *MapRenderer) DrawPreview(screen *ebiten.Image, rect image.Rectangle, rangeRadius float64, valid, filled bool, colors PreviewColors) {
	clr := colors.ValidColor
	if !valid {
		clr = colors.InvalidColor
	}
	if filled {
		fillRect(screen, rect, clr)
	} else {
		vector.StrokeRect(screen, float32(rect.Min.X), float32(rect.Min.Y), float32(rect.Dx()), float32(rect.Dy()), colors.StrokeWidth, clr, false)
	}
	if rangeRadius > 0 {
		c := rect.Min.Add(rect.Max).Div(2)
		vector.StrokeCircle(screen, float32(c.X), float32(c.Y), float32(rangeRadius), colors.StrokeWidth, clr, true)
	}
}

// DrawText выводит строки снизу вверх от левого нижнего угла.
func (r *MapRenderer) DrawText(screen *ebiten.Image, lines []string) {
	lineHeight := r.fontFace.Metrics().Height.Ceil()
	y := r.screenHeight - 8
	for i := len(lines) - 1; i >= 0; i-- {
		text.Draw(screen, lines[i], r.fontFace, 8, y, r.colors.TextLightColor)
		y -= lineHeight
	}
}

func fillRect(dst *ebiten.Image, rect image.Rectangle, clr color.Color) {
	vector.DrawFilledRect(dst, float32(rect.Min.X), float32(rect.Min.Y), float32(rect.Dx()), float32(rect.Dy()), clr, false)
}
